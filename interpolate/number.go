package interpolate

import (
	"fmt"
	"math"
	"reflect"
)

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Number is the Builder for float64 endpoints. It never fails.
func Number(a, b float64) (Func[float64], error) {
	return func(t float64) float64 {
		return Lerp(a, b, t)
	}, nil
}

// Structural interpolates elementwise between two structurally identical
// values: arrays, equal-length slices, structs with exported fields, and
// values held in interfaces, nested arbitrarily, with numeric leaves. The
// result has the same type and shape as the endpoints.
//
// Float leaves are interpolated exactly. Integer leaves are rounded to the
// nearest integer and saturate at the bounds of their type, the way RGB
// treats channels.
//
//	f, _ := interpolate.Structural([2]float64{0, 10}, [2]float64{10, 20})
//	f(0.5) // [2]float64{5, 15}
//
// Mismatched shapes and non-numeric leaves fail with ErrInvalidArgument.
func Structural[V any](a, b V) (Func[V], error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return nil, fmt.Errorf("%w: nil endpoint", ErrInvalidArgument)
	}
	f, err := structural(va, vb, "")
	if err != nil {
		return nil, err
	}
	return func(t float64) V {
		return f(t).Interface().(V)
	}, nil
}

type valueFunc func(t float64) reflect.Value

func structural(a, b reflect.Value, path string) (valueFunc, error) {
	if a.Type() != b.Type() {
		return nil, fmt.Errorf("%w: %s: type %s does not match %s", ErrInvalidArgument, where(path), a.Type(), b.Type())
	}
	typ := a.Type()

	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		af, bf := a.Float(), b.Float()
		return func(t float64) reflect.Value {
			v := reflect.New(typ).Elem()
			v.SetFloat(Lerp(af, bf, t))
			return v
		}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		af, bf := float64(a.Int()), float64(b.Int())
		bits := typ.Bits()
		return func(t float64) reflect.Value {
			v := reflect.New(typ).Elem()
			v.SetInt(roundInt(Lerp(af, bf, t), bits))
			return v
		}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		af, bf := float64(a.Uint()), float64(b.Uint())
		bits := typ.Bits()
		return func(t float64) reflect.Value {
			v := reflect.New(typ).Elem()
			v.SetUint(roundUint(Lerp(af, bf, t), bits))
			return v
		}, nil

	case reflect.Array:
		elems, err := structuralElems(a, b, path)
		if err != nil {
			return nil, err
		}
		return func(t float64) reflect.Value {
			v := reflect.New(typ).Elem()
			for i, f := range elems {
				v.Index(i).Set(f(t))
			}
			return v
		}, nil

	case reflect.Slice:
		if a.Len() != b.Len() {
			return nil, fmt.Errorf("%w: %s: length %d does not match %d", ErrInvalidArgument, where(path), a.Len(), b.Len())
		}
		elems, err := structuralElems(a, b, path)
		if err != nil {
			return nil, err
		}
		return func(t float64) reflect.Value {
			v := reflect.MakeSlice(typ, len(elems), len(elems))
			for i, f := range elems {
				v.Index(i).Set(f(t))
			}
			return v
		}, nil

	case reflect.Struct:
		fields := make([]valueFunc, typ.NumField())
		for i := range fields {
			sf := typ.Field(i)
			if !sf.IsExported() {
				return nil, fmt.Errorf("%w: %s: unexported field %s", ErrInvalidArgument, where(path), sf.Name)
			}
			f, err := structural(a.Field(i), b.Field(i), path+"."+sf.Name)
			if err != nil {
				return nil, err
			}
			fields[i] = f
		}
		return func(t float64) reflect.Value {
			v := reflect.New(typ).Elem()
			for i, f := range fields {
				v.Field(i).Set(f(t))
			}
			return v
		}, nil

	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return nil, fmt.Errorf("%w: %s: nil value", ErrInvalidArgument, where(path))
		}
		f, err := structural(a.Elem(), b.Elem(), path)
		if err != nil {
			return nil, err
		}
		return func(t float64) reflect.Value {
			v := reflect.New(typ).Elem()
			v.Set(f(t))
			return v
		}, nil
	}

	return nil, fmt.Errorf("%w: %s: %s is not a number", ErrInvalidArgument, where(path), typ)
}

// roundInt rounds x to the nearest value of a signed integer type of the
// given width. NaN becomes 0.
func roundInt(x float64, bits int) int64 {
	limit := math.Ldexp(1, bits-1)
	switch x = math.Round(x); {
	case math.IsNaN(x):
		return 0
	case x >= limit:
		return math.MaxInt64 >> (64 - bits)
	case x < -limit:
		return math.MinInt64 >> (64 - bits)
	}
	return int64(x)
}

// roundUint is roundInt for unsigned types.
func roundUint(x float64, bits int) uint64 {
	switch x = math.Round(x); {
	case !(x > 0):
		return 0
	case x >= math.Ldexp(1, bits):
		return math.MaxUint64 >> (64 - bits)
	}
	return uint64(x)
}

func structuralElems(a, b reflect.Value, path string) ([]valueFunc, error) {
	elems := make([]valueFunc, a.Len())
	for i := range elems {
		f, err := structural(a.Index(i), b.Index(i), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		elems[i] = f
	}
	return elems, nil
}

func where(path string) string {
	if path == "" {
		return "value"
	}
	return "value" + path
}
