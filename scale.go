package scale

import (
	"fmt"
	"reflect"
)

// Kind identifies the variant held by a Scale.
type Kind uint8

const (
	// KindLinear maps a continuous domain onto a continuous range.
	KindLinear Kind = iota + 1
	// KindQuantize maps a continuous domain onto a discrete range.
	KindQuantize
	// KindBand lays a discrete domain out as bands of a continuous range.
	KindBand
	// KindOrdinal maps a discrete domain onto a discrete range.
	KindOrdinal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindQuantize:
		return "quantize"
	case KindBand:
		return "band"
	case KindOrdinal:
		return "ordinal"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Scale is the uniform view of any scale variant. It is a closed union over
// Linear, Quantize, Band and Ordinal: values are obtained through the
// variants' Scale methods and no other implementations exist.
//
// Scale trades static types for uniformity. Charting code that handles axes
// of any kind can hold a Scale and call Map and Invert without knowing the
// variant; code that knows the variant should use its typed methods instead.
//
// The zero Scale holds no variant: Map fails with ErrInvalidArgument and
// Invert with ErrNotInvertible.
type Scale struct {
	kind Kind
	impl scaler
}

// scaler is implemented by the four variants only.
type scaler interface {
	domainValues() []any
	rangeValues() []any
	mapValue(v any) (any, error)
	invertValue(v any) (any, error)
}

// Kind returns the variant held by s.
func (s Scale) Kind() Kind {
	return s.kind
}

// Domain returns the domain values: the two endpoints of a continuous
// domain or the categories of a discrete one.
func (s Scale) Domain() []any {
	if s.impl == nil {
		return nil
	}
	return s.impl.domainValues()
}

// Range returns the range values: the two endpoints of a continuous range or
// the elements of a discrete one.
func (s Scale) Range() []any {
	if s.impl == nil {
		return nil
	}
	return s.impl.rangeValues()
}

// Map maps a domain value to a range value.
//
// Linear and Quantize accept any Go numeric type and fail with
// ErrInvalidArgument otherwise. Band and Ordinal look the value up as a
// category. A value with no image (an unknown category, an empty range)
// yields nil and no error.
func (s Scale) Map(v any) (any, error) {
	if s.impl == nil {
		return nil, fmt.Errorf("%w: zero Scale", ErrInvalidArgument)
	}
	return s.impl.mapValue(v)
}

// Invert maps a range value back to the domain.
//
// Linear returns a float64. Quantize returns the [2]float64 extent of the
// bucket holding the value. Band and Ordinal always fail with
// ErrNotInvertible.
func (s Scale) Invert(v any) (any, error) {
	if s.impl == nil {
		return nil, fmt.Errorf("%w: zero Scale", ErrNotInvertible)
	}
	return s.impl.invertValue(v)
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func toAny[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
