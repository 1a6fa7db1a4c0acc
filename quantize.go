package scale

import (
	"fmt"
	"math"
	"slices"
)

// Quantize divides a continuous domain [d0, d1] into len(range) equal-width
// buckets and maps each bucket to one range element.
//
// Buckets are half-open, [lo, hi), except the last which is closed at d1.
// Bucket positions are derived on every call; nothing is cached.
type Quantize[V comparable] struct {
	d0, d1 float64
	rng    []V
}

// NewQuantize creates a quantize scale. The range may be empty, in which
// case Map reports no value.
//
// Example:
//
//	q, err := scale.NewQuantize(0, 100, []string{"a", "b", "c", "d", "e"})
//	q.Map(20) // "b", true
func NewQuantize[V comparable](d0, d1 float64, rng []V) (Quantize[V], error) {
	q := Quantize[V]{d0: d0, d1: d1, rng: slices.Clone(rng)}
	if err := q.validate(); err != nil {
		return Quantize[V]{}, logRejected(KindQuantize, err)
	}
	Logger().Debug("quantize scale", "d0", d0, "d1", d1, "buckets", len(rng))
	return q, nil
}

func (q Quantize[V]) validate() error {
	if !finite(q.d0) || !finite(q.d1) {
		return fmt.Errorf("%w: quantize domain [%v, %v] is not finite", ErrInvalidDomain, q.d0, q.d1)
	}
	return nil
}

// Domain returns the domain endpoints.
func (q Quantize[V]) Domain() [2]float64 {
	return [2]float64{q.d0, q.d1}
}

// Range returns a copy of the range.
func (q Quantize[V]) Range() []V {
	return slices.Clone(q.rng)
}

// Map returns the range element of the bucket holding x.
//
// x at or below d0 maps to the first element and x at or above d1 to the
// last; a zero-width domain maps everything to the first element. The
// boolean is false when the range is empty or x is NaN.
func (q Quantize[V]) Map(x float64) (V, bool) {
	n := len(q.rng)
	if n == 0 || math.IsNaN(x) {
		var zero V
		return zero, false
	}
	if q.d0 == q.d1 || x <= q.d0 {
		return q.rng[0], true
	}
	if x >= q.d1 {
		return q.rng[n-1], true
	}
	idx := int(math.Floor((x - q.d0) / (q.d1 - q.d0) * float64(n)))
	return q.rng[min(idx, n-1)], true
}

// InvertExtent returns the bucket [lo, hi) of the domain that maps to v.
// For the last bucket hi is exactly d1.
//
// It fails with ErrInvalidRange when the range is empty, ErrInvalidDomain
// when the domain has zero width, and ErrUnknownRangeValue when v is not in
// the range. When v occurs more than once its first bucket is returned.
func (q Quantize[V]) InvertExtent(v V) (lo, hi float64, err error) {
	if err := q.invertible(); err != nil {
		return 0, 0, err
	}
	n := len(q.rng)
	idx := slices.Index(q.rng, v)
	if idx < 0 {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownRangeValue, v)
	}
	step := (q.d1 - q.d0) / float64(n)
	lo = q.d0 + step*float64(idx)
	if idx == n-1 {
		return lo, q.d1, nil
	}
	return lo, q.d0 + step*float64(idx+1), nil
}

func (q Quantize[V]) invertible() error {
	if len(q.rng) == 0 {
		return fmt.Errorf("%w: quantize range is empty", ErrInvalidRange)
	}
	if q.d0 == q.d1 {
		return fmt.Errorf("%w: quantize domain [%v, %v] has zero width", ErrInvalidDomain, q.d0, q.d1)
	}
	return nil
}

// Thresholds returns the n-1 inner bucket boundaries in domain order.
func (q Quantize[V]) Thresholds() []float64 {
	n := len(q.rng)
	if n < 2 {
		return nil
	}
	step := (q.d1 - q.d0) / float64(n)
	out := make([]float64, n-1)
	for i := range out {
		out[i] = q.d0 + step*float64(i+1)
	}
	return out
}

// WithDomain returns a copy of q with a new domain.
func (q Quantize[V]) WithDomain(d0, d1 float64) (Quantize[V], error) {
	return NewQuantize(d0, d1, q.rng)
}

// WithRange returns a copy of q with a new range.
func (q Quantize[V]) WithRange(rng []V) (Quantize[V], error) {
	return NewQuantize(q.d0, q.d1, rng)
}

// Scale returns q as a Scale.
func (q Quantize[V]) Scale() Scale {
	return Scale{kind: KindQuantize, impl: q}
}

func (q Quantize[V]) domainValues() []any {
	return []any{q.d0, q.d1}
}

func (q Quantize[V]) rangeValues() []any {
	return toAny(q.rng)
}

func (q Quantize[V]) mapValue(v any) (any, error) {
	x, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("%w: quantize scale cannot map %T", ErrInvalidArgument, v)
	}
	r, ok := q.Map(x)
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (q Quantize[V]) invertValue(v any) (any, error) {
	r, ok := v.(V)
	if !ok {
		if err := q.invertible(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %T is not a range value", ErrUnknownRangeValue, v)
	}
	lo, hi, err := q.InvertExtent(r)
	if err != nil {
		return nil, err
	}
	return [2]float64{lo, hi}, nil
}
