package scale

import (
	"fmt"

	"github.com/narslan/scale/interpolate"
)

// Linear maps a continuous domain [d0, d1] onto a range [r0, r1] through an
// interpolator. The range may hold any value type the interpolator supports:
// numbers, tuples, colors.
//
// Linear is an immutable value. Setters return a new scale and leave the
// receiver unchanged, so a Linear can be shared between goroutines. The zero
// Linear has no interpolator; use NewLinear or NewLinearOf.
type Linear[V any] struct {
	d0, d1 float64
	r0, r1 V
	clamp  bool

	build  interpolate.Builder[V]
	interp interpolate.Func[V]
}

// NewLinear creates a numeric linear scale.
//
// Example:
//
//	x, err := scale.NewLinear(0, 10, 0, 800)
//	x.Map(2.5) // 200
func NewLinear(d0, d1, r0, r1 float64, opts ...Option) (Linear[float64], error) {
	return NewLinearOf(d0, d1, r0, r1, interpolate.Number, opts...)
}

// NewLinearOf creates a linear scale whose range values are produced by
// build. The interpolator is built once, here; endpoints the builder rejects
// fail construction. Numeric range endpoints must be finite.
//
// Example:
//
//	heat, err := scale.NewLinearOf(0, 1, colors.Blue, colors.Red, interpolate.OKLCH)
func NewLinearOf[V any](d0, d1 float64, r0, r1 V, build interpolate.Builder[V], opts ...Option) (Linear[V], error) {
	o := applyOptions(opts)
	l := Linear[V]{d0: d0, d1: d1, r0: r0, r1: r1, clamp: o.clamp, build: build}
	if err := l.init(); err != nil {
		return Linear[V]{}, logRejected(KindLinear, err)
	}
	Logger().Debug("linear scale", "d0", d0, "d1", d1, "clamp", o.clamp)
	return l, nil
}

// init validates the scale and builds its interpolator.
func (l *Linear[V]) init() error {
	if !finite(l.d0) || !finite(l.d1) {
		return fmt.Errorf("%w: linear domain [%v, %v] is not finite", ErrInvalidDomain, l.d0, l.d1)
	}
	if r0, ok := toFloat(any(l.r0)); ok && !finite(r0) {
		return fmt.Errorf("%w: linear range start %v is not finite", ErrInvalidRange, r0)
	}
	if r1, ok := toFloat(any(l.r1)); ok && !finite(r1) {
		return fmt.Errorf("%w: linear range end %v is not finite", ErrInvalidRange, r1)
	}
	if l.build == nil {
		return fmt.Errorf("%w: nil interpolator", ErrInvalidArgument)
	}
	interp, err := l.build(l.r0, l.r1)
	if err != nil {
		return fmt.Errorf("%w: linear range: %w", ErrInvalidArgument, err)
	}
	l.interp = interp
	return nil
}

// Domain returns the domain endpoints.
func (l Linear[V]) Domain() [2]float64 {
	return [2]float64{l.d0, l.d1}
}

// Range returns the range endpoints.
func (l Linear[V]) Range() [2]V {
	return [2]V{l.r0, l.r1}
}

// Clamped reports whether mapping and inversion are clamped.
func (l Linear[V]) Clamped() bool {
	return l.clamp
}

// Map maps x to the range.
//
// A zero-width domain (d0 == d1) maps every x to the start of the range.
// Without clamping, x outside the domain extrapolates.
func (l Linear[V]) Map(x float64) V {
	var t float64
	if l.d0 != l.d1 {
		t = (x - l.d0) / (l.d1 - l.d0)
	}
	if l.clamp {
		t = clamp01(t)
	}
	return l.interp(t)
}

// Invert maps a range value y back to the domain.
// It fails with ErrInvalidRange when the range endpoints are not numbers or
// are equal.
func (l Linear[V]) Invert(y float64) (float64, error) {
	r0, r1, err := l.numericRange()
	if err != nil {
		return 0, err
	}
	t := (y - r0) / (r1 - r0)
	if l.clamp {
		t = clamp01(t)
	}
	return l.d0 + t*(l.d1-l.d0), nil
}

func (l Linear[V]) numericRange() (float64, float64, error) {
	r0, ok0 := toFloat(any(l.r0))
	r1, ok1 := toFloat(any(l.r1))
	if !ok0 || !ok1 {
		return 0, 0, fmt.Errorf("%w: cannot invert non-numeric range of %T", ErrInvalidRange, l.r0)
	}
	if r0 == r1 {
		return 0, 0, fmt.Errorf("%w: cannot invert zero-width range [%v, %v]", ErrInvalidRange, r0, r1)
	}
	return r0, r1, nil
}

// WithDomain returns a copy of l with a new domain.
func (l Linear[V]) WithDomain(d0, d1 float64) (Linear[V], error) {
	l.d0, l.d1 = d0, d1
	return l.rebuilt()
}

// WithRange returns a copy of l with a new range.
func (l Linear[V]) WithRange(r0, r1 V) (Linear[V], error) {
	l.r0, l.r1 = r0, r1
	return l.rebuilt()
}

// WithInterpolator returns a copy of l using build.
func (l Linear[V]) WithInterpolator(build interpolate.Builder[V]) (Linear[V], error) {
	l.build = build
	return l.rebuilt()
}

// WithClamp returns a copy of l with clamping switched on or off.
func (l Linear[V]) WithClamp(clamp bool) Linear[V] {
	l.clamp = clamp
	return l
}

func (l Linear[V]) rebuilt() (Linear[V], error) {
	if err := l.init(); err != nil {
		return Linear[V]{}, logRejected(KindLinear, err)
	}
	return l, nil
}

// Scale returns l as a Scale.
func (l Linear[V]) Scale() Scale {
	return Scale{kind: KindLinear, impl: l}
}

func (l Linear[V]) domainValues() []any {
	return []any{l.d0, l.d1}
}

func (l Linear[V]) rangeValues() []any {
	return []any{l.r0, l.r1}
}

func (l Linear[V]) mapValue(v any) (any, error) {
	x, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("%w: linear scale cannot map %T", ErrInvalidArgument, v)
	}
	return l.Map(x), nil
}

func (l Linear[V]) invertValue(v any) (any, error) {
	if _, _, err := l.numericRange(); err != nil {
		return nil, err
	}
	y, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("%w: linear scale cannot invert %T", ErrInvalidArgument, v)
	}
	d, err := l.Invert(y)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
