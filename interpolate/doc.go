// Package interpolate provides interpolators: functions of two endpoints that
// return a function of a normalized parameter t.
//
// A [Builder] validates a pair of endpoints once and returns a [Func] that
// never fails. Builders are the strategy values injected into continuous
// scales:
//
//	ramp, err := interpolate.OKLCH(colors.Red, colors.Blue)
//	if err != nil {
//	    return err
//	}
//	mid := ramp(0.5)
//
// Interpolators do not clamp t. Values outside [0,1] extrapolate; clamping
// is the caller's concern.
//
// Easing functions reparameterize t and compose with any builder through
// [Eased].
package interpolate

import "errors"

// ErrInvalidArgument is returned for endpoints that cannot be interpolated
// and for degenerate easing edges.
var ErrInvalidArgument = errors.New("interpolate: invalid argument")

// Func is an interpolator: a pure function of t. t = 0 yields the start
// value and t = 1 the end value.
type Func[V any] func(t float64) V

// Builder constructs an interpolator between two endpoints.
type Builder[V any] func(a, b V) (Func[V], error)
