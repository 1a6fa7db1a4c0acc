package interpolate

import "fmt"

// Easing maps a normalized time t to an eased time.
type Easing func(t float64) float64

// Smoothstep is the cubic Hermite easing 3t² - 2t³ with t clamped to [0,1].
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Smootherstep is Perlin's quintic easing 6t⁵ - 15t⁴ + 10t³ with t clamped
// to [0,1].
func Smootherstep(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (t*(6*t-15) + 10)
}

// SmoothstepBetween returns Smoothstep rescaled so that edge0 maps to 0 and
// edge1 maps to 1. Equal edges fail with ErrInvalidArgument.
func SmoothstepBetween(edge0, edge1 float64) (Easing, error) {
	return between(edge0, edge1, Smoothstep)
}

// SmootherstepBetween is SmoothstepBetween for Smootherstep.
func SmootherstepBetween(edge0, edge1 float64) (Easing, error) {
	return between(edge0, edge1, Smootherstep)
}

func between(edge0, edge1 float64, ease Easing) (Easing, error) {
	if edge0 == edge1 {
		return nil, fmt.Errorf("%w: easing edges are both %v", ErrInvalidArgument, edge0)
	}
	return func(t float64) float64 {
		return ease((t - edge0) / (edge1 - edge0))
	}, nil
}

// Eased composes a builder with an easing function: the resulting
// interpolator evaluates the base interpolator at ease(t).
//
//	b := interpolate.Eased(interpolate.OKLab, interpolate.Smoothstep)
//	f, _ := b(colors.Black, colors.White)
func Eased[V any](base Builder[V], ease Easing) Builder[V] {
	return func(a, b V) (Func[V], error) {
		if base == nil || ease == nil {
			return nil, fmt.Errorf("%w: eased builder needs a base builder and an easing", ErrInvalidArgument)
		}
		f, err := base(a, b)
		if err != nil {
			return nil, err
		}
		return func(t float64) V {
			return f(ease(t))
		}, nil
	}
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
