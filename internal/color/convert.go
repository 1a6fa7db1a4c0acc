package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input is not clamped; out-of-gamut values pass through.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Channel quantizes an sRGB component in [0,1] to a byte.
// The value is clamped to [0,1], scaled to [0,255], rounded half away from
// zero and clamped again.
func Channel(s float64) uint8 {
	v := math.Round(clamp01(s) * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Decode converts an 8-bit sRGB triple to linear light.
func Decode(r, g, b uint8) LinearRGB {
	return LinearRGB{
		R: SRGBToLinearU8(r),
		G: SRGBToLinearU8(g),
		B: SRGBToLinearU8(b),
	}
}

// Encode converts linear light back to an 8-bit sRGB triple.
func Encode(c LinearRGB) (r, g, b uint8) {
	return Channel(LinearToSRGB(c.R)), Channel(LinearToSRGB(c.G)), Channel(LinearToSRGB(c.B))
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
