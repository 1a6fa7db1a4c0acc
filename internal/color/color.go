// Package color provides the float64 colorimetric math behind the scale
// interpolators: sRGB transfer functions, OKLab and OKLCH conversions, and
// quantization back to 8-bit channels.
//
// Every function here is exact and deterministic. The same 8-bit input always
// produces the same bits on output, which is what lets interpolators promise
// that endpoints survive a round trip unchanged.
package color

// LinearRGB is a color in linear-light sRGB. Components are nominally in
// [0,1] but may fall outside it for out-of-gamut colors.
type LinearRGB struct {
	R, G, B float64
}

// Lab is a color in the OKLab perceptual space.
// L is perceived lightness in [0,1]; A and B are the opponent axes.
type Lab struct {
	L, A, B float64
}

// LCh is the polar form of Lab.
// C is chroma (>= 0) and H is hue in radians as returned by math.Atan2.
type LCh struct {
	L, C, H float64
}

// Achromatic is the chroma below which a color has no meaningful hue.
const Achromatic = 1e-12
