package colors

import (
	internal "github.com/narslan/scale/internal/color"
)

// OKLab is a color in the OKLab perceptual space.
type OKLab struct {
	L, A, B float64
}

// OKLCH is the polar form of OKLab. H is in radians, in (-π, π].
type OKLCH struct {
	L, C, H float64
}

// OKLab converts c to OKLab.
func (c RGB) OKLab() OKLab {
	lab := internal.SRGBToLab(c.R, c.G, c.B)
	return OKLab{L: lab.L, A: lab.A, B: lab.B}
}

// OKLCH converts c to OKLCH.
func (c RGB) OKLCH() OKLCH {
	return c.OKLab().LCH()
}

// RGB converts the color back to 8-bit sRGB, clamping components that fall
// outside the sRGB gamut.
func (c OKLab) RGB() RGB {
	r, g, b := internal.LabToSRGB(internal.Lab{L: c.L, A: c.A, B: c.B})
	return RGB{R: r, G: g, B: b}
}

// LCH returns the polar form of c.
func (c OKLab) LCH() OKLCH {
	lch := internal.LabToLCh(internal.Lab{L: c.L, A: c.A, B: c.B})
	return OKLCH{L: lch.L, C: lch.C, H: lch.H}
}

// Lab returns the rectangular form of c.
func (c OKLCH) Lab() OKLab {
	lab := internal.LChToLab(internal.LCh{L: c.L, C: c.C, H: c.H})
	return OKLab{L: lab.L, A: lab.A, B: lab.B}
}

// RGB converts c to 8-bit sRGB.
func (c OKLCH) RGB() RGB {
	return c.Lab().RGB()
}

// Achromatic reports whether the color's chroma is too small for its hue to
// carry meaning.
func (c OKLCH) Achromatic() bool {
	return c.C < internal.Achromatic
}
