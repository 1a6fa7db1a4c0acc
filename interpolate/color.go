package interpolate

import (
	"math"

	"github.com/narslan/scale/colors"
	internal "github.com/narslan/scale/internal/color"
)

// RGB interpolates each sRGB channel independently. Channels are rounded to
// the nearest integer and clamped to [0,255]. It never fails.
func RGB(c0, c1 colors.RGB) (Func[colors.RGB], error) {
	return func(t float64) colors.RGB {
		return colors.RGB{
			R: channel(Lerp(float64(c0.R), float64(c1.R), t)),
			G: channel(Lerp(float64(c0.G), float64(c1.G), t)),
			B: channel(Lerp(float64(c0.B), float64(c1.B), t)),
		}
	}, nil
}

// OKLab interpolates in the OKLab perceptual space, which avoids the muddy
// midpoints of plain sRGB blending. It never fails.
func OKLab(c0, c1 colors.RGB) (Func[colors.RGB], error) {
	lab0 := internal.SRGBToLab(c0.R, c0.G, c0.B)
	lab1 := internal.SRGBToLab(c1.R, c1.G, c1.B)
	return func(t float64) colors.RGB {
		return fromLab(internal.Lab{
			L: Lerp(lab0.L, lab1.L, t),
			A: Lerp(lab0.A, lab1.A, t),
			B: Lerp(lab0.B, lab1.B, t),
		})
	}, nil
}

// OKLCH interpolates lightness and chroma linearly and hue along the
// shortest arc of the hue circle.
//
// An achromatic endpoint (chroma below 1e-12) has no hue of its own and
// borrows the other endpoint's hue; when both are achromatic the hue is 0.
// Only black reaches that threshold. White and the sRGB grays keep a chroma
// near 1e-8 from the published OKLab matrices, so they carry a hue of about
// 1.57 rad and blend it like any other color. It never fails.
func OKLCH(c0, c1 colors.RGB) (Func[colors.RGB], error) {
	lch0 := internal.LabToLCh(internal.SRGBToLab(c0.R, c0.G, c0.B))
	lch1 := internal.LabToLCh(internal.SRGBToLab(c1.R, c1.G, c1.B))

	gray0, gray1 := lch0.C < internal.Achromatic, lch1.C < internal.Achromatic
	switch {
	case gray0 && gray1:
		lch0.H, lch1.H = 0, 0
	case gray0:
		lch0.H = lch1.H
	case gray1:
		lch1.H = lch0.H
	}

	hue, _ := Hue(lch0.H, lch1.H)
	return func(t float64) colors.RGB {
		return fromLab(internal.LChToLab(internal.LCh{
			L: Lerp(lch0.L, lch1.L, t),
			C: Lerp(lch0.C, lch1.C, t),
			H: hue(t),
		}))
	}, nil
}

// Hue interpolates between two angles in radians along the shortest arc.
// The angular distance covered between t = 0 and t = 1 never exceeds π;
// for opposite hues the positive direction is taken. It never fails.
func Hue(h0, h1 float64) (Func[float64], error) {
	delta := math.Mod(h1-h0, 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return func(t float64) float64 {
		return h0 + delta*t
	}, nil
}

func fromLab(lab internal.Lab) colors.RGB {
	r, g, b := internal.LabToSRGB(lab)
	return colors.RGB{R: r, G: g, B: b}
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
