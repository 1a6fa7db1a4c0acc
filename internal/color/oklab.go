package color

import "math"

// LinearToLab converts linear sRGB to OKLab.
//
// The matrices are the ones published with OKLab
// (https://bottosson.github.io/posts/oklab/).
func LinearToLab(c LinearRGB) Lab {
	// M1: linear RGB -> LMS
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	lp, mp, sp := cbrt(l), cbrt(m), cbrt(s)

	// M2: LMS' -> Lab
	return Lab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// LabToLinear converts OKLab to linear sRGB. The result is not gamut mapped.
func LabToLinear(c Lab) LinearRGB {
	lp := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	mp := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	sp := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return LinearRGB{
		R: +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// LabToLCh converts OKLab to its polar form.
func LabToLCh(c Lab) LCh {
	return LCh{
		L: c.L,
		C: math.Sqrt(c.A*c.A + c.B*c.B),
		H: math.Atan2(c.B, c.A),
	}
}

// LChToLab converts polar OKLCH back to OKLab.
func LChToLab(c LCh) Lab {
	return Lab{
		L: c.L,
		A: c.C * math.Cos(c.H),
		B: c.C * math.Sin(c.H),
	}
}

// SRGBToLab converts an 8-bit sRGB triple to OKLab.
func SRGBToLab(r, g, b uint8) Lab {
	return LinearToLab(Decode(r, g, b))
}

// LabToSRGB converts OKLab to an 8-bit sRGB triple, clamping out-of-gamut
// components.
func LabToSRGB(c Lab) (r, g, b uint8) {
	return Encode(LabToLinear(c))
}

// cbrt is the signed cube root: negative inputs yield the negated cube root
// of their magnitude.
func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Cbrt(-x)
	}
	return math.Cbrt(x)
}
