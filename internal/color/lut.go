package color

// sRGBToLinearLUT provides O(1) sRGB to linear conversion for 8-bit input.
// Entries are computed with SRGBToLinear itself, so a lookup is
// bit-identical to the direct computation.
var sRGBToLinearLUT [256]float64

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float64(i) / 255)
	}
}

// SRGBToLinearU8 converts an sRGB byte to linear light using the lookup table.
//
// Example:
//
//	r := SRGBToLinearU8(128) // ~0.2159 (not 0.5!)
func SRGBToLinearU8(s uint8) float64 {
	return sRGBToLinearLUT[s]
}
