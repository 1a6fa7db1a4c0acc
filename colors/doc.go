// Package colors defines the color interchange type used by color scales and
// color interpolators: an 8-bit sRGB triple.
//
// Colors can be parsed from hex strings or CSS/SVG color keywords and
// converted to and from the perceptual OKLab and OKLCH spaces:
//
//	c, err := colors.Parse("steelblue")
//	if err != nil {
//	    return err
//	}
//	lch := c.OKLCH()
//	fmt.Println(c.Hex(), lch.L, lch.C, lch.H)
//
// Conversions are exact and deterministic; converting an RGB value to OKLab
// and back yields the original triple.
package colors
