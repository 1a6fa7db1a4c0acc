package colors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOKLabRoundTrip(t *testing.T) {
	for _, c := range []RGB{Black, White, Red, Green, Blue, {70, 130, 180}, {1, 2, 3}, {254, 253, 1}} {
		assert.Equal(t, c, c.OKLab().RGB(), "OKLab round trip of %v", c)
		assert.Equal(t, c, c.OKLCH().RGB(), "OKLCH round trip of %v", c)
	}
}

func TestOKLCHPolar(t *testing.T) {
	lab := Red.OKLab()
	lch := lab.LCH()
	assert.InDelta(t, math.Hypot(lab.A, lab.B), lch.C, 1e-15)
	assert.InDelta(t, math.Atan2(lab.B, lab.A), lch.H, 1e-15)
	back := lch.Lab()
	assert.InDelta(t, lab.A, back.A, 1e-12)
	assert.InDelta(t, lab.B, back.B, 1e-12)
}

func TestAchromatic(t *testing.T) {
	assert.True(t, Black.OKLCH().Achromatic())
	assert.False(t, Red.OKLCH().Achromatic())
}

func TestOutOfGamutClamps(t *testing.T) {
	// Very high chroma at mid lightness is outside sRGB.
	got := OKLCH{L: 0.6, C: 0.5, H: 0}.RGB()
	assert.Equal(t, uint8(255), got.R)
}
