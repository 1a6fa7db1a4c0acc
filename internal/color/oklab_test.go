package color

import (
	"math"
	"testing"
)

func TestSRGBToLabKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    LCh
		hue     bool
	}{
		{name: "black", r: 0, g: 0, b: 0, want: LCh{L: 0, C: 0}},
		{name: "white", r: 255, g: 255, b: 255, want: LCh{L: 1, C: 0}},
		{name: "red", r: 255, g: 0, b: 0, want: LCh{L: 0.6279, C: 0.2577, H: 29.23 * math.Pi / 180}, hue: true},
		{name: "green", r: 0, g: 128, b: 0, want: LCh{L: 0.5196, C: 0.1766, H: 142.50 * math.Pi / 180}, hue: true},
		{name: "blue", r: 0, g: 0, b: 255, want: LCh{L: 0.4520, C: 0.3132, H: (264.05 - 360) * math.Pi / 180}, hue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LabToLCh(SRGBToLab(tt.r, tt.g, tt.b))
			if !floatNear(got.L, tt.want.L, 1e-3) {
				t.Errorf("L = %v, want %v", got.L, tt.want.L)
			}
			if !floatNear(got.C, tt.want.C, 1e-3) {
				t.Errorf("C = %v, want %v", got.C, tt.want.C)
			}
			if tt.hue && !floatNear(got.H, tt.want.H, 0.01) {
				t.Errorf("H = %v, want %v", got.H, tt.want.H)
			}
		})
	}
}

func TestBlackIsExactlyAchromatic(t *testing.T) {
	lch := LabToLCh(SRGBToLab(0, 0, 0))
	if lch.C != 0 || lch.C >= Achromatic {
		t.Errorf("black chroma = %v, want 0", lch.C)
	}
}

// TestLabRoundTrip checks that 8-bit colors survive sRGB -> OKLab -> sRGB.
func TestLabRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				lab := SRGBToLab(uint8(r), uint8(g), uint8(b))
				gr, gg, gb := LabToSRGB(lab)
				if int(gr) != r || int(gg) != g || int(gb) != b {
					t.Fatalf("round trip (%d,%d,%d) -> %+v -> (%d,%d,%d)", r, g, b, lab, gr, gg, gb)
				}
			}
		}
	}
}

// TestLChRoundTrip checks the polar detour as well.
func TestLChRoundTrip(t *testing.T) {
	colors := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {70, 130, 180}, {255, 165, 0}, {128, 128, 128}}
	for _, c := range colors {
		lch := LabToLCh(SRGBToLab(c[0], c[1], c[2]))
		r, g, b := LabToSRGB(LChToLab(lch))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("LCh round trip %v -> %+v -> (%d,%d,%d)", c, lch, r, g, b)
		}
	}
}

func TestSignedCbrt(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{27, 3},
		{-27, -3},
		{0, 0},
		{-0.125, -0.5},
	}
	for _, tt := range tests {
		if got := cbrt(tt.in); !floatNear(got, tt.want, 1e-15) {
			t.Errorf("cbrt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkSRGBToLab(b *testing.B) {
	b.ReportAllocs()
	var lab Lab
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lab = SRGBToLab(70, 130, 180)
	}
	_ = lab
}
