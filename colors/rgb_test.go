package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"six digits", "#4682b4", RGB{70, 130, 180}},
		{"no hash", "ff8800", RGB{255, 136, 0}},
		{"upper case", "#FF0000", Red},
		{"three digits", "#f80", RGB{255, 136, 0}},
		{"three digits no hash", "fff", White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#1234", "#12345g", "#ggg", "#1234567"} {
		t.Run(in, func(t *testing.T) {
			_, err := Hex(in)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestMustHexPanics(t *testing.T) {
	assert.Panics(t, func() { MustHex("nope") })
	assert.Equal(t, Blue, MustHex("#0000ff"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  RGB
	}{
		{"steelblue", RGB{70, 130, 180}},
		{"  SteelBlue ", RGB{70, 130, 180}},
		{"black", Black},
		{"#ffffff", White},
		{"00ff00", Green},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("notacolor")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#4682b4", RGB{70, 130, 180}.Hex())
	assert.Equal(t, "#000000", Black.String())
}

func TestStandardColorInterop(t *testing.T) {
	c := RGB{10, 20, 30}
	assert.Equal(t, c, FromColor(c.Color()))
	assert.Equal(t, RGB{255, 0, 0}, FromColor(color.RGBA{R: 255, A: 255}))
	// Premultiplied half-transparent red un-premultiplies back to full red.
	assert.Equal(t, RGB{255, 0, 0}, FromColor(color.RGBA{R: 128, A: 128}))
}
