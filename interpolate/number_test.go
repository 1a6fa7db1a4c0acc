package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"middle", 10, 20, 0.5, 15},
		{"extrapolate above", 0, 10, 1.5, 15},
		{"extrapolate below", 0, 10, -0.5, -5},
		{"descending", 10, 0, 0.25, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Lerp(tt.a, tt.b, tt.t), 1e-12)
			f, err := Number(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, f(tt.t), 1e-12)
		})
	}
}

type point struct {
	X, Y float64
}

func TestStructural(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		f, err := Structural([3]float64{0, 10, 20}, [3]float64{10, 20, 40})
		require.NoError(t, err)
		assert.Equal(t, [3]float64{5, 15, 30}, f(0.5))
	})

	t.Run("slice", func(t *testing.T) {
		f, err := Structural([]float64{0, 100}, []float64{100, 0})
		require.NoError(t, err)
		assert.Equal(t, []float64{25, 75}, f(0.25))
	})

	t.Run("struct", func(t *testing.T) {
		f, err := Structural(point{0, 0}, point{4, 8})
		require.NoError(t, err)
		assert.Equal(t, point{1, 2}, f(0.25))
	})

	t.Run("nested", func(t *testing.T) {
		f, err := Structural([][2]float32{{0, 1}}, [][2]float32{{2, 3}})
		require.NoError(t, err)
		assert.Equal(t, [][2]float32{{1, 2}}, f(0.5))
	})

	t.Run("any holding tuple", func(t *testing.T) {
		f, err := Structural[any]([2]float64{0, 0}, [2]float64{2, 4})
		require.NoError(t, err)
		assert.Equal(t, [2]float64{1, 2}, f(0.5))
	})

	t.Run("interface elements", func(t *testing.T) {
		f, err := Structural([]any{0.0, [1]float64{0}}, []any{1.0, [1]float64{10}})
		require.NoError(t, err)
		assert.Equal(t, []any{0.5, [1]float64{5}}, f(0.5))
	})

	t.Run("fresh value per call", func(t *testing.T) {
		f, err := Structural([]float64{0}, []float64{1})
		require.NoError(t, err)
		first := f(0)
		first[0] = 42
		assert.Equal(t, []float64{0}, f(0))
	})
}

func TestStructuralIntegers(t *testing.T) {
	t.Run("rounds to nearest", func(t *testing.T) {
		f, err := Structural([]int{0, 10, -10}, []int{3, 20, 10})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 15, 0}, f(0.5))
		assert.Equal(t, []int{0, 10, -10}, f(0))
		assert.Equal(t, []int{3, 20, 10}, f(1))
	})

	t.Run("mixed struct", func(t *testing.T) {
		type sample struct {
			N int
			X float64
		}
		f, err := Structural(sample{0, 0}, sample{5, 1})
		require.NoError(t, err)
		assert.Equal(t, sample{1, 0.25}, f(0.25))
	})

	t.Run("saturates signed", func(t *testing.T) {
		f, err := Structural([2]int8{0, 0}, [2]int8{100, -100})
		require.NoError(t, err)
		assert.Equal(t, [2]int8{127, -128}, f(2))
	})

	t.Run("saturates unsigned", func(t *testing.T) {
		f, err := Structural([]uint8{10, 200}, []uint8{0, 250})
		require.NoError(t, err)
		assert.Equal(t, []uint8{0, 255}, f(3))
	})

	t.Run("nan is zero", func(t *testing.T) {
		f, err := Structural([1]int{1}, [1]int{2})
		require.NoError(t, err)
		assert.Equal(t, [1]int{0}, f(math.NaN()))
	})
}

func TestStructuralInvalid(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{"length mismatch", []float64{1, 2}, []float64{1}},
		{"type mismatch", [2]float64{}, [3]float64{}},
		{"mixed dynamic types", []any{1.0}, []any{[1]float64{1}}},
		{"bool leaf", []bool{true}, []bool{false}},
		{"string leaf", "a", "b"},
		{"nil interface element", []any{nil}, []any{1.0}},
		{"nil endpoint", nil, 1.0},
		{"unexported field", struct{ x float64 }{1}, struct{ x float64 }{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Structural(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
