package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	assert.False(t, o.clamp)
	assert.False(t, o.round)
	assert.Equal(t, 0.0, o.paddingInner)
	assert.Equal(t, 0.0, o.paddingOuter)
	assert.Equal(t, 0.5, o.align)
	assert.NoError(t, o.validateBand())
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := applyOptions([]Option{
		WithPadding(0.3),
		WithPaddingOuter(1),
		nil,
		WithAlign(0.25),
		WithClamp(true),
		WithRound(true),
	})
	assert.Equal(t, 0.3, o.paddingInner)
	assert.Equal(t, 1.0, o.paddingOuter)
	assert.Equal(t, 0.25, o.align)
	assert.True(t, o.clamp)
	assert.True(t, o.round)
}

func TestOptionsIgnoredWhereIrrelevant(t *testing.T) {
	// Band options on a linear scale and clamp on a band scale are accepted.
	shared := []Option{WithClamp(true), WithPadding(0.1)}
	l, err := NewLinear(0, 1, 0, 1, shared...)
	assert.NoError(t, err)
	assert.True(t, l.Clamped())
	_, err = NewBand([]int{1, 2}, 0, 1, shared...)
	assert.NoError(t, err)
}
