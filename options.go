package scale

import (
	"fmt"
	"math"
)

// Option configures a scale during construction.
// Options that do not apply to a scale kind are ignored, so a single option
// list can be shared between scales.
//
// Example:
//
//	x, err := scale.NewBand(days, 0, 640, scale.WithPadding(0.1), scale.WithRound(true))
//	y, err := scale.NewLinear(0, 100, 480, 0, scale.WithClamp(true))
type Option func(*options)

// options holds optional configuration for scale creation.
type options struct {
	clamp        bool
	paddingInner float64
	paddingOuter float64
	align        float64
	round        bool
}

// defaultOptions returns the default scale options.
func defaultOptions() options {
	return options{
		align: 0.5,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithClamp restricts Linear mapping and inversion to the domain and range
// bounds. Default false.
func WithClamp(clamp bool) Option {
	return func(o *options) {
		o.clamp = clamp
	}
}

// WithPadding sets both the inner and outer padding of a Band scale.
func WithPadding(p float64) Option {
	return func(o *options) {
		o.paddingInner = p
		o.paddingOuter = p
	}
}

// WithPaddingInner sets the fraction of each step left blank between
// adjacent bands. It must be in [0,1]. Default 0.
func WithPaddingInner(p float64) Option {
	return func(o *options) {
		o.paddingInner = p
	}
}

// WithPaddingOuter sets the blank space before the first and after the last
// band, in multiples of the step. It must be >= 0. Default 0.
func WithPaddingOuter(p float64) Option {
	return func(o *options) {
		o.paddingOuter = p
	}
}

// WithAlign sets how leftover space is distributed around the bands:
// 0 packs them at the start of the range, 1 at the end. Default 0.5.
func WithAlign(a float64) Option {
	return func(o *options) {
		o.align = a
	}
}

// WithRound snaps the band step, start and bandwidth to whole numbers, which
// keeps band edges on pixel boundaries. Default false.
func WithRound(round bool) Option {
	return func(o *options) {
		o.round = round
	}
}

// validateBand checks the options a Band layout depends on.
func (o options) validateBand() error {
	switch {
	case !finite(o.paddingInner) || o.paddingInner < 0 || o.paddingInner > 1:
		return fmt.Errorf("%w: inner padding %v outside [0,1]", ErrInvalidArgument, o.paddingInner)
	case !finite(o.paddingOuter) || o.paddingOuter < 0:
		return fmt.Errorf("%w: outer padding %v must be finite and >= 0", ErrInvalidArgument, o.paddingOuter)
	case !finite(o.align) || o.align < 0 || o.align > 1:
		return fmt.Errorf("%w: align %v outside [0,1]", ErrInvalidArgument, o.align)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
