package scale

import (
	"fmt"
	"math"
	"slices"
)

// Band lays out a discrete domain as uniformly spaced bands inside a
// continuous range, the layout used for bar charts and table rows.
//
// The layout (each band's start, the step between starts and the band
// width) is computed in full whenever a Band is constructed or a setter is
// called. A Band never changes after construction.
//
//	|<-outer->|<--bandwidth-->|<-inner->|<--bandwidth-->|<-outer->|
//	          |<--------- step -------->|
//
// Outer padding is measured in steps; inner padding is the fraction of a
// step left blank between neighbors.
type Band[K comparable] struct {
	domain []K
	r0, r1 float64
	opts   options

	index     map[K]float64
	step      float64
	bandwidth float64
}

// NewBand creates a band scale over domain spanning [r0, r1]. A reversed
// range (r1 < r0) lays the first category out nearest r0.
//
// Example:
//
//	b, err := scale.NewBand([]string{"a", "b", "c"}, 0, 300)
//	b.Map("b")     // 100, true
//	b.Bandwidth() // 100
func NewBand[K comparable](domain []K, r0, r1 float64, opts ...Option) (Band[K], error) {
	b := Band[K]{domain: slices.Clone(domain), r0: r0, r1: r1, opts: applyOptions(opts)}
	return b.rebuilt()
}

// rebuilt validates b and recomputes its layout.
func (b Band[K]) rebuilt() (Band[K], error) {
	if !finite(b.r0) || !finite(b.r1) {
		return Band[K]{}, logRejected(KindBand, fmt.Errorf("%w: band range [%v, %v] is not finite", ErrInvalidRange, b.r0, b.r1))
	}
	if err := b.opts.validateBand(); err != nil {
		return Band[K]{}, logRejected(KindBand, err)
	}
	b.layout()
	Logger().Debug("band layout",
		"bands", len(b.domain), "step", b.step, "bandwidth", b.bandwidth,
		"paddingInner", b.opts.paddingInner, "paddingOuter", b.opts.paddingOuter,
		"align", b.opts.align, "round", b.opts.round)
	return b, nil
}

// layout computes index, step and bandwidth from scratch.
func (b *Band[K]) layout() {
	start, stop := b.r0, b.r1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	n := len(b.domain)
	b.index = make(map[K]float64, n)
	if n == 0 {
		b.step, b.bandwidth = 0, 0
		return
	}

	pi, po := b.opts.paddingInner, b.opts.paddingOuter
	step := (stop - start) / math.Max(1, float64(n)-pi+2*po)
	if b.opts.round {
		step = math.Floor(step)
	}
	start += (stop - start - step*(float64(n)-pi)) * b.opts.align
	bandwidth := step * (1 - pi)
	if b.opts.round {
		start = math.Round(start)
		bandwidth = math.Round(bandwidth)
	}

	positions := make([]float64, n)
	for i := range positions {
		positions[i] = start + step*float64(i)
	}
	if reverse {
		slices.Reverse(positions)
	}
	for i, k := range b.domain {
		b.index[k] = positions[i]
	}

	b.step, b.bandwidth = step, bandwidth
}

// Map returns the start of the band for k. The boolean is false when k is
// not in the domain.
func (b Band[K]) Map(k K) (float64, bool) {
	x, ok := b.index[k]
	return x, ok
}

// Invert always fails with ErrNotInvertible: many range values fall in no
// band and a band covers many range values.
func (b Band[K]) Invert(float64) (K, error) {
	var zero K
	return zero, fmt.Errorf("%w: band scale", ErrNotInvertible)
}

// Step returns the distance between the starts of adjacent bands.
func (b Band[K]) Step() float64 { return b.step }

// Bandwidth returns the width of each band.
func (b Band[K]) Bandwidth() float64 { return b.bandwidth }

// Domain returns a copy of the domain.
func (b Band[K]) Domain() []K { return slices.Clone(b.domain) }

// Range returns the range endpoints as given.
func (b Band[K]) Range() [2]float64 { return [2]float64{b.r0, b.r1} }

// PaddingInner returns the inner padding.
func (b Band[K]) PaddingInner() float64 { return b.opts.paddingInner }

// PaddingOuter returns the outer padding.
func (b Band[K]) PaddingOuter() float64 { return b.opts.paddingOuter }

// Align returns the alignment.
func (b Band[K]) Align() float64 { return b.opts.align }

// Rounded reports whether the layout is rounded to whole numbers.
func (b Band[K]) Rounded() bool { return b.opts.round }

// WithDomain returns a copy of b laid out over domain.
func (b Band[K]) WithDomain(domain []K) (Band[K], error) {
	b.domain = slices.Clone(domain)
	return b.rebuilt()
}

// WithRange returns a copy of b laid out over [r0, r1].
func (b Band[K]) WithRange(r0, r1 float64) (Band[K], error) {
	b.r0, b.r1 = r0, r1
	return b.rebuilt()
}

// WithPadding returns a copy of b with inner and outer padding set to p.
func (b Band[K]) WithPadding(p float64) (Band[K], error) {
	return b.with(WithPadding(p))
}

// WithPaddingInner returns a copy of b with inner padding p.
func (b Band[K]) WithPaddingInner(p float64) (Band[K], error) {
	return b.with(WithPaddingInner(p))
}

// WithPaddingOuter returns a copy of b with outer padding p.
func (b Band[K]) WithPaddingOuter(p float64) (Band[K], error) {
	return b.with(WithPaddingOuter(p))
}

// WithAlign returns a copy of b with alignment a.
func (b Band[K]) WithAlign(a float64) (Band[K], error) {
	return b.with(WithAlign(a))
}

// WithRound returns a copy of b with rounding switched on or off.
func (b Band[K]) WithRound(round bool) (Band[K], error) {
	return b.with(WithRound(round))
}

func (b Band[K]) with(opt Option) (Band[K], error) {
	opt(&b.opts)
	return b.rebuilt()
}

// Scale returns b as a Scale.
func (b Band[K]) Scale() Scale {
	return Scale{kind: KindBand, impl: b}
}

func (b Band[K]) domainValues() []any {
	return toAny(b.domain)
}

func (b Band[K]) rangeValues() []any {
	return []any{b.r0, b.r1}
}

func (b Band[K]) mapValue(v any) (any, error) {
	k, ok := v.(K)
	if !ok {
		return nil, nil
	}
	x, ok := b.Map(k)
	if !ok {
		return nil, nil
	}
	return x, nil
}

func (b Band[K]) invertValue(v any) (any, error) {
	return nil, fmt.Errorf("%w: band scale", ErrNotInvertible)
}
