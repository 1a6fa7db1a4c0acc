package scale

import (
	"fmt"
	"slices"
)

// Ordinal maps categories to range values by position: the i-th domain
// value maps to range[i mod len(range)], so a short palette repeats.
type Ordinal[K comparable, V any] struct {
	domain     []K
	rng        []V
	index      map[K]int
	unknown    V
	hasUnknown bool
}

// NewOrdinal creates an ordinal scale. When a category appears more than
// once in domain its last position wins.
//
// Example:
//
//	o := scale.NewOrdinal([]string{"x", "y", "z"}, []colors.RGB{colors.Red, colors.Blue})
//	o.Map("z") // colors.Red, true
func NewOrdinal[K comparable, V any](domain []K, rng []V) Ordinal[K, V] {
	o := Ordinal[K, V]{domain: slices.Clone(domain), rng: slices.Clone(rng)}
	o.index = make(map[K]int, len(o.domain))
	for i, k := range o.domain {
		o.index[k] = i
	}
	Logger().Debug("ordinal scale", "categories", len(o.domain), "values", len(o.rng))
	return o
}

// Map returns the range value for k. Categories outside the domain, and
// every category when the range is empty, map to the unknown value if one is
// set; otherwise the boolean is false.
func (o Ordinal[K, V]) Map(k K) (V, bool) {
	if i, ok := o.index[k]; ok && len(o.rng) > 0 {
		return o.rng[i%len(o.rng)], true
	}
	if o.hasUnknown {
		return o.unknown, true
	}
	var zero V
	return zero, false
}

// Invert always fails with ErrNotInvertible.
func (o Ordinal[K, V]) Invert(V) (K, error) {
	var zero K
	return zero, fmt.Errorf("%w: ordinal scale", ErrNotInvertible)
}

// Domain returns a copy of the domain.
func (o Ordinal[K, V]) Domain() []K { return slices.Clone(o.domain) }

// Range returns a copy of the range.
func (o Ordinal[K, V]) Range() []V { return slices.Clone(o.rng) }

// Unknown returns the value used for categories outside the domain, and
// whether one is set.
func (o Ordinal[K, V]) Unknown() (V, bool) { return o.unknown, o.hasUnknown }

// WithUnknown returns a copy of o that maps unknown categories to v.
func (o Ordinal[K, V]) WithUnknown(v V) Ordinal[K, V] {
	o.unknown, o.hasUnknown = v, true
	return o
}

// WithDomain returns a copy of o with a new domain.
func (o Ordinal[K, V]) WithDomain(domain []K) Ordinal[K, V] {
	n := NewOrdinal(domain, o.rng)
	n.unknown, n.hasUnknown = o.unknown, o.hasUnknown
	return n
}

// WithRange returns a copy of o with a new range.
func (o Ordinal[K, V]) WithRange(rng []V) Ordinal[K, V] {
	n := NewOrdinal(o.domain, rng)
	n.unknown, n.hasUnknown = o.unknown, o.hasUnknown
	return n
}

// Scale returns o as a Scale.
func (o Ordinal[K, V]) Scale() Scale {
	return Scale{kind: KindOrdinal, impl: o}
}

func (o Ordinal[K, V]) domainValues() []any {
	return toAny(o.domain)
}

func (o Ordinal[K, V]) rangeValues() []any {
	return toAny(o.rng)
}

func (o Ordinal[K, V]) mapValue(v any) (any, error) {
	k, ok := v.(K)
	if !ok {
		if o.hasUnknown {
			return o.unknown, nil
		}
		return nil, nil
	}
	r, ok := o.Map(k)
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (o Ordinal[K, V]) invertValue(any) (any, error) {
	return nil, fmt.Errorf("%w: ordinal scale", ErrNotInvertible)
}
