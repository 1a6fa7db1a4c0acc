// Package scale provides value scales for visualization: pure functions that
// map values from an input domain to an output range and, where the mapping
// is one to one, back again.
//
// # Overview
//
// Four scale kinds are provided:
//
//   - [Linear]: continuous domain to continuous range, through a pluggable
//     interpolator, so ranges may be numbers, tuples or colors.
//   - [Quantize]: continuous domain to a discrete range of equal-width
//     buckets.
//   - [Band]: discrete domain laid out as uniform bands of a continuous
//     range, for bar charts and rows.
//   - [Ordinal]: discrete domain to discrete range by position.
//
// # Quick Start
//
//	import "github.com/narslan/scale"
//
//	x, err := scale.NewLinear(0, 10, 0, 800)
//	if err != nil {
//	    return err
//	}
//	x.Map(2.5)              // 200
//	x.Invert(200)           // 2.5, nil
//
//	heat, err := scale.NewLinearOf(0, 1, colors.Blue, colors.Red, interpolate.OKLCH)
//	heat.Map(0.5)           // a perceptually even purple
//
//	bars, err := scale.NewBand([]string{"a", "b", "c"}, 0, 300, scale.WithPadding(0.1))
//	bars.Map("b")           // start of the second band
//	bars.Bandwidth()        // width of every band
//
// # Generic Code
//
// Every variant converts to [Scale], a closed union with uniform Domain,
// Range, Map and Invert methods, for code that handles scales of any kind:
//
//	axes := []scale.Scale{x.Scale(), bars.Scale()}
//	for _, s := range axes {
//	    v, err := s.Map(someValue)
//	    ...
//	}
//
// # Immutability
//
// Scales are immutable values. Setters such as [Band.WithPadding] return a
// new scale with all derived state recomputed; the receiver is unchanged.
// Scales and the interpolators they hold are safe for concurrent use.
//
// # Errors
//
// Failures are reported with the sentinel errors [ErrInvalidArgument],
// [ErrInvalidDomain], [ErrInvalidRange], [ErrUnknownRangeValue] and
// [ErrNotInvertible]; test for them with errors.Is.
//
// # Logging
//
// The package is silent by default. [SetLogger] enables debug records for
// scale construction and band layout.
package scale
