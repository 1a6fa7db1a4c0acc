package scale

import "errors"

// Sentinel errors returned by scale construction, Map and Invert.
var (
	// ErrInvalidArgument reports a non-numeric input where a number is
	// required, or an out-of-bounds construction option.
	ErrInvalidArgument = errors.New("scale: invalid argument")

	// ErrInvalidDomain reports a domain that cannot support the operation,
	// such as a zero-width domain on Quantize.InvertExtent.
	ErrInvalidDomain = errors.New("scale: invalid domain")

	// ErrInvalidRange reports a range that cannot support the operation,
	// such as an empty or non-numeric range on inversion.
	ErrInvalidRange = errors.New("scale: invalid range")

	// ErrUnknownRangeValue reports an inversion query for a value that is
	// not part of the range.
	ErrUnknownRangeValue = errors.New("scale: value not in range")

	// ErrNotInvertible is returned by Invert on scales that are not one to
	// one, such as Band and Ordinal.
	ErrNotInvertible = errors.New("scale: not invertible")
)
