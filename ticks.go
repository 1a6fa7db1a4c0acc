package scale

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tick steps are 1, 2 or 5 times a power of ten. A raw step is promoted to
// the next factor once it passes the geometric mean of the two factors.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// defaultTickCount is used when a non-positive count is requested from Nice.
const defaultTickCount = 10

// Ticks returns about count evenly spaced, human-friendly values covering the
// domain, in domain order. Steps are 1, 2 or 5 times a power of ten. It
// returns nil when count <= 0.
//
// Example:
//
//	x, _ := scale.NewLinear(0, 10, 0, 800)
//	x.Ticks(5) // [0 2 4 6 8 10]
func (l Linear[V]) Ticks(count int) []float64 {
	return ticks(l.d0, l.d1, float64(count))
}

// Nice returns a copy of l whose domain is extended outward to whole
// multiples of the tick step for count ticks, so the domain starts and ends
// on round values. A non-positive count uses 10. A zero-width domain is
// returned unchanged.
func (l Linear[V]) Nice(count int) Linear[V] {
	if count <= 0 {
		count = defaultTickCount
	}
	start, stop := l.d0, l.d1
	if start == stop {
		return l
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	var prestep float64
	for i := 0; i < 10; i++ {
		step := tickIncrement(start, stop, float64(count))
		switch {
		case step == prestep:
			if reverse {
				start, stop = stop, start
			}
			l.d0, l.d1 = start, stop
			return l
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return l
		}
		prestep = step
	}
	return l
}

// TickFormat returns a formatter for the values returned by Ticks(count).
// The formatter prints just enough decimals to tell adjacent ticks apart and
// follows the number conventions of tag, such as digit grouping and the
// decimal separator.
//
// Example:
//
//	f := x.TickFormat(5, language.German)
//	f(2000) // "2.000"
func (l Linear[V]) TickFormat(count int, tag language.Tag) func(float64) string {
	step := math.Abs(tickStep(l.d0, l.d1, float64(count)))
	precision := 0
	if step > 0 && finite(step) {
		precision = max(0, -int(math.Floor(math.Log10(step))))
	}
	p := message.NewPrinter(tag)
	format := fmt.Sprintf("%%.%df", precision)
	return func(v float64) string {
		return p.Sprintf(format, v)
	}
}

func ticks(start, stop, count float64) []float64 {
	if !(count > 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, count)
	if !(i2 >= i1) {
		return nil
	}

	out := make([]float64, int(i2-i1)+1)
	for i := range out {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		// Negative increments are reciprocals; dividing keeps decimal ticks
		// such as 0.3 exact.
		if inc < 0 {
			out[i] = k / -inc
		} else {
			out[i] = k * inc
		}
	}
	return out
}

// tickSpec returns the first and last tick indices and the increment. A
// negative increment -m means ticks are index/m.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	factor := tickFactor(step / math.Pow(10, power))

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// tickIncrement returns the tick step for start <= stop in tickSpec's
// encoding: positive steps as is, fractional steps as -1/step.
func tickIncrement(start, stop, count float64) float64 {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	factor := tickFactor(step / math.Pow(10, power))
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// tickStep returns the signed distance between adjacent ticks.
func tickStep(start, stop, count float64) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = tickIncrement(stop, start, count)
	} else {
		inc = tickIncrement(start, stop, count)
	}
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}

func tickFactor(e float64) float64 {
	switch {
	case e >= e10:
		return 10
	case e >= e5:
		return 5
	case e >= e2:
		return 2
	default:
		return 1
	}
}
