// Package ranges materializes arithmetic progressions between two
// inclusive bounds. Integer ranges use ordinary stepped enumeration.
// Fractional ranges step in exact decimal arithmetic, seeded from the
// shortest decimal representation of the bounds, so that repeated addition
// never accumulates binary floating-point drift; each term crosses back to
// float64 only at the boundary.
package ranges

import (
	"github.com/shopspring/decimal"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Ints materializes the integers from a through b inclusive. When step is
// omitted it defaults to the direction implied by the bounds. A zero step
// is an invalid argument; an explicit step whose sign contradicts the
// direction yields an empty pipe rather than an error.
//
//	Ints(1, 10, 2)  =>  [1, 3, 5, 7, 9]
//	Ints(5, 0, -1)  =>  [5, 4, 3, 2, 1, 0]
func Ints(a, b int, step ...int) *pipe.Pipe[int] {
	const op = "ranges.Ints"
	s := 1
	if b < a {
		s = -1
	}
	if len(step) > 0 {
		s = step[0]
	}
	if s == 0 {
		return pipe.Abort[int](op, piperr.InvalidArgument(op, "step must not be zero"))
	}
	var out []int
	if s > 0 {
		for v := a; v <= b; v += s {
			out = append(out, v)
		}
	} else {
		for v := a; v >= b; v += s {
			out = append(out, v)
		}
	}
	return pipe.Next(op, out)
}

// Floats materializes the fractional progression from a through b
// inclusive by step, defaulting to 0.1. Terms are computed as
// a + i*step in decimal arithmetic. A zero step is an invalid argument; a
// step pointing away from b yields an empty pipe.
//
//	Floats(0.5, 5.0, 0.5)   =>  [0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0]
//	Floats(5.0, 0.5, -0.5)  =>  [5.0, 4.5, 4.0, 3.5, 3.0, 2.5, 2.0, 1.5, 1.0, 0.5]
func Floats(a, b float64, step ...float64) *pipe.Pipe[float64] {
	const op = "ranges.Floats"
	s := 0.1
	if len(step) > 0 {
		s = step[0]
	}
	if s == 0 {
		return pipe.Abort[float64](op, piperr.InvalidArgument(op, "step must not be zero"))
	}
	start := decimal.NewFromFloat(a)
	delta := decimal.NewFromFloat(s)
	// The term count is derived in decimal as well: (1.0-0.1)/0.1 must be
	// exactly 9, not the 8.999... that float64 division produces.
	terms := int(decimal.NewFromFloat(b).Sub(start).Div(delta).IntPart()) + 1
	if terms <= 0 {
		return pipe.Next[float64](op, nil)
	}
	out := make([]float64, terms)
	for i := range out {
		out[i] = start.Add(delta.Mul(decimal.NewFromInt(int64(i)))).InexactFloat64()
	}
	return pipe.Next(op, out)
}

// Linspace materializes count+1 evenly spaced points over [a, b]
// inclusive. The per-step delta is rounded to prec decimal digits,
// half up, before the points are generated.
//
//	Linspace(1.1, 3.3, 10, 2)  =>  [1.1, 1.32, 1.54, ..., 3.08, 3.3]
func Linspace(a, b float64, count, prec int) *pipe.Pipe[float64] {
	const op = "ranges.Linspace"
	if count <= 0 {
		return pipe.Abort[float64](op, piperr.InvalidArgument(op, "count must be positive, got %d", count))
	}
	if prec < 0 {
		return pipe.Abort[float64](op, piperr.InvalidArgument(op, "precision must be non-negative, got %d", prec))
	}
	start := decimal.NewFromFloat(a)
	stop := decimal.NewFromFloat(b)
	// Round half away from zero, which is half-up on the magnitude.
	delta := stop.Sub(start).Div(decimal.NewFromInt(int64(count))).Round(int32(prec))
	out := make([]float64, count+1)
	for i := range out {
		out[i] = start.Add(delta.Mul(decimal.NewFromInt(int64(i)))).InexactFloat64()
	}
	out[count] = stop.InexactFloat64()
	return pipe.Next(op, out)
}
