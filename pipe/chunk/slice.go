package chunk

import (
	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Slice keeps the elements between start and end, both inclusive and both
// zero-based. Negative bounds are normalized by adding the image length,
// so an end of -1 always means "through the last element". An end past
// the last element clamps to it; a start past it yields an empty image.
//
//	Slice(range 1..100, 5, 10)   =>  [6, 7, 8, 9, 10, 11]
//	Slice(range 1..30, -5, -1)   =>  [26, 27, 28, 29, 30]
func Slice[T any](p *pipe.Pipe[T], start, end int) *pipe.Pipe[T] {
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	items := p.Image()
	n := len(items)
	s, e := start, end
	if s < 0 {
		s += n
	}
	if e < 0 {
		e += n
	}
	if s < 0 {
		s = 0
	}
	if e >= n {
		e = n - 1
	}
	if s > e || n == 0 {
		return pipe.Next[T]("chunk.Slice", nil)
	}
	out := make([]T, e-s+1)
	copy(out, items[s:e+1])
	return pipe.Next("chunk.Slice", out)
}

// SliceAmount keeps up to amount elements starting at the given zero-based
// index, which may be negative to count from the end. It yields an empty
// image when the normalized start lies outside the image, and as many
// elements as remain when fewer than amount are available.
func SliceAmount[T any](p *pipe.Pipe[T], start, amount int) *pipe.Pipe[T] {
	const op = "chunk.SliceAmount"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	if amount < 0 {
		return pipe.Abort[T](op, piperr.InvalidArgument(op, "amount must be non-negative, got %d", amount))
	}
	items := p.Image()
	n := len(items)
	if start > n || start < -n {
		return pipe.Next[T](op, nil)
	}
	s := start
	if s < 0 {
		s += n
	}
	end := min(s+amount, n)
	out := make([]T, end-s)
	copy(out, items[s:end])
	return pipe.Next(op, out)
}

// Slide moves the single element at index so it ends up at destination,
// preserving the relative order of everything else. Both positions may be
// negative to count from the end.
//
//	Slide("abcdefg", 5, 1)   =>  "afbcdeg"
//	Slide("abcdefg", 3, -1)  =>  "abcefgd"
func Slide[T any](p *pipe.Pipe[T], index, destination int) *pipe.Pipe[T] {
	return slide(p, "chunk.Slide", index, index, destination)
}

// SlideRange moves the contiguous inclusive range [first, last] so it
// starts at destination when splicing backward, or ends at destination
// when splicing forward; the direction follows from comparing the
// normalized last moved index with the normalized destination. A
// destination inside the moved range leaves the image unchanged.
//
//	SlideRange("abcdefg", 3, 5, 1)  =>  "adefbcg"
//	SlideRange("abcdefg", 1, 3, 5)  =>  "aefbcdg"
func SlideRange[T any](p *pipe.Pipe[T], first, last, destination int) *pipe.Pipe[T] {
	return slide(p, "chunk.SlideRange", first, last, destination)
}

func slide[T any](p *pipe.Pipe[T], op string, first, last, destination int) *pipe.Pipe[T] {
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	items := p.Image()
	n := len(items)
	f, l, d := first, last, destination
	if f < 0 {
		f += n
	}
	if l < 0 {
		l += n
	}
	if d < 0 {
		d += n
	}
	if f < 0 || l >= n || f > l {
		return pipe.Abort[T](op, piperr.OutOfRange(op, "range [%d, %d] with length %d", first, last, n))
	}
	if d < 0 || d >= n {
		return pipe.Abort[T](op, piperr.OutOfRange(op, "destination %d with length %d", destination, n))
	}
	if d >= f && d <= l {
		// Destination already inside the moved range.
		return pipe.Next(op, items)
	}
	out := make([]T, 0, n)
	if d < f {
		// Backward splice: the moved range lands at the destination.
		out = append(out, items[:d]...)
		out = append(out, items[f:l+1]...)
		out = append(out, items[d:f]...)
		out = append(out, items[l+1:]...)
	} else {
		// Forward splice: the moved range ends at the destination.
		out = append(out, items[:f]...)
		out = append(out, items[l+1:d+1]...)
		out = append(out, items[f:l+1]...)
		out = append(out, items[d+1:]...)
	}
	return pipe.Next(op, out)
}
