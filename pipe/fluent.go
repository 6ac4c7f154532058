package pipe

import (
	"slices"

	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Fluent operations that keep the element type. Each call replaces the
// image wholesale and returns the same pipe for further chaining. A pipe
// carrying an error passes through all of them untouched.

// Filter keeps only the elements for which pred returns true.
func (p *Pipe[T]) Filter(pred func(T) bool) *Pipe[T] {
	if p.err != nil {
		return p
	}
	out := make([]T, 0, len(p.image))
	for _, v := range p.image {
		if pred(v) {
			out = append(out, v)
		}
	}
	return p.replace("pipe.Filter", out)
}

// Reject drops the elements for which pred returns true.
func (p *Pipe[T]) Reject(pred func(T) bool) *Pipe[T] {
	if p.err != nil {
		return p
	}
	return p.Filter(func(v T) bool { return !pred(v) })
}

// Take keeps the first amount elements. A negative amount keeps the last
// |amount| elements instead. Zero empties the image. Amounts beyond the
// image length clamp to the full image.
func (p *Pipe[T]) Take(amount int) *Pipe[T] {
	if p.err != nil {
		return p
	}
	n := len(p.image)
	var out []T
	switch {
	case amount >= n || amount <= -n:
		out = p.image
	case amount >= 0:
		out = p.image[:amount]
	default:
		out = p.image[n+amount:]
	}
	return p.replace("pipe.Take", out)
}

// Drop removes the first amount elements. A negative amount removes the
// last |amount| elements instead.
func (p *Pipe[T]) Drop(amount int) *Pipe[T] {
	if p.err != nil {
		return p
	}
	n := len(p.image)
	var out []T
	switch {
	case amount >= n || amount <= -n:
		out = nil
	case amount >= 0:
		out = p.image[amount:]
	default:
		out = p.image[:n+amount]
	}
	return p.replace("pipe.Drop", out)
}

// TakeWhile keeps elements from the beginning while pred returns true.
func (p *Pipe[T]) TakeWhile(pred func(T) bool) *Pipe[T] {
	if p.err != nil {
		return p
	}
	end := len(p.image)
	for i, v := range p.image {
		if !pred(v) {
			end = i
			break
		}
	}
	return p.replace("pipe.TakeWhile", p.image[:end])
}

// DropWhile removes elements from the beginning while pred returns true.
func (p *Pipe[T]) DropWhile(pred func(T) bool) *Pipe[T] {
	if p.err != nil {
		return p
	}
	start := len(p.image)
	for i, v := range p.image {
		if !pred(v) {
			start = i
			break
		}
	}
	return p.replace("pipe.DropWhile", p.image[start:])
}

// TakeEvery keeps every nth element starting with the first. The first
// element is always included unless nth is zero, which empties the image.
// A negative nth is an invalid argument.
func (p *Pipe[T]) TakeEvery(nth int) *Pipe[T] {
	if p.err != nil {
		return p
	}
	if nth < 0 {
		return p.fail("pipe.TakeEvery", piperr.InvalidArgument("pipe.TakeEvery", "nth must be non-negative, got %d", nth))
	}
	if nth == 0 {
		return p.replace("pipe.TakeEvery", nil)
	}
	out := make([]T, 0, len(p.image)/nth+1)
	for i := 0; i < len(p.image); i += nth {
		out = append(out, p.image[i])
	}
	return p.replace("pipe.TakeEvery", out)
}

// DropEvery removes every nth element starting with the first. The first
// element is always dropped unless nth is zero, which keeps the image
// unchanged. A negative nth is an invalid argument.
func (p *Pipe[T]) DropEvery(nth int) *Pipe[T] {
	if p.err != nil {
		return p
	}
	if nth < 0 {
		return p.fail("pipe.DropEvery", piperr.InvalidArgument("pipe.DropEvery", "nth must be non-negative, got %d", nth))
	}
	if nth == 0 {
		return p.done("pipe.DropEvery")
	}
	out := make([]T, 0, len(p.image))
	for i, v := range p.image {
		if i%nth != 0 {
			out = append(out, v)
		}
	}
	return p.replace("pipe.DropEvery", out)
}

// MapEvery applies fn to every nth element starting with the first,
// leaving the others in place. nth zero keeps the image unchanged; a
// negative nth is an invalid argument.
func (p *Pipe[T]) MapEvery(nth int, fn func(T) T) *Pipe[T] {
	if p.err != nil {
		return p
	}
	if nth < 0 {
		return p.fail("pipe.MapEvery", piperr.InvalidArgument("pipe.MapEvery", "nth must be non-negative, got %d", nth))
	}
	out := slices.Clone(p.image)
	if nth > 0 {
		for i := 0; i < len(out); i += nth {
			out[i] = fn(out[i])
		}
	}
	return p.replace("pipe.MapEvery", out)
}

// Reverse reverses the image, then appends the optional tail.
func (p *Pipe[T]) Reverse(tail ...T) *Pipe[T] {
	if p.err != nil {
		return p
	}
	out := make([]T, 0, len(p.image)+len(tail))
	for i := len(p.image) - 1; i >= 0; i-- {
		out = append(out, p.image[i])
	}
	out = append(out, tail...)
	return p.replace("pipe.Reverse", out)
}

// ReverseSlice reverses count elements starting at start, leaving the rest
// in place. A count reaching past the end reverses the remainder of the
// image. Negative bounds are invalid arguments.
func (p *Pipe[T]) ReverseSlice(start, count int) *Pipe[T] {
	if p.err != nil {
		return p
	}
	if start < 0 || count < 0 {
		return p.fail("pipe.ReverseSlice", piperr.InvalidArgument("pipe.ReverseSlice", "start and count must be non-negative, got %d and %d", start, count))
	}
	out := slices.Clone(p.image)
	if start < len(out) {
		end := min(start+count, len(out))
		slices.Reverse(out[start:end])
	}
	return p.replace("pipe.ReverseSlice", out)
}

// Sort stably sorts the image using cmp, which must return a negative
// number when a orders before b, zero for ties, and a positive number
// otherwise.
func (p *Pipe[T]) Sort(cmp func(a, b T) int) *Pipe[T] {
	if p.err != nil {
		return p
	}
	out := slices.Clone(p.image)
	slices.SortStableFunc(out, cmp)
	return p.replace("pipe.Sort", out)
}

// Intersperse places sep between each pair of adjacent elements.
func (p *Pipe[T]) Intersperse(sep T) *Pipe[T] {
	if p.err != nil {
		return p
	}
	if len(p.image) < 2 {
		return p.done("pipe.Intersperse")
	}
	out := make([]T, 0, 2*len(p.image)-1)
	for i, v := range p.image {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, v)
	}
	return p.replace("pipe.Intersperse", out)
}

// Into appends the given tail after the image, the sequence analog of
// merging a mapping into another.
func (p *Pipe[T]) Into(tail []T) *Pipe[T] {
	if p.err != nil {
		return p
	}
	out := make([]T, 0, len(p.image)+len(tail))
	out = append(out, p.image...)
	out = append(out, tail...)
	return p.replace("pipe.Into", out)
}
