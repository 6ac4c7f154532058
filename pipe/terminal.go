package pipe

import (
	"fmt"
	"strings"

	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Terminal operations read the image and return a plain value instead of a
// pipeline. Each reports the chain's first error when the pipe is poisoned.

// At returns the element at the given zero-based index. A negative index
// counts from the end. An index outside the image is an out-of-range error.
func (p *Pipe[T]) At(index int) (T, error) {
	var zero T
	if p.err != nil {
		return zero, p.err
	}
	i := index
	if i < 0 {
		i += len(p.image)
	}
	if i < 0 || i >= len(p.image) {
		return zero, piperr.OutOfRange("pipe.At", "index %d with length %d", index, len(p.image))
	}
	return p.image[i], nil
}

// Count returns the size of the image.
func (p *Pipe[T]) Count() int {
	return len(p.image)
}

// CountBy returns the number of elements for which pred returns true.
func (p *Pipe[T]) CountBy(pred func(T) bool) int {
	n := 0
	for _, v := range p.image {
		if pred(v) {
			n++
		}
	}
	return n
}

// CountUntil counts elements, stopping once limit is reached.
func (p *Pipe[T]) CountUntil(limit int) int {
	return min(limit, len(p.image))
}

// CountUntilBy counts elements matching pred, stopping once limit matches
// have been seen.
func (p *Pipe[T]) CountUntilBy(limit int, pred func(T) bool) int {
	n := 0
	for _, v := range p.image {
		if pred(v) {
			n++
			if n >= limit {
				break
			}
		}
	}
	return n
}

// All reports whether pred holds for every element. It is vacuously true
// on an empty image.
func (p *Pipe[T]) All(pred func(T) bool) bool {
	for _, v := range p.image {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func (p *Pipe[T]) Any(pred func(T) bool) bool {
	for _, v := range p.image {
		if pred(v) {
			return true
		}
	}
	return false
}

// Find returns the first element for which pred returns true.
func (p *Pipe[T]) Find(pred func(T) bool) (T, bool) {
	for _, v := range p.image {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FindOr is Find with a fallback returned when no element matches.
func (p *Pipe[T]) FindOr(pred func(T) bool, fallback T) T {
	if v, ok := p.Find(pred); ok {
		return v
	}
	return fallback
}

// Join renders every element with its default format and concatenates them
// with sep between each pair.
func (p *Pipe[T]) Join(sep string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	parts := make([]string, len(p.image))
	for i, v := range p.image {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, sep), nil
}

// MapJoin renders fn of every element and concatenates the results with
// sep between each pair.
func MapJoin[T, U any](p *Pipe[T], sep string, fn func(T) U) (string, error) {
	if err := p.Err(); err != nil {
		return "", err
	}
	parts := make([]string, len(p.Image()))
	for i, v := range p.Image() {
		parts[i] = fmt.Sprintf("%v", fn(v))
	}
	return strings.Join(parts, sep), nil
}

// Shorten renders the image as a bracketed list truncated to at most width
// runes, marking elided elements with an ellipsis.
func (p *Pipe[T]) Shorten(width int) string {
	s, err := p.Join(", ")
	if err != nil {
		return fmt.Sprintf("!%v", err)
	}
	s = "[" + s + "]"
	const placeholder = " ...]"
	if len(s) <= width {
		return s
	}
	cut := width - len(placeholder)
	if cut < 1 {
		cut = 1
	}
	// Break at a separator so no element is rendered half-way.
	if i := strings.LastIndex(s[:cut], ","); i > 0 {
		cut = i
	}
	return s[:cut] + placeholder
}
