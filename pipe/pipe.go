// Package pipe provides the eager pipeline container at the heart of
// iterflow: a Pipe captures an input sequence (the domain), carries a
// current working value (the image), and threads transformations together.
//
// Every operation fully materializes its result before returning; there is
// no laziness and no streaming. Operations that keep the element type are
// fluent methods on Pipe. Operations that change the element type or the
// shape of the image live in the concern subpackages (chunk, sets,
// aggregate, ranges, sample, zip, transform) as package-level generic
// functions returning a fresh typed pipe.
//
// A Pipe is a single-owner, sequentially chained value. It is not safe for
// concurrent mutation. Once an operation fails, the error sticks: every
// later call observes it, leaves the image untouched, and passes it through,
// so terminal extraction reports the first failure in the chain.
package pipe

import (
	"iter"
	"slices"
)

// Pipe is an eager transformation pipeline over a sequence of T.
type Pipe[T any] struct {
	domain []T
	image  []T
	err    error
}

// From constructs a pipeline whose domain and image are both the given
// sequence. The input slice is copied so later chained calls never alias
// the caller's data.
func From[T any](items []T) *Pipe[T] {
	dom := make([]T, len(items))
	copy(dom, items)
	img := make([]T, len(items))
	copy(img, items)
	return &Pipe[T]{domain: dom, image: img}
}

// FromSeq constructs a pipeline by draining a Go iterator sequence.
func FromSeq[T any](seq iter.Seq[T]) *Pipe[T] {
	var items []T
	for v := range seq {
		items = append(items, v)
	}
	return &Pipe[T]{domain: items, image: items}
}

// Of constructs a pipeline directly over a computed image. It is used by
// the concern subpackages to hand a type-changing result back as a new
// pipe; the computed image doubles as the new pipe's domain.
func Of[T any](image []T) *Pipe[T] {
	return &Pipe[T]{domain: image, image: image}
}

// Fault constructs a poisoned pipeline carrying err. Every operation on it
// is a no-op and every terminal extraction returns err.
func Fault[T any](err error) *Pipe[T] {
	return &Pipe[T]{err: err}
}

// Next constructs the pipe produced by op over a freshly computed image
// and notifies the observer. It is the subpackages' counterpart of the
// fluent methods' in-place replacement.
func Next[T any](op string, image []T) *Pipe[T] {
	Observe(op, len(image))
	return Of(image)
}

// Abort constructs the poisoned pipe produced when op fails with err and
// notifies the observer.
func Abort[T any](op string, err error) *Pipe[T] {
	ObserveFailure(op, err)
	return Fault[T](err)
}

// Err reports the first error raised by any operation in the chain, or nil.
func (p *Pipe[T]) Err() error {
	return p.err
}

// Image returns the current working value. The returned slice is the
// pipe's backing storage; callers that mutate it mutate the pipe.
func (p *Pipe[T]) Image() []T {
	return p.image
}

// Domain returns the original input captured at construction time. It is
// kept for diagnostics and is never consulted by transformations.
func (p *Pipe[T]) Domain() []T {
	return p.domain
}

// ToSlice extracts the image as a concrete slice, or reports the first
// error raised in the chain.
func (p *Pipe[T]) ToSlice() ([]T, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make([]T, len(p.image))
	copy(out, p.image)
	return out, nil
}

// Len reports the number of elements in the image.
func (p *Pipe[T]) Len() int {
	return len(p.image)
}

// IsEmpty reports whether the image holds no elements.
func (p *Pipe[T]) IsEmpty() bool {
	return len(p.image) == 0
}

// fail poisons the pipe with err and notifies the observer.
func (p *Pipe[T]) fail(op string, err error) *Pipe[T] {
	p.err = err
	ObserveFailure(op, err)
	return p
}

// done notifies the observer that op replaced the image.
func (p *Pipe[T]) done(op string) *Pipe[T] {
	Observe(op, len(p.image))
	return p
}

// replace installs a freshly computed image.
func (p *Pipe[T]) replace(op string, image []T) *Pipe[T] {
	p.image = image
	return p.done(op)
}

// Equal reports whether two pipelines hold equal images. Domains are
// deliberately ignored: two pipes that converged on the same value are
// equal regardless of where they started.
func Equal[T comparable](a, b *Pipe[T]) bool {
	return slices.Equal(a.image, b.image)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[A, B any](a *Pipe[A], b *Pipe[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.image, b.image, eq)
}

// Pair is the two-element tuple produced by zip, with_index, and the
// mapping pipeline's entry view.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
