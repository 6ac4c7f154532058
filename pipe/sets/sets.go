// Package sets provides the deduplication and set-algebra operations of
// iterflow. Consecutive dedup collapses runs in place; the algebraic
// operations treat the image and their argument as sets and return their
// result in ascending sorted order, a deliberate contract rather than a
// side effect of any particular data structure.
package sets

import (
	"cmp"
	"slices"

	"github.com/lguimbarda/iterflow/pipe"
)

// Dedup collapses runs of consecutive equal elements to a single element.
// Global duplicates in separate runs survive:
//
//	Dedup([1, 2, 3, 3, 2, 1])  =>  [1, 2, 3, 2, 1]
func Dedup[T comparable](p *pipe.Pipe[T]) *pipe.Pipe[T] {
	return DedupBy(p, func(v T) T { return v })
}

// DedupBy collapses consecutive elements whose key is unchanged from the
// previous element's key. The first element is always kept.
func DedupBy[T any, K comparable](p *pipe.Pipe[T], key func(T) K) *pipe.Pipe[T] {
	const op = "sets.DedupBy"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	items := p.Image()
	if len(items) == 0 {
		return pipe.Next[T](op, nil)
	}
	out := []T{items[0]}
	prev := key(items[0])
	for _, v := range items[1:] {
		k := key(v)
		if k != prev {
			out = append(out, v)
		}
		prev = k
	}
	return pipe.Next(op, out)
}

// Unique removes all duplicated elements, keeping the first occurrence of
// each in its original position.
func Unique[T comparable](p *pipe.Pipe[T]) *pipe.Pipe[T] {
	return UniqueBy(p, func(v T) T { return v })
}

// UniqueBy removes elements whose key has been seen before, keeping the
// first occurrence per key in its original position.
func UniqueBy[T any, K comparable](p *pipe.Pipe[T], key func(T) K) *pipe.Pipe[T] {
	const op = "sets.UniqueBy"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	seen := make(map[K]struct{})
	var out []T
	for _, v := range p.Image() {
		k := key(v)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, v)
		}
	}
	return pipe.Next(op, out)
}

// Duplicates keeps exactly the values whose total occurrence count exceeds
// one, each reported once in first-seen order.
//
//	Duplicates([1, 1, 1, 2, 2, 3, 4, 4])  =>  [1, 2, 4]
func Duplicates[T comparable](p *pipe.Pipe[T]) *pipe.Pipe[T] {
	const op = "sets.Duplicates"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	counts := make(map[T]int)
	var order []T
	for _, v := range p.Image() {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	var out []T
	for _, v := range order {
		if counts[v] > 1 {
			out = append(out, v)
		}
	}
	return pipe.Next(op, out)
}

// Union replaces the image with the set union of image and other, in
// ascending order.
func Union[T cmp.Ordered](p *pipe.Pipe[T], other []T) *pipe.Pipe[T] {
	const op = "sets.Union"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	members := toSet(p.Image())
	for _, v := range other {
		members[v] = struct{}{}
	}
	return pipe.Next(op, sorted(members))
}

// Intersection replaces the image with the set intersection of image and
// other, in ascending order.
func Intersection[T cmp.Ordered](p *pipe.Pipe[T], other []T) *pipe.Pipe[T] {
	const op = "sets.Intersection"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	right := toSet(other)
	members := make(map[T]struct{})
	for _, v := range p.Image() {
		if _, ok := right[v]; ok {
			members[v] = struct{}{}
		}
	}
	return pipe.Next(op, sorted(members))
}

// Difference replaces the image with the set difference image minus
// other, in ascending order.
func Difference[T cmp.Ordered](p *pipe.Pipe[T], other []T) *pipe.Pipe[T] {
	const op = "sets.Difference"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	right := toSet(other)
	members := make(map[T]struct{})
	for _, v := range p.Image() {
		if _, ok := right[v]; !ok {
			members[v] = struct{}{}
		}
	}
	return pipe.Next(op, sorted(members))
}

// SymmetricDifference replaces the image with the elements in exactly one
// of image and other, in ascending order.
func SymmetricDifference[T cmp.Ordered](p *pipe.Pipe[T], other []T) *pipe.Pipe[T] {
	const op = "sets.SymmetricDifference"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	left := toSet(p.Image())
	right := toSet(other)
	members := make(map[T]struct{})
	for v := range left {
		if _, ok := right[v]; !ok {
			members[v] = struct{}{}
		}
	}
	for v := range right {
		if _, ok := left[v]; !ok {
			members[v] = struct{}{}
		}
	}
	return pipe.Next(op, sorted(members))
}

// Subset reports whether every element of other appears in the image.
// With proper set, other must additionally not cover the whole image.
func Subset[T comparable](p *pipe.Pipe[T], other []T, proper bool) bool {
	left := toSet(p.Image())
	right := toSet(other)
	return contains(left, right) && (!proper || len(right) < len(left))
}

// Superset reports whether every element of the image appears in other.
// With proper set, other must additionally hold an element the image lacks.
func Superset[T comparable](p *pipe.Pipe[T], other []T, proper bool) bool {
	left := toSet(p.Image())
	right := toSet(other)
	return contains(right, left) && (!proper || len(right) > len(left))
}

// Disjoint reports whether the image and other share no elements.
func Disjoint[T comparable](p *pipe.Pipe[T], other []T) bool {
	left := toSet(p.Image())
	for _, v := range other {
		if _, ok := left[v]; ok {
			return false
		}
	}
	return true
}

// Member reports whether element appears in the image.
func Member[T comparable](p *pipe.Pipe[T], element T) bool {
	for _, v := range p.Image() {
		if v == element {
			return true
		}
	}
	return false
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}

// contains reports whether every member of inner is in outer.
func contains[T comparable](outer, inner map[T]struct{}) bool {
	for v := range inner {
		if _, ok := outer[v]; !ok {
			return false
		}
	}
	return true
}

func sorted[T cmp.Ordered](members map[T]struct{}) []T {
	out := make([]T, 0, len(members))
	for v := range members {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
