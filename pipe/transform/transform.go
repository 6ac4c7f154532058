// Package transform provides the element-rewriting operations of iterflow:
// type-changing maps, flattening, and the combinatoric expansions. All
// results are materialized eagerly, so the combinatoric operations grow
// factorially with their inputs.
package transform

import (
	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Map replaces each element with fn of it, producing a pipeline of the
// mapped type.
func Map[In, Out any](p *pipe.Pipe[In], fn func(In) Out) *pipe.Pipe[Out] {
	const op = "transform.Map"
	if err := p.Err(); err != nil {
		return pipe.Fault[Out](err)
	}
	items := p.Image()
	out := make([]Out, len(items))
	for i, v := range items {
		out[i] = fn(v)
	}
	return pipe.Next(op, out)
}

// MapMap rewrites every entry of a mapping pipeline through fn. Rewritten
// keys that collide keep the position of the earliest entry producing them.
func MapMap[K1, K2 comparable, V1, V2 any](mp *pipe.MapPipe[K1, V1], fn func(K1, V1) (K2, V2)) *pipe.MapPipe[K2, V2] {
	if err := mp.Err(); err != nil {
		return pipe.FaultMap[K2, V2](err)
	}
	out := pipe.NewMapPipe[K2, V2]()
	for _, entry := range mp.Entries() {
		out.Set(fn(entry.First, entry.Second))
	}
	pipe.Observe("transform.MapMap", out.Len())
	return out
}

// FlatMap maps each element to a slice and concatenates the results in
// order.
func FlatMap[In, Out any](p *pipe.Pipe[In], fn func(In) []Out) *pipe.Pipe[Out] {
	const op = "transform.FlatMap"
	if err := p.Err(); err != nil {
		return pipe.Fault[Out](err)
	}
	var out []Out
	for _, v := range p.Image() {
		out = append(out, fn(v)...)
	}
	return pipe.Next(op, out)
}

// Flatten concatenates one level of nesting.
func Flatten[T any](p *pipe.Pipe[[]T]) *pipe.Pipe[T] {
	const op = "transform.Flatten"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	var out []T
	for _, row := range p.Image() {
		out = append(out, row...)
	}
	return pipe.Next(op, out)
}

// MapIntersperse maps each element through fn and places sep between
// consecutive results.
//
//	MapIntersperse([1, 2, 3], 0, double)  =>  [2, 0, 4, 0, 6]
func MapIntersperse[In, Out any](p *pipe.Pipe[In], sep Out, fn func(In) Out) *pipe.Pipe[Out] {
	const op = "transform.MapIntersperse"
	if err := p.Err(); err != nil {
		return pipe.Fault[Out](err)
	}
	items := p.Image()
	var out []Out
	for i, v := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, fn(v))
	}
	return pipe.Next(op, out)
}

// FindIndices replaces the image with the positions of the elements
// satisfying pred.
func FindIndices[T any](p *pipe.Pipe[T], pred func(T) bool) *pipe.Pipe[int] {
	const op = "transform.FindIndices"
	if err := p.Err(); err != nil {
		return pipe.Fault[int](err)
	}
	var out []int
	for i, v := range p.Image() {
		if pred(v) {
			out = append(out, i)
		}
	}
	return pipe.Next(op, out)
}

// Cartesian pairs every element of the image with every element of other,
// in row-major order.
func Cartesian[A, B any](p *pipe.Pipe[A], other []B) *pipe.Pipe[pipe.Pair[A, B]] {
	const op = "transform.Cartesian"
	if err := p.Err(); err != nil {
		return pipe.Fault[pipe.Pair[A, B]](err)
	}
	items := p.Image()
	out := make([]pipe.Pair[A, B], 0, len(items)*len(other))
	for _, a := range items {
		for _, b := range other {
			out = append(out, pipe.PairOf(a, b))
		}
	}
	return pipe.Next(op, out)
}

// CartesianSelf produces every repeat-length tuple of image elements,
// positions independent, in row-major order. A negative repeat is an
// invalid argument; zero yields the single empty tuple.
func CartesianSelf[T any](p *pipe.Pipe[T], repeat int) *pipe.Pipe[[]T] {
	const op = "transform.CartesianSelf"
	return tuples(p, op, repeat, func(n, r int) [][]int {
		return productIndices(n, r)
	})
}

// Combinations produces every r-length ascending selection of distinct
// positions, in lexicographic order.
//
//	Combinations([1, 2, 3], 2)  =>  [[1, 2], [1, 3], [2, 3]]
func Combinations[T any](p *pipe.Pipe[T], r int) *pipe.Pipe[[]T] {
	const op = "transform.Combinations"
	return tuples(p, op, r, func(n, r int) [][]int {
		return selectIndices(n, r, false, false)
	})
}

// CombinationsWithReplacement produces every r-length non-descending
// selection of positions, in lexicographic order.
func CombinationsWithReplacement[T any](p *pipe.Pipe[T], r int) *pipe.Pipe[[]T] {
	const op = "transform.CombinationsWithReplacement"
	return tuples(p, op, r, func(n, r int) [][]int {
		return selectIndices(n, r, true, false)
	})
}

// Permutations produces every r-length ordered arrangement of distinct
// positions, in lexicographic order.
func Permutations[T any](p *pipe.Pipe[T], r int) *pipe.Pipe[[]T] {
	const op = "transform.Permutations"
	return tuples(p, op, r, func(n, r int) [][]int {
		return selectIndices(n, r, false, true)
	})
}

// tuples materializes the index tuples produced by gen as element tuples.
func tuples[T any](p *pipe.Pipe[T], op string, r int, gen func(n, r int) [][]int) *pipe.Pipe[[]T] {
	if err := p.Err(); err != nil {
		return pipe.Fault[[]T](err)
	}
	if r < 0 {
		return pipe.Abort[[]T](op, piperr.InvalidArgument(op, "length must be non-negative, got %d", r))
	}
	items := p.Image()
	indices := gen(len(items), r)
	out := make([][]T, len(indices))
	for i, tuple := range indices {
		row := make([]T, len(tuple))
		for j, idx := range tuple {
			row[j] = items[idx]
		}
		out[i] = row
	}
	return pipe.Next(op, out)
}

// productIndices enumerates [0,n)^r in row-major order.
func productIndices(n, r int) [][]int {
	if r == 0 {
		return [][]int{{}}
	}
	if n == 0 {
		return nil
	}
	var out [][]int
	tuple := make([]int, r)
	for {
		out = append(out, append([]int(nil), tuple...))
		i := r - 1
		for ; i >= 0; i-- {
			tuple[i]++
			if tuple[i] < n {
				break
			}
			tuple[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// selectIndices enumerates r-length index tuples over [0,n) in
// lexicographic order. With replacement, positions may repeat in
// non-descending order; ordered additionally distinguishes arrangements.
func selectIndices(n, r int, replacement, ordered bool) [][]int {
	var out [][]int
	tuple := make([]int, 0, r)
	used := make([]bool, n)
	var walk func()
	walk = func() {
		if len(tuple) == r {
			out = append(out, append([]int(nil), tuple...))
			return
		}
		start := 0
		if !ordered && len(tuple) > 0 {
			start = tuple[len(tuple)-1]
			if !replacement {
				start++
			}
		}
		for i := start; i < n; i++ {
			if ordered && used[i] {
				continue
			}
			used[i] = true
			tuple = append(tuple, i)
			walk()
			tuple = tuple[:len(tuple)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
