// Package aggregate provides the reduction and aggregation operations of
// iterflow: folds, short-circuiting folds, running scans, single-pass
// map-reduce, frequency counting, grouping, and the numeric aggregates.
package aggregate

import (
	"cmp"
	"slices"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Number constrains the numeric aggregates to Go's built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Reduce left-folds the image: fn receives the accumulator and the next
// element, starting from seed.
func Reduce[T, A any](p *pipe.Pipe[T], seed A, fn func(acc A, item T) A) (A, error) {
	if err := p.Err(); err != nil {
		var zero A
		return zero, err
	}
	acc := seed
	for _, v := range p.Image() {
		acc = fn(acc, v)
	}
	return acc, nil
}

// ReduceWhile left-folds until fn reports false. The returned accumulator
// is the value carried into the first non-continuing call, not the one
// that call produced.
//
//	ReduceWhile(range 1..100, 0, continue while item < 5, sum)  =>  10
func ReduceWhile[T, A any](p *pipe.Pipe[T], seed A, fn func(acc A, item T) (bool, A)) (A, error) {
	if err := p.Err(); err != nil {
		var zero A
		return zero, err
	}
	acc := seed
	for _, v := range p.Image() {
		cont, next := fn(acc, v)
		if !cont {
			return acc, nil
		}
		acc = next
	}
	return acc, nil
}

// Scan replaces the image with its running fold: element i becomes the
// fold of elements 0 through i on top of seed, so the output length
// matches the input length. The zero value of T is the customary seed for
// numeric addition.
//
//	Scan(range 1..5, 0, add)  =>  [1, 3, 6, 10, 15]
func Scan[T any](p *pipe.Pipe[T], seed T, fn func(acc, item T) T) *pipe.Pipe[T] {
	const op = "aggregate.Scan"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	items := p.Image()
	out := make([]T, len(items))
	acc := seed
	for i, v := range items {
		acc = fn(acc, v)
		out[i] = acc
	}
	return pipe.Next(op, out)
}

// MapReduce maps and folds the image in a single pass, returning the
// mapped sequence together with the final accumulator. The fold consumes
// the original elements, not the mapped ones.
//
//	MapReduce(range 1..3, 0, double, add)  =>  ([2, 4, 6], 6)
func MapReduce[T, U, A any](p *pipe.Pipe[T], seed A, mapFn func(T) U, reduceFn func(acc A, item T) A) (*pipe.Pipe[U], A, error) {
	const op = "aggregate.MapReduce"
	if err := p.Err(); err != nil {
		var zero A
		return pipe.Fault[U](err), zero, err
	}
	items := p.Image()
	mapped := make([]U, len(items))
	acc := seed
	for i, v := range items {
		mapped[i] = mapFn(v)
		acc = reduceFn(acc, v)
	}
	return pipe.Next(op, mapped), acc, nil
}

// FlatMapReduce is reserved for a future revision.
func FlatMapReduce[T, A any](p *pipe.Pipe[T], seed A, fn func(acc A, item T) ([]T, A)) (*pipe.Pipe[T], A, error) {
	const op = "aggregate.FlatMapReduce"
	err := piperr.Unimplemented(op, "flat-map-reduce is not yet available")
	var zero A
	return pipe.Abort[T](op, err), zero, err
}

// Frequencies maps each distinct element to its occurrence count, keyed in
// first-seen order.
func Frequencies[T comparable](p *pipe.Pipe[T]) *pipe.MapPipe[T, int] {
	return FrequenciesBy(p, func(v T) T { return v })
}

// FrequenciesBy maps each distinct key produced by keyFn to the number of
// elements that produced it, keyed in first-seen order.
func FrequenciesBy[T any, K comparable](p *pipe.Pipe[T], keyFn func(T) K) *pipe.MapPipe[K, int] {
	if err := p.Err(); err != nil {
		return pipe.FaultMap[K, int](err)
	}
	out := pipe.NewMapPipe[K, int]()
	for _, v := range p.Image() {
		k := keyFn(v)
		n, _ := out.Get(k)
		out.Set(k, n+1)
	}
	pipe.Observe("aggregate.FrequenciesBy", out.Len())
	return out
}

// GroupBy splits the image into groups keyed by keyFn. Keys are emitted in
// ascending order; elements inside each group keep the image's original
// relative order.
//
//	GroupBy(["ant", "buffalo", "cat", "dingo"], len)  =>  {3: [ant cat], 5: [dingo], 7: [buffalo]}
func GroupBy[T any, K cmp.Ordered](p *pipe.Pipe[T], keyFn func(T) K) *pipe.MapPipe[K, []T] {
	return GroupByValues(p, keyFn, func(v T) T { return v })
}

// GroupByValues is GroupBy with each grouped element replaced by valueFn
// of it.
func GroupByValues[T any, K cmp.Ordered, V any](p *pipe.Pipe[T], keyFn func(T) K, valueFn func(T) V) *pipe.MapPipe[K, []V] {
	if err := p.Err(); err != nil {
		return pipe.FaultMap[K, []V](err)
	}
	groups := make(map[K][]V)
	var keys []K
	for _, v := range p.Image() {
		k := keyFn(v)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], valueFn(v))
	}
	slices.Sort(keys)
	out := pipe.NewMapPipe[K, []V]()
	for _, k := range keys {
		out.Set(k, groups[k])
	}
	pipe.Observe("aggregate.GroupByValues", out.Len())
	return out
}
