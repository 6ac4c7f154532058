// Package zip pairs pipelines with sibling collections: zipping, unzipping,
// transposition, and index attachment. Every operation halts at the
// shortest input unless it explicitly pads.
package zip

import (
	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Zip pairs the image element-wise with other, halting at the shorter of
// the two.
func Zip[A, B any](p *pipe.Pipe[A], other []B) *pipe.Pipe[pipe.Pair[A, B]] {
	return ZipWith(p, other, pipe.PairOf[A, B])
}

// ZipWith pairs the image element-wise with other through fn, halting at
// the shorter of the two.
func ZipWith[A, B, U any](p *pipe.Pipe[A], other []B, fn func(A, B) U) *pipe.Pipe[U] {
	const op = "zip.ZipWith"
	if err := p.Err(); err != nil {
		return pipe.Fault[U](err)
	}
	items := p.Image()
	n := min(len(items), len(other))
	out := make([]U, n)
	for i := 0; i < n; i++ {
		out[i] = fn(items[i], other[i])
	}
	return pipe.Next(op, out)
}

// Zip3 pairs the image element-wise with two other collections, halting at
// the shortest of the three.
func Zip3[A, B, C any](p *pipe.Pipe[A], second []B, third []C) *pipe.Pipe[pipe.Pair[A, pipe.Pair[B, C]]] {
	return ZipWith3(p, second, third, func(a A, b B, c C) pipe.Pair[A, pipe.Pair[B, C]] {
		return pipe.PairOf(a, pipe.PairOf(b, c))
	})
}

// ZipWith3 combines the image with two other collections through fn,
// halting at the shortest of the three.
func ZipWith3[A, B, C, U any](p *pipe.Pipe[A], second []B, third []C, fn func(A, B, C) U) *pipe.Pipe[U] {
	const op = "zip.ZipWith3"
	if err := p.Err(); err != nil {
		return pipe.Fault[U](err)
	}
	items := p.Image()
	n := min(len(items), len(second), len(third))
	out := make([]U, n)
	for i := 0; i < n; i++ {
		out[i] = fn(items[i], second[i], third[i])
	}
	return pipe.Next(op, out)
}

// ZipReduce folds over the columns of a sequence-of-sequences image: the
// accumulator meets the slice of row values at each position, halting at
// the shortest row.
//
//	ZipReduce([[1, 1], [2, 2], [3, 3]], 0, sum of column)  =>  folds [1 2 3] then [1 2 3]
func ZipReduce[T, A any](p *pipe.Pipe[[]T], seed A, fn func(acc A, column []T) A) (A, error) {
	if err := p.Err(); err != nil {
		var zero A
		return zero, err
	}
	rows := p.Image()
	if len(rows) == 0 {
		return seed, nil
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		width = min(width, len(row))
	}
	acc := seed
	for i := 0; i < width; i++ {
		column := make([]T, len(rows))
		for j, row := range rows {
			column[j] = row[i]
		}
		acc = fn(acc, column)
	}
	return acc, nil
}

// ZipReduce3 is reserved for a future revision.
func ZipReduce3[T, A any](p *pipe.Pipe[[]T], second, third [][]T, seed A, fn func(acc A, column []T) A) (A, error) {
	const op = "zip.ZipReduce3"
	var zero A
	return zero, piperr.Unimplemented(op, "three-collection zip-reduce is not yet available")
}

// Unzip splits a pipeline of pairs into the pipeline of first components
// and the slice of second components.
func Unzip[A, B any](p *pipe.Pipe[pipe.Pair[A, B]]) (*pipe.Pipe[A], []B) {
	const op = "zip.Unzip"
	if err := p.Err(); err != nil {
		return pipe.Fault[A](err), nil
	}
	items := p.Image()
	firsts := make([]A, len(items))
	seconds := make([]B, len(items))
	for i, pr := range items {
		firsts[i] = pr.First
		seconds[i] = pr.Second
	}
	return pipe.Next(op, firsts), seconds
}

// UnzipMap splits a mapping pipeline into the pipeline of keys and the
// slice of values, both in entry order.
func UnzipMap[K comparable, V any](mp *pipe.MapPipe[K, V]) (*pipe.Pipe[K], []V) {
	const op = "zip.UnzipMap"
	if err := mp.Err(); err != nil {
		return pipe.Fault[K](err), nil
	}
	return pipe.Next(op, mp.Keys()), mp.Values()
}

// Transpose swaps the rows and columns of a sequence-of-sequences image.
// Ragged rows are padded with fill up to the longest row before the swap.
//
//	Transpose([[1, 2], [3], [4, 5, 6]], 0)  =>  [[1, 3, 4], [2, 0, 5], [0, 0, 6]]
func Transpose[T any](p *pipe.Pipe[[]T], fill T) *pipe.Pipe[[]T] {
	const op = "zip.Transpose"
	if err := p.Err(); err != nil {
		return pipe.Fault[[]T](err)
	}
	rows := p.Image()
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	out := make([][]T, width)
	for i := range out {
		column := make([]T, len(rows))
		for j, row := range rows {
			if i < len(row) {
				column[j] = row[i]
			} else {
				column[j] = fill
			}
		}
		out[i] = column
	}
	return pipe.Next(op, out)
}

// WithIndex pairs each element with its position counted from offset.
func WithIndex[T any](p *pipe.Pipe[T], offset int) *pipe.Pipe[pipe.Pair[T, int]] {
	return WithIndexFunc(p, offset, pipe.PairOf[T, int])
}

// WithIndexFunc combines each element with its position counted from
// offset through fn.
func WithIndexFunc[T, U any](p *pipe.Pipe[T], offset int, fn func(T, int) U) *pipe.Pipe[U] {
	const op = "zip.WithIndexFunc"
	if err := p.Err(); err != nil {
		return pipe.Fault[U](err)
	}
	items := p.Image()
	out := make([]U, len(items))
	for i, v := range items {
		out[i] = fn(v, offset+i)
	}
	return pipe.Next(op, out)
}
