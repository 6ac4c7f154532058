// Package chunk provides the windowing and partitioning operations of
// iterflow: predicate-run chunking, fixed-size windows with stride and
// leftover padding, positional slicing, range relocation, and two-way
// splits.
package chunk

import (
	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// By splits the image into maximal runs of consecutive elements sharing
// the same predicate result.
//
//	By([1, 2, 2, 3, 4, 4, 6, 7, 7, 7], odd)  =>  [[1], [2, 2], [3], [4, 4, 6], [7, 7, 7]]
func By[T any](p *pipe.Pipe[T], pred func(T) bool) *pipe.Pipe[[]T] {
	if err := p.Err(); err != nil {
		return pipe.Fault[[]T](err)
	}
	return pipe.Next("chunk.By", runs(p.Image(), pred, false))
}

// ByEject is By with singleton trigger groups removed: a run is dropped
// exactly when it has length one and its predicate value was true. Longer
// true-runs survive.
//
//	ByEject(["a", "b", "1", "c", "d", "2", "e", "f"], isDigit)  =>  [["a", "b"], ["c", "d"], ["e", "f"]]
func ByEject[T any](p *pipe.Pipe[T], pred func(T) bool) *pipe.Pipe[[]T] {
	if err := p.Err(); err != nil {
		return pipe.Fault[[]T](err)
	}
	return pipe.Next("chunk.ByEject", runs(p.Image(), pred, true))
}

func runs[T any](items []T, pred func(T) bool, eject bool) [][]T {
	var out [][]T
	i := 0
	for i < len(items) {
		truth := pred(items[i])
		j := i + 1
		for j < len(items) && pred(items[j]) == truth {
			j++
		}
		if !eject || j-i > 1 || !truth {
			run := make([]T, j-i)
			copy(run, items[i:j])
			out = append(out, run)
		}
		i = j
	}
	return out
}

// Every tiles the image into non-overlapping windows of count elements;
// the final window may be short. It is EveryStride with stride == count
// and no leftover.
func Every[T any](p *pipe.Pipe[T], count int) *pipe.Pipe[[]T] {
	return EveryStride(p, count, count, nil)
}

// EveryStride tiles the image into windows of count elements whose start
// positions advance by stride. A stride smaller than count overlaps
// windows; a larger one skips the elements in between. When the final
// window comes up short it is extended from leftover, trimmed to the
// window's remaining capacity, and otherwise left short.
//
//	EveryStride([1, 2, 3, 4, 5, 6], 3, 2, [7])  =>  [[1, 2, 3], [3, 4, 5], [5, 6, 7]]
func EveryStride[T any](p *pipe.Pipe[T], count, stride int, leftover []T) *pipe.Pipe[[]T] {
	const op = "chunk.EveryStride"
	if err := p.Err(); err != nil {
		return pipe.Fault[[]T](err)
	}
	if count <= 0 || stride <= 0 {
		return pipe.Abort[[]T](op, piperr.InvalidArgument(op, "count and stride must be positive, got %d and %d", count, stride))
	}
	items := p.Image()
	var out [][]T
	for i := 0; i < len(items); i += stride {
		end := min(i+count, len(items))
		window := make([]T, 0, count)
		window = append(window, items[i:end]...)
		out = append(out, window)
	}
	// Only the final window is ever padded, and only up to its remaining
	// capacity; surplus leftover elements are discarded.
	if n := len(out); n > 0 && len(out[n-1]) < count && len(leftover) > 0 {
		pad := min(count-len(out[n-1]), len(leftover))
		out[n-1] = append(out[n-1], leftover[:pad]...)
	}
	return pipe.Next(op, out)
}

// While is reserved for a future revision.
func While[T any](p *pipe.Pipe[T]) *pipe.Pipe[[]T] {
	const op = "chunk.While"
	return pipe.Abort[[]T](op, piperr.Unimplemented(op, "chunk-while is not yet available"))
}
