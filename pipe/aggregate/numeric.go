package aggregate

import (
	"cmp"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Sum returns the sum of all elements; an empty image sums to zero.
func Sum[T Number](p *pipe.Pipe[T]) (T, error) {
	return Reduce(p, 0, func(acc, v T) T { return acc + v })
}

// Product returns the product of all elements; an empty image multiplies
// to one.
func Product[T Number](p *pipe.Pipe[T]) (T, error) {
	return Reduce(p, 1, func(acc, v T) T { return acc * v })
}

// Avg returns the arithmetic mean of the image. An empty image is an
// empty-collection error.
func Avg[T Number](p *pipe.Pipe[T]) (float64, error) {
	const op = "aggregate.Avg"
	if err := p.Err(); err != nil {
		return 0, err
	}
	if p.IsEmpty() {
		return 0, piperr.EmptyCollection(op)
	}
	var total float64
	for _, v := range p.Image() {
		total += float64(v)
	}
	return total / float64(p.Len()), nil
}

// Min returns the smallest element. An empty image is an empty-collection
// error.
func Min[T cmp.Ordered](p *pipe.Pipe[T]) (T, error) {
	return MinBy(p, func(v T) T { return v })
}

// Max returns the largest element. An empty image is an empty-collection
// error.
func Max[T cmp.Ordered](p *pipe.Pipe[T]) (T, error) {
	return MaxBy(p, func(v T) T { return v })
}

// MinBy returns the element with the smallest comparison key. Ties go to
// the earliest element.
func MinBy[T any, K cmp.Ordered](p *pipe.Pipe[T], key func(T) K) (T, error) {
	return extreme(p, "aggregate.MinBy", key, func(candidate, best K) bool { return candidate < best })
}

// MaxBy returns the element with the largest comparison key. Ties go to
// the earliest element.
func MaxBy[T any, K cmp.Ordered](p *pipe.Pipe[T], key func(T) K) (T, error) {
	return extreme(p, "aggregate.MaxBy", key, func(candidate, best K) bool { return candidate > best })
}

// MinOr is Min with a fallback returned verbatim on an empty image,
// bypassing the comparison entirely.
func MinOr[T cmp.Ordered](p *pipe.Pipe[T], fallback T) T {
	if v, err := Min(p); err == nil {
		return v
	}
	return fallback
}

// MaxOr is Max with a fallback returned verbatim on an empty image.
func MaxOr[T cmp.Ordered](p *pipe.Pipe[T], fallback T) T {
	if v, err := Max(p); err == nil {
		return v
	}
	return fallback
}

// MinMax returns the smallest and largest elements in one call.
func MinMax[T cmp.Ordered](p *pipe.Pipe[T]) (T, T, error) {
	lo, err := Min(p)
	if err != nil {
		var zero T
		return zero, zero, err
	}
	hi, _ := Max(p)
	return lo, hi, nil
}

// MinMaxOr is MinMax with a fallback substituted for both bounds on an
// empty image.
func MinMaxOr[T cmp.Ordered](p *pipe.Pipe[T], fallback T) (T, T) {
	lo, hi, err := MinMax(p)
	if err != nil {
		return fallback, fallback
	}
	return lo, hi
}

func extreme[T any, K cmp.Ordered](p *pipe.Pipe[T], op string, key func(T) K, better func(candidate, best K) bool) (T, error) {
	var zero T
	if err := p.Err(); err != nil {
		return zero, err
	}
	items := p.Image()
	if len(items) == 0 {
		return zero, piperr.EmptyCollection(op)
	}
	best := items[0]
	bestKey := key(best)
	for _, v := range items[1:] {
		if k := key(v); better(k, bestKey) {
			best, bestKey = v, k
		}
	}
	return best, nil
}
