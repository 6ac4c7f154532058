package chunk

import (
	"github.com/lguimbarda/iterflow/pipe"
)

// Split partitions the image into two pipes, leaving count elements in the
// first. A negative count is taken from the end; counts beyond either
// bound clamp, so one side may come back empty.
func Split[T any](p *pipe.Pipe[T], count int) (*pipe.Pipe[T], *pipe.Pipe[T]) {
	const op = "chunk.Split"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err), pipe.Fault[T](err)
	}
	items := p.Image()
	n := len(items)
	c := count
	if c < 0 {
		c += n
	}
	c = max(0, min(c, n))
	return pipe.Next(op, clone(items[:c])), pipe.Next(op, clone(items[c:]))
}

// SplitWhile partitions the image at the first element for which pred
// returns false; that element starts the second part.
func SplitWhile[T any](p *pipe.Pipe[T], pred func(T) bool) (*pipe.Pipe[T], *pipe.Pipe[T]) {
	const op = "chunk.SplitWhile"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err), pipe.Fault[T](err)
	}
	items := p.Image()
	cut := len(items)
	for i, v := range items {
		if !pred(v) {
			cut = i
			break
		}
	}
	return pipe.Next(op, clone(items[:cut])), pipe.Next(op, clone(items[cut:]))
}

// SplitWith stably partitions the image by predicate truth: the first pipe
// holds every element for which pred returned true, the second the rest,
// each in its original relative order.
func SplitWith[T any](p *pipe.Pipe[T], pred func(T) bool) (*pipe.Pipe[T], *pipe.Pipe[T]) {
	const op = "chunk.SplitWith"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err), pipe.Fault[T](err)
	}
	var truthy, falsy []T
	for _, v := range p.Image() {
		if pred(v) {
			truthy = append(truthy, v)
		} else {
			falsy = append(falsy, v)
		}
	}
	return pipe.Next(op, truthy), pipe.Next(op, falsy)
}

// SplitWithMap is the mapping dual of SplitWith: it partitions the
// bindings by pred into two mappings, keeping first-seen key order within
// each.
func SplitWithMap[K comparable, V any](mp *pipe.MapPipe[K, V], pred func(K, V) bool) (*pipe.MapPipe[K, V], *pipe.MapPipe[K, V]) {
	if err := mp.Err(); err != nil {
		return pipe.FaultMap[K, V](err), pipe.FaultMap[K, V](err)
	}
	truthy := pipe.NewMapPipe[K, V]()
	falsy := pipe.NewMapPipe[K, V]()
	for _, kv := range mp.Entries() {
		if pred(kv.First, kv.Second) {
			truthy.Set(kv.First, kv.Second)
		} else {
			falsy.Set(kv.First, kv.Second)
		}
	}
	return truthy, falsy
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
