package pipe

import (
	"cmp"
	"slices"
)

// MapPipe is the mapping counterpart of Pipe: unique keys bound to values,
// enumerated in the order keys were first produced upstream. Go's built-in
// map has no intrinsic order, so MapPipe keeps its own ordered key list and
// every operation that promises "relative order" walks that list.
type MapPipe[K comparable, V any] struct {
	keys  []K
	index map[K]int
	vals  []V
	err   error
}

// NewMapPipe returns an empty mapping pipeline.
func NewMapPipe[K comparable, V any]() *MapPipe[K, V] {
	return &MapPipe[K, V]{index: make(map[K]int)}
}

// FromPairs constructs a mapping pipeline from key-value pairs, preserving
// first-seen key order. A repeated key rebinds the value without moving
// the key.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *MapPipe[K, V] {
	mp := NewMapPipe[K, V]()
	for _, kv := range pairs {
		mp.Set(kv.First, kv.Second)
	}
	return mp
}

// FromMap constructs a mapping pipeline from a Go map with keys in
// ascending order, since the map itself carries no usable order.
func FromMap[K cmp.Ordered, V any](m map[K]V) *MapPipe[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	mp := NewMapPipe[K, V]()
	for _, k := range keys {
		mp.Set(k, m[k])
	}
	return mp
}

// FaultMap constructs a poisoned mapping pipeline carrying err.
func FaultMap[K comparable, V any](err error) *MapPipe[K, V] {
	return &MapPipe[K, V]{index: make(map[K]int), err: err}
}

// Err reports the first error raised by any operation in the chain, or nil.
func (mp *MapPipe[K, V]) Err() error {
	return mp.err
}

// Set binds key to value, appending the key when it is new.
func (mp *MapPipe[K, V]) Set(key K, value V) *MapPipe[K, V] {
	if mp.err != nil {
		return mp
	}
	if i, ok := mp.index[key]; ok {
		mp.vals[i] = value
		return mp
	}
	mp.index[key] = len(mp.keys)
	mp.keys = append(mp.keys, key)
	mp.vals = append(mp.vals, value)
	return mp
}

// Get returns the value bound to key.
func (mp *MapPipe[K, V]) Get(key K) (V, bool) {
	if i, ok := mp.index[key]; ok {
		return mp.vals[i], true
	}
	var zero V
	return zero, false
}

// Len reports the number of bindings.
func (mp *MapPipe[K, V]) Len() int {
	return len(mp.keys)
}

// Keys returns the keys in first-seen order.
func (mp *MapPipe[K, V]) Keys() []K {
	return slices.Clone(mp.keys)
}

// Values returns the values in first-seen key order.
func (mp *MapPipe[K, V]) Values() []V {
	return slices.Clone(mp.vals)
}

// Entries returns the bindings as pairs in first-seen key order.
func (mp *MapPipe[K, V]) Entries() []Pair[K, V] {
	out := make([]Pair[K, V], len(mp.keys))
	for i, k := range mp.keys {
		out[i] = Pair[K, V]{First: k, Second: mp.vals[i]}
	}
	return out
}

// ToMap extracts the bindings as a plain Go map, or reports the chain's
// first error.
func (mp *MapPipe[K, V]) ToMap() (map[K]V, error) {
	if mp.err != nil {
		return nil, mp.err
	}
	out := make(map[K]V, len(mp.keys))
	for i, k := range mp.keys {
		out[k] = mp.vals[i]
	}
	return out, nil
}

// Merge inserts every binding of other into this mapping, rebinding
// existing keys and appending new ones in other's order.
func (mp *MapPipe[K, V]) Merge(other *MapPipe[K, V]) *MapPipe[K, V] {
	if mp.err != nil {
		return mp
	}
	if other.err != nil {
		mp.err = other.err
		return mp
	}
	for i, k := range other.keys {
		mp.Set(k, other.vals[i])
	}
	return mp
}

// MapValues replaces each value with fn of it, keeping keys and order.
func (mp *MapPipe[K, V]) MapValues(fn func(V) V) *MapPipe[K, V] {
	if mp.err != nil {
		return mp
	}
	for i := range mp.vals {
		mp.vals[i] = fn(mp.vals[i])
	}
	return mp
}

// Filter keeps only the bindings for which pred returns true, preserving
// the surviving keys' relative order.
func (mp *MapPipe[K, V]) Filter(pred func(K, V) bool) *MapPipe[K, V] {
	if mp.err != nil {
		return mp
	}
	keys := mp.keys[:0:0]
	vals := mp.vals[:0:0]
	index := make(map[K]int)
	for i, k := range mp.keys {
		if pred(k, mp.vals[i]) {
			index[k] = len(keys)
			keys = append(keys, k)
			vals = append(vals, mp.vals[i])
		}
	}
	mp.keys, mp.vals, mp.index = keys, vals, index
	return mp
}

// EqualMaps reports whether two mapping pipelines hold the same bindings,
// regardless of key order.
func EqualMaps[K, V comparable](a, b *MapPipe[K, V]) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for i, k := range a.keys {
		if v, ok := b.Get(k); !ok || v != a.vals[i] {
			return false
		}
	}
	return true
}
