// Package sample provides randomized selection over pipelines. Every
// operation draws from one of two explicit sources: Fast, a seedable
// non-cryptographic generator, or Secure, the operating system's
// cryptographically strong source. The source is chosen per call and no
// generator state is shared across pipelines.
package sample

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"time"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

// Source selects the random generator backing an operation.
type Source int

const (
	// Fast is a non-cryptographic pseudo-random generator. It accepts a
	// seed for reproducible draws.
	Fast Source = iota

	// Secure draws from the cryptographically strong system source. It is
	// slower and ignores any seed.
	Secure
)

type config struct {
	source Source
	seed   int64
	seeded bool
}

// Option configures a sampling operation.
type Option func(*config)

// WithSource selects the generator; the default is Fast.
func WithSource(s Source) Option {
	return func(c *config) {
		c.source = s
	}
}

// WithSeed fixes the Fast generator's seed for reproducible draws. It has
// no effect on Secure.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// picker returns a draw function yielding uniform integers in [0, n).
func picker(opts []Option) func(n int) (int, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == Secure {
		return func(n int) (int, error) {
			v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
			if err != nil {
				return 0, err
			}
			return int(v.Int64()), nil
		}
	}
	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return func(n int) (int, error) {
		return rng.Intn(n), nil
	}
}

// Random returns one element drawn uniformly from the image. An empty
// image is an empty-collection error.
func Random[T any](p *pipe.Pipe[T], opts ...Option) (T, error) {
	const op = "sample.Random"
	var zero T
	if err := p.Err(); err != nil {
		return zero, err
	}
	items := p.Image()
	if len(items) == 0 {
		return zero, piperr.EmptyCollection(op)
	}
	i, err := picker(opts)(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// TakeRandom replaces the image with count elements drawn uniformly with
// replacement. A negative count is an invalid argument.
func TakeRandom[T any](p *pipe.Pipe[T], count int, opts ...Option) *pipe.Pipe[T] {
	const op = "sample.TakeRandom"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	if count < 0 {
		return pipe.Abort[T](op, piperr.InvalidArgument(op, "count must be non-negative, got %d", count))
	}
	items := p.Image()
	if len(items) == 0 && count > 0 {
		return pipe.Abort[T](op, piperr.EmptyCollection(op))
	}
	draw := picker(opts)
	out := make([]T, count)
	for i := range out {
		j, err := draw(len(items))
		if err != nil {
			return pipe.Abort[T](op, err)
		}
		out[i] = items[j]
	}
	return pipe.Next(op, out)
}

// Ints constructs a pipeline of count integers drawn uniformly with
// replacement from [low, high] inclusive.
func Ints(low, high, count int, opts ...Option) *pipe.Pipe[int] {
	const op = "sample.Ints"
	if high < low {
		return pipe.Abort[int](op, piperr.InvalidArgument(op, "bounds [%d, %d] are inverted", low, high))
	}
	if count < 0 {
		return pipe.Abort[int](op, piperr.InvalidArgument(op, "count must be non-negative, got %d", count))
	}
	draw := picker(opts)
	out := make([]int, count)
	for i := range out {
		v, err := draw(high - low + 1)
		if err != nil {
			return pipe.Abort[int](op, err)
		}
		out[i] = low + v
	}
	return pipe.Next(op, out)
}

// Shuffle rearranges the image into a uniformly random permutation.
func Shuffle[T any](p *pipe.Pipe[T], opts ...Option) *pipe.Pipe[T] {
	const op = "sample.Shuffle"
	if err := p.Err(); err != nil {
		return pipe.Fault[T](err)
	}
	items := p.Image()
	out := make([]T, len(items))
	copy(out, items)
	draw := picker(opts)
	for i := len(out) - 1; i > 0; i-- {
		j, err := draw(i + 1)
		if err != nil {
			return pipe.Abort[T](op, err)
		}
		out[i], out[j] = out[j], out[i]
	}
	return pipe.Next(op, out)
}
