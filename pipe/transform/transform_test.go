package transform_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
	"github.com/lguimbarda/iterflow/pipe/transform"
)

func TestMap(t *testing.T) {
	got := transform.Map(pipe.From([]int{1, 2, 3}), strconv.Itoa)

	require.Equal(t, []string{"1", "2", "3"}, got.Image())
}

func TestMapMap(t *testing.T) {
	mp := pipe.FromMap(map[string]int{"a": 1, "b": 2})
	got := transform.MapMap(mp, func(k string, v int) (string, int) {
		return k + k, v * 10
	})

	require.Equal(t, []string{"aa", "bb"}, got.Keys())
	require.Equal(t, []int{10, 20}, got.Values())
}

func TestMapMapCollidingKeysKeepEarliestPosition(t *testing.T) {
	mp := pipe.FromPairs([]pipe.Pair[string, int]{
		pipe.PairOf("a", 1),
		pipe.PairOf("b", 2),
		pipe.PairOf("c", 3),
	})
	got := transform.MapMap(mp, func(k string, v int) (string, int) {
		if k == "c" {
			return "a", v
		}
		return k, v
	})

	require.Equal(t, []string{"a", "b"}, got.Keys())

	v, _ := got.Get("a")
	require.Equal(t, 3, v)
}

func TestFlatMap(t *testing.T) {
	got := transform.FlatMap(pipe.From([]int{1, 2, 3}), func(n int) []int {
		return []int{n, n}
	})

	require.Equal(t, []int{1, 1, 2, 2, 3, 3}, got.Image())
}

func TestFlatten(t *testing.T) {
	got := transform.Flatten(pipe.From([][]int{{1, 2}, nil, {3}}))

	require.Equal(t, []int{1, 2, 3}, got.Image())
}

func TestMapIntersperse(t *testing.T) {
	got := transform.MapIntersperse(pipe.From([]int{1, 2, 3}), 0, func(n int) int { return n * 2 })

	require.Equal(t, []int{2, 0, 4, 0, 6}, got.Image())
}

func TestFindIndices(t *testing.T) {
	got := transform.FindIndices(pipe.From([]int{5, 2, 8, 2}), func(n int) bool { return n == 2 })

	require.Equal(t, []int{1, 3}, got.Image())
}

func TestCartesian(t *testing.T) {
	got := transform.Cartesian(pipe.From([]int{1, 2}), []string{"a", "b"})

	require.Equal(t, []pipe.Pair[int, string]{
		pipe.PairOf(1, "a"),
		pipe.PairOf(1, "b"),
		pipe.PairOf(2, "a"),
		pipe.PairOf(2, "b"),
	}, got.Image())
}

func TestCartesianSelf(t *testing.T) {
	got := transform.CartesianSelf(pipe.From([]int{0, 1}), 2)

	require.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got.Image())
}

func TestCartesianSelfZeroLength(t *testing.T) {
	got := transform.CartesianSelf(pipe.From([]int{1, 2}), 0)

	require.Equal(t, [][]int{{}}, got.Image())
}

func TestCombinations(t *testing.T) {
	got := transform.Combinations(pipe.From([]int{1, 2, 3}), 2)

	require.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, got.Image())
}

func TestCombinationsLongerThanImage(t *testing.T) {
	got := transform.Combinations(pipe.From([]int{1, 2}), 3)

	require.NoError(t, got.Err())
	require.Empty(t, got.Image())
}

func TestCombinationsWithReplacement(t *testing.T) {
	got := transform.CombinationsWithReplacement(pipe.From([]int{1, 2}), 2)

	require.Equal(t, [][]int{{1, 1}, {1, 2}, {2, 2}}, got.Image())
}

func TestPermutations(t *testing.T) {
	got := transform.Permutations(pipe.From([]int{1, 2, 3}), 2)

	require.Equal(t, [][]int{
		{1, 2}, {1, 3},
		{2, 1}, {2, 3},
		{3, 1}, {3, 2},
	}, got.Image())
}

func TestNegativeLength(t *testing.T) {
	require.ErrorIs(t, transform.Combinations(pipe.From([]int{1}), -1).Err(), piperr.ErrInvalidArgument)
	require.ErrorIs(t, transform.Permutations(pipe.From([]int{1}), -1).Err(), piperr.ErrInvalidArgument)
	require.ErrorIs(t, transform.CartesianSelf(pipe.From([]int{1}), -1).Err(), piperr.ErrInvalidArgument)
}
