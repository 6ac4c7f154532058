package zip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/piperr"
	"github.com/lguimbarda/iterflow/pipe/zip"
)

func TestZipHaltsAtShortest(t *testing.T) {
	got := zip.Zip(pipe.From([]int{1, 2, 3}), []string{"a", "b"})

	require.Equal(t, []pipe.Pair[int, string]{
		pipe.PairOf(1, "a"),
		pipe.PairOf(2, "b"),
	}, got.Image())
}

func TestZipWith(t *testing.T) {
	got := zip.ZipWith(pipe.From([]int{1, 2, 3}), []int{10, 20, 30}, func(a, b int) int { return a + b })

	require.Equal(t, []int{11, 22, 33}, got.Image())
}

func TestZip3(t *testing.T) {
	got := zip.Zip3(pipe.From([]int{1, 2}), []string{"a", "b", "c"}, []bool{true})

	require.Equal(t, []pipe.Pair[int, pipe.Pair[string, bool]]{
		pipe.PairOf(1, pipe.PairOf("a", true)),
	}, got.Image())
}

func TestZipWith3(t *testing.T) {
	got := zip.ZipWith3(pipe.From([]int{1, 2}), []int{10, 20}, []int{100, 200}, func(a, b, c int) int {
		return a + b + c
	})

	require.Equal(t, []int{111, 222}, got.Image())
}

func TestZipReduce(t *testing.T) {
	rows := pipe.From([][]int{{1, 1}, {2, 2}, {3, 3}})
	got, err := zip.ZipReduce(rows, []int(nil), func(acc []int, column []int) []int {
		total := 0
		for _, v := range column {
			total += v
		}
		return append(acc, total)
	})

	require.NoError(t, err)
	require.Equal(t, []int{6, 6}, got)
}

func TestZipReduceHaltsAtShortestRow(t *testing.T) {
	rows := pipe.From([][]int{{1, 2, 3}, {4, 5}})
	count := 0
	_, err := zip.ZipReduce(rows, 0, func(acc int, column []int) int {
		count++
		return acc
	})

	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestZipReduceEmpty(t *testing.T) {
	got, err := zip.ZipReduce(pipe.From([][]int{}), 42, func(acc int, column []int) int { return acc + 1 })

	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestZipReduce3IsUnimplemented(t *testing.T) {
	_, err := zip.ZipReduce3(pipe.From([][]int{{1}}), nil, nil, 0, func(acc int, column []int) int { return acc })

	require.ErrorIs(t, err, piperr.ErrUnimplemented)
}

func TestUnzip(t *testing.T) {
	pairs := pipe.From([]pipe.Pair[string, int]{
		pipe.PairOf("a", 1),
		pipe.PairOf("b", 2),
	})
	firsts, seconds := zip.Unzip(pairs)

	require.Equal(t, []string{"a", "b"}, firsts.Image())
	require.Equal(t, []int{1, 2}, seconds)
}

func TestUnzipMap(t *testing.T) {
	mp := pipe.FromMap(map[string]int{"a": 1, "b": 2})
	keys, values := zip.UnzipMap(mp)

	require.Equal(t, []string{"a", "b"}, keys.Image())
	require.Equal(t, []int{1, 2}, values)
}

func TestTransposePadsRaggedRows(t *testing.T) {
	got := zip.Transpose(pipe.From([][]int{{1, 2}, {3}, {4, 5, 6}}), 0)

	require.Equal(t, [][]int{{1, 3, 4}, {2, 0, 5}, {0, 0, 6}}, got.Image())
}

func TestTransposeSquare(t *testing.T) {
	got := zip.Transpose(pipe.From([][]int{{1, 2}, {3, 4}}), 0)

	require.Equal(t, [][]int{{1, 3}, {2, 4}}, got.Image())
}

func TestWithIndex(t *testing.T) {
	got := zip.WithIndex(pipe.From([]string{"a", "b", "c"}), 1)

	require.Equal(t, []pipe.Pair[string, int]{
		pipe.PairOf("a", 1),
		pipe.PairOf("b", 2),
		pipe.PairOf("c", 3),
	}, got.Image())
}

func TestWithIndexFunc(t *testing.T) {
	got := zip.WithIndexFunc(pipe.From([]int{5, 6}), 0, func(v, i int) int { return v * i })

	require.Equal(t, []int{0, 6}, got.Image())
}
