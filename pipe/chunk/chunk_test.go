package chunk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/chunk"
	"github.com/lguimbarda/iterflow/pipe/piperr"
)

func TestBy(t *testing.T) {
	odd := func(n int) bool { return n%2 == 1 }
	got := chunk.By(pipe.From([]int{1, 2, 2, 3, 4, 4, 6, 7, 7, 7}), odd)

	require.NoError(t, got.Err())
	require.Equal(t, [][]int{{1}, {2, 2}, {3}, {4, 4, 6}, {7, 7, 7}}, got.Image())
}

func TestByEject(t *testing.T) {
	isDigit := func(s string) bool { return strings.ContainsAny(s, "0123456789") }
	got := chunk.ByEject(pipe.From([]string{"a", "b", "1", "c", "d", "2", "e", "f"}), isDigit)

	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}}, got.Image())
}

func TestByEjectKeepsLongTrueRuns(t *testing.T) {
	isDigit := func(s string) bool { return strings.ContainsAny(s, "0123456789") }
	got := chunk.ByEject(pipe.From([]string{"a", "1", "2", "b"}), isDigit)

	require.Equal(t, [][]string{{"a"}, {"1", "2"}, {"b"}}, got.Image())
}

func TestEvery(t *testing.T) {
	got := chunk.Every(pipe.From([]int{1, 2, 3, 4, 5, 6, 7}), 3)

	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, got.Image())
}

func TestEveryStride(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		count    int
		stride   int
		leftover []int
		want     [][]int
	}{
		{
			name:     "overlapping windows padded from leftover",
			input:    []int{1, 2, 3, 4, 5, 6},
			count:    3,
			stride:   2,
			leftover: []int{7},
			want:     [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}},
		},
		{
			name:   "stride larger than count skips",
			input:  []int{1, 2, 3, 4, 5, 6, 7, 8},
			count:  2,
			stride: 3,
			want:   [][]int{{1, 2}, {4, 5}, {7, 8}},
		},
		{
			name:     "surplus leftover is discarded",
			input:    []int{1, 2, 3, 4},
			count:    3,
			stride:   3,
			leftover: []int{9, 9, 9},
			want:     [][]int{{1, 2, 3}, {4, 9, 9}},
		},
		{
			name:   "short final window left short without leftover",
			input:  []int{1, 2, 3, 4},
			count:  3,
			stride: 3,
			want:   [][]int{{1, 2, 3}, {4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunk.EveryStride(pipe.From(tt.input), tt.count, tt.stride, tt.leftover)
			require.NoError(t, got.Err())
			require.Equal(t, tt.want, got.Image())
		})
	}
}

func TestEveryStrideRejectsBadSizes(t *testing.T) {
	require.ErrorIs(t, chunk.Every(pipe.From([]int{1}), 0).Err(), piperr.ErrInvalidArgument)
	require.ErrorIs(t, chunk.EveryStride(pipe.From([]int{1}), 2, -1, nil).Err(), piperr.ErrInvalidArgument)
}

func TestWhileIsUnimplemented(t *testing.T) {
	require.ErrorIs(t, chunk.While(pipe.From([]int{1})).Err(), piperr.ErrUnimplemented)
}

func TestSlice(t *testing.T) {
	nums := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	tests := []struct {
		name       string
		input      []int
		start, end int
		want       []int
	}{
		{name: "inclusive bounds", input: nums(100), start: 5, end: 10, want: []int{6, 7, 8, 9, 10, 11}},
		{name: "negative bounds", input: nums(30), start: -5, end: -1, want: []int{26, 27, 28, 29, 30}},
		{name: "end clamps to last", input: nums(5), start: 2, end: 99, want: []int{3, 4, 5}},
		{name: "start past end is empty", input: nums(5), start: 7, end: 9, want: nil},
		{name: "inverted bounds are empty", input: nums(5), start: 3, end: 1, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunk.Slice(pipe.From(tt.input), tt.start, tt.end)
			require.NoError(t, got.Err())
			if len(tt.want) == 0 {
				require.Empty(t, got.Image())
				return
			}
			require.Equal(t, tt.want, got.Image())
		})
	}
}

func TestSliceAmount(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}

	require.Equal(t, []int{2, 3, 4}, chunk.SliceAmount(pipe.From(nums), 1, 3).Image())
	require.Equal(t, []int{4, 5}, chunk.SliceAmount(pipe.From(nums), 3, 10).Image())
	require.Equal(t, []int{4, 5}, chunk.SliceAmount(pipe.From(nums), -2, 5).Image())
	require.Empty(t, chunk.SliceAmount(pipe.From(nums), 9, 2).Image())
	require.ErrorIs(t, chunk.SliceAmount(pipe.From(nums), 0, -1).Err(), piperr.ErrInvalidArgument)
}

func TestSlide(t *testing.T) {
	letters := []string{"a", "b", "c", "d", "e", "f", "g"}

	forwardToFront := chunk.Slide(pipe.From(letters), 5, 1)
	require.Equal(t, []string{"a", "f", "b", "c", "d", "e", "g"}, forwardToFront.Image())

	backToEnd := chunk.Slide(pipe.From(letters), 3, -1)
	require.Equal(t, []string{"a", "b", "c", "e", "f", "g", "d"}, backToEnd.Image())
}

func TestSlideRange(t *testing.T) {
	letters := []string{"a", "b", "c", "d", "e", "f", "g"}

	backward := chunk.SlideRange(pipe.From(letters), 3, 5, 1)
	require.Equal(t, []string{"a", "d", "e", "f", "b", "c", "g"}, backward.Image())

	forward := chunk.SlideRange(pipe.From(letters), 1, 3, 5)
	require.Equal(t, []string{"a", "e", "f", "b", "c", "d", "g"}, forward.Image())

	inside := chunk.SlideRange(pipe.From(letters), 2, 4, 3)
	require.Equal(t, letters, inside.Image())
}

func TestSlideOutOfRange(t *testing.T) {
	letters := []string{"a", "b", "c"}

	require.ErrorIs(t, chunk.Slide(pipe.From(letters), 5, 0).Err(), piperr.ErrOutOfRange)
	require.ErrorIs(t, chunk.Slide(pipe.From(letters), 0, 7).Err(), piperr.ErrOutOfRange)
	require.ErrorIs(t, chunk.SlideRange(pipe.From(letters), 2, 1, 0).Err(), piperr.ErrOutOfRange)
}

func TestSplit(t *testing.T) {
	head, tail := chunk.Split(pipe.From([]int{1, 2, 3, 4, 5}), 2)
	require.Equal(t, []int{1, 2}, head.Image())
	require.Equal(t, []int{3, 4, 5}, tail.Image())

	head, tail = chunk.Split(pipe.From([]int{1, 2, 3, 4, 5}), -2)
	require.Equal(t, []int{1, 2, 3}, head.Image())
	require.Equal(t, []int{4, 5}, tail.Image())

	head, tail = chunk.Split(pipe.From([]int{1, 2}), 9)
	require.Equal(t, []int{1, 2}, head.Image())
	require.Empty(t, tail.Image())
}

func TestSplitWhile(t *testing.T) {
	head, tail := chunk.SplitWhile(pipe.From([]int{1, 2, 3, 1}), func(n int) bool { return n < 3 })

	require.Equal(t, []int{1, 2}, head.Image())
	require.Equal(t, []int{3, 1}, tail.Image())
}

func TestSplitWith(t *testing.T) {
	even, odd := chunk.SplitWith(pipe.From([]int{1, 2, 3, 4, 5, 6}), func(n int) bool { return n%2 == 0 })

	require.Equal(t, []int{2, 4, 6}, even.Image())
	require.Equal(t, []int{1, 3, 5}, odd.Image())
}

func TestSplitWithMap(t *testing.T) {
	mp := pipe.FromMap(map[string]int{"a": 1, "b": 2, "c": 3, "d": 4})
	small, large := chunk.SplitWithMap(mp, func(k string, v int) bool { return v <= 2 })

	require.Equal(t, []string{"a", "b"}, small.Keys())
	require.Equal(t, []string{"c", "d"}, large.Keys())
}
