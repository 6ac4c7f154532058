package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/iterflow/pipe/piperr"
	"github.com/lguimbarda/iterflow/pipe/ranges"
)

func TestInts(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		step []int
		want []int
	}{
		{name: "ascending default step", a: 1, b: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "descending default step", a: 5, b: 0, want: []int{5, 4, 3, 2, 1, 0}},
		{name: "explicit step", a: 1, b: 10, step: []int{2}, want: []int{1, 3, 5, 7, 9}},
		{name: "single element", a: 3, b: 3, want: []int{3}},
		{name: "contradictory step is empty", a: 1, b: 10, step: []int{-1}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ranges.Ints(tt.a, tt.b, tt.step...)
			require.NoError(t, got.Err())
			if len(tt.want) == 0 {
				require.Empty(t, got.Image())
				return
			}
			require.Equal(t, tt.want, got.Image())
		})
	}
}

func TestIntsZeroStep(t *testing.T) {
	require.ErrorIs(t, ranges.Ints(1, 10, 0).Err(), piperr.ErrInvalidArgument)
}

func TestFloats(t *testing.T) {
	got := ranges.Floats(0.5, 5.0, 0.5)

	require.NoError(t, got.Err())
	require.Equal(t, []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0}, got.Image())
}

func TestFloatsDefaultStepAvoidsDrift(t *testing.T) {
	got := ranges.Floats(0.1, 1.0)

	require.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}, got.Image())
}

func TestFloatsDescending(t *testing.T) {
	got := ranges.Floats(5.0, 3.5, -0.5)

	require.Equal(t, []float64{5.0, 4.5, 4.0, 3.5}, got.Image())
}

func TestFloatsContradictoryStepIsEmpty(t *testing.T) {
	require.Empty(t, ranges.Floats(1.0, 5.0, -0.5).Image())
}

func TestFloatsZeroStep(t *testing.T) {
	require.ErrorIs(t, ranges.Floats(0, 1, 0).Err(), piperr.ErrInvalidArgument)
}

func TestLinspace(t *testing.T) {
	got := ranges.Linspace(1.1, 3.3, 10, 2)

	require.NoError(t, got.Err())
	require.Len(t, got.Image(), 11)
	require.InDelta(t, 1.1, got.Image()[0], 1e-12)
	require.InDelta(t, 1.32, got.Image()[1], 1e-12)
	require.InDelta(t, 3.3, got.Image()[10], 1e-12)
}

func TestLinspaceBadArguments(t *testing.T) {
	require.ErrorIs(t, ranges.Linspace(0, 1, 0, 2).Err(), piperr.ErrInvalidArgument)
	require.ErrorIs(t, ranges.Linspace(0, 1, 5, -1).Err(), piperr.ErrInvalidArgument)
}
