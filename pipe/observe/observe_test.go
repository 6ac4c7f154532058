package observe_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lguimbarda/iterflow/pipe"
	"github.com/lguimbarda/iterflow/pipe/observe"
)

func TestNewRecorderBuildsInstruments(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("iterflow/observe")

	rec, err := observe.NewRecorder(meter)
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestRecorderObservesPipelines(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("iterflow/observe")
	rec, err := observe.NewRecorder(meter)
	require.NoError(t, err)

	restore := rec.Install()
	defer restore()

	p := pipe.From([]int{1, 2, 3, 4}).
		Filter(func(n int) bool { return n%2 == 0 }).
		TakeEvery(-1)

	require.Error(t, p.Err())
}

func TestInstallRestoresPreviousObserver(t *testing.T) {
	prev := &countingObserver{}
	pipe.SetObserver(prev)
	defer pipe.SetObserver(nil)

	meter := noop.NewMeterProvider().Meter("iterflow/observe")
	rec, err := observe.NewRecorder(meter)
	require.NoError(t, err)

	restore := rec.Install()
	pipe.From([]int{1}).Reverse()
	require.Zero(t, prev.operations)

	restore()
	pipe.From([]int{1}).Reverse()
	require.Equal(t, 1, prev.operations)
}

type countingObserver struct {
	operations int
	failures   int
}

func (c *countingObserver) Operation(op string, size int) { c.operations++ }

func (c *countingObserver) Failure(op string, err error) { c.failures++ }
