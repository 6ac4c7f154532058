// Package observe wires pipeline instrumentation to OpenTelemetry metrics.
// A Recorder implements pipe.Observer and records one operation count, the
// image size, and any failure per chained call, tagged with the operation
// name. Nothing is recorded until a Recorder is installed with
// pipe.SetObserver.
package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/iterflow/pipe"
)

// Recorder counts pipeline activity on OpenTelemetry instruments.
type Recorder struct {
	ctx        context.Context
	operations metric.Int64Counter
	elements   metric.Int64Counter
	errors     metric.Int64Counter
}

var _ pipe.Observer = (*Recorder)(nil)

// NewRecorder builds a Recorder on meter. The instruments are
// pipe.operations, pipe.elements, and pipe.errors.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	operations, err := meter.Int64Counter("pipe.operations",
		metric.WithDescription("count of chained pipeline operations"))
	if err != nil {
		return nil, err
	}
	elements, err := meter.Int64Counter("pipe.elements",
		metric.WithDescription("image sizes produced by pipeline operations"))
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("pipe.errors",
		metric.WithDescription("count of failed pipeline operations"))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		ctx:        context.Background(),
		operations: operations,
		elements:   elements,
		errors:     failures,
	}, nil
}

// Operation records one completed operation and the size of the image it
// produced.
func (r *Recorder) Operation(op string, size int) {
	attrs := metric.WithAttributes(attribute.String("pipe.op", op))
	r.operations.Add(r.ctx, 1, attrs)
	r.elements.Add(r.ctx, int64(size), attrs)
}

// Failure records one failed operation.
func (r *Recorder) Failure(op string, err error) {
	r.errors.Add(r.ctx, 1, metric.WithAttributes(
		attribute.String("pipe.op", op),
		attribute.String("pipe.error", err.Error()),
	))
}

// Install registers the recorder as the active pipeline observer and
// returns a function restoring the previous one.
func (r *Recorder) Install() func() {
	prev := pipe.SetObserver(r)
	return func() { pipe.SetObserver(prev) }
}
