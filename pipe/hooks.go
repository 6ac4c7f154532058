package pipe

// Observer receives synchronous notifications as pipeline operations
// complete. Implementations must be fast; they run inline on the caller's
// goroutine, matching the pipeline's single-threaded execution model.
//
// The observe subpackage provides an OpenTelemetry-backed implementation.
type Observer interface {
	// Operation is invoked after op replaced the image; size is the new
	// image's element count.
	Operation(op string, size int)

	// Failure is invoked when op poisons a pipeline with err.
	Failure(op string, err error)
}

// observer is process-wide. Pipelines are single-owner sequential values,
// so registration is expected to happen once during setup, not concurrently
// with pipeline execution.
var observer Observer

// SetObserver installs the process-wide observer. Passing nil disables
// observation. It returns the previously installed observer.
func SetObserver(o Observer) Observer {
	prev := observer
	observer = o
	return prev
}

// Observe notifies the installed observer that op produced an image of the
// given size. Subpackages call this after each completed operation.
func Observe(op string, size int) {
	if observer != nil {
		observer.Operation(op, size)
	}
}

// ObserveFailure notifies the installed observer that op failed with err.
func ObserveFailure(op string, err error) {
	if observer != nil {
		observer.Failure(op, err)
	}
}
