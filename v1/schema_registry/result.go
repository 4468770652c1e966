package schema_registry

import "fmt"

// Status tags the outcome of a registry lookup.
type Status int

const (
	// StatusFailed is also the zero value so an unset Result never reads as found.
	StatusFailed Status = iota
	StatusFound
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	default:
		return "failed"
	}
}

// Result is the tagged answer of a registry lookup. Callers branch on Status
// instead of inspecting error codes: NotFound is a legitimate absence
// (unknown subject, version or schema), Failed carries a transport or
// protocol error that should be propagated.
type Result[T any] struct {
	value  T
	status Status
	err    error
}

// Found wraps a value returned by the registry.
func Found[T any](value T) Result[T] {
	return Result[T]{value: value, status: StatusFound}
}

// NotFound records a legitimate absence. cause may be nil; it is kept for logging.
func NotFound[T any](cause error) Result[T] {
	return Result[T]{status: StatusNotFound, err: cause}
}

// Failed records a failure. A nil err is replaced so Err never returns nil for a failure.
func Failed[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("schema registry: unspecified failure")
	}
	return Result[T]{status: StatusFailed, err: err}
}

// ResultOf converts a conventional (value, error) pair into a Result,
// classifying not-found registry errors with IsNotFound.
func ResultOf[T any](value T, err error) Result[T] {
	switch {
	case err == nil:
		return Found(value)
	case IsNotFound(err):
		return NotFound[T](err)
	default:
		return Failed[T](err)
	}
}

func (r Result[T]) Status() Status { return r.status }

func (r Result[T]) IsFound() bool { return r.status == StatusFound }

func (r Result[T]) IsNotFound() bool { return r.status == StatusNotFound }

func (r Result[T]) IsFailed() bool { return r.status == StatusFailed }

// Value returns the wrapped value, or the zero value unless the Result is Found.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure cause, or the not-found cause when one was recorded.
func (r Result[T]) Err() error {
	if r.status == StatusFound {
		return nil
	}
	return r.err
}

// Get returns the value for Found results and an error otherwise. The error
// of a NotFound result matches ErrNotFound with errors.Is.
func (r Result[T]) Get() (T, error) {
	switch r.status {
	case StatusFound:
		return r.value, nil
	case StatusNotFound:
		var zero T
		if r.err != nil && IsNotFound(r.err) {
			return zero, r.err
		}
		return zero, ErrNotFound
	default:
		var zero T
		return zero, r.Err()
	}
}

// OrElse returns the value when found and fallback when not found.
// The failure is returned unchanged.
func (r Result[T]) OrElse(fallback T) (T, error) {
	switch r.status {
	case StatusFound:
		return r.value, nil
	case StatusNotFound:
		return fallback, nil
	default:
		var zero T
		return zero, r.Err()
	}
}

func (r Result[T]) String() string {
	switch r.status {
	case StatusFound:
		return fmt.Sprintf("found(%v)", r.value)
	case StatusNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("failed(%v)", r.err)
	}
}
