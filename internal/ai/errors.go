package ai

import (
	"errors"
	"fmt"
)

// ErrNoCredential indicates no usable generation credential resolved. It is
// never surfaced as a failure; the façade routes to fallback silently.
var ErrNoCredential = errors.New("no generation credential configured")

// ErrInvokeTimeout indicates the oracle call exceeded its deadline.
var ErrInvokeTimeout = errors.New("generation timed out")

// TransportError wraps a network, timeout or remote-service failure while
// calling the oracle. The façade logs it, routes to fallback and hands it to
// the caller as a soft notice.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation transport: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// SchemaValidationError indicates the oracle responded but its output could
// not be parsed into the task's required structure.
type SchemaValidationError struct {
	Task   TaskID
	Reason string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("schema validation for %s: %s", e.Task, e.Reason)
}

// PreconditionError indicates a caller-side input violation (empty image,
// blank phrase). The façade handles it locally by skipping the oracle call;
// it reaches the caller only as a soft notice next to a schema-valid result.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "input precondition: " + e.Reason
}
