package fred

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidParameter indicates a request could not be built from its parameters
	ErrInvalidParameter = errors.New("invalid fred parameter")
	// ErrInvalidBaseURL indicates the configured base URL cannot be parsed
	ErrInvalidBaseURL = errors.New("invalid fred base URL")
)

// DecodeError is returned when a successful response body could not be
// decoded in the requested format.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("fred: failed to decode %d response: %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
