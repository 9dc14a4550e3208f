package fred

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of a dispatched request. It is always exactly one of
// *Success, *ServiceError or *TransportFailure.
type Result interface {
	// StatusCode returns the HTTP status, or -1 when no response was received.
	StatusCode() int
	// Err returns nil for *Success and the result itself otherwise.
	Err() error

	isResult()
}

// Success is a 2xx response.
type Success struct {
	Status int
	Format ResponseFormat
	// Object holds the decoded JSON document for FormatObject.
	Object any
	// Body holds the raw payload for every format.
	Body []byte
}

func (s *Success) StatusCode() int { return s.Status }
func (s *Success) Err() error      { return nil }
func (*Success) isResult()         {}

// Content returns the decoded object for FormatObject and the raw bytes otherwise.
func (s *Success) Content() any {
	if s.Format == FormatObject {
		return s.Object
	}
	return s.Body
}

// Decode unmarshals a JSON body into v.
func (s *Success) Decode(v any) error {
	if s.Format == FormatXML {
		return fmt.Errorf("%w: cannot JSON-decode an xml response", ErrInvalidParameter)
	}
	if err := json.Unmarshal(s.Body, v); err != nil {
		return &DecodeError{StatusCode: s.Status, Body: s.Body, Err: err}
	}
	return nil
}

// ServiceError is a response whose status indicates the service rejected the request.
type ServiceError struct {
	Status int
	Body   []byte
}

func (e *ServiceError) StatusCode() int { return e.Status }
func (e *ServiceError) Err() error      { return e }
func (*ServiceError) isResult()         {}

// Error implements the error interface
func (e *ServiceError) Error() string {
	return fmt.Sprintf("fred API error: status %d", e.Status)
}

// TransportFailure means the exchange never produced an HTTP response.
type TransportFailure struct {
	Cause error
}

func (f *TransportFailure) StatusCode() int { return -1 }
func (f *TransportFailure) Err() error      { return f }
func (*TransportFailure) isResult()         {}

// Error implements the error interface
func (f *TransportFailure) Error() string {
	return fmt.Sprintf("fred request failed: %v", f.Cause)
}

func (f *TransportFailure) Unwrap() error {
	return f.Cause
}
