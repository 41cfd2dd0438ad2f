package jsonrpc1

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by NewClient for an unusable endpoint or
	// option value.
	ErrConfiguration = errors.New("invalid client configuration")

	// ErrInvalidMethodName is returned when the method name is empty. An
	// empty name is never sent, although it would be valid JSON.
	ErrInvalidMethodName = errors.New("method name has no scalar value")

	// ErrInvalidParams is returned when params are not an ordered list.
	ErrInvalidParams = errors.New("params must be given as array")

	// ErrMalformedResponse is returned when the response body is not a JSON
	// object.
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError reports that the endpoint could not be reached. It never
// carries the underlying network error.
type TransportError struct {
	URL string
}

func (e *TransportError) Error() string {
	return "Unable to connect to " + e.URL
}

// IDMismatchError reports a response whose id does not match the request.
type IDMismatchError struct {
	RequestID  int64
	ResponseID string
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("Incorrect response id (request id: %d, response id: %s)", e.RequestID, e.ResponseID)
}

// Error is an error returned by the remote server.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
