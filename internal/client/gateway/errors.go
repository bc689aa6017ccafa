package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request could not complete at all (transport
	// failure, no HTTP response). Shown to the user as a connection error.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse means the server answered 2xx but the body could
	// not be decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed server response")
)

// ServerError is an HTTP non-2xx response. Message carries the server's
// verbatim `error` field when present, otherwise Error falls back to a
// generic string.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// AsServerError unwraps err into a *ServerError, or returns nil.
func AsServerError(err error) *ServerError {
	var se *ServerError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
