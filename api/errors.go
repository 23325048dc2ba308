package api

import (
	"errors"
	"fmt"
	"time"
)

// TimeoutError is returned when a request does not settle within the client timeout.
type TimeoutError struct {
	URL   string
	After time.Duration
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s", e.URL, e.After)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// RequestError is any other failed request. StatusCode is 0 when no
// response was received.
type RequestError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.URL, e.Cause)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err is, or wraps, a *TimeoutError.
func IsTimeout(err error) bool {
	var timeout *TimeoutError
	return errors.As(err, &timeout)
}
