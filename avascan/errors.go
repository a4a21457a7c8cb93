package avascan

import (
	"fmt"
)

// RequestError is returned when the validations endpoint could not be reached
// or answered with a non-2xx status.
type RequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode validations response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
