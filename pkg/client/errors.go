package client

import "fmt"

// NetworkError means the request never reached the backend or no usable
// response came back. A failed list is "no data", not "empty data": callers
// must keep whatever they already had.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BackendError means the backend was reached and reported a failure, either
// through the success envelope or a non-2xx status without one.
type BackendError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend error: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: backend error: status %d", e.Op, e.StatusCode)
}

// IsConflict reports whether the backend signalled a duplicate, which it does
// with HTTP 409 on file import.
func (e *BackendError) IsConflict() bool {
	return e.StatusCode == 409
}
