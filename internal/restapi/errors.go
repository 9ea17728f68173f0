package restapi

import "fmt"

// CallError is a failed remote call. StatusCode is zero when the request
// never produced an HTTP response.
type CallError struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s (%s %s): %v", e.Op, e.Method, e.Path, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
