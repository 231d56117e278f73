package ai

import "fmt"

// ResponseError reports an unusable reply from a text-generation backend.
type ResponseError struct {
	Message    string
	StatusCode int
	Body       string
	Cause      error
}

func (e *ResponseError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
