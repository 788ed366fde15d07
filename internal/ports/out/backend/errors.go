package backend

import (
	"errors"
	"fmt"
)

// ErrDecode indicates the backend answered with a body that is not the expected JSON.
var ErrDecode = errors.New("backend response could not be decoded")

// StatusError is returned when the backend answers with a non-2xx status and no usable
// JSON envelope.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
