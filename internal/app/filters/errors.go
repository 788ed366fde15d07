package filters

import "fmt"

// RejectedError is a search the backend answered with a non-success status.
type RejectedError struct {
	Status  string
	Message string
}

func (e *RejectedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return fmt.Sprintf("spot search status %q", e.Status)
	}
	return fmt.Sprintf("spot search status %q: %s", e.Status, e.Message)
}
