package session

// Error is an application-layer failure of a session action. It has already been shown to
// the user when it is returned.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

const (
	CodeProfileRejected = "PROFILE_UPDATE_REJECTED"
	CodeProfileFailed   = "PROFILE_UPDATE_FAILED"
)
