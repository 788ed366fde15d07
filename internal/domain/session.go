package domain

// SessionKind is the explicit login state the page renders from.
type SessionKind string

const (
	SessionLoggedOut                 SessionKind = "LOGGED_OUT"
	SessionLoggedIn                  SessionKind = "LOGGED_IN"
	SessionLoggedInIncompleteProfile SessionKind = "LOGGED_IN_INCOMPLETE_PROFILE"
)

// Session is the result of an auth check. User is nil when Kind is SessionLoggedOut.
type Session struct {
	Kind SessionKind
	User *User
}

// LoggedOut is the safe default session.
func LoggedOut() Session {
	return Session{Kind: SessionLoggedOut}
}

// SessionFor derives the session kind for an authenticated user.
func SessionFor(u User) Session {
	kind := SessionLoggedIn
	if !u.IsProfileComplete() {
		kind = SessionLoggedInIncompleteProfile
	}
	return Session{Kind: kind, User: &u}
}

func (s Session) Authenticated() bool {
	return s.Kind == SessionLoggedIn || s.Kind == SessionLoggedInIncompleteProfile
}

func (s Session) NeedsProfile() bool {
	return s.Kind == SessionLoggedInIncompleteProfile
}
