package fakeapi

import "net/http"

// SessionCookieName matches the cookie the real backend's session layer sets.
const SessionCookieName = "session"

// newSessionMiddleware resolves the session cookie to a user email and stores it in the
// request context. Unknown or missing cookies leave the request anonymous.
func newSessionMiddleware(s *Server) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			email, ok := s.sessionEmail(c.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserEmail(r.Context(), email)))
		})
	}
}
