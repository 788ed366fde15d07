package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the contract stub's routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(newSessionMiddleware(s))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("parkfinder contract stub\n"))
	})

	r.Get("/login", s.login)
	r.Get("/logout", s.logout)

	r.Route("/api", func(r chi.Router) {
		r.Get("/current-user", s.currentUser)
		r.Post("/update-profile", s.updateProfile)
		r.Get("/parking-spots", s.listSpots)
		r.Get("/parking-spots/filter", s.filterSpots)
	})
	return r
}
