// Package fakeapi is an in-memory stand-in for the parking backend's REST contract. It
// exists for local runs of the CLI and for integration tests of the HTTP client; login is
// a dev shortcut that skips the identity provider.
package fakeapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime"

	"github.com/campus-parkfinder/parkfinder/internal/adapters/apiwire"
	membackend "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/backend"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
)

// Seed is the initial data of a Server.
type Seed struct {
	Users []domain.User
	Spots []domain.ParkingSpot
	// DefaultLogin is the email /login signs in when the request names none.
	DefaultLogin string
}

// Server holds users, sessions and spots. It is safe for concurrent use.
type Server struct {
	mu sync.RWMutex

	users        map[string]domain.User // by lower-cased email
	sessions     map[string]string      // token -> lower-cased email
	spots        []domain.ParkingSpot
	defaultLogin string

	newToken func() string

	Logger *slog.Logger
}

func NewServer(seed Seed) *Server {
	s := &Server{
		users:        make(map[string]domain.User),
		sessions:     make(map[string]string),
		spots:        slices.Clone(seed.Spots),
		defaultLogin: strings.ToLower(seed.DefaultLogin),
		newToken:     uuid.NewString,
		Logger:       slog.Default(),
	}
	for _, u := range seed.Users {
		s.users[strings.ToLower(u.Email)] = u
	}
	return s
}

func (s *Server) sessionEmail(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.sessions[token]
	return email, ok
}

func (s *Server) userFor(r *http.Request) (domain.User, bool) {
	email, ok := UserEmailFromContext(r.Context())
	if !ok {
		return domain.User{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	return u, ok
}

// login signs in ?email= (or the seed's default user) and redirects home.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	if email == "" {
		email = s.defaultLogin
	}

	s.mu.Lock()
	_, known := s.users[email]
	token := ""
	if known {
		token = s.newToken()
		s.sessions[token] = email
	}
	s.mu.Unlock()

	if !known {
		http.Error(w, "Login failed", http.StatusBadRequest)
		return
	}
	s.Logger.Info("auth_event", "event", "dev_login", "email", email)
	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: token, Path: "/", HttpOnly: true})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := s.userFor(r)
	if !ok {
		writeJSON(w, http.StatusOK, apiwire.CurrentUserResponse{Authenticated: false})
		return
	}
	wu := apiwire.UserFromDomain(u)
	writeJSON(w, http.StatusOK, apiwire.CurrentUserResponse{Authenticated: true, User: &wu})
}

// updateProfileBody distinguishes absent fields (left as stored) from null ones.
type updateProfileBody struct {
	Major                 nullable.Nullable[string]   `json:"major"`
	GradeLevel            nullable.Nullable[string]   `json:"grade_level"`
	GraduationYear        nullable.Nullable[int]      `json:"graduation_year"`
	HousingType           nullable.Nullable[string]   `json:"housing_type"`
	PreferredParkingTypes nullable.Nullable[[]string] `json:"preferred_parking_types"`
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := UserEmailFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "login required")
		return
	}
	var in updateProfileBody
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	u, ok := s.users[email]
	if !ok {
		s.mu.Unlock()
		writeError(w, r, http.StatusUnauthorized, "login required")
		return
	}
	applyString(&u.Major, in.Major)
	applyString(&u.GradeLevel, in.GradeLevel)
	applyString(&u.HousingType, in.HousingType)
	if in.GraduationYear.IsSpecified() {
		u.GraduationYear = nil
		if v, err := in.GraduationYear.Get(); err == nil {
			u.GraduationYear = &v
		}
	}
	if in.PreferredParkingTypes.IsSpecified() {
		u.PreferredParkingTypes = nil
		if v, err := in.PreferredParkingTypes.Get(); err == nil {
			u.PreferredParkingTypes = v
		}
	}
	s.users[email] = u
	s.mu.Unlock()

	s.Logger.Info("profile_event", "event", "profile_updated", "email", email)
	wu := apiwire.UserFromDomain(u)
	writeJSON(w, http.StatusOK, apiwire.StatusResponse{Status: backend.StatusSuccess, User: &wu})
}

func applyString(dst **string, v nullable.Nullable[string]) {
	if !v.IsSpecified() {
		return
	}
	if v.IsNull() {
		*dst = nil
		return
	}
	s := v.MustGet()
	*dst = &s
}

func (s *Server) listSpots(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	spots := slices.Clone(s.spots)
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, apiwire.SpotsResponse{
		Status: backend.StatusSuccess,
		Count:  len(spots),
		Data:   apiwire.SpotsFromDomain(spots),
	})
}

func (s *Server) filterSpots(w http.ResponseWriter, r *http.Request) {
	var (
		campus   *string
		spotType *string
		maxCost  *float64
	)
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, backend.ParamCampus, q, &campus); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, backend.ParamType, q, &spotType); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, backend.ParamMaxCost, q, &maxCost); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	f := backend.SpotFilter{MaxCost: maxCost}
	if campus != nil {
		f.Campus = *campus
	}
	if spotType != nil {
		f.ParkingType = *spotType
	}

	s.mu.RLock()
	out := make([]domain.ParkingSpot, 0)
	for _, spot := range s.spots {
		if membackend.Matches(spot, f) {
			out = append(out, spot)
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, apiwire.SpotsResponse{
		Status: backend.StatusSuccess,
		Count:  len(out),
		Data:   apiwire.SpotsFromDomain(out),
	})
}
