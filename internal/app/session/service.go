package session

import (
	"context"
	"log/slog"

	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/notify"
)

// Service drives login state and profile completion.
// It writes results to the store; it never touches view elements.
type Service struct {
	backend backend.Client
	store   *uistate.Store
	alerts  notify.Alerter
	nav     notify.Navigator

	// Logger receives failures that are not shown to the user.
	Logger *slog.Logger
}

func NewService(b backend.Client, store *uistate.Store, alerts notify.Alerter, nav notify.Navigator) *Service {
	return &Service{
		backend: b,
		store:   store,
		alerts:  alerts,
		nav:     nav,
		Logger:  slog.Default(),
	}
}

// CheckAuth asks the backend who is logged in and publishes the resulting session.
// Failures fall back to the logged-out session and are only logged.
// An incomplete profile opens the profile modal; a complete one leaves it as it was.
func (s *Service) CheckAuth(ctx context.Context) domain.Session {
	sess := domain.LoggedOut()

	cu, err := s.backend.CurrentUser(ctx)
	switch {
	case err != nil:
		s.Logger.Error("auth_check_failed", "error", err)
	case cu.Authenticated && cu.User == nil:
		s.Logger.Error("auth_check_failed", "error", "authenticated response without user")
	case cu.Authenticated:
		sess = domain.SessionFor(*cu.User)
	}

	s.store.Update(func(st *uistate.State) {
		st.Session = sess
		if sess.NeedsProfile() {
			st.ProfileModalOpen = true
		}
	})
	if sess.NeedsProfile() {
		s.Logger.Info("auth_event", "event", "profile_incomplete", "missing", sess.User.MissingProfileFields())
	}
	return sess
}

// Login navigates to the backend's login redirect.
func (s *Service) Login() {
	s.nav.Navigate(backend.LoginPath)
}

// Logout navigates to the backend's logout redirect.
func (s *Service) Logout() {
	s.nav.Navigate(backend.LogoutPath)
}

func (s *Service) OpenLoginModal() {
	s.store.Update(func(st *uistate.State) { st.LoginModalOpen = true })
}

func (s *Service) CloseLoginModal() {
	s.store.Update(func(st *uistate.State) { st.LoginModalOpen = false })
}

// SubmitProfile sends the profile form once. On success it closes the profile modal,
// tells the user, and re-runs CheckAuth. Every failure is alerted before it is returned.
func (s *Service) SubmitProfile(ctx context.Context, form ProfileForm) error {
	in := backend.ProfileUpdate{
		Major:                 form.Major,
		GradeLevel:            form.GradeLevel,
		GraduationYear:        ParseGraduationYear(form.GraduationYear),
		HousingType:           form.HousingType,
		PreferredParkingTypes: form.PreferredParkingTypes,
	}

	res, err := s.backend.UpdateProfile(ctx, in)
	if err != nil {
		s.Logger.Error("profile_update_failed", "error", err)
		s.alerts.Alert(MsgProfileFailed)
		return &Error{Code: CodeProfileFailed, Message: err.Error()}
	}
	if !res.Success() {
		s.alerts.Alert(msgProfileFailedPrefix + res.Message)
		return &Error{Code: CodeProfileRejected, Message: res.Message}
	}

	s.store.Update(func(st *uistate.State) { st.ProfileModalOpen = false })
	s.alerts.Alert(MsgProfileUpdated)
	s.CheckAuth(ctx)
	return nil
}
