package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	membackend "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/backend"
	memnotify "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/notify"
	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
)

func strPtr(s string) *string { return &s }

type harness struct {
	backend *membackend.Backend
	store   *uistate.Store
	notes   *memnotify.Recorder
	svc     *Service
}

func newHarness(t *testing.T) harness {
	t.Helper()
	b := membackend.NewBackend()
	store := uistate.NewStore(uistate.Initial())
	notes := memnotify.NewRecorder()
	svc := NewService(b, store, notes, notes)
	svc.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return harness{backend: b, store: store, notes: notes, svc: svc}
}

func completeUser() *domain.User {
	return &domain.User{
		FirstName:   "Goldy",
		LastName:    "Gopher",
		Email:       "goldy@umn.edu",
		Major:       strPtr("Computer Science"),
		GradeLevel:  strPtr("Junior"),
		HousingType: strPtr("On-campus"),
	}
}

func TestService_CheckAuth_ProfileModalOpensWhenAnyFieldMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(u *domain.User)
		wantModal bool
	}{
		{name: "complete", mutate: func(*domain.User) {}, wantModal: false},
		{name: "no major", mutate: func(u *domain.User) { u.Major = nil }, wantModal: true},
		{name: "no grade level", mutate: func(u *domain.User) { u.GradeLevel = nil }, wantModal: true},
		{name: "empty housing", mutate: func(u *domain.User) { u.HousingType = strPtr("") }, wantModal: true},
		{name: "nothing", mutate: func(u *domain.User) { u.Major, u.GradeLevel, u.HousingType = nil, nil, nil }, wantModal: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			u := completeUser()
			tt.mutate(u)
			h.backend.SetUser(u)

			sess := h.svc.CheckAuth(context.Background())
			if !sess.Authenticated() {
				t.Fatalf("session=%+v, want authenticated", sess)
			}
			if got := h.store.Snapshot().ProfileModalOpen; got != tt.wantModal {
				t.Fatalf("ProfileModalOpen=%v, want %v", got, tt.wantModal)
			}
		})
	}
}

func TestService_CheckAuth_LoggedOut(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	sess := h.svc.CheckAuth(context.Background())
	if sess.Kind != domain.SessionLoggedOut {
		t.Fatalf("kind=%q, want logged out", sess.Kind)
	}
	if h.store.Snapshot().ProfileModalOpen {
		t.Fatalf("profile modal opened for logged-out user")
	}
}

func TestService_CheckAuth_NetworkFailureFallsBackToLoggedOut(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.backend.SetUser(completeUser())
	h.svc.CheckAuth(context.Background())

	h.backend.FailWith(errors.New("connection refused"))
	sess := h.svc.CheckAuth(context.Background())

	if sess.Kind != domain.SessionLoggedOut {
		t.Fatalf("kind=%q, want logged out", sess.Kind)
	}
	if got := h.store.Snapshot().Session.Kind; got != domain.SessionLoggedOut {
		t.Fatalf("store kind=%q, want logged out", got)
	}
	if alerts := h.notes.Alerts(); len(alerts) != 0 {
		t.Fatalf("alerts=%v, want none", alerts)
	}
}

func TestService_LoginLogoutNavigate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.svc.Login()
	h.svc.Logout()
	got := h.notes.Navigations()
	if len(got) != 2 || got[0] != backend.LoginPath || got[1] != backend.LogoutPath {
		t.Fatalf("navigations=%v", got)
	}
	if h.store.Snapshot().Session.Kind != domain.SessionLoggedOut {
		t.Fatalf("navigation changed local state")
	}
}

func TestService_LoginModalToggle(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.svc.OpenLoginModal()
	if !h.store.Snapshot().LoginModalOpen {
		t.Fatalf("login modal not open")
	}
	h.svc.CloseLoginModal()
	if h.store.Snapshot().LoginModalOpen {
		t.Fatalf("login modal still open")
	}
}

func TestService_SubmitProfile_SuccessClosesModalAndRechecks(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.backend.SetUser(&domain.User{FirstName: "Goldy", LastName: "Gopher"})
	h.svc.CheckAuth(context.Background())
	if !h.store.Snapshot().ProfileModalOpen {
		t.Fatalf("expected profile modal open before submit")
	}
	before := h.backend.CurrentUserCalls()

	err := h.svc.SubmitProfile(context.Background(), ProfileForm{
		Major:          "Physics",
		GradeLevel:     "Senior",
		GraduationYear: "2027",
		HousingType:    "Off-campus",
	})
	if err != nil {
		t.Fatalf("SubmitProfile err=%v", err)
	}

	st := h.store.Snapshot()
	if st.ProfileModalOpen {
		t.Fatalf("profile modal still open")
	}
	if st.Session.Kind != domain.SessionLoggedIn {
		t.Fatalf("kind=%q, want logged in", st.Session.Kind)
	}
	if got := h.backend.CurrentUserCalls(); got != before+1 {
		t.Fatalf("current-user calls=%d, want %d", got, before+1)
	}
	if alerts := h.notes.Alerts(); len(alerts) != 1 || alerts[0] != MsgProfileUpdated {
		t.Fatalf("alerts=%v", alerts)
	}
	ups := h.backend.ProfileUpdates()
	if len(ups) != 1 || ups[0].GraduationYear == nil || *ups[0].GraduationYear != 2027 {
		t.Fatalf("profile updates=%+v", ups)
	}
}

func TestService_SubmitProfile_Rejected(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.backend.SetUser(&domain.User{})
	h.svc.CheckAuth(context.Background())
	h.backend.RejectProfileUpdates("database is locked")
	before := h.backend.CurrentUserCalls()

	err := h.svc.SubmitProfile(context.Background(), ProfileForm{Major: "Art"})
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Code != CodeProfileRejected {
		t.Fatalf("err=%v, want %s", err, CodeProfileRejected)
	}
	if alerts := h.notes.Alerts(); len(alerts) != 1 || alerts[0] != "Failed to update profile: database is locked" {
		t.Fatalf("alerts=%v", alerts)
	}
	if !h.store.Snapshot().ProfileModalOpen {
		t.Fatalf("modal closed on rejected update")
	}
	if h.backend.CurrentUserCalls() != before {
		t.Fatalf("auth re-checked after rejected update")
	}
}

func TestService_SubmitProfile_NetworkError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.backend.FailWith(errors.New("dial tcp: i/o timeout"))

	err := h.svc.SubmitProfile(context.Background(), ProfileForm{})
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Code != CodeProfileFailed {
		t.Fatalf("err=%v, want %s", err, CodeProfileFailed)
	}
	if alerts := h.notes.Alerts(); len(alerts) != 1 || alerts[0] != MsgProfileFailed {
		t.Fatalf("alerts=%v", alerts)
	}
}

func TestParseGraduationYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *int
	}{
		{"2027", intPtr(2027)},
		{"  2026 ", intPtr(2026)},
		{"2028abc", intPtr(2028)},
		{"-5", intPtr(-5)},
		{"", nil},
		{"abc", nil},
		{"+", nil},
	}
	for _, tt := range tests {
		tt := tt
		got := ParseGraduationYear(tt.in)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Fatalf("ParseGraduationYear(%q)=%v, want %v", tt.in, deref(got), deref(tt.want))
		}
	}
}

func intPtr(v int) *int { return &v }

func deref(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
