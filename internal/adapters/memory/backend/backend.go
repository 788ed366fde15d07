package backend

import (
	"context"
	"slices"
	"sync"

	"github.com/campus-parkfinder/parkfinder/internal/domain"
	backendport "github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
)

// Backend is an in-memory implementation of backend.Client.
// It is safe for concurrent use.
type Backend struct {
	mu sync.RWMutex

	user  *domain.User
	spots []domain.ParkingSpot

	// Err, when set, is returned by every call instead of a response.
	err error
	// rejectProfile, when non-empty, makes UpdateProfile answer with an error status.
	rejectProfile string

	currentUserCalls int
	profileUpdates   []backendport.ProfileUpdate
	filters          []backendport.SpotFilter
}

func NewBackend() *Backend {
	return &Backend{}
}

// SetUser logs u in; nil logs out.
func (b *Backend) SetUser(u *domain.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if u == nil {
		b.user = nil
		return
	}
	c := *u
	b.user = &c
}

func (b *Backend) SetSpots(spots []domain.ParkingSpot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spots = slices.Clone(spots)
}

// FailWith makes every call return err. Pass nil to restore normal behavior.
func (b *Backend) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
}

// RejectProfileUpdates makes UpdateProfile answer with status "error" and message.
func (b *Backend) RejectProfileUpdates(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rejectProfile = message
}

func (b *Backend) CurrentUserCalls() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.currentUserCalls
}

func (b *Backend) ProfileUpdates() []backendport.ProfileUpdate {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.profileUpdates)
}

func (b *Backend) Filters() []backendport.SpotFilter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.filters)
}

func (b *Backend) CurrentUser(ctx context.Context) (backendport.CurrentUser, error) {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentUserCalls++
	if b.err != nil {
		return backendport.CurrentUser{}, b.err
	}
	if b.user == nil {
		return backendport.CurrentUser{Authenticated: false}, nil
	}
	u := *b.user
	return backendport.CurrentUser{Authenticated: true, User: &u}, nil
}

func (b *Backend) UpdateProfile(ctx context.Context, in backendport.ProfileUpdate) (backendport.Result, error) {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profileUpdates = append(b.profileUpdates, in)
	if b.err != nil {
		return backendport.Result{}, b.err
	}
	if b.rejectProfile != "" {
		return backendport.Result{Status: "error", Message: b.rejectProfile}, nil
	}
	if b.user == nil {
		return backendport.Result{Status: "error", Message: "login required"}, nil
	}

	u := *b.user
	u.Major = strPtr(in.Major)
	u.GradeLevel = strPtr(in.GradeLevel)
	u.HousingType = strPtr(in.HousingType)
	u.GraduationYear = in.GraduationYear
	if in.PreferredParkingTypes != nil {
		u.PreferredParkingTypes = slices.Clone(in.PreferredParkingTypes)
	}
	b.user = &u

	out := u
	return backendport.Result{Status: backendport.StatusSuccess, User: &out}, nil
}

func (b *Backend) FilterSpots(ctx context.Context, f backendport.SpotFilter) (backendport.SpotPage, error) {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters = append(b.filters, f)
	if b.err != nil {
		return backendport.SpotPage{}, b.err
	}
	out := make([]domain.ParkingSpot, 0)
	for _, s := range b.spots {
		if Matches(s, f) {
			out = append(out, s)
		}
	}
	return backendport.SpotPage{Status: backendport.StatusSuccess, Count: len(out), Spots: out}, nil
}

func (b *Backend) ListSpots(ctx context.Context) (backendport.SpotPage, error) {
	_ = ctx
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.err != nil {
		return backendport.SpotPage{}, b.err
	}
	out := slices.Clone(b.spots)
	return backendport.SpotPage{Status: backendport.StatusSuccess, Count: len(out), Spots: out}, nil
}

// Matches applies the backend's filter rules: exact campus and type, cost at most MaxCost.
func Matches(s domain.ParkingSpot, f backendport.SpotFilter) bool {
	if f.Campus != "" && s.CampusLocation != f.Campus {
		return false
	}
	if f.ParkingType != "" && s.ParkingType != f.ParkingType {
		return false
	}
	if f.MaxCost != nil && s.Cost > *f.MaxCost {
		return false
	}
	return true
}

func strPtr(s string) *string { return &s }
