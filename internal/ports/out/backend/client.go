package backend

import (
	"context"

	"github.com/campus-parkfinder/parkfinder/internal/domain"
)

// StatusSuccess is the application-level status the backend reports on success.
const StatusSuccess = "success"

// Navigation targets handled by the backend with full-page redirects.
const (
	LoginPath  = "/login"
	LogoutPath = "/logout"
)

// CurrentUser is the answer to "who is logged in". User is nil when Authenticated is false.
type CurrentUser struct {
	Authenticated bool
	User          *domain.User
}

// ProfileUpdate is the profile-completion payload.
// GraduationYear is nil when the form value is not a number; it is sent as JSON null.
type ProfileUpdate struct {
	Major          string
	GradeLevel     string
	GraduationYear *int
	HousingType    string

	// PreferredParkingTypes is optional; nil leaves the stored preference untouched.
	PreferredParkingTypes []string
}

// Result is the application-level envelope of a mutating call.
type Result struct {
	Status  string
	Message string
	User    *domain.User
}

func (r Result) Success() bool { return r.Status == StatusSuccess }

// SpotFilter is the query of a filtered spot search. Empty strings and a nil MaxCost are
// not sent.
type SpotFilter struct {
	Campus      string
	ParkingType string
	MaxCost     *float64
}

// SpotPage is the envelope of a spot listing.
type SpotPage struct {
	Status  string
	Message string
	Count   int
	Spots   []domain.ParkingSpot
}

func (p SpotPage) Success() bool { return p.Status == StatusSuccess }

// Client is the parking backend as seen by the page.
//
// Implementations return an error only for transport or decoding failures. An
// application-level failure (Status != "success") is a normal return value.
type Client interface {
	CurrentUser(ctx context.Context) (CurrentUser, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (Result, error)
	FilterSpots(ctx context.Context, f SpotFilter) (SpotPage, error)
	ListSpots(ctx context.Context) (SpotPage, error)
}
