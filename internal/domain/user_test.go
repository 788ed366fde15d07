package domain

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestUser_IsProfileComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		user        User
		wantMissing []string
	}{
		{
			name: "all present",
			user: User{Major: strPtr("CS"), GradeLevel: strPtr("Junior"), HousingType: strPtr("On-campus")},
		},
		{
			name:        "none present",
			user:        User{},
			wantMissing: []string{"major", "grade_level", "housing_type"},
		},
		{
			name:        "empty major counts as missing",
			user:        User{Major: strPtr(""), GradeLevel: strPtr("Senior"), HousingType: strPtr("Commuter")},
			wantMissing: []string{"major"},
		},
		{
			name:        "missing housing only",
			user:        User{Major: strPtr("Math"), GradeLevel: strPtr("Senior")},
			wantMissing: []string{"housing_type"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.user.MissingProfileFields()
			if !reflect.DeepEqual(got, tt.wantMissing) {
				t.Fatalf("MissingProfileFields()=%v, want %v", got, tt.wantMissing)
			}
			if tt.user.IsProfileComplete() != (len(tt.wantMissing) == 0) {
				t.Fatalf("IsProfileComplete()=%v", tt.user.IsProfileComplete())
			}
		})
	}
}

func TestUser_DisplayNameAndAvatar(t *testing.T) {
	t.Parallel()

	u := User{FirstName: " Goldy ", LastName: "Gopher"}
	if got := u.DisplayName(); got != "Goldy Gopher" {
		t.Fatalf("DisplayName()=%q", got)
	}
	if got := u.AvatarURL(); got != DefaultAvatarURL {
		t.Fatalf("AvatarURL()=%q, want default", got)
	}
	u.ProfilePic = strPtr("https://img.example/me.png")
	if got := u.AvatarURL(); got != "https://img.example/me.png" {
		t.Fatalf("AvatarURL()=%q", got)
	}
}

func TestSessionFor(t *testing.T) {
	t.Parallel()

	s := SessionFor(User{Major: strPtr("CS")})
	if s.Kind != SessionLoggedInIncompleteProfile || !s.NeedsProfile() || !s.Authenticated() {
		t.Fatalf("session=%+v, want incomplete profile", s)
	}
	s = SessionFor(User{Major: strPtr("CS"), GradeLevel: strPtr("Senior"), HousingType: strPtr("Dorm")})
	if s.Kind != SessionLoggedIn || s.NeedsProfile() {
		t.Fatalf("session=%+v, want logged in", s)
	}
	if LoggedOut().Authenticated() {
		t.Fatalf("logged out session reports authenticated")
	}
}

func TestFilterCriteria_CostCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cost    float64
		wantCap bool
	}{
		{0, true},
		{2.5, true},
		{4.99, true},
		{5.00, false},
		{7, false},
	}
	for _, tt := range tests {
		tt := tt
		_, ok := FilterCriteria{MaxCost: tt.cost}.CostCap()
		if ok != tt.wantCap {
			t.Fatalf("CostCap(%v) ok=%v, want %v", tt.cost, ok, tt.wantCap)
		}
	}
	if got := FormatHourlyCost(MaxCostCeiling); got != "$5.00/hr" {
		t.Fatalf("FormatHourlyCost()=%q", got)
	}
}
