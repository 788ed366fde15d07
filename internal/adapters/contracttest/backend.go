// Package contracttest holds behavior suites shared by every backend.Client
// implementation, so the in-memory fake and the HTTP client stay interchangeable.
package contracttest

import (
	"context"
	"testing"

	"github.com/campus-parkfinder/parkfinder/internal/domain"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
)

type CleanupFunc = func()

// Fixture is the backend state a suite starts from. A nil User means nobody is logged in.
type Fixture struct {
	User  *domain.User
	Spots []domain.ParkingSpot
}

type BackendFactory func(t *testing.T, fx Fixture) (backend.Client, CleanupFunc)

func student() *domain.User {
	return &domain.User{ID: "7", FirstName: "Goldy", LastName: "Gopher", Email: "goldy@umn.edu"}
}

func campusSpots() []domain.ParkingSpot {
	return []domain.ParkingSpot{
		{ID: "1", Name: "4th Street Ramp", CampusLocation: "East Bank", ParkingType: "Ramp", Cost: 3.5},
		{ID: "2", Name: "Lot 37", CampusLocation: "West Bank", ParkingType: "Surface Lot", Cost: 1.75},
		{ID: "3", Name: "Gortner Avenue Ramp", CampusLocation: "St. Paul", ParkingType: "Ramp", Cost: 2.5},
		{ID: "4", Name: "Church Street Garage", CampusLocation: "East Bank", ParkingType: "Garage", Cost: 5},
	}
}

func open(t *testing.T, newBackend BackendFactory, fx Fixture) backend.Client {
	t.Helper()
	c, cleanup := newBackend(t, fx)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}
	return c
}

// RunBackend exercises the session, profile and spot search contract.
func RunBackend(t *testing.T, newBackend BackendFactory) {
	t.Helper()

	t.Run("anonymous current user", func(t *testing.T) {
		c := open(t, newBackend, Fixture{User: nil})
		cu, err := c.CurrentUser(context.Background())
		if err != nil {
			t.Fatalf("CurrentUser: %v", err)
		}
		if cu.Authenticated || cu.User != nil {
			t.Fatalf("got %+v, want anonymous", cu)
		}
	})

	t.Run("anonymous profile update is rejected", func(t *testing.T) {
		c := open(t, newBackend, Fixture{User: nil})
		res, err := c.UpdateProfile(context.Background(), backend.ProfileUpdate{Major: "History"})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if res.Success() || res.Message == "" {
			t.Fatalf("got status=%q message=%q, want a failure with a message", res.Status, res.Message)
		}
	})

	t.Run("logged in user with incomplete profile", func(t *testing.T) {
		c := open(t, newBackend, Fixture{User: student()})
		cu, err := c.CurrentUser(context.Background())
		if err != nil {
			t.Fatalf("CurrentUser: %v", err)
		}
		if !cu.Authenticated || cu.User == nil {
			t.Fatalf("got %+v, want authenticated", cu)
		}
		if cu.User.Email != "goldy@umn.edu" || cu.User.DisplayName() != "Goldy Gopher" {
			t.Fatalf("user=%+v, want Goldy Gopher <goldy@umn.edu>", cu.User)
		}
		if cu.User.IsProfileComplete() {
			t.Fatalf("profile complete, want missing %v", []string{"major", "grade_level", "housing_type"})
		}
	})

	t.Run("profile update completes the profile", func(t *testing.T) {
		ctx := context.Background()
		c := open(t, newBackend, Fixture{User: student()})

		year := 2027
		res, err := c.UpdateProfile(ctx, backend.ProfileUpdate{
			Major:          "Computer Science",
			GradeLevel:     "Junior",
			GraduationYear: &year,
			HousingType:    "On-campus",
		})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if !res.Success() {
			t.Fatalf("status=%q message=%q, want success", res.Status, res.Message)
		}

		cu, err := c.CurrentUser(ctx)
		if err != nil {
			t.Fatalf("CurrentUser: %v", err)
		}
		if cu.User == nil || !cu.User.IsProfileComplete() {
			t.Fatalf("user=%+v, want complete profile", cu.User)
		}
		if cu.User.GraduationYear == nil || *cu.User.GraduationYear != 2027 {
			t.Fatalf("graduation year=%v, want 2027", cu.User.GraduationYear)
		}

		if _, err := c.UpdateProfile(ctx, backend.ProfileUpdate{Major: "CS", GradeLevel: "Junior", HousingType: "On-campus"}); err != nil {
			t.Fatalf("UpdateProfile without year: %v", err)
		}
		cu, err = c.CurrentUser(ctx)
		if err != nil {
			t.Fatalf("CurrentUser: %v", err)
		}
		if cu.User.GraduationYear != nil {
			t.Fatalf("graduation year=%d, want cleared", *cu.User.GraduationYear)
		}
	})

	t.Run("filter spots", func(t *testing.T) {
		c := open(t, newBackend, Fixture{Spots: campusSpots()})
		price := func(v float64) *float64 { return &v }

		tests := []struct {
			name   string
			filter backend.SpotFilter
			want   []domain.SpotID
		}{
			{name: "everything", filter: backend.SpotFilter{}, want: []domain.SpotID{"1", "2", "3", "4"}},
			{name: "campus", filter: backend.SpotFilter{Campus: "East Bank"}, want: []domain.SpotID{"1", "4"}},
			{name: "type", filter: backend.SpotFilter{ParkingType: "Ramp"}, want: []domain.SpotID{"1", "3"}},
			{name: "cost is inclusive", filter: backend.SpotFilter{MaxCost: price(2.5)}, want: []domain.SpotID{"2", "3"}},
			{name: "combined", filter: backend.SpotFilter{Campus: "East Bank", ParkingType: "Ramp", MaxCost: price(3)}, want: nil},
		}
		for _, tc := range tests {
			page, err := c.FilterSpots(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("%s: FilterSpots: %v", tc.name, err)
			}
			if !page.Success() {
				t.Fatalf("%s: status=%q, want success", tc.name, page.Status)
			}
			if page.Count != len(tc.want) || len(page.Spots) != len(tc.want) {
				t.Fatalf("%s: count=%d len=%d, want %d", tc.name, page.Count, len(page.Spots), len(tc.want))
			}
			for i, id := range tc.want {
				if page.Spots[i].ID != id {
					t.Fatalf("%s: spot[%d]=%s, want %s", tc.name, i, page.Spots[i].ID, id)
				}
			}
		}
	})

	t.Run("list spots", func(t *testing.T) {
		c := open(t, newBackend, Fixture{Spots: campusSpots()})
		page, err := c.ListSpots(context.Background())
		if err != nil {
			t.Fatalf("ListSpots: %v", err)
		}
		if !page.Success() || page.Count != 4 {
			t.Fatalf("status=%q count=%d, want success/4", page.Status, page.Count)
		}
	})
}
