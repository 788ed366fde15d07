// Package uistate is the page's observable state. Controllers write to the Store; views
// subscribe and re-render from snapshots.
package uistate

import (
	"slices"

	"github.com/campus-parkfinder/parkfinder/internal/domain"
)

// State is everything the page renders.
type State struct {
	Session domain.Session

	SidebarOpen         bool
	LoginModalOpen      bool
	ProfileModalOpen    bool
	SuggestionModalOpen bool
	// SuggestionGlow marks the suggestion button while a suggestion is being written.
	// Closing the modal keeps it; submitting clears it.
	SuggestionGlow bool

	Filters domain.FilterCriteria

	// LastSearch is nil until a filter request succeeds.
	LastSearch *domain.SpotSearch
}

// Initial is the state before the first auth check.
func Initial() State {
	return State{
		Session: domain.LoggedOut(),
		Filters: domain.DefaultFilterCriteria(),
	}
}

// CostDisplay is the slider label for the current filter.
func (s State) CostDisplay() string {
	return domain.FormatHourlyCost(s.Filters.MaxCost)
}

func (s State) clone() State {
	out := s
	if s.Session.User != nil {
		u := cloneUser(*s.Session.User)
		out.Session.User = &u
	}
	if s.LastSearch != nil {
		ls := *s.LastSearch
		ls.Spots = slices.Clone(s.LastSearch.Spots)
		out.LastSearch = &ls
	}
	return out
}

func cloneUser(u domain.User) domain.User {
	out := u
	out.ProfilePic = cloneStringPtr(u.ProfilePic)
	out.Major = cloneStringPtr(u.Major)
	out.GradeLevel = cloneStringPtr(u.GradeLevel)
	out.HousingType = cloneStringPtr(u.HousingType)
	if u.GraduationYear != nil {
		v := *u.GraduationYear
		out.GraduationYear = &v
	}
	out.PreferredParkingTypes = slices.Clone(u.PreferredParkingTypes)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
