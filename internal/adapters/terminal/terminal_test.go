package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
)

func TestNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewNotifier(&buf)
	n.ResolveURL = func(p string) string { return "http://localhost:5000" + p }

	n.Alert("Profile updated successfully!")
	n.Navigate("/login")
	assert.Equal(t, "[alert] Profile updated successfully!\nopen http://localhost:5000/login\n", buf.String())
}

func TestRenderState_LoggedOut(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderState(&buf, uistate.Initial()))
	assert.Equal(t, "session: logged out\nfilters: campus=any type=any max=$5.00/hr\n", buf.String())
}

func TestRenderState_IncompleteProfileWithResults(t *testing.T) {
	t.Parallel()

	st := uistate.Initial()
	st.Session = domain.SessionFor(domain.User{FirstName: "Goldy", LastName: "Gopher", Email: "goldy@umn.edu"})
	st.ProfileModalOpen = true
	st.Filters.Campus = "West Bank"
	st.LastSearch = &domain.SpotSearch{
		Count: 1,
		Spots: []domain.ParkingSpot{{ID: "4", Name: "Lot 37", CampusLocation: "West Bank", ParkingType: "Surface Lot", Cost: 1.75}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderState(&buf, st))
	out := buf.String()
	assert.Contains(t, out, "session: Goldy Gopher <goldy@umn.edu>\n")
	assert.Contains(t, out, "profile: incomplete (missing major, grade_level, housing_type)\n")
	assert.Contains(t, out, "open: profile\n")
	assert.Contains(t, out, "filters: campus=West Bank type=any max=$5.00/hr\n")
	assert.Contains(t, out, "results: 1\n")
	assert.Contains(t, out, "Lot 37")
	assert.Contains(t, out, "$1.75/hr")
}
