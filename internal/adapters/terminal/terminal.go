// Package terminal renders the page's side channels and state as plain text for the CLI.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
)

// Notifier prints alerts and navigation targets. Navigation paths are resolved with
// ResolveURL when it is set.
type Notifier struct {
	mu sync.Mutex
	w  io.Writer

	ResolveURL func(path string) string
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Alert(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[alert] %s\n", message)
}

func (n *Notifier) Navigate(path string) {
	target := path
	if n.ResolveURL != nil {
		target = n.ResolveURL(path)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "open %s\n", target)
}

// RenderState writes the session, open panels, filters and the last search.
func RenderState(w io.Writer, st uistate.State) error {
	var b strings.Builder

	switch st.Session.Kind {
	case domain.SessionLoggedOut:
		b.WriteString("session: logged out\n")
	default:
		u := st.Session.User
		fmt.Fprintf(&b, "session: %s <%s>\n", u.DisplayName(), u.Email)
		if st.Session.NeedsProfile() {
			fmt.Fprintf(&b, "profile: incomplete (missing %s)\n", strings.Join(u.MissingProfileFields(), ", "))
		} else {
			b.WriteString("profile: complete\n")
		}
	}

	if open := openPanels(st); len(open) > 0 {
		fmt.Fprintf(&b, "open: %s\n", strings.Join(open, ", "))
	}

	fmt.Fprintf(&b, "filters: campus=%s type=%s max=%s\n",
		orAny(st.Filters.Campus), orAny(st.Filters.ParkingType), st.CostDisplay())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if st.LastSearch != nil {
		fmt.Fprintf(w, "results: %d\n", st.LastSearch.Count)
		return RenderSpots(w, st.LastSearch.Spots)
	}
	return nil
}

// RenderSpots writes one aligned row per spot.
func RenderSpots(w io.Writer, spots []domain.ParkingSpot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCAMPUS\tTYPE\tCOST")
	for _, s := range spots {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.CampusLocation, s.ParkingType, domain.FormatHourlyCost(s.Cost))
	}
	return tw.Flush()
}

func openPanels(st uistate.State) []string {
	var out []string
	if st.SidebarOpen {
		out = append(out, "sidebar")
	}
	if st.LoginModalOpen {
		out = append(out, "login")
	}
	if st.ProfileModalOpen {
		out = append(out, "profile")
	}
	if st.SuggestionModalOpen {
		out = append(out, "suggestion")
	}
	return out
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}
