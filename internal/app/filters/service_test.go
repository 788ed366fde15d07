package filters

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	membackend "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/backend"
	memclock "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/clock"
	memnotify "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/notify"
	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
)

func TestBuildQuery_CostBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cost    float64
		want    string
		present bool
	}{
		{cost: 0, want: "0", present: true},
		{cost: 2.5, want: "2.5", present: true},
		{cost: 4.99, want: "4.99", present: true},
		{cost: 5.00, present: false},
		{cost: 5.5, present: false},
	}
	for _, tt := range tests {
		q, err := BuildQuery(domain.FilterCriteria{MaxCost: tt.cost})
		if err != nil {
			t.Fatalf("BuildQuery(%v) err=%v", tt.cost, err)
		}
		v, err := url.ParseQuery(q)
		if err != nil {
			t.Fatalf("ParseQuery(%q) err=%v", q, err)
		}
		if v.Has("max_cost") != tt.present {
			t.Fatalf("cost=%v query=%q, want max_cost present=%v", tt.cost, q, tt.present)
		}
		if tt.present && v.Get("max_cost") != tt.want {
			t.Fatalf("max_cost=%q, want %q", v.Get("max_cost"), tt.want)
		}
	}
}

func TestBuildQuery_SelectsOmittedWhenEmptyAndEncoded(t *testing.T) {
	t.Parallel()

	q, err := BuildQuery(domain.DefaultFilterCriteria())
	if err != nil {
		t.Fatalf("BuildQuery err=%v", err)
	}
	if q != "" {
		t.Fatalf("query=%q, want empty", q)
	}

	q, err = BuildQuery(domain.FilterCriteria{Campus: "St. Paul & West Bank", ParkingType: "Surface Lot", MaxCost: 5})
	if err != nil {
		t.Fatalf("BuildQuery err=%v", err)
	}
	want := "campus=St.+Paul+%26+West+Bank&type=Surface+Lot"
	if q != want {
		t.Fatalf("query=%q, want %q", q, want)
	}
}

type harness struct {
	backend *membackend.Backend
	store   *uistate.Store
	notes   *memnotify.Recorder
	svc     *Service
}

func newHarness(t *testing.T) harness {
	t.Helper()
	b := membackend.NewBackend()
	b.SetSpots([]domain.ParkingSpot{
		{ID: "1", Name: "4th Street Ramp", CampusLocation: "East Bank", ParkingType: "Ramp", Cost: 3.5},
		{ID: "2", Name: "Lot 37", CampusLocation: "West Bank", ParkingType: "Surface Lot", Cost: 1.75},
		{ID: "3", Name: "Oak Street Ramp", CampusLocation: "East Bank", ParkingType: "Ramp", Cost: 4.5},
	})
	store := uistate.NewStore(uistate.Initial())
	notes := memnotify.NewRecorder()
	svc := NewService(b, store, notes, memclock.NewManualClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))
	svc.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return harness{backend: b, store: store, notes: notes, svc: svc}
}

func TestService_Apply(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.svc.SetCampus("East Bank")
	if err := h.svc.SetMaxCost("4"); err != nil {
		t.Fatalf("SetMaxCost err=%v", err)
	}

	got, err := h.svc.Apply(context.Background())
	if err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	if got.Count != 1 || got.Spots[0].ID != "1" {
		t.Fatalf("search=%+v, want only spot 1", got)
	}
	if alerts := h.notes.Alerts(); len(alerts) != 1 || alerts[0] != "Found 1 parking spots matching your filters!" {
		t.Fatalf("alerts=%v", alerts)
	}
	st := h.store.Snapshot()
	if st.LastSearch == nil || st.LastSearch.Count != 1 {
		t.Fatalf("LastSearch=%+v", st.LastSearch)
	}
	fs := h.backend.Filters()
	if len(fs) != 1 || fs[0].MaxCost == nil || *fs[0].MaxCost != 4 || fs[0].ParkingType != "" {
		t.Fatalf("filters sent=%+v", fs)
	}
}

func TestService_Apply_AtCeilingSendsNoCap(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	if _, err := h.svc.Apply(context.Background()); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	fs := h.backend.Filters()
	if len(fs) != 1 || fs[0].MaxCost != nil {
		t.Fatalf("filters sent=%+v, want no max cost", fs)
	}
}

func TestService_Apply_FailureIsNotAlerted(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.backend.FailWith(errors.New("connection reset"))

	if _, err := h.svc.Apply(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if alerts := h.notes.Alerts(); len(alerts) != 0 {
		t.Fatalf("alerts=%v, want none", alerts)
	}
	if h.store.Snapshot().LastSearch != nil {
		t.Fatalf("LastSearch set on failure")
	}
}

func TestService_ClearResetsForm(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.svc.SetCampus("West Bank")
	h.svc.SetParkingType("Ramp")
	if err := h.svc.SetMaxCost("2.25"); err != nil {
		t.Fatalf("SetMaxCost err=%v", err)
	}
	if got := h.store.Snapshot().CostDisplay(); got != "$2.25/hr" {
		t.Fatalf("CostDisplay()=%q", got)
	}

	h.svc.Clear()

	st := h.store.Snapshot()
	if st.Filters.Campus != "" || st.Filters.ParkingType != "" || st.Filters.MaxCost != 5 {
		t.Fatalf("filters=%+v, want defaults", st.Filters)
	}
	if got := st.CostDisplay(); got != "$5.00/hr" {
		t.Fatalf("CostDisplay()=%q, want $5.00/hr", got)
	}
	if len(h.backend.Filters()) != 0 {
		t.Fatalf("Clear contacted the backend")
	}
}

func TestService_SetMaxCost_Invalid(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	if err := h.svc.SetMaxCost("cheap"); err == nil {
		t.Fatalf("expected error")
	}
	if got := h.store.Snapshot().Filters.MaxCost; got != 5 {
		t.Fatalf("MaxCost=%v, want unchanged 5", got)
	}
}

func TestService_ListAll(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	spots, err := h.svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll err=%v", err)
	}
	if len(spots) != 3 {
		t.Fatalf("len=%d, want 3", len(spots))
	}
}
