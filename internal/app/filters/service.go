package filters

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
	clockport "github.com/campus-parkfinder/parkfinder/internal/ports/out/clock"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/notify"
)

// Service owns the filter form and runs spot searches.
type Service struct {
	backend backend.Client
	store   *uistate.Store
	alerts  notify.Alerter
	clk     clockport.Clock

	Logger *slog.Logger
}

func NewService(b backend.Client, store *uistate.Store, alerts notify.Alerter, clk clockport.Clock) *Service {
	return &Service{
		backend: b,
		store:   store,
		alerts:  alerts,
		clk:     clk,
		Logger:  slog.Default(),
	}
}

// ToSpotFilter maps form state to the wire filter: empty selects are dropped and the cost
// is only sent when it is below the slider ceiling.
func ToSpotFilter(c domain.FilterCriteria) backend.SpotFilter {
	f := backend.SpotFilter{
		Campus:      c.Campus,
		ParkingType: c.ParkingType,
	}
	if v, ok := c.CostCap(); ok {
		f.MaxCost = &v
	}
	return f
}

// BuildQuery is the query string Apply would send for c.
func BuildQuery(c domain.FilterCriteria) (string, error) {
	return ToSpotFilter(c).Query()
}

func (s *Service) SetCampus(v string) {
	s.store.Update(func(st *uistate.State) { st.Filters.Campus = v })
}

func (s *Service) SetParkingType(v string) {
	s.store.Update(func(st *uistate.State) { st.Filters.ParkingType = v })
}

// SetMaxCost takes the raw slider value. The cost label follows through the store.
func (s *Service) SetMaxCost(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid max cost %q: %w", raw, err)
	}
	s.store.Update(func(st *uistate.State) { st.Filters.MaxCost = v })
	return nil
}

// Clear resets the form to its defaults without contacting the backend.
func (s *Service) Clear() {
	s.store.Update(func(st *uistate.State) { st.Filters = domain.DefaultFilterCriteria() })
}

// Apply runs one search with the current form state. A successful search is stored and
// its count alerted. Failures are logged and returned; the user is not told.
func (s *Service) Apply(ctx context.Context) (*domain.SpotSearch, error) {
	criteria := s.store.Snapshot().Filters

	page, err := s.backend.FilterSpots(ctx, ToSpotFilter(criteria))
	if err != nil {
		s.Logger.Error("filter_apply_failed", "error", err)
		return nil, fmt.Errorf("filter spots: %w", err)
	}
	if !page.Success() {
		s.Logger.Warn("filter_apply_rejected", "status", page.Status, "message", page.Message)
		return nil, &RejectedError{Status: page.Status, Message: page.Message}
	}

	search := &domain.SpotSearch{
		Criteria:  criteria,
		Count:     page.Count,
		Spots:     page.Spots,
		FetchedAt: s.clk.Now(),
	}
	s.store.Update(func(st *uistate.State) {
		c := *search
		st.LastSearch = &c
	})
	s.Logger.Info("filter_event", "event", "spots_found", "count", page.Count,
		"campus", criteria.Campus, "type", criteria.ParkingType)
	s.alerts.Alert(FoundMessage(page.Count))
	return search, nil
}

// ListAll fetches every spot, unfiltered. It does not touch the form or the store.
func (s *Service) ListAll(ctx context.Context) ([]domain.ParkingSpot, error) {
	page, err := s.backend.ListSpots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	if !page.Success() {
		return nil, &RejectedError{Status: page.Status, Message: page.Message}
	}
	return page.Spots, nil
}

// FoundMessage is the alert shown after a successful search.
func FoundMessage(count int) string {
	return fmt.Sprintf("Found %d parking spots matching your filters!", count)
}
