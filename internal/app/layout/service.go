// Package layout owns the page chrome that never talks to the backend: the sidebar and
// the parking suggestion modal.
package layout

import (
	"log/slog"

	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
)

type Service struct {
	store *uistate.Store

	Logger *slog.Logger
}

func NewService(store *uistate.Store) *Service {
	return &Service{store: store, Logger: slog.Default()}
}

func (s *Service) OpenSidebar() {
	s.store.Update(func(st *uistate.State) { st.SidebarOpen = true })
}

func (s *Service) CloseSidebar() {
	s.store.Update(func(st *uistate.State) { st.SidebarOpen = false })
}

// OpenSuggestion shows the suggestion modal and lights up its button.
func (s *Service) OpenSuggestion() {
	s.store.Update(func(st *uistate.State) {
		st.SuggestionModalOpen = true
		st.SuggestionGlow = true
	})
}

// CloseSuggestion hides the modal. The button keeps glowing until a suggestion is submitted.
func (s *Service) CloseSuggestion() {
	s.store.Update(func(st *uistate.State) { st.SuggestionModalOpen = false })
}

// SubmitSuggestion dismisses the modal. Suggestions are not sent anywhere yet.
func (s *Service) SubmitSuggestion() {
	s.store.Update(func(st *uistate.State) {
		st.SuggestionModalOpen = false
		st.SuggestionGlow = false
	})
	s.Logger.Info("layout_event", "event", "suggestion_submitted")
}
