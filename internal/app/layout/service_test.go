package layout

import (
	"io"
	"log/slog"
	"testing"

	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
)

func newTestService() (*Service, *uistate.Store) {
	store := uistate.NewStore(uistate.Initial())
	s := NewService(store)
	s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return s, store
}

func TestSidebar_OpenClose(t *testing.T) {
	t.Parallel()
	s, store := newTestService()

	s.OpenSidebar()
	if !store.Snapshot().SidebarOpen {
		t.Fatalf("SidebarOpen=false, want true")
	}
	s.CloseSidebar()
	if store.Snapshot().SidebarOpen {
		t.Fatalf("SidebarOpen=true, want false")
	}
}

func TestSuggestion_CloseKeepsGlow(t *testing.T) {
	t.Parallel()
	s, store := newTestService()

	s.OpenSuggestion()
	st := store.Snapshot()
	if !st.SuggestionModalOpen || !st.SuggestionGlow {
		t.Fatalf("open=%v glow=%v, want true/true", st.SuggestionModalOpen, st.SuggestionGlow)
	}

	s.CloseSuggestion()
	st = store.Snapshot()
	if st.SuggestionModalOpen || !st.SuggestionGlow {
		t.Fatalf("open=%v glow=%v, want false/true", st.SuggestionModalOpen, st.SuggestionGlow)
	}
}

func TestSuggestion_SubmitClearsGlow(t *testing.T) {
	t.Parallel()
	s, store := newTestService()

	s.OpenSuggestion()
	s.SubmitSuggestion()
	st := store.Snapshot()
	if st.SuggestionModalOpen || st.SuggestionGlow {
		t.Fatalf("open=%v glow=%v, want false/false", st.SuggestionModalOpen, st.SuggestionGlow)
	}
}
