// Package page binds the parking page's document to the app controllers. Handlers turn
// DOM events into controller calls; Render maps the store's state back onto the elements.
package page

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/campus-parkfinder/parkfinder/internal/app/session"
	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	"github.com/campus-parkfinder/parkfinder/internal/domain"
	domport "github.com/campus-parkfinder/parkfinder/internal/ports/out/dom"
)

// SessionController is the part of session.Service the page drives.
type SessionController interface {
	Login()
	Logout()
	OpenLoginModal()
	CloseLoginModal()
	SubmitProfile(ctx context.Context, form session.ProfileForm) error
}

// FilterController is the part of filters.Service the page drives.
type FilterController interface {
	SetCampus(v string)
	SetParkingType(v string)
	SetMaxCost(raw string) error
	Clear()
	Apply(ctx context.Context) (*domain.SpotSearch, error)
}

// LayoutController is the part of layout.Service the page drives.
type LayoutController interface {
	OpenSidebar()
	CloseSidebar()
	OpenSuggestion()
	CloseSuggestion()
	SubmitSuggestion()
}

type Controllers struct {
	Session SessionController
	Filters FilterController
	Layout  LayoutController
}

// Page is one bound document. Elements are looked up once in New.
type Page struct {
	el   elements
	ctrl Controllers

	mu      sync.Mutex
	removes []func()

	Logger *slog.Logger
}

func New(doc domport.Document, ctrl Controllers) *Page {
	return &Page{
		el:     lookup(doc),
		ctrl:   ctrl,
		Logger: slog.Default(),
	}
}

// Bind attaches the handlers of every present element, subscribes Render to store and
// renders the current snapshot. Binding twice without Unbind is a no-op.
func (p *Page) Bind(store *uistate.Store) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.removes != nil {
		return
	}
	p.removes = []func(){}

	if c := p.ctrl.Layout; c != nil {
		p.on(p.el.menuButton, domport.EventClick, func(context.Context, domport.Event) { c.OpenSidebar() })
		p.on(p.el.logoClose, domport.EventClick, func(context.Context, domport.Event) { c.CloseSidebar() })
		p.on(p.el.suggestionButton, domport.EventClick, func(context.Context, domport.Event) { c.OpenSuggestion() })
		p.on(p.el.suggestionClose, domport.EventClick, func(context.Context, domport.Event) { c.CloseSuggestion() })
		p.on(p.el.suggestionSubmit, domport.EventClick, func(context.Context, domport.Event) { c.SubmitSuggestion() })
	}

	if c := p.ctrl.Session; c != nil {
		p.on(p.el.loginButton, domport.EventClick, func(context.Context, domport.Event) { c.OpenLoginModal() })
		p.on(p.el.loginModalClose, domport.EventClick, func(context.Context, domport.Event) { c.CloseLoginModal() })
		p.on(p.el.googleSignIn, domport.EventClick, func(context.Context, domport.Event) { c.Login() })
		p.on(p.el.logoutButton, domport.EventClick, func(context.Context, domport.Event) { c.Logout() })
		p.on(p.el.profileForm, domport.EventSubmit, func(ctx context.Context, _ domport.Event) {
			// The controller alerts on failure; the error is only logged here.
			if err := c.SubmitProfile(ctx, p.profileForm()); err != nil {
				p.Logger.Debug("profile_submit_failed", "error", err)
			}
		})
	}

	if c := p.ctrl.Filters; c != nil {
		// Render writes the stored filters back, so every input has to reach the store.
		p.on(p.el.campusSelect, domport.EventInput, func(_ context.Context, ev domport.Event) { c.SetCampus(ev.Value) })
		p.on(p.el.parkingTypeSelect, domport.EventInput, func(_ context.Context, ev domport.Event) { c.SetParkingType(ev.Value) })
		p.on(p.el.maxCostRange, domport.EventInput, func(_ context.Context, ev domport.Event) {
			if err := c.SetMaxCost(ev.Value); err != nil {
				p.Logger.Warn("filter_input_invalid", "error", err)
			}
		})
		p.on(p.el.applyFilters, domport.EventClick, func(ctx context.Context, _ domport.Event) {
			p.syncFilters(c)
			if _, err := c.Apply(ctx); err != nil {
				p.Logger.Debug("filter_apply_failed", "error", err)
			}
		})
		p.on(p.el.clearFilters, domport.EventClick, func(context.Context, domport.Event) { c.Clear() })
	}

	if store != nil {
		p.removes = append(p.removes, store.Subscribe(p.Render))
		p.Render(store.Snapshot())
	}
}

// Unbind detaches every handler and the store subscription.
func (p *Page) Unbind() {
	p.mu.Lock()
	removes := p.removes
	p.removes = nil
	p.mu.Unlock()
	for _, r := range removes {
		r()
	}
}

func (p *Page) on(e domport.Element, eventType string, h domport.Handler) {
	if e == nil {
		return
	}
	p.removes = append(p.removes, e.On(eventType, h))
}

func (p *Page) profileForm() session.ProfileForm {
	return session.ProfileForm{
		Major:          valueOf(p.el.majorInput),
		GradeLevel:     valueOf(p.el.gradeLevelInput),
		GraduationYear: valueOf(p.el.gradYearInput),
		HousingType:    valueOf(p.el.housingInput),
	}
}

// syncFilters copies the current form values into the controller before a search. All
// values are read first: each setter re-renders the form from the store.
func (p *Page) syncFilters(c FilterController) {
	e := p.el
	campus, kind, cost := valueOf(e.campusSelect), valueOf(e.parkingTypeSelect), valueOf(e.maxCostRange)

	if e.campusSelect != nil {
		c.SetCampus(campus)
	}
	if e.parkingTypeSelect != nil {
		c.SetParkingType(kind)
	}
	if e.maxCostRange != nil {
		if err := c.SetMaxCost(cost); err != nil {
			p.Logger.Warn("filter_input_invalid", "error", err)
		}
	}
}

// Render writes st to the elements. Absent elements are skipped.
func (p *Page) Render(st uistate.State) {
	e := p.el

	toggle(e.sidebar, st.SidebarOpen, ClassOpen)
	toggle(e.menuButton, st.SidebarOpen, ClassHidden, ClassActive)
	toggle(e.suggestionButton, st.SidebarOpen, ClassVisible)
	toggle(e.suggestionButton, st.SuggestionGlow, ClassActiveGlow)
	toggle(e.suggestionModal, st.SuggestionModalOpen, ClassOpen)

	toggle(e.loginModal, st.LoginModalOpen, ClassOpen)
	toggle(e.profileModal, st.ProfileModalOpen, ClassOpen)

	if u := st.Session.User; st.Session.Authenticated() && u != nil {
		setDisplay(e.notLoggedIn, "none")
		setDisplay(e.loggedIn, "flex")
		if e.userAvatar != nil {
			e.userAvatar.SetAttr("src", u.AvatarURL())
		}
		setText(e.userName, u.DisplayName())
		setText(e.userEmail, u.Email)
	} else {
		setDisplay(e.notLoggedIn, "block")
		setDisplay(e.loggedIn, "none")
	}

	if e.parkingTypeSelect != nil {
		e.parkingTypeSelect.SetValue(st.Filters.ParkingType)
	}
	if e.campusSelect != nil {
		e.campusSelect.SetValue(st.Filters.Campus)
	}
	if e.maxCostRange != nil {
		e.maxCostRange.SetValue(strconv.FormatFloat(st.Filters.MaxCost, 'f', -1, 64))
	}
	setText(e.costDisplay, st.CostDisplay())
}
