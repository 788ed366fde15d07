package page

import domport "github.com/campus-parkfinder/parkfinder/internal/ports/out/dom"

// Element ids and selectors of the page skeleton.
const (
	IDMenuButton        = "menu-button"
	IDSidebar           = "sidebar"
	IDLogoClose         = "logo-close"
	IDSuggestionButton  = "parking-suggestion-btn"
	IDSuggestionModal   = "new_parking_suggestion_modal"
	SelSuggestionSubmit = ".modal-submit-btn"
	SelSuggestionClose  = ".modal-close-btn"

	IDLoginModal      = "login-modal"
	IDProfileModal    = "profile-modal"
	IDLoginButton     = "login-btn"
	IDLoginModalClose = "login-modal-close"
	IDGoogleSignIn    = "google-signin-btn"
	IDLogoutButton    = "logout-btn"
	IDProfileForm     = "profile-form"
	IDMajorInput      = "major-input"
	IDGradeLevelInput = "grade-level-input"
	IDGradYearInput   = "graduation-year-input"
	IDHousingInput    = "housing-type-input"
	IDNotLoggedIn     = "not-logged-in"
	IDLoggedIn        = "logged-in"
	IDUserAvatar      = "user-avatar"
	IDUserName        = "user-name"
	IDUserEmail       = "user-email"

	IDParkingTypeSelect = "parking-type-select"
	IDCampusSelect      = "campus-location-select"
	IDMaxCostRange      = "max-cost-range"
	IDCostDisplay       = "cost-display"
	IDApplyFilters      = "apply-filters-btn"
	IDClearFilters      = "clear-filters-btn"
)

// CSS classes toggled by Render.
const (
	ClassOpen       = "open"
	ClassHidden     = "hidden"
	ClassVisible    = "visible"
	ClassActive     = "active"
	ClassActiveGlow = "active-glow"
)

// elements holds every reference the page uses. A nil field means the element is absent
// and the feature behind it is off.
type elements struct {
	menuButton, sidebar, logoClose             domport.Element
	suggestionButton, suggestionModal          domport.Element
	suggestionSubmit, suggestionClose          domport.Element
	loginModal, profileModal                   domport.Element
	loginButton, loginModalClose, googleSignIn domport.Element
	logoutButton, profileForm                  domport.Element
	majorInput, gradeLevelInput, gradYearInput domport.Element
	housingInput                               domport.Element
	notLoggedIn, loggedIn                      domport.Element
	userAvatar, userName, userEmail            domport.Element
	parkingTypeSelect, campusSelect            domport.Element
	maxCostRange, costDisplay                  domport.Element
	applyFilters, clearFilters                 domport.Element
}

func lookup(doc domport.Document) elements {
	byID := func(id string) domport.Element {
		if e, ok := doc.ByID(id); ok {
			return e
		}
		return nil
	}
	query := func(sel string) domport.Element {
		if e, ok := doc.Query(sel); ok {
			return e
		}
		return nil
	}
	return elements{
		menuButton:        byID(IDMenuButton),
		sidebar:           byID(IDSidebar),
		logoClose:         byID(IDLogoClose),
		suggestionButton:  byID(IDSuggestionButton),
		suggestionModal:   byID(IDSuggestionModal),
		suggestionSubmit:  query(SelSuggestionSubmit),
		suggestionClose:   query(SelSuggestionClose),
		loginModal:        byID(IDLoginModal),
		profileModal:      byID(IDProfileModal),
		loginButton:       byID(IDLoginButton),
		loginModalClose:   byID(IDLoginModalClose),
		googleSignIn:      byID(IDGoogleSignIn),
		logoutButton:      byID(IDLogoutButton),
		profileForm:       byID(IDProfileForm),
		majorInput:        byID(IDMajorInput),
		gradeLevelInput:   byID(IDGradeLevelInput),
		gradYearInput:     byID(IDGradYearInput),
		housingInput:      byID(IDHousingInput),
		notLoggedIn:       byID(IDNotLoggedIn),
		loggedIn:          byID(IDLoggedIn),
		userAvatar:        byID(IDUserAvatar),
		userName:          byID(IDUserName),
		userEmail:         byID(IDUserEmail),
		parkingTypeSelect: byID(IDParkingTypeSelect),
		campusSelect:      byID(IDCampusSelect),
		maxCostRange:      byID(IDMaxCostRange),
		costDisplay:       byID(IDCostDisplay),
		applyFilters:      byID(IDApplyFilters),
		clearFilters:      byID(IDClearFilters),
	}
}

func toggle(e domport.Element, on bool, classes ...string) {
	if e == nil {
		return
	}
	if on {
		e.AddClass(classes...)
	} else {
		e.RemoveClass(classes...)
	}
}

func setText(e domport.Element, s string) {
	if e != nil {
		e.SetText(s)
	}
}

func setDisplay(e domport.Element, s string) {
	if e != nil {
		e.SetDisplay(s)
	}
}

func valueOf(e domport.Element) string {
	if e == nil {
		return ""
	}
	return e.Value()
}
