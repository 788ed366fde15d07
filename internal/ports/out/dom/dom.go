// Package dom is the slice of a browser document the page controller needs.
//
// Element lookups happen once, when a component is constructed. Implementations must make
// every method safe to call from the single UI goroutine; no further synchronization is
// promised.
package dom

import "context"

// Event names the page listens to.
const (
	EventClick  = "click"
	EventInput  = "input"
	EventSubmit = "submit"
)

// Event is a dispatched DOM event. Value carries the target's value for input events.
type Event struct {
	Type  string
	Value string
}

// Handler reacts to an event. It runs to completion before the next event is dispatched.
type Handler func(ctx context.Context, ev Event)

// Element is a single DOM node.
type Element interface {
	ID() string

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	Text() string
	SetText(s string)

	Value() string
	SetValue(s string)

	// Display is the inline style.display value ("" when unset).
	Display() string
	SetDisplay(s string)

	Attr(name string) string
	SetAttr(name, value string)

	// On registers h for the event type and returns a function removing it.
	On(eventType string, h Handler) (remove func())
}

// Document resolves elements. The second result is false when the element is absent.
type Document interface {
	ByID(id string) (Element, bool)
	// Query resolves a single-class selector such as ".modal-close-btn" to its first match.
	Query(selector string) (Element, bool)
}
