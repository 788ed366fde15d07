// Package dom is an in-memory dom.Document. Tests and the terminal front end build the
// page skeleton with Add and drive it with Dispatch.
package dom

import (
	"context"
	"slices"
	"strings"
	"sync"

	domport "github.com/campus-parkfinder/parkfinder/internal/ports/out/dom"
)

type listener struct {
	id int
	h  domport.Handler
}

// Element is a node with classes, text, value, inline display and attributes.
type Element struct {
	mu sync.RWMutex

	id      string
	classes []string
	text    string
	value   string
	display string
	attrs   map[string]string

	nextID    int
	listeners map[string][]listener
}

func (e *Element) ID() string { return e.id }

func (e *Element) AddClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, n := range names {
		if !slices.Contains(e.classes, n) {
			e.classes = append(e.classes, n)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return slices.Contains(names, c) })
}

func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Contains(e.classes, name)
}

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.classes)
}

func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

func (e *Element) SetText(s string) {
	e.mu.Lock()
	e.text = s
	e.mu.Unlock()
}

func (e *Element) Value() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

func (e *Element) SetValue(s string) {
	e.mu.Lock()
	e.value = s
	e.mu.Unlock()
}

func (e *Element) Display() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.display
}

func (e *Element) SetDisplay(s string) {
	e.mu.Lock()
	e.display = s
	e.mu.Unlock()
}

func (e *Element) Attr(name string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.attrs[name]
}

func (e *Element) SetAttr(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

func (e *Element) On(eventType string, h domport.Handler) (remove func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener{id: id, h: h})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.listeners[eventType] = slices.DeleteFunc(e.listeners[eventType], func(l listener) bool { return l.id == id })
	}
}

// ListenerCount reports how many handlers are registered for eventType.
func (e *Element) ListenerCount(eventType string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[eventType])
}

func (e *Element) dispatch(ctx context.Context, ev domport.Event) {
	e.mu.RLock()
	ls := slices.Clone(e.listeners[ev.Type])
	e.mu.RUnlock()
	for _, l := range ls {
		l.h(ctx, ev)
	}
}

// Document holds elements by id, in the order they were added.
type Document struct {
	mu    sync.RWMutex
	order []*Element
	byID  map[string]*Element
}

func NewDocument() *Document {
	return &Document{byID: make(map[string]*Element)}
}

// Add creates an element. Elements added without an id are reachable only through Query.
func (d *Document) Add(id string, classes ...string) *Element {
	e := &Element{id: id}
	e.AddClass(classes...)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.order = append(d.order, e)
	if id != "" {
		d.byID[id] = e
	}
	return e
}

// Remove drops the element with id, if present.
func (d *Document) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.byID[id]
	if !ok {
		return
	}
	delete(d.byID, id)
	d.order = slices.DeleteFunc(d.order, func(x *Element) bool { return x == e })
}

func (d *Document) ByID(id string) (domport.Element, bool) {
	e, ok := d.Get(id)
	if !ok {
		return nil, false
	}
	return e, true
}

// Get is ByID with the concrete type.
func (d *Document) Get(id string) (*Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.byID[id]
	return e, ok
}

// Query supports "#id" and ".class" selectors.
func (d *Document) Query(selector string) (domport.Element, bool) {
	switch {
	case strings.HasPrefix(selector, "#"):
		return d.ByID(selector[1:])
	case strings.HasPrefix(selector, "."):
		name := selector[1:]
		d.mu.RLock()
		defer d.mu.RUnlock()
		for _, e := range d.order {
			if e.HasClass(name) {
				return e, true
			}
		}
	}
	return nil, false
}

// Dispatch delivers ev to the element's listeners. It reports false when no element has id.
func (d *Document) Dispatch(ctx context.Context, id string, ev domport.Event) bool {
	e, ok := d.Get(id)
	if !ok {
		return false
	}
	if ev.Type == domport.EventInput {
		e.SetValue(ev.Value)
	}
	e.dispatch(ctx, ev)
	return true
}

// DispatchTo is Dispatch for an element already in hand, e.g. one found through Query.
func DispatchTo(ctx context.Context, e *Element, ev domport.Event) {
	if ev.Type == domport.EventInput {
		e.SetValue(ev.Value)
	}
	e.dispatch(ctx, ev)
}
