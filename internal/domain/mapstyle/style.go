// Package mapstyle models the parts of a MapLibre style document the page touches:
// sources, the ordered layer stack, and JSON expressions.
package mapstyle

import (
	"errors"
	"fmt"
)

// LayerType values used by the page.
const (
	LayerTypeSymbol        = "symbol"
	LayerTypeFillExtrusion = "fill-extrusion"
)

var (
	// ErrLayerExists indicates a layer with the same id is already in the stack.
	ErrLayerExists = errors.New("layer already exists")

	// ErrLayerNotFound indicates the requested before-layer is not in the stack.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrSourceExists indicates a source with the same id is already registered.
	ErrSourceExists = errors.New("source already exists")

	// ErrSourceNotFound indicates a layer references an unregistered source.
	ErrSourceNotFound = errors.New("source not found")
)

// Expression is a style expression in its JSON array form, e.g. ["get", "render_height"].
type Expression []any

// Source is a style source entry.
type Source struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Layer is a style layer. Layout and Paint keep the raw property values.
type Layer struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Source      string         `json:"source,omitempty"`
	SourceLayer string         `json:"source-layer,omitempty"`
	MinZoom     *float64       `json:"minzoom,omitempty"`
	Filter      Expression     `json:"filter,omitempty"`
	Layout      map[string]any `json:"layout,omitempty"`
	Paint       map[string]any `json:"paint,omitempty"`
}

// IsLabel reports whether the layer is a symbol layer that renders text.
func (l Layer) IsLabel() bool {
	if l.Type != LayerTypeSymbol {
		return false
	}
	v, ok := l.Layout["text-field"]
	return ok && v != nil && v != ""
}

// Style is a style document.
type Style struct {
	Version int               `json:"version"`
	Name    string            `json:"name,omitempty"`
	Sources map[string]Source `json:"sources"`
	Layers  []Layer           `json:"layers"`
}

// FirstLabelLayerID returns the id of the first label layer in stack order.
func FirstLabelLayerID(layers []Layer) (string, bool) {
	for _, l := range layers {
		if l.IsLabel() {
			return l.ID, true
		}
	}
	return "", false
}

// IndexOf returns the stack position of the layer with the given id, or -1.
func IndexOf(layers []Layer, id string) int {
	for i, l := range layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// InsertBefore returns a new stack with layer placed immediately before beforeID.
// An empty beforeID appends the layer on top of the stack.
func InsertBefore(layers []Layer, layer Layer, beforeID string) ([]Layer, error) {
	if IndexOf(layers, layer.ID) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrLayerExists, layer.ID)
	}
	out := make([]Layer, 0, len(layers)+1)
	if beforeID == "" {
		out = append(out, layers...)
		return append(out, layer), nil
	}
	at := IndexOf(layers, beforeID)
	if at < 0 {
		return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, beforeID)
	}
	out = append(out, layers[:at]...)
	out = append(out, layer)
	return append(out, layers[at:]...), nil
}
