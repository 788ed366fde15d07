package mapview

import (
	"context"

	"github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"
)

// View is a map instance whose style loads asynchronously.
type View interface {
	Camera() mapstyle.Camera

	// Loaded is closed once, when the style has finished loading.
	Loaded() <-chan struct{}
	// Failed is closed once, when the style could not be loaded. Err then holds the cause.
	Failed() <-chan struct{}
	Err() error

	// Style returns the current style document. It is only meaningful after Loaded.
	Style() mapstyle.Style

	AddSource(id string, src mapstyle.Source) error
	// AddLayer inserts l immediately before beforeID, or on top when beforeID is empty.
	AddLayer(l mapstyle.Layer, beforeID string) error
}

// Factory constructs map views.
type Factory interface {
	New(ctx context.Context, cam mapstyle.Camera) (View, error)
}

// StyleLoader fetches a style document.
type StyleLoader interface {
	LoadStyle(ctx context.Context, styleURL string) (mapstyle.Style, error)
}
