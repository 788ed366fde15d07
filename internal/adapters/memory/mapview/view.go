package mapview

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"
	mapviewport "github.com/campus-parkfinder/parkfinder/internal/ports/out/mapview"
)

// ErrStyleNotLoaded is returned when sources or layers are added before the style loads.
var ErrStyleNotLoaded = errors.New("style is not loaded")

// View is an in-memory mapview.View: a camera plus a style document whose layer stack can
// be inspected. It is safe for concurrent use.
type View struct {
	mu sync.RWMutex

	camera mapstyle.Camera
	style  mapstyle.Style

	loaded   chan struct{}
	failed   chan struct{}
	loadOnce sync.Once
	err      error
}

func NewView(cam mapstyle.Camera) *View {
	return &View{
		camera: cam,
		loaded: make(chan struct{}),
		failed: make(chan struct{}),
	}
}

// Load installs the style and fires the loaded signal. Only the first Load or Fail has an
// effect.
func (v *View) Load(style mapstyle.Style) {
	v.loadOnce.Do(func() {
		v.mu.Lock()
		v.style = cloneStyle(style)
		if v.style.Sources == nil {
			v.style.Sources = make(map[string]mapstyle.Source)
		}
		v.mu.Unlock()
		close(v.loaded)
	})
}

// Err is the error that kept the style from loading, if any. A failed view signals
// Failed and never Loaded.
func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Fail records err and fires the failed signal. It has no effect once the view has
// loaded or failed.
func (v *View) Fail(err error) {
	v.loadOnce.Do(func() {
		v.mu.Lock()
		v.err = err
		v.mu.Unlock()
		close(v.failed)
	})
}

func (v *View) Camera() mapstyle.Camera { return v.camera }

func (v *View) Loaded() <-chan struct{} { return v.loaded }

func (v *View) Failed() <-chan struct{} { return v.failed }

func (v *View) Style() mapstyle.Style {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneStyle(v.style)
}

func (v *View) isLoaded() bool {
	select {
	case <-v.loaded:
		return true
	default:
		return false
	}
}

func (v *View) AddSource(id string, src mapstyle.Source) error {
	if !v.isLoaded() {
		return ErrStyleNotLoaded
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.style.Sources[id]; ok {
		return fmt.Errorf("%w: %q", mapstyle.ErrSourceExists, id)
	}
	v.style.Sources[id] = src
	return nil
}

func (v *View) AddLayer(l mapstyle.Layer, beforeID string) error {
	if !v.isLoaded() {
		return ErrStyleNotLoaded
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if l.Source != "" {
		if _, ok := v.style.Sources[l.Source]; !ok {
			return fmt.Errorf("%w: %q", mapstyle.ErrSourceNotFound, l.Source)
		}
	}
	layers, err := mapstyle.InsertBefore(v.style.Layers, l, beforeID)
	if err != nil {
		return err
	}
	v.style.Layers = layers
	return nil
}

// LayerIDs lists the stack bottom to top.
func (v *View) LayerIDs() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, 0, len(v.style.Layers))
	for _, l := range v.style.Layers {
		out = append(out, l.ID)
	}
	return out
}

func cloneStyle(s mapstyle.Style) mapstyle.Style {
	out := s
	out.Sources = maps.Clone(s.Sources)
	out.Layers = slices.Clone(s.Layers)
	return out
}

// Factory opens Views whose style is fetched in the background by a StyleLoader.
type Factory struct {
	loader mapviewport.StyleLoader
}

func NewFactory(loader mapviewport.StyleLoader) *Factory {
	return &Factory{loader: loader}
}

func (f *Factory) New(ctx context.Context, cam mapstyle.Camera) (mapviewport.View, error) {
	if cam.StyleURL == "" {
		return nil, errors.New("camera has no style URL")
	}
	v := NewView(cam)
	go func() {
		style, err := f.loader.LoadStyle(ctx, cam.StyleURL)
		if err != nil {
			v.Fail(err)
			return
		}
		v.Load(style)
	}()
	return v, nil
}

// StaticLoader serves one fixed style regardless of URL.
type StaticLoader struct {
	Style mapstyle.Style
}

func (l StaticLoader) LoadStyle(ctx context.Context, styleURL string) (mapstyle.Style, error) {
	_ = styleURL
	if err := ctx.Err(); err != nil {
		return mapstyle.Style{}, err
	}
	return cloneStyle(l.Style), nil
}
