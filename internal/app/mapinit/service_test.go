package mapinit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	memmapview "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/mapview"
	"github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"
	mapviewport "github.com/campus-parkfinder/parkfinder/internal/ports/out/mapview"
)

func brightLikeStyle() mapstyle.Style {
	return mapstyle.Style{
		Version: 8,
		Sources: map[string]mapstyle.Source{"openmaptiles": {Type: "vector", URL: "https://tiles.openfreemap.org/planet"}},
		Layers: []mapstyle.Layer{
			{ID: "background", Type: "background"},
			{ID: "landuse", Type: "fill", Source: "openmaptiles"},
			{ID: "building", Type: "fill", Source: "openmaptiles"},
			{ID: "poi-dot", Type: mapstyle.LayerTypeSymbol, Layout: map[string]any{"icon-image": "dot"}},
			{ID: "road-label", Type: mapstyle.LayerTypeSymbol, Layout: map[string]any{"text-field": "{name}"}},
			{ID: "place-label", Type: mapstyle.LayerTypeSymbol, Layout: map[string]any{"text-field": "{name}"}},
		},
	}
}

func quietService(f mapviewport.Factory) *Service {
	s := NewService(f, DefaultCamera())
	s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return s
}

func TestService_Bootstrap_InsertsBeforeFirstLabel(t *testing.T) {
	t.Parallel()

	svc := quietService(memmapview.NewFactory(memmapview.StaticLoader{Style: brightLikeStyle()}))
	view, err := svc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap err=%v", err)
	}

	layers := view.Style().Layers
	at := mapstyle.IndexOf(layers, BuildingsLayerID)
	label := mapstyle.IndexOf(layers, "road-label")
	if at < 0 || at >= label {
		t.Fatalf("buildings at %d, first label at %d; want strictly before", at, label)
	}
	if at != label-1 {
		t.Fatalf("buildings at %d, want immediately before label at %d", at, label)
	}
	if _, ok := view.Style().Sources[BuildingsSourceID]; !ok {
		t.Fatalf("source %q not added", BuildingsSourceID)
	}
	if got := view.Camera(); got.Zoom != 15.5 || got.Pitch != 45 || got.Bearing != -17.6 {
		t.Fatalf("camera=%+v", got)
	}
}

func TestService_Bootstrap_NoLabelsAppends(t *testing.T) {
	t.Parallel()

	style := mapstyle.Style{Layers: []mapstyle.Layer{{ID: "background", Type: "background"}}}
	svc := quietService(memmapview.NewFactory(memmapview.StaticLoader{Style: style}))
	view, err := svc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap err=%v", err)
	}
	layers := view.Style().Layers
	if layers[len(layers)-1].ID != BuildingsLayerID {
		t.Fatalf("top layer=%q, want %q", layers[len(layers)-1].ID, BuildingsLayerID)
	}
}

type neverLoads struct{}

func (neverLoads) New(_ context.Context, cam mapstyle.Camera) (mapviewport.View, error) {
	return memmapview.NewView(cam), nil
}

func TestService_Bootstrap_WaitsForLoadUntilContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	view, err := quietService(neverLoads{}).Bootstrap(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v, want deadline exceeded", err)
	}
	if view == nil {
		t.Fatalf("expected the unloaded view to be returned")
	}
}

type failingLoader struct{ err error }

func (l failingLoader) LoadStyle(context.Context, string) (mapstyle.Style, error) {
	return mapstyle.Style{}, l.err
}

func TestService_Bootstrap_ReturnsStyleLoadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("style 404")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := quietService(memmapview.NewFactory(failingLoader{err: boom})).Bootstrap(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("elapsed=%s, want the failure reported without waiting for the deadline", elapsed)
	}
}

func TestService_Bootstrap_SecondInsertFails(t *testing.T) {
	t.Parallel()

	view := memmapview.NewView(DefaultCamera())
	view.Load(brightLikeStyle())
	if _, err := AddBuildings(view); err != nil {
		t.Fatalf("AddBuildings err=%v", err)
	}
	if _, err := AddBuildings(view); !errors.Is(err, mapstyle.ErrSourceExists) {
		t.Fatalf("err=%v, want ErrSourceExists", err)
	}
}

func TestBuildingsLayer(t *testing.T) {
	t.Parallel()

	l := BuildingsLayer()
	if l.Type != mapstyle.LayerTypeFillExtrusion || l.SourceLayer != "building" || *l.MinZoom != 15.5 {
		t.Fatalf("layer=%+v", l)
	}
	if l.Filter[0] != "!=" {
		t.Fatalf("filter=%v", l.Filter)
	}
	for _, key := range []string{"fill-extrusion-color", "fill-extrusion-height", "fill-extrusion-base"} {
		if _, ok := l.Paint[key]; !ok {
			t.Fatalf("paint missing %s", key)
		}
	}
}
