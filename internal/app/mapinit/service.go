// Package mapinit bootstraps the campus map: it opens a view with the fixed camera and,
// once the base style has loaded, slides a 3D building layer under the labels.
package mapinit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/mapview"
)

// DefaultCamera frames the Minneapolis campus.
func DefaultCamera() mapstyle.Camera {
	return mapstyle.Camera{
		StyleURL:  "https://tiles.openfreemap.org/styles/bright",
		Center:    mapstyle.LngLat{-93.23299752640466, 44.970787925016175},
		Zoom:      15.5,
		Pitch:     45,
		Bearing:   -17.6,
		Antialias: true,
	}
}

type Service struct {
	factory mapview.Factory
	camera  mapstyle.Camera

	Logger *slog.Logger
}

func NewService(factory mapview.Factory, camera mapstyle.Camera) *Service {
	return &Service{
		factory: factory,
		camera:  camera,
		Logger:  slog.Default(),
	}
}

// Bootstrap opens the map and inserts the building layer after the style loads.
// It blocks until the style settles or ctx is done. A style that fails to load is
// returned as an error wrapping the loader's; nothing is retried.
func (s *Service) Bootstrap(ctx context.Context) (mapview.View, error) {
	view, err := s.factory.New(ctx, s.camera)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}

	select {
	case <-view.Loaded():
	case <-view.Failed():
		return view, fmt.Errorf("load map style: %w", view.Err())
	case <-ctx.Done():
		return view, fmt.Errorf("wait for map style: %w", ctx.Err())
	}

	beforeID, err := AddBuildings(view)
	if err != nil {
		return view, err
	}
	s.Logger.Info("map_event", "event", "buildings_added", "before", beforeID)
	return view, nil
}

// AddBuildings inserts the building layer beneath the first label layer of the loaded
// style, or on top when the style has no labels.
// It returns the id of the layer the buildings were placed under ("" for on top).
func AddBuildings(view mapview.View) (string, error) {
	beforeID, _ := mapstyle.FirstLabelLayerID(view.Style().Layers)

	if err := view.AddSource(BuildingsSourceID, BuildingsSource()); err != nil {
		return "", fmt.Errorf("add source %s: %w", BuildingsSourceID, err)
	}
	if err := view.AddLayer(BuildingsLayer(), beforeID); err != nil {
		return "", fmt.Errorf("add layer %s: %w", BuildingsLayerID, err)
	}
	return beforeID, nil
}
