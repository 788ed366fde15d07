package mapinit

import "github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"

const (
	BuildingsSourceID  = "openfreemap"
	BuildingsSourceURL = "https://tiles.openfreemap.org/planet"
	BuildingsLayerID   = "3d-buildings"

	buildingsMinZoom = 15.5
)

// BuildingsSource is the vector tile source carrying OpenStreetMap building heights.
func BuildingsSource() mapstyle.Source {
	return mapstyle.Source{Type: "vector", URL: BuildingsSourceURL}
}

// BuildingsLayer extrudes buildings by their render_height. Height and base grow linearly
// from 0 at zoom 15 to the feature's value at zoom 16; features flagged hide_3d are skipped.
func BuildingsLayer() mapstyle.Layer {
	minZoom := buildingsMinZoom
	return mapstyle.Layer{
		ID:          BuildingsLayerID,
		Type:        mapstyle.LayerTypeFillExtrusion,
		Source:      BuildingsSourceID,
		SourceLayer: "building",
		MinZoom:     &minZoom,
		Filter:      mapstyle.Expression{"!=", []any{"get", "hide_3d"}, true},
		Paint: map[string]any{
			"fill-extrusion-color": mapstyle.Expression{
				"interpolate", []any{"linear"}, []any{"get", "render_height"},
				0, "lightgray",
				200, "royalblue",
				400, "lightblue",
			},
			"fill-extrusion-height": zoomRamp("render_height"),
			"fill-extrusion-base":   zoomRamp("render_min_height"),
		},
	}
}

func zoomRamp(property string) mapstyle.Expression {
	return mapstyle.Expression{
		"interpolate", []any{"linear"}, []any{"zoom"},
		15, 0,
		16, []any{"get", property},
	}
}
