package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"
)

// DefaultBaseURL is where the backend listens in local development.
const DefaultBaseURL = "http://localhost:5000"

// ClientConfig configures the CLI's backend client and map camera.
type ClientConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration

	// SessionCookie is an existing backend session, e.g. copied from a browser. Empty
	// means anonymous until a login happens.
	SessionCookie string

	Camera mapstyle.Camera
}

// LoadClientConfigFromEnv reads PARKFINDER_* variables on top of defaults. camera is the
// default framing; each PARKFINDER_MAP_* variable overrides one field of it.
func LoadClientConfigFromEnv(camera mapstyle.Camera) (ClientConfig, error) {
	cfg := ClientConfig{
		BaseURL:       DefaultBaseURL,
		HTTPTimeout:   10 * time.Second,
		SessionCookie: os.Getenv("PARKFINDER_SESSION_COOKIE"),
		Camera:        camera,
	}

	if v := strings.TrimSpace(os.Getenv("PARKFINDER_BASE_URL")); v != "" {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return ClientConfig{}, fmt.Errorf("PARKFINDER_BASE_URL must start with http:// or https://, got %q", v)
		}
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("PARKFINDER_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("PARKFINDER_HTTP_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		if d <= 0 {
			return ClientConfig{}, fmt.Errorf("PARKFINDER_HTTP_TIMEOUT must be positive, got %s", d)
		}
		cfg.HTTPTimeout = d
	}

	if v := strings.TrimSpace(os.Getenv("PARKFINDER_MAP_STYLE_URL")); v != "" {
		cfg.Camera.StyleURL = v
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"PARKFINDER_MAP_ZOOM", &cfg.Camera.Zoom},
		{"PARKFINDER_MAP_PITCH", &cfg.Camera.Pitch},
		{"PARKFINDER_MAP_BEARING", &cfg.Camera.Bearing},
	} {
		v := os.Getenv(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("%s must be a number: %w", f.name, err)
		}
		*f.dst = n
	}
	if v := os.Getenv("PARKFINDER_MAP_CENTER"); v != "" {
		c, err := parseLngLat(v)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("PARKFINDER_MAP_CENTER must be \"lng,lat\": %w", err)
		}
		cfg.Camera.Center = c
	}

	return cfg, nil
}

func parseLngLat(s string) (mapstyle.LngLat, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mapstyle.LngLat{}, fmt.Errorf("want two comma-separated numbers, got %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return mapstyle.LngLat{}, err
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mapstyle.LngLat{}, err
	}
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return mapstyle.LngLat{}, fmt.Errorf("coordinates out of range: %g,%g", lng, lat)
	}
	return mapstyle.LngLat{lng, lat}, nil
}
