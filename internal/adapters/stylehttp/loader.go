// Package stylehttp fetches map style documents over HTTP.
package stylehttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/campus-parkfinder/parkfinder/internal/domain/mapstyle"
)

const maxStyleBytes = 8 << 20

// Loader implements mapview.StyleLoader.
type Loader struct {
	httpClient *http.Client
	userAgent  string
}

type Option func(*Loader)

func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.httpClient = c }
}

func WithUserAgent(ua string) Option {
	return func(l *Loader) { l.userAgent = ua }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  "parkfinder/1.0",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) LoadStyle(ctx context.Context, styleURL string) (mapstyle.Style, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, styleURL, nil)
	if err != nil {
		return mapstyle.Style{}, fmt.Errorf("build style request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return mapstyle.Style{}, fmt.Errorf("fetch style: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxStyleBytes))
	if err != nil {
		return mapstyle.Style{}, fmt.Errorf("read style: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return mapstyle.Style{}, fmt.Errorf("fetch style: unexpected status %d", resp.StatusCode)
	}

	var style mapstyle.Style
	if err := json.Unmarshal(body, &style); err != nil {
		return mapstyle.Style{}, fmt.Errorf("decode style: %w", err)
	}
	if style.Sources == nil {
		style.Sources = make(map[string]mapstyle.Source)
	}
	return style, nil
}
