// Package httpclient implements backend.Client over the parking backend's REST API.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"

	"github.com/campus-parkfinder/parkfinder/internal/adapters/apiwire"
	"github.com/campus-parkfinder/parkfinder/internal/ports/out/backend"
)

const (
	pathCurrentUser   = "/api/current-user"
	pathUpdateProfile = "/api/update-profile"
	pathSpots         = "/api/parking-spots"
	pathSpotsFilter   = "/api/parking-spots/filter"

	// RequestIDHeader carries a fresh id per request so backend logs can be correlated.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 4 << 20
)

// Client talks to the backend with a cookie jar holding the login session.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration

	sessionCookie *http.Cookie
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient bases requests on a copy of c, so the caller's client is never changed.
// A copy without a jar gets a fresh one; a jar already set is shared.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c == nil {
			return
		}
		cp := *c
		cl.httpClient = &cp
	}
}

func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithTimeout bounds each request. It applies whichever client the other options chose.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

// WithSessionCookie seeds the jar with an existing login session, e.g. one copied from a
// browser.
func WithSessionCookie(name, value string) Option {
	return func(cl *Client) {
		if name == "" || value == "" {
			return
		}
		cl.sessionCookie = &http.Cookie{Name: name, Value: value, Path: "/"}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend base URL must be http or https, got %q", u.Scheme)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		userAgent:  "parkfinder/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}
	if c.sessionCookie != nil {
		c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{c.sessionCookie})
	}
	return c, nil
}

// URL resolves a backend path, e.g. backend.LoginPath, to an absolute URL.
func (c *Client) URL(path string) string {
	return c.baseURL.ResolveReference(&url.URL{Path: path}).String()
}

func (c *Client) CurrentUser(ctx context.Context) (backend.CurrentUser, error) {
	var body apiwire.CurrentUserResponse
	if err := c.do(ctx, http.MethodGet, pathCurrentUser, "", nil, &body); err != nil {
		return backend.CurrentUser{}, err
	}
	out := backend.CurrentUser{Authenticated: body.Authenticated}
	if body.User != nil {
		u := apiwire.UserToDomain(*body.User)
		out.User = &u
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in backend.ProfileUpdate) (backend.Result, error) {
	req := apiwire.UpdateProfileRequest{
		Major:                 in.Major,
		GradeLevel:            in.GradeLevel,
		GraduationYear:        nullable.NewNullNullable[int](),
		HousingType:           in.HousingType,
		PreferredParkingTypes: in.PreferredParkingTypes,
	}
	if in.GraduationYear != nil {
		req.GraduationYear = nullable.NewNullableWithValue(*in.GraduationYear)
	}

	var body apiwire.StatusResponse
	if err := c.do(ctx, http.MethodPost, pathUpdateProfile, "", req, &body); err != nil {
		return backend.Result{}, err
	}
	out := backend.Result{Status: body.Status, Message: body.Message}
	if body.User != nil {
		u := apiwire.UserToDomain(*body.User)
		out.User = &u
	}
	return out, nil
}

func (c *Client) FilterSpots(ctx context.Context, f backend.SpotFilter) (backend.SpotPage, error) {
	q, err := f.Query()
	if err != nil {
		return backend.SpotPage{}, err
	}
	return c.spots(ctx, pathSpotsFilter, q)
}

func (c *Client) ListSpots(ctx context.Context) (backend.SpotPage, error) {
	return c.spots(ctx, pathSpots, "")
}

func (c *Client) spots(ctx context.Context, path, rawQuery string) (backend.SpotPage, error) {
	var body apiwire.SpotsResponse
	if err := c.do(ctx, http.MethodGet, path, rawQuery, nil, &body); err != nil {
		return backend.SpotPage{}, err
	}
	return backend.SpotPage{
		Status:  body.Status,
		Message: body.Message,
		Count:   body.Count,
		Spots:   apiwire.SpotsToDomain(body.Data),
	}, nil
}

// do sends one request and decodes the JSON answer into out. Like the page it serves, it
// reads the envelope whatever the HTTP status; only a body that is not JSON is an error.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, in, out any) error {
	u := c.baseURL.ResolveReference(&url.URL{Path: path, RawQuery: rawQuery})

	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &backend.StatusError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 256)}
		}
		return fmt.Errorf("%w: %s %s: %v", backend.ErrDecode, method, path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
