package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Session holds an authenticated connection to a raster tile service.
// The zero value is unusable; use NewSession.
type Session struct {
	client  HTTPClient
	baseURL string
	project string
	token   string
	logger  *slog.Logger
}

// SessionOptions configures NewSession.
type SessionOptions struct {
	// Client performs HTTP requests. Nil selects a StandardClient with
	// default timeouts.
	Client HTTPClient
	// BaseURL is the service root, without a trailing slash.
	BaseURL string
	// Project scopes requests server-side.
	Project string
	// Logger receives request/auth events. Nil discards them.
	Logger *slog.Logger
}

// NewSession builds an unauthenticated session. Call Authenticate
// before issuing downloads.
func NewSession(opts SessionOptions) *Session {
	c := opts.Client
	if c == nil {
		c = NewStandardClient(nil)
	}
	lg := opts.Logger
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		client:  c,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		project: opts.Project,
		logger:  lg,
	}
}

// IsAuthenticated reports whether a bearer token is held.
func (s *Session) IsAuthenticated() bool { return s.token != "" }

// Authenticate exchanges an API key for a bearer token.
func (s *Session) Authenticate(ctx context.Context, apiKey string) error {
	body := strings.NewReader(url.Values{"key": {apiKey}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/token", body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrNotAuthenticated, resp.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("%w: decode token: %v", ErrNotAuthenticated, err)
	}
	if payload.Token == "" {
		return fmt.Errorf("%w: empty token", ErrNotAuthenticated)
	}
	s.token = payload.Token
	s.logger.Info("authenticated", "project", s.project)
	return nil
}

// get issues an authenticated GET and returns the response body.
// The caller closes the reader.
func (s *Session) get(ctx context.Context, path string, q url.Values) (io.ReadCloser, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	u := s.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if s.project != "" {
		req.Header.Set("X-Project", s.project)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrTileFetch, path, resp.StatusCode)
	}
	return resp.Body, nil
}
