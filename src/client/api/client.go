// Package api provides the GitHub REST API client used by the CLI
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apimgr/ghuser/src/common/version"
)

// DefaultBaseURL is the public GitHub REST API endpoint
const DefaultBaseURL = "https://api.github.com"

// apiVersion is sent as X-GitHub-Api-Version
const apiVersion = "2022-11-28"

// Client is the API client for the GitHub REST API.
// Token and Username are read once at startup and never change.
type Client struct {
	BaseURL    string
	Token      string
	Username   string
	HTTPClient *http.Client
}

// NewClient creates a new API client. A zero timeout leaves the
// http.Client default (no timeout).
func NewClient(baseURL, token, username string, timeout int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Token:    token,
		Username: username,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// SearchUsers searches accounts matching query. Only the first page
// of results is fetched.
func (c *Client) SearchUsers(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var result SearchResult
	if err := c.get(ctx, "search users", "/search/users?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// User fetches the full profile for login
func (c *Client) User(ctx context.Context, login string) (*UserProfile, error) {
	if login == "" {
		return nil, &Error{Op: "get user", Err: ErrEmptyLogin}
	}

	var profile UserProfile
	if err := c.get(ctx, "get user", "/users/"+url.PathEscape(login), &profile); err != nil {
		return nil, err
	}
	if profile.Login == "" {
		return nil, &Error{Op: "get user", Err: fmt.Errorf("%w: missing login", ErrInvalidResponse)}
	}
	return &profile, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
// Every failure is returned as *Error.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("github request failed", "op", op, "path", path, "error", err)
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("github request",
		"op", op,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"rate_remaining", resp.Header.Get("X-RateLimit-Remaining"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, Err: newStatusError(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", version.Get().UserAgent(c.Username))
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}
