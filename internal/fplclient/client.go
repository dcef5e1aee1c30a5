// Package fplclient fetches league data from the official FPL API and
// assembles the one snapshot the engine runs over. Authentication (the
// session cookie for the my-team endpoint) stays inside this package; the
// engine never sees credentials.
package fplclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the official FPL API root.
const DefaultBaseURL = "https://fantasy.premierleague.com/api"

// PayloadCache stores raw API payloads between runs so repeated invocations
// within the TTL do not hammer the API. The SQLite store in snapcache is the
// production implementation; a nil cache disables caching.
type PayloadCache interface {
	Get(key string, maxAge time.Duration) ([]byte, bool)
	Put(key string, payload []byte) error
}

// Client talks to the FPL API.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Cookie    string // session cookie for authenticated endpoints
	TeamID    int    // user's FPL team id; 0 means skip squad ownership
	Cache     PayloadCache
	CacheTTL  time.Duration
}

// NewClient returns a client with sane transport defaults.
func NewClient(baseURL string, teamID int, cookie string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTP:      &http.Client{Timeout: 20 * time.Second},
		BaseURL:   baseURL,
		UserAgent: "fplassist/1.0",
		Cookie:    cookie,
		TeamID:    teamID,
		CacheTTL:  time.Hour,
	}
}

// fetchRaw downloads urlPath (like "/bootstrap-static/") and returns the raw
// bytes, from cache when fresh. Authenticated requests are never cached:
// squad ownership should always reflect the live team.
func (c *Client) fetchRaw(ctx context.Context, urlPath string, authed bool) ([]byte, error) {
	cacheKey := urlPath
	if !authed && c.Cache != nil {
		if body, ok := c.Cache.Get(cacheKey, c.CacheTTL); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if authed {
		if c.Cookie == "" {
			return nil, fmt.Errorf("GET %s requires a session cookie", urlPath)
		}
		req.Header.Set("Cookie", c.Cookie)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, truncateBody(body))
	}

	if !authed && c.Cache != nil {
		if err := c.Cache.Put(cacheKey, body); err != nil {
			return nil, fmt.Errorf("failed to cache %s: %w", urlPath, err)
		}
	}
	return body, nil
}

func truncateBody(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
