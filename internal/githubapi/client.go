// Package githubapi provides a caller for the GitHub REST API, fetching
// repository metadata and traffic statistics. It handles token
// authentication when a token is configured.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

const requestTimeout = 30 * time.Second

// Client calls the GitHub REST API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	now     func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithClock overrides the fetch-time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a GitHub API client. The token may be empty, in which
// case requests are unauthenticated (traffic endpoints will reject them, but
// metadata still works for public repositories).
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpc:   &http.Client{Timeout: requestTimeout},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSnapshot polls repository metadata plus clone and view traffic for
// one repository and packages the result as a raw snapshot. The snapshot's
// fetch time is taken once, when the poll starts.
func (c *Client) FetchSnapshot(ctx context.Context, repo string) (*schema.Snapshot, error) {
	fetchTime := float64(c.now().UnixNano()) / float64(time.Second)

	var meta repoResponse
	if err := c.get(ctx, fmt.Sprintf("/repos/%s", repo), &meta); err != nil {
		return nil, fmt.Errorf("fetch metadata for %s: %w", repo, err)
	}

	var clones clonesResponse
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/traffic/clones", repo), &clones); err != nil {
		return nil, fmt.Errorf("fetch clone traffic for %s: %w", repo, err)
	}

	var views viewsResponse
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/traffic/views", repo), &views); err != nil {
		return nil, fmt.Errorf("fetch view traffic for %s: %w", repo, err)
	}

	return &schema.Snapshot{
		Time:     fetchTime,
		Repo:     repo,
		Stars:    meta.StargazersCount,
		Watchers: meta.SubscribersCount,
		Forks:    meta.ForksCount,
		Clones: schema.TrafficWindow{
			Count:   clones.Count,
			Uniques: clones.Uniques,
			Daily:   toDaily(clones.Clones),
		},
		Views: schema.TrafficWindow{
			Count:   views.Count,
			Uniques: views.Uniques,
			Daily:   toDaily(views.Views),
		},
	}, nil
}

// toDaily converts API traffic entries to raw daily records, keeping only
// the date part of each timestamp.
func toDaily(entries []trafficEntry) []schema.TrafficDay {
	daily := make([]schema.TrafficDay, len(entries))
	for i, entry := range entries {
		date := entry.Timestamp
		if len(date) > len(schema.DayFormat) {
			date = date[:len(schema.DayFormat)]
		}
		daily[i] = schema.TrafficDay{Date: date, Count: entry.Count, Uniques: entry.Uniques}
	}
	return daily
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s", c.token))
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0" {
		return fmt.Errorf("rate limit exhausted, resets at %s", resp.Header.Get("X-RateLimit-Reset"))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
