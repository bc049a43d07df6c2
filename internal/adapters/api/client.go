package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	userAgent      = "stats-service/0.1"
)

// APIError is a non-2xx response from the GitHub API.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api: %s returned %s", e.URL, e.Status)
}

// GitHubClient is a client for the GitHub REST API
type GitHubClient struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

// NewGitHubClient creates a new instance of GitHubClient with a timeout.
// An empty token means unauthenticated, rate-limited access.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
		Token:      token,
	}
}

// get issues a single GET request against a relative endpoint path and
// decodes the JSON body into out. Non-2xx statuses become an *APIError.
// One attempt per call, no retries.
func (c *GitHubClient) get(ctx context.Context, path string, out interface{}) error {
	endpoint := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, URL: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Account fetches a user profile by username.
func (c *GitHubClient) Account(ctx context.Context, username string) (*entities.Account, error) {
	var raw rawUser
	if err := c.get(ctx, fmt.Sprintf("/users/%s", url.PathEscape(username)), &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return normalizeAccount(raw), nil
}

// Events fetches the most recent public events for a user.
func (c *GitHubClient) Events(ctx context.Context, username string, perPage int) ([]entities.Event, error) {
	var raw []rawEvent
	path := fmt.Sprintf("/users/%s/events?per_page=%d", url.PathEscape(username), perPage)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return normalizeEvents(raw), nil
}

// Repositories fetches a user's repositories, most recently updated first.
func (c *GitHubClient) Repositories(ctx context.Context, username string, perPage int) ([]entities.Repository, error) {
	var raw []rawRepository
	path := fmt.Sprintf("/users/%s/repos?per_page=%d&sort=updated", url.PathEscape(username), perPage)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}
	return normalizeRepositories(raw), nil
}

// RepositoryLanguages fetches the byte-count language breakdown of one
// repository. The lookup is tolerant: any failure degrades to an empty map.
func (c *GitHubClient) RepositoryLanguages(ctx context.Context, owner, repo string) map[string]int {
	breakdown := make(map[string]int)
	path := fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.get(ctx, path, &breakdown); err != nil {
		return map[string]int{}
	}
	return breakdown
}
