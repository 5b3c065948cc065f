package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jira-notifier/pkg/cache"
)

// Cache TTLs per endpoint. Issue detail changes rarely within one event
// burst; transitions can change with every status move.
const (
	issueDetailTTL = 30 * time.Second
	transitionsTTL = 5 * time.Second
)

// Client is the HTTP wrapper for the Jira REST API.
type Client struct {
	baseURL    string
	username   string
	apiToken   string
	vcsType    string
	httpClient *http.Client
	cache      cache.Cache
}

var _ API = (*Client)(nil)

// NewClient creates a new Jira client. cache may be nil, in which case every
// call goes to the API — caching is opt-in per client.
func NewClient(baseURL, username, apiToken, vcsType string, c cache.Cache) *Client {
	return &Client{
		baseURL:    baseURL,
		username:   username,
		apiToken:   apiToken,
		vcsType:    vcsType,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      c,
	}
}

// GetIssue fetches issue detail by id or key via GET /rest/api/2/issue/<id>.
func (c *Client) GetIssue(ctx context.Context, idOrKey string) (*Issue, error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s", c.baseURL, idOrKey)

	var issue Issue
	if err := c.getJSON(ctx, url, issueDetailTTL, &issue); err != nil {
		return nil, fmt.Errorf("failed to fetch issue %s: %w", idOrKey, err)
	}
	return &issue, nil
}

// GetTransitions fetches the available transitions for an issue.
func (c *Client) GetTransitions(ctx context.Context, idOrKey string) (*Transitions, error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s/transitions", c.baseURL, idOrKey)

	var transitions Transitions
	if err := c.getJSON(ctx, url, transitionsTTL, &transitions); err != nil {
		return nil, fmt.Errorf("failed to fetch transitions for %s: %w", idOrKey, err)
	}
	return &transitions, nil
}

// GetIssueRepos returns the repositories linked to an issue through the
// dev-status integration. Not cached: linkage changes with every push.
func (c *Client) GetIssueRepos(ctx context.Context, issueID string) ([]string, error) {
	url := fmt.Sprintf(
		"%s/rest/dev-status/latest/issue/detail?issueId=%s&applicationType=%s&dataType=repository",
		c.baseURL, issueID, c.vcsType,
	)

	var detail devStatusResponse
	if err := c.fetchJSON(ctx, url, &detail); err != nil {
		return nil, fmt.Errorf("failed to fetch linked repos for issue %s: %w", issueID, err)
	}

	repos := make([]string, 0)
	for _, d := range detail.Detail {
		for _, r := range d.Repositories {
			repos = append(repos, r.Name)
		}
	}
	return repos, nil
}

// getJSON fetches url into out, reusing the cached body when present.
func (c *Client) getJSON(ctx context.Context, url string, ttl time.Duration, out any) error {
	if c.cache != nil {
		if cached, found := c.cache.Get(url); found {
			if raw, ok := cached.([]byte); ok {
				return json.Unmarshal(raw, out)
			}
		}
	}

	raw, err := c.fetchRaw(ctx, url)
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(url, raw, ttl)
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) fetchJSON(ctx context.Context, url string, out any) error {
	raw, err := c.fetchRaw(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) fetchRaw(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build jira request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.username, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call jira API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read jira response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jira API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
