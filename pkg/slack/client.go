package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the Slack Web API client. Only the two message endpoints the
// notifier needs are wrapped.
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Slack client with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		apiURL:     "https://slack.com/api",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// PostMessage posts a new message to a channel and returns the message
// timestamp Slack assigned, which addresses the message for later updates.
func (c *Client) PostMessage(ctx context.Context, channel, text string) (string, error) {
	resp, err := c.call(ctx, "chat.postMessage", postMessageRequest{
		Channel: channel,
		Text:    text,
	})
	if err != nil {
		return "", err
	}
	return resp.TS, nil
}

// UpdateMessage replaces the text of a previously posted message in place.
func (c *Client) UpdateMessage(ctx context.Context, channel, ts, text string) error {
	_, err := c.call(ctx, "chat.update", updateMessageRequest{
		Channel: channel,
		TS:      ts,
		Text:    text,
	})
	return err
}

func (c *Client) call(ctx context.Context, method string, payload any) (*apiResponse, error) {
	url := fmt.Sprintf("%s/%s", c.apiURL, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call slack %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode slack %s response: %w", method, err)
	}
	if !apiResp.OK {
		return nil, fmt.Errorf("slack %s failed: %s", method, apiResp.Error)
	}
	return &apiResp, nil
}
