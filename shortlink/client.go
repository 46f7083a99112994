// Package shortlink resolves opaque short-link tokens against the Maetry
// backend: it registers the click, classifies the link, and drives the
// booking/invite/not-found/error outcome the link page renders.
package shortlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Maetry/website/model"
)

// Client is the HTTP client for the backend's link endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend link client. baseURL carries no trailing slash.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RegisterClick registers a click for a token and returns the backend's
// classification of the link. This must happen before any link-specific
// fetch; the backend uses the registered click to attribute what follows.
func (c *Client) RegisterClick(ctx context.Context, nanoID string, click model.ClickRequest) (*model.MagicLink, error) {
	body, err := json.Marshal(click)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/clicks/%s", c.baseURL, url.PathEscape(nanoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var link model.MagicLink
	if err := c.do(req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// MarketingCampaignByLink fetches the campaign a marketing link points at.
func (c *Client) MarketingCampaignByLink(ctx context.Context, nanoID string) (*model.MarketingCampaign, error) {
	endpoint := fmt.Sprintf("%s/marketing/campaigns/by-link/%s", c.baseURL, url.PathEscape(nanoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var campaign model.MarketingCampaign
	if err := c.do(req, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// LinkByID fetches a link's metadata without registering a click.
func (c *Client) LinkByID(ctx context.Context, nanoID string) (*model.MagicLink, error) {
	endpoint := fmt.Sprintf("%s/api/links/%s", c.baseURL, url.PathEscape(nanoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var link model.MagicLink
	if err := c.do(req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// do executes a request and decodes the response into out, mapping non-2xx
// responses onto the typed error taxonomy.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := extractErrorMessage(data)
		if resp.StatusCode == http.StatusNotFound {
			return &NotFoundError{Message: message}
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	return json.Unmarshal(data, out)
}

// extractErrorMessage pulls message (or error) from an {error, message}
// body; empty when the body is not that shape.
func extractErrorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return parsed.Error
}
