package sessionize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"speaker-export/pkg/httpclient"
)

// Client fetches session and speaker data from the Sessionize API.
type Client struct {
	cfg  Config
	http *httpclient.HTTPClient
	log  zerolog.Logger
}

// NewClient creates a client for the given endpoints.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: httpclient.NewClient(httpclient.JSONClient),
		log:  log,
	}
}

// getJSON issues a GET request and decodes the JSON body into v. Every failure
// comes back as a *RequestError so callers can branch on the kind.
func (c *Client) getJSON(ctx context.Context, requestURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &RequestError{Kind: FailureRequest, URL: requestURL, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(requestURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(requestURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return unexpectedError(requestURL, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}
