// Package fetch retrieves the backing user batch over HTTP and
// coordinates the lifecycle of the single fetch attempt a view performs.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rshade/roster/internal/engine"
)

const (
	// DefaultBaseURL is the public randomuser.me endpoint.
	DefaultBaseURL = "https://randomuser.me/api/"

	// DefaultResults is the batch size requested per fetch.
	DefaultResults = 40

	// includeFields keeps the payload down to the fields the table uses.
	includeFields = "gender,name,email,dob"
)

// Sentinel errors for the fetch taxonomy. Transport errors pass through
// wrapped; context cancellation is detectable via errors.Is on
// context.Canceled and is never reported as a failure by the Coordinator.
var (
	ErrBadStatus        = errors.New("unexpected response status")
	ErrMalformedPayload = errors.New("malformed user payload")
)

// usersEnvelope is the randomuser.me response shape.
type usersEnvelope struct {
	Results []engine.Record `json:"results"`
}

// Client retrieves user batches over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Client against baseURL (DefaultBaseURL when empty).
// The request lifetime is bounded only by the caller's context, so no
// client-level timeout is set.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Users performs the one-shot retrieval of count records. Failures are
// transport errors, non-2xx statuses (ErrBadStatus), or undecodable bodies
// (ErrMalformedPayload); a cancelled ctx surfaces as a wrapped
// context.Canceled instead.
func (c *Client) Users(ctx context.Context, count int) ([]engine.Record, error) {
	if count <= 0 {
		count = DefaultResults
	}

	url := fmt.Sprintf("%s?results=%d&inc=%s", c.baseURL, count, includeFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building user request: %w", err)
	}

	c.logger.Debug().
		Str("operation", "fetch_users").
		Str("url", url).
		Int("count", count).
		Msg("requesting user batch")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	var envelope usersEnvelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, decodeErr)
	}

	c.logger.Debug().
		Str("operation", "fetch_users").
		Int("records", len(envelope.Results)).
		Msg("user batch received")

	return envelope.Results, nil
}
