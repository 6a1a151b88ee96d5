package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"estimate-booking-backend/config"
)

// Client is the read/write interface to the booking calendar. Listing is the
// availability engine's only input; creating is the booking command's only
// side effect.
type Client interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error)
	CreateEvent(ctx context.Context, event Event) error
}

// httpClient talks to a Google-Calendar-shaped events API over HTTP.
type httpClient struct {
	cfg    *config.CalendarConfig
	client *http.Client
}

// NewClient creates a calendar client from configuration.
func NewClient(cfg *config.CalendarConfig) Client {
	return &httpClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ListEvents fetches all events in [timeMin, timeMax), expanded to single
// instances, ordered by start time.
func (c *httpClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	query := url.Values{}
	query.Set("timeMin", timeMin.Format(time.RFC3339))
	query.Set("timeMax", timeMax.Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var listResp listResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events response: %w", err)
	}

	return listResp.Items, nil
}

// CreateEvent inserts one event into the configured calendar. It is issued
// exactly once per booking attempt; retrying on failure is the caller's call.
func (c *httpClient) CreateEvent(ctx context.Context, event Event) error {
	jsonBody, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events",
		c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	return nil
}

func (c *httpClient) authorize(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}
