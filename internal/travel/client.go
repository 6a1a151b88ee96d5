package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"

	"estimate-booking-backend/config"
)

// Estimate is a drive duration between two addresses. Degraded marks results
// where the upstream could not answer and the configured default was
// substituted; callers treat both the same, but tests and the degradation
// log can tell them apart.
type Estimate struct {
	Minutes  int
	Degraded bool
}

// Recorder receives a record of every degraded lookup. Implementations must
// not fail the lookup: recording is observability, not control flow.
type Recorder interface {
	RecordDegradation(ctx context.Context, origin, destination, cause string)
}

// Client queries a distance-matrix-shaped API for drive times. Any failure
// mode collapses to the configured default estimate rather than an error:
// an unreachable travel API must never make a whole day unbookable.
type Client struct {
	cfg      *config.TravelConfig
	client   *http.Client
	cache    *cache.Cache
	recorder Recorder
}

// NewClient creates a travel client. recorder may be nil.
func NewClient(cfg *config.TravelConfig, recorder Recorder) *Client {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return &Client{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		cache:    cache.New(ttl, 2*ttl),
		recorder: recorder,
	}
}

// matrixResponse models the subset of the distance-matrix response we read.
type matrixResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
			DurationInTraffic *struct {
				Value int `json:"value"`
			} `json:"duration_in_traffic"`
		} `json:"elements"`
	} `json:"rows"`
}

// EstimateDriveMinutes returns the estimated drive time from origin to
// destination in whole minutes, rounded up. Lookups are cached per
// (origin, destination, time bucket); only fresh upstream answers are cached,
// so a transient outage never pins the default past its bucket.
func (c *Client) EstimateDriveMinutes(ctx context.Context, origin, destination string) Estimate {
	key := cacheKey(origin, destination, time.Now())
	if cached, found := c.cache.Get(key); found {
		return cached.(Estimate)
	}

	minutes, err := c.fetch(ctx, origin, destination)
	if err != nil {
		log.Printf("travel estimate degraded for %q -> %q: %v", origin, destination, err)
		if c.recorder != nil {
			c.recorder.RecordDegradation(ctx, origin, destination, err.Error())
		}
		return Estimate{Minutes: c.cfg.DefaultMinutes, Degraded: true}
	}

	est := Estimate{Minutes: minutes}
	c.cache.SetDefault(key, est)
	return est
}

func (c *Client) fetch(ctx context.Context, origin, destination string) (int, error) {
	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	query.Set("departure_time", "now")
	query.Set("traffic_model", "best_guess")
	if c.cfg.APIKey != "" {
		query.Set("key", c.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var matrix matrixResponse
	if err := json.Unmarshal(body, &matrix); err != nil {
		return 0, fmt.Errorf("failed to unmarshal matrix response: %w", err)
	}

	if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("matrix response contains no elements")
	}
	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("matrix element status %q", element.Status)
	}

	seconds := element.Duration.Value
	if element.DurationInTraffic != nil && element.DurationInTraffic.Value > 0 {
		seconds = element.DurationInTraffic.Value
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("matrix element has no usable duration")
	}

	return (seconds + 59) / 60, nil
}

// cacheKey buckets lookups into 15-minute windows so traffic-sensitive
// estimates age out on their own.
func cacheKey(origin, destination string, now time.Time) string {
	bucket := now.Unix() / (15 * 60)
	return fmt.Sprintf("%s|%s|%d", origin, destination, bucket)
}
