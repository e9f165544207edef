// Package serpapi implements the remote flight data source against the
// SerpAPI Google Flights endpoint.
package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/infrastructure/retry"
	"github.com/flightfinder/flightfinder/internal/infrastructure/timeutil"
)

// SourceName is the unique identifier for this flight data source.
const SourceName = "serpapi"

// DefaultBaseURL is the SerpAPI search endpoint.
const DefaultBaseURL = "https://serpapi.com/search"

// Google Flights trip type codes.
const (
	tripTypeRoundTrip = "1"
	tripTypeOneWay    = "2"
)

// ErrMissingAPIKey indicates the client was constructed without a credential.
var ErrMissingAPIKey = errors.New("serpapi: API key required")

// Config configures the client.
type Config struct {
	// APIKey is the SerpAPI credential. Required.
	APIKey string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// MaxRetries is the retry budget for transient failures.
	MaxRetries int

	// RequestDelay is the minimum spacing between consecutive requests.
	RequestDelay time.Duration
}

// Client queries SerpAPI and normalizes its responses into domain options.
// It implements domain.FlightSource.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCfg   retry.Config
	clock      timeutil.Clock
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.RequestDelay), 1)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		retryCfg: retry.SourceConfig.
			WithMaxAttempts(cfg.MaxRetries).
			WithRetryIf(retry.SkipPermanent),
		clock: timeutil.NewRealClock(),
	}, nil
}

// WithClock replaces the clock used for the timestamp-parse fallback.
// Intended for tests.
func (c *Client) WithClock(clock timeutil.Clock) *Client {
	c.clock = clock
	return c
}

// Name implements domain.FlightSource.
func (c *Client) Name() string {
	return SourceName
}

// Query implements domain.FlightSource. An empty returnDate requests
// one-way fares. Transport-level failures are retried within the
// configured budget; an API-level error in the response envelope is a
// permanent failure.
func (c *Client) Query(ctx context.Context, origin, destination, departDate, returnDate string, cabin domain.CabinClass) ([]domain.FlightOption, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", origin)
	params.Set("arrival_id", destination)
	params.Set("outbound_date", departDate)
	params.Set("travel_class", travelClassCode(cabin))
	params.Set("api_key", c.apiKey)

	isRoundTrip := returnDate != ""
	if isRoundTrip {
		params.Set("return_date", returnDate)
		params.Set("type", tripTypeRoundTrip)
	} else {
		params.Set("type", tripTypeOneWay)
	}

	resp, err := retry.DoWithResult(ctx, func() (*searchResponse, error) {
		return c.doRequest(ctx, params)
	}, c.retryCfg)
	if err != nil {
		return nil, err
	}

	return normalize(resp, isRoundTrip, c.clock), nil
}

// doRequest performs one rate-limited HTTP round trip and decodes the
// response envelope.
func (c *Client) doRequest(ctx context.Context, params url.Values) (*searchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, err))
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewRetryableSourceError(SourceName, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domain.NewRetryableSourceError(SourceName, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", httpResp.StatusCode)
		if isRetryableStatus(httpResp.StatusCode) {
			return nil, domain.NewRetryableSourceError(SourceName, err)
		}
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, err))
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, fmt.Errorf("decode response: %w", err)))
	}

	// An error in the envelope is a hard failure for the whole response,
	// checked before any per-offer parsing.
	if resp.Error != "" {
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, fmt.Errorf("api error: %s", resp.Error)))
	}

	return &resp, nil
}

// isRetryableStatus reports whether an HTTP status is worth retrying.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// travelClassCode maps a cabin class to the Google Flights numeric code.
func travelClassCode(cabin domain.CabinClass) string {
	switch cabin {
	case domain.CabinPremiumEconomy:
		return "2"
	case domain.CabinBusiness:
		return "3"
	case domain.CabinFirst:
		return "4"
	default:
		return "1"
	}
}

// Ensure Client implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Client)(nil)
