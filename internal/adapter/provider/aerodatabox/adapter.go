// Package aerodatabox fetches per-flight delay data from the
// AeroDataBox API: aggregate historical delay statistics and individual
// recent flight observations. Every failure mode collapses into the
// FetchResult union; this adapter never returns an error to its caller.
package aerodatabox

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the AeroDataBox provider.
const ProviderName = "aerodatabox"

// maxBodyBytes bounds how much of a response body is read; delay
// payloads are small, anything larger is garbage.
const maxBodyBytes = 4 << 20

// Config holds the AeroDataBox client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	APIHost string
	Timeout time.Duration

	// RequestsPerSecond and Burst pace outgoing calls below the plan's
	// quota so a multi-flight ranking request does not trip the
	// provider limiter by itself.
	RequestsPerSecond float64
	Burst             int
}

// Client implements domain.HistoricalProvider and domain.RecentProvider.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
}

// NewClient creates an AeroDataBox client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst == 0 {
		cfg.Burst = 5
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:        log.WithProvider(ProviderName),
	}
}

// FetchDelayStats fetches aggregate historical delay statistics for a
// flight number.
func (c *Client) FetchDelayStats(ctx context.Context, flightNumber string) domain.FetchResult {
	url := fmt.Sprintf("%s/flights/%s/delays", c.cfg.BaseURL, flightNumber)
	return c.fetch(ctx, url, flightNumber)
}

// FetchRecentFlights fetches individual flight observations over a date
// range. A session already marked rate-limited short-circuits without a
// network call; a 429 marks the session.
func (c *Client) FetchRecentFlights(ctx context.Context, flightNumber string, from, to time.Time, sess *domain.ProviderSession) domain.FetchResult {
	if sess.RateLimited() {
		c.log.Debug().Str("flight_number", flightNumber).
			Msg("session rate limited, skipping recent flights call")
		return domain.RateLimitedResult()
	}

	url := fmt.Sprintf("%s/flights/number/%s/%s/%s?dateLocalRole=Both",
		c.cfg.BaseURL, flightNumber, from.Format("2006-01-02"), to.Format("2006-01-02"))

	result := c.fetch(ctx, url, flightNumber)
	if result.Status == domain.FetchRateLimited {
		sess.MarkRateLimited()
	}
	return result
}

// fetch performs one paced GET and classifies the outcome.
func (c *Client) fetch(ctx context.Context, url, flightNumber string) domain.FetchResult {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.AbsentResult(domain.ReasonTransportError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.AbsentResult(domain.ReasonTransportError)
	}
	req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	req.Header.Set("x-rapidapi-host", c.cfg.APIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("flight_number", flightNumber).Msg("request failed")
		return domain.AbsentResult(domain.ReasonTransportError)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		c.log.Debug().Str("flight_number", flightNumber).Msg("no content for flight")
		return domain.AbsentResult(domain.ReasonNoContent)
	case resp.StatusCode == http.StatusTooManyRequests:
		c.log.Warn().Str("flight_number", flightNumber).Msg("provider rate limit hit")
		return domain.RateLimitedResult()
	case resp.StatusCode != http.StatusOK:
		c.log.Warn().Int("status", resp.StatusCode).
			Str("flight_number", flightNumber).Msg("unexpected status")
		return domain.AbsentResult(domain.ReasonHTTPError)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.AbsentResult(domain.ReasonTransportError)
	}
	if len(body) == 0 {
		return domain.AbsentResult(domain.ReasonEmptyResult)
	}

	return domain.PayloadResult(body)
}
