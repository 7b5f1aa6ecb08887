// Package amadeus implements route discovery against the Amadeus
// flight-offers search API. It owns OAuth token acquisition and the
// search call; offer normalization lives in normalizer.go.
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Amadeus route provider.
const ProviderName = "amadeus"

const (
	authPath   = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"

	// maxFlightOffers is how many offers one search requests; the
	// ranker trims far below this, the headroom is for dedup.
	maxFlightOffers = 100

	// tokenExpirySlack refreshes the token slightly before the server
	// would reject it.
	tokenExpirySlack = 30 * time.Second
)

// Config holds the Amadeus client configuration.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Client talks to the Amadeus API and implements domain.RouteProvider.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates an Amadeus client. Tokens are fetched lazily on the
// first search and refreshed when close to expiry.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.WithProvider(ProviderName),
	}
}

// Search finds route candidates for the criteria. All failures surface
// as a wrapped domain.UpstreamError; the caller decides how to degrade.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RouteCandidate, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	reqBody := searchRequest{
		CurrencyCode: "USD",
		OriginDestinations: []originDestination{
			{
				ID:                      "1",
				OriginLocationCode:      criteria.Origin,
				DestinationLocationCode: criteria.Destination,
				DepartureDateTimeRange:  departureDateTimeRange{Date: criteria.Date},
			},
		},
		Travelers: []traveler{{ID: "1", TravelerType: "ADULT"}},
		Sources:   []string{"GDS"},
		SearchCriteria: searchCriteria{
			MaxFlightOffers: maxFlightOffers,
			FlightFilters: flightFilters{
				ConnectionRestriction: connectionRestriction{
					MaxNumberOfConnections: criteria.MaxConnections,
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, domain.NewUpstreamError(ProviderName, domain.ReasonDecodeError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+searchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewUpstreamError(ProviderName, domain.ReasonTransportError, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("date", criteria.Date).
		Msg("searching flight offers")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(ProviderName, domain.ReasonTransportError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.NewUpstreamError(ProviderName, domain.ReasonRateLimited, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(ProviderName, domain.ReasonHTTPError,
			fmt.Errorf("flight offers search returned status %d", resp.StatusCode))
	}

	var searchResp offerResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, domain.NewUpstreamError(ProviderName, domain.ReasonDecodeError, err)
	}

	candidates := normalizeOffers(searchResp.Data, criteria, c.log)
	c.log.Info().
		Int("offers", len(searchResp.Data)).
		Int("candidates", len(candidates)).
		Msg("flight offers normalized")

	return candidates, nil
}

// token returns a valid access token, refreshing it when missing or
// close to expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySlack)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+authPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewUpstreamError(ProviderName, domain.ReasonTransportError, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewUpstreamError(ProviderName, domain.ReasonTransportError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewUpstreamError(ProviderName, domain.ReasonHTTPError,
			fmt.Errorf("token endpoint returned status %d", resp.StatusCode))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", domain.NewUpstreamError(ProviderName, domain.ReasonDecodeError, err)
	}
	if tokenResp.AccessToken == "" {
		return "", domain.NewUpstreamError(ProviderName, domain.ReasonDecodeError,
			fmt.Errorf("token response carried no access token"))
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	c.log.Debug().Msg("access token refreshed")

	return c.accessToken, nil
}

// Wire shapes for the flight-offers search request.

type searchRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []originDestination `json:"originDestinations"`
	Travelers          []traveler          `json:"travelers"`
	Sources            []string            `json:"sources"`
	SearchCriteria     searchCriteria      `json:"searchCriteria"`
}

type originDestination struct {
	ID                      string                 `json:"id"`
	OriginLocationCode      string                 `json:"originLocationCode"`
	DestinationLocationCode string                 `json:"destinationLocationCode"`
	DepartureDateTimeRange  departureDateTimeRange `json:"departureDateTimeRange"`
}

type departureDateTimeRange struct {
	Date string `json:"date"`
}

type traveler struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
}

type searchCriteria struct {
	MaxFlightOffers int           `json:"maxFlightOffers"`
	FlightFilters   flightFilters `json:"flightFilters"`
}

type flightFilters struct {
	ConnectionRestriction connectionRestriction `json:"connectionRestriction"`
}

type connectionRestriction struct {
	MaxNumberOfConnections int `json:"maxNumberOfConnections"`
}
