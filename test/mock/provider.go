// Package mock provides configurable test doubles for the route ranking
// system. These are designed for integration testing where tests need
// builder-style control over provider behavior (payloads, errors, rate
// limits) and call counting.
package mock

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// RouteProvider is a configurable double for domain.RouteProvider.
type RouteProvider struct {
	candidates []domain.RouteCandidate
	err        error
	delay      time.Duration

	mu        sync.Mutex
	callCount int
}

// NewRouteProvider creates a route provider double that returns nothing.
// Configure it with the builder methods.
func NewRouteProvider() *RouteProvider {
	return &RouteProvider{}
}

// WithCandidates configures the provider to return the given candidates.
func (p *RouteProvider) WithCandidates(candidates []domain.RouteCandidate) *RouteProvider {
	p.candidates = candidates
	return p
}

// WithError configures the provider to fail with the given error.
func (p *RouteProvider) WithError(err error) *RouteProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
// Useful for testing timeout behavior.
func (p *RouteProvider) WithDelay(d time.Duration) *RouteProvider {
	p.delay = d
	return p
}

// Search implements domain.RouteProvider.
func (p *RouteProvider) Search(ctx context.Context, _ domain.SearchCriteria) ([]domain.RouteCandidate, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.candidates, nil
}

// CallCount returns how many times Search was called.
func (p *RouteProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// DelayProvider is a configurable double implementing both
// domain.HistoricalProvider and domain.RecentProvider. Payloads are keyed
// by flight number; flights with no configured payload report absent.
type DelayProvider struct {
	mu sync.Mutex

	historical map[string]json.RawMessage
	recent     map[string]json.RawMessage

	rateLimitRecent bool

	historicalCalls int
	recentCalls     int
}

// NewDelayProvider creates an empty delay provider double.
func NewDelayProvider() *DelayProvider {
	return &DelayProvider{
		historical: make(map[string]json.RawMessage),
		recent:     make(map[string]json.RawMessage),
	}
}

// WithHistorical configures the historical payload for a flight number.
func (p *DelayProvider) WithHistorical(flightNumber string, payload json.RawMessage) *DelayProvider {
	p.historical[flightNumber] = payload
	return p
}

// WithRecent configures the recent-flights payload for a flight number.
func (p *DelayProvider) WithRecent(flightNumber string, payload json.RawMessage) *DelayProvider {
	p.recent[flightNumber] = payload
	return p
}

// WithRecentRateLimited makes every recent-flights call report a rate limit.
func (p *DelayProvider) WithRecentRateLimited() *DelayProvider {
	p.rateLimitRecent = true
	return p
}

// FetchDelayStats implements domain.HistoricalProvider.
func (p *DelayProvider) FetchDelayStats(_ context.Context, flightNumber string) domain.FetchResult {
	p.mu.Lock()
	p.historicalCalls++
	p.mu.Unlock()

	if payload, ok := p.historical[flightNumber]; ok {
		return domain.PayloadResult(payload)
	}
	return domain.AbsentResult(domain.ReasonNoContent)
}

// FetchRecentFlights implements domain.RecentProvider. It honors the
// session contract: a marked session short-circuits, a rate limit marks it.
func (p *DelayProvider) FetchRecentFlights(_ context.Context, flightNumber string, _, _ time.Time, sess *domain.ProviderSession) domain.FetchResult {
	if sess.RateLimited() {
		return domain.RateLimitedResult()
	}

	p.mu.Lock()
	p.recentCalls++
	p.mu.Unlock()

	if p.rateLimitRecent {
		sess.MarkRateLimited()
		return domain.RateLimitedResult()
	}

	if payload, ok := p.recent[flightNumber]; ok {
		return domain.PayloadResult(payload)
	}
	return domain.AbsentResult(domain.ReasonNoContent)
}

// HistoricalCalls returns how many historical fetches ran.
func (p *DelayProvider) HistoricalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.historicalCalls
}

// RecentCalls returns how many recent fetches reached the provider
// (session short-circuits are not counted).
func (p *DelayProvider) RecentCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recentCalls
}

// Compile-time interface checks.
var (
	_ domain.RouteProvider      = (*RouteProvider)(nil)
	_ domain.HistoricalProvider = (*DelayProvider)(nil)
	_ domain.RecentProvider     = (*DelayProvider)(nil)
)

// SampleCandidates returns route candidates for testing, ordered worst
// first so sorting behavior is observable. Flight numbers are distinct
// single-segment routes.
func SampleCandidates(origin, destination, date string) []domain.RouteCandidate {
	build := func(id, flightNumber string, durationMinutes int, price float64) domain.RouteCandidate {
		return domain.RouteCandidate{
			ID:          id,
			Origin:      origin,
			Destination: destination,
			Date:        date,
			Segments: []domain.FlightSegment{{
				OperatingAirline:      flightNumber[:2],
				OperatingFlightNumber: flightNumber,
				DepartureAirport:      origin,
				ArrivalAirport:        destination,
			}},
			OperatingAirlines:      []string{flightNumber[:2]},
			OperatingFlightNumbers: []string{flightNumber},
			TotalDurationMinutes:   durationMinutes,
			FormattedDuration:      domain.FormatMinutes(durationMinutes),
			Price:                  domain.PriceInfo{Amount: price, Currency: "USD"},
		}
	}

	return []domain.RouteCandidate{
		build("slow-expensive", "PK303", 1100, 950),
		build("fast-cheap", "KL1234", 835, 645.30),
		build("fast-expensive", "EK622", 835, 900),
	}
}
