package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

//go:generate mockgen -source=provider.go -destination=mock_providers.go -package=domain

// FetchStatus discriminates the FetchResult union.
type FetchStatus int

const (
	// FetchPayload means the provider returned a usable JSON body.
	FetchPayload FetchStatus = iota

	// FetchAbsent means no data is available: HTTP 204, a non-JSON body,
	// and transport errors all collapse here. The reason code is kept for
	// caching and logging only.
	FetchAbsent

	// FetchRateLimited means the provider signalled a session rate limit.
	// Treated as absent by scoring; additionally marks the session.
	FetchRateLimited
)

// FetchResult is the tagged union produced at the provider boundary, so
// processors pattern-match one clean type instead of duck-typing
// heterogeneous payload shapes.
type FetchResult struct {
	Status  FetchStatus
	Payload json.RawMessage
	Reason  string
}

// PayloadResult wraps a raw JSON body.
func PayloadResult(payload json.RawMessage) FetchResult {
	return FetchResult{Status: FetchPayload, Payload: payload}
}

// AbsentResult marks a fetch that yielded no data, with a reason code.
func AbsentResult(reason string) FetchResult {
	return FetchResult{Status: FetchAbsent, Reason: reason}
}

// RateLimitedResult marks a fetch rejected by the provider's rate limit.
func RateLimitedResult() FetchResult {
	return FetchResult{Status: FetchRateLimited, Reason: ReasonRateLimited}
}

// ProviderSession carries per-request-session provider state. The sticky
// rate-limited flag lives here rather than in process-global state so
// concurrent sessions cannot cross-contaminate. Once set, the flag is
// never cleared for the lifetime of the session.
type ProviderSession struct {
	mu          sync.Mutex
	rateLimited bool
}

// NewProviderSession creates a fresh session with no rate limit recorded.
func NewProviderSession() *ProviderSession {
	return &ProviderSession{}
}

// MarkRateLimited records that the provider rejected a call in this session.
func (s *ProviderSession) MarkRateLimited() {
	s.mu.Lock()
	s.rateLimited = true
	s.mu.Unlock()
}

// RateLimited reports whether this session has seen a rate-limit signal.
// Checked before every upstream recent-flights call.
func (s *ProviderSession) RateLimited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rateLimited
}

// RouteProvider searches itineraries between two airports. Errors are
// opaque; the core does not retry.
type RouteProvider interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]RouteCandidate, error)
}

// HistoricalProvider fetches aggregate historical delay statistics for a
// flight number as raw JSON. All failure modes collapse to an absent result.
type HistoricalProvider interface {
	FetchDelayStats(ctx context.Context, flightNumber string) FetchResult
}

// RecentProvider fetches per-flight recent observations for a flight
// number over a date range. A rate-limit signal marks the session and is
// otherwise treated as absent.
type RecentProvider interface {
	FetchRecentFlights(ctx context.Context, flightNumber string, from, to time.Time, sess *ProviderSession) FetchResult
}

// ProfileStore is the external key-value store for computed profiles and
// route search results. A miss and a stale entry are equivalent to absent;
// consistency is at most read-your-writes per key, and concurrent requests
// for the same key may both fetch upstream and both write.
type ProfileStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Put(ctx context.Context, key string, value any, ttl time.Duration) error
}

// HistoricalKey builds the store key for a flight's historical profile.
func HistoricalKey(flightNumber string) string {
	return "historical:" + flightNumber
}

// RecentKey builds the store key for a flight's recent profile. The ISO
// year-week bucket keeps the key stable within a week so a rolling window
// does not thrash the cache.
func RecentKey(flightNumber string, t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("recent:%s:%d-W%02d", flightNumber, year, week)
}

// RouteKey builds the store key for a route search result.
func RouteKey(origin, destination, date string) string {
	return fmt.Sprintf("routes:%s:%s:%s", origin, destination, date)
}

// StoredHistorical is the cache envelope for historical profiles. Empty
// entries are cached deliberately so a flight with no historical data does
// not trigger repeated upstream calls.
type StoredHistorical struct {
	Empty   bool               `json:"empty,omitempty"`
	Reason  string             `json:"reason,omitempty"`
	Profile *HistoricalProfile `json:"profile,omitempty"`
}

// StoredRecent is the cache envelope for recent profiles.
type StoredRecent struct {
	Empty   bool           `json:"empty,omitempty"`
	Reason  string         `json:"reason,omitempty"`
	Profile *RecentProfile `json:"profile,omitempty"`
}

// StoredRoutes is the cache envelope for route search results.
type StoredRoutes struct {
	Routes      []RouteCandidate `json:"routes"`
	RetrievedAt string           `json:"retrieved_at"`
}
