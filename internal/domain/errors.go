package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reliability pipeline. Expected upstream failures
// never propagate past the fetch boundary; they degrade to absent data.
// These sentinels exist for wrapping, logging, and HTTP mapping.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search criteria.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable indicates a network, HTTP, or parse failure
	// against an upstream data provider.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrRateLimited indicates the recent-flights provider signalled a
	// session rate limit.
	ErrRateLimited = errors.New("upstream provider rate limited")

	// ErrMalformedSegment indicates a route-search segment was missing its
	// operating-carrier or airport fields. The segment is skipped, never fatal.
	ErrMalformedSegment = errors.New("malformed route segment")

	// ErrNoRoutesFound indicates the route provider returned no candidates.
	ErrNoRoutesFound = errors.New("no routes found")
)

// Reason codes preserved on absent fetch results for caching and logging.
// Scoring logic never branches on these.
const (
	ReasonNoContent      = "204_no_content"
	ReasonDecodeError    = "decode_error"
	ReasonHTTPError      = "http_error"
	ReasonTransportError = "transport_error"
	ReasonRateLimited    = "rate_limited"
	ReasonEmptyResult    = "empty_result"
)

// UpstreamError describes a failed call to an external data provider.
// It wraps ErrUpstreamUnavailable (or ErrRateLimited) so callers can use
// errors.Is without inspecting strings.
type UpstreamError struct {
	// Provider is the upstream system name (e.g. "aerodatabox").
	Provider string

	// Reason is one of the Reason* codes above.
	Reason string

	// Err is the underlying cause, may be nil for status-code failures.
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s unavailable (%s): %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("provider %s unavailable (%s)", e.Provider, e.Reason)
}

// Unwrap lets errors.Is match ErrRateLimited or ErrUpstreamUnavailable.
func (e *UpstreamError) Unwrap() error {
	if e.Reason == ReasonRateLimited {
		return ErrRateLimited
	}
	return ErrUpstreamUnavailable
}

// NewUpstreamError creates an UpstreamError for the given provider and reason.
func NewUpstreamError(provider, reason string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Reason: reason, Err: err}
}
