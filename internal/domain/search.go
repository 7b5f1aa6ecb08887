package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for a route ranking request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "AMS")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHE")
	Destination string `json:"destination"`

	// Date is the target departure date in YYYY-MM-DD format. When empty,
	// the use case substitutes a date four weeks ahead.
	Date string `json:"date,omitempty"`

	// MaxRoutes caps the number of ranked routes returned (default: 5)
	MaxRoutes int `json:"maxRoutes"`

	// MaxConnections caps the allowed connections per route (default: 2)
	MaxConnections int `json:"maxConnections"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	// Date is optional; when present it must be a real calendar date.
	if s.Date != "" {
		if !dateRegex.MatchString(s.Date) {
			return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.Date)
		}
		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			return fmt.Errorf("%w: date is not a valid date: %s", ErrInvalidRequest, s.Date)
		}
	}

	if s.MaxRoutes < 1 || s.MaxRoutes > 20 {
		return fmt.Errorf("%w: maxRoutes must be between 1 and 20, got %d", ErrInvalidRequest, s.MaxRoutes)
	}

	if s.MaxConnections < 0 || s.MaxConnections > 2 {
		return fmt.Errorf("%w: maxConnections must be between 0 and 2, got %d", ErrInvalidRequest, s.MaxConnections)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.MaxRoutes == 0 {
		s.MaxRoutes = 5
	}
	if s.MaxConnections == 0 {
		s.MaxConnections = 2
	}
}
