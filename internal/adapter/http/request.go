// Package http provides the HTTP handler layer for the route ranking API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"
)

// RankRoutesRequest represents the request body for route ranking.
type RankRoutesRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "AMS")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHE")
	Destination string `json:"destination"`

	// Date is the desired departure date in YYYY-MM-DD format. Optional;
	// defaults to four weeks ahead.
	Date string `json:"date,omitempty"`

	// MaxRoutes caps how many ranked routes are returned (1-20, default 5)
	MaxRoutes int `json:"maxRoutes,omitempty"`

	// MaxConnections caps the allowed stops per route (0-2, default 2)
	MaxConnections int `json:"maxConnections,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern  = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{2}[A-Z]?\d{1,4}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the ranking request and returns any validation errors.
// Airport codes are normalized to uppercase as a side effect.
func (r *RankRoutesRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDate(errs)
	r.validateLimits(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *RankRoutesRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin // Normalize to uppercase
}

func (r *RankRoutesRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest // Normalize to uppercase
}

func (r *RankRoutesRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *RankRoutesRequest) validateDate(errs *ValidationErrors) {
	// Date is optional; an empty value defers to the use case default.
	if r.Date == "" {
		return
	}

	if !datePattern.MatchString(r.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs.Add("date", "date is not a valid date")
	}
}

func (r *RankRoutesRequest) validateLimits(errs *ValidationErrors) {
	if r.MaxRoutes < 0 || r.MaxRoutes > 20 {
		errs.Add("maxRoutes", "maxRoutes must be between 1 and 20")
	}
	if r.MaxConnections < 0 || r.MaxConnections > 2 {
		errs.Add("maxConnections", "maxConnections must be between 0 and 2")
	}
}

// ValidateFlightNumber checks a path-supplied flight number. The input is
// normalized to uppercase before matching.
func ValidateFlightNumber(flightNumber string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(flightNumber))
	if !flightNumberPattern.MatchString(normalized) {
		return "", false
	}
	return normalized, true
}
