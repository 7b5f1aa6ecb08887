// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerRankingResponse represents the route ranking response for swagger documentation.
// @Description Ranked routes with per-flight reliability data
type SwaggerRankingResponse struct {
	// Query echoes the resolved search parameters
	Query SwaggerRankingQuery `json:"query"`

	// Routes contains the ranked route candidates, best first
	Routes []SwaggerRankedRoute `json:"routes"`

	// Count is the number of routes returned
	Count int `json:"count" example:"5"`

	// RetrievedAt is when the ranking was produced
	RetrievedAt string `json:"retrieved_at" example:"2026-08-28T12:00:00Z"`

	// CacheHit indicates the candidates came from the cache
	CacheHit bool `json:"cache_hit" example:"false"`
}

// SwaggerRankingQuery echoes the resolved search parameters.
// @Description Resolved ranking query parameters
type SwaggerRankingQuery struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin" example:"AMS"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination" example:"LHE"`

	// Date is the departure date
	Date string `json:"date" example:"2026-09-25"`

	// MaxRoutes is the applied route cap
	MaxRoutes int `json:"max_routes" example:"5"`

	// MaxConnections is the applied connection cap
	MaxConnections int `json:"max_connections" example:"2"`
}

// SwaggerRankedRoute represents one ranked route.
// @Description A route candidate with its reliability and composite rank
type SwaggerRankedRoute struct {
	// ID is a unique identifier for this candidate
	ID string `json:"id" example:"a5b2c917-58f4-4d1e-9c75-0f3ab2e6d841"`

	// ConnectionAirports lists intermediate stops
	ConnectionAirports []string `json:"connection_airports" example:"IST"`

	// OperatingFlightNumbers are the distinct flight numbers on the route
	OperatingFlightNumbers []string `json:"operating_flight_numbers" example:"TK1952,TK708"`

	// TotalDuration is the itinerary duration in minutes
	TotalDuration int `json:"total_duration" example:"835"`

	// FormattedDuration is a human-readable duration
	FormattedDuration string `json:"formatted_duration" example:"13h 55m"`

	// Price is the offer price
	Price SwaggerPriceInfo `json:"price"`

	// ReliabilityScore is the mean of the constituent flight scores
	ReliabilityScore *int `json:"reliability_score" example:"74"`

	// ReliabilityData carries the per-flight breakdown
	ReliabilityData []SwaggerFlightReliability `json:"reliability_data"`

	// SmartRank is the 0-100 composite of reliability, price, and duration
	SmartRank float64 `json:"smart_rank" example:"76.4"`

	// Rank is the 1-based dense rank
	Rank int `json:"rank" example:"1"`
}

// SwaggerFlightReliability summarizes one flight's reliability.
// @Description Per-flight reliability contribution
type SwaggerFlightReliability struct {
	// FlightNumber is the operating flight number
	FlightNumber string `json:"flight_number" example:"KL1234"`

	// ReliabilityScore is the 0-100 flight score
	ReliabilityScore int `json:"reliability_score" example:"74"`

	// DelayPercentage is the share of delayed flights, when known
	DelayPercentage *float64 `json:"delay_percentage,omitempty" example:"22.5"`

	// DataQuality names which data sources backed the score
	DataQuality string `json:"data_quality" example:"complete"`
}

// SwaggerPriceInfo contains pricing information.
// @Description Price information
type SwaggerPriceInfo struct {
	// Amount is the price value
	Amount float64 `json:"amount" example:"645.30"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"USD"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
