package domain

// FlightSegment is one leg of a route candidate, identified by its
// operating carrier rather than the marketing carrier on the ticket.
type FlightSegment struct {
	// OperatingAirline is the IATA code of the airline actually flying
	// the segment.
	OperatingAirline string `json:"operating_airline"`

	// OperatingFlightNumber is the operating carrier code concatenated
	// with the marketing flight number (e.g. "KL1234").
	OperatingFlightNumber string `json:"operating_flight_number"`

	// DepartureAirport and ArrivalAirport are IATA codes.
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`

	// DepartureTime and ArrivalTime are provider-local timestamps.
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// PriceInfo contains pricing information for a route candidate.
type PriceInfo struct {
	// Amount is the numeric price value.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g. "USD").
	Currency string `json:"currency"`
}

// RouteCandidate is one itinerary option between two airports on a date.
// Invariant: Segments is non-empty; the connection count is one less than
// the segment count.
type RouteCandidate struct {
	// ID is a unique identifier for this candidate (generated internally).
	ID string `json:"id"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`

	Segments []FlightSegment `json:"segments"`

	// ConnectionAirports lists intermediate stops, excluding origin and
	// final destination.
	ConnectionAirports []string `json:"connection_airports"`

	// OperatingAirlines and OperatingFlightNumbers are the distinct
	// carriers and flight numbers across all segments, in segment order.
	OperatingAirlines      []string `json:"operating_airlines"`
	OperatingFlightNumbers []string `json:"operating_flight_numbers"`

	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`

	// TotalDurationMinutes is the full itinerary duration.
	TotalDurationMinutes int `json:"total_duration"`

	// FormattedDuration is a human-readable duration (e.g. "13h 55m").
	FormattedDuration string `json:"formatted_duration"`

	Price PriceInfo `json:"price"`
}

// Connections returns the number of stops on the route.
func (r *RouteCandidate) Connections() int {
	if len(r.Segments) == 0 {
		return 0
	}
	return len(r.Segments) - 1
}

// PrimaryAirline returns the first operating airline, or "Unknown" when
// no segment carried one.
func (r *RouteCandidate) PrimaryAirline() string {
	if len(r.OperatingAirlines) == 0 {
		return "Unknown"
	}
	return r.OperatingAirlines[0]
}

// FlightReliability summarizes one constituent flight's contribution to a
// ranked route.
type FlightReliability struct {
	FlightNumber string `json:"flight_number"`

	Score int `json:"reliability_score"`

	// DelayPercentage is nil when the fused record had no delay metric
	// (insufficient data).
	DelayPercentage *float64 `json:"delay_percentage,omitempty"`

	Quality DataQuality `json:"data_quality"`
}

// RankedRoute is a route candidate enriched with reliability and the
// composite smart rank.
type RankedRoute struct {
	RouteCandidate

	// ReliabilityScore is the rounded mean of the constituent flight
	// scores, or nil when no flight scored.
	ReliabilityScore *int `json:"reliability_score"`

	// ReliabilityData carries the per-flight breakdown.
	ReliabilityData []FlightReliability `json:"reliability_data"`

	// SmartRank is the 0-100 weighted composite of reliability, price,
	// and duration.
	SmartRank float64 `json:"smart_rank"`

	// Rank is the 1-based dense rank by descending smart rank.
	Rank int `json:"rank"`
}

// RankingQuery echoes the resolved search parameters in a response.
type RankingQuery struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	MaxRoutes      int    `json:"max_routes"`
	MaxConnections int    `json:"max_connections"`
}

// RankingResponse is the full result of a route ranking request.
type RankingResponse struct {
	Query       RankingQuery  `json:"query"`
	Routes      []RankedRoute `json:"routes"`
	Count       int           `json:"count"`
	RetrievedAt string        `json:"retrieved_at"`

	// CacheHit indicates the route candidates came from the store rather
	// than a live provider search.
	CacheHit bool `json:"cache_hit"`
}
