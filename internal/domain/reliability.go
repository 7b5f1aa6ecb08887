// Package domain contains the core business entities and rules for the route
// reliability ranking system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

// DataQuality tags which data sources were available when a flight's
// reliability was computed. The scorer selects its formula by this tag.
type DataQuality string

const (
	// QualityComplete means both historical and recent profiles were available.
	QualityComplete DataQuality = "complete"

	// QualityMissingRecent means only the historical profile was available.
	QualityMissingRecent DataQuality = "missing_recent"

	// QualityMissingHistorical means only the recent profile was available.
	QualityMissingHistorical DataQuality = "missing_historical"

	// QualityInsufficientData means neither profile was available.
	QualityInsufficientData DataQuality = "insufficient_data"
)

// DelaySide identifies which leg of a flight a statistic describes.
type DelaySide string

const (
	// SideDeparture refers to departure (origin airport) delays.
	SideDeparture DelaySide = "departure"

	// SideArrival refers to arrival (destination airport) delays.
	SideArrival DelaySide = "arrival"
)

// DelayBucketSet holds the fixed delay taxonomy as percentages.
// When the source fractions sum to 1, the four fields sum to ~100
// (subject to provider bracket-boundary rounding).
type DelayBucketSet struct {
	// OnTime is the percentage of flights delayed less than 15 minutes.
	OnTime float64 `json:"on_time_percentage"`

	// Slight is the percentage delayed 15-30 minutes.
	Slight float64 `json:"slight_delay_15_30min"`

	// Moderate is the percentage delayed 30-60 minutes.
	Moderate float64 `json:"moderate_delay_30_60min"`

	// Severe is the percentage delayed 60 minutes or more.
	Severe float64 `json:"severe_delay_60min_plus"`
}

// Sum returns the total of all four bucket percentages.
func (b DelayBucketSet) Sum() float64 {
	return b.OnTime + b.Slight + b.Moderate + b.Severe
}

// HistoricalOptionGroup is one per-airport-hour observation group from the
// historical delay-statistics provider.
type HistoricalOptionGroup struct {
	// Airport is the ICAO code of the airport the group describes.
	Airport string `json:"airport"`

	// HourUTC is the scheduled hour of day (UTC) the group covers.
	HourUTC int `json:"hour_utc"`

	// FlightsAnalyzed is the number of flights the provider aggregated.
	FlightsAnalyzed int `json:"flights_analyzed"`

	// DateFrom and DateTo bound the observation window (provider date strings,
	// ISO ordered so lexicographic comparison is chronological).
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`

	// DelayedPercentage is 100 minus the on-time percentage.
	DelayedPercentage float64 `json:"delayed_percentage"`

	// OnTimePercentage is the share of flights within the on-time band.
	OnTimePercentage float64 `json:"on_time_percentage"`

	// Buckets is the normalized delay taxonomy for this group.
	Buckets DelayBucketSet `json:"delay_buckets"`

	// MedianDelay is the provider-reported median delay (raw time-span string).
	MedianDelay string `json:"median_delay"`

	// Percentile90Delay is the provider-reported 90th percentile delay.
	Percentile90Delay string `json:"percentile_90_delay"`
}

// HistoricalOverall is the aggregate derived from one side of the
// historical observation groups.
type HistoricalOverall struct {
	// TotalFlightsAnalyzed is the flights-analyzed sum over the chosen side.
	TotalFlightsAnalyzed int `json:"total_flights_analyzed"`

	// DateFrom and DateTo bound the overall window: min(from)..max(to)
	// over the chosen side's groups.
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`

	// DelayedPercentage is the flights-weighted average delayed percentage.
	DelayedPercentage float64 `json:"overall_delayed_percentage"`

	// Side records which leg the aggregate was computed from. Arrival is
	// preferred whenever any arrival group exists; departure is the fallback.
	Side DelaySide `json:"data_type"`

	// DepartureFlightsAnalyzed is kept for reference when Side is arrival.
	DepartureFlightsAnalyzed int `json:"departure_flights_analyzed,omitempty"`
}

// HistoricalProfile is the normalized historical delay profile for one
// flight number. It is computed fresh from a raw provider payload and
// never mutated afterwards.
type HistoricalProfile struct {
	FlightNumber     string                  `json:"flight_number"`
	DepartureOptions []HistoricalOptionGroup `json:"departure_options"`
	ArrivalOptions   []HistoricalOptionGroup `json:"arrival_options"`
	Overall          HistoricalOverall       `json:"overall"`
}

// LegTimes holds the per-leg schedule and observation for one recent flight.
type LegTimes struct {
	Airport      string  `json:"airport"`
	Scheduled    string  `json:"scheduled"`
	Actual       string  `json:"actual"`
	DelayMinutes float64 `json:"delay_minutes"`
	Terminal     string  `json:"terminal,omitempty"`
	Gate         string  `json:"gate,omitempty"`

	// Predicted marks an arrival observation that came from the provider's
	// predicted-time fallback rather than an actual or revised time.
	Predicted bool `json:"predicted,omitempty"`
}

// FlightRecord is one individual recent flight observation.
type FlightRecord struct {
	Date      string   `json:"date"`
	Status    string   `json:"status"`
	Departure LegTimes `json:"departure"`
	Arrival   LegTimes `json:"arrival"`
	Aircraft  string   `json:"aircraft,omitempty"`
}

// SideStatistics aggregates delay-minute samples for one leg.
// A nil *SideStatistics means no samples existed for that leg; this is
// deliberately distinct from a zero-valued struct (see the fusion rules).
type SideStatistics struct {
	SampleCount         int            `json:"sample_count"`
	AverageDelayMinutes float64        `json:"average_delay_minutes"`
	MedianDelayMinutes  float64        `json:"median_delay_minutes"`
	OnTimePercentage    float64        `json:"on_time_percentage"`
	DelayedPercentage   float64        `json:"delayed_percentage"`
	Buckets             DelayBucketSet `json:"delay_buckets"`
}

// RecentProfile is the normalized recent-performance profile for one
// flight number over a rolling window.
type RecentProfile struct {
	FlightNumber string `json:"flight_number"`
	Airline      string `json:"airline"`
	Route        string `json:"route"`

	// TotalFlights is the number of raw observations processed.
	TotalFlights int `json:"total_flights"`

	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`

	Flights []FlightRecord `json:"individual_flights"`

	// Departure and Arrival are nil when no delay samples existed for
	// that leg.
	Departure *SideStatistics `json:"departure,omitempty"`
	Arrival   *SideStatistics `json:"arrival,omitempty"`
}

// CombinedStatistics holds the weighted blend of historical and recent
// delay metrics, present only on complete fused records.
type CombinedStatistics struct {
	// OverallDelayPercentage is the 0.6/0.4 weighted delayed percentage.
	OverallDelayPercentage float64 `json:"overall_delay_percentage"`

	// Buckets is the weighted blend of the per-source bucket sets.
	Buckets DelayBucketSet `json:"delay_buckets"`

	// HistoricalDelayedPercentage preserves the historical input for reference.
	HistoricalDelayedPercentage float64 `json:"historical_delayed_percentage"`

	// RecentDelayedPercentage preserves the recent input for reference.
	RecentDelayedPercentage float64 `json:"recent_delayed_percentage"`
}

// FusedReliability is the tagged union produced by merging the two
// profiles. Exactly one variant is active, identified by Quality:
//
//   - QualityComplete: Combined, Historical, and Recent are set.
//   - QualityMissingRecent: only Historical is set.
//   - QualityMissingHistorical: only Recent is set.
//   - QualityInsufficientData: no profile fields are set.
//
// Use the constructors below; they are the only way variants are built.
type FusedReliability struct {
	FlightNumber string             `json:"flight_number"`
	Quality      DataQuality        `json:"data_quality"`
	Combined     *CombinedStatistics `json:"combined_statistics,omitempty"`
	Historical   *HistoricalProfile `json:"historical,omitempty"`
	Recent       *RecentProfile     `json:"recent,omitempty"`
}

// NewInsufficientData builds the variant for a flight with no usable data.
func NewInsufficientData(flightNumber string) FusedReliability {
	return FusedReliability{
		FlightNumber: flightNumber,
		Quality:      QualityInsufficientData,
	}
}

// NewMissingRecent builds the historical-only variant.
func NewMissingRecent(flightNumber string, hist *HistoricalProfile) FusedReliability {
	return FusedReliability{
		FlightNumber: flightNumber,
		Quality:      QualityMissingRecent,
		Historical:   hist,
	}
}

// NewMissingHistorical builds the recent-only variant.
func NewMissingHistorical(flightNumber string, recent *RecentProfile) FusedReliability {
	return FusedReliability{
		FlightNumber: flightNumber,
		Quality:      QualityMissingHistorical,
		Recent:       recent,
	}
}

// NewComplete builds the variant holding both profiles and their blend.
func NewComplete(flightNumber string, combined *CombinedStatistics, hist *HistoricalProfile, recent *RecentProfile) FusedReliability {
	return FusedReliability{
		FlightNumber: flightNumber,
		Quality:      QualityComplete,
		Combined:     combined,
		Historical:   hist,
		Recent:       recent,
	}
}

// ReliabilityScore is a 0-100 reliability score with its provenance tag.
// A score exists for every fused record; insufficient data yields the
// neutral 50 rather than an absent value.
type ReliabilityScore struct {
	Value   int         `json:"value"`
	Quality DataQuality `json:"data_quality"`
}
