package usecase

import (
	"encoding/json"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// unknownDateRange is the placeholder used when a side has no observation
// window bounds.
const unknownDateRange = "Unknown"

// rawDelayPercentile is one percentile entry in a historical delay group.
type rawDelayPercentile struct {
	Percentile int    `json:"percentile"`
	Delay      string `json:"delay"`
}

// rawDelayGroup is one per-airport-hour group in the historical payload.
type rawDelayGroup struct {
	AirportICAO          string               `json:"airportIcao"`
	ScheduledHourUTC     int                  `json:"scheduledHourUtc"`
	NumConsideredFlights int                  `json:"numConsideredFlights"`
	FromUTC              string               `json:"fromUtc"`
	ToUTC                string               `json:"toUtc"`
	Brackets             []DelayBracket       `json:"numFlightsDelayedBrackets"`
	MedianDelay          string               `json:"medianDelay"`
	DelayPercentiles     []rawDelayPercentile `json:"delayPercentiles"`
}

// rawHistoricalPayload is the wire shape of the historical delay-statistics
// response. The Empty field also lets the processor recognize a cached
// empty sentinel that slipped through as a payload.
type rawHistoricalPayload struct {
	Number       string          `json:"number"`
	Origins      []rawDelayGroup `json:"origins"`
	Destinations []rawDelayGroup `json:"destinations"`
	Empty        bool            `json:"empty"`
}

// sideAccumulator folds one side's groups into overall aggregates.
type sideAccumulator struct {
	totalFlights  int
	weightedDelay float64
	earliest      string
	latest        string
	options       []domain.HistoricalOptionGroup
}

func (a *sideAccumulator) add(g rawDelayGroup) {
	buckets := NormalizeBrackets(g.Brackets)
	buckets.OnTime = round1(buckets.OnTime)
	buckets.Slight = round1(buckets.Slight)
	buckets.Moderate = round1(buckets.Moderate)
	buckets.Severe = round1(buckets.Severe)
	delayed := 100 - buckets.OnTime

	a.totalFlights += g.NumConsideredFlights
	a.weightedDelay += delayed * float64(g.NumConsideredFlights)

	// Provider dates are ISO ordered, so lexicographic min/max is
	// chronological.
	if g.FromUTC != "" && (a.earliest == "" || g.FromUTC < a.earliest) {
		a.earliest = g.FromUTC
	}
	if g.ToUTC != "" && g.ToUTC > a.latest {
		a.latest = g.ToUTC
	}

	a.options = append(a.options, domain.HistoricalOptionGroup{
		Airport:           g.AirportICAO,
		HourUTC:           g.ScheduledHourUTC,
		FlightsAnalyzed:   g.NumConsideredFlights,
		DateFrom:          g.FromUTC,
		DateTo:            g.ToUTC,
		DelayedPercentage: round1(delayed),
		OnTimePercentage:  buckets.OnTime,
		Buckets:           buckets,
		MedianDelay:       medianOrUnknown(g.MedianDelay),
		Percentile90Delay: percentile90(g.DelayPercentiles),
	})
}

func (a *sideAccumulator) dateFrom() string {
	if a.earliest == "" {
		return unknownDateRange
	}
	return a.earliest
}

func (a *sideAccumulator) dateTo() string {
	if a.latest == "" {
		return unknownDateRange
	}
	return a.latest
}

func (a *sideAccumulator) delayedPercentage() float64 {
	if a.totalFlights == 0 {
		return 0
	}
	return a.weightedDelay / float64(a.totalFlights)
}

func medianOrUnknown(s string) string {
	if s == "" {
		return unknownDateRange
	}
	return s
}

func percentile90(percentiles []rawDelayPercentile) string {
	for _, p := range percentiles {
		if p.Percentile == 90 {
			return p.Delay
		}
	}
	return unknownDateRange
}

// ProcessHistoricalDelayStats turns a raw historical delay-statistics
// payload into a normalized profile. Arrival (destination) groups are
// preferred for the overall aggregate whenever any exist; departure is
// the fallback. An absent payload, an undecodable one, or a cached empty
// sentinel yields no profile. The function is pure: same payload, same
// profile.
func ProcessHistoricalDelayStats(payload json.RawMessage) *domain.HistoricalProfile {
	if len(payload) == 0 {
		return nil
	}

	var raw rawHistoricalPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil
	}
	if raw.Empty {
		return nil
	}

	var departure, arrival sideAccumulator
	for _, g := range raw.Origins {
		departure.add(g)
	}
	for _, g := range raw.Destinations {
		arrival.add(g)
	}

	profile := &domain.HistoricalProfile{
		FlightNumber:     raw.Number,
		DepartureOptions: departure.options,
		ArrivalOptions:   arrival.options,
	}

	// Arrival delays describe what travellers actually experience, so the
	// overall aggregate uses them whenever any arrival group reported a
	// window.
	if arrival.earliest != "" {
		profile.Overall = domain.HistoricalOverall{
			TotalFlightsAnalyzed:     arrival.totalFlights,
			DateFrom:                 arrival.dateFrom(),
			DateTo:                   arrival.dateTo(),
			DelayedPercentage:        round1(arrival.delayedPercentage()),
			Side:                     domain.SideArrival,
			DepartureFlightsAnalyzed: departure.totalFlights,
		}
	} else {
		profile.Overall = domain.HistoricalOverall{
			TotalFlightsAnalyzed: departure.totalFlights,
			DateFrom:             departure.dateFrom(),
			DateTo:               departure.dateTo(),
			DelayedPercentage:    round1(departure.delayedPercentage()),
			Side:                 domain.SideDeparture,
		}
	}

	return profile
}
