package usecase

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// Delay classification thresholds in minutes.
const (
	onTimeThreshold   = 15.0
	moderateThreshold = 30.0
	severeThreshold   = 60.0
)

// rawTimeRef is a provider timestamp with UTC and airport-local renderings.
type rawTimeRef struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

// rawFlightLeg is one side (departure or arrival) of a recent flight record.
type rawFlightLeg struct {
	Airport struct {
		IATA string `json:"iata"`
		Name string `json:"name"`
	} `json:"airport"`
	ScheduledTime *rawTimeRef `json:"scheduledTime"`
	RevisedTime   *rawTimeRef `json:"revisedTime"`
	RunwayTime    *rawTimeRef `json:"runwayTime"`
	PredictedTime *rawTimeRef `json:"predictedTime"`
	Terminal      string      `json:"terminal"`
	Gate          string      `json:"gate"`
}

// rawRecentFlight is one flight observation from the recent-flights feed.
type rawRecentFlight struct {
	Number  string `json:"number"`
	Status  string `json:"status"`
	Airline struct {
		Name string `json:"name"`
	} `json:"airline"`
	Departure rawFlightLeg `json:"departure"`
	Arrival   rawFlightLeg `json:"arrival"`
	Aircraft  struct {
		Model string `json:"model"`
		Reg   string `json:"reg"`
	} `json:"aircraft"`
}

// rawRecentEnvelope covers the wrapped response shape {"result": [...]}
// and the cached empty sentinel.
type rawRecentEnvelope struct {
	Result []rawRecentFlight `json:"result"`
	Empty  bool              `json:"empty"`
}

// legObservation is the delay computed for one side of one record.
type legObservation struct {
	delayMinutes float64
	hasDelay     bool
	predicted    bool
	scheduled    time.Time
	hasScheduled bool
}

// ProcessRecentFlights turns a raw recent-flights payload into a
// normalized profile. The payload may be a bare JSON array or wrapped in
// a {"result": [...]} envelope; a cached empty sentinel or an empty list
// yields no profile. Predicted arrival times are flagged on the record
// and included in the aggregates only when includePredictions is set.
func ProcessRecentFlights(payload json.RawMessage, includePredictions bool) *domain.RecentProfile {
	flights, ok := unwrapRecentFlights(payload)
	if !ok || len(flights) == 0 {
		return nil
	}

	first := flights[0]
	profile := &domain.RecentProfile{
		FlightNumber: stringOr(first.Number, "Unknown"),
		Airline:      stringOr(first.Airline.Name, "Unknown"),
		Route:        fmt.Sprintf("%s → %s", first.Departure.Airport.IATA, first.Arrival.Airport.IATA),
		TotalFlights: len(flights),
	}

	var (
		dates           []string
		departureDelays []float64
		arrivalDelays   []float64
	)

	for _, flight := range flights {
		dep := observeLeg(flight.Departure, false)
		arr := observeLeg(flight.Arrival, true)

		if !dep.hasScheduled && !arr.hasScheduled {
			logger.Warn().
				Str("flight_number", flight.Number).
				Msg("skipping recent flight record with no parseable schedule")
			continue
		}

		date := "Unknown"
		if dep.hasScheduled {
			date = dep.scheduled.Format("2006-01-02")
			dates = append(dates, date)
		}

		if dep.hasDelay {
			departureDelays = append(departureDelays, dep.delayMinutes)
		}
		if arr.hasDelay && (!arr.predicted || includePredictions) {
			arrivalDelays = append(arrivalDelays, arr.delayMinutes)
		}

		profile.Flights = append(profile.Flights, domain.FlightRecord{
			Date:      date,
			Status:    stringOr(flight.Status, "Unknown"),
			Departure: buildLegTimes(flight.Departure, dep),
			Arrival:   buildLegTimes(flight.Arrival, arr),
			Aircraft:  formatAircraft(flight.Aircraft.Model, flight.Aircraft.Reg),
		})
	}

	if len(dates) > 0 {
		sort.Strings(dates)
		profile.DateFrom = dates[0]
		profile.DateTo = dates[len(dates)-1]
	}

	profile.Departure = calculateSideStatistics(departureDelays)
	profile.Arrival = calculateSideStatistics(arrivalDelays)

	return profile
}

// unwrapRecentFlights accepts either a bare array or the result envelope.
func unwrapRecentFlights(payload json.RawMessage) ([]rawRecentFlight, bool) {
	if len(payload) == 0 {
		return nil, false
	}

	var flights []rawRecentFlight
	if err := json.Unmarshal(payload, &flights); err == nil {
		return flights, true
	}

	var envelope rawRecentEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, false
	}
	if envelope.Empty {
		return nil, false
	}
	return envelope.Result, envelope.Result != nil
}

// observeLeg computes the delay for one side of a record. Departures
// take the first available of runway and revised times; arrivals
// additionally fall back to the predicted time, flagged as such.
func observeLeg(leg rawFlightLeg, isArrival bool) legObservation {
	var obs legObservation

	scheduled, ok := parseProviderTime(timeUTC(leg.ScheduledTime))
	if ok {
		obs.scheduled = scheduled
		obs.hasScheduled = true
	}

	actualStr := timeUTC(leg.RunwayTime)
	if actualStr == "" {
		actualStr = timeUTC(leg.RevisedTime)
	}
	if actualStr == "" && isArrival {
		if predicted := timeUTC(leg.PredictedTime); predicted != "" {
			actualStr = predicted
			obs.predicted = true
		}
	}

	if obs.hasScheduled && actualStr != "" {
		if actual, ok := parseProviderTime(actualStr); ok {
			obs.delayMinutes = actual.Sub(obs.scheduled).Minutes()
			obs.hasDelay = true
		}
	}

	return obs
}

func timeUTC(ref *rawTimeRef) string {
	if ref == nil {
		return ""
	}
	return ref.UTC
}

// parseProviderTime parses the provider's timestamp formats, with or
// without seconds, tolerating a trailing Z.
func parseProviderTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	s = strings.TrimSuffix(s, "Z")

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func buildLegTimes(leg rawFlightLeg, obs legObservation) domain.LegTimes {
	actual := timeLocal(leg.RunwayTime)
	if actual == "" {
		actual = timeLocal(leg.RevisedTime)
	}
	if actual == "" && obs.predicted {
		actual = timeLocal(leg.PredictedTime)
	}

	out := domain.LegTimes{
		Airport:   formatAirport(leg.Airport.IATA, leg.Airport.Name),
		Scheduled: timeLocal(leg.ScheduledTime),
		Actual:    actual,
		Terminal:  leg.Terminal,
		Gate:      leg.Gate,
		Predicted: obs.predicted,
	}
	if obs.hasDelay {
		out.DelayMinutes = round1(obs.delayMinutes)
	}
	return out
}

func timeLocal(ref *rawTimeRef) string {
	if ref == nil {
		return ""
	}
	return ref.Local
}

func formatAirport(iata, name string) string {
	return fmt.Sprintf("%s (%s)", iata, name)
}

func formatAircraft(model, reg string) string {
	if reg == "" {
		return model
	}
	return fmt.Sprintf("%s (%s)", model, reg)
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// calculateSideStatistics aggregates delay samples for one leg. Returns
// nil when no samples existed, which downstream fusion treats as "no
// data" rather than "zero delay".
func calculateSideStatistics(delays []float64) *domain.SideStatistics {
	if len(delays) == 0 {
		return nil
	}

	sorted := make([]float64, len(delays))
	copy(sorted, delays)
	sort.Float64s(sorted)

	var sum float64
	for _, d := range delays {
		sum += d
	}

	middle := len(sorted) / 2
	var median float64
	if len(sorted)%2 == 0 {
		median = (sorted[middle-1] + sorted[middle]) / 2
	} else {
		median = sorted[middle]
	}

	var onTime, slight, moderate, severe int
	for _, d := range delays {
		switch {
		case d < onTimeThreshold:
			onTime++
		case d < moderateThreshold:
			slight++
		case d < severeThreshold:
			moderate++
		default:
			severe++
		}
	}

	n := float64(len(delays))
	onTimePct := float64(onTime) / n * 100

	return &domain.SideStatistics{
		SampleCount:         len(delays),
		AverageDelayMinutes: round1(sum / n),
		MedianDelayMinutes:  round1(median),
		OnTimePercentage:    round1(onTimePct),
		DelayedPercentage:   round1(100 - onTimePct),
		Buckets: domain.DelayBucketSet{
			OnTime:   round1(onTimePct),
			Slight:   round1(float64(slight) / n * 100),
			Moderate: round1(float64(moderate) / n * 100),
			Severe:   round1(float64(severe) / n * 100),
		},
	}
}
