package usecase

import (
	"math"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// Weights applied when blending the two data sources. Historical data
// covers a longer window and dominates; recent data captures current
// operational reality.
const (
	historicalWeight = 0.6
	recentWeight     = 0.4
)

// Combine merges a flight's historical and recent profiles into exactly
// one FusedReliability variant. Either input may be nil.
func Combine(flightNumber string, hist *domain.HistoricalProfile, recent *domain.RecentProfile) domain.FusedReliability {
	switch {
	case hist == nil && recent == nil:
		return domain.NewInsufficientData(flightNumber)
	case recent == nil:
		return domain.NewMissingRecent(flightNumber, hist)
	case hist == nil:
		return domain.NewMissingHistorical(flightNumber, recent)
	}

	historicalDelay := hist.Overall.DelayedPercentage

	// Recent delays prefer the arrival side. When arrival reports zero
	// the departure side substitutes, so a flight with clean arrivals
	// but chronically late departures still registers.
	recentDelay := 0.0
	if recent.Arrival != nil {
		recentDelay = recent.Arrival.DelayedPercentage
	}
	if recentDelay == 0 && recent.Departure != nil {
		recentDelay = recent.Departure.DelayedPercentage
	}

	weightedDelay := historicalDelay*historicalWeight + recentDelay*recentWeight

	histBuckets := weightedHistoricalBuckets(hist)

	var recentBuckets domain.DelayBucketSet
	if recent.Arrival != nil {
		recentBuckets = recent.Arrival.Buckets
	} else if recent.Departure != nil {
		recentBuckets = recent.Departure.Buckets
	}

	// The blended set carries only the delay severities; the scorer
	// derives on-time from the overall delay percentage instead.
	combined := &domain.CombinedStatistics{
		OverallDelayPercentage: round1(weightedDelay),
		Buckets: domain.DelayBucketSet{
			Slight:   round1(histBuckets.Slight*historicalWeight + recentBuckets.Slight*recentWeight),
			Moderate: round1(histBuckets.Moderate*historicalWeight + recentBuckets.Moderate*recentWeight),
			Severe:   round1(histBuckets.Severe*historicalWeight + recentBuckets.Severe*recentWeight),
		},
		HistoricalDelayedPercentage: historicalDelay,
		RecentDelayedPercentage:     recentDelay,
	}

	return domain.NewComplete(flightNumber, combined, hist, recent)
}

// weightedHistoricalBuckets collapses the per-group delay buckets of the
// overall side into one set, weighting each group by its flight count and
// normalizing by the side's total.
func weightedHistoricalBuckets(hist *domain.HistoricalProfile) domain.DelayBucketSet {
	options := hist.DepartureOptions
	if hist.Overall.Side == domain.SideArrival && len(hist.ArrivalOptions) > 0 {
		options = hist.ArrivalOptions
	}

	var sum domain.DelayBucketSet
	for _, opt := range options {
		weight := float64(opt.FlightsAnalyzed)
		sum.Slight += opt.Buckets.Slight * weight
		sum.Moderate += opt.Buckets.Moderate * weight
		sum.Severe += opt.Buckets.Severe * weight
	}

	total := float64(hist.Overall.TotalFlightsAnalyzed)
	if total > 0 {
		sum.Slight /= total
		sum.Moderate /= total
		sum.Severe /= total
	}

	return sum
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
