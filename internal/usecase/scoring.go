package usecase

import (
	"math"
	"sort"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// Confidence bounds applied per data-quality variant. A score computed
// from partial data is clamped so it can never outrank a well-evidenced
// complete score, and never falls below the variant's floor.
const (
	neutralScore = 50

	recentOnlyBaseSmall = 60
	recentOnlyBase      = 70
	recentOnlyCap       = 85
	recentOnlySampleMin = 3

	historicalArrivalCap   = 90
	historicalDepartureCap = 85
	historicalCoarseArrCap = 85
	historicalCoarseDepCap = 80
	completeFloor          = 10
)

// Score converts a fused reliability record into a 0-100 score. Every
// variant yields a score; absence of data maps to the neutral 50, never
// to zero.
func Score(fused domain.FusedReliability) domain.ReliabilityScore {
	var value int

	switch fused.Quality {
	case domain.QualityComplete:
		value = scoreComplete(fused.Combined)
	case domain.QualityMissingRecent:
		value = scoreFromHistorical(fused.Historical)
	case domain.QualityMissingHistorical:
		value = scoreFromRecent(fused.Recent)
	default:
		value = neutralScore
	}

	return domain.ReliabilityScore{Value: value, Quality: fused.Quality}
}

func scoreComplete(combined *domain.CombinedStatistics) int {
	if combined == nil {
		return neutralScore
	}

	onTime := 100 - combined.OverallDelayPercentage
	penalty := severityPenalty(combined.Buckets, 0.3, 1.0, 2.5)
	raw := onTime - penalty*10

	return clip(raw, completeFloor, 100)
}

// scoreFromRecent handles the missing-historical variant: recent
// observations only, with a confidence cap and a sample-size-dependent
// floor.
func scoreFromRecent(recent *domain.RecentProfile) int {
	if recent == nil {
		return recentOnlyBaseSmall
	}

	stats := recent.Arrival
	if stats == nil {
		stats = recent.Departure
	}
	if stats == nil {
		return recentOnlyBaseSmall
	}

	numFlights := len(recent.Flights)
	if numFlights == 0 {
		numFlights = recent.TotalFlights
	}

	base := recentOnlyBase
	if numFlights < recentOnlySampleMin {
		base = recentOnlyBaseSmall
	}

	onTime := 100 - stats.DelayedPercentage
	penalty := severityPenalty(stats.Buckets, 0.3, 1.0, 2.5)
	raw := onTime - penalty*10

	return clip(raw, base, recentOnlyCap)
}

// scoreFromHistorical handles the missing-recent variant: historical
// aggregates only, with stiffer severity penalties and caps that reward
// arrival-side detail over departure-side or coarse aggregates.
func scoreFromHistorical(hist *domain.HistoricalProfile) int {
	if hist == nil {
		return neutralScore
	}

	overall := hist.Overall
	onTime := 100 - overall.DelayedPercentage

	options := hist.DepartureOptions
	scoreCap := historicalDepartureCap
	if overall.Side == domain.SideArrival && len(hist.ArrivalOptions) > 0 {
		options = hist.ArrivalOptions
		scoreCap = historicalArrivalCap
	}

	if len(options) == 0 {
		// Coarse overall-only path.
		coarseCap := historicalCoarseDepCap
		if overall.Side == domain.SideArrival {
			coarseCap = historicalCoarseArrCap
		}
		return clip(onTime, 0, coarseCap)
	}

	latest := mostRecentOption(options)
	penalty := severityPenalty(latest.Buckets, 0.5, 1.5, 3)
	raw := onTime - penalty*10

	return clip(raw, 0, scoreCap)
}

// mostRecentOption returns the group whose observation window ends
// latest. The sort is stable so equally-dated groups keep payload order.
func mostRecentOption(options []domain.HistoricalOptionGroup) domain.HistoricalOptionGroup {
	sorted := make([]domain.HistoricalOptionGroup, len(options))
	copy(sorted, options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateTo > sorted[j].DateTo
	})
	return sorted[0]
}

func severityPenalty(buckets domain.DelayBucketSet, slightW, moderateW, severeW float64) float64 {
	return (buckets.Slight*slightW + buckets.Moderate*moderateW + buckets.Severe*severeW) / 100
}

// clip rounds to the nearest integer and clamps into [lo, hi].
func clip(v float64, lo, hi int) int {
	r := int(math.Round(v))
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}
