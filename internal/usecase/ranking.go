package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

// Smart-rank component weights. Reliability dominates, then price, then
// duration.
const (
	weightReliability = 0.40
	weightPrice       = 0.35
	weightDuration    = 0.25
)

// SortCandidates orders discovered route candidates deterministically:
// shorter itineraries first, then cheaper, then by joined flight numbers
// so equal offers always serialize in the same order.
func SortCandidates(candidates []domain.RouteCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalDurationMinutes != b.TotalDurationMinutes {
			return a.TotalDurationMinutes < b.TotalDurationMinutes
		}
		if a.Price.Amount != b.Price.Amount {
			return a.Price.Amount < b.Price.Amount
		}
		return joinedFlightNumbers(a) < joinedFlightNumbers(b)
	})
}

func joinedFlightNumbers(c domain.RouteCandidate) string {
	return strings.Join(c.OperatingFlightNumbers, ",")
}

// RankRoutes attaches reliability to each candidate, computes the smart
// rank from reliability, price, and duration, and assigns dense 1-based
// ranks in descending smart-rank order. Price and duration are scored
// relative to the candidate set: the cheapest (shortest) gets 100, the
// most expensive (longest) 0, and a zero spread maps everything to 50.
func RankRoutes(candidates []domain.RouteCandidate, analyses map[string]FlightAnalysis) []domain.RankedRoute {
	if len(candidates) == 0 {
		return []domain.RankedRoute{}
	}

	minPrice, maxPrice := priceRange(candidates)
	minDur, maxDur := durationRange(candidates)

	ranked := make([]domain.RankedRoute, 0, len(candidates))
	for _, c := range candidates {
		route := domain.RankedRoute{RouteCandidate: c}

		var scoreSum int
		var scoreCount int
		for _, flightNumber := range c.OperatingFlightNumbers {
			analysis, ok := analyses[flightNumber]
			if !ok {
				continue
			}
			scoreSum += analysis.Score.Value
			scoreCount++
			route.ReliabilityData = append(route.ReliabilityData, domain.FlightReliability{
				FlightNumber:    flightNumber,
				Score:           analysis.Score.Value,
				DelayPercentage: delayPercentage(analysis.Fused),
				Quality:         analysis.Fused.Quality,
			})
		}

		if scoreCount > 0 {
			avg := int(math.Round(float64(scoreSum) / float64(scoreCount)))
			route.ReliabilityScore = &avg
		}

		reliability := 0.0
		if route.ReliabilityScore != nil {
			reliability = float64(*route.ReliabilityScore)
		}
		priceScore := normalizeDescending(c.Price.Amount, minPrice, maxPrice)
		durationScore := normalizeDescending(float64(c.TotalDurationMinutes), minDur, maxDur)

		route.SmartRank = round1(reliability*weightReliability + priceScore*weightPrice + durationScore*weightDuration)
		ranked = append(ranked, route)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SmartRank > ranked[j].SmartRank
	})

	rank := 1
	for i := range ranked {
		if i > 0 && ranked[i].SmartRank != ranked[i-1].SmartRank {
			rank++
		}
		ranked[i].Rank = rank
	}

	return ranked
}

// delayPercentage picks the headline delay metric for one fused record,
// or nil when there is none.
func delayPercentage(fused domain.FusedReliability) *float64 {
	switch fused.Quality {
	case domain.QualityComplete:
		v := fused.Combined.OverallDelayPercentage
		return &v
	case domain.QualityMissingHistorical:
		stats := fused.Recent.Arrival
		if stats == nil {
			stats = fused.Recent.Departure
		}
		if stats == nil {
			return nil
		}
		v := stats.DelayedPercentage
		return &v
	case domain.QualityMissingRecent:
		v := fused.Historical.Overall.DelayedPercentage
		return &v
	default:
		return nil
	}
}

func priceRange(candidates []domain.RouteCandidate) (min, max float64) {
	min, max = candidates[0].Price.Amount, candidates[0].Price.Amount
	for _, c := range candidates[1:] {
		if c.Price.Amount < min {
			min = c.Price.Amount
		}
		if c.Price.Amount > max {
			max = c.Price.Amount
		}
	}
	return min, max
}

func durationRange(candidates []domain.RouteCandidate) (min, max float64) {
	min, max = float64(candidates[0].TotalDurationMinutes), float64(candidates[0].TotalDurationMinutes)
	for _, c := range candidates[1:] {
		d := float64(c.TotalDurationMinutes)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// normalizeDescending maps v in [min, max] to [100, 0]; lower is better.
func normalizeDescending(v, min, max float64) float64 {
	if max == min {
		return 50
	}
	return 100 - (v-min)/(max-min)*100
}
