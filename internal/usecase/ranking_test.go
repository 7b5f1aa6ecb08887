package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-ranker/route-reliability-system/internal/domain"
)

func candidate(id string, durationMinutes int, price float64, flightNumbers ...string) domain.RouteCandidate {
	return domain.RouteCandidate{
		ID:                     id,
		Origin:                 "AMS",
		Destination:            "LHE",
		Segments:               make([]domain.FlightSegment, len(flightNumbers)),
		OperatingFlightNumbers: flightNumbers,
		TotalDurationMinutes:   durationMinutes,
		Price:                  domain.PriceInfo{Amount: price, Currency: "USD"},
	}
}

func analysisWithScore(flightNumber string, score int) FlightAnalysis {
	fused := domain.NewInsufficientData(flightNumber)
	return FlightAnalysis{
		Fused: fused,
		Score: domain.ReliabilityScore{Value: score, Quality: fused.Quality},
	}
}

func TestSortCandidatesDiscoveryOrder(t *testing.T) {
	candidates := []domain.RouteCandidate{
		candidate("slow-cheap", 900, 500, "PK303"),
		candidate("fast-expensive", 600, 900, "KL1234"),
		candidate("fast-cheap", 600, 500, "EK622"),
	}

	SortCandidates(candidates)

	assert.Equal(t, "fast-cheap", candidates[0].ID)
	assert.Equal(t, "fast-expensive", candidates[1].ID)
	assert.Equal(t, "slow-cheap", candidates[2].ID)
}

func TestSortCandidatesIdenticalDurationPrefersCheaper(t *testing.T) {
	candidates := []domain.RouteCandidate{
		candidate("expensive", 835, 1200, "KL1234"),
		candidate("cheap", 835, 800, "PK303"),
	}

	SortCandidates(candidates)

	assert.Equal(t, "cheap", candidates[0].ID)
}

func TestSortCandidatesFlightNumberTieBreak(t *testing.T) {
	candidates := []domain.RouteCandidate{
		candidate("b", 600, 500, "PK303"),
		candidate("a", 600, 500, "EK622"),
	}

	SortCandidates(candidates)

	assert.Equal(t, "a", candidates[0].ID)
}

func TestRankRoutesAveragesFlightScores(t *testing.T) {
	candidates := []domain.RouteCandidate{
		candidate("one-stop", 900, 700, "KL1234", "PK303"),
	}
	analyses := map[string]FlightAnalysis{
		"KL1234": analysisWithScore("KL1234", 80),
		"PK303":  analysisWithScore("PK303", 61),
	}

	ranked := RankRoutes(candidates, analyses)

	require.Len(t, ranked, 1)
	require.NotNil(t, ranked[0].ReliabilityScore)
	// The mean of 80 and 61 is 70.5, which rounds to 71.
	assert.Equal(t, 71, *ranked[0].ReliabilityScore)
	assert.Len(t, ranked[0].ReliabilityData, 2)
}

func TestRankRoutesMissingReliabilityIsNull(t *testing.T) {
	candidates := []domain.RouteCandidate{
		candidate("unknown", 900, 700, "ZZ999"),
	}

	ranked := RankRoutes(candidates, map[string]FlightAnalysis{})

	require.Len(t, ranked, 1)
	assert.Nil(t, ranked[0].ReliabilityScore)
	assert.Empty(t, ranked[0].ReliabilityData)
	// Reliability contributes 0; price and duration are sole entries so
	// both normalize to 50.
	assert.InDelta(t, 50*0.35+50*0.25, ranked[0].SmartRank, 0.01)
	assert.Equal(t, 1, ranked[0].Rank)
}

func TestRankRoutesSmartRankComposition(t *testing.T) {
	candidates := []domain.RouteCandidate{
		candidate("reliable-slow", 1000, 1000, "KL1234"),
		candidate("shaky-fast", 600, 600, "PK303"),
	}
	analyses := map[string]FlightAnalysis{
		"KL1234": analysisWithScore("KL1234", 90),
		"PK303":  analysisWithScore("PK303", 40),
	}

	ranked := RankRoutes(candidates, analyses)
	require.Len(t, ranked, 2)

	// reliable-slow: 0.40*90 + 0.35*0 + 0.25*0 = 36.
	// shaky-fast:    0.40*40 + 0.35*100 + 0.25*100 = 76.
	assert.Equal(t, "shaky-fast", ranked[0].ID)
	assert.InDelta(t, 76.0, ranked[0].SmartRank, 0.01)
	assert.Equal(t, 1, ranked[0].Rank)

	assert.Equal(t, "reliable-slow", ranked[1].ID)
	assert.InDelta(t, 36.0, ranked[1].SmartRank, 0.01)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankRoutesDenseRanksAndStability(t *testing.T) {
	// Three identical candidates tie on smart rank; the fourth is worse.
	candidates := []domain.RouteCandidate{
		candidate("first", 600, 500, "AA111"),
		candidate("second", 600, 500, "BB222"),
		candidate("third", 600, 500, "CC333"),
		candidate("last", 600, 500, "DD444"),
	}
	analyses := map[string]FlightAnalysis{
		"AA111": analysisWithScore("AA111", 70),
		"BB222": analysisWithScore("BB222", 70),
		"CC333": analysisWithScore("CC333", 70),
		"DD444": analysisWithScore("DD444", 20),
	}

	ranked := RankRoutes(candidates, analyses)
	require.Len(t, ranked, 4)

	// Ties keep input order and share a dense rank.
	assert.Equal(t, []string{"first", "second", "third", "last"},
		[]string{ranked[0].ID, ranked[1].ID, ranked[2].ID, ranked[3].ID})
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 1, ranked[2].Rank)
	assert.Equal(t, 2, ranked[3].Rank)
}

func TestRankRoutesScoresFlightOncePerNumber(t *testing.T) {
	// The same flight number on two routes reuses one analysis entry.
	candidates := []domain.RouteCandidate{
		candidate("direct", 600, 700, "KL1234"),
		candidate("via-hub", 900, 500, "KL1234", "PK303"),
	}
	analyses := map[string]FlightAnalysis{
		"KL1234": analysisWithScore("KL1234", 80),
		"PK303":  analysisWithScore("PK303", 60),
	}

	ranked := RankRoutes(candidates, analyses)
	require.Len(t, ranked, 2)

	for _, r := range ranked {
		require.NotNil(t, r.ReliabilityScore)
		for _, fr := range r.ReliabilityData {
			if fr.FlightNumber == "KL1234" {
				assert.Equal(t, 80, fr.Score)
			}
		}
	}
}

func TestRankRoutesEmptyInput(t *testing.T) {
	ranked := RankRoutes(nil, nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestDelayPercentagePerQuality(t *testing.T) {
	complete := domain.NewComplete("KL1234",
		&domain.CombinedStatistics{OverallDelayPercentage: 22},
		&domain.HistoricalProfile{}, &domain.RecentProfile{})
	require.NotNil(t, delayPercentage(complete))
	assert.InDelta(t, 22.0, *delayPercentage(complete), 0.01)

	missingRecent := domain.NewMissingRecent("KL1234", &domain.HistoricalProfile{
		Overall: domain.HistoricalOverall{DelayedPercentage: 26},
	})
	require.NotNil(t, delayPercentage(missingRecent))
	assert.InDelta(t, 26.0, *delayPercentage(missingRecent), 0.01)

	missingHistorical := domain.NewMissingHistorical("KL1234", &domain.RecentProfile{
		Arrival: &domain.SideStatistics{DelayedPercentage: 15},
	})
	require.NotNil(t, delayPercentage(missingHistorical))
	assert.InDelta(t, 15.0, *delayPercentage(missingHistorical), 0.01)

	assert.Nil(t, delayPercentage(domain.NewInsufficientData("KL1234")))
}
