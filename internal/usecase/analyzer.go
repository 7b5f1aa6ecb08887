package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// AnalyzerConfig tunes the flight analysis pipeline.
type AnalyzerConfig struct {
	// DaysBack is the size of the recent-flights lookback window.
	DaysBack int

	// IncludePredictions admits predicted arrival times into the recent
	// aggregates.
	IncludePredictions bool

	// ProfileTTL bounds how long computed profiles (and empty sentinels)
	// live in the store.
	ProfileTTL time.Duration
}

// FlightAnalysis is the full per-flight outcome: the fused record and
// its score.
type FlightAnalysis struct {
	Fused domain.FusedReliability
	Score domain.ReliabilityScore
}

// FlightAnalyzer produces reliability analyses for individual flight
// numbers, consulting the profile store before the upstream providers
// and writing results (including deliberate empty sentinels) back.
type FlightAnalyzer struct {
	historical domain.HistoricalProvider
	recent     domain.RecentProvider
	store      domain.ProfileStore
	clock      Clock
	cfg        AnalyzerConfig
	log        *logger.Logger
}

// Clock is the minimal time source the use cases need.
type Clock interface {
	Now() time.Time
}

// NewFlightAnalyzer wires a FlightAnalyzer.
func NewFlightAnalyzer(
	historical domain.HistoricalProvider,
	recent domain.RecentProvider,
	store domain.ProfileStore,
	clock Clock,
	cfg AnalyzerConfig,
	log *logger.Logger,
) *FlightAnalyzer {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightAnalyzer{
		historical: historical,
		recent:     recent,
		store:      store,
		clock:      clock,
		cfg:        cfg,
		log:        log,
	}
}

// Analyze computes the fused reliability record and score for one flight
// number. Provider failures degrade the data-quality tag; they never
// fail the analysis.
func (a *FlightAnalyzer) Analyze(ctx context.Context, sess *domain.ProviderSession, flightNumber string) FlightAnalysis {
	hist := a.historicalProfile(ctx, flightNumber)
	recent := a.recentProfile(ctx, sess, flightNumber)

	fused := Combine(flightNumber, hist, recent)
	score := Score(fused)

	a.log.Debug().
		Str("flight_number", flightNumber).
		Str("data_quality", string(fused.Quality)).
		Int("score", score.Value).
		Msg("flight analyzed")

	return FlightAnalysis{Fused: fused, Score: score}
}

func (a *FlightAnalyzer) historicalProfile(ctx context.Context, flightNumber string) *domain.HistoricalProfile {
	key := domain.HistoricalKey(flightNumber)

	if raw, ok := a.store.Get(ctx, key); ok {
		var stored domain.StoredHistorical
		if err := json.Unmarshal(raw, &stored); err == nil {
			if stored.Empty {
				a.log.Debug().Str("flight_number", flightNumber).
					Str("reason", stored.Reason).
					Msg("historical cache hit: empty sentinel")
				return nil
			}
			if stored.Profile != nil {
				return stored.Profile
			}
		}
		// Undecodable entries are treated as misses.
	}

	result := a.historical.FetchDelayStats(ctx, flightNumber)
	switch result.Status {
	case domain.FetchPayload:
		profile := ProcessHistoricalDelayStats(result.Payload)
		if profile == nil {
			a.putSentinelHistorical(ctx, key, domain.ReasonDecodeError)
			return nil
		}
		a.put(ctx, key, domain.StoredHistorical{Profile: profile})
		return profile
	default:
		a.putSentinelHistorical(ctx, key, result.Reason)
		return nil
	}
}

func (a *FlightAnalyzer) recentProfile(ctx context.Context, sess *domain.ProviderSession, flightNumber string) *domain.RecentProfile {
	key := domain.RecentKey(flightNumber, a.clock.Now())

	if raw, ok := a.store.Get(ctx, key); ok {
		var stored domain.StoredRecent
		if err := json.Unmarshal(raw, &stored); err == nil {
			if stored.Empty {
				a.log.Debug().Str("flight_number", flightNumber).
					Str("reason", stored.Reason).
					Msg("recent cache hit: empty sentinel")
				return nil
			}
			if stored.Profile != nil {
				return stored.Profile
			}
		}
	}

	to := a.clock.Now()
	from := to.AddDate(0, 0, -a.cfg.DaysBack)

	result := a.recent.FetchRecentFlights(ctx, flightNumber, from, to, sess)
	switch result.Status {
	case domain.FetchPayload:
		profile := ProcessRecentFlights(result.Payload, a.cfg.IncludePredictions)
		if profile == nil {
			a.putSentinelRecent(ctx, key, domain.ReasonEmptyResult)
			return nil
		}
		a.put(ctx, key, domain.StoredRecent{Profile: profile})
		return profile
	case domain.FetchRateLimited:
		// Sticky for the rest of the session: later flights in the same
		// request skip the upstream call entirely.
		sess.MarkRateLimited()
		a.log.Warn().Str("flight_number", flightNumber).
			Msg("recent flights provider rate limited; degrading to historical data")
		a.putSentinelRecent(ctx, key, domain.ReasonRateLimited)
		return nil
	default:
		a.putSentinelRecent(ctx, key, result.Reason)
		return nil
	}
}

func (a *FlightAnalyzer) putSentinelHistorical(ctx context.Context, key, reason string) {
	a.put(ctx, key, domain.StoredHistorical{Empty: true, Reason: reason})
}

func (a *FlightAnalyzer) putSentinelRecent(ctx context.Context, key, reason string) {
	a.put(ctx, key, domain.StoredRecent{Empty: true, Reason: reason})
}

// put writes through to the store; failures are logged and ignored, the
// store is an optimization rather than a dependency.
func (a *FlightAnalyzer) put(ctx context.Context, key string, value any) {
	if err := a.store.Put(ctx, key, value, a.cfg.ProfileTTL); err != nil {
		a.log.Warn().Err(err).Str("key", key).Msg("profile store write failed")
	}
}
