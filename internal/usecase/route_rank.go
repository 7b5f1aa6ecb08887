package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// defaultDateOffsetDays is how far ahead the search date defaults when
// the request omits one.
const defaultDateOffsetDays = 28

// RouteRankingUseCase is the application entrypoint for the ranking
// pipeline and single-flight analysis.
type RouteRankingUseCase interface {
	// RankRoutes discovers route candidates, analyzes every distinct
	// flight on them, and returns the candidates ranked by smart rank.
	RankRoutes(ctx context.Context, criteria domain.SearchCriteria) (*domain.RankingResponse, error)

	// AnalyzeFlight runs the reliability pipeline for one flight number.
	AnalyzeFlight(ctx context.Context, flightNumber string) FlightAnalysis
}

type routeRankingUseCase struct {
	routes   domain.RouteProvider
	analyzer *FlightAnalyzer
	store    domain.ProfileStore
	clock    Clock
	routeTTL time.Duration
	log      *logger.Logger
}

// NewRouteRankingUseCase wires the ranking pipeline.
func NewRouteRankingUseCase(
	routes domain.RouteProvider,
	analyzer *FlightAnalyzer,
	store domain.ProfileStore,
	clock Clock,
	routeTTL time.Duration,
	log *logger.Logger,
) RouteRankingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &routeRankingUseCase{
		routes:   routes,
		analyzer: analyzer,
		store:    store,
		clock:    clock,
		routeTTL: routeTTL,
		log:      log,
	}
}

func (uc *routeRankingUseCase) RankRoutes(ctx context.Context, criteria domain.SearchCriteria) (*domain.RankingResponse, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	if criteria.Date == "" {
		criteria.Date = uc.clock.Now().AddDate(0, 0, defaultDateOffsetDays).Format("2006-01-02")
		uc.log.Debug().Str("date", criteria.Date).Msg("no travel date given, defaulting")
	}

	candidates, cacheHit, err := uc.routeCandidates(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("route search %s-%s: %w", criteria.Origin, criteria.Destination, err)
	}

	if len(candidates) > criteria.MaxRoutes {
		candidates = candidates[:criteria.MaxRoutes]
	}

	// One provider session per request: a rate-limit signal on any
	// flight suppresses recent-flight fetches for the rest of them.
	sess := domain.NewProviderSession()
	analyses := make(map[string]FlightAnalysis)
	for _, c := range candidates {
		for _, flightNumber := range c.OperatingFlightNumbers {
			if _, done := analyses[flightNumber]; done {
				continue
			}
			analyses[flightNumber] = uc.analyzer.Analyze(ctx, sess, flightNumber)
		}
	}

	ranked := RankRoutes(candidates, analyses)

	uc.log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("date", criteria.Date).
		Int("routes", len(ranked)).
		Int("flights_analyzed", len(analyses)).
		Bool("cache_hit", cacheHit).
		Msg("route ranking complete")

	return &domain.RankingResponse{
		Query: domain.RankingQuery{
			Origin:         criteria.Origin,
			Destination:    criteria.Destination,
			Date:           criteria.Date,
			MaxRoutes:      criteria.MaxRoutes,
			MaxConnections: criteria.MaxConnections,
		},
		Routes:      ranked,
		Count:       len(ranked),
		RetrievedAt: uc.clock.Now().UTC().Format(time.RFC3339),
		CacheHit:    cacheHit,
	}, nil
}

func (uc *routeRankingUseCase) AnalyzeFlight(ctx context.Context, flightNumber string) FlightAnalysis {
	return uc.analyzer.Analyze(ctx, domain.NewProviderSession(), flightNumber)
}

// routeCandidates consults the store first; on a miss the provider is
// queried and the sorted candidate set written back.
func (uc *routeRankingUseCase) routeCandidates(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RouteCandidate, bool, error) {
	key := domain.RouteKey(criteria.Origin, criteria.Destination, criteria.Date)

	if raw, ok := uc.store.Get(ctx, key); ok {
		var stored domain.StoredRoutes
		if err := json.Unmarshal(raw, &stored); err == nil {
			return stored.Routes, true, nil
		}
	}

	candidates, err := uc.routes.Search(ctx, criteria)
	if err != nil {
		return nil, false, err
	}

	SortCandidates(candidates)

	stored := domain.StoredRoutes{
		Routes:      candidates,
		RetrievedAt: uc.clock.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.store.Put(ctx, key, stored, uc.routeTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("route cache write failed")
	}

	return candidates, false, nil
}
