package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-ranker/route-reliability-system/internal/adapter/http/response"
	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/usecase"
)

// stubUseCase implements usecase.RouteRankingUseCase with swappable
// behavior per test.
type stubUseCase struct {
	rankFn    func(ctx context.Context, criteria domain.SearchCriteria) (*domain.RankingResponse, error)
	analyzeFn func(ctx context.Context, flightNumber string) usecase.FlightAnalysis
}

func (s *stubUseCase) RankRoutes(ctx context.Context, criteria domain.SearchCriteria) (*domain.RankingResponse, error) {
	return s.rankFn(ctx, criteria)
}

func (s *stubUseCase) AnalyzeFlight(ctx context.Context, flightNumber string) usecase.FlightAnalysis {
	return s.analyzeFn(ctx, flightNumber)
}

func performRequest(h *RouteHandler, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	RegisterRoutes(e, h)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRankRoutesSuccess(t *testing.T) {
	var gotCriteria domain.SearchCriteria
	uc := &stubUseCase{
		rankFn: func(_ context.Context, criteria domain.SearchCriteria) (*domain.RankingResponse, error) {
			gotCriteria = criteria
			return &domain.RankingResponse{
				Query: domain.RankingQuery{
					Origin: criteria.Origin, Destination: criteria.Destination,
					Date: "2026-09-25", MaxRoutes: 5, MaxConnections: 2,
				},
				Routes: []domain.RankedRoute{},
				Count:  0,
			}, nil
		},
	}

	rec := performRequest(NewRouteHandler(uc), http.MethodPost, "/api/v1/routes/rank",
		`{"origin":"ams","destination":"lhe"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AMS", gotCriteria.Origin)
	assert.Equal(t, "LHE", gotCriteria.Destination)

	var resp domain.RankingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AMS", resp.Query.Origin)
}

func TestRankRoutesMalformedBody(t *testing.T) {
	uc := &stubUseCase{
		rankFn: func(context.Context, domain.SearchCriteria) (*domain.RankingResponse, error) {
			t.Fatal("use case must not run for a malformed body")
			return nil, nil
		},
	}

	rec := performRequest(NewRouteHandler(uc), http.MethodPost, "/api/v1/routes/rank", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestRankRoutesValidationFailure(t *testing.T) {
	uc := &stubUseCase{
		rankFn: func(context.Context, domain.SearchCriteria) (*domain.RankingResponse, error) {
			t.Fatal("use case must not run for an invalid request")
			return nil, nil
		},
	}

	rec := performRequest(NewRouteHandler(uc), http.MethodPost, "/api/v1/routes/rank",
		`{"origin":"AMS","destination":"AMS"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "destination")
}

func TestRankRoutesErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "upstream unavailable maps to 503",
			err:        domain.NewUpstreamError("amadeus", domain.ReasonTransportError, assert.AnError),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "rate limited maps to 503",
			err:        domain.NewUpstreamError("amadeus", domain.ReasonRateLimited, nil),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancellation maps to 504",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "unexpected error maps to 500",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{
				rankFn: func(context.Context, domain.SearchCriteria) (*domain.RankingResponse, error) {
					return nil, tt.err
				},
			}

			rec := performRequest(NewRouteHandler(uc), http.MethodPost, "/api/v1/routes/rank",
				`{"origin":"AMS","destination":"LHE"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestFlightReliabilitySuccess(t *testing.T) {
	var gotNumber string
	uc := &stubUseCase{
		analyzeFn: func(_ context.Context, flightNumber string) usecase.FlightAnalysis {
			gotNumber = flightNumber
			fused := domain.NewInsufficientData(flightNumber)
			return usecase.FlightAnalysis{
				Fused: fused,
				Score: domain.ReliabilityScore{Value: 50, Quality: fused.Quality},
			}
		},
	}

	rec := performRequest(NewRouteHandler(uc), http.MethodGet, "/api/v1/flights/kl1234/reliability", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "KL1234", gotNumber)

	var dto FlightReliabilityDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "KL1234", dto.FlightNumber)
	assert.Equal(t, 50, dto.ReliabilityScore)
	assert.Equal(t, domain.QualityInsufficientData, dto.DataQuality)
	assert.Nil(t, dto.Combined)
}

func TestFlightReliabilityInvalidNumber(t *testing.T) {
	uc := &stubUseCase{
		analyzeFn: func(context.Context, string) usecase.FlightAnalysis {
			t.Fatal("analysis must not run for an invalid flight number")
			return usecase.FlightAnalysis{}
		},
	}

	rec := performRequest(NewRouteHandler(uc), http.MethodGet, "/api/v1/flights/bogus--1/reliability", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	rec := performRequest(NewRouteHandler(&stubUseCase{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
