// Package integration provides helpers and integration tests for the route
// ranking system. Integration tests exercise the full pipeline: HTTP
// handlers, use cases, the profile store, and provider doubles.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/route-ranker/route-reliability-system/internal/adapter/http"
	"github.com/route-ranker/route-reliability-system/internal/adapter/store/memstore"
	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/timeutil"
	"github.com/route-ranker/route-reliability-system/internal/usecase"
	"github.com/route-ranker/route-reliability-system/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.RouteHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.RouteRankingUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewRouteHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RankRequest posts a ranking request with the given body.
func (ts *TestServer) RankRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/routes/rank",
		Body:   body,
	})
}

// ReliabilityRequest looks up a single flight's reliability.
func (ts *TestServer) ReliabilityRequest(flightNumber string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/flights/" + flightNumber + "/reliability",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseRankingResponse parses the response body as a RankingResponse.
func (r *Response) ParseRankingResponse() (*domain.RankingResponse, error) {
	var resp domain.RankingResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseReliabilityResponse parses the response body as a flight
// reliability DTO.
func (r *Response) ParseReliabilityResponse() (*httpAdapter.FlightReliabilityDTO, error) {
	var resp httpAdapter.FlightReliabilityDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// RankRequestBody is a helper struct for building ranking request bodies.
type RankRequestBody struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date,omitempty"`
	MaxRoutes      int    `json:"maxRoutes,omitempty"`
	MaxConnections int    `json:"maxConnections,omitempty"`
}

// DefaultRankRequest returns a valid ranking request body for testing.
// Uses a date 30 days in the future.
func DefaultRankRequest() RankRequestBody {
	return RankRequestBody{
		Origin:      "AMS",
		Destination: "LHE",
		Date:        FutureDate(),
	}
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD
// format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006-01-02")
}

// Stack bundles a fully wired ranking pipeline backed by test doubles,
// exposing the pieces tests need to inspect or manipulate.
type Stack struct {
	UseCase usecase.RouteRankingUseCase
	Routes  *mock.RouteProvider
	Delays  *mock.DelayProvider
	Store   *memstore.Store
	Clock   *timeutil.MockClock
}

// StackOption mutates the analyzer configuration before wiring.
type StackOption func(*usecase.AnalyzerConfig)

// WithPredictions admits predicted arrival times into recent aggregates.
func WithPredictions() StackOption {
	return func(cfg *usecase.AnalyzerConfig) {
		cfg.IncludePredictions = true
	}
}

// WithDaysBack overrides the recent-flights lookback window.
func WithDaysBack(days int) StackOption {
	return func(cfg *usecase.AnalyzerConfig) {
		cfg.DaysBack = days
	}
}

// NewStack wires a complete use case around the given provider doubles,
// an in-memory store, and a fixed clock.
func NewStack(routes *mock.RouteProvider, delays *mock.DelayProvider, opts ...StackOption) *Stack {
	clock := timeutil.NewMockClockFromString("2026-08-28T12:00:00Z")
	store := memstore.New()

	cfg := usecase.AnalyzerConfig{
		DaysBack:   7,
		ProfileTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	analyzer := usecase.NewFlightAnalyzer(delays, delays, store, clock, cfg, nil)
	uc := usecase.NewRouteRankingUseCase(routes, analyzer, store, clock, 30*24*time.Hour, nil)

	return &Stack{
		UseCase: uc,
		Routes:  routes,
		Delays:  delays,
		Store:   store,
		Clock:   clock,
	}
}

// DefaultSearchCriteria returns a valid search criteria for driving the
// use case directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:      "AMS",
		Destination: "LHE",
		Date:        FutureDate(),
	}
}
