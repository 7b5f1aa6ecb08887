package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/test/mock"
)

func TestRankEndpointSuccess(t *testing.T) {
	stack := fullStack(t)
	ts := NewTestServer(stack.UseCase)

	resp := ts.RankRequest(DefaultRankRequest())
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseRankingResponse()
	require.NoError(t, err)

	assert.Equal(t, "AMS", result.Query.Origin)
	assert.Equal(t, "LHE", result.Query.Destination)
	assert.Equal(t, 3, result.Count)
	assert.False(t, result.CacheHit)
	require.Len(t, result.Routes, 3)
	assert.Equal(t, []string{"KL1234"}, result.Routes[0].OperatingFlightNumbers)
	assert.Equal(t, 1, result.Routes[0].Rank)
	require.NotNil(t, result.Routes[0].ReliabilityScore)
	assert.Equal(t, 83, *result.Routes[0].ReliabilityScore)
}

func TestRankEndpointNormalizesAirportCodes(t *testing.T) {
	stack := fullStack(t)
	ts := NewTestServer(stack.UseCase)

	body := DefaultRankRequest()
	body.Origin = "ams"
	body.Destination = "lhe"

	resp := ts.RankRequest(body)
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseRankingResponse()
	require.NoError(t, err)
	assert.Equal(t, "AMS", result.Query.Origin)
	assert.Equal(t, "LHE", result.Query.Destination)
}

func TestRankEndpointSecondRequestHitsCache(t *testing.T) {
	stack := fullStack(t)
	ts := NewTestServer(stack.UseCase)

	first := ts.RankRequest(DefaultRankRequest())
	require.Equal(t, http.StatusOK, first.Code)

	second := ts.RankRequest(DefaultRankRequest())
	require.Equal(t, http.StatusOK, second.Code)

	result, err := second.ParseRankingResponse()
	require.NoError(t, err)
	assert.True(t, result.CacheHit)
	assert.Equal(t, 1, stack.Routes.CallCount())
}

func TestRankEndpointValidationError(t *testing.T) {
	stack := fullStack(t)
	ts := NewTestServer(stack.UseCase)

	tests := []struct {
		name string
		body RankRequestBody
	}{
		{
			name: "missing origin",
			body: RankRequestBody{Destination: "LHE"},
		},
		{
			name: "same origin and destination",
			body: RankRequestBody{Origin: "AMS", Destination: "AMS"},
		},
		{
			name: "bad airport code",
			body: RankRequestBody{Origin: "AMST", Destination: "LHE"},
		},
		{
			name: "bad date format",
			body: RankRequestBody{Origin: "AMS", Destination: "LHE", Date: "25-09-2026"},
		},
		{
			name: "too many routes",
			body: RankRequestBody{Origin: "AMS", Destination: "LHE", MaxRoutes: 21},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.RankRequest(tt.body)
			require.Equal(t, http.StatusBadRequest, resp.Code)

			errResp, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, "validation_error", errResp["code"])
		})
	}

	assert.Equal(t, 0, stack.Routes.CallCount())
}

func TestRankEndpointMalformedBody(t *testing.T) {
	stack := fullStack(t)
	ts := NewTestServer(stack.UseCase)

	resp := ts.Do(Request{
		Method:      http.MethodPost,
		Path:        "/api/v1/routes/rank",
		Body:        "{not json",
		ContentType: "application/json",
	})

	// The body marshals to a JSON string, which cannot bind to the
	// request struct.
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_request", errResp["code"])
}

func TestRankEndpointUpstreamUnavailable(t *testing.T) {
	routes := mock.NewRouteProvider().WithError(domain.ErrUpstreamUnavailable)
	stack := NewStack(routes, mock.NewDelayProvider())
	ts := NewTestServer(stack.UseCase)

	resp := ts.RankRequest(DefaultRankRequest())
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "service_unavailable", errResp["code"])
}

func TestReliabilityEndpointSuccess(t *testing.T) {
	stack := fullStack(t)
	ts := NewTestServer(stack.UseCase)

	resp := ts.ReliabilityRequest("kl1234")
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseReliabilityResponse()
	require.NoError(t, err)

	assert.Equal(t, "KL1234", result.FlightNumber)
	assert.Equal(t, 83, result.ReliabilityScore)
	assert.Equal(t, domain.QualityComplete, result.DataQuality)
	assert.NotNil(t, result.Combined)
	assert.NotNil(t, result.Historical)
	assert.NotNil(t, result.Recent)
}

func TestReliabilityEndpointNoData(t *testing.T) {
	stack := NewStack(mock.NewRouteProvider(), mock.NewDelayProvider())
	ts := NewTestServer(stack.UseCase)

	resp := ts.ReliabilityRequest("XY999")
	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseReliabilityResponse()
	require.NoError(t, err)

	assert.Equal(t, "XY999", result.FlightNumber)
	assert.Equal(t, 50, result.ReliabilityScore)
	assert.Equal(t, domain.QualityInsufficientData, result.DataQuality)
	assert.Nil(t, result.Combined)
	assert.Nil(t, result.Historical)
	assert.Nil(t, result.Recent)
}

func TestReliabilityEndpointInvalidNumber(t *testing.T) {
	stack := NewStack(mock.NewRouteProvider(), mock.NewDelayProvider())
	ts := NewTestServer(stack.UseCase)

	resp := ts.ReliabilityRequest("bogus--1")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_request", errResp["code"])
	assert.Equal(t, 0, stack.Delays.HistoricalCalls())
}

func TestHealthEndpoint(t *testing.T) {
	stack := NewStack(mock.NewRouteProvider(), mock.NewDelayProvider())
	ts := NewTestServer(stack.UseCase)

	resp := ts.HealthRequest()
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), "ok")
}
