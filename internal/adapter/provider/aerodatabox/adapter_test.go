package aerodatabox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		APIHost:           "aerodatabox.p.rapidapi.com",
		RequestsPerSecond: 1000,
		Burst:             1000,
	}, logger.Nop())
}

func TestFetchDelayStats(t *testing.T) {
	var gotPath, gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"number":"KL1234","origins":[],"destinations":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	result := client.FetchDelayStats(context.Background(), "KL1234")

	assert.Equal(t, "/flights/KL1234/delays", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "aerodatabox.p.rapidapi.com", gotHost)
	assert.Equal(t, domain.FetchPayload, result.Status)
	assert.JSONEq(t, `{"number":"KL1234","origins":[],"destinations":[]}`, string(result.Payload))
}

func TestFetchRecentFlightsURL(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	sess := domain.NewProviderSession()
	from := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	result := client.FetchRecentFlights(context.Background(), "KL1234", from, to, sess)

	assert.Equal(t, "/flights/number/KL1234/2026-08-14/2026-08-28", gotPath)
	assert.Equal(t, "dateLocalRole=Both", gotQuery)
	assert.Equal(t, domain.FetchPayload, result.Status)
	assert.False(t, sess.RateLimited())
}

func TestFetchStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus domain.FetchStatus
		wantReason string
	}{
		{
			name:       "204 means no data for flight",
			status:     http.StatusNoContent,
			wantStatus: domain.FetchAbsent,
			wantReason: domain.ReasonNoContent,
		},
		{
			name:       "500 degrades to absent",
			status:     http.StatusInternalServerError,
			wantStatus: domain.FetchAbsent,
			wantReason: domain.ReasonHTTPError,
		},
		{
			name:       "404 degrades to absent",
			status:     http.StatusNotFound,
			wantStatus: domain.FetchAbsent,
			wantReason: domain.ReasonHTTPError,
		},
		{
			name:       "empty 200 body",
			status:     http.StatusOK,
			body:       "",
			wantStatus: domain.FetchAbsent,
			wantReason: domain.ReasonEmptyResult,
		},
		{
			name:       "429 is rate limited",
			status:     http.StatusTooManyRequests,
			wantStatus: domain.FetchRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			}))
			t.Cleanup(srv.Close)

			result := newTestClient(srv).FetchDelayStats(context.Background(), "KL1234")

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	result := newTestClient(srv).FetchDelayStats(context.Background(), "KL1234")

	assert.Equal(t, domain.FetchAbsent, result.Status)
	assert.Equal(t, domain.ReasonTransportError, result.Reason)
}

func TestFetchRecentFlightsMarksSessionOn429(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	sess := domain.NewProviderSession()

	result := client.FetchRecentFlights(context.Background(), "KL1234",
		time.Now().AddDate(0, 0, -14), time.Now(), sess)

	assert.Equal(t, domain.FetchRateLimited, result.Status)
	assert.True(t, sess.RateLimited())
}

func TestFetchRecentFlightsSkipsMarkedSession(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	sess := domain.NewProviderSession()
	sess.MarkRateLimited()

	result := client.FetchRecentFlights(context.Background(), "KL1234",
		time.Now().AddDate(0, 0, -14), time.Now(), sess)

	assert.Equal(t, domain.FetchRateLimited, result.Status)
	assert.Zero(t, calls)
}

func TestFetchHistoricalNeverTouchesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	// Historical lookups have no session; a 429 there still surfaces as
	// rate limited so the caller caches the absence.
	result := newTestClient(srv).FetchDelayStats(context.Background(), "KL1234")
	assert.Equal(t, domain.FetchRateLimited, result.Status)
}

func TestFetchContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestClient(srv).FetchDelayStats(ctx, "KL1234")

	assert.Equal(t, domain.FetchAbsent, result.Status)
	assert.Equal(t, domain.ReasonTransportError, result.Reason)
}
