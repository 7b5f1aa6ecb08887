package usecase

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recentFlightJSON builds one recent-flight record with the given
// scheduled/actual UTC times. Empty actual leaves the observation out.
func recentFlightJSON(depScheduled, depRunway, arrScheduled, arrActual, arrActualKind string) string {
	dep := fmt.Sprintf(`"scheduledTime": {"utc": "%s", "local": "%s"}`, depScheduled, depScheduled)
	if depRunway != "" {
		dep += fmt.Sprintf(`, "runwayTime": {"utc": "%s", "local": "%s"}`, depRunway, depRunway)
	}

	arr := fmt.Sprintf(`"scheduledTime": {"utc": "%s", "local": "%s"}`, arrScheduled, arrScheduled)
	if arrActual != "" {
		arr += fmt.Sprintf(`, "%s": {"utc": "%s", "local": "%s"}`, arrActualKind, arrActual, arrActual)
	}

	return fmt.Sprintf(`{
		"number": "KL1234",
		"status": "Arrived",
		"airline": {"name": "KLM"},
		"departure": {"airport": {"iata": "AMS", "name": "Schiphol"}, %s, "terminal": "2", "gate": "D4"},
		"arrival": {"airport": {"iata": "LHE", "name": "Lahore"}, %s, "terminal": "M"},
		"aircraft": {"model": "Boeing 777-300ER", "reg": "PH-BVA"}
	}`, dep, arr)
}

func TestProcessRecentFlightsBasics(t *testing.T) {
	payload := "[" +
		// 10 minutes late off the runway, 5 minutes late in.
		recentFlightJSON("2026-08-20 09:00", "2026-08-20 09:10", "2026-08-20 17:00", "2026-08-20 17:05", "runwayTime") + "," +
		// 40 minutes late out, 70 late in.
		recentFlightJSON("2026-08-22 09:00", "2026-08-22 09:40", "2026-08-22 17:00", "2026-08-22 18:10", "runwayTime") +
		"]"

	profile := ProcessRecentFlights(json.RawMessage(payload), true)
	require.NotNil(t, profile)

	assert.Equal(t, "KL1234", profile.FlightNumber)
	assert.Equal(t, "KLM", profile.Airline)
	assert.Equal(t, "AMS → LHE", profile.Route)
	assert.Equal(t, 2, profile.TotalFlights)
	assert.Equal(t, "2026-08-20", profile.DateFrom)
	assert.Equal(t, "2026-08-22", profile.DateTo)
	require.Len(t, profile.Flights, 2)

	first := profile.Flights[0]
	assert.Equal(t, "2026-08-20", first.Date)
	assert.Equal(t, "Arrived", first.Status)
	assert.Equal(t, "AMS (Schiphol)", first.Departure.Airport)
	assert.InDelta(t, 10.0, first.Departure.DelayMinutes, 0.01)
	assert.InDelta(t, 5.0, first.Arrival.DelayMinutes, 0.01)
	assert.False(t, first.Arrival.Predicted)
	assert.Equal(t, "Boeing 777-300ER (PH-BVA)", first.Aircraft)

	require.NotNil(t, profile.Departure)
	assert.Equal(t, 2, profile.Departure.SampleCount)
	assert.InDelta(t, 25.0, profile.Departure.AverageDelayMinutes, 0.01)
	assert.InDelta(t, 25.0, profile.Departure.MedianDelayMinutes, 0.01)
	// One on-time (<15), one moderate (30-60).
	assert.InDelta(t, 50.0, profile.Departure.OnTimePercentage, 0.01)
	assert.InDelta(t, 50.0, profile.Departure.DelayedPercentage, 0.01)
	assert.InDelta(t, 50.0, profile.Departure.Buckets.Moderate, 0.01)

	require.NotNil(t, profile.Arrival)
	// One on-time (5 min), one severe (70 min).
	assert.InDelta(t, 50.0, profile.Arrival.Buckets.Severe, 0.01)
	assert.InDelta(t, 100.0, profile.Arrival.Buckets.Sum(), 0.5)
}

func TestProcessRecentFlightsPredictedArrivals(t *testing.T) {
	// Arrival only has a predicted time, 90 minutes late.
	payload := "[" +
		recentFlightJSON("2026-08-21 09:00", "2026-08-21 09:05", "2026-08-21 17:00", "2026-08-21 18:30", "predictedTime") +
		"]"

	withPredictions := ProcessRecentFlights(json.RawMessage(payload), true)
	require.NotNil(t, withPredictions)
	require.Len(t, withPredictions.Flights, 1)
	assert.True(t, withPredictions.Flights[0].Arrival.Predicted)
	require.NotNil(t, withPredictions.Arrival)
	assert.Equal(t, 1, withPredictions.Arrival.SampleCount)
	assert.InDelta(t, 90.0, withPredictions.Arrival.AverageDelayMinutes, 0.01)

	// Excluding predictions drops the sample from the aggregates but the
	// record itself still carries the flagged observation.
	withoutPredictions := ProcessRecentFlights(json.RawMessage(payload), false)
	require.NotNil(t, withoutPredictions)
	assert.Nil(t, withoutPredictions.Arrival)
	require.Len(t, withoutPredictions.Flights, 1)
	assert.True(t, withoutPredictions.Flights[0].Arrival.Predicted)
}

func TestProcessRecentFlightsRevisedFallbackAndFormats(t *testing.T) {
	// Departure has only a revised time, with seconds and a Z suffix.
	record := `{
		"number": "PK303",
		"status": "Departed",
		"airline": {"name": "PIA"},
		"departure": {
			"airport": {"iata": "KHI", "name": "Jinnah"},
			"scheduledTime": {"utc": "2026-08-23 07:00:00Z", "local": "2026-08-23 12:00+05:00"},
			"revisedTime": {"utc": "2026-08-23 07:20:00Z", "local": "2026-08-23 12:20+05:00"}
		},
		"arrival": {
			"airport": {"iata": "LHE", "name": "Lahore"},
			"scheduledTime": {"utc": "2026-08-23 08:45:00Z", "local": "2026-08-23 13:45+05:00"}
		}
	}`

	profile := ProcessRecentFlights(json.RawMessage("["+record+"]"), true)
	require.NotNil(t, profile)

	require.NotNil(t, profile.Departure)
	assert.InDelta(t, 20.0, profile.Departure.AverageDelayMinutes, 0.01)

	// No actual arrival time of any kind: no arrival samples.
	assert.Nil(t, profile.Arrival)
}

func TestProcessRecentFlightsEnvelopeAndSentinels(t *testing.T) {
	record := recentFlightJSON("2026-08-20 09:00", "2026-08-20 09:10", "2026-08-20 17:00", "2026-08-20 17:05", "runwayTime")

	wrapped := ProcessRecentFlights(json.RawMessage(`{"result": [`+record+`]}`), true)
	require.NotNil(t, wrapped)
	assert.Equal(t, 1, wrapped.TotalFlights)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "nil payload", payload: ""},
		{name: "empty list", payload: `[]`},
		{name: "empty sentinel", payload: `{"empty": true, "reason": "rate_limited"}`},
		{name: "envelope without result", payload: `{"timestamp": 123}`},
		{name: "not json", payload: `oops`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ProcessRecentFlights(json.RawMessage(tt.payload), true))
		})
	}
}

func TestProcessRecentFlightsSkipsUnparseableRecords(t *testing.T) {
	good := recentFlightJSON("2026-08-20 09:00", "2026-08-20 09:10", "2026-08-20 17:00", "2026-08-20 17:05", "runwayTime")
	bad := `{"number": "KL1234", "departure": {}, "arrival": {}}`

	profile := ProcessRecentFlights(json.RawMessage("["+good+","+bad+"]"), true)
	require.NotNil(t, profile)

	// The raw count covers everything received; only parseable records
	// make it into the observations.
	assert.Equal(t, 2, profile.TotalFlights)
	assert.Len(t, profile.Flights, 1)
}

func TestCalculateSideStatisticsMedian(t *testing.T) {
	odd := calculateSideStatistics([]float64{0, 10, 70})
	require.NotNil(t, odd)
	assert.InDelta(t, 10.0, odd.MedianDelayMinutes, 0.01)

	even := calculateSideStatistics([]float64{0, 10, 20, 70})
	require.NotNil(t, even)
	assert.InDelta(t, 15.0, even.MedianDelayMinutes, 0.01)

	assert.Nil(t, calculateSideStatistics(nil))
}
