package http

import (
	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/usecase"
)

// FlightReliabilityDTO is the response body for a single-flight
// reliability lookup. Profile sections are omitted when the underlying
// data source had nothing for the flight.
type FlightReliabilityDTO struct {
	FlightNumber     string             `json:"flight_number"`
	ReliabilityScore int                `json:"reliability_score"`
	DataQuality      domain.DataQuality `json:"data_quality"`

	Combined   *domain.CombinedStatistics `json:"combined_statistics,omitempty"`
	Historical *domain.HistoricalProfile  `json:"historical,omitempty"`
	Recent     *domain.RecentProfile      `json:"recent,omitempty"`
}

// ToFlightReliabilityDTO converts a flight analysis to its response form.
func ToFlightReliabilityDTO(analysis usecase.FlightAnalysis) *FlightReliabilityDTO {
	return &FlightReliabilityDTO{
		FlightNumber:     analysis.Fused.FlightNumber,
		ReliabilityScore: analysis.Score.Value,
		DataQuality:      analysis.Fused.Quality,
		Combined:         analysis.Fused.Combined,
		Historical:       analysis.Fused.Historical,
		Recent:           analysis.Fused.Recent,
	}
}
