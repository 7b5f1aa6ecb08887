package amadeus

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
)

// Default price applied when an offer carries no usable price block.
const (
	defaultPriceAmount   = 800.00
	defaultPriceCurrency = "USD"
)

// Wire shapes for the flight-offers search response.

type offerResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	Itineraries []itinerary `json:"itineraries"`
	Price       *offerPrice `json:"price"`
}

type itinerary struct {
	Duration string         `json:"duration"`
	Segments []offerSegment `json:"segments"`
}

type offerSegment struct {
	ID          string         `json:"id"`
	Departure   segmentPoint   `json:"departure"`
	Arrival     segmentPoint   `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Operating   *operatingInfo `json:"operating"`
}

type segmentPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type operatingInfo struct {
	CarrierCode string `json:"carrierCode"`
}

type offerPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// normalizeOffers converts raw flight offers into route candidates.
// Only the outbound itinerary of each offer is considered. Offers with
// a malformed segment are skipped, never fatal to the batch.
func normalizeOffers(offers []flightOffer, criteria domain.SearchCriteria, log *logger.Logger) []domain.RouteCandidate {
	candidates := make([]domain.RouteCandidate, 0, len(offers))

	for _, offer := range offers {
		candidate, err := normalizeOffer(offer, criteria)
		if err != nil {
			log.Warn().Err(err).Msg("skipping flight offer")
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates
}

func normalizeOffer(offer flightOffer, criteria domain.SearchCriteria) (domain.RouteCandidate, error) {
	if len(offer.Itineraries) == 0 {
		return domain.RouteCandidate{}, fmt.Errorf("offer has no itineraries")
	}

	outbound := offer.Itineraries[0]
	if len(outbound.Segments) == 0 {
		return domain.RouteCandidate{}, fmt.Errorf("itinerary has no segments")
	}

	totalMinutes := domain.ParseISODuration(outbound.Duration)

	candidate := domain.RouteCandidate{
		ID:                   uuid.NewString(),
		Origin:               criteria.Origin,
		Destination:          criteria.Destination,
		Date:                 criteria.Date,
		TotalDurationMinutes: totalMinutes,
		FormattedDuration:    domain.FormatMinutes(totalMinutes),
		Price:                normalizePrice(offer.Price),
	}

	lastIdx := len(outbound.Segments) - 1
	for i, seg := range outbound.Segments {
		airline, flightNumber, err := operatingDetails(seg)
		if err != nil {
			return domain.RouteCandidate{}, err
		}
		if seg.Departure.IataCode == "" || seg.Arrival.IataCode == "" {
			return domain.RouteCandidate{}, fmt.Errorf("segment %s missing airport codes", seg.ID)
		}

		candidate.Segments = append(candidate.Segments, domain.FlightSegment{
			OperatingAirline:      airline,
			OperatingFlightNumber: flightNumber,
			DepartureAirport:      seg.Departure.IataCode,
			ArrivalAirport:        seg.Arrival.IataCode,
			DepartureTime:         seg.Departure.At,
			ArrivalTime:           seg.Arrival.At,
		})

		if i == 0 {
			candidate.DepartureTime = seg.Departure.At
		}
		if i == lastIdx {
			candidate.ArrivalTime = seg.Arrival.At
		} else if seg.Arrival.IataCode != "" {
			candidate.ConnectionAirports = append(candidate.ConnectionAirports, seg.Arrival.IataCode)
		}

		if !contains(candidate.OperatingAirlines, airline) {
			candidate.OperatingAirlines = append(candidate.OperatingAirlines, airline)
		}
		if !contains(candidate.OperatingFlightNumbers, flightNumber) {
			candidate.OperatingFlightNumbers = append(candidate.OperatingFlightNumbers, flightNumber)
		}
	}

	return candidate, nil
}

// operatingDetails resolves the carrier actually flying a segment: the
// operating carrier when disclosed, otherwise the marketing carrier. The
// flight number always combines the resolved carrier with the marketing
// number.
func operatingDetails(seg offerSegment) (airline, flightNumber string, err error) {
	if seg.CarrierCode == "" || seg.Number == "" {
		return "", "", fmt.Errorf("segment %s missing carrier code or number", seg.ID)
	}

	airline = seg.CarrierCode
	if seg.Operating != nil && seg.Operating.CarrierCode != "" {
		airline = seg.Operating.CarrierCode
	}

	return airline, airline + seg.Number, nil
}

// normalizePrice extracts the offer price, falling back to a fixed
// default when the block is absent or unparseable.
func normalizePrice(price *offerPrice) domain.PriceInfo {
	out := domain.PriceInfo{Amount: defaultPriceAmount, Currency: defaultPriceCurrency}
	if price == nil {
		return out
	}

	if price.Currency != "" {
		out.Currency = price.Currency
	}
	if amount, err := strconv.ParseFloat(price.Total, 64); err == nil {
		out.Amount = amount
	}

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
