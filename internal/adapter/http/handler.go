// Package http provides the HTTP handler layer for the route ranking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/route-ranker/route-reliability-system/internal/adapter/http/response"
	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/usecase"
)

// RouteHandler handles HTTP requests for route ranking endpoints.
type RouteHandler struct {
	useCase usecase.RouteRankingUseCase
}

// NewRouteHandler creates a new RouteHandler with the given use case.
func NewRouteHandler(uc usecase.RouteRankingUseCase) *RouteHandler {
	return &RouteHandler{
		useCase: uc,
	}
}

// RankRoutes handles POST /api/v1/routes/rank
//
// @Summary Rank routes between two airports
// @Description Discover route candidates and rank them by reliability, price, and duration
// @Tags routes
// @Accept json
// @Produce json
// @Param request body RankRoutesRequest true "Ranking criteria"
// @Success 200 {object} domain.RankingResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Route provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/routes/rank [post]
func (h *RouteHandler) RankRoutes(c echo.Context) error {
	var req RankRoutesRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	// Validate request
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Call use case with request context
	result, err := h.useCase.RankRoutes(c.Request().Context(), ToDomainCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// FlightReliability handles GET /api/v1/flights/:number/reliability
//
// @Summary Look up one flight's reliability
// @Description Analyze a single flight number's delay history and recent performance
// @Tags flights
// @Produce json
// @Param number path string true "Flight number (e.g. KL1234)"
// @Success 200 {object} FlightReliabilityDTO
// @Failure 400 {object} response.ErrorDetail "Invalid flight number"
// @Router /api/v1/flights/{number}/reliability [get]
func (h *RouteHandler) FlightReliability(c echo.Context) error {
	flightNumber, ok := ValidateFlightNumber(c.Param("number"))
	if !ok {
		return response.BadRequest(c, "flight number must be an airline code followed by 1-4 digits")
	}

	// Analysis never fails: missing data degrades to a neutral score.
	analysis := h.useCase.AnalyzeFlight(c.Request().Context(), flightNumber)

	return response.OK(c, ToFlightReliabilityDTO(analysis))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *RouteHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *RouteHandler) handleError(c echo.Context, err error) error {
	// Route discovery has no fallback: a failed search is a 503.
	if errors.Is(err, domain.ErrUpstreamUnavailable) || errors.Is(err, domain.ErrRateLimited) {
		return response.ServiceUnavailable(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *RouteHandler) Health(c echo.Context) error {
	return response.Health(c)
}
