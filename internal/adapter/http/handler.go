// Package http provides the HTTP handler layer for the offer search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-offers/offer-search-service/internal/adapter/http/response"
	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/internal/usecase"
)

// OfferHandler handles HTTP requests for offer search endpoints.
type OfferHandler struct {
	useCase usecase.OfferSearchUseCase
}

// NewOfferHandler creates a new OfferHandler with the given use case.
func NewOfferHandler(uc usecase.OfferSearchUseCase) *OfferHandler {
	return &OfferHandler{
		useCase: uc,
	}
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search for round-trip flight offers
// @Description Search the upstream provider, normalize the results, and return filtered, sorted offers with a 24-hour price trend
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/search [post]
func (h *OfferHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// Locations handles GET /api/v1/locations?q=<keyword>
//
// @Summary Suggest airports and cities
// @Description Look up airport and city suggestions for a search keyword. Keywords shorter than two characters yield an empty list.
// @Tags locations
// @Produce json
// @Param q query string true "Search keyword"
// @Success 200 {array} domain.LocationSuggestion
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/locations [get]
func (h *OfferHandler) Locations(c echo.Context) error {
	query := c.QueryParam("q")

	suggestions, err := h.useCase.SuggestLocations(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, suggestions)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrProviderAuth) {
		return response.ProviderAuthFailed(c)
	}

	if errors.Is(err, domain.ErrProviderUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c)
}
