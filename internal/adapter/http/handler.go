// Package http provides the HTTP handler layer for the flight deal API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flightfinder/flightfinder/internal/adapter/http/response"
	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/export"
	"github.com/flightfinder/flightfinder/internal/usecase"
)

// Handler handles HTTP requests for the flight deal API.
type Handler struct {
	search     usecase.SearchUseCase
	skiplagged *usecase.SkiplaggedFinder
	routes     domain.RouteCache
}

// NewHandler creates a Handler. The skiplagged finder and route cache may
// be nil, in which case the corresponding endpoints report unavailability.
func NewHandler(search usecase.SearchUseCase, skiplagged *usecase.SkiplaggedFinder, routes domain.RouteCache) *Handler {
	return &Handler{
		search:     search,
		skiplagged: skiplagged,
		routes:     routes,
	}
}

// SearchFlights handles POST /api/v1/flights/search
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	params := ToDomainParams(&req)
	opts := ToSearchOptions(&req)

	result, err := h.search.Search(c.Request().Context(), params, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// SkiplaggedTargets handles GET /api/v1/skiplagged/targets
// Query parameters: origin, destination.
func (h *Handler) SkiplaggedTargets(c echo.Context) error {
	if h.skiplagged == nil {
		return response.ServiceUnavailableWithMessage(c, "Hidden-city discovery is not enabled")
	}

	origin := strings.ToUpper(c.QueryParam("origin"))
	destination := strings.ToUpper(c.QueryParam("destination"))
	if !airportCodePattern.MatchString(origin) {
		return response.ValidationErrorWithMessage(c, "origin must be a valid 3-letter IATA airport code")
	}
	if !airportCodePattern.MatchString(destination) {
		return response.ValidationErrorWithMessage(c, "destination must be a valid 3-letter IATA airport code")
	}

	targets, err := h.skiplagged.BuildTargets(c.Request().Context(), origin, destination)
	if err != nil {
		return h.handleError(c, err)
	}

	dto := SkiplaggedTargetsDTO{
		Origin:              origin,
		IntendedDestination: destination,
		Targets:             make([]TargetDTO, len(targets)),
	}
	for i, target := range targets {
		dto.Targets[i] = TargetDTO{
			Origin:              target.Origin,
			Destination:         target.Destination,
			IntendedDestination: target.IntendedDestination,
		}
	}

	return response.OK(c, dto)
}

// AddRoutes handles POST /api/v1/routes
func (h *Handler) AddRoutes(c echo.Context) error {
	if h.routes == nil {
		return response.ServiceUnavailableWithMessage(c, "Route storage is not enabled")
	}

	var req AddRoutesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.routes.AddRoutes(c.Request().Context(), ToDomainRoutes(req.Routes)); err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, map[string]int{"added": len(req.Routes)})
}

// ListRoutes handles GET /api/v1/routes
// Query parameter: origin.
func (h *Handler) ListRoutes(c echo.Context) error {
	if h.routes == nil {
		return response.ServiceUnavailableWithMessage(c, "Route storage is not enabled")
	}

	origin := strings.ToUpper(c.QueryParam("origin"))
	if !airportCodePattern.MatchString(origin) {
		return response.ValidationErrorWithMessage(c, "origin must be a valid 3-letter IATA airport code")
	}

	routes, err := h.routes.RoutesFrom(c.Request().Context(), origin)
	if err != nil {
		return h.handleError(c, err)
	}
	if routes == nil {
		routes = []domain.Route{}
	}

	return response.OK(c, routes)
}

// RouteStats handles GET /api/v1/routes/stats
func (h *Handler) RouteStats(c echo.Context) error {
	if h.routes == nil {
		return response.ServiceUnavailableWithMessage(c, "Route storage is not enabled")
	}

	count, err := h.routes.Count(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, RouteStatsDTO{TotalRoutes: count})
}

// ClearRoutes handles DELETE /api/v1/routes
func (h *Handler) ClearRoutes(c echo.Context) error {
	if h.routes == nil {
		return response.ServiceUnavailableWithMessage(c, "Route storage is not enabled")
	}

	if err := h.routes.Clear(c.Request().Context()); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// ExportWorkflow handles POST /api/v1/workflows/n8n
func (h *Handler) ExportWorkflow(c echo.Context) error {
	var req ExportWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	workflow, err := export.GenerateWorkflow(export.WorkflowRequest{
		Name:           req.Name,
		Command:        req.Command,
		AlertThreshold: req.AlertThreshold,
		Schedule:       req.Schedule,
	})
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.JSONBlob(c, workflow)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSourceUnavailable) {
		return response.ServiceUnavailable(c)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrSourceTimeout) {
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
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}
