// Package http provides the HTTP handler layer for the flight deal API.
package http

import (
	"strings"

	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/usecase"
)

// ToDomainParams converts a SearchFlightsRequest to domain.SearchParams.
func ToDomainParams(req *SearchFlightsRequest) domain.SearchParams {
	params := domain.SearchParams{
		Origins:           req.Origins,
		Destination:       strings.ToUpper(req.Destination),
		DepartDate:        req.DepartDate,
		ReturnDate:        req.ReturnDate,
		Cabin:             domain.CabinClass(strings.ToLower(req.Cabin)),
		IncludeSkiplagged: req.IncludeSkiplagged,
	}

	if req.Filters != nil {
		params.MaxPrice = req.Filters.MaxPrice
		params.MaxStops = req.Filters.MaxStops
		params.MaxDurationMinutes = req.Filters.MaxDurationMinutes
		params.AirlinesInclude = req.Filters.AirlinesInclude
		params.AirlinesExclude = req.Filters.AirlinesExclude

		if tr := req.Filters.DepartureTimeRange; tr != nil {
			params.DepartAfter = tr.Start
			params.DepartBefore = tr.End
		}
		if tr := req.Filters.ArrivalTimeRange; tr != nil {
			params.ArriveAfter = tr.Start
			params.ArriveBefore = tr.End
		}
	}

	return params
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	if req.Limit > 0 {
		opts.Limit = req.Limit
	}
	return opts
}

// ToDomainRoutes converts route DTOs to domain routes.
func ToDomainRoutes(dtos []RouteDTO) []domain.Route {
	routes := make([]domain.Route, len(dtos))
	for i, dto := range dtos {
		routes[i] = domain.Route{
			AirlineCode: strings.ToUpper(dto.AirlineCode),
			Origin:      strings.ToUpper(dto.Origin),
			Destination: strings.ToUpper(dto.Destination),
		}
	}
	return routes
}
