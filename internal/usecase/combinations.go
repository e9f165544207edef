// Package usecase contains the business logic of the flight deal finder:
// combination building, search orchestration, price comparison, and
// hidden-city route discovery.
package usecase

import "github.com/flightfinder/flightfinder/internal/domain"

// BuildCombinations expands one search request into the ordered set of
// independent remote queries needed to cover round-trip, one-way and
// split-ticket booking structures.
//
// For each origin, a request with a return date yields three combinations:
// the true round trip, the outbound direction alone, and the return
// direction alone (reversed). The cheapest way to cover one itinerary is
// sometimes a round-trip fare and sometimes two independently priced
// one-way fares, so both shapes are queried and the comparator picks the
// winner after CombineOneWays.
//
// A request without a return date yields exactly one one-way combination
// per origin. An empty origins list yields an empty slice, not an error.
// Order is stable: origins in input order, round trip before the one-way
// pair.
func BuildCombinations(params domain.SearchParams) []domain.SearchCombination {
	combinations := make([]domain.SearchCombination, 0, 3*len(params.Origins))

	for _, origin := range params.Origins {
		if params.IsRoundTrip() {
			combinations = append(combinations,
				domain.SearchCombination{
					Origin:      origin,
					Destination: params.Destination,
					DepartDate:  params.DepartDate,
					ReturnDate:  params.ReturnDate,
					SearchType:  domain.SearchRoundTrip,
				},
				domain.SearchCombination{
					Origin:      origin,
					Destination: params.Destination,
					DepartDate:  params.DepartDate,
					SearchType:  domain.SearchOutboundOneWay,
				},
				domain.SearchCombination{
					Origin:      params.Destination,
					Destination: origin,
					DepartDate:  params.ReturnDate,
					SearchType:  domain.SearchReturnOneWay,
				},
			)
			continue
		}

		combinations = append(combinations, domain.SearchCombination{
			Origin:      origin,
			Destination: params.Destination,
			DepartDate:  params.DepartDate,
			SearchType:  domain.SearchOneWay,
		})
	}

	return combinations
}
