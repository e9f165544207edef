package usecase

import (
	"sort"
	"strings"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// TwoOneWaysSeparator joins the two booking references of a split ticket.
const TwoOneWaysSeparator = "|"

// SortByPrice returns the options sorted by total price, cheapest first.
// The sort is stable and the input slice is never mutated.
func SortByPrice(options []domain.FlightOption) []domain.FlightOption {
	result := make([]domain.FlightOption, len(options))
	copy(result, options)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalPrice < result[j].TotalPrice
	})

	return result
}

// FilterByMaxPrice keeps options with price <= max. The boundary is
// inclusive and the input is never mutated.
func FilterByMaxPrice(options []domain.FlightOption, max float64) []domain.FlightOption {
	result := make([]domain.FlightOption, 0, len(options))
	for _, opt := range options {
		if opt.TotalPrice <= max {
			result = append(result, opt)
		}
	}
	return result
}

// FilterByMaxStops keeps options whose stop count is <= max on the outbound
// journey and, when the option has one, on the return journey too. The
// boundary is inclusive and the input is never mutated.
func FilterByMaxStops(options []domain.FlightOption, max int) []domain.FlightOption {
	result := make([]domain.FlightOption, 0, len(options))
	for _, opt := range options {
		if opt.StopsOutbound() > max {
			continue
		}
		if stops, ok := opt.StopsReturn(); ok && stops > max {
			continue
		}
		result = append(result, opt)
	}
	return result
}

// FilterByAirlines applies carrier include and exclude lists to the outbound
// legs. An empty include list allows every carrier. Matching is
// case-insensitive.
func FilterByAirlines(options []domain.FlightOption, include, exclude []string) []domain.FlightOption {
	if len(include) == 0 && len(exclude) == 0 {
		return options
	}

	includeSet := buildAirlineSet(include)
	excludeSet := buildAirlineSet(exclude)

	result := make([]domain.FlightOption, 0, len(options))
	for _, opt := range options {
		if matchesAirlines(opt, includeSet, excludeSet) {
			result = append(result, opt)
		}
	}
	return result
}

// matchesAirlines checks every outbound leg against the include/exclude sets.
func matchesAirlines(opt domain.FlightOption, include, exclude map[string]struct{}) bool {
	for _, leg := range opt.OutboundLegs {
		carrier := strings.ToUpper(leg.Airline)
		if _, banned := exclude[carrier]; banned {
			return false
		}
		if len(include) > 0 {
			if _, ok := include[carrier]; !ok {
				return false
			}
		}
	}
	return true
}

// buildAirlineSet creates a case-insensitive lookup set from carrier names.
func buildAirlineSet(airlines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(airlines))
	for _, a := range airlines {
		set[strings.ToUpper(a)] = struct{}{}
	}
	return set
}

// TopN sorts the options by price and truncates to the first n. Fewer than
// n options are returned as-is; n <= 0 yields an empty slice.
func TopN(options []domain.FlightOption, n int) []domain.FlightOption {
	if n <= 0 {
		return []domain.FlightOption{}
	}

	sorted := SortByPrice(options)
	if len(sorted) <= n {
		return sorted
	}
	return sorted[:n]
}

// CombineOneWays produces a synthetic round-trip-equivalent option from two
// independently priced one-way fares: outbound legs from the first, return
// legs from the second's outbound legs, prices summed, and a composite
// booking reference. This is how the finder prices the common case where
// two one-way tickets beat the carrier's own round-trip fare.
func CombineOneWays(outbound, ret domain.FlightOption) domain.FlightOption {
	return domain.FlightOption{
		ID:           outbound.ID + TwoOneWaysSeparator + ret.ID,
		OutboundLegs: outbound.OutboundLegs,
		ReturnLegs:   ret.OutboundLegs,
		TotalPrice:   outbound.TotalPrice + ret.TotalPrice,
		Currency:     outbound.Currency,
		BookingType:  domain.BookingTwoOneWays,
		BookingURL:   outbound.BookingURL + TwoOneWaysSeparator + ret.BookingURL,
	}
}
