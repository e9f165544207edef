package usecase

import (
	"context"
	"strings"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// SkiplaggedFinder discovers hidden-city ticketing opportunities from the
// persisted route graph: itineraries booked past the traveler's real
// destination because the through-fare is cheaper.
type SkiplaggedFinder struct {
	routes domain.RouteCache
}

// NewSkiplaggedFinder creates a finder backed by the given route cache.
func NewSkiplaggedFinder(routes domain.RouteCache) *SkiplaggedFinder {
	return &SkiplaggedFinder{routes: routes}
}

// SkiplaggedTarget is one candidate "book past" search: fly toward
// Destination, deplane at IntendedDestination.
type SkiplaggedTarget struct {
	// Origin is the real departure airport
	Origin string `json:"origin"`

	// Destination is the onward city to ticket to
	Destination string `json:"destination"`

	// IntendedDestination is where the traveler actually gets off
	IntendedDestination string `json:"intendedDestination"`
}

// FindOnwardDestinations returns the cities flights continue to after
// touching the intended destination, i.e. the candidate book-past cities.
func (f *SkiplaggedFinder) FindOnwardDestinations(ctx context.Context, intendedDestination string) (map[string]struct{}, error) {
	return f.routes.DestinationsFrom(ctx, intendedDestination)
}

// BuildTargets emits one search target per onward destination. The caller
// may feed these back into the combination builder as extra queries.
func (f *SkiplaggedFinder) BuildTargets(ctx context.Context, origin, intendedDestination string) ([]SkiplaggedTarget, error) {
	onward, err := f.FindOnwardDestinations(ctx, intendedDestination)
	if err != nil {
		return nil, err
	}

	targets := make([]SkiplaggedTarget, 0, len(onward))
	for dest := range onward {
		targets = append(targets, SkiplaggedTarget{
			Origin:              origin,
			Destination:         dest,
			IntendedDestination: intendedDestination,
		})
	}
	return targets, nil
}

// IsHiddenCityConnection reports whether an itinerary's stop sequence makes
// the intended destination a hidden-city opportunity: true iff the wanted
// city appears strictly between the first and last element. A connecting
// point qualifies; the ticketed origin or final destination never does.
// Airport codes compare case-insensitively; sequences with fewer than two
// entries always return false.
func IsHiddenCityConnection(stopSequence []string, intendedDestination string) bool {
	if len(stopSequence) < 2 {
		return false
	}

	wanted := strings.ToUpper(intendedDestination)
	for _, stop := range stopSequence[1 : len(stopSequence)-1] {
		if strings.ToUpper(stop) == wanted {
			return true
		}
	}
	return false
}
