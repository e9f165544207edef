package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// FlightSource is the narrow capability the orchestrator uses to reach a
// remote flight-pricing backend. One call prices one combination.
//
// Implementations own transport concerns (retries, rate limiting,
// authentication); the orchestrator treats any returned error as terminal
// for that combination.
type FlightSource interface {
	// Name returns the source's unique identifier (e.g., "serpapi").
	Name() string

	// Query returns normalized flight options for one origin/destination
	// pair. An empty returnDate requests one-way fares.
	Query(ctx context.Context, origin, destination, departDate, returnDate string, cabin CabinClass) ([]FlightOption, error)
}

// RouteCache is the read/write capability over the persisted route graph.
// The search core only reads it, via DestinationsFrom; the admin surface
// uses the write side.
type RouteCache interface {
	// AddRoute records one (airline, origin, destination) route.
	AddRoute(ctx context.Context, airlineCode, origin, destination string) error

	// AddRoutes records a batch of routes in one transaction.
	AddRoutes(ctx context.Context, routes []Route) error

	// RoutesFrom returns all routes departing from an airport.
	RoutesFrom(ctx context.Context, origin string) ([]Route, error)

	// DestinationsFrom returns the distinct destination airport codes
	// reachable non-stop from an airport.
	DestinationsFrom(ctx context.Context, origin string) (map[string]struct{}, error)

	// Clear removes every route from the cache.
	Clear(ctx context.Context) error

	// Count returns the total number of cached routes.
	Count(ctx context.Context) (int, error)
}

// Route is one edge of the route graph.
type Route struct {
	// AirlineCode is the IATA code of the operating carrier
	AirlineCode string `json:"airlineCode"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// LastUpdated is when this edge was last refreshed, RFC 3339
	LastUpdated string `json:"lastUpdated,omitempty"`
}
