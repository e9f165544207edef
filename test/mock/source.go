// Package mock provides test doubles for the flight deal finder.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, per-route responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// Source is a configurable mock implementation of domain.FlightSource.
// Responses can be configured per origin-destination pair, with optional
// delays and errors for testing timeouts and partial failures.
type Source struct {
	name      string
	byRoute   map[string][]domain.FlightOption
	routeErrs map[string]error
	defaults  []domain.FlightOption
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{
		name:      name,
		byRoute:   make(map[string][]domain.FlightOption),
		routeErrs: make(map[string]error),
	}
}

// WithOptions configures the options returned for any route without a
// per-route configuration.
func (s *Source) WithOptions(options []domain.FlightOption) *Source {
	s.defaults = options
	return s
}

// WithRoundTripOptions configures the options returned for round-trip
// queries on one route.
func (s *Source) WithRoundTripOptions(origin, destination string, options []domain.FlightOption) *Source {
	s.byRoute[queryKey(origin, destination, true)] = options
	return s
}

// WithOneWayOptions configures the options returned for one-way queries on
// one route.
func (s *Source) WithOneWayOptions(origin, destination string, options []domain.FlightOption) *Source {
	s.byRoute[queryKey(origin, destination, false)] = options
	return s
}

// WithRouteError configures the source to fail queries for one route while
// serving the rest. This is how partial-failure scenarios are built.
func (s *Source) WithRouteError(origin, destination string, err error) *Source {
	s.routeErrs[routeKey(origin, destination)] = err
	return s
}

// WithError configures the source to return the given error for every query.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Query implements domain.FlightSource.Query.
// It respects context cancellation, applies the configured delay, and
// returns the configured options or error.
func (s *Source) Query(ctx context.Context, origin, destination, departDate, returnDate string, cabin domain.CabinClass) ([]domain.FlightOption, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}
	if err, ok := s.routeErrs[routeKey(origin, destination)]; ok {
		return nil, err
	}

	if options, ok := s.byRoute[queryKey(origin, destination, returnDate != "")]; ok {
		return options, nil
	}
	return s.defaults, nil
}

// CallCount returns the number of times Query was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

func routeKey(origin, destination string) string {
	return origin + "-" + destination
}

func queryKey(origin, destination string, roundTrip bool) string {
	if roundTrip {
		return routeKey(origin, destination) + "-rt"
	}
	return routeKey(origin, destination) + "-ow"
}

// Ensure Source implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Source)(nil)

// RoundTripOption builds a one-stop round-trip option for the given route
// and price, with realistic leg data.
func RoundTripOption(id, origin, destination string, price float64) domain.FlightOption {
	depart := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 9, 25, 14, 0, 0, 0, time.UTC)

	return domain.FlightOption{
		ID:          id,
		TotalPrice:  price,
		Currency:    "USD",
		BookingType: domain.BookingRoundTrip,
		BookingURL:  fmt.Sprintf("https://flights.example/%s", id),
		OutboundLegs: []domain.FlightLeg{
			{
				Origin:          origin,
				Destination:     "CDG",
				Airline:         "Air France",
				FlightNumber:    "AF 007",
				Departure:       depart,
				Arrival:         depart.Add(7 * time.Hour),
				DurationMinutes: 420,
			},
			{
				Origin:          "CDG",
				Destination:     destination,
				Airline:         "Air France",
				FlightNumber:    "AF 940",
				Departure:       depart.Add(9 * time.Hour),
				Arrival:         depart.Add(16 * time.Hour),
				DurationMinutes: 420,
			},
		},
		ReturnLegs: []domain.FlightLeg{
			{
				Origin:          destination,
				Destination:     origin,
				Airline:         "Air France",
				FlightNumber:    "AF 941",
				Departure:       ret,
				Arrival:         ret.Add(15 * time.Hour),
				DurationMinutes: 900,
			},
		},
	}
}

// ThroughOption builds a one-way option connecting through an intermediate
// airport. Useful for hidden-city scenarios.
func ThroughOption(id, origin, via, destination string, price float64) domain.FlightOption {
	depart := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	return domain.FlightOption{
		ID:          id,
		TotalPrice:  price,
		Currency:    "USD",
		BookingType: domain.BookingOneWay,
		BookingURL:  fmt.Sprintf("https://flights.example/%s", id),
		OutboundLegs: []domain.FlightLeg{
			{
				Origin:          origin,
				Destination:     via,
				Airline:         "Ethiopian Airlines",
				FlightNumber:    "ET 500",
				Departure:       depart,
				Arrival:         depart.Add(8 * time.Hour),
				DurationMinutes: 480,
			},
			{
				Origin:          via,
				Destination:     destination,
				Airline:         "Ethiopian Airlines",
				FlightNumber:    "ET 910",
				Departure:       depart.Add(10 * time.Hour),
				Arrival:         depart.Add(12 * time.Hour),
				DurationMinutes: 120,
			},
		},
	}
}

// OneWayOption builds a direct one-way option for the given route and price.
func OneWayOption(id, origin, destination string, price float64) domain.FlightOption {
	depart := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	return domain.FlightOption{
		ID:          id,
		TotalPrice:  price,
		Currency:    "USD",
		BookingType: domain.BookingOneWay,
		BookingURL:  fmt.Sprintf("https://flights.example/%s", id),
		OutboundLegs: []domain.FlightLeg{
			{
				Origin:          origin,
				Destination:     destination,
				Airline:         "Ethiopian Airlines",
				FlightNumber:    "ET 500",
				Departure:       depart,
				Arrival:         depart.Add(8 * time.Hour),
				DurationMinutes: 480,
			},
		},
	}
}
