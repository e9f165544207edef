package serpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/infrastructure/timeutil"
)

// timeLayout is the fixed textual representation the API uses for segment
// timestamps, local wall-clock time with no zone.
const timeLayout = "2006-01-02 15:04"

// DefaultCurrency is assumed when the source omits a currency code.
const DefaultCurrency = "USD"

// normalize converts the offers of one response into domain options.
// Offers that fail basic validity checks are dropped, never raised:
// an empty leg list, a missing price, or a price <= 0 each reject the
// single offending offer and leave the rest of the batch unaffected.
//
// The booking-structure tag is derived purely from whether the caller
// requested a return date, not from the shape of the raw offer.
func normalize(resp *searchResponse, isRoundTrip bool, clock timeutil.Clock) []domain.FlightOption {
	bookingType := domain.BookingOneWay
	if isRoundTrip {
		bookingType = domain.BookingRoundTrip
	}

	offers := make([]rawOffer, 0, len(resp.BestFlights)+len(resp.OtherFlights))
	offers = append(offers, resp.BestFlights...)
	offers = append(offers, resp.OtherFlights...)

	options := make([]domain.FlightOption, 0, len(offers))
	for _, offer := range offers {
		legs := normalizeLegs(offer.Flights, clock)
		if len(legs) == 0 {
			continue
		}
		if offer.Price == nil || *offer.Price <= 0 {
			continue
		}

		currency := offer.Currency
		if currency == "" {
			currency = DefaultCurrency
		}

		options = append(options, domain.FlightOption{
			ID:           uuid.NewString(),
			OutboundLegs: legs,
			TotalPrice:   *offer.Price,
			Currency:     currency,
			BookingType:  bookingType,
			BookingURL:   resp.SearchMetadata.GoogleFlightsURL,
		})
	}

	return options
}

// normalizeLegs converts raw segments into flight legs.
func normalizeLegs(segments []rawSegment, clock timeutil.Clock) []domain.FlightLeg {
	legs := make([]domain.FlightLeg, 0, len(segments))
	for _, seg := range segments {
		legs = append(legs, domain.FlightLeg{
			Origin:          seg.DepartureAirport.ID,
			Destination:     seg.ArrivalAirport.ID,
			Airline:         seg.Airline,
			FlightNumber:    seg.FlightNumber,
			Departure:       parseTime(seg.DepartureAirport.Time, clock),
			Arrival:         parseTime(seg.ArrivalAirport.Time, clock),
			DurationMinutes: seg.Duration,
		})
	}
	return legs
}

// parseTime parses a segment timestamp. On parse failure the clock's
// current time is substituted instead of rejecting the whole offer.
//
// TODO: revisit this fallback. A substituted wall-clock timestamp
// silently corrupts any downstream sort-by-departure; rejecting the offer
// like other malformed data would likely be safer, but it changes which
// deals surface, so it needs a data-driven decision.
func parseTime(value string, clock timeutil.Clock) time.Time {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return clock.Now()
	}
	return t
}
