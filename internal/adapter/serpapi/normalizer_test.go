package serpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/infrastructure/timeutil"
)

// segment builds a raw segment with nested airport timing.
func segment(origin, originTime, destination, destinationTime string) rawSegment {
	return rawSegment{
		DepartureAirport: rawAirport{ID: origin, Time: originTime},
		ArrivalAirport:   rawAirport{ID: destination, Time: destinationTime},
		Airline:          "Air France",
		FlightNumber:     "AF 182",
		Duration:         460,
	}
}

func price(v float64) *float64 { return &v }

func TestNormalize_ValidOffer(t *testing.T) {
	resp := &searchResponse{
		SearchMetadata: searchMetadata{GoogleFlightsURL: "https://www.google.com/flights?x=1"},
		BestFlights: []rawOffer{
			{
				Flights: []rawSegment{
					segment("JFK", "2025-03-15 18:30", "CDG", "2025-03-16 07:50"),
					segment("CDG", "2025-03-16 10:20", "YAO", "2025-03-16 17:05"),
				},
				Price: price(834),
			},
		},
	}

	clock := timeutil.NewMockClockFromString("2025-01-01T00:00:00Z")
	options := normalize(resp, false, clock)

	require.Len(t, options, 1)
	opt := options[0]

	assert.NotEmpty(t, opt.ID)
	assert.Equal(t, 834.0, opt.TotalPrice)
	assert.Equal(t, "USD", opt.Currency)
	assert.Equal(t, domain.BookingOneWay, opt.BookingType)
	assert.Equal(t, "https://www.google.com/flights?x=1", opt.BookingURL)
	assert.Nil(t, opt.ReturnLegs)

	require.Len(t, opt.OutboundLegs, 2)
	first := opt.OutboundLegs[0]
	assert.Equal(t, "JFK", first.Origin)
	assert.Equal(t, "CDG", first.Destination)
	assert.Equal(t, "Air France", first.Airline)
	assert.Equal(t, "AF 182", first.FlightNumber)
	assert.Equal(t, time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC), first.Departure)
	assert.Equal(t, 460, first.DurationMinutes)
	assert.Equal(t, 1, opt.StopsOutbound())
}

func TestNormalize_BookingTypeFollowsRequest(t *testing.T) {
	resp := &searchResponse{
		BestFlights: []rawOffer{
			{
				Flights: []rawSegment{segment("JFK", "2025-03-15 18:30", "CDG", "2025-03-16 07:50")},
				Price:   price(1200),
			},
		},
	}

	clock := timeutil.NewMockClockFromString("2025-01-01T00:00:00Z")

	oneWay := normalize(resp, false, clock)
	roundTrip := normalize(resp, true, clock)

	require.Len(t, oneWay, 1)
	require.Len(t, roundTrip, 1)
	assert.Equal(t, domain.BookingOneWay, oneWay[0].BookingType)
	assert.Equal(t, domain.BookingRoundTrip, roundTrip[0].BookingType)
}

// Malformed offers are dropped one at a time; the rest of the batch is
// unaffected and nothing is raised.
func TestNormalize_RejectsInvalidOffers(t *testing.T) {
	valid := rawOffer{
		Flights: []rawSegment{segment("JFK", "2025-03-15 18:30", "CDG", "2025-03-16 07:50")},
		Price:   price(500),
	}

	tests := []struct {
		name  string
		offer rawOffer
	}{
		{
			name:  "empty leg list",
			offer: rawOffer{Flights: nil, Price: price(500)},
		},
		{
			name: "missing price",
			offer: rawOffer{
				Flights: []rawSegment{segment("JFK", "2025-03-15 18:30", "CDG", "2025-03-16 07:50")},
				Price:   nil,
			},
		},
		{
			name: "zero price",
			offer: rawOffer{
				Flights: []rawSegment{segment("JFK", "2025-03-15 18:30", "CDG", "2025-03-16 07:50")},
				Price:   price(0),
			},
		},
		{
			name: "negative price",
			offer: rawOffer{
				Flights: []rawSegment{segment("JFK", "2025-03-15 18:30", "CDG", "2025-03-16 07:50")},
				Price:   price(-120),
			},
		},
	}

	clock := timeutil.NewMockClockFromString("2025-01-01T00:00:00Z")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &searchResponse{
				BestFlights:  []rawOffer{tt.offer},
				OtherFlights: []rawOffer{valid},
			}

			options := normalize(resp, false, clock)

			require.Len(t, options, 1, "only the valid offer survives")
			assert.Equal(t, 500.0, options[0].TotalPrice)
		})
	}
}

func TestNormalize_CarriesDeclaredCurrency(t *testing.T) {
	resp := &searchResponse{
		BestFlights: []rawOffer{
			{
				Flights:  []rawSegment{segment("CDG", "2025-03-15 08:00", "YAO", "2025-03-15 15:00")},
				Price:    price(620),
				Currency: "EUR",
			},
		},
	}

	options := normalize(resp, false, timeutil.NewMockClockFromString("2025-01-01T00:00:00Z"))

	require.Len(t, options, 1)
	assert.Equal(t, "EUR", options[0].Currency)
}

func TestNormalize_UnparseableTimestampFallsBackToClock(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	clock := timeutil.NewMockClock(now)

	resp := &searchResponse{
		BestFlights: []rawOffer{
			{
				Flights: []rawSegment{segment("JFK", "garbage", "CDG", "2025-03-16 07:50")},
				Price:   price(700),
			},
		},
	}

	options := normalize(resp, false, clock)

	require.Len(t, options, 1)
	assert.Equal(t, now, options[0].OutboundLegs[0].Departure)
	assert.Equal(t, time.Date(2025, 3, 16, 7, 50, 0, 0, time.UTC), options[0].OutboundLegs[0].Arrival)
}

func TestNormalize_MergesBestAndOtherFlights(t *testing.T) {
	resp := &searchResponse{
		BestFlights: []rawOffer{
			{Flights: []rawSegment{segment("JFK", "2025-03-15 08:00", "CDG", "2025-03-15 20:00")}, Price: price(900)},
		},
		OtherFlights: []rawOffer{
			{Flights: []rawSegment{segment("JFK", "2025-03-15 10:00", "CDG", "2025-03-15 22:00")}, Price: price(750)},
			{Flights: []rawSegment{segment("JFK", "2025-03-15 12:00", "CDG", "2025-03-16 00:10")}, Price: price(810)},
		},
	}

	options := normalize(resp, false, timeutil.NewMockClockFromString("2025-01-01T00:00:00Z"))

	assert.Len(t, options, 3)
}
