package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// option builds a one-way option with the given price and outbound stops.
func option(id string, price float64, stops int) domain.FlightOption {
	legs := make([]domain.FlightLeg, 0, stops+1)
	airports := []string{"JFK", "CDG", "YAO", "LBV", "ADD"}
	for i := 0; i <= stops; i++ {
		legs = append(legs, domain.FlightLeg{
			Origin:          airports[i],
			Destination:     airports[i+1],
			Airline:         "Air France",
			FlightNumber:    "AF 18" + id,
			Departure:       time.Date(2025, 3, 15, 10+i, 0, 0, 0, time.UTC),
			Arrival:         time.Date(2025, 3, 15, 12+i, 0, 0, 0, time.UTC),
			DurationMinutes: 120,
		})
	}
	return domain.FlightOption{
		ID:           id,
		OutboundLegs: legs,
		TotalPrice:   price,
		Currency:     "USD",
		BookingType:  domain.BookingOneWay,
		BookingURL:   "https://flights.example/" + id,
	}
}

func TestSortByPrice(t *testing.T) {
	options := []domain.FlightOption{
		option("a", 900, 0),
		option("b", 450, 1),
		option("c", 700, 0),
	}

	sorted := SortByPrice(options)

	require.Len(t, sorted, 3)
	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "c", sorted[1].ID)
	assert.Equal(t, "a", sorted[2].ID)

	// Input untouched.
	assert.Equal(t, "a", options[0].ID)
}

func TestSortByPrice_StableOnTies(t *testing.T) {
	options := []domain.FlightOption{
		option("first", 500, 0),
		option("second", 500, 1),
		option("third", 500, 2),
	}

	sorted := SortByPrice(options)

	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
}

func TestFilterByMaxPrice(t *testing.T) {
	options := []domain.FlightOption{
		option("cheap", 400, 0),
		option("boundary", 500, 0),
		option("expensive", 501, 0),
	}

	filtered := FilterByMaxPrice(options, 500)

	require.Len(t, filtered, 2)
	for _, opt := range filtered {
		assert.LessOrEqual(t, opt.TotalPrice, 500.0)
	}
}

func TestFilterByMaxStops(t *testing.T) {
	options := []domain.FlightOption{
		option("direct", 400, 0),
		option("one-stop", 350, 1),
		option("two-stop", 300, 2),
	}

	tests := []struct {
		name     string
		maxStops int
		wantIDs  []string
	}{
		{"direct only", 0, []string{"direct"}},
		{"up to one stop inclusive", 1, []string{"direct", "one-stop"}},
		{"all pass", 5, []string{"direct", "one-stop", "two-stop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByMaxStops(options, tt.maxStops)
			ids := make([]string, 0, len(filtered))
			for _, opt := range filtered {
				ids = append(ids, opt.ID)
				assert.LessOrEqual(t, opt.StopsOutbound(), tt.maxStops)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByMaxStops_BoundsReturnLegsToo(t *testing.T) {
	withReturn := option("rt", 800, 0)
	withReturn.ReturnLegs = []domain.FlightLeg{
		{Origin: "YAO", Destination: "CDG"},
		{Origin: "CDG", Destination: "JFK"},
	}

	filtered := FilterByMaxStops([]domain.FlightOption{withReturn}, 0)

	assert.Empty(t, filtered, "a direct outbound with a one-stop return exceeds max stops 0")
}

func TestFilterByAirlines(t *testing.T) {
	af := option("af", 500, 0)
	klm := option("klm", 450, 0)
	klm.OutboundLegs[0].Airline = "KLM"

	options := []domain.FlightOption{af, klm}

	t.Run("include list restricts carriers", func(t *testing.T) {
		filtered := FilterByAirlines(options, []string{"klm"}, nil)
		require.Len(t, filtered, 1)
		assert.Equal(t, "klm", filtered[0].ID)
	})

	t.Run("exclude list drops carriers", func(t *testing.T) {
		filtered := FilterByAirlines(options, nil, []string{"AIR FRANCE"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "klm", filtered[0].ID)
	})

	t.Run("no lists passes everything through", func(t *testing.T) {
		assert.Len(t, FilterByAirlines(options, nil, nil), 2)
	})
}

func TestTopN(t *testing.T) {
	options := []domain.FlightOption{
		option("a", 900, 0),
		option("b", 450, 0),
		option("c", 700, 0),
		option("d", 500, 0),
	}

	tests := []struct {
		name    string
		n       int
		wantIDs []string
	}{
		{"truncates to cheapest n", 2, []string{"b", "d"}},
		{"fewer than n returns all sorted", 10, []string{"b", "d", "c", "a"}},
		{"zero yields empty", 0, []string{}},
		{"negative yields empty", -1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopN(options, tt.n)
			ids := make([]string, 0, len(got))
			for _, opt := range got {
				ids = append(ids, opt.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// Re-sorting an already sorted-and-truncated list yields the same list.
func TestTopN_Idempotent(t *testing.T) {
	options := []domain.FlightOption{
		option("a", 900, 0),
		option("b", 450, 0),
		option("c", 700, 0),
	}

	once := TopN(options, 2)
	twice := TopN(once, 2)

	assert.Equal(t, once, twice)
}

func TestCombineOneWays(t *testing.T) {
	outbound := option("out", 600, 0)
	ret := option("ret", 550, 0)

	combined := CombineOneWays(outbound, ret)

	assert.Equal(t, 1150.0, combined.TotalPrice)
	assert.Equal(t, domain.BookingTwoOneWays, combined.BookingType)
	assert.Equal(t, outbound.OutboundLegs, combined.OutboundLegs)
	assert.Equal(t, ret.OutboundLegs, combined.ReturnLegs)
	assert.Equal(t, "https://flights.example/out|https://flights.example/ret", combined.BookingURL)
	assert.Equal(t, "USD", combined.Currency)
}
