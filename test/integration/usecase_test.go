package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightfinder/flightfinder/internal/adapter/routecache"
	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/usecase"
	"github.com/flightfinder/flightfinder/test/mock"
)

// TestSearch_RoundTripTriad verifies that a round-trip request fans out into
// the full triad and that the two one-way halves produce a synthetic
// two-one-ways candidate alongside the genuine fares.
func TestSearch_RoundTripTriad(t *testing.T) {
	source := mock.NewSource("test").
		WithRoundTripOptions("JFK", "YAO", []domain.FlightOption{mock.RoundTripOption("rt-1", "JFK", "YAO", 900)}).
		WithOneWayOptions("JFK", "YAO", []domain.FlightOption{mock.OneWayOption("ow-out", "JFK", "YAO", 600)}).
		WithOneWayOptions("YAO", "JFK", []domain.FlightOption{mock.OneWayOption("ow-ret", "YAO", "JFK", 550)})

	uc := CreateUseCase(source)

	result, err := uc.Search(context.Background(), DefaultSearchParams(), usecase.SearchOptions{})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 3, result.Metadata.CombinationsQueried)
	assert.Equal(t, 0, result.Metadata.CombinationsFailed)
	assert.Equal(t, 3, source.CallCount())

	// Two genuine one-ways, one genuine round trip, one synthetic pairing.
	require.Len(t, result.Options, 4)
	assert.Equal(t, 550.0, result.Options[0].TotalPrice)
	assert.Equal(t, 600.0, result.Options[1].TotalPrice)
	assert.Equal(t, 900.0, result.Options[2].TotalPrice)

	synthetic := result.Options[3]
	assert.Equal(t, domain.BookingTwoOneWays, synthetic.BookingType)
	assert.Equal(t, 1150.0, synthetic.TotalPrice)
	assert.Contains(t, synthetic.BookingURL, "|")
}

// TestSearch_PartialFailureKeepsSurvivors verifies failure isolation: a
// failing combination is dropped and the rest of the triad still produces
// results.
func TestSearch_PartialFailureKeepsSurvivors(t *testing.T) {
	source := mock.NewSource("test").
		WithRoundTripOptions("JFK", "YAO", []domain.FlightOption{mock.RoundTripOption("rt-1", "JFK", "YAO", 900)}).
		WithOneWayOptions("JFK", "YAO", []domain.FlightOption{mock.OneWayOption("ow-out", "JFK", "YAO", 600)}).
		WithRouteError("YAO", "JFK", errors.New("connection refused"))

	uc := CreateUseCase(source)

	result, err := uc.Search(context.Background(), DefaultSearchParams(), usecase.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Metadata.CombinationsQueried)
	assert.Equal(t, 1, result.Metadata.CombinationsFailed)

	// No return half, so no synthetic pairing either.
	require.Len(t, result.Options, 2)
	assert.Equal(t, 600.0, result.Options[0].TotalPrice)
	assert.Equal(t, 900.0, result.Options[1].TotalPrice)
}

// TestSearch_TotalFailureIsEmptyNotError verifies that a search where every
// combination fails returns an empty result, with the failure count as the
// only signal.
func TestSearch_TotalFailureIsEmptyNotError(t *testing.T) {
	source := mock.NewSource("test").WithError(errors.New("boom"))

	uc := CreateUseCase(source)

	result, err := uc.Search(context.Background(), DefaultSearchParams(), usecase.SearchOptions{})

	require.NoError(t, err)
	assert.Empty(t, result.Options)
	assert.Equal(t, 3, result.Metadata.CombinationsQueried)
	assert.Equal(t, 3, result.Metadata.CombinationsFailed)
	assert.Equal(t, 0, result.Metadata.TotalResults)
}

// TestSearch_MultiOrigin verifies airport flexibility: each origin gets its
// own triad and the cheapest overall option wins regardless of origin.
func TestSearch_MultiOrigin(t *testing.T) {
	source := mock.NewSource("test").
		WithRoundTripOptions("JFK", "YAO", []domain.FlightOption{mock.RoundTripOption("jfk-rt", "JFK", "YAO", 900)}).
		WithRoundTripOptions("EWR", "YAO", []domain.FlightOption{mock.RoundTripOption("ewr-rt", "EWR", "YAO", 700)})

	uc := CreateUseCase(source)

	params := DefaultSearchParams()
	params.Origins = []string{"JFK", "EWR"}

	result, err := uc.Search(context.Background(), params, usecase.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, 6, result.Metadata.CombinationsQueried)
	require.Len(t, result.Options, 2)
	assert.Equal(t, "ewr-rt", result.Options[0].ID)
	assert.Equal(t, "jfk-rt", result.Options[1].ID)
}

// TestSearch_QueryTimeoutIsFailure verifies that a source slower than the
// per-query timeout counts as a failed combination, not a hung search.
func TestSearch_QueryTimeoutIsFailure(t *testing.T) {
	source := mock.NewSource("slow").
		WithOptions([]domain.FlightOption{mock.OneWayOption("slow-1", "JFK", "YAO", 500)}).
		WithDelay(200 * time.Millisecond)

	uc := CreateUseCaseWithConfig(source, &usecase.Config{
		GlobalTimeout: 5 * time.Second,
		QueryTimeout:  50 * time.Millisecond,
	})

	params := DefaultSearchParams()
	params.ReturnDate = "" // single combination

	start := time.Now()
	result, err := uc.Search(context.Background(), params, usecase.SearchOptions{})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Empty(t, result.Options)
	assert.Equal(t, 1, result.Metadata.CombinationsFailed)
	assert.Less(t, elapsed, 2*time.Second)
}

// TestSearch_SkiplaggedExpansion verifies the hidden-city flow end to end:
// the route graph proposes onward cities, the book-past query runs, and only
// options genuinely connecting through the intended destination survive.
func TestSearch_SkiplaggedExpansion(t *testing.T) {
	routes, err := routecache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { routes.Close() })
	require.NoError(t, routes.AddRoute(context.Background(), "ET", "YAO", "LBV"))

	source := mock.NewSource("test").
		WithRoundTripOptions("JFK", "YAO", []domain.FlightOption{mock.RoundTripOption("rt-1", "JFK", "YAO", 900)}).
		WithOneWayOptions("JFK", "LBV", []domain.FlightOption{
			mock.ThroughOption("via-yao", "JFK", "YAO", "LBV", 480),
			mock.OneWayOption("direct-lbv", "JFK", "LBV", 450),
		})

	finder := usecase.NewSkiplaggedFinder(routes)
	uc := usecase.NewSearchUseCase(source, finder, nil, zerolog.Nop(), nil)

	params := DefaultSearchParams()
	params.IncludeSkiplagged = true

	result, err := uc.Search(context.Background(), params, usecase.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, 4, result.Metadata.CombinationsQueried)
	assert.Equal(t, 1, result.Metadata.SkiplaggedQueried)

	var hidden *domain.FlightOption
	for i := range result.Options {
		if result.Options[i].IsSkiplagged {
			require.Nil(t, hidden, "expected exactly one hidden-city option")
			hidden = &result.Options[i]
		}
	}

	// The direct JFK-LBV fare does not connect through YAO and must be
	// discarded; the through fare survives as a hidden-city ticket.
	require.NotNil(t, hidden)
	assert.Equal(t, "via-yao", hidden.ID)
	assert.Equal(t, "YAO", hidden.DeplaneAt)
	assert.Equal(t, domain.BookingSkiplagged, hidden.BookingType)
	assert.Equal(t, 480.0, hidden.TotalPrice)
}

// TestSearch_FiltersApplyAcrossCombinations verifies that price and stop
// bounds apply to the aggregated union, synthetic candidates included.
func TestSearch_FiltersApplyAcrossCombinations(t *testing.T) {
	source := mock.NewSource("test").
		WithRoundTripOptions("JFK", "YAO", []domain.FlightOption{mock.RoundTripOption("rt-1", "JFK", "YAO", 900)}).
		WithOneWayOptions("JFK", "YAO", []domain.FlightOption{mock.OneWayOption("ow-out", "JFK", "YAO", 600)}).
		WithOneWayOptions("YAO", "JFK", []domain.FlightOption{mock.OneWayOption("ow-ret", "YAO", "JFK", 550)})

	uc := CreateUseCase(source)

	maxPrice := 1000.0
	params := DefaultSearchParams()
	params.MaxPrice = &maxPrice

	result, err := uc.Search(context.Background(), params, usecase.SearchOptions{})

	require.NoError(t, err)
	// The synthetic 1150 pairing is priced out; everything else survives.
	require.Len(t, result.Options, 3)
	for _, opt := range result.Options {
		assert.LessOrEqual(t, opt.TotalPrice, maxPrice)
	}
}

// TestSearch_InvalidParams verifies that validation failures surface as
// errors before any combination is queried.
func TestSearch_InvalidParams(t *testing.T) {
	source := mock.NewSource("test")
	uc := CreateUseCase(source)

	params := DefaultSearchParams()
	params.Destination = "INVALID"

	_, err := uc.Search(context.Background(), params, usecase.SearchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Equal(t, 0, source.CallCount())
}
