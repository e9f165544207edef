package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 60 * time.Second
	DefaultQueryTimeout  = 30 * time.Second
)

// SearchUseCase defines the interface for flight search operations.
type SearchUseCase interface {
	// Search expands the request into combinations, queries the flight
	// source for each, and returns the aggregated, ranked result.
	Search(ctx context.Context, params domain.SearchParams, opts SearchOptions) (*domain.SearchResult, error)
}

// Config contains configuration options for the search use case.
type Config struct {
	// GlobalTimeout bounds the whole search across all combinations.
	GlobalTimeout time.Duration

	// QueryTimeout bounds a single combination's remote query.
	QueryTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		QueryTimeout:  DefaultQueryTimeout,
	}
}

// searchUseCase implements SearchUseCase with a scatter-gather over the
// combinations of one request.
type searchUseCase struct {
	source        domain.FlightSource
	skiplagged    *SkiplaggedFinder
	cache         ResultCache
	log           zerolog.Logger
	globalTimeout time.Duration
	queryTimeout  time.Duration
}

// NewSearchUseCase creates a SearchUseCase querying the given flight source.
// The skiplagged finder and result cache are optional; nil disables
// hidden-city expansion and result caching respectively. If config is nil,
// default timeouts are used.
func NewSearchUseCase(source domain.FlightSource, skiplagged *SkiplaggedFinder, cache ResultCache, log zerolog.Logger, config *Config) SearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.QueryTimeout > 0 {
			cfg.QueryTimeout = config.QueryTimeout
		}
	}

	return &searchUseCase{
		source:        source,
		skiplagged:    skiplagged,
		cache:         cache,
		log:           log,
		globalTimeout: cfg.GlobalTimeout,
		queryTimeout:  cfg.QueryTimeout,
	}
}

// combinationResult holds the outcome of a single combination's query.
// Modelling the outcome as an explicit value keeps failures from ever
// crossing the per-combination boundary.
type combinationResult struct {
	Combination domain.SearchCombination
	Options     []domain.FlightOption
	Err         error
	Duration    time.Duration
}

// Search implements SearchUseCase.
//
// Failure isolation invariant: a failure on any single combination is
// swallowed at the per-combination boundary and that combination simply
// contributes zero results. The only error Search itself returns is an
// invalid-input error raised before any combination is built. A search
// where every combination failed is indistinguishable from one that found
// nothing; Metadata.CombinationsFailed carries the distinction for callers
// that care.
func (uc *searchUseCase) Search(ctx context.Context, params domain.SearchParams, opts SearchOptions) (*domain.SearchResult, error) {
	startTime := time.Now()

	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if opts.Limit == 0 {
		opts.Limit = DefaultResultLimit
	}

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, params); ok {
			cached.Metadata.CacheHit = true
			return cached, nil
		}
	}

	combinations := BuildCombinations(params)
	skiplaggedCombos := uc.buildSkiplaggedCombinations(ctx, params)
	combinations = append(combinations, skiplaggedCombos...)

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	results := uc.scatterGather(ctx, params, combinations)

	var failed int
	aggregated := make([]domain.FlightOption, 0)
	oneWayHalves := newOneWayIndex()

	for _, res := range results {
		if res.Err != nil {
			failed++
			uc.log.Warn().
				Err(res.Err).
				Str("origin", res.Combination.Origin).
				Str("destination", res.Combination.Destination).
				Str("search_type", string(res.Combination.SearchType)).
				Dur("duration", res.Duration).
				Msg("Combination query failed, dropping")
			continue
		}

		if res.Combination.IntendedDestination != "" {
			aggregated = append(aggregated, classifySkiplagged(res.Combination, res.Options)...)
			continue
		}

		oneWayHalves.record(res.Combination, res.Options)
		aggregated = append(aggregated, res.Options...)
	}

	// Synthetic two-one-ways candidates: only the cheapest pair per origin
	// can win on price, so only that pair is materialized.
	aggregated = append(aggregated, oneWayHalves.combine(params)...)

	filtered := uc.applyFilters(aggregated, params)
	ranked := TopN(filtered, opts.Limit)

	result := domain.NewSearchResult(params, ranked, domain.SearchMetadata{
		CombinationsQueried: len(combinations),
		CombinationsFailed:  failed,
		SkiplaggedQueried:   len(skiplaggedCombos),
		SearchTimeMs:        time.Since(startTime).Milliseconds(),
	})

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, params, result); err != nil {
			uc.log.Warn().Err(err).Msg("Failed to cache search result")
		}
	}

	return result, nil
}

// scatterGather runs every combination's query concurrently and collects
// all outcomes. Concurrency is purely an efficiency concern: results are
// identical to a sequential run because combinations never depend on each
// other and ordering is normalized by the comparator afterwards.
func (uc *searchUseCase) scatterGather(ctx context.Context, params domain.SearchParams, combinations []domain.SearchCombination) []combinationResult {
	resultsChan := make(chan combinationResult, len(combinations))

	var wg sync.WaitGroup
	for _, combo := range combinations {
		wg.Add(1)
		go func(c domain.SearchCombination) {
			defer wg.Done()
			uc.queryCombination(ctx, params, c, resultsChan)
		}(combo)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make([]combinationResult, 0, len(combinations))
	for res := range resultsChan {
		results = append(results, res)
	}
	return results
}

// queryCombination queries the flight source for a single combination with
// a per-query timeout and panic recovery. A panicking source counts as a
// failed combination, never a crashed search.
func (uc *searchUseCase) queryCombination(ctx context.Context, params domain.SearchParams, combo domain.SearchCombination, results chan<- combinationResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			results <- combinationResult{
				Combination: combo,
				Err:         fmt.Errorf("flight source panic: %v", r),
				Duration:    time.Since(start),
			}
		}
	}()

	options, err := uc.source.Query(ctx, combo.Origin, combo.Destination, combo.DepartDate, combo.ReturnDate, params.Cabin)

	results <- combinationResult{
		Combination: combo,
		Options:     options,
		Err:         err,
		Duration:    time.Since(start),
	}
}

// buildSkiplaggedCombinations expands the request with hidden-city queries
// when the caller opted in and a route cache is available. A route-cache
// failure only disables the expansion; it never fails the search.
func (uc *searchUseCase) buildSkiplaggedCombinations(ctx context.Context, params domain.SearchParams) []domain.SearchCombination {
	if !params.IncludeSkiplagged || uc.skiplagged == nil {
		return nil
	}

	var combos []domain.SearchCombination
	for _, origin := range params.Origins {
		targets, err := uc.skiplagged.BuildTargets(ctx, origin, params.Destination)
		if err != nil {
			uc.log.Warn().Err(err).Str("origin", origin).Msg("Skiplagged target discovery failed, skipping")
			continue
		}
		for _, target := range targets {
			combos = append(combos, domain.SearchCombination{
				Origin:              target.Origin,
				Destination:         target.Destination,
				DepartDate:          params.DepartDate,
				SearchType:          domain.SearchOneWay,
				IntendedDestination: target.IntendedDestination,
			})
		}
	}
	return combos
}

// classifySkiplagged keeps only the options from a book-past query whose
// stop sequence actually connects through the intended destination, and
// marks them as hidden-city tickets.
func classifySkiplagged(combo domain.SearchCombination, options []domain.FlightOption) []domain.FlightOption {
	kept := make([]domain.FlightOption, 0, len(options))
	for _, opt := range options {
		if !IsHiddenCityConnection(opt.StopSequence(), combo.IntendedDestination) {
			continue
		}
		opt.IsSkiplagged = true
		opt.DeplaneAt = combo.IntendedDestination
		opt.BookingType = domain.BookingSkiplagged
		kept = append(kept, opt)
	}
	return kept
}

// applyFilters applies the request's refinement filters to the aggregated
// union. Filtering is order-independent and side-effect-free.
func (uc *searchUseCase) applyFilters(options []domain.FlightOption, params domain.SearchParams) []domain.FlightOption {
	filtered := FilterByAirlines(options, params.AirlinesInclude, params.AirlinesExclude)
	if params.MaxPrice != nil {
		filtered = FilterByMaxPrice(filtered, *params.MaxPrice)
	}
	if params.MaxStops != nil {
		filtered = FilterByMaxStops(filtered, *params.MaxStops)
	}
	return filtered
}

// oneWayIndex buckets one-way halves of a round-trip request by origin so
// the cheapest outbound and return fares can be paired afterwards.
type oneWayIndex struct {
	outbound map[string]domain.FlightOption
	returns  map[string]domain.FlightOption
}

func newOneWayIndex() *oneWayIndex {
	return &oneWayIndex{
		outbound: make(map[string]domain.FlightOption),
		returns:  make(map[string]domain.FlightOption),
	}
}

// record keeps the cheapest outbound-only and return-only option per origin.
func (idx *oneWayIndex) record(combo domain.SearchCombination, options []domain.FlightOption) {
	switch combo.SearchType {
	case domain.SearchOutboundOneWay:
		for _, opt := range options {
			best, ok := idx.outbound[combo.Origin]
			if !ok || opt.TotalPrice < best.TotalPrice {
				idx.outbound[combo.Origin] = opt
			}
		}
	case domain.SearchReturnOneWay:
		// The return combination is reversed, so the request origin is the
		// combination's destination.
		for _, opt := range options {
			best, ok := idx.returns[combo.Destination]
			if !ok || opt.TotalPrice < best.TotalPrice {
				idx.returns[combo.Destination] = opt
			}
		}
	}
}

// combine pairs the cheapest halves per origin into synthetic two-one-ways
// options.
func (idx *oneWayIndex) combine(params domain.SearchParams) []domain.FlightOption {
	combined := make([]domain.FlightOption, 0, len(params.Origins))
	for _, origin := range params.Origins {
		out, okOut := idx.outbound[origin]
		ret, okRet := idx.returns[origin]
		if okOut && okRet {
			combined = append(combined, CombineOneWays(out, ret))
		}
	}
	return combined
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
