package usecase

import (
	"context"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// DefaultResultLimit is the top-N bound applied when the caller does not
// ask for a specific limit.
const DefaultResultLimit = 10

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Limit is the maximum number of ranked options to return.
	// Zero means DefaultResultLimit.
	Limit int
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Limit: DefaultResultLimit}
}

// ResultCache caches whole search results keyed by their parameters.
// A nil ResultCache disables caching.
type ResultCache interface {
	// Get returns a previously cached result for the given parameters.
	Get(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, bool)

	// Set stores a result for the given parameters.
	Set(ctx context.Context, params domain.SearchParams, result *domain.SearchResult) error
}
