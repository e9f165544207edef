package domain

// SearchResult is the aggregated, ranked outcome of one search request.
type SearchResult struct {
	// Params echoes the original search parameters
	Params SearchParams `json:"params"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Options is the ranked, filtered, truncated option list
	Options []FlightOption `json:"options"`
}

// SearchMetadata describes how a search executed. An empty ranked list with
// a non-zero CombinationsFailed is the caller's only signal that results are
// missing because of upstream failures rather than a genuinely empty market.
type SearchMetadata struct {
	// TotalResults is the number of options returned after ranking
	TotalResults int `json:"total_results"`

	// CombinationsQueried is the number of remote queries issued
	CombinationsQueried int `json:"combinations_queried"`

	// CombinationsFailed is the number of remote queries that failed and
	// were dropped
	CombinationsFailed int `json:"combinations_failed"`

	// SkiplaggedQueried is the number of hidden-city queries issued
	SkiplaggedQueried int `json:"skiplagged_queried"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates the result came from the result cache
	CacheHit bool `json:"cache_hit"`
}

// NewSearchResult builds a SearchResult, normalizing a nil option slice to
// an empty one so JSON encodes [] instead of null.
func NewSearchResult(params SearchParams, options []FlightOption, metadata SearchMetadata) *SearchResult {
	if options == nil {
		options = []FlightOption{}
	}
	metadata.TotalResults = len(options)

	return &SearchResult{
		Params:   params,
		Metadata: metadata,
		Options:  options,
	}
}
