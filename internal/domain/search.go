package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchParams defines one user request: one or more origin airports, a
// destination, a departure date, an optional return date, and refinement
// filters. Immutable input to the combination builder and the comparator.
type SearchParams struct {
	// Origins is the list of candidate departure airports, order preserved.
	// Duplicates are not de-duplicated; that is the caller's responsibility.
	Origins []string `json:"origins"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartDate is the departure date in YYYY-MM-DD format
	DepartDate string `json:"departDate"`

	// ReturnDate is the return date in YYYY-MM-DD format.
	// Empty means one-way intent.
	ReturnDate string `json:"returnDate,omitempty"`

	// DepartAfter and DepartBefore bound the outbound departure time (HH:MM)
	DepartAfter  string `json:"departAfter,omitempty"`
	DepartBefore string `json:"departBefore,omitempty"`

	// ArriveAfter and ArriveBefore bound the outbound arrival time (HH:MM)
	ArriveAfter  string `json:"arriveAfter,omitempty"`
	ArriveBefore string `json:"arriveBefore,omitempty"`

	// MaxStops bounds the number of stops, nil = unbounded
	MaxStops *int `json:"maxStops,omitempty"`

	// MaxDurationMinutes bounds the total journey duration, nil = unbounded
	MaxDurationMinutes *int `json:"maxDurationMinutes,omitempty"`

	// Cabin is the requested cabin class (default economy)
	Cabin CabinClass `json:"cabin,omitempty"`

	// AirlinesInclude restricts results to these carriers when non-empty
	AirlinesInclude []string `json:"airlinesInclude,omitempty"`

	// AirlinesExclude drops results from these carriers
	AirlinesExclude []string `json:"airlinesExclude,omitempty"`

	// MinLayoverMinutes and MaxLayoverMinutes bound connection times
	MinLayoverMinutes int  `json:"minLayoverMinutes,omitempty"`
	MaxLayoverMinutes *int `json:"maxLayoverMinutes,omitempty"`

	// MaxPrice bounds the total price, nil = unbounded
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// AlertBelow is the price-alert threshold for monitoring workflows
	AlertBelow *float64 `json:"alertBelow,omitempty"`

	// IncludeSkiplagged opts in to hidden-city discovery
	IncludeSkiplagged bool `json:"includeSkiplagged,omitempty"`

	// NearbyKm is the nearby-airport search radius, 0 = exact airports only
	NearbyKm int `json:"nearbyKm,omitempty"`
}

// SearchType identifies which leg of the overall request a combination
// fulfills.
type SearchType string

// Combination search types.
const (
	// SearchRoundTrip prices the whole itinerary as one round-trip fare.
	SearchRoundTrip SearchType = "round_trip"

	// SearchOutboundOneWay prices only the outbound direction, for the
	// two-one-ways comparison.
	SearchOutboundOneWay SearchType = "outbound_oneway"

	// SearchReturnOneWay prices only the return direction, reversed.
	SearchReturnOneWay SearchType = "return_oneway"

	// SearchOneWay is a plain one-way request with no return intent.
	SearchOneWay SearchType = "oneway"
)

// SearchCombination is one unit of remote work: a resolved origin,
// destination and dates for a single query against the flight data source.
// Combinations are ephemeral; the orchestrator owns them during execution
// and they are never persisted.
type SearchCombination struct {
	Origin      string
	Destination string
	DepartDate  string

	// ReturnDate is empty for one-way combinations
	ReturnDate string

	SearchType SearchType

	// IntendedDestination is set on hidden-city combinations: the airport
	// the traveler actually wants, somewhere short of Destination.
	IntendedDestination string
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the search parameters before any remote work starts.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *SearchParams) Validate() error {
	for _, origin := range p.Origins {
		if !airportCodeRegex.MatchString(origin) {
			return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, origin)
		}
	}

	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(p.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Destination)
	}

	if p.DepartDate == "" {
		return fmt.Errorf("%w: departDate is required", ErrInvalidRequest)
	}
	if err := validateDate("departDate", p.DepartDate); err != nil {
		return err
	}

	if p.ReturnDate != "" {
		if err := validateDate("returnDate", p.ReturnDate); err != nil {
			return err
		}
		if p.ReturnDate < p.DepartDate {
			return fmt.Errorf("%w: returnDate %s is before departDate %s", ErrInvalidRequest, p.ReturnDate, p.DepartDate)
		}
	}

	if p.Cabin != "" && !p.Cabin.IsValid() {
		return fmt.Errorf("%w: cabin must be one of: economy, premium, business, first; got %q", ErrInvalidRequest, p.Cabin)
	}

	if p.MaxStops != nil && *p.MaxStops < 0 {
		return fmt.Errorf("%w: maxStops cannot be negative", ErrInvalidRequest)
	}
	if p.MaxPrice != nil && *p.MaxPrice <= 0 {
		return fmt.Errorf("%w: maxPrice must be positive", ErrInvalidRequest)
	}

	return nil
}

// validateDate checks a YYYY-MM-DD date string for shape and calendar validity.
func validateDate(field, value string) error {
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *SearchParams) SetDefaults() {
	if p.Cabin == "" {
		p.Cabin = CabinEconomy
	}
	if p.MinLayoverMinutes == 0 {
		p.MinLayoverMinutes = 45
	}
}

// IsRoundTrip reports whether the caller asked for a return journey.
func (p *SearchParams) IsRoundTrip() bool {
	return p.ReturnDate != ""
}
