package http

import (
	"fmt"

	"github.com/flightfinder/flightfinder/internal/domain"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchParams SearchParamsDTO `json:"search_params"`
	Metadata     MetadataDTO     `json:"metadata"`
	Options      []OptionDTO     `json:"options"`
}

// SearchParamsDTO echoes the request parameters in the response.
type SearchParamsDTO struct {
	Origins     []string `json:"origins"`
	Destination string   `json:"destination"`
	DepartDate  string   `json:"depart_date"`
	ReturnDate  string   `json:"return_date,omitempty"`
	Cabin       string   `json:"cabin"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults        int   `json:"total_results"`
	CombinationsQueried int   `json:"combinations_queried"`
	CombinationsFailed  int   `json:"combinations_failed"`
	SkiplaggedQueried   int   `json:"skiplagged_queried"`
	SearchTimeMs        int64 `json:"search_time_ms"`
	CacheHit            bool  `json:"cache_hit"`
}

// OptionDTO is the data transfer object for one priced flight option.
type OptionDTO struct {
	ID            string      `json:"id"`
	Price         PriceDTO    `json:"price"`
	BookingType   string      `json:"booking_type"`
	BookingURL    string      `json:"booking_url"`
	Outbound      []LegDTO    `json:"outbound"`
	Return        []LegDTO    `json:"return,omitempty"`
	StopsOutbound int         `json:"stops_outbound"`
	StopsReturn   *int        `json:"stops_return,omitempty"`
	Duration      DurationDTO `json:"duration"`
	IsHiddenCity  bool        `json:"is_hidden_city"`
	DeplaneAt     string      `json:"deplane_at,omitempty"`
}

// LegDTO represents one non-stop segment.
type LegDTO struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flight_number"`
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	DurationMinutes int    `json:"duration_minutes"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// DurationDTO represents the total journey duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// RouteStatsDTO reports the size of the route graph.
type RouteStatsDTO struct {
	TotalRoutes int `json:"total_routes"`
}

// SkiplaggedTargetsDTO wraps the hidden-city target list.
type SkiplaggedTargetsDTO struct {
	Origin              string      `json:"origin"`
	IntendedDestination string      `json:"intended_destination"`
	Targets             []TargetDTO `json:"targets"`
}

// TargetDTO is one hidden-city search target.
type TargetDTO struct {
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	IntendedDestination string `json:"intended_destination"`
}

// legTimeLayout is the wall-clock format used for leg times in responses.
const legTimeLayout = "2006-01-02 15:04"

// ToSearchResponseDTO converts a domain SearchResult to a SearchResponseDTO.
func ToSearchResponseDTO(result *domain.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		SearchParams: SearchParamsDTO{
			Origins:     result.Params.Origins,
			Destination: result.Params.Destination,
			DepartDate:  result.Params.DepartDate,
			ReturnDate:  result.Params.ReturnDate,
			Cabin:       string(result.Params.Cabin),
		},
		Metadata: MetadataDTO{
			TotalResults:        result.Metadata.TotalResults,
			CombinationsQueried: result.Metadata.CombinationsQueried,
			CombinationsFailed:  result.Metadata.CombinationsFailed,
			SkiplaggedQueried:   result.Metadata.SkiplaggedQueried,
			SearchTimeMs:        result.Metadata.SearchTimeMs,
			CacheHit:            result.Metadata.CacheHit,
		},
		Options: make([]OptionDTO, len(result.Options)),
	}

	for i, option := range result.Options {
		dto.Options[i] = ToOptionDTO(&option)
	}

	return dto
}

// ToOptionDTO converts a domain FlightOption to an OptionDTO.
func ToOptionDTO(option *domain.FlightOption) OptionDTO {
	dto := OptionDTO{
		ID: option.ID,
		Price: PriceDTO{
			Amount:   option.TotalPrice,
			Currency: option.Currency,
		},
		BookingType:   string(option.BookingType),
		BookingURL:    option.BookingURL,
		Outbound:      toLegDTOs(option.OutboundLegs),
		StopsOutbound: option.StopsOutbound(),
		IsHiddenCity:  option.IsSkiplagged,
		DeplaneAt:     option.DeplaneAt,
	}

	if stops, ok := option.StopsReturn(); ok {
		dto.Return = toLegDTOs(option.ReturnLegs)
		dto.StopsReturn = &stops
	}

	totalMinutes := sumDuration(option.OutboundLegs) + sumDuration(option.ReturnLegs)
	dto.Duration = DurationDTO{
		TotalMinutes: totalMinutes,
		Formatted:    formatDuration(totalMinutes),
	}

	return dto
}

func toLegDTOs(legs []domain.FlightLeg) []LegDTO {
	if legs == nil {
		return nil
	}
	dtos := make([]LegDTO, len(legs))
	for i, leg := range legs {
		dtos[i] = LegDTO{
			Origin:          leg.Origin,
			Destination:     leg.Destination,
			Airline:         leg.Airline,
			FlightNumber:    leg.FlightNumber,
			Departure:       leg.Departure.Format(legTimeLayout),
			Arrival:         leg.Arrival.Format(legTimeLayout),
			DurationMinutes: leg.DurationMinutes,
		}
	}
	return dtos
}

func sumDuration(legs []domain.FlightLeg) int {
	total := 0
	for _, leg := range legs {
		total += leg.DurationMinutes
	}
	return total
}

// formatDuration formats minutes as "Xh Ym".
func formatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
