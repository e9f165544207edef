// Package http provides the HTTP handler layer for the flight deal API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origins is the list of candidate departure airports (e.g., ["JFK", "EWR"])
	Origins []string `json:"origins"`

	// Destination is the IATA code of the arrival airport (e.g., "YAO")
	Destination string `json:"destination"`

	// DepartDate is the desired departure date in YYYY-MM-DD format
	DepartDate string `json:"departDate"`

	// ReturnDate is the return date in YYYY-MM-DD format (empty = one-way)
	ReturnDate string `json:"returnDate,omitempty"`

	// Cabin is the travel class: economy, premium, business, or first (optional)
	Cabin string `json:"cabin,omitempty"`

	// IncludeSkiplagged opts in to hidden-city discovery
	IncludeSkiplagged bool `json:"includeSkiplagged,omitempty"`

	// Limit is the maximum number of ranked options to return (optional)
	Limit int `json:"limit,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"maxPrice": 1200, "maxStops": 1, "airlinesExclude": ["AF"]}
type FilterDTO struct {
	// MaxPrice drops options priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops options with more stops on either direction (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty"`

	// AirlinesInclude restricts results to these airline codes when non-empty
	AirlinesInclude []string `json:"airlinesInclude,omitempty"`

	// AirlinesExclude drops results from these airline codes
	AirlinesExclude []string `json:"airlinesExclude,omitempty"`

	// MaxDurationMinutes drops options whose total duration exceeds this
	MaxDurationMinutes *int `json:"maxDurationMinutes,omitempty"`

	// DepartureTimeRange bounds the outbound departure time
	DepartureTimeRange *TimeRangeDTO `json:"departureTimeRange,omitempty"`

	// ArrivalTimeRange bounds the outbound arrival time
	ArrivalTimeRange *TimeRangeDTO `json:"arrivalTimeRange,omitempty"`
}

// TimeRangeDTO represents a time window for filtering.
type TimeRangeDTO struct {
	// Start is the beginning of the time range (HH:MM format, e.g., "06:00")
	Start string `json:"start"`

	// End is the end of the time range (HH:MM format, e.g., "12:00")
	End string `json:"end"`
}

// AddRoutesRequest represents the request body for bulk route ingestion.
type AddRoutesRequest struct {
	Routes []RouteDTO `json:"routes"`
}

// RouteDTO represents one airline route edge.
type RouteDTO struct {
	AirlineCode string `json:"airlineCode"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// ExportWorkflowRequest represents the request body for n8n workflow export.
type ExportWorkflowRequest struct {
	// Name is the workflow name shown in n8n
	Name string `json:"name"`

	// Command is the CLI command the workflow executes on each run
	Command string `json:"command"`

	// AlertThreshold triggers an alert when the cheapest price drops below it
	AlertThreshold *float64 `json:"alertThreshold,omitempty"`

	// Schedule is a five-field cron expression (default: daily at 09:00)
	Schedule string `json:"schedule,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern        = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Valid travel classes.
var validCabins = map[string]bool{
	"economy":  true,
	"premium":  true,
	"business": true,
	"first":    true,
	"":         true, // Empty is valid (defaults to economy)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigins(errs)
	r.validateDestination(errs)
	r.validateDates(errs)
	r.validateCabin(errs)
	r.validateLimit(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateOrigins(errs *ValidationErrors) {
	if len(r.Origins) == 0 {
		errs.Add("origins", "at least one origin is required")
		return
	}

	for i, origin := range r.Origins {
		normalized := strings.ToUpper(origin)
		if !airportCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("origins[%d]", i),
				"origin must be a valid 3-letter IATA airport code")
			continue
		}
		r.Origins[i] = normalized // Normalize to uppercase
	}
}

func (r *SearchFlightsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest

	for _, origin := range r.Origins {
		if strings.EqualFold(origin, dest) {
			errs.Add("destination", "origins and destination must be different")
			return
		}
	}
}

func (r *SearchFlightsRequest) validateDates(errs *ValidationErrors) {
	if r.DepartDate == "" {
		errs.Add("departDate", "departDate is required")
		return
	}
	if !validDate(r.DepartDate) {
		errs.Add("departDate", "departDate must be a valid date in YYYY-MM-DD format")
		return
	}

	if r.ReturnDate == "" {
		return
	}
	if !validDate(r.ReturnDate) {
		errs.Add("returnDate", "returnDate must be a valid date in YYYY-MM-DD format")
		return
	}
	if r.ReturnDate < r.DepartDate {
		errs.Add("returnDate", "returnDate must not be before departDate")
	}
}

func (r *SearchFlightsRequest) validateCabin(errs *ValidationErrors) {
	if !validCabins[strings.ToLower(r.Cabin)] {
		errs.Add("cabin", "cabin must be one of: economy, premium, business, first")
	}
}

func (r *SearchFlightsRequest) validateLimit(errs *ValidationErrors) {
	if r.Limit < 0 {
		errs.Add("limit", "limit must be a non-negative number")
	}
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}
	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}
	if r.Filters.MaxDurationMinutes != nil && *r.Filters.MaxDurationMinutes < 0 {
		errs.Add("filters.maxDurationMinutes", "maxDurationMinutes must be a non-negative number")
	}

	r.validateAirlineCodes(errs, "filters.airlinesInclude", r.Filters.AirlinesInclude)
	r.validateAirlineCodes(errs, "filters.airlinesExclude", r.Filters.AirlinesExclude)

	if r.Filters.DepartureTimeRange != nil {
		validateTimeRange(errs, "filters.departureTimeRange", r.Filters.DepartureTimeRange)
	}
	if r.Filters.ArrivalTimeRange != nil {
		validateTimeRange(errs, "filters.arrivalTimeRange", r.Filters.ArrivalTimeRange)
	}
}

func (r *SearchFlightsRequest) validateAirlineCodes(errs *ValidationErrors, field string, codes []string) {
	for i, code := range codes {
		normalized := strings.ToUpper(code)
		if len(normalized) < 2 || len(normalized) > 3 {
			errs.Add(fmt.Sprintf("%s[%d]", field, i),
				"airline code must be 2 or 3 characters")
			continue
		}
		codes[i] = normalized
	}
}

func validateTimeRange(errs *ValidationErrors, field string, tr *TimeRangeDTO) {
	if tr.Start == "" {
		errs.Add(field+".start", "start time is required when the range is specified")
	} else if !isValidTimeFormat(tr.Start) {
		errs.Add(field+".start", "start must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}

	if tr.End == "" {
		errs.Add(field+".end", "end time is required when the range is specified")
	} else if !isValidTimeFormat(tr.End) {
		errs.Add(field+".end", "end must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

// Validate validates a bulk route ingestion request.
func (r *AddRoutesRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Routes) == 0 {
		errs.Add("routes", "at least one route is required")
		return errs
	}

	for i, route := range r.Routes {
		if len(route.AirlineCode) < 2 || len(route.AirlineCode) > 3 {
			errs.Add(fmt.Sprintf("routes[%d].airlineCode", i),
				"airline code must be 2 or 3 characters")
		}
		if !airportCodePattern.MatchString(strings.ToUpper(route.Origin)) {
			errs.Add(fmt.Sprintf("routes[%d].origin", i),
				"origin must be a valid 3-letter IATA airport code")
		}
		if !airportCodePattern.MatchString(strings.ToUpper(route.Destination)) {
			errs.Add(fmt.Sprintf("routes[%d].destination", i),
				"destination must be a valid 3-letter IATA airport code")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validDate reports whether the string is a real calendar date in
// YYYY-MM-DD format.
func validDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// isValidTimeFormat validates that a time string is in HH:MM format with valid values.
// Hours must be 00-23, minutes must be 00-59.
func isValidTimeFormat(timeStr string) bool {
	if !timePattern.MatchString(timeStr) {
		return false
	}

	var hour, minute int
	if _, err := fmt.Sscanf(timeStr, "%02d:%02d", &hour, &minute); err != nil {
		return false
	}

	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
