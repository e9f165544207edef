package serpapi

// searchResponse is the envelope of a SerpAPI Google Flights response.
//
// The canonical raw schema: every segment carries its timing inside the
// nested departure/arrival airport objects ("id" + "time"), not as flat
// date/time fields on the segment.
type searchResponse struct {
	// Error is set when the API rejected the request. A non-empty value
	// short-circuits the whole response before any per-offer parsing.
	Error string `json:"error,omitempty"`

	SearchMetadata searchMetadata `json:"search_metadata"`
	BestFlights    []rawOffer     `json:"best_flights"`
	OtherFlights   []rawOffer     `json:"other_flights"`
}

// searchMetadata carries the booking link for the whole result page.
type searchMetadata struct {
	GoogleFlightsURL string `json:"google_flights_url"`
}

// rawOffer is one priced itinerary as returned by the API.
type rawOffer struct {
	Flights []rawSegment `json:"flights"`

	// Price is a pointer so "missing" and "zero" stay distinguishable;
	// both reject the offer during normalization.
	Price *float64 `json:"price"`

	// Currency is usually absent; the normalizer defaults it.
	Currency string `json:"currency,omitempty"`

	TotalDuration int `json:"total_duration"`
}

// rawSegment is one non-stop flight within an offer.
type rawSegment struct {
	DepartureAirport rawAirport `json:"departure_airport"`
	ArrivalAirport   rawAirport `json:"arrival_airport"`
	Airline          string     `json:"airline"`
	FlightNumber     string     `json:"flight_number"`
	Duration         int        `json:"duration"`
}

// rawAirport is the nested airport object carrying code and local time.
type rawAirport struct {
	ID string `json:"id"`

	// Time is a local wall-clock timestamp, "2006-01-02 15:04".
	Time string `json:"time"`
}
