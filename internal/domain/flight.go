// Package domain contains the core business entities and rules for the
// flight deal finder. These entities are source-agnostic and form the
// foundation upon which all other components are built.
package domain

import "time"

// BookingType identifies the booking structure of a flight option.
type BookingType string

// Booking structures the finder can price.
const (
	// BookingRoundTrip is a single round-trip fare.
	BookingRoundTrip BookingType = "round-trip"

	// BookingOneWay is a single one-way fare.
	BookingOneWay BookingType = "one-way"

	// BookingTwoOneWays is a synthetic round trip priced as two
	// independently purchased one-way tickets.
	BookingTwoOneWays BookingType = "two-oneways"

	// BookingOpenJaw is an itinerary returning to or from a different airport.
	BookingOpenJaw BookingType = "open-jaw"

	// BookingSkiplagged is a hidden-city ticket booked past the traveler's
	// real destination.
	BookingSkiplagged BookingType = "skiplagged"
)

// IsValid checks if the booking type is a known value.
func (b BookingType) IsValid() bool {
	switch b {
	case BookingRoundTrip, BookingOneWay, BookingTwoOneWays, BookingOpenJaw, BookingSkiplagged:
		return true
	default:
		return false
	}
}

// CabinClass is the requested cabin for a search.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid checks if the cabin class is a known value.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// FlightLeg is a single non-stop segment: one takeoff and one landing.
// Legs are immutable once parsed.
type FlightLeg struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Airline is the operating carrier name or code
	Airline string `json:"airline"`

	// FlightNumber is the carrier's flight number (e.g., "AF 182")
	FlightNumber string `json:"flightNumber"`

	// Departure is the scheduled departure time
	Departure time.Time `json:"departure"`

	// Arrival is the scheduled arrival time
	Arrival time.Time `json:"arrival"`

	// DurationMinutes is the leg duration in minutes
	DurationMinutes int `json:"durationMinutes"`
}

// FlightOption is one priced, bookable unit: an ordered non-empty outbound
// leg sequence, an optional return leg sequence, and a total price.
// Options are immutable after normalization and safe to share read-only.
type FlightOption struct {
	// ID is a unique identifier for this option (generated internally)
	ID string `json:"id"`

	// OutboundLegs is the ordered outbound segment list, never empty
	OutboundLegs []FlightLeg `json:"outboundLegs"`

	// ReturnLegs is the ordered return segment list, nil for one-way options
	ReturnLegs []FlightLeg `json:"returnLegs,omitempty"`

	// TotalPrice is the total price, always positive
	TotalPrice float64 `json:"totalPrice"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// BookingType is the booking structure of this option
	BookingType BookingType `json:"bookingType"`

	// BookingURL is the booking link, or a composite reference joined with
	// "|" for split tickets
	BookingURL string `json:"bookingUrl"`

	// IsSkiplagged marks hidden-city options
	IsSkiplagged bool `json:"isSkiplagged"`

	// DeplaneAt is the airport where a hidden-city traveler actually gets
	// off, set only when IsSkiplagged is true
	DeplaneAt string `json:"deplaneAt,omitempty"`
}

// StopsOutbound returns the number of stops on the outbound journey.
func (o *FlightOption) StopsOutbound() int {
	return len(o.OutboundLegs) - 1
}

// StopsReturn returns the number of stops on the return journey and whether
// the option has a return journey at all.
func (o *FlightOption) StopsReturn() (int, bool) {
	if o.ReturnLegs == nil {
		return 0, false
	}
	return len(o.ReturnLegs) - 1, true
}

// Route returns the ticketed origin and final destination of the outbound
// journey. Both are empty for an option with no outbound legs, which the
// normalizer never produces.
func (o *FlightOption) Route() (origin, destination string) {
	if len(o.OutboundLegs) == 0 {
		return "", ""
	}
	return o.OutboundLegs[0].Origin, o.OutboundLegs[len(o.OutboundLegs)-1].Destination
}

// StopSequence returns the ordered airport codes the outbound journey
// touches: origin, every connection, final destination.
func (o *FlightOption) StopSequence() []string {
	if len(o.OutboundLegs) == 0 {
		return nil
	}
	seq := make([]string, 0, len(o.OutboundLegs)+1)
	seq = append(seq, o.OutboundLegs[0].Origin)
	for _, leg := range o.OutboundLegs {
		seq = append(seq, leg.Destination)
	}
	return seq
}
