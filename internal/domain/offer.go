// Package domain contains the core business entities and rules for the flight
// offer search system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

// Money represents the total price of an offer for all passengers.
type Money struct {
	// Amount is the numeric price value. It is always finite and non-negative;
	// offers whose price cannot be parsed are never constructed.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code, normalized to uppercase (e.g., "USD")
	Currency string `json:"currency"`
}

// Segment represents a single flown leg of an itinerary.
type Segment struct {
	// ID is the provider segment id, or a generated fallback of the form
	// "<offerId>-o-<idx>" / "<offerId>-i-<idx>" when the provider omits one
	ID string `json:"id"`

	// From is the IATA code of the departure airport (e.g., "JFK")
	From string `json:"from"`

	// To is the IATA code of the arrival airport (e.g., "DFW")
	To string `json:"to"`

	// DepartAt is the provider's local departure timestamp with UTC offset,
	// kept verbatim (e.g., "2026-03-01T08:20:00-05:00")
	DepartAt string `json:"departAt"`

	// ArriveAt is the provider's local arrival timestamp with UTC offset
	ArriveAt string `json:"arriveAt"`

	// CarrierCode is the 2-letter IATA airline code (e.g., "AA")
	CarrierCode string `json:"carrierCode"`

	// FlightNumber is the airline's flight number, if provided
	FlightNumber string `json:"flightNumber,omitempty"`

	// Duration is an ISO 8601 duration string (e.g., "PT4H20M"), if provided
	Duration string `json:"duration,omitempty"`
}

// Itinerary represents one direction of travel (outbound or inbound).
// After validation it always holds at least one segment.
type Itinerary struct {
	// ID is derived from the offer id ("<offerId>-out" / "<offerId>-in")
	ID string `json:"id"`

	// Duration is the provider's total itinerary duration, if provided
	Duration string `json:"duration,omitempty"`

	// Stops is the number of stops: len(Segments) - 1, never negative
	Stops int `json:"stops"`

	// DepartLocalHour is the local wall-clock hour (0-23) read from the first
	// segment's departure timestamp, or nil when the timestamp is unparseable.
	// The hour is taken from the timestamp text as-is; no timezone conversion.
	DepartLocalHour *int `json:"departLocalHour"`

	// Segments is the ordered list of flown legs
	Segments []Segment `json:"segments"`
}

// Offer represents a normalized round-trip flight offer.
// Offers are constructed once from a provider response and never mutated.
type Offer struct {
	// ID is the provider offer id, or a generated UUID when absent
	ID string `json:"id"`

	// Price is the total price for the whole offer
	Price Money `json:"price"`

	// ValidatingAirlineCodes are the ticketing airlines as reported by the provider
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`

	// Airlines is the sorted, duplicate-free union of all segment carrier
	// codes across both itineraries
	Airlines []string `json:"airlines"`

	// Outbound is the first itinerary of the offer
	Outbound Itinerary `json:"outbound"`

	// Inbound is the second (return) itinerary of the offer
	Inbound Itinerary `json:"inbound"`

	// StopsMax is max(Outbound.Stops, Inbound.Stops)
	StopsMax int `json:"stopsMax"`
}

// StopBucket maps the offer's worst-direction stop count onto the filter
// buckets 0, 1, and 2, where 2 means "2 or more stops".
func (o *Offer) StopBucket() int {
	if o.StopsMax >= 2 {
		return 2
	}
	return o.StopsMax
}
