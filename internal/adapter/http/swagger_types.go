// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Offer search results with metadata, price trend, and facets
type SwaggerSearchResponse struct {
	// SearchCriteria echoes the search parameters with defaults applied
	SearchCriteria SwaggerSearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`

	// Currency is the display currency of the result set, null when empty
	Currency *string `json:"currency" example:"USD"`

	// Offers contains the filtered and sorted offers
	Offers []SwaggerOffer `json:"offers"`

	// PriceTrend is the 24-element price-by-departure-hour summary
	PriceTrend []SwaggerPricePoint `json:"price_trend"`

	// Facets describes the full pre-filter result set
	Facets SwaggerFacets `json:"facets"`
}

// SwaggerSearchCriteria echoes the search parameters.
// @Description Search parameters with defaults applied
type SwaggerSearchCriteria struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination" example:"DFW"`

	// DepartureDate is the outbound date
	DepartureDate string `json:"departureDate" example:"2026-03-01"`

	// ReturnDate is the inbound date
	ReturnDate string `json:"returnDate" example:"2026-03-08"`

	// Adults is the number of adult passengers
	Adults int `json:"adults" example:"1"`

	// CurrencyCode is the requested quote currency
	CurrencyCode string `json:"currencyCode" example:"USD"`

	// MaxOffers is the provider result cap
	MaxOffers int `json:"maxOffers" example:"50"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// TotalOffers is the number of offers that survived normalization
	TotalOffers int `json:"total_offers" example:"42"`

	// MatchedOffers is the number of offers remaining after filtering
	MatchedOffers int `json:"matched_offers" example:"17"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms" example:"1250"`
}

// SwaggerOffer represents a single normalized round-trip offer.
// @Description Normalized round-trip flight offer
type SwaggerOffer struct {
	// ID is the provider offer id
	ID string `json:"id" example:"1"`

	// Price is the total price for the whole offer
	Price SwaggerPrice `json:"price"`

	// ValidatingAirlineCodes are the ticketing airlines
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes" example:"AA"`

	// Airlines is the sorted union of all segment carrier codes
	Airlines []string `json:"airlines" example:"AA,BA"`

	// Outbound is the first itinerary of the offer
	Outbound SwaggerItinerary `json:"outbound"`

	// Inbound is the second (return) itinerary of the offer
	Inbound SwaggerItinerary `json:"inbound"`

	// StopsMax is the worst-direction stop count
	StopsMax int `json:"stopsMax" example:"1"`
}

// SwaggerPrice contains pricing information.
// @Description Price information
type SwaggerPrice struct {
	// Amount is the price value
	Amount float64 `json:"amount" example:"420.5"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"USD"`
}

// SwaggerItinerary represents one direction of travel.
// @Description One direction of travel (outbound or inbound)
type SwaggerItinerary struct {
	// ID is derived from the offer id
	ID string `json:"id" example:"1-out"`

	// Duration is the provider's total itinerary duration
	Duration string `json:"duration,omitempty" example:"PT7H45M"`

	// Stops is the number of stops in this direction
	Stops int `json:"stops" example:"0"`

	// DepartLocalHour is the local departure hour (0-23), null when unknown
	DepartLocalHour *int `json:"departLocalHour" example:"8"`

	// Segments is the ordered list of flown legs
	Segments []SwaggerSegment `json:"segments"`
}

// SwaggerSegment represents a single flown leg.
// @Description A single flown leg of an itinerary
type SwaggerSegment struct {
	// ID is the provider segment id
	ID string `json:"id" example:"seg-1"`

	// From is the IATA code of the departure airport
	From string `json:"from" example:"JFK"`

	// To is the IATA code of the arrival airport
	To string `json:"to" example:"DFW"`

	// DepartAt is the local departure timestamp with UTC offset
	DepartAt string `json:"departAt" example:"2026-03-01T08:20:00-05:00"`

	// ArriveAt is the local arrival timestamp with UTC offset
	ArriveAt string `json:"arriveAt" example:"2026-03-01T11:40:00-06:00"`

	// CarrierCode is the 2-letter IATA airline code
	CarrierCode string `json:"carrierCode" example:"AA"`

	// FlightNumber is the airline's flight number
	FlightNumber string `json:"flightNumber,omitempty" example:"100"`

	// Duration is an ISO 8601 duration string
	Duration string `json:"duration,omitempty" example:"PT4H20M"`
}

// SwaggerPricePoint is one hour of the price trend.
// @Description Minimum price and offer count for one departure hour
type SwaggerPricePoint struct {
	// Hour is the local departure hour (0-23)
	Hour int `json:"hour" example:"8"`

	// MinPrice is the lowest price departing in this hour, null when empty
	MinPrice *float64 `json:"minPrice" example:"250"`

	// Count is the number of offers departing in this hour
	Count int `json:"count" example:"3"`
}

// SwaggerFacets summarizes the pre-filter result set.
// @Description Summary of the full result set for building filter controls
type SwaggerFacets struct {
	// Airlines is the sorted union of carrier codes across all offers
	Airlines []string `json:"airlines" example:"AA,BA,DL"`

	// PriceMin is the lowest offer price, rounded down
	PriceMin float64 `json:"price_min" example:"99"`

	// PriceMax is the highest offer price, rounded up
	PriceMax float64 `json:"price_max" example:"1251"`

	// StopsCounts holds offer counts per stop bucket (0, 1, 2+)
	StopsCounts [3]int `json:"stops_counts" example:"12,20,10"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
