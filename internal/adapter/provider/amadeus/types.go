package amadeus

import "encoding/json"

// Raw DTOs for the Amadeus flight-offers search response. The payload is
// untrusted: every field is optional and individual records may carry the
// wrong shape entirely, so the types stay loose and all reasoning about
// presence happens in the normalizer.

// rawSearchResponse is the top-level search response envelope.
// Data stays raw so a missing or non-array "data" field can be detected
// without failing the whole document.
type rawSearchResponse struct {
	Data json.RawMessage `json:"data"`
}

// rawOffer is one provider offer record.
type rawOffer struct {
	ID                     string         `json:"id"`
	Price                  *rawPrice      `json:"price"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
	Itineraries            []rawItinerary `json:"itineraries"`
}

// rawPrice carries the offer total. GrandTotal stays raw because the
// provider emits it as a decimal string but numeric values are accepted too.
type rawPrice struct {
	Currency   string          `json:"currency"`
	GrandTotal json.RawMessage `json:"grandTotal"`
}

// rawItinerary is one direction of travel.
type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

// rawSegment is one flown leg.
type rawSegment struct {
	ID        string    `json:"id"`
	Departure *rawPoint `json:"departure"`
	Arrival   *rawPoint `json:"arrival"`

	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Duration    string `json:"duration"`
}

// rawPoint is a departure or arrival endpoint of a segment.
type rawPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// rawLocationsResponse is the envelope of the reference-data locations
// lookup response.
type rawLocationsResponse struct {
	Data []rawLocation `json:"data"`
}

// rawLocation is one airport or city record.
type rawLocation struct {
	IataCode string      `json:"iataCode"`
	Name     string      `json:"name"`
	SubType  string      `json:"subType"`
	Address  *rawAddress `json:"address"`
}

// rawAddress carries the city and country of a location record.
type rawAddress struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}
