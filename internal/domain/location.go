package domain

// LocationSuggestion is one airport or city returned by the location lookup,
// used for search-form autocomplete.
type LocationSuggestion struct {
	// IataCode is the location's IATA code (e.g., "JFK")
	IataCode string `json:"iataCode"`

	// Name is the location's display name
	Name string `json:"name"`

	// CityName is the city the airport belongs to, if known
	CityName string `json:"cityName,omitempty"`

	// CountryCode is the ISO country code, if known
	CountryCode string `json:"countryCode,omitempty"`

	// SubType distinguishes AIRPORT from CITY records
	SubType string `json:"subType,omitempty"`
}
