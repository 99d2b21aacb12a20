package amadeus

import (
	"encoding/json"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// normalizeLocations maps a raw locations lookup response to suggestions.
// Records missing an IATA code or name are dropped; anything else about the
// payload that fails to parse degrades to an empty list.
func normalizeLocations(payload []byte) []domain.LocationSuggestion {
	var resp rawLocationsResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return []domain.LocationSuggestion{}
	}

	suggestions := make([]domain.LocationSuggestion, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.IataCode == "" || d.Name == "" {
			continue
		}

		s := domain.LocationSuggestion{
			IataCode: d.IataCode,
			Name:     d.Name,
			SubType:  d.SubType,
		}
		if d.Address != nil {
			s.CityName = d.Address.CityName
			s.CountryCode = d.Address.CountryCode
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}
