// Package usecase provides the business logic for flight offer search:
// orchestrating the provider call and running the filter, sort, and trend
// stages over normalized offers.
package usecase

import (
	"github.com/flight-offers/offer-search-service/internal/domain"
)

// ApplyFilters applies the given filter set to a list of offers.
// It returns a new slice containing only offers that match all criteria.
//
// Behavior:
//   - Returns the original slice if filters is nil or empty (no filtering)
//   - Checks short-circuit per offer (stops -> price floor -> price ceiling -> airlines)
//   - Does NOT mutate the input slice
//   - Performance is O(n) over the offers, with a small constant per active
//     dimension (filter sets are user-picked and tiny)
func ApplyFilters(offers []domain.Offer, filters *domain.OfferFilters) []domain.Offer {
	if filters.IsZero() {
		return offers
	}

	result := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if filters.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}
