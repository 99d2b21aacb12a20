package usecase

import (
	"sort"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// SortOffers returns a new slice sorted according to the given option.
// The sort is stable, so offers that compare equal keep their normalized
// (provider) order.
//
//   - SortByPrice: price ascending
//   - SortByStops, SortByBest: fewest stops first, then price ascending
func SortOffers(offers []domain.Offer, sortBy domain.SortOption) []domain.Offer {
	if len(offers) <= 1 {
		return offers
	}

	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount < result[j].Price.Amount
		})
	case domain.SortByStops, domain.SortByBest:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].StopsMax != result[j].StopsMax {
				return result[i].StopsMax < result[j].StopsMax
			}
			return result[i].Price.Amount < result[j].Price.Amount
		})
	}

	return result
}
