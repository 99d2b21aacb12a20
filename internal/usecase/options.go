package usecase

import (
	"github.com/flight-offers/offer-search-service/internal/domain"
)

// SearchOptions holds the presentation options applied after normalization:
// the user-selected filter set and result ordering.
type SearchOptions struct {
	// Filters is the filter set applied to normalized offers.
	// Nil means no filtering.
	Filters *domain.OfferFilters

	// SortBy specifies the result ordering. The zero value sorts by "best".
	SortBy domain.SortOption
}

// DefaultSearchOptions returns options with no filters and default ordering.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByBest,
	}
}
