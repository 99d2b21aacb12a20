package domain

import "context"

// OfferSet is the normalized outcome of one provider search: the accepted
// offers in response order plus the resolved display currency.
type OfferSet struct {
	// Offers holds the offers that passed normalization, in response order
	Offers []Offer

	// Currency is the currency of the first accepted offer, or nil when no
	// offer was accepted
	Currency *string
}

// OfferProvider abstracts the travel-data provider the pipeline consumes.
// Implementations own authentication, transport, and normalization of the
// provider's wire format into canonical domain types.
type OfferProvider interface {
	// SearchOffers runs a round-trip flight-offer search and returns the
	// normalized result. An empty OfferSet is a valid, non-error outcome.
	SearchOffers(ctx context.Context, criteria SearchCriteria) (OfferSet, error)

	// SuggestLocations looks up airports and cities matching the keyword.
	SuggestLocations(ctx context.Context, keyword string) ([]LocationSuggestion, error)
}
