package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// MinLocationQueryLen is the minimum keyword length for a location lookup;
// shorter queries return an empty suggestion list without a provider call.
const MinLocationQueryLen = 2

// OfferSearchUseCase defines the interface for flight offer operations.
type OfferSearchUseCase interface {
	// Search runs one provider search and the full pipeline over its result:
	// normalization (done by the provider adapter), filtering, sorting, and
	// the price-by-departure-hour trend.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)

	// SuggestLocations returns airport/city suggestions for a keyword.
	SuggestLocations(ctx context.Context, query string) ([]domain.LocationSuggestion, error)
}

// offerSearchUseCase implements OfferSearchUseCase against one provider.
type offerSearchUseCase struct {
	provider        domain.OfferProvider
	providerTimeout time.Duration
}

// DefaultProviderTimeout bounds one provider round trip.
const DefaultProviderTimeout = 10 * time.Second

// NewOfferSearchUseCase creates an OfferSearchUseCase with the given
// provider. A non-positive timeout falls back to DefaultProviderTimeout.
func NewOfferSearchUseCase(provider domain.OfferProvider, providerTimeout time.Duration) OfferSearchUseCase {
	if providerTimeout <= 0 {
		providerTimeout = DefaultProviderTimeout
	}
	return &offerSearchUseCase{
		provider:        provider,
		providerTimeout: providerTimeout,
	}
}

// Search implements OfferSearchUseCase.Search.
//
// An empty offer set from the provider is a valid outcome and produces an
// empty response with an all-empty trend; only transport and authentication
// failures surface as errors.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	startTime := time.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	set, err := uc.provider.SearchOffers(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}

	filtered := ApplyFilters(set.Offers, opts.Filters)
	sorted := SortOffers(filtered, opts.SortBy)

	response := &domain.SearchResponse{
		SearchCriteria: criteria,
		Metadata: domain.SearchMetadata{
			TotalOffers:   len(set.Offers),
			MatchedOffers: len(sorted),
			SearchTimeMs:  time.Since(startTime).Milliseconds(),
		},
		Currency:   set.Currency,
		Offers:     sorted,
		PriceTrend: domain.AggregateByHour(sorted),
		Facets:     ComputeFacets(set.Offers),
	}

	log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Int("total_offers", response.Metadata.TotalOffers).
		Int("matched_offers", response.Metadata.MatchedOffers).
		Int64("search_time_ms", response.Metadata.SearchTimeMs).
		Msg("Offer search completed")

	return response, nil
}

// SuggestLocations implements OfferSearchUseCase.SuggestLocations.
func (uc *offerSearchUseCase) SuggestLocations(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinLocationQueryLen {
		return []domain.LocationSuggestion{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	suggestions, err := uc.provider.SuggestLocations(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggest locations: %w", err)
	}
	if suggestions == nil {
		suggestions = []domain.LocationSuggestion{}
	}
	return suggestions, nil
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
