package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/test/mock"
)

func searchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "DFW",
		DepartureDate: "2026-03-01",
		ReturnDate:    "2026-03-08",
	}
}

func TestSearch_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOfferProvider(ctrl)

	currency := "USD"
	set := domain.OfferSet{
		Offers: []domain.Offer{
			mkOffer("pricey-nonstop", 300, 0, 8, "AA"),
			mkOffer("cheap-nonstop", 250, 0, 8, "AA"),
			mkOffer("cheap-twostop", 90, 2, 9, "DL"),
		},
		Currency: &currency,
	}
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).Return(set, nil)

	uc := NewOfferSearchUseCase(provider, time.Second)
	resp, err := uc.Search(context.Background(), searchCriteria(), SearchOptions{
		Filters: &domain.OfferFilters{Stops: []int{0}},
		SortBy:  domain.SortByPrice,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	// Criteria echoed with defaults applied.
	assert.Equal(t, 1, resp.SearchCriteria.Adults)
	assert.Equal(t, "USD", resp.SearchCriteria.CurrencyCode)

	assert.Equal(t, 3, resp.Metadata.TotalOffers)
	assert.Equal(t, 2, resp.Metadata.MatchedOffers)

	require.NotNil(t, resp.Currency)
	assert.Equal(t, "USD", *resp.Currency)

	// Filtered to nonstop, sorted by price.
	assert.Equal(t, []string{"cheap-nonstop", "pricey-nonstop"}, ids(resp.Offers))

	// Trend is computed over the filtered set.
	require.Len(t, resp.PriceTrend, domain.HoursPerDay)
	assert.Equal(t, 2, resp.PriceTrend[8].Count)
	require.NotNil(t, resp.PriceTrend[8].MinPrice)
	assert.Equal(t, 250.0, *resp.PriceTrend[8].MinPrice)
	assert.Zero(t, resp.PriceTrend[9].Count, "filtered-out offer contributes nothing")

	// Facets describe the pre-filter set.
	assert.Equal(t, []string{"AA", "DL"}, resp.Facets.Airlines)
	assert.Equal(t, [3]int{2, 0, 1}, resp.Facets.StopsCounts)
}

func TestSearch_EmptyProviderResultIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOfferProvider(ctrl)
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).Return(domain.OfferSet{}, nil)

	uc := NewOfferSearchUseCase(provider, time.Second)
	resp, err := uc.Search(context.Background(), searchCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Empty(t, resp.Offers)
	assert.Nil(t, resp.Currency)
	assert.Zero(t, resp.Metadata.TotalOffers)
	require.Len(t, resp.PriceTrend, domain.HoursPerDay)
	for _, p := range resp.PriceTrend {
		assert.Nil(t, p.MinPrice)
		assert.Zero(t, p.Count)
	}
}

func TestSearch_InvalidCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOfferProvider(ctrl)
	// Provider is never called for invalid criteria.

	uc := NewOfferSearchUseCase(provider, time.Second)

	criteria := searchCriteria()
	criteria.Destination = "JFK"
	_, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSearch_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOfferProvider(ctrl)
	provider.EXPECT().SearchOffers(gomock.Any(), gomock.Any()).
		Return(domain.OfferSet{}, domain.ErrProviderUnavailable)

	uc := NewOfferSearchUseCase(provider, time.Second)
	_, err := uc.Search(context.Background(), searchCriteria(), DefaultSearchOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestSearch_ProviderTimeout(t *testing.T) {
	provider := mock.NewProvider().WithDelay(200 * time.Millisecond)

	uc := NewOfferSearchUseCase(provider, 20*time.Millisecond)
	_, err := uc.Search(context.Background(), searchCriteria(), DefaultSearchOptions())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSuggestLocations(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCall  bool
		wantEmpty bool
	}{
		{name: "query below minimum length", query: "n", wantCall: false, wantEmpty: true},
		{name: "whitespace only", query: "   ", wantCall: false, wantEmpty: true},
		{name: "trimmed query still too short", query: " n ", wantCall: false, wantEmpty: true},
		{name: "valid query", query: "new", wantCall: true, wantEmpty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock.NewMockOfferProvider(ctrl)
			if tt.wantCall {
				provider.EXPECT().SuggestLocations(gomock.Any(), "new").
					Return([]domain.LocationSuggestion{{IataCode: "JFK", Name: "John F Kennedy Intl"}}, nil)
			}

			uc := NewOfferSearchUseCase(provider, time.Second)
			suggestions, err := uc.SuggestLocations(context.Background(), tt.query)

			require.NoError(t, err)
			require.NotNil(t, suggestions)
			if tt.wantEmpty {
				assert.Empty(t, suggestions)
			} else {
				assert.Len(t, suggestions, 1)
			}
		})
	}
}

func TestSuggestLocations_NilProviderResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOfferProvider(ctrl)
	provider.EXPECT().SuggestLocations(gomock.Any(), "new").Return(nil, nil)

	uc := NewOfferSearchUseCase(provider, time.Second)
	suggestions, err := uc.SuggestLocations(context.Background(), "new")

	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}
