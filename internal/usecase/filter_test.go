package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

func TestApplyFilters_NilAndEmptyFilters(t *testing.T) {
	offers := []domain.Offer{
		mkOffer("1", 100, 0, 8),
		mkOffer("2", 200, 1, 9),
	}

	assert.Equal(t, offers, ApplyFilters(offers, nil))
	assert.Equal(t, offers, ApplyFilters(offers, &domain.OfferFilters{}))
}

func TestApplyFilters_CombinedDimensions(t *testing.T) {
	offers := []domain.Offer{
		mkOffer("cheap-nonstop-aa", 100, 0, 8, "AA"),
		mkOffer("cheap-nonstop-dl", 95, 0, 9, "DL"),
		mkOffer("expensive-nonstop-aa", 400, 0, 10, "AA"),
		mkOffer("cheap-twostop-aa", 90, 2, 11, "AA"),
	}

	filters := &domain.OfferFilters{
		Stops:    []int{0},
		PriceMax: ptr(150.0),
		Airlines: []string{"AA"},
	}

	filtered := ApplyFilters(offers, filters)

	require.Len(t, filtered, 1)
	assert.Equal(t, "cheap-nonstop-aa", filtered[0].ID)
}

func TestApplyFilters_PreservesOrderAndInput(t *testing.T) {
	offers := []domain.Offer{
		mkOffer("a", 300, 0, 8),
		mkOffer("b", 100, 0, 9),
		mkOffer("c", 200, 1, 10),
	}

	filtered := ApplyFilters(offers, &domain.OfferFilters{Stops: []int{0}})

	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "b", filtered[1].ID)

	// Input slice untouched.
	assert.Len(t, offers, 3)
	assert.Equal(t, "c", offers[2].ID)
}

func TestApplyFilters_NoMatches(t *testing.T) {
	offers := []domain.Offer{mkOffer("1", 100, 0, 8)}

	filtered := ApplyFilters(offers, &domain.OfferFilters{Airlines: []string{"ZZ"}})

	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}
