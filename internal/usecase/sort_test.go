package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

func ids(offers []domain.Offer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func TestSortOffers(t *testing.T) {
	offers := []domain.Offer{
		mkOffer("two-stop-cheap", 80, 2, 8),
		mkOffer("nonstop-pricey", 300, 0, 9),
		mkOffer("one-stop-mid", 150, 1, 10),
		mkOffer("nonstop-cheap", 120, 0, 11),
	}

	tests := []struct {
		name   string
		sortBy domain.SortOption
		want   []string
	}{
		{
			name:   "by price",
			sortBy: domain.SortByPrice,
			want:   []string{"two-stop-cheap", "nonstop-cheap", "one-stop-mid", "nonstop-pricey"},
		},
		{
			name:   "by stops with price tiebreak",
			sortBy: domain.SortByStops,
			want:   []string{"nonstop-cheap", "nonstop-pricey", "one-stop-mid", "two-stop-cheap"},
		},
		{
			name:   "best equals stops then price",
			sortBy: domain.SortByBest,
			want:   []string{"nonstop-cheap", "nonstop-pricey", "one-stop-mid", "two-stop-cheap"},
		},
		{
			name:   "unknown option falls back to best",
			sortBy: domain.SortOption("departure"),
			want:   []string{"nonstop-cheap", "nonstop-pricey", "one-stop-mid", "two-stop-cheap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := SortOffers(offers, tt.sortBy)
			assert.Equal(t, tt.want, ids(sorted))
			// Input order untouched.
			assert.Equal(t, "two-stop-cheap", offers[0].ID)
		})
	}
}

func TestSortOffers_StableForEqualKeys(t *testing.T) {
	offers := []domain.Offer{
		mkOffer("first", 100, 0, 8),
		mkOffer("second", 100, 0, 9),
		mkOffer("third", 100, 0, 10),
	}

	sorted := SortOffers(offers, domain.SortByPrice)

	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"first", "second", "third"}, ids(sorted))
}

func TestSortOffers_SmallInputs(t *testing.T) {
	assert.Empty(t, SortOffers(nil, domain.SortByPrice))

	one := []domain.Offer{mkOffer("only", 100, 0, 8)}
	assert.Equal(t, one, SortOffers(one, domain.SortByBest))
}
