package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

func TestComputeFacets_Empty(t *testing.T) {
	facets := ComputeFacets(nil)

	assert.Empty(t, facets.Airlines)
	assert.NotNil(t, facets.Airlines)
	assert.Zero(t, facets.PriceMin)
	assert.Zero(t, facets.PriceMax)
	assert.Equal(t, [3]int{}, facets.StopsCounts)
}

func TestComputeFacets(t *testing.T) {
	offers := []domain.Offer{
		mkOffer("1", 99.4, 0, 8, "DL"),
		mkOffer("2", 250.6, 1, 9, "AA", "UA"),
		mkOffer("3", 180, 3, 10, "AA"),
		mkOffer("4", 120, 2, 11, "DL"),
	}

	facets := ComputeFacets(offers)

	assert.Equal(t, []string{"AA", "DL", "UA"}, facets.Airlines)
	assert.Equal(t, 99.0, facets.PriceMin, "floor of the cheapest offer")
	assert.Equal(t, 251.0, facets.PriceMax, "ceil of the priciest offer")
	assert.Equal(t, [3]int{1, 1, 2}, facets.StopsCounts, "3 stops lands in the 2+ bucket")
}
