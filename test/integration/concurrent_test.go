package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/test/mock"
)

// TestConcurrentSearches exercises the full stack under parallel load to
// surface data races in the pipeline (run with -race).
func TestConcurrentSearches(t *testing.T) {
	const workers = 20

	provider := mock.NewProvider().WithOffers(testOfferSet(t))
	ts := NewTestServer(CreateUseCase(provider))

	var wg sync.WaitGroup
	results := make([]Response, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			body := DefaultSearchRequest()
			if idx%2 == 0 {
				body.SortBy = "price"
			} else {
				body.Filters = map[string]interface{}{"stops": []int{0, 1}}
			}
			results[idx] = ts.SearchRequest(body)
		}(i)
	}
	wg.Wait()

	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d failed", i)

		result, err := resp.ParseSearchResponse()
		require.NoError(t, err)
		assert.Equal(t, 3, result.Metadata.TotalOffers)
		assert.Len(t, result.PriceTrend, domain.HoursPerDay)
	}

	assert.Equal(t, workers, provider.CallCount())
}

// TestConcurrentMixedEndpoints hits search and locations at the same time.
func TestConcurrentMixedEndpoints(t *testing.T) {
	const workers = 10

	provider := mock.NewProvider().
		WithOffers(testOfferSet(t)).
		WithSuggestions([]domain.LocationSuggestion{{IataCode: "JFK", Name: "John F Kennedy Intl"}})
	ts := NewTestServer(CreateUseCase(provider))

	var wg sync.WaitGroup
	codes := make([]int, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			codes[idx] = ts.SearchRequest(DefaultSearchRequest()).Code
		}(i)
		go func(idx int) {
			defer wg.Done()
			codes[workers+idx] = ts.LocationsRequest("new").Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d failed", i)
	}
}
