package usecase

import (
	"math"
	"sort"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// ComputeFacets summarizes the full normalized offer set so the caller can
// build filter controls: the sorted airline union, the price envelope
// (floor/ceil to whole units), and per-stop-bucket counts. Facets are always
// derived from the pre-filter set, otherwise narrowing a filter would erase
// the controls needed to widen it again.
func ComputeFacets(offers []domain.Offer) domain.Facets {
	facets := domain.Facets{Airlines: []string{}}
	if len(offers) == 0 {
		return facets
	}

	seen := make(map[string]struct{})
	min, max := math.Inf(1), math.Inf(-1)

	for _, o := range offers {
		for _, code := range o.Airlines {
			seen[code] = struct{}{}
		}
		if o.Price.Amount < min {
			min = o.Price.Amount
		}
		if o.Price.Amount > max {
			max = o.Price.Amount
		}
		facets.StopsCounts[o.StopBucket()]++
	}

	for code := range seen {
		facets.Airlines = append(facets.Airlines, code)
	}
	sort.Strings(facets.Airlines)

	facets.PriceMin = math.Floor(min)
	facets.PriceMax = math.Ceil(max)

	return facets
}
