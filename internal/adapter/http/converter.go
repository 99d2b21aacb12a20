// Package http provides the HTTP handler layer for the offer search API.
package http

import (
	"math"
	"strings"

	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/internal/usecase"
)

// ToDomainCriteria converts a SearchOffersRequest to domain.SearchCriteria.
// Defaults for adults, currency, and offer count are applied by the use case.
func ToDomainCriteria(req *SearchOffersRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		CurrencyCode:  strings.ToUpper(req.CurrencyCode),
		MaxOffers:     req.MaxOffers,
	}
}

// ToDomainFilters converts a FilterDTO to domain.OfferFilters.
func ToDomainFilters(dto *FilterDTO) *domain.OfferFilters {
	if dto == nil {
		return nil
	}

	return &domain.OfferFilters{
		Stops:    dto.Stops,
		PriceMin: finiteBound(dto.PriceMin),
		PriceMax: finiteBound(dto.PriceMax),
		Airlines: dto.Airlines,
	}
}

// finiteBound drops NaN and infinite price bounds, treating them as unset.
func finiteBound(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchOffersRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  domain.ParseSortOption(req.SortBy),
	}
}
