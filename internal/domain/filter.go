package domain

// OfferFilters defines the user-selected filter set applied to offers.
// Empty Stops or Airlines slices mean "no constraint on that dimension",
// not "match nothing". Filters are held by the caller and are read-only to
// the pipeline.
type OfferFilters struct {
	// Stops contains the accepted stop buckets: 0, 1, and 2 (2 means "2+")
	Stops []int `json:"stops,omitempty"`

	// PriceMin filters out offers priced below this amount (inclusive bound)
	PriceMin *float64 `json:"priceMin,omitempty"`

	// PriceMax filters out offers priced above this amount (inclusive bound)
	PriceMax *float64 `json:"priceMax,omitempty"`

	// Airlines restricts offers to those sharing at least one carrier code
	// with this list
	Airlines []string `json:"airlines,omitempty"`
}

// Matches reports whether the offer satisfies every active filter dimension.
// Checks run in order (stops, price floor, price ceiling, airlines) and
// short-circuit on the first failure. A nil filter matches everything.
func (f *OfferFilters) Matches(offer Offer) bool {
	if f == nil {
		return true
	}

	if len(f.Stops) > 0 && !containsInt(f.Stops, offer.StopBucket()) {
		return false
	}

	if f.PriceMin != nil && offer.Price.Amount < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && offer.Price.Amount > *f.PriceMax {
		return false
	}

	if len(f.Airlines) > 0 && !sharesAirline(offer.Airlines, f.Airlines) {
		return false
	}

	return true
}

// IsZero reports whether no filter dimension is active.
func (f *OfferFilters) IsZero() bool {
	if f == nil {
		return true
	}
	return len(f.Stops) == 0 && f.PriceMin == nil && f.PriceMax == nil && len(f.Airlines) == 0
}

// containsInt reports whether v is present in values.
func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// sharesAirline reports whether any offer carrier code appears in the filter
// set. Both sides carry normalized uppercase codes, so comparison is exact.
func sharesAirline(offerCodes, filterCodes []string) bool {
	for _, code := range offerCodes {
		for _, want := range filterCodes {
			if code == want {
				return true
			}
		}
	}
	return false
}
