package domain

// SearchResponse represents the full result of one offer search: the echoed
// criteria, execution metadata, the filtered and sorted offers, and the
// chart-ready price trend.
type SearchResponse struct {
	// SearchCriteria contains the original search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Currency is the resolved display currency: the currency of the first
	// successfully normalized offer, or nil when no offer survived
	Currency *string `json:"currency"`

	// Offers contains the offers that passed normalization and filtering,
	// in the requested sort order
	Offers []Offer `json:"offers"`

	// PriceTrend is the 24-element price-by-departure-hour summary computed
	// over the filtered offers
	PriceTrend []PricePoint `json:"price_trend"`

	// Facets describes the full (pre-filter) result set so callers can build
	// filter controls
	Facets Facets `json:"facets"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalOffers is the number of offers that survived normalization
	TotalOffers int `json:"total_offers"`

	// MatchedOffers is the number of offers remaining after filtering
	MatchedOffers int `json:"matched_offers"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// Facets summarizes the normalized (pre-filter) offer set for building
// filter controls: which airlines occur, the price envelope, and how many
// offers fall in each stop bucket.
type Facets struct {
	// Airlines is the sorted union of carrier codes across all offers
	Airlines []string `json:"airlines"`

	// PriceMin is the lowest offer price, rounded down to a whole unit
	PriceMin float64 `json:"price_min"`

	// PriceMax is the highest offer price, rounded up to a whole unit
	PriceMax float64 `json:"price_max"`

	// StopsCounts holds offer counts per stop bucket (index 0, 1, 2 = "2+")
	StopsCounts [3]int `json:"stops_counts"`
}
