// Package http provides the HTTP handler layer for the offer search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// SearchOffersRequest represents the request body for an offer search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "DFW")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Adults is the number of adult passengers (1-9, defaults to 1)
	Adults int `json:"adults,omitempty"`

	// CurrencyCode is the requested quote currency (optional, defaults to USD)
	CurrencyCode string `json:"currencyCode,omitempty"`

	// MaxOffers caps the number of offers requested from the provider (1-50)
	MaxOffers int `json:"maxOffers,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: best, price, stops
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for an offer search.
// Example: {"stops": [0, 1], "priceMin": 100, "priceMax": 800, "airlines": ["AA", "DL"]}
type FilterDTO struct {
	// Stops selects acceptable stop buckets: 0, 1, or 2 (2 = "2 or more")
	Stops []int `json:"stops,omitempty" example:"0,1"`

	// PriceMin hides offers priced below this amount
	PriceMin *float64 `json:"priceMin,omitempty" example:"100"`

	// PriceMax hides offers priced above this amount
	PriceMax *float64 `json:"priceMax,omitempty" example:"800"`

	// Airlines restricts results to offers flown by these carrier codes
	Airlines []string `json:"airlines,omitempty" example:"AA,DL"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	airlineCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)
)

// Valid sort options.
var validSortOptions = map[string]bool{
	"best":  true,
	"price": true,
	"stops": true,
	"":      true, // Empty is valid (defaults to best)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport, currency, and airline codes are normalized to uppercase in place.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDates(errs)
	r.validateAdults(errs)
	r.validateCurrencyCode(errs)
	r.clampMaxOffers()
	r.validateSortBy(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(strings.TrimSpace(r.Origin))
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchOffersRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(strings.TrimSpace(r.Destination))
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchOffersRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchOffersRequest) validateDates(errs *ValidationErrors) {
	departure, departureOK := parseRequestDate(r.DepartureDate, "departureDate", errs)
	ret, returnOK := parseRequestDate(r.ReturnDate, "returnDate", errs)

	if departureOK && returnOK && ret.Before(departure) {
		errs.Add("returnDate", "returnDate must be on or after departureDate")
	}
}

// parseRequestDate validates one YYYY-MM-DD field and reports the parsed value.
func parseRequestDate(value, field string, errs *ValidationErrors) (time.Time, bool) {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return parsed, true
}

func (r *SearchOffersRequest) validateAdults(errs *ValidationErrors) {
	// Zero means "not provided" and is defaulted downstream.
	if r.Adults < 0 {
		errs.Add("adults", "adults must be at least 1")
		return
	}
	if r.Adults > domain.MaxAdults {
		errs.Add("adults", fmt.Sprintf("adults cannot exceed %d", domain.MaxAdults))
	}
}

func (r *SearchOffersRequest) validateCurrencyCode(errs *ValidationErrors) {
	if r.CurrencyCode == "" {
		return
	}

	code := strings.ToUpper(strings.TrimSpace(r.CurrencyCode))
	if !currencyPattern.MatchString(code) {
		errs.Add("currencyCode", "currencyCode must be a 3-letter ISO 4217 code")
		return
	}
	r.CurrencyCode = code
}

// clampMaxOffers silently forces out-of-range values into 1..MaxResults
// instead of rejecting the request. Zero means "not provided" and is
// defaulted downstream.
func (r *SearchOffersRequest) clampMaxOffers() {
	if r.MaxOffers < 0 {
		r.MaxOffers = 1
		return
	}
	if r.MaxOffers > domain.MaxResults {
		r.MaxOffers = domain.MaxResults
	}
}

func (r *SearchOffersRequest) validateSortBy(errs *ValidationErrors) {
	sortBy := strings.ToLower(r.SortBy)
	if !validSortOptions[sortBy] {
		errs.Add("sortBy", "sortBy must be one of: best, price, stops")
		return
	}
	r.SortBy = sortBy
}

func (r *SearchOffersRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	for i, stops := range r.Filters.Stops {
		if stops < 0 || stops > 2 {
			errs.Add(fmt.Sprintf("filters.stops[%d]", i),
				"stop bucket must be 0, 1, or 2")
		}
	}

	if r.Filters.PriceMin != nil && *r.Filters.PriceMin < 0 {
		errs.Add("filters.priceMin", "priceMin must be a non-negative number")
	}
	if r.Filters.PriceMax != nil && *r.Filters.PriceMax < 0 {
		errs.Add("filters.priceMax", "priceMax must be a non-negative number")
	}
	if r.Filters.PriceMin != nil && r.Filters.PriceMax != nil &&
		*r.Filters.PriceMin > *r.Filters.PriceMax {
		errs.Add("filters.priceMax", "priceMax must be greater than or equal to priceMin")
	}

	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(strings.TrimSpace(airline))
		if !airlineCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i),
				"airline code must be 2 or 3 characters")
		}
		r.Filters.Airlines[i] = normalized
	}
}
