package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Limits applied to search criteria.
const (
	MinAdults = 1
	MaxAdults = 9

	// MaxResults caps how many offers are requested from the provider.
	MaxResults = 50

	// DefaultCurrencyCode is used when the caller does not request a currency.
	DefaultCurrencyCode = "USD"
)

// SearchCriteria defines the parameters for a round-trip flight offer search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "DFW")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// CurrencyCode is the requested pricing currency (default: USD)
	CurrencyCode string `json:"currencyCode,omitempty"`

	// MaxOffers caps the number of offers requested (default and cap: 50)
	MaxOffers int `json:"max,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyCodeRegex matches ISO 4217 currency codes (3 uppercase letters).
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	departure, err := s.validateDate("departureDate", s.DepartureDate)
	if err != nil {
		return err
	}
	ret, err := s.validateDate("returnDate", s.ReturnDate)
	if err != nil {
		return err
	}
	if ret.Before(departure) {
		return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
	}

	if s.Adults < MinAdults {
		return fmt.Errorf("%w: adults must be at least %d", ErrInvalidRequest, MinAdults)
	}
	if s.Adults > MaxAdults {
		return fmt.Errorf("%w: adults cannot exceed %d", ErrInvalidRequest, MaxAdults)
	}

	if s.CurrencyCode != "" && !currencyCodeRegex.MatchString(s.CurrencyCode) {
		return fmt.Errorf("%w: currencyCode must be a 3-letter ISO 4217 code, got %q", ErrInvalidRequest, s.CurrencyCode)
	}

	if s.MaxOffers < 0 || s.MaxOffers > MaxResults {
		return fmt.Errorf("%w: max must be between 1 and %d", ErrInvalidRequest, MaxResults)
	}

	return nil
}

// validateDate checks one date field and returns the parsed value.
func (s *SearchCriteria) validateDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}

// SetDefaults applies default values to empty optional fields and normalizes
// code casing.
func (s *SearchCriteria) SetDefaults() {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.CurrencyCode = strings.ToUpper(strings.TrimSpace(s.CurrencyCode))

	if s.Adults == 0 {
		s.Adults = MinAdults
	}
	if s.CurrencyCode == "" {
		s.CurrencyCode = DefaultCurrencyCode
	}
	if s.MaxOffers == 0 {
		s.MaxOffers = MaxResults
	}
}
