package domain

import "errors"

// Sentinel errors for the offer search domain. Handlers map these onto HTTP
// status codes; callers test for them with errors.Is.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderUnavailable indicates the travel-data provider rejected the
	// request or could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderAuth indicates the provider credential exchange failed.
	ErrProviderAuth = errors.New("provider authentication failed")
)

// Note: a malformed provider response body is NOT an error condition.
// Unparseable records are silently excluded during normalization and a
// missing/non-array "data" field yields an empty result set.
