// Package amadeus implements the Amadeus Self-Service travel-data provider:
// OAuth2 token caching, the flight-offers search and locations endpoints,
// and normalization of the loosely-typed responses into domain types.
package amadeus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/internal/infrastructure/retry"
)

// DefaultHost is the Amadeus test environment; production uses
// https://api.amadeus.com.
const DefaultHost = "https://test.api.amadeus.com"

// API paths used by the client.
const (
	flightOffersPath = "/v2/shopping/flight-offers"
	locationsPath    = "/v1/reference-data/locations"
)

// locationPageLimit caps how many location suggestions are requested.
const locationPageLimit = 10

// Client talks to the Amadeus API. It implements domain.OfferProvider.
type Client struct {
	httpClient *http.Client
	host       string
	tokens     *TokenSource
	retryCfg   retry.Config
}

// NewClient creates a Client for the given host using the token source for
// authentication. A nil httpClient defaults to http.DefaultClient.
func NewClient(httpClient *http.Client, host string, tokens *TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	cfg := retry.ProviderConfig
	cfg.RetryIf = retry.SkipPermanent

	return &Client{
		httpClient: httpClient,
		host:       strings.TrimRight(host, "/"),
		tokens:     tokens,
		retryCfg:   cfg,
	}
}

// SearchOffers runs a round-trip flight-offer search and normalizes the
// response. The provider body is consumed as-is; normalization never fails,
// it degrades to an empty or partial offer set.
func (c *Client) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) (domain.OfferSet, error) {
	params := url.Values{
		"originLocationCode":      {criteria.Origin},
		"destinationLocationCode": {criteria.Destination},
		"departureDate":           {criteria.DepartureDate},
		"returnDate":              {criteria.ReturnDate},
		"adults":                  {strconv.Itoa(criteria.Adults)},
		"currencyCode":            {criteria.CurrencyCode},
		"max":                     {strconv.Itoa(criteria.MaxOffers)},
	}

	body, err := c.get(ctx, flightOffersPath, params)
	if err != nil {
		return domain.OfferSet{}, fmt.Errorf("flight offers search: %w", err)
	}

	set := Normalize(body)
	log.Debug().
		Int("offers", len(set.Offers)).
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Msg("Normalized provider response")

	return set, nil
}

// SuggestLocations looks up airports and cities matching the keyword.
func (c *Client) SuggestLocations(ctx context.Context, keyword string) ([]domain.LocationSuggestion, error) {
	params := url.Values{
		"keyword":     {keyword},
		"subType":     {"AIRPORT,CITY"},
		"page[limit]": {strconv.Itoa(locationPageLimit)},
		"view":        {"LIGHT"},
	}

	body, err := c.get(ctx, locationsPath, params)
	if err != nil {
		return nil, fmt.Errorf("location lookup: %w", err)
	}

	return normalizeLocations(body), nil
}

// get performs an authenticated GET with retry. Transport failures and
// provider 5xx/429 responses are retried; other non-2xx statuses are
// permanent failures.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.getOnce(ctx, path, params)
	}, c.retryCfg)
}

// getOnce performs one authenticated GET against the provider.
func (c *Client) getOnce(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("%w: build request: %v", domain.ErrProviderUnavailable, err))
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: read response: %v", domain.ErrProviderUnavailable, err)
		}
		return body, nil

	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		// Token may have been revoked server-side; drop it so the next
		// attempt re-authenticates.
		c.tokens.Invalidate()
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderAuth, res.StatusCode)

	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, res.StatusCode)

	default:
		return nil, retry.NewPermanent(fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, res.StatusCode))
	}
}

// Ensure Client implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Client)(nil)
