// Package mock provides test doubles for the offer search system.
// Besides the generated gomock provider, it contains a configurable
// builder-style provider for integration tests where we need delays,
// errors, and canned responses without expectation bookkeeping.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// Provider is a configurable implementation of domain.OfferProvider.
// It supports configurable delays, errors, and responses for testing
// timeout behavior and partial failures.
type Provider struct {
	offers      domain.OfferSet
	suggestions []domain.LocationSuggestion
	err         error
	delay       time.Duration

	mu        sync.Mutex
	callCount int
}

// NewProvider creates a new mock provider, configured with the builder
// pattern methods.
func NewProvider() *Provider {
	return &Provider{}
}

// WithOffers configures the provider to return the given offer set.
func (p *Provider) WithOffers(set domain.OfferSet) *Provider {
	p.offers = set
	return p
}

// WithSuggestions configures the provider to return the given suggestions.
func (p *Provider) WithSuggestions(suggestions []domain.LocationSuggestion) *Provider {
	p.suggestions = suggestions
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// CallCount returns how many provider calls have been made.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// SearchOffers implements domain.OfferProvider.
func (p *Provider) SearchOffers(ctx context.Context, _ domain.SearchCriteria) (domain.OfferSet, error) {
	if err := p.wait(ctx); err != nil {
		return domain.OfferSet{}, err
	}
	if p.err != nil {
		return domain.OfferSet{}, p.err
	}
	return p.offers, nil
}

// SuggestLocations implements domain.OfferProvider.
func (p *Provider) SuggestLocations(ctx context.Context, _ string) ([]domain.LocationSuggestion, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.suggestions, nil
}

// wait counts the call and applies the configured delay, honoring context
// cancellation.
func (p *Provider) wait(ctx context.Context) error {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay):
		return nil
	}
}

// Ensure Provider implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Provider)(nil)
