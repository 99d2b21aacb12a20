package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/internal/infrastructure/timeutil"
)

// tokenPath is the Amadeus OAuth2 client-credentials endpoint.
const tokenPath = "/v1/security/oauth2/token"

// expirySkew is how long before actual expiry a cached token is considered
// stale. Refreshing early avoids racing the provider clock on in-flight
// requests.
const expirySkew = 30 * time.Second

// TokenSource caches a bearer token obtained via the OAuth2 client-credentials
// flow and refreshes it before expiry. It is an explicitly owned object passed
// to the Client rather than process-global state, so tests can substitute the
// clock and independent clients never share credentials. Safe for concurrent
// use.
type TokenSource struct {
	httpClient   *http.Client
	host         string
	clientID     string
	clientSecret string
	clock        timeutil.Clock

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewTokenSource creates a TokenSource for the given host and credentials.
// A nil clock defaults to the system clock.
func NewTokenSource(httpClient *http.Client, host, clientID, clientSecret string, clock timeutil.Clock) *TokenSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TokenSource{
		httpClient:   httpClient,
		host:         strings.TrimRight(host, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		clock:        clock,
	}
}

// Token returns a valid bearer token, refreshing it when the cached one is
// missing or within the expiry skew.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.accessToken != "" && ts.expiresAt.Sub(ts.clock.Now()) > expirySkew {
		return ts.accessToken, nil
	}

	return ts.refresh(ctx)
}

// Invalidate drops the cached token so the next Token call refreshes.
// Callers use this after the provider rejects a request as unauthorized.
func (ts *TokenSource) Invalidate() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.accessToken = ""
	ts.expiresAt = time.Time{}
}

// refresh exchanges client credentials for a fresh token.
// Caller must hold ts.mu.
func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {ts.clientID},
		"client_secret": {ts.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.host+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build token request: %v", domain.ErrProviderAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", domain.ErrProviderAuth, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("%w: token request returned status %d: %s", domain.ErrProviderAuth, res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", domain.ErrProviderAuth, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: token response missing access_token", domain.ErrProviderAuth)
	}

	ts.accessToken = payload.AccessToken
	ts.expiresAt = ts.clock.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)

	return ts.accessToken, nil
}
