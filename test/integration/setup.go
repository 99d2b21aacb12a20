// Package integration provides helpers and integration tests for the offer
// search system. Integration tests verify that components work together
// correctly, including HTTP handlers, the use case, and mock providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-offers/offer-search-service/internal/adapter/http"
	"github.com/flight-offers/offer-search-service/internal/domain"
	"github.com/flight-offers/offer-search-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.OfferSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewOfferHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest executes an offer search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offers/search",
		Body:   body,
	})
}

// LocationsRequest executes a location lookup for the given keyword.
func (ts *TestServer) LocationsRequest(query string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/locations?q=" + query,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string                 `json:"origin"`
	Destination   string                 `json:"destination"`
	DepartureDate string                 `json:"departureDate"`
	ReturnDate    string                 `json:"returnDate"`
	Adults        int                    `json:"adults,omitempty"`
	CurrencyCode  string                 `json:"currencyCode,omitempty"`
	MaxOffers     int                    `json:"maxOffers,omitempty"`
	Filters       map[string]interface{} `json:"filters,omitempty"`
	SortBy        string                 `json:"sortBy,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "DFW",
		DepartureDate: FutureDate(),
		ReturnDate:    FutureReturnDate(),
	}
}

// CreateUseCase creates a use case over the given provider with a short timeout.
func CreateUseCase(provider domain.OfferProvider) usecase.OfferSearchUseCase {
	return usecase.NewOfferSearchUseCase(provider, 2*time.Second)
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006-01-02")
}

// FutureReturnDate returns a date string 37 days in the future in YYYY-MM-DD format.
func FutureReturnDate() string {
	return time.Now().AddDate(0, 0, 37).Format("2006-01-02")
}

// DefaultSearchCriteria returns a valid search criteria for testing the use case directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "DFW",
		DepartureDate: FutureDate(),
		ReturnDate:    FutureReturnDate(),
		Adults:        1,
	}
}
