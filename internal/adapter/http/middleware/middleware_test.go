package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-offers/offer-search-service/internal/adapter/http/response"
)

func runHandler(t *testing.T, mw echo.MiddlewareFunc, req *http.Request, h echo.HandlerFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(h)(c))
	return rec, c
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	rec, c := runHandler(t, RequestID(), req, okHandler)

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "generated id should be a UUID")
	assert.Equal(t, reqID, GetRequestID(c))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-123")

	rec, c := runHandler(t, RequestID(), req, okHandler)

	assert.Equal(t, "upstream-id-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-id-123", GetRequestID(c))
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers/search?foo=bar", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "req-123")

	require.NoError(t, RequestLogger(logger)(okHandler)(c))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))

	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/offers/search", entry["path"])
	assert.Equal(t, "foo=bar", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "2xx logs at info", status: http.StatusOK, wantLevel: "info"},
		{name: "4xx logs at warn", status: http.StatusNotFound, wantLevel: "warn"},
		{name: "5xx logs at error", status: http.StatusBadGateway, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			logger := zerolog.New(&logBuf)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			runHandler(t, RequestLogger(logger), req, func(c echo.Context) error {
				return c.String(tt.status, "done")
			})

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}

func TestRecover_PanicBecomesGeneric500(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "panic-id")

	handler := Recover(logger)(func(c echo.Context) error {
		panic("boom")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	errorObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, response.CodeInternalError, errorObj["code"])
	assert.Equal(t, response.MsgInternalError, errorObj["message"])

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-id", entry["request_id"])
	assert.Equal(t, "boom", entry["panic"])
	stack, _ := entry["stack"].(string)
	assert.Contains(t, stack, "goroutine")
}

func TestRecover_ErrorValuePanic(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec, _ := runHandler(t, Recover(logger), req, func(c echo.Context) error {
		var slice []int
		_ = slice[10]
		return nil
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	rec, _ := runHandler(t, Recover(logger), req, okHandler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	mw := RecoverWithConfig(logger, RecoveryConfig{DisablePrintStack: true})
	runHandler(t, mw, req, func(c echo.Context) error {
		panic("no stack")
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.NotContains(t, entry, "stack")
}

func TestSetup_FullChain(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	Setup(e, logger)
	e.GET("/offers", okHandler)
	e.GET("/panic", func(c echo.Context) error {
		panic("chain panic")
	})

	t.Run("normal request gets id and log entry", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/offers", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		assert.NotEmpty(t, logBuf.String())
	})

	t.Run("panic is contained", func(t *testing.T) {
		rec := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})
}

func TestSetupWithConfig_RecoveryConfigApplies(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	SetupWithConfig(e, logger, RecoveryConfig{DisablePrintStack: true})
	e.GET("/panic", func(c echo.Context) error {
		panic("config panic")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	for _, line := range strings.Split(strings.TrimSpace(logBuf.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry["message"] == "Panic recovered" {
			assert.NotContains(t, entry, "stack")
			return
		}
	}
	t.Fatal("expected a panic log entry")
}
