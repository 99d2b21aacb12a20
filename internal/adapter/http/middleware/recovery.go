package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-offers/offer-search-service/internal/adapter/http/response"
)

// RecoveryConfig controls how the recovery middleware reports panics.
type RecoveryConfig struct {
	// DisablePrintStack drops the stack trace from the log entry.
	DisablePrintStack bool
}

// Recover returns middleware that recovers from panics in the handler chain,
// logs them with a stack trace, and answers with a generic 500 so internal
// details never reach the client.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, RecoveryConfig{})
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg)
					if !config.DisablePrintStack {
						event = event.Str("stack", string(debug.Stack()))
					}
					event.Msg("Panic recovered")

					if !c.Response().Committed {
						_ = response.InternalServerError(c)
					}
				}
			}()

			return next(c)
		}
	}
}
