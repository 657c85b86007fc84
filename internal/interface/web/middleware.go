package web

import (
	"net/http"
	"time"

	"arrivals-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogMiddleware logs each request through the service logger.
func RequestLogMiddleware(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info("Request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)
			return err
		}
	}
}

// NewHTTPErrorHandler renders unhandled errors as {"error": "..."} and
// logs them. Upstream failures never reach this path; it covers internal
// failures while composing a response.
func NewHTTPErrorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		message := "Failed to fetch flight data."
		if httpErr, ok := err.(*echo.HTTPError); ok {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		log.Error("Request failed", "path", c.Request().URL.Path, "error", err)
		if !c.Response().Committed {
			c.JSON(code, map[string]string{"error": message})
		}
	}
}
