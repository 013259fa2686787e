// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/handler"
)

// RegisterRoutes wires the base surface: the liveness probe and the fallback
// error handler.
func RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = errorHandler(e)
	e.GET("/healthz", handler.Health)
}

// errorHandler logs handler errors that escaped the per-endpoint handling
// and answers with a bare 500 so internals never leak. echo's own HTTPErrors
// (unknown route, wrong method) keep their status and message.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		log.Printf("http: unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		if !c.Response().Committed {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
	}
}
