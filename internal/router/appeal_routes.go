package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/handler"
	"github.com/sepehrda/message-wall/internal/middleware"
)

// RegisterAppeals registers the appeal endpoints. All of them require a
// bearer token; per-appeal access rules live in the handler.
func RegisterAppeals(e *echo.Echo, a *handler.AppealHandler, jwtSecret string) {
	g := e.Group("/api", middleware.JWTAuth(jwtSecret))

	g.POST("/appeals", a.Create)
	g.GET("/appeals", a.List)
	g.GET("/appeals/user/:id", a.ListByReporter)
	g.DELETE("/appeals/:id", a.Delete)
}
