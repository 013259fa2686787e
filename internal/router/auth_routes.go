package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/handler"
	"github.com/sepehrda/message-wall/internal/middleware"
)

// RegisterAuth registers the account endpoints. Register and login are
// public; /api/me requires a bearer token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	e.POST("/api/register", a.Register)
	e.POST("/api/login", a.Login)

	g := e.Group("/api", middleware.JWTAuth(jwtSecret))
	g.GET("/me", a.Me)
}
