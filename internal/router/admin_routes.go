package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/handler"
	"github.com/sepehrda/message-wall/internal/middleware"
)

// RegisterAdmin registers the dashboard endpoints under /api/admin. The
// whole group requires a bearer token carrying the admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/api/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(auth.RoleAdmin),
	)

	g.GET("/stats", a.BoardStats)
}
