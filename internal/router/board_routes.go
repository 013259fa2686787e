package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/handler"
	"github.com/sepehrda/message-wall/internal/middleware"
)

// RegisterBoard registers the wall itself: public reads, the upload
// endpoint, the static image route, and the token-guarded mutations.
// cache wraps the public list route; pass a pass-through middleware to
// disable caching.
func RegisterBoard(e *echo.Echo, m *handler.MessageHandler, r *handler.ReplyHandler, u *handler.UploadHandler, jwtSecret, uploadDir string, cache echo.MiddlewareFunc) {
	e.GET("/api/messages", m.List, cache)
	e.POST("/api/public/upload", u.Upload)
	e.Static("/uploads", uploadDir)

	g := e.Group("/api", middleware.JWTAuth(jwtSecret))

	// ---- Messages ----
	g.POST("/messages", m.Create)
	g.PUT("/messages/:id", m.Update)
	g.DELETE("/messages/:id", m.Delete)
	g.POST("/messages/:id/like", m.Like)
	g.POST("/messages/:id/unlike", m.Unlike)

	// ---- Replies ----
	g.POST("/messages/:id/replies", r.Create)
	g.DELETE("/messages/:mid/replies/:rid", r.Delete)
}
