package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the admin dashboard endpoints. Role checks happen in
// the router via middleware.RequireRole.
type AdminHandler struct {
	Stats StatsStore
}

func NewAdminHandler(stats StatsStore) *AdminHandler {
	if stats == nil {
		panic("nil StatsStore passed to NewAdminHandler")
	}
	return &AdminHandler{Stats: stats}
}

// BoardStats handles GET /api/admin/stats.
func (h *AdminHandler) BoardStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.Stats.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load stats failed"})
	}
	return c.JSON(http.StatusOK, stats)
}
