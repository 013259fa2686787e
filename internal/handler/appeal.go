package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/model"
	"github.com/sepehrda/message-wall/internal/queue"
)

// AppealHandler serves the appeal endpoints. Publish is optional; when set,
// each stored appeal is announced on the queue. The publisher logs its own
// failures and a lost event never fails the request.
type AppealHandler struct {
	Appeals AppealStore
	Publish func(ctx context.Context, evt queue.AppealCreatedEvent) error
}

func NewAppealHandler(appeals AppealStore, publish func(ctx context.Context, evt queue.AppealCreatedEvent) error) *AppealHandler {
	if appeals == nil {
		panic("nil AppealStore passed to NewAppealHandler")
	}
	return &AppealHandler{Appeals: appeals, Publish: publish}
}

type createAppealReq struct {
	AppealType string `json:"appealType"`
	Report     string `json:"report"`
	Content    string `json:"content"`
}

// Create handles POST /api/appeals.
func (h *AppealHandler) Create(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	var req createAppealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.AppealType = strings.TrimSpace(req.AppealType)
	req.Report = strings.TrimSpace(req.Report)
	req.Content = strings.TrimSpace(req.Content)
	if req.AppealType == "" || req.Report == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "appealType, report and content are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a := model.Appeal{
		ReporterID:     cl.UserID,
		AppealType:     req.AppealType,
		ReportedTarget: req.Report,
		Content:        req.Content,
	}
	if err := h.Appeals.Create(ctx, &a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create appeal failed"})
	}

	if h.Publish != nil {
		_ = h.Publish(ctx, queue.AppealCreatedEvent{
			AppealID:       a.ID,
			ReporterID:     a.ReporterID,
			AppealType:     a.AppealType,
			ReportedTarget: a.ReportedTarget,
			CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusCreated, a)
}

// List handles GET /api/appeals: every appeal, newest first.
func (h *AppealHandler) List(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Appeals.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list appeals failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// ListByReporter handles GET /api/appeals/user/:id. Reporters see their own
// appeals; admins see anyone's.
func (h *AppealHandler) ListByReporter(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	reporterID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := auth.Authorize(cl, reporterID, auth.ActionView); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Appeals.ListByReporter(ctx, reporterID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list appeals failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Delete handles DELETE /api/appeals/:id. Any signed-in user may delete any
// appeal, and deleting an unknown id still answers 200. Only a storage
// failure turns into an error.
func (h *AppealHandler) Delete(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid appeal id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Appeals.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete appeal failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
