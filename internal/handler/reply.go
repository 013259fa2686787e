package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/model"
	"github.com/sepehrda/message-wall/internal/repository"
)

// ReplyHandler serves replies nested under a message.
type ReplyHandler struct {
	Replies ReplyStore
}

func NewReplyHandler(replies ReplyStore) *ReplyHandler {
	if replies == nil {
		panic("nil ReplyStore passed to NewReplyHandler")
	}
	return &ReplyHandler{Replies: replies}
}

type createReplyReq struct {
	Text string `json:"text"`
}

// Create handles POST /api/messages/:id/replies. The store checks the parent
// inside its transaction, so a vanished message surfaces as 404 here.
func (h *ReplyHandler) Create(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	msgID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}
	var req createReplyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "text is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rep := model.Reply{
		MessageID: msgID,
		AuthorID:  cl.UserID,
		Text:      req.Text,
	}
	if err := h.Replies.Create(ctx, &rep); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reply failed"})
	}
	return c.JSON(http.StatusCreated, rep)
}

// Delete handles DELETE /api/messages/:mid/replies/:rid. Author or admin.
// A rid that belongs to a different message is a 404, not a 403.
func (h *ReplyHandler) Delete(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	msgID, err := pathID(c, "mid")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}
	replyID, err := pathID(c, "rid")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reply id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rep, err := h.Replies.GetByID(ctx, msgID, replyID)
	if err != nil {
		if errors.Is(err, repository.ErrReplyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reply not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reply failed"})
	}
	if err := auth.Authorize(cl, rep.AuthorID, auth.ActionDelete); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if err := h.Replies.Delete(ctx, msgID, replyID); err != nil {
		if errors.Is(err, repository.ErrReplyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reply not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reply failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
