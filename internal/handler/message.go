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

// MessageHandler serves the message endpoints of the wall.
type MessageHandler struct {
	Messages MessageStore
}

func NewMessageHandler(messages MessageStore) *MessageHandler {
	if messages == nil {
		panic("nil MessageStore passed to NewMessageHandler")
	}
	return &MessageHandler{Messages: messages}
}

type createMessageReq struct {
	Name      string   `json:"name"`
	Text      string   `json:"message"`
	TextColor string   `json:"textColor"`
	Images    []string `json:"images"`
}

type updateMessageReq struct {
	Name      *string   `json:"name"`
	Text      *string   `json:"message"`
	TextColor *string   `json:"textColor"`
	Images    *[]string `json:"images"`
}

// Create handles POST /api/messages.
func (h *MessageHandler) Create(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	var req createMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Text = strings.TrimSpace(req.Text)
	if req.Name == "" || req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and message are required"})
	}
	if req.Images == nil {
		req.Images = []string{}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.Message{
		AuthorID:  cl.UserID,
		Name:      req.Name,
		Text:      req.Text,
		TextColor: strings.TrimSpace(req.TextColor),
		Images:    req.Images,
	}
	if err := h.Messages.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create message failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// List handles GET /api/messages. Public, no token required.
func (h *MessageHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Messages.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list messages failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Update handles PUT /api/messages/:id. Only the author may edit; admins get
// no override here, unlike Delete.
func (h *MessageHandler) Update(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}
	var req updateMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must not be empty"})
	}
	if req.Text != nil && strings.TrimSpace(*req.Text) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message must not be empty"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load message failed"})
	}
	if err := auth.Authorize(cl, m.AuthorID, auth.ActionEdit); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	updated, err := h.Messages.Update(ctx, id, model.MessagePatch{
		Name:      req.Name,
		Text:      req.Text,
		TextColor: req.TextColor,
		Images:    req.Images,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update message failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/messages/:id. Author or admin. Replies to the
// message stay on the board.
func (h *MessageHandler) Delete(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load message failed"})
	}
	if err := auth.Authorize(cl, m.AuthorID, auth.ActionDelete); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	if err := h.Messages.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete message failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

// Like handles POST /api/messages/:id/like. Any signed-in user, any number
// of times; there is no per-user bookkeeping.
func (h *MessageHandler) Like(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Messages.Like(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "like failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Unlike handles POST /api/messages/:id/unlike. The count floors at zero;
// unliking an unliked message is a 200 no-op.
func (h *MessageHandler) Unlike(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Messages.Unlike(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "unlike failed"})
	}
	return c.JSON(http.StatusOK, m)
}
