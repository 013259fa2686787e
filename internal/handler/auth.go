package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/config"
	"github.com/sepehrda/message-wall/internal/model"
	"github.com/sepehrda/message-wall/internal/repository"
)

// defaultAvatar is assigned at registration and served from the same static
// route as uploaded images.
const defaultAvatar = "/uploads/default-avatar.png"

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	if users == nil {
		panic("nil UserStore passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token  string `json:"token"`
	UserID uint64 `json:"userId"`
	Avatar string `json:"avatar"`
	Gender string `json:"gender"`
}

// Register handles POST /api/register: create the account and return it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	if req.Age < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "age must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := model.User{
		Username: req.Username,
		Role:     auth.RoleUser,
		Gender:   strings.TrimSpace(req.Gender),
		Age:      req.Age,
		Avatar:   defaultAvatar,
	}
	if err := h.Users.Create(ctx, &u, req.Password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, u)
}

// Login handles POST /api/login. Success carries a fresh token plus the
// profile fields the board shows next to posts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same body as a bad password so usernames cannot be probed.
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid username or password"})
	}

	// The token carries a snapshot of the profile taken now; later profile
	// changes only show up after the next login.
	access, err := auth.NewAccessToken(h.Cfg.JWTSecret, auth.Claims{
		UserID: u.ID,
		Role:   u.Role,
		Avatar: u.Avatar,
		Gender: u.Gender,
	}, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token:  access.Token,
		UserID: u.ID,
		Avatar: u.Avatar,
		Gender: u.Gender,
	})
}

// Me handles GET /api/me: echo back the claims of the presented token.
func (h *AuthHandler) Me(c echo.Context) error {
	cl, err := currentClaims(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"userId": cl.UserID,
		"role":   cl.Role,
		"avatar": cl.Avatar,
		"gender": cl.Gender,
	})
}
