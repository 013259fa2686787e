package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
)

// errNoClaims signals that a protected handler ran without JWTAuth having
// stored a token snapshot first.
var errNoClaims = errors.New("no claims in context")

// currentClaims pulls the auth.Claims stored by middleware.JWTAuth.
func currentClaims(c echo.Context) (auth.Claims, error) {
	cl, ok := c.Get("claims").(auth.Claims)
	if !ok || cl.UserID == 0 {
		return auth.Claims{}, errNoClaims
	}
	return cl, nil
}

// pathID parses a numeric path parameter. Zero and non-numeric values are
// rejected so storage never sees a bogus id.
func pathID(c echo.Context, name string) (uint64, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}
