package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// stores the decoded claims snapshot in the request context. Handlers read it
// via c.Get("claims").(auth.Claims); the user id and role are additionally
// stored under their own keys for middleware that needs only one of them.
// The snapshot is not checked against the users table: a token keeps the
// identity it was minted with until it expires.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer " followed by the JWT. Anything
			// else means the caller never authenticated.
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			cl, err := auth.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set("claims", cl)
			c.Set("user_id", cl.UserID)
			c.Set("role", cl.Role)
			return next(c)
		}
	}
}
