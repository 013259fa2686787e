package middleware

// identity.go holds the helper middleware files share for reading the
// authenticated identity out of the Echo context. JWTAuth stores the user id
// under "user_id" as uint64; requests that never passed through it key as
// "anon" so guests share one rate limit bucket per IP.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// identityKey renders the authenticated user id as a string for use in Redis
// keys, or "anon" for unauthenticated requests.
func identityKey(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case uint64:
		if v != 0 {
			return strconv.FormatUint(v, 10)
		}
	case string:
		if v != "" {
			return v
		}
	}
	return "anon"
}
