package middleware

// identity.go holds the helper that turns the user_id context value set by
// JWTAuth into a string for rate-limit keys.  Unauthenticated requests key
// as "anon".

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID renders the authenticated user's ID for use in Redis keys.
// The JWT middleware stores the raw sub claim, which arrives as a float64
// after JSON decoding; any other shape is formatted as-is.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.0f", t)
	case string:
		if t != "" {
			return t
		}
		return "anon"
	default:
		return fmt.Sprint(t)
	}
}
