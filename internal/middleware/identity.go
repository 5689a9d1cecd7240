package middleware

// identity.go carries the optional authentication path.  Most of the app is
// usable by guests, so the public routes accept a Bearer token when present
// and fall back to a guest identity when it is missing or invalid.

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// OptionalJWT returns a middleware that parses a Bearer token when one is
// present and stores its claims in the context, exactly like JWTAuth, but
// never rejects the request.  Requests without a valid token proceed as
// guests with no identity keys set.
func OptionalJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				raw := strings.TrimPrefix(auth, "Bearer ")
				if claims, err := parseClaims(secret, raw); err == nil {
					storeClaims(c, claims)
				}
			}
			return next(c)
		}
	}
}

// userID extracts a user identifier from the context for cache and rate
// limit keys.  It returns "guest" when no user is authenticated.
func userID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		// jwt.MapClaims decodes numeric subjects as float64.
		if v != 0 {
			return strconv.FormatUint(uint64(v), 10)
		}
	case uint64:
		if v != 0 {
			return strconv.FormatUint(v, 10)
		}
	}
	return "guest"
}
