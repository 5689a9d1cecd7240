package middleware // reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's claims into the request context.  Protected
// handlers read the values via c.Get("user_id"), c.Get("username"),
// c.Get("photo_url") and c.Get("role").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := parseClaims(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			storeClaims(c, claims)
			return next(c)
		}
	}
}

// parseClaims validates an HS256 token and returns its claim map.
func parseClaims(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, echo.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.ErrUnauthorized
	}
	return claims, nil
}

func storeClaims(c echo.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["sub"])
	c.Set("role", claims["role"])
	if v, ok := claims["username"].(string); ok {
		c.Set("username", v)
	}
	if v, ok := claims["photo_url"].(string); ok {
		c.Set("photo_url", v)
	}
}
