package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/repository"
	"github.com/petfriendly/petfriendly/internal/store"
)

// contextUserID reads the numeric user id stored by the JWT middleware.
// Zero means the request is unauthenticated.
func contextUserID(c echo.Context) uint64 {
	switch v := c.Get("user_id").(type) {
	case float64:
		// jwt.MapClaims decodes numeric claims as float64.
		return uint64(v)
	case uint64:
		return v
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// sessionFrom builds the store session for the current request.  Guests get
// the zero session.
func sessionFrom(c echo.Context) store.Session {
	sess := store.Session{UserID: contextUserID(c)}
	if v, ok := c.Get("username").(string); ok {
		sess.Username = v
	}
	if v, ok := c.Get("photo_url").(string); ok {
		sess.PhotoURL = v
	}
	return sess
}

// storeError maps store and repository sentinels to a JSON error response.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalid):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrSeedRecord), errors.Is(err, store.ErrNotOwner), errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"error": "already exists"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
