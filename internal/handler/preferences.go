package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/store"
)

// PreferenceHandler serves the UI settings (location, dark mode,
// temperature unit).
type PreferenceHandler struct {
	Store *store.PreferenceStore
}

func NewPreferenceHandler(s *store.PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{Store: s}
}

// Get returns the stored preferences.
func (h *PreferenceHandler) Get(c echo.Context) error {
	p, err := h.Store.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load preferences failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Put replaces the stored preferences wholesale.
func (h *PreferenceHandler) Put(c echo.Context) error {
	var p model.Preferences
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Store.Put(p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save preferences failed"})
	}
	return c.JSON(http.StatusOK, p)
}
