package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/catalog"
	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/store"
)

// FavoriteHandler serves the favorites screen.  All routes run behind
// OptionalJWT so both guests and members reach them.
type FavoriteHandler struct {
	Store *store.FavoriteStore
}

func NewFavoriteHandler(s *store.FavoriteStore) *FavoriteHandler {
	return &FavoriteHandler{Store: s}
}

type toggleFavoriteReq struct {
	AccommodationID int `json:"accommodation_id"`
}

// List returns the session's favorites, newest first.
func (h *FavoriteHandler) List(c echo.Context) error {
	favs, err := h.Store.List(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"favorites": favs, "count": len(favs)})
}

// Toggle flips the favorite state for an accommodation and reports it.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	var req toggleFavoriteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	acc, ok := catalog.ByID(req.AccommodationID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "accommodation not found"})
	}

	on, err := h.Store.Toggle(c.Request().Context(), sessionFrom(c), favoriteFromCatalog(acc))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"accommodation_id": strconv.Itoa(acc.ID), "favorited": on})
}

// Status reports whether an accommodation is favorited.
func (h *FavoriteHandler) Status(c echo.Context) error {
	on, err := h.Store.IsFavorite(c.Request().Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"accommodation_id": c.Param("id"), "favorited": on})
}

// Remove deletes a favorite by accommodation id.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	if err := h.Store.Remove(c.Request().Context(), sessionFrom(c), c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// favoriteFromCatalog snapshots the card fields shown on the favorites
// screen so the screen renders even when the catalog record changes.
func favoriteFromCatalog(acc catalog.Accommodation) model.Favorite {
	return model.Favorite{
		AccommodationID:   strconv.Itoa(acc.ID),
		AccommodationName: acc.Name,
		Snapshot: model.AccommodationSnapshot{
			Image:        acc.ImageURL,
			Location:     acc.Location,
			Rating:       acc.Rating,
			PriceDisplay: formatWon(acc.PricePerNight),
			PetFriendly:  true,
		},
	}
}

// formatWon renders a nightly rate the way the cards show it: ₩150,000.
func formatWon(n int) string {
	s := strconv.Itoa(n)
	out := make([]byte, 0, len(s)+len(s)/3+1)
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}
	return "₩" + string(out)
}
