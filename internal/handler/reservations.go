package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/store"
)

// ReservationHandler serves the booking form and the receipts screen.
type ReservationHandler struct {
	Store *store.ReservationStore
}

func NewReservationHandler(s *store.ReservationStore) *ReservationHandler {
	return &ReservationHandler{Store: s}
}

// Create books a stay and returns the receipt.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req store.ReservationInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	r, err := h.Store.Create(c.Request().Context(), sessionFrom(c), req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// List returns stored receipts, newest first.
func (h *ReservationHandler) List(c echo.Context) error {
	rs, err := h.Store.List(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": rs, "count": len(rs)})
}
