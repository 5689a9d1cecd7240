package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/catalog"
)

// AccommodationHandler serves the static catalog and its search endpoint.
type AccommodationHandler struct{}

func NewAccommodationHandler() *AccommodationHandler { return &AccommodationHandler{} }

// List returns catalog records matching the query parameters.  Missing
// parameters keep the listing-page defaults, so a bare request returns the
// whole catalog in recommended order.
func (h *AccommodationHandler) List(c echo.Context) error {
	crit := catalog.DefaultCriteria()
	if err := c.Bind(&crit); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid query"})
	}
	results := catalog.Filter(catalog.All(), crit)
	return c.JSON(http.StatusOK, echo.Map{
		"criteria": crit,
		"count":    len(results),
		"results":  results,
	})
}

// Get returns a single catalog record by id.
func (h *AccommodationHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	acc, ok := catalog.ByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "accommodation not found"})
	}
	return c.JSON(http.StatusOK, acc)
}
