package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/weather"
)

// WeatherHandler serves the home-screen weather widget.
type WeatherHandler struct {
	Client *weather.Client
}

func NewWeatherHandler(w *weather.Client) *WeatherHandler { return &WeatherHandler{Client: w} }

// Current returns conditions for ?q (a city or "lat,lon").  The widget
// never breaks: upstream failures yield a synthetic mild report.
func (h *WeatherHandler) Current(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}
	return c.JSON(http.StatusOK, h.Client.CurrentOrFallback(c.Request().Context(), q))
}

// Search resolves a free-text place query to candidate locations.
func (h *WeatherHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}
	locs, err := h.Client.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "location search unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"locations": locs})
}
