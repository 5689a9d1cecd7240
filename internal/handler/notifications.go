package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/store"
)

// NotificationHandler serves the notification center.  Routes are
// member-only; guests have no inbox.
type NotificationHandler struct {
	Store *store.NotificationStore
}

func NewNotificationHandler(s *store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{Store: s}
}

// List returns the session's notifications plus the unread badge count.
func (h *NotificationHandler) List(c echo.Context) error {
	ns, err := h.Store.List(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return storeError(c, err)
	}
	unread := 0
	for _, n := range ns {
		if !n.Read {
			unread++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"notifications": ns, "unread_count": unread})
}

// UnreadCount returns only the badge count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	n, err := h.Store.UnreadCount(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"unread_count": n})
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.Store.MarkRead(c.Request().Context(), sessionFrom(c), c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead flags every notification of the session as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.Store.MarkAllRead(c.Request().Context(), sessionFrom(c)); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one notification.
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.Store.Delete(c.Request().Context(), sessionFrom(c), c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
