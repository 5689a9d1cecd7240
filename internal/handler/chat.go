package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/repository"
)

// ChatHandler serves per-accommodation chat rooms.  Both reading and
// posting require a session; rooms are a member feature.
type ChatHandler struct {
	Chats *repository.ChatRepo
}

func NewChatHandler(r *repository.ChatRepo) *ChatHandler { return &ChatHandler{Chats: r} }

type postMessageReq struct {
	Content string `json:"content"`
}

// History returns up to ?limit messages for a room, oldest first.
func (h *ChatHandler) History(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	msgs, err := h.Chats.ListByRoom(ctx, c.Param("room"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load messages failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": msgs, "count": len(msgs)})
}

// Post appends a message to a room (protected).
func (h *ChatHandler) Post(c echo.Context) error {
	uid := contextUserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req postMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content required"})
	}

	username, _ := c.Get("username").(string)
	m := model.ChatMessage{
		RoomID:   c.Param("room"),
		UserID:   uid,
		Username: username,
		Content:  req.Content,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Chats.Append(ctx, m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save message failed"})
	}
	m.ID = id
	m.CreatedAt = time.Now().UTC()
	return c.JSON(http.StatusCreated, m)
}
