package model

import "time"

// ChatMessage is a single message in a support/chat room.  Rooms are keyed
// by a free-form identifier (typically the user id for 1:1 support chat).
type ChatMessage struct {
	ID        uint64    `json:"id"`
	RoomID    string    `json:"room_id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
