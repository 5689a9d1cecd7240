package repository

import (
	"context"
	"database/sql"

	"github.com/petfriendly/petfriendly/internal/model"
)

// ChatRepo persists chat messages.  Messages are append-only; clients poll
// the room history, so ordering is oldest first.
type ChatRepo struct{ db *sql.DB }

func NewChatRepo(db *sql.DB) *ChatRepo { return &ChatRepo{db: db} }

// Append inserts a message and returns its generated id.
func (r *ChatRepo) Append(ctx context.Context, m model.ChatMessage) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_messages (room_id, user_id, username, content) VALUES (?,?,?,?)",
		m.RoomID, m.UserID, m.Username, m.Content)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByRoom returns up to limit messages for a room, oldest first.
func (r *ChatRepo) ListByRoom(ctx context.Context, roomID string, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, room_id, user_id, username, content, created_at
		 FROM chat_messages WHERE room_id=? ORDER BY created_at ASC, id ASC LIMIT ?`,
		roomID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ChatMessage, 0, limit)
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.RoomID, &m.UserID, &m.Username, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
