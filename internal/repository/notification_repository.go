package repository

import (
	"context"
	"database/sql"

	"github.com/petfriendly/petfriendly/internal/model"
)

// NotificationRepo provides CRUD operations for the 'notifications' table.
// Notification ids carry the "notif_" prefix generated by the store layer.
type NotificationRepo struct{ db *sql.DB }

func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Insert stores a notification row for a user.
func (r *NotificationRepo) Insert(ctx context.Context, userID uint64, n model.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications
		   (id, user_id, type, title, message, related_id, is_read, created_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		n.ID, userID, n.Type, n.Title, n.Message, n.RelatedID, n.Read, n.CreatedAt)
	return err
}

// ListByUser returns the user's notifications, newest first, capped at limit.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, title, message, related_id, is_read, created_at
		 FROM notifications WHERE user_id=? ORDER BY created_at DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		var related sql.NullString
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &related, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.RelatedID = related.String
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flags one of the user's notifications as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, userID uint64, id string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read=1 WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read=1 WHERE user_id=? AND is_read=0", userID)
	return err
}

// Delete removes one of the user's notifications.  ErrNotFound when missing.
func (r *NotificationRepo) Delete(ctx context.Context, userID uint64, id string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM notifications WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
