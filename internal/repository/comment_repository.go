package repository

import (
	"context"
	"database/sql"

	"github.com/petfriendly/petfriendly/internal/model"
)

// CommentRepo provides CRUD operations for the 'review_comments' table.
// Comment ids carry the "comment_" prefix generated by the store layer.
type CommentRepo struct{ db *sql.DB }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{db: db} }

// Insert stores a comment under its review.
func (r *CommentRepo) Insert(ctx context.Context, c model.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_comments
		   (id, review_id, user_id, content, author_username, author_photo_url, created_at)
		 VALUES (?,?,?,?,?,?,?)`,
		c.ID, c.ReviewID, c.UserID, c.Content, c.Author.Username, c.Author.ProfilePhotoURL, c.CreatedAt)
	return err
}

// Delete removes a comment owned by authorID.  ErrNotFound when missing,
// ErrForbidden when owned by someone else.
func (r *CommentRepo) Delete(ctx context.Context, id, authorID string) error {
	var owner string
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id FROM review_comments WHERE id=? LIMIT 1", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if owner != authorID {
		return ErrForbidden
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM review_comments WHERE id=?", id)
	return err
}

// DeleteByReview removes every comment attached to a review.  Used when the
// review itself is deleted.
func (r *CommentRepo) DeleteByReview(ctx context.Context, reviewID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM review_comments WHERE review_id=?", reviewID)
	return err
}

// ListByReview returns a review's comments, oldest first.
func (r *CommentRepo) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, review_id, user_id, content, author_username, author_photo_url, created_at
		 FROM review_comments WHERE review_id=? ORDER BY created_at ASC`,
		reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		var photo sql.NullString
		if err := rows.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.Content, &c.Author.Username, &photo, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Author.ProfilePhotoURL = photo.String
		out = append(out, c)
	}
	return out, rows.Err()
}
