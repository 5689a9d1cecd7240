package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/petfriendly/petfriendly/internal/model"
)

// ReviewRepo provides CRUD operations for the 'reviews' table.  Review ids
// are the string identifiers generated by the store layer ("user_" prefix);
// the images list is stored as a JSON column.  Author display fields are
// denormalized at insert time so the feed renders without joins.
type ReviewRepo struct{ db *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Insert stores a review.
func (r *ReviewRepo) Insert(ctx context.Context, rev model.Review) error {
	var images []byte
	if len(rev.Images) > 0 {
		var err error
		images, err = json.Marshal(rev.Images)
		if err != nil {
			return err
		}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews
		   (id, user_id, accommodation_name, rating, title, content, images, author_username, author_photo_url, created_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		rev.ID, rev.UserID, rev.AccommodationName, rev.Rating, rev.Title, rev.Content,
		images, rev.Author.Username, rev.Author.ProfilePhotoURL, rev.CreatedAt)
	return err
}

// Delete removes a review owned by authorID.  ErrNotFound is returned when
// the review does not exist; ErrForbidden when it belongs to someone else.
func (r *ReviewRepo) Delete(ctx context.Context, id, authorID string) error {
	var owner string
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id FROM reviews WHERE id=? LIMIT 1", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if owner != authorID {
		return ErrForbidden
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	return err
}

// ListAll returns every stored review, newest first.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, accommodation_name, rating, title, content, images, author_username, author_photo_url, created_at
		 FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Review, 0)
	for rows.Next() {
		var rev model.Review
		var images sql.NullString
		var photo sql.NullString
		if err := rows.Scan(
			&rev.ID, &rev.UserID, &rev.AccommodationName, &rev.Rating, &rev.Title, &rev.Content,
			&images, &rev.Author.Username, &photo, &rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		if images.Valid && images.String != "" {
			if err := json.Unmarshal([]byte(images.String), &rev.Images); err != nil {
				return nil, err
			}
		}
		rev.Author.ProfilePhotoURL = photo.String
		out = append(out, rev)
	}
	return out, rows.Err()
}
