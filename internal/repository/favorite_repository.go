package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/petfriendly/petfriendly/internal/model"
)

// FavoriteRepo provides CRUD operations for the 'favorites' table.  A
// uniqueness constraint on (user_id, accommodation_id) guarantees at most
// one favorite per pair; the snapshot columns denormalize the display data
// captured when the favorite was created.
type FavoriteRepo struct{ db *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Insert adds a favorite for the user.  ErrDuplicate is returned when the
// pair already exists.
func (r *FavoriteRepo) Insert(ctx context.Context, userID uint64, f model.Favorite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites
		   (user_id, accommodation_id, accommodation_name, image_url, location, rating, price_display, pet_friendly)
		 VALUES (?,?,?,?,?,?,?,?)`,
		userID, f.AccommodationID, f.AccommodationName,
		f.Snapshot.Image, f.Snapshot.Location, f.Snapshot.Rating, f.Snapshot.PriceDisplay, f.Snapshot.PetFriendly)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes the favorite for (user, accommodation).  Deleting a
// missing pair returns ErrNotFound.
func (r *FavoriteRepo) Delete(ctx context.Context, userID uint64, accommodationID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id=? AND accommodation_id=?",
		userID, accommodationID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether the user has favorited the accommodation.
func (r *FavoriteRepo) Exists(ctx context.Context, userID uint64, accommodationID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM favorites WHERE user_id=? AND accommodation_id=? LIMIT 1",
		userID, accommodationID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser returns the user's favorites, newest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT accommodation_id, accommodation_name, image_url, location, rating, price_display, pet_friendly, created_at
		 FROM favorites WHERE user_id=? ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Favorite, 0)
	for rows.Next() {
		var f model.Favorite
		var created time.Time
		if err := rows.Scan(
			&f.AccommodationID, &f.AccommodationName,
			&f.Snapshot.Image, &f.Snapshot.Location, &f.Snapshot.Rating,
			&f.Snapshot.PriceDisplay, &f.Snapshot.PetFriendly, &created,
		); err != nil {
			return nil, err
		}
		f.ID = f.AccommodationID
		f.CreatedAt = created
		out = append(out, f)
	}
	return out, rows.Err()
}
