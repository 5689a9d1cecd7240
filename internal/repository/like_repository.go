package repository

import (
	"context"
	"database/sql"
	"strings"
)

// LikeRepo stores which reviews a user has liked.  The 'review_likes' table
// has a uniqueness constraint on (user_id, review_id); review ids are the
// string identifiers used by the community feed, so seed and user-authored
// reviews can both be liked.
type LikeRepo struct{ db *sql.DB }

func NewLikeRepo(db *sql.DB) *LikeRepo { return &LikeRepo{db: db} }

// Insert records a like.  Liking the same review twice returns ErrDuplicate.
func (r *LikeRepo) Insert(ctx context.Context, userID uint64, reviewID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO review_likes (user_id, review_id) VALUES (?,?)",
		userID, reviewID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes a like; removing a missing like returns ErrNotFound.
func (r *LikeRepo) Delete(ctx context.Context, userID uint64, reviewID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM review_likes WHERE user_id=? AND review_id=?",
		userID, reviewID)
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

// ListReviewIDs returns the ids of every review the user has liked.
func (r *LikeRepo) ListReviewIDs(ctx context.Context, userID uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT review_id FROM review_likes WHERE user_id=?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
