package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/utils"
)

// UserRepo provides CRUD operations for the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a user and returns its ID.  The username defaults to the
// part of the email before the '@' when empty.
func (r *UserRepo) Create(ctx context.Context, email, password, username string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if username == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			username = email[:at]
		} else {
			username = email
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, username) VALUES (?,?,?)",
		email, hash, username)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	var photo sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,username,profile_photo_url,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &photo, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	u.ProfilePhotoURL = photo.String
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	var photo sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,username,profile_photo_url,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &photo, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	u.ProfilePhotoURL = photo.String
	return u, err
}

// UpdateProfile sets the display name and photo URL for a user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, username, photoURL string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET username=?, profile_photo_url=? WHERE id=?",
		strings.TrimSpace(username), photoURL, id)
	return err
}
