package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The json tags are omitted because these structs are used
// internally by the repository layer; handlers define separate response
// types with appropriate JSON tags.
//
// Fields:
//  ID              – primary key identifier of the user.
//  Email           – unique email address.
//  PasswordHash    – bcrypt hashed password.
//  Username        – display name shown on reviews and comments.
//  ProfilePhotoURL – optional avatar URL.
//  IsActive        – whether the account is active.
//  CreatedAt       – timestamp of creation.
//  UpdatedAt       – timestamp of last update.
type User struct {
	ID              uint64    // users.id
	Email           string    // users.email
	PasswordHash    string    // users.password_hash
	Username        string    // users.username
	ProfilePhotoURL string    // users.profile_photo_url
	IsActive        bool      // users.is_active
	CreatedAt       time.Time // users.created_at
	UpdatedAt       time.Time // users.updated_at
}
