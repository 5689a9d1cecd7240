package model

import (
	"strings"
	"time"
)

// Identifier prefixes distinguish records created through this service from
// the seed records shipped with the community feed.  Deletion is only ever
// permitted for prefixed records; seed records are read-only.
const (
	UserReviewPrefix  = "user_"
	UserCommentPrefix = "comment_"
)

// AuthorProfile is the denormalized author display attached to reviews and
// comments when they are created.
type AuthorProfile struct {
	Username        string `json:"username"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// Review is a community post about an accommodation.  AccommodationName is
// free text, not a catalog foreign key.  LikesCount and CommentsCount are
// denormalized counters adjusted on the merged view.
type Review struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	AccommodationName string        `json:"accommodation_name"`
	Rating            int           `json:"rating"` // 1..5 stars
	Title             string        `json:"title"`
	Content           string        `json:"content"`
	Images            []string      `json:"images,omitempty"` // at most 5
	LikesCount        int           `json:"likes_count"`
	CommentsCount     int           `json:"comments_count"`
	CreatedAt         time.Time     `json:"created_at"`
	Author            AuthorProfile `json:"user_profile"`
	UserLiked         bool          `json:"user_liked"`
}

// IsUserAuthored reports whether the review was created through this
// service, as opposed to being seed data.
func (r Review) IsUserAuthored() bool { return strings.HasPrefix(r.ID, UserReviewPrefix) }

// Comment is a reply attached to a review.
type Comment struct {
	ID        string        `json:"id"`
	ReviewID  string        `json:"review_id"`
	UserID    string        `json:"user_id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Author    AuthorProfile `json:"user_profile"`
}

// IsUserAuthored reports whether the comment carries the user-generated
// identifier prefix.
func (c Comment) IsUserAuthored() bool { return strings.HasPrefix(c.ID, UserCommentPrefix) }
