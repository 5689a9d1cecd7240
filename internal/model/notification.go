package model

import "time"

// Notification kinds shown in the notification center.
const (
	NotificationComment     = "comment"
	NotificationLike        = "like"
	NotificationReservation = "reservation"
	NotificationMessage     = "message"
)

// Notification is one row in a user's notification center.
//
// Fields:
//  ID        – generated "notif_" + time-based suffix.
//  Type      – one of the Notification* constants, picks the list icon.
//  Title     – short headline.
//  Message   – body text.
//  RelatedID – id of the record the notification points at, may be empty.
//  Read      – whether the user has opened it.
//  CreatedAt – creation time.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID string    `json:"related_id,omitempty"`
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
