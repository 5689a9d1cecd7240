package model

import "time"

// AccommodationSnapshot is the denormalized display data captured at the
// moment an accommodation is favorited.  It is stored alongside the
// favorite so lists render without consulting the catalog again.
//
// Fields:
//  Image        – card image URL.
//  Location     – region string as shown on the card.
//  Rating       – rating at capture time.
//  PriceDisplay – formatted nightly price (e.g. "₩150,000").
//  PetFriendly  – always true for catalog records; kept for the badge.
type AccommodationSnapshot struct {
	Image        string  `json:"image"`
	Location     string  `json:"location"`
	Rating       float64 `json:"rating"`
	PriceDisplay string  `json:"price"`
	PetFriendly  bool    `json:"pet_friendly"`
}

// Favorite marks an accommodation saved by a user (or guest session).
// At most one favorite exists per (user, accommodation) pair.
type Favorite struct {
	ID                string                `json:"id"` // equal to AccommodationID
	AccommodationID   string                `json:"accommodation_id"`
	AccommodationName string                `json:"accommodation_name"`
	Snapshot          AccommodationSnapshot `json:"accommodation_data"`
	CreatedAt         time.Time             `json:"created_at"`
}
