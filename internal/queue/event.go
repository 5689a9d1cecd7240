// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a booking is confirmed. It
// carries enough of the receipt for downstream consumers to log or notify
// without reading the primary store.
type ReservationConfirmedEvent struct {
	ReservationNumber string `json:"reservation_number"`
	UserID            uint64 `json:"user_id"` // 0 for guest bookings
	AccommodationID   int    `json:"accommodation_id"`
	AccommodationName string `json:"accommodation_name"`
	Location          string `json:"location"`
	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	Nights            int    `json:"nights"`
	TotalPrice        int    `json:"total_price"`
	GuestName         string `json:"guest_name"`
	PetCount          int    `json:"pet_count"`
	ConfirmedAt       string `json:"confirmed_at"`
}
