package model

import "time"

// Reservation is a client-local booking receipt.  It snapshots the
// accommodation at booking time and carries the computed stay length and
// total.  Receipts are appended to the local mirror store only; they are
// never persisted remotely and never mutated after creation.
//
// Fields:
//  ReservationNumber – generated "PF" + time-based suffix, shown to the user.
//  AccommodationID   – catalog id of the booked accommodation.
//  AccommodationName – snapshot of the name.
//  Location          – snapshot of the region string.
//  ImageURL          – snapshot of the card image.
//  PricePerNight     – nightly rate in won at booking time.
//  CheckIn, CheckOut – stay boundary dates.
//  Nights            – ceil((CheckOut-CheckIn)/24h).
//  TotalPrice        – Nights × PricePerNight.
//  GuestName         – contact fields collected on the form.
//  GuestPhone
//  GuestEmail
//  PetCount          – number of pets staying.
//  SpecialRequest    – free-text request, may be empty.
//  CreatedAt         – receipt creation time.
type Reservation struct {
	ReservationNumber string    `json:"reservation_number"`
	AccommodationID   int       `json:"accommodation_id"`
	AccommodationName string    `json:"accommodation_name"`
	Location          string    `json:"location"`
	ImageURL          string    `json:"image_url"`
	PricePerNight     int       `json:"price_per_night"`
	CheckIn           time.Time `json:"check_in"`
	CheckOut          time.Time `json:"check_out"`
	Nights            int       `json:"nights"`
	TotalPrice        int       `json:"total_price"`
	GuestName         string    `json:"guest_name"`
	GuestPhone        string    `json:"guest_phone"`
	GuestEmail        string    `json:"guest_email"`
	PetCount          int       `json:"pet_count"`
	SpecialRequest    string    `json:"special_request,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
