package store

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/petfriendly/petfriendly/internal/catalog"
	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
)

// ReservationAnnouncer fans a confirmed booking out to the message broker.
// userID 0 marks a guest booking.  Announcements are best-effort; a broker
// outage never fails the booking.
type ReservationAnnouncer interface {
	Announce(ctx context.Context, userID uint64, r model.Reservation) error
}

// ReservationInput is the booking form payload.
type ReservationInput struct {
	AccommodationID int       `json:"accommodation_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	GuestName       string    `json:"guest_name"`
	GuestPhone      string    `json:"guest_phone"`
	GuestEmail      string    `json:"guest_email"`
	PetCount        int       `json:"pet_count"`
	SpecialRequest  string    `json:"special_request"`
}

// ReservationStore appends booking receipts to the local mirror.  Receipts
// have no remote table; the only remote side effect is the broker
// announcement.
type ReservationStore struct {
	local     *localstore.Store
	bus       *event.Bus
	announcer ReservationAnnouncer
	now       func() time.Time
}

func NewReservationStore(local *localstore.Store, bus *event.Bus, announcer ReservationAnnouncer) *ReservationStore {
	return &ReservationStore{local: local, bus: bus, announcer: announcer, now: time.Now}
}

// Create validates the form, computes the stay and appends the receipt.
func (s *ReservationStore) Create(ctx context.Context, sess Session, in ReservationInput) (model.Reservation, error) {
	acc, ok := catalog.ByID(in.AccommodationID)
	if !ok {
		return model.Reservation{}, invalidf("unknown accommodation %d", in.AccommodationID)
	}
	if strings.TrimSpace(in.GuestName) == "" {
		return model.Reservation{}, invalidf("guest name is required")
	}
	if strings.TrimSpace(in.GuestPhone) == "" {
		return model.Reservation{}, invalidf("guest phone is required")
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return model.Reservation{}, invalidf("check-in and check-out dates are required")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return model.Reservation{}, invalidf("check-out must be after check-in")
	}
	if in.PetCount < 1 {
		return model.Reservation{}, invalidf("at least one pet is required")
	}

	nights := int(math.Ceil(in.CheckOut.Sub(in.CheckIn).Hours() / 24))
	now := s.now()
	r := model.Reservation{
		ReservationNumber: reservationNumber(now),
		AccommodationID:   acc.ID,
		AccommodationName: acc.Name,
		Location:          acc.Location,
		ImageURL:          acc.ImageURL,
		PricePerNight:     acc.PricePerNight,
		CheckIn:           in.CheckIn,
		CheckOut:          in.CheckOut,
		Nights:            nights,
		TotalPrice:        nights * acc.PricePerNight,
		GuestName:         in.GuestName,
		GuestPhone:        in.GuestPhone,
		GuestEmail:        in.GuestEmail,
		PetCount:          in.PetCount,
		SpecialRequest:    in.SpecialRequest,
		CreatedAt:         now.UTC(),
	}

	stored, err := s.localList()
	if err != nil {
		return model.Reservation{}, err
	}
	stored = append([]model.Reservation{r}, stored...)
	if err := s.local.Put(localstore.KeyReservations, stored); err != nil {
		return model.Reservation{}, err
	}

	if s.announcer != nil {
		if err := s.announcer.Announce(ctx, sess.UserID, r); err != nil {
			logRemoteFailure("reservations", "announce", err)
		}
	}
	s.bus.Publish(event.KindReservations)
	return r, nil
}

// List returns the stored receipts, newest first.
func (s *ReservationStore) List(ctx context.Context, sess Session) ([]model.Reservation, error) {
	return s.localList()
}

func (s *ReservationStore) localList() ([]model.Reservation, error) {
	var rs []model.Reservation
	if _, err := s.local.Get(localstore.KeyReservations, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// reservationNumber builds the user-facing booking code: "PF" plus the last
// eight digits of the creation timestamp in milliseconds.
func reservationNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "PF" + ms
}
