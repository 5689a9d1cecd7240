package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/model"
)

func validReservationInput() ReservationInput {
	return ReservationInput{
		AccommodationID: 1,
		CheckIn:         time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, 4, 12, 11, 0, 0, 0, time.UTC),
		GuestName:       "김철수",
		GuestPhone:      "010-1234-5678",
		GuestEmail:      "chulsoo@example.com",
		PetCount:        1,
	}
}

func TestReservationCreate(t *testing.T) {
	bus := event.NewBus()
	announcer := &fakeAnnouncer{}
	s := NewReservationStore(newLocal(t), bus, announcer)
	s.now = tickClock()

	ch, cancel := bus.Subscribe(event.KindReservations)
	defer cancel()

	r, err := s.Create(context.Background(), Session{UserID: 7}, validReservationInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(r.ReservationNumber, "PF") || len(r.ReservationNumber) != 10 {
		t.Fatalf("reservation number %q, want PF + 8 digits", r.ReservationNumber)
	}
	// 1일 20시간 stay rounds up to 2 nights.
	if r.Nights != 2 {
		t.Fatalf("nights = %d, want 2", r.Nights)
	}
	if r.TotalPrice != 2*150000 {
		t.Fatalf("total = %d, want %d", r.TotalPrice, 2*150000)
	}
	if r.AccommodationName != "코지 펫 리조트" {
		t.Fatalf("accommodation snapshot = %q", r.AccommodationName)
	}
	if !drained(ch) {
		t.Fatalf("expected a reservations change signal")
	}
	if announcer.calls != 1 || announcer.last.ReservationNumber != r.ReservationNumber {
		t.Fatalf("broker announcement not made: %+v", announcer)
	}
	if announcer.lastUser != 7 {
		t.Fatalf("announcement user id = %d, want 7", announcer.lastUser)
	}
}

func TestReservationNightsRoundUp(t *testing.T) {
	bus := event.NewBus()
	s := NewReservationStore(newLocal(t), bus, nil)
	s.now = tickClock()

	in := validReservationInput()
	in.CheckIn = time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	in.CheckOut = in.CheckIn.Add(25 * time.Hour)
	r, err := s.Create(context.Background(), Session{}, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Nights != 2 {
		t.Fatalf("25h stay: nights = %d, want 2", r.Nights)
	}

	in.CheckOut = in.CheckIn.Add(24 * time.Hour)
	r, err = s.Create(context.Background(), Session{}, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Nights != 1 {
		t.Fatalf("24h stay: nights = %d, want 1", r.Nights)
	}
}

func TestReservationValidation(t *testing.T) {
	bus := event.NewBus()
	s := NewReservationStore(newLocal(t), bus, nil)
	s.now = tickClock()

	cases := []struct {
		name   string
		mutate func(*ReservationInput)
	}{
		{"unknown accommodation", func(in *ReservationInput) { in.AccommodationID = 999 }},
		{"no name", func(in *ReservationInput) { in.GuestName = " " }},
		{"no phone", func(in *ReservationInput) { in.GuestPhone = "" }},
		{"no dates", func(in *ReservationInput) { in.CheckIn, in.CheckOut = time.Time{}, time.Time{} }},
		{"checkout before checkin", func(in *ReservationInput) { in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn }},
		{"no pets", func(in *ReservationInput) { in.PetCount = 0 }},
	}
	for _, tc := range cases {
		in := validReservationInput()
		tc.mutate(&in)
		if _, err := s.Create(context.Background(), Session{}, in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", tc.name, err)
		}
	}

	rs, err := s.List(context.Background(), Session{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 0 {
		t.Fatalf("rejected inputs wrote %d receipts, want 0", len(rs))
	}
}

func TestReservationListNewestFirst(t *testing.T) {
	bus := event.NewBus()
	s := NewReservationStore(newLocal(t), bus, nil)
	s.now = tickClock()

	first, err := s.Create(context.Background(), Session{}, validReservationInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	in := validReservationInput()
	in.AccommodationID = 2
	second, err := s.Create(context.Background(), Session{}, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rs, err := s.List(context.Background(), Session{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("list has %d receipts, want 2", len(rs))
	}
	if rs[0].ReservationNumber != second.ReservationNumber || rs[1].ReservationNumber != first.ReservationNumber {
		t.Fatalf("receipts not newest first: %+v", rs)
	}
}

func TestReservationSurvivesBrokerOutage(t *testing.T) {
	bus := event.NewBus()
	announcer := &fakeAnnouncer{fail: true}
	s := NewReservationStore(newLocal(t), bus, announcer)
	s.now = tickClock()

	if _, err := s.Create(context.Background(), Session{}, validReservationInput()); err != nil {
		t.Fatalf("create during broker outage: %v", err)
	}
	rs, err := s.List(context.Background(), Session{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("receipt not stored during broker outage")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := NewPreferenceStore(newLocal(t))

	p, err := s.Get()
	if err != nil {
		t.Fatalf("get defaults: %v", err)
	}
	if p != (model.Preferences{}) {
		t.Fatalf("defaults not zero: %+v", p)
	}

	want := model.Preferences{GuestLocation: "서울", DarkMode: true, UseFahrenheit: false}
	if err := s.Put(want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
