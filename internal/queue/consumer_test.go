package queue

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petfriendly/petfriendly/internal/model"
)

type recordingSink struct {
	calls   int
	userID  uint64
	typ     string
	related string
}

func (r *recordingSink) Add(ctx context.Context, userID uint64, typ, title, message, relatedID string) error {
	r.calls++
	r.userID = userID
	r.typ = typ
	r.related = relatedID
	return nil
}

func confirmedEvent(userID uint64) []byte {
	body, _ := json.Marshal(ReservationConfirmedEvent{
		ReservationNumber: "PF00000042",
		UserID:            userID,
		AccommodationID:   1,
		AccommodationName: "코지 펫 리조트",
		Location:          "서울특별시, 강남구",
		CheckIn:           "2026-04-10",
		CheckOut:          "2026-04-12",
		Nights:            2,
		TotalPrice:        300000,
		GuestName:         "김철수",
		PetCount:          1,
		ConfirmedAt:       "2026-04-01T09:00:00Z",
	})
	return body
}

func TestHandleMessageLogsAndNotifies(t *testing.T) {
	t.Chdir(t.TempDir())
	sink := &recordingSink{}

	if err := handleMessage(confirmedEvent(7), sink); err != nil {
		t.Fatalf("handle: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join("logs", "reservation.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "PF00000042") {
		t.Fatalf("log line missing reservation number: %q", raw)
	}
	if sink.calls != 1 || sink.userID != 7 || sink.typ != model.NotificationReservation {
		t.Fatalf("sink not notified as expected: %+v", sink)
	}
	if sink.related != "PF00000042" {
		t.Fatalf("related id = %q, want the reservation number", sink.related)
	}
}

func TestHandleMessageGuestBookingSkipsNotification(t *testing.T) {
	t.Chdir(t.TempDir())
	sink := &recordingSink{}

	if err := handleMessage(confirmedEvent(0), sink); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("guest booking notified the sink %d times, want 0", sink.calls)
	}
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := handleMessage([]byte("not json"), nil); err == nil {
		t.Fatalf("expected an unmarshal error")
	}
}
