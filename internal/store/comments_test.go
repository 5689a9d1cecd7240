package store

import (
	"context"
	"errors"
	"testing"

	"github.com/petfriendly/petfriendly/internal/event"
)

func newCommentStore(t *testing.T) (*CommentStore, *fakeCommentRemote, *event.Bus) {
	t.Helper()
	remote := newFakeCommentRemote()
	bus := event.NewBus()
	s := NewCommentStore(remote, newLocal(t), bus)
	s.now = tickClock()
	return s, remote, bus
}

func TestCommentListIncludesSeedThread(t *testing.T) {
	s, _, _ := newCommentStore(t)

	thread, err := s.List(context.Background(), Session{}, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("seed thread for review 1 has %d comments, want 2", len(thread))
	}
	if thread[0].ID != "c1" || thread[1].ID != "c2" {
		t.Fatalf("seed thread out of order: %+v", thread)
	}
}

func TestCommentCreateAppendsToThread(t *testing.T) {
	s, remote, bus := newCommentStore(t)
	sess := Session{UserID: 7, Username: "해피맘"}

	ch, cancel := bus.Subscribe(event.KindComments)
	defer cancel()

	c, err := s.Create(context.Background(), sess, "1", "정보 감사합니다!")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !c.IsUserAuthored() {
		t.Fatalf("generated id %q lacks the comment prefix", c.ID)
	}
	if !drained(ch) {
		t.Fatalf("expected a comments change signal")
	}
	if remote.calls == 0 {
		t.Fatalf("authenticated comment skipped the remote store")
	}

	thread, err := s.List(context.Background(), sess, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(thread) != 3 {
		t.Fatalf("thread has %d comments, want 3", len(thread))
	}
	if thread[2].ID != c.ID {
		t.Fatalf("new comment not appended last: %+v", thread)
	}
}

func TestCommentCreateRejectsEmptyContent(t *testing.T) {
	s, remote, _ := newCommentStore(t)

	if _, err := s.Create(context.Background(), Session{UserID: 7}, "1", "  "); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if remote.calls != 0 {
		t.Fatalf("validation failure made %d remote calls, want 0", remote.calls)
	}
}

func TestCommentCreateGuestNeverCallsRemote(t *testing.T) {
	s, remote, _ := newCommentStore(t)

	c, err := s.Create(context.Background(), Session{}, "4", "좋은 정보네요")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if remote.calls != 0 {
		t.Fatalf("guest comment made %d remote calls, want 0", remote.calls)
	}
	if c.UserID != GuestUserID {
		t.Fatalf("guest comment author id = %q, want %q", c.UserID, GuestUserID)
	}
}

func TestCommentDeleteSeedRejected(t *testing.T) {
	s, _, _ := newCommentStore(t)

	if err := s.Delete(context.Background(), Session{UserID: 7}, "1", "c1"); !errors.Is(err, ErrSeedRecord) {
		t.Fatalf("expected ErrSeedRecord, got %v", err)
	}
}

func TestCommentDeleteByNonAuthorRejected(t *testing.T) {
	s, _, _ := newCommentStore(t)
	author := Session{UserID: 7, Username: "해피맘"}

	c, err := s.Create(context.Background(), author, "1", "지워질 댓글")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete(context.Background(), Session{UserID: 8}, "1", c.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestCommentDeleteByAuthor(t *testing.T) {
	s, _, _ := newCommentStore(t)
	author := Session{UserID: 7, Username: "해피맘"}

	c, err := s.Create(context.Background(), author, "1", "지워질 댓글")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete(context.Background(), author, "1", c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	thread, err := s.List(context.Background(), author, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range thread {
		if got.ID == c.ID {
			t.Fatalf("deleted comment %q still in thread", c.ID)
		}
	}
}
