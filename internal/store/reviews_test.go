package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petfriendly/petfriendly/internal/event"
)

// tickClock hands out strictly increasing timestamps so ids generated from
// the clock never collide within a test.
func tickClock() func() time.Time {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func newReviewStore(t *testing.T) (*ReviewStore, *fakeReviewRemote, *fakeLikeRemote, *fakeCommentRemote, *event.Bus) {
	t.Helper()
	remote := &fakeReviewRemote{}
	likes := newFakeLikeRemote()
	comments := newFakeCommentRemote()
	bus := event.NewBus()
	s := NewReviewStore(remote, likes, comments, newLocal(t), bus)
	s.now = tickClock()
	return s, remote, likes, comments, bus
}

func TestReviewCreateRejectsEmptyTitleBeforeAnyWrite(t *testing.T) {
	s, remote, _, _, _ := newReviewStore(t)
	sess := Session{UserID: 7, Username: "해피맘"}

	_, err := s.Create(context.Background(), sess, ReviewInput{
		AccommodationName: "제주 오션뷰 펫 리조트",
		Rating:            5,
		Title:             "   ",
		Content:           "본문",
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if remote.calls != 0 {
		t.Fatalf("validation failure made %d remote calls, want 0", remote.calls)
	}
	revs, err := s.localReviews()
	if err != nil {
		t.Fatalf("local reviews: %v", err)
	}
	if len(revs) != 0 {
		t.Fatalf("validation failure wrote %d local reviews, want 0", len(revs))
	}
}

func TestReviewCreateValidation(t *testing.T) {
	s, _, _, _, _ := newReviewStore(t)
	sess := Session{UserID: 7}
	valid := ReviewInput{AccommodationName: "제주 오션뷰 펫 리조트", Rating: 4, Title: "제목", Content: "본문"}

	cases := []struct {
		name   string
		mutate func(*ReviewInput)
	}{
		{"no accommodation", func(in *ReviewInput) { in.AccommodationName = "" }},
		{"no content", func(in *ReviewInput) { in.Content = "" }},
		{"rating too low", func(in *ReviewInput) { in.Rating = 0 }},
		{"rating too high", func(in *ReviewInput) { in.Rating = 6 }},
		{"too many images", func(in *ReviewInput) { in.Images = make([]string, MaxReviewImages+1) }},
		{"non-image payload", func(in *ReviewInput) { in.Images = []string{"data:text/plain;base64,aGk="} }},
		{"unencoded data url", func(in *ReviewInput) { in.Images = []string{"data:image/png,rawbytes"} }},
	}
	for _, tc := range cases {
		in := valid
		tc.mutate(&in)
		if _, err := s.Create(context.Background(), sess, in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", tc.name, err)
		}
	}

	if _, err := s.Create(context.Background(), sess, valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestReviewCreateGuestNeverCallsRemote(t *testing.T) {
	s, remote, _, _, _ := newReviewStore(t)

	rev, err := s.Create(context.Background(), Session{}, ReviewInput{
		AccommodationName: "강릉 바다 애견 호텔",
		Rating:            5,
		Title:             "좋았어요",
		Content:           "다음에 또 올게요",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if remote.calls != 0 {
		t.Fatalf("guest create made %d remote calls, want 0", remote.calls)
	}
	if rev.UserID != GuestUserID {
		t.Fatalf("guest review author id = %q, want %q", rev.UserID, GuestUserID)
	}
	if rev.Author.Username != "익명" {
		t.Fatalf("guest review username = %q, want 익명", rev.Author.Username)
	}
}

func TestReviewCreateAppearsFirstInRecentFeed(t *testing.T) {
	s, _, _, _, bus := newReviewStore(t)
	sess := Session{UserID: 7, Username: "해피맘"}

	ch, cancel := bus.Subscribe(event.KindReviews)
	defer cancel()

	rev, err := s.Create(context.Background(), sess, ReviewInput{
		AccommodationName: "속초 반려동물 펜션",
		Rating:            5,
		Title:             "최고였어요",
		Content:           "넓은 마당이 인상적이었습니다",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !rev.IsUserAuthored() {
		t.Fatalf("generated id %q lacks the user prefix", rev.ID)
	}
	if !drained(ch) {
		t.Fatalf("expected a reviews change signal")
	}

	feed, err := s.List(context.Background(), sess, SortRecent, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) != 9 {
		t.Fatalf("feed length = %d, want 8 seeds + 1", len(feed))
	}
	if feed[0].ID != rev.ID {
		t.Fatalf("newest review is %q, want %q first", feed[0].ID, rev.ID)
	}
}

func TestReviewListPopularSortsByLikes(t *testing.T) {
	s, _, _, _, _ := newReviewStore(t)

	feed, err := s.List(context.Background(), Session{}, SortPopular, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(feed); i++ {
		if feed[i-1].LikesCount < feed[i].LikesCount {
			t.Fatalf("popular feed out of order at %d: %d < %d", i, feed[i-1].LikesCount, feed[i].LikesCount)
		}
	}
	if feed[0].ID != "7" {
		t.Fatalf("most liked seed is %q, want 7", feed[0].ID)
	}
}

func TestReviewListRatingFilter(t *testing.T) {
	s, _, _, _, _ := newReviewStore(t)

	feed, err := s.List(context.Background(), Session{}, SortRecent, 4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) == 0 {
		t.Fatalf("expected 4-star seed reviews")
	}
	for _, r := range feed {
		if r.Rating != 4 {
			t.Fatalf("review %q has rating %d, want 4", r.ID, r.Rating)
		}
	}
}

func TestReviewDeleteSeedRejectedForEveryone(t *testing.T) {
	s, _, _, _, _ := newReviewStore(t)

	if err := s.Delete(context.Background(), Session{UserID: 7}, "1"); !errors.Is(err, ErrSeedRecord) {
		t.Fatalf("authenticated delete of seed: got %v, want ErrSeedRecord", err)
	}
	if err := s.Delete(context.Background(), Session{}, "1"); !errors.Is(err, ErrSeedRecord) {
		t.Fatalf("guest delete of seed: got %v, want ErrSeedRecord", err)
	}
}

func TestReviewDeleteByNonAuthorRejected(t *testing.T) {
	s, _, _, _, _ := newReviewStore(t)
	author := Session{UserID: 7, Username: "해피맘"}

	rev, err := s.Create(context.Background(), author, ReviewInput{
		AccommodationName: "경주 한옥 반려동물 숙소",
		Rating:            4,
		Title:             "한옥 체험",
		Content:           "운치 있었어요",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(context.Background(), Session{UserID: 8}, rev.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete by other user: got %v, want ErrNotOwner", err)
	}
	if err := s.Delete(context.Background(), Session{}, rev.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete by guest: got %v, want ErrNotOwner", err)
	}
}

func TestReviewDeleteByAuthorDropsReviewAndComments(t *testing.T) {
	s, _, _, cascade, bus := newReviewStore(t)
	cs := NewCommentStore(newFakeCommentRemote(), s.local, bus)
	cs.now = tickClock()
	author := Session{UserID: 7, Username: "해피맘"}

	rev, err := s.Create(context.Background(), author, ReviewInput{
		AccommodationName: "여수 오션 펫 리조트",
		Rating:            5,
		Title:             "야경 최고",
		Content:           "밤바다가 아름다웠어요",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if _, err := cs.Create(context.Background(), author, rev.ID, "저도 가보고 싶네요"); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := s.Delete(context.Background(), author, rev.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cascade.calls == 0 {
		t.Fatalf("expected the remote comment cascade to run")
	}

	feed, err := s.List(context.Background(), Session{}, SortRecent, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range feed {
		if r.ID == rev.ID {
			t.Fatalf("deleted review %q still in feed", rev.ID)
		}
	}
	thread, err := cs.List(context.Background(), Session{}, rev.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(thread) != 0 {
		t.Fatalf("deleted review still has %d comments", len(thread))
	}
}

func TestReviewToggleLike(t *testing.T) {
	s, _, likes, _, bus := newReviewStore(t)
	sess := Session{UserID: 7}

	ch, cancel := bus.Subscribe(event.KindLikes)
	defer cancel()

	on, err := s.ToggleLike(context.Background(), sess, "2")
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !on {
		t.Fatalf("expected like on after first toggle")
	}
	if !drained(ch) {
		t.Fatalf("expected a likes change signal")
	}
	if !likes.liked["2"] {
		t.Fatalf("remote like not recorded")
	}

	feed, err := s.List(context.Background(), sess, SortRecent, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range feed {
		if r.ID == "2" {
			if !r.UserLiked {
				t.Fatalf("review 2 not flagged as liked")
			}
			if r.LikesCount != 39 {
				t.Fatalf("review 2 likes = %d, want 39", r.LikesCount)
			}
		}
	}

	on, err = s.ToggleLike(context.Background(), sess, "2")
	if err != nil {
		t.Fatalf("toggle like off: %v", err)
	}
	if on {
		t.Fatalf("expected like off after second toggle")
	}
	if likes.liked["2"] {
		t.Fatalf("remote like not removed")
	}
}

func TestReviewToggleLikeGuestNeverCallsRemote(t *testing.T) {
	s, _, likes, _, _ := newReviewStore(t)

	if _, err := s.ToggleLike(context.Background(), Session{}, "3"); err != nil {
		t.Fatalf("guest toggle like: %v", err)
	}
	if likes.calls != 0 {
		t.Fatalf("guest like made %d remote calls, want 0", likes.calls)
	}
	feed, err := s.List(context.Background(), Session{}, SortRecent, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range feed {
		if r.ID == "3" && !r.UserLiked {
			t.Fatalf("guest like not reflected in feed")
		}
	}
}

func TestReviewListFallsBackToLocalOnRemoteFailure(t *testing.T) {
	s, remote, likes, _, _ := newReviewStore(t)
	sess := Session{UserID: 7, Username: "해피맘"}

	rev, err := s.Create(context.Background(), sess, ReviewInput{
		AccommodationName: "평창 힐링 펫 스테이",
		Rating:            5,
		Title:             "겨울에 또 갈래요",
		Content:           "눈밭이 최고였습니다",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	remote.fail = true
	likes.fail = true
	feed, err := s.List(context.Background(), sess, SortRecent, 0)
	if err != nil {
		t.Fatalf("list during outage: %v", err)
	}
	if feed[0].ID != rev.ID {
		t.Fatalf("local mirror did not serve the new review during outage")
	}
}
