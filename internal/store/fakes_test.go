package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/repository"
)

var errRemoteDown = errors.New("remote down")

func newLocal(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	return s
}

// drained reports whether a change signal is waiting on ch.
func drained(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

type fakeFavoriteRemote struct {
	calls int
	fail  bool
	favs  map[string]model.Favorite
}

func newFakeFavoriteRemote() *fakeFavoriteRemote {
	return &fakeFavoriteRemote{favs: map[string]model.Favorite{}}
}

func (f *fakeFavoriteRemote) Insert(ctx context.Context, userID uint64, fav model.Favorite) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	f.favs[fav.AccommodationID] = fav
	return nil
}

func (f *fakeFavoriteRemote) Delete(ctx context.Context, userID uint64, accommodationID string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	delete(f.favs, accommodationID)
	return nil
}

func (f *fakeFavoriteRemote) Exists(ctx context.Context, userID uint64, accommodationID string) (bool, error) {
	f.calls++
	if f.fail {
		return false, errRemoteDown
	}
	_, ok := f.favs[accommodationID]
	return ok, nil
}

func (f *fakeFavoriteRemote) ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error) {
	f.calls++
	if f.fail {
		return nil, errRemoteDown
	}
	out := make([]model.Favorite, 0, len(f.favs))
	for _, fav := range f.favs {
		out = append(out, fav)
	}
	return out, nil
}

type fakeReviewRemote struct {
	calls int
	fail  bool
	revs  []model.Review
}

func (f *fakeReviewRemote) Insert(ctx context.Context, rev model.Review) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	f.revs = append(f.revs, rev)
	return nil
}

func (f *fakeReviewRemote) Delete(ctx context.Context, id, authorID string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	kept := f.revs[:0]
	for _, r := range f.revs {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.revs = kept
	return nil
}

func (f *fakeReviewRemote) ListAll(ctx context.Context) ([]model.Review, error) {
	f.calls++
	if f.fail {
		return nil, errRemoteDown
	}
	return append([]model.Review(nil), f.revs...), nil
}

type fakeLikeRemote struct {
	calls int
	fail  bool
	liked map[string]bool
}

func newFakeLikeRemote() *fakeLikeRemote { return &fakeLikeRemote{liked: map[string]bool{}} }

func (f *fakeLikeRemote) Insert(ctx context.Context, userID uint64, reviewID string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	f.liked[reviewID] = true
	return nil
}

func (f *fakeLikeRemote) Delete(ctx context.Context, userID uint64, reviewID string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	delete(f.liked, reviewID)
	return nil
}

func (f *fakeLikeRemote) ListReviewIDs(ctx context.Context, userID uint64) ([]string, error) {
	f.calls++
	if f.fail {
		return nil, errRemoteDown
	}
	out := make([]string, 0, len(f.liked))
	for id := range f.liked {
		out = append(out, id)
	}
	return out, nil
}

type fakeCommentRemote struct {
	calls    int
	fail     bool
	comments map[string][]model.Comment
}

func newFakeCommentRemote() *fakeCommentRemote {
	return &fakeCommentRemote{comments: map[string][]model.Comment{}}
}

func (f *fakeCommentRemote) Insert(ctx context.Context, c model.Comment) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	f.comments[c.ReviewID] = append(f.comments[c.ReviewID], c)
	return nil
}

func (f *fakeCommentRemote) Delete(ctx context.Context, id, authorID string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	for rid, cs := range f.comments {
		kept := cs[:0]
		for _, c := range cs {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		f.comments[rid] = kept
	}
	return nil
}

func (f *fakeCommentRemote) DeleteByReview(ctx context.Context, reviewID string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	delete(f.comments, reviewID)
	return nil
}

func (f *fakeCommentRemote) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	f.calls++
	if f.fail {
		return nil, errRemoteDown
	}
	return append([]model.Comment(nil), f.comments[reviewID]...), nil
}

type fakeAnnouncer struct {
	calls    int
	fail     bool
	last     model.Reservation
	lastUser uint64
}

func (f *fakeAnnouncer) Announce(ctx context.Context, userID uint64, r model.Reservation) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	f.last = r
	f.lastUser = userID
	return nil
}

type fakeNotificationRemote struct {
	calls int
	fail  bool
	rows  map[uint64][]model.Notification
}

func newFakeNotificationRemote() *fakeNotificationRemote {
	return &fakeNotificationRemote{rows: map[uint64][]model.Notification{}}
}

func (f *fakeNotificationRemote) Insert(ctx context.Context, userID uint64, n model.Notification) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	f.rows[userID] = append([]model.Notification{n}, f.rows[userID]...)
	return nil
}

func (f *fakeNotificationRemote) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Notification, error) {
	f.calls++
	if f.fail {
		return nil, errRemoteDown
	}
	ns := f.rows[userID]
	if len(ns) > limit {
		ns = ns[:limit]
	}
	return append([]model.Notification(nil), ns...), nil
}

func (f *fakeNotificationRemote) MarkRead(ctx context.Context, userID uint64, id string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	for i, n := range f.rows[userID] {
		if n.ID == id {
			f.rows[userID][i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeNotificationRemote) MarkAllRead(ctx context.Context, userID uint64) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	for i := range f.rows[userID] {
		f.rows[userID][i].Read = true
	}
	return nil
}

func (f *fakeNotificationRemote) Delete(ctx context.Context, userID uint64, id string) error {
	f.calls++
	if f.fail {
		return errRemoteDown
	}
	for i, n := range f.rows[userID] {
		if n.ID == id {
			f.rows[userID] = append(f.rows[userID][:i], f.rows[userID][i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
