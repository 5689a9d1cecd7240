package store

import (
	"context"
	"time"

	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
)

// FavoriteRemote is the remote-store surface the favorite store needs.
// *repository.FavoriteRepo satisfies it.
type FavoriteRemote interface {
	Insert(ctx context.Context, userID uint64, f model.Favorite) error
	Delete(ctx context.Context, userID uint64, accommodationID string) error
	Exists(ctx context.Context, userID uint64, accommodationID string) (bool, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error)
}

// FavoriteStore synchronizes favorites between the remote store and the
// local mirror.  At most one favorite exists per (user, accommodation).
type FavoriteStore struct {
	remote FavoriteRemote
	local  *localstore.Store
	bus    *event.Bus
	now    func() time.Time
}

func NewFavoriteStore(remote FavoriteRemote, local *localstore.Store, bus *event.Bus) *FavoriteStore {
	return &FavoriteStore{remote: remote, local: local, bus: bus, now: time.Now}
}

// List returns the session's favorites, newest first.
func (s *FavoriteStore) List(ctx context.Context, sess Session) ([]model.Favorite, error) {
	if sess.Authenticated() {
		favs, err := s.remote.ListByUser(ctx, sess.UserID)
		if err == nil {
			return favs, nil
		}
		logRemoteFailure("favorites", "list", err)
	}
	return s.localList()
}

// IsFavorite reports whether the accommodation is favorited.
func (s *FavoriteStore) IsFavorite(ctx context.Context, sess Session, accommodationID string) (bool, error) {
	if sess.Authenticated() {
		ok, err := s.remote.Exists(ctx, sess.UserID, accommodationID)
		if err == nil {
			return ok, nil
		}
		logRemoteFailure("favorites", "check", err)
	}
	ids, err := s.localIDs()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == accommodationID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips the favorite state for the accommodation described by f and
// reports the resulting state.  The local mirror is always updated; the
// remote store is written best-effort for authenticated sessions and never
// touched for guests.
func (s *FavoriteStore) Toggle(ctx context.Context, sess Session, f model.Favorite) (bool, error) {
	on, err := s.IsFavorite(ctx, sess, f.AccommodationID)
	if err != nil {
		return false, err
	}

	if sess.Authenticated() {
		if on {
			if err := s.remote.Delete(ctx, sess.UserID, f.AccommodationID); err != nil {
				logRemoteFailure("favorites", "delete", err)
			}
		} else {
			if err := s.remote.Insert(ctx, sess.UserID, f); err != nil {
				logRemoteFailure("favorites", "insert", err)
			}
		}
	}

	if on {
		if err := s.localRemove(f.AccommodationID); err != nil {
			return true, err
		}
	} else {
		f.ID = f.AccommodationID
		f.CreatedAt = s.now().UTC()
		if err := s.localAdd(f); err != nil {
			return false, err
		}
	}
	s.bus.Publish(event.KindFavorites)
	return !on, nil
}

// Remove deletes a favorite by id (the favorites screen's trash action).
func (s *FavoriteStore) Remove(ctx context.Context, sess Session, favoriteID string) error {
	if sess.Authenticated() {
		if err := s.remote.Delete(ctx, sess.UserID, favoriteID); err != nil {
			logRemoteFailure("favorites", "delete", err)
		}
	}
	if err := s.localRemove(favoriteID); err != nil {
		return err
	}
	s.bus.Publish(event.KindFavorites)
	return nil
}

func (s *FavoriteStore) localIDs() ([]string, error) {
	var ids []string
	if _, err := s.local.Get(localstore.KeyFavoriteIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *FavoriteStore) localList() ([]model.Favorite, error) {
	var favs []model.Favorite
	if _, err := s.local.Get(localstore.KeyFavoritesData, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

func (s *FavoriteStore) localAdd(f model.Favorite) error {
	ids, err := s.localIDs()
	if err != nil {
		return err
	}
	favs, err := s.localList()
	if err != nil {
		return err
	}
	ids = append(ids, f.AccommodationID)
	favs = append([]model.Favorite{f}, favs...)
	if err := s.local.Put(localstore.KeyFavoriteIDs, ids); err != nil {
		return err
	}
	return s.local.Put(localstore.KeyFavoritesData, favs)
}

func (s *FavoriteStore) localRemove(accommodationID string) error {
	ids, err := s.localIDs()
	if err != nil {
		return err
	}
	favs, err := s.localList()
	if err != nil {
		return err
	}
	keptIDs := ids[:0]
	for _, id := range ids {
		if id != accommodationID {
			keptIDs = append(keptIDs, id)
		}
	}
	keptFavs := favs[:0]
	for _, f := range favs {
		if f.AccommodationID != accommodationID {
			keptFavs = append(keptFavs, f)
		}
	}
	if err := s.local.Put(localstore.KeyFavoriteIDs, keptIDs); err != nil {
		return err
	}
	return s.local.Put(localstore.KeyFavoritesData, keptFavs)
}
