// Package localstore is the local mirror of user-generated collections.  It
// plays the role browser localStorage plays for the web client: a key space
// of small JSON blobs replaced wholesale, used either as a cache of the
// remote store or as the only store for guests and during remote outages.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys.  Comment collections are keyed per review via CommentsKey.
const (
	KeyFavoriteIDs   = "petfriendly_favorites"
	KeyFavoritesData = "petfriendly_favorites_data"
	KeyReviews       = "petfriendly_reviews"
	KeyLikes         = "petfriendly_likes"
	KeyReservations  = "petfriendly_reservations"
	KeyPreferences   = "petfriendly_preferences"
)

// CommentsKey returns the storage key for a review's comment collection.
func CommentsKey(reviewID string) string { return "petfriendly_comments_" + reviewID }

// NotificationsKey returns the storage key for a user's notification list.
func NotificationsKey(userID string) string { return "petfriendly_notifications_" + userID }

// Store is a mutex-guarded JSON file holding one value per key.  Every write
// rewrites the whole file through a temp-file rename so a crash never leaves
// a torn blob behind.  All values are replaced wholesale; there are no
// partial updates.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads (or creates) the store file at path.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]json.RawMessage{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("localstore: read %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("localstore: parse %s: %w", path, err)
		}
	}
	return s, nil
}

// Get unmarshals the value stored under key into v.  The boolean reports
// whether the key existed.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("localstore: decode %s: %w", key, err)
	}
	return true, nil
}

// Put replaces the value stored under key.
func (s *Store) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flushLocked()
}

// Remove deletes key.  Removing a missing key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("localstore: encode store: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("localstore: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".localstore-*")
	if err != nil {
		return fmt.Errorf("localstore: temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("localstore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("localstore: close: %w", err)
	}
	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("localstore: replace %s: %w", s.path, err)
	}
	return nil
}
