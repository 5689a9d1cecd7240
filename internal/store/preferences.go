package store

import (
	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
)

// PreferenceStore holds the UI settings.  Preferences are local-only and
// unauthenticated; the zero value is the default for every field.
type PreferenceStore struct {
	local *localstore.Store
}

func NewPreferenceStore(local *localstore.Store) *PreferenceStore {
	return &PreferenceStore{local: local}
}

// Get returns the stored preferences, or defaults when none were saved.
func (s *PreferenceStore) Get() (model.Preferences, error) {
	var p model.Preferences
	if _, err := s.local.Get(localstore.KeyPreferences, &p); err != nil {
		return model.Preferences{}, err
	}
	return p, nil
}

// Put replaces the stored preferences wholesale.
func (s *PreferenceStore) Put(p model.Preferences) error {
	return s.local.Put(localstore.KeyPreferences, p)
}
