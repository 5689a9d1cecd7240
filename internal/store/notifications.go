package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/repository"
)

// MaxNotifications caps how many rows the center keeps per user.
const MaxNotifications = 50

// NotificationRemote is the remote-store surface the notification store
// needs.  *repository.NotificationRepo satisfies it.
type NotificationRemote interface {
	Insert(ctx context.Context, userID uint64, n model.Notification) error
	ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID uint64, id string) error
	MarkAllRead(ctx context.Context, userID uint64) error
	Delete(ctx context.Context, userID uint64, id string) error
}

// NotificationStore synchronizes the per-user notification center.  Unlike
// the other collections it has no guest variant: guests have no inbox, so
// every call for an unauthenticated session is an empty no-op.
type NotificationStore struct {
	remote NotificationRemote
	local  *localstore.Store
	bus    *event.Bus
	now    func() time.Time
}

func NewNotificationStore(remote NotificationRemote, local *localstore.Store, bus *event.Bus) *NotificationStore {
	return &NotificationStore{remote: remote, local: local, bus: bus, now: time.Now}
}

// List returns the session's notifications, newest first.
func (s *NotificationStore) List(ctx context.Context, sess Session) ([]model.Notification, error) {
	if !sess.Authenticated() {
		return nil, nil
	}
	ns, err := s.remote.ListByUser(ctx, sess.UserID, MaxNotifications)
	if err == nil {
		return ns, nil
	}
	logRemoteFailure("notifications", "list", err)
	return s.localList(sess.UserID)
}

// UnreadCount reports how many of the session's notifications are unread.
func (s *NotificationStore) UnreadCount(ctx context.Context, sess Session) (int, error) {
	ns, err := s.List(ctx, sess)
	if err != nil {
		return 0, err
	}
	unread := 0
	for _, n := range ns {
		if !n.Read {
			unread++
		}
	}
	return unread, nil
}

// Add records a notification for a user.  Producers such as the reservation
// consumer call this directly with the recipient id; userID 0 means a guest
// recipient and is dropped.
func (s *NotificationStore) Add(ctx context.Context, userID uint64, typ, title, message, relatedID string) error {
	if userID == 0 {
		return nil
	}
	n := model.Notification{
		ID:        "notif_" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Type:      typ,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.remote.Insert(ctx, userID, n); err != nil {
		logRemoteFailure("notifications", "insert", err)
	}

	stored, err := s.localList(userID)
	if err != nil {
		return err
	}
	stored = append([]model.Notification{n}, stored...)
	if len(stored) > MaxNotifications {
		stored = stored[:MaxNotifications]
	}
	if err := s.local.Put(localstore.NotificationsKey(userKey(userID)), stored); err != nil {
		return err
	}
	s.bus.Publish(event.KindNotifications)
	return nil
}

// MarkRead flags one notification as read.
func (s *NotificationStore) MarkRead(ctx context.Context, sess Session, id string) error {
	if !sess.Authenticated() {
		return repository.ErrNotFound
	}
	remoteErr := s.remote.MarkRead(ctx, sess.UserID, id)
	if remoteErr != nil && !errors.Is(remoteErr, repository.ErrNotFound) {
		logRemoteFailure("notifications", "mark-read", remoteErr)
	}

	stored, err := s.localList(sess.UserID)
	if err != nil {
		return err
	}
	found := false
	for i := range stored {
		if stored[i].ID == id {
			stored[i].Read = true
			found = true
		}
	}
	if !found {
		if remoteErr == nil {
			// Remote had it; the mirror is just behind.
			s.bus.Publish(event.KindNotifications)
			return nil
		}
		return repository.ErrNotFound
	}
	if err := s.local.Put(localstore.NotificationsKey(userKey(sess.UserID)), stored); err != nil {
		return err
	}
	s.bus.Publish(event.KindNotifications)
	return nil
}

// MarkAllRead flags every notification of the session as read.
func (s *NotificationStore) MarkAllRead(ctx context.Context, sess Session) error {
	if !sess.Authenticated() {
		return nil
	}
	if err := s.remote.MarkAllRead(ctx, sess.UserID); err != nil {
		logRemoteFailure("notifications", "mark-all-read", err)
	}

	stored, err := s.localList(sess.UserID)
	if err != nil {
		return err
	}
	for i := range stored {
		stored[i].Read = true
	}
	if err := s.local.Put(localstore.NotificationsKey(userKey(sess.UserID)), stored); err != nil {
		return err
	}
	s.bus.Publish(event.KindNotifications)
	return nil
}

// Delete removes one notification.
func (s *NotificationStore) Delete(ctx context.Context, sess Session, id string) error {
	if !sess.Authenticated() {
		return repository.ErrNotFound
	}
	remoteErr := s.remote.Delete(ctx, sess.UserID, id)
	if remoteErr != nil && !errors.Is(remoteErr, repository.ErrNotFound) {
		logRemoteFailure("notifications", "delete", remoteErr)
	}

	stored, err := s.localList(sess.UserID)
	if err != nil {
		return err
	}
	kept := stored[:0]
	for _, n := range stored {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(stored) && remoteErr != nil {
		return repository.ErrNotFound
	}
	if err := s.local.Put(localstore.NotificationsKey(userKey(sess.UserID)), kept); err != nil {
		return err
	}
	s.bus.Publish(event.KindNotifications)
	return nil
}

func (s *NotificationStore) localList(userID uint64) ([]model.Notification, error) {
	var ns []model.Notification
	if _, err := s.local.Get(localstore.NotificationsKey(userKey(userID)), &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func userKey(userID uint64) string { return strconv.FormatUint(userID, 10) }
