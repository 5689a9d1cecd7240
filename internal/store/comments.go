package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/repository"
)

// CommentRemote is the remote-store surface the comment store needs.
// *repository.CommentRepo satisfies it.
type CommentRemote interface {
	Insert(ctx context.Context, c model.Comment) error
	Delete(ctx context.Context, id, authorID string) error
	ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error)
}

// CommentStore synchronizes per-review comment threads.  Each review's
// thread is its own local key, so threads load and replace independently.
type CommentStore struct {
	remote CommentRemote
	local  *localstore.Store
	bus    *event.Bus
	now    func() time.Time
}

func NewCommentStore(remote CommentRemote, local *localstore.Store, bus *event.Bus) *CommentStore {
	return &CommentStore{remote: remote, local: local, bus: bus, now: time.Now}
}

// List returns a review's thread, oldest first: seed comments followed by
// user-added ones.
func (s *CommentStore) List(ctx context.Context, sess Session, reviewID string) ([]model.Comment, error) {
	own, err := s.userComments(ctx, sess, reviewID)
	if err != nil {
		return nil, err
	}
	return append(seedComments(s.now())[reviewID], own...), nil
}

// Create validates and appends a comment to a review's thread.
func (s *CommentStore) Create(ctx context.Context, sess Session, reviewID, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, invalidf("content is required")
	}

	now := s.now()
	username := sess.Username
	if username == "" {
		username = "익명"
	}
	c := model.Comment{
		ID:        model.UserCommentPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		ReviewID:  reviewID,
		UserID:    sess.AuthorID(),
		Content:   content,
		CreatedAt: now.UTC(),
		Author:    model.AuthorProfile{Username: username, ProfilePhotoURL: sess.PhotoURL},
	}

	if sess.Authenticated() {
		if err := s.remote.Insert(ctx, c); err != nil {
			logRemoteFailure("comments", "insert", err)
		}
	}

	stored, err := s.localComments(reviewID)
	if err != nil {
		return model.Comment{}, err
	}
	stored = append(stored, c)
	if err := s.local.Put(localstore.CommentsKey(reviewID), stored); err != nil {
		return model.Comment{}, err
	}
	s.bus.Publish(event.KindComments)
	return c, nil
}

// Delete removes a user-authored comment.  Seed comments are never
// deletable; user comments only by their author.
func (s *CommentStore) Delete(ctx context.Context, sess Session, reviewID, commentID string) error {
	probe := model.Comment{ID: commentID}
	if !probe.IsUserAuthored() {
		return ErrSeedRecord
	}

	stored, err := s.localComments(reviewID)
	if err != nil {
		return err
	}
	for _, c := range stored {
		if c.ID == commentID && c.UserID != sess.AuthorID() {
			return ErrNotOwner
		}
	}

	if sess.Authenticated() {
		err := s.remote.Delete(ctx, commentID, sess.AuthorID())
		switch {
		case errors.Is(err, repository.ErrForbidden):
			return ErrNotOwner
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			logRemoteFailure("comments", "delete", err)
		}
	}

	kept := stored[:0]
	for _, c := range stored {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	if err := s.local.Put(localstore.CommentsKey(reviewID), kept); err != nil {
		return err
	}
	s.bus.Publish(event.KindComments)
	return nil
}

func (s *CommentStore) userComments(ctx context.Context, sess Session, reviewID string) ([]model.Comment, error) {
	if sess.Authenticated() {
		cs, err := s.remote.ListByReview(ctx, reviewID)
		if err == nil {
			return cs, nil
		}
		logRemoteFailure("comments", "list", err)
	}
	return s.localComments(reviewID)
}

func (s *CommentStore) localComments(reviewID string) ([]model.Comment, error) {
	var cs []model.Comment
	if _, err := s.local.Get(localstore.CommentsKey(reviewID), &cs); err != nil {
		return nil, err
	}
	return cs, nil
}
