package store

import (
	"context"
	"encoding/base64"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/localstore"
	"github.com/petfriendly/petfriendly/internal/model"
	"github.com/petfriendly/petfriendly/internal/repository"
)

// Feed sort modes.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

// MaxReviewImages caps the number of photos attached to a review.
const MaxReviewImages = 5

// maxImageBytes caps the decoded size of one attached photo (5MB).
const maxImageBytes = 5 << 20

// validateImageDataURL accepts image/* data URLs up to maxImageBytes decoded,
// plus plain http(s) URLs (seed content and already-hosted photos).
func validateImageDataURL(s string) error {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return nil
	}
	if !strings.HasPrefix(s, "data:image/") {
		return errors.New("not an image")
	}
	_, b64, ok := strings.Cut(s, ";base64,")
	if !ok {
		return errors.New("not base64 encoded")
	}
	if base64.StdEncoding.DecodedLen(len(b64)) > maxImageBytes {
		return errors.New("image exceeds 5MB")
	}
	return nil
}

// ReviewRemote is the remote-store surface the review store needs.
// *repository.ReviewRepo satisfies it.
type ReviewRemote interface {
	Insert(ctx context.Context, rev model.Review) error
	Delete(ctx context.Context, id, authorID string) error
	ListAll(ctx context.Context) ([]model.Review, error)
}

// LikeRemote is the remote-store surface for per-user review likes.
// *repository.LikeRepo satisfies it.
type LikeRemote interface {
	Insert(ctx context.Context, userID uint64, reviewID string) error
	Delete(ctx context.Context, userID uint64, reviewID string) error
	ListReviewIDs(ctx context.Context, userID uint64) ([]string, error)
}

// CommentCascade removes a review's remote comments when the review goes
// away.  *repository.CommentRepo satisfies it.
type CommentCascade interface {
	DeleteByReview(ctx context.Context, reviewID string) error
}

// ReviewInput is the payload for creating a review.
type ReviewInput struct {
	AccommodationName string   `json:"accommodation_name"`
	Rating            int      `json:"rating"`
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Images            []string `json:"images"`
}

// ReviewStore synchronizes the community feed.  The feed users see is the
// seed content merged with user-generated reviews, decorated with the
// session's like state.
type ReviewStore struct {
	remote   ReviewRemote
	likes    LikeRemote
	comments CommentCascade
	local    *localstore.Store
	bus      *event.Bus
	now      func() time.Time
}

func NewReviewStore(remote ReviewRemote, likes LikeRemote, comments CommentCascade, local *localstore.Store, bus *event.Bus) *ReviewStore {
	return &ReviewStore{remote: remote, likes: likes, comments: comments, local: local, bus: bus, now: time.Now}
}

// List returns the merged feed in the given sort order.  rating > 0 keeps
// only reviews with exactly that rating.  UserLiked and the displayed
// counters reflect the calling session.
func (s *ReviewStore) List(ctx context.Context, sess Session, sortBy string, rating int) ([]model.Review, error) {
	own, err := s.userReviews(ctx, sess)
	if err != nil {
		return nil, err
	}
	merged := append(own, seedReviews(s.now())...)
	if rating > 0 {
		kept := merged[:0]
		for _, r := range merged {
			if r.Rating == rating {
				kept = append(kept, r)
			}
		}
		merged = kept
	}

	liked, err := s.likedIDs(ctx, sess)
	if err != nil {
		return nil, err
	}
	likedSet := make(map[string]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}

	for i := range merged {
		if likedSet[merged[i].ID] {
			merged[i].UserLiked = true
			merged[i].LikesCount++
		}
		n, err := s.localCommentCount(merged[i].ID)
		if err != nil {
			return nil, err
		}
		merged[i].CommentsCount += n
	}

	if sortBy == SortPopular {
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].LikesCount > merged[j].LikesCount
		})
	} else {
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		})
	}
	return merged, nil
}

// Create validates and stores a new review.  Nothing is written when
// validation fails.
func (s *ReviewStore) Create(ctx context.Context, sess Session, in ReviewInput) (model.Review, error) {
	if strings.TrimSpace(in.AccommodationName) == "" {
		return model.Review{}, invalidf("accommodation name is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Review{}, invalidf("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return model.Review{}, invalidf("content is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, invalidf("rating must be between 1 and 5")
	}
	if len(in.Images) > MaxReviewImages {
		return model.Review{}, invalidf("at most %d images allowed", MaxReviewImages)
	}
	for i, img := range in.Images {
		if err := validateImageDataURL(img); err != nil {
			return model.Review{}, invalidf("image %d: %v", i+1, err)
		}
	}

	now := s.now()
	username := sess.Username
	if username == "" {
		username = "익명"
	}
	rev := model.Review{
		ID:                model.UserReviewPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		UserID:            sess.AuthorID(),
		AccommodationName: in.AccommodationName,
		Rating:            in.Rating,
		Title:             in.Title,
		Content:           in.Content,
		Images:            in.Images,
		CreatedAt:         now.UTC(),
		Author:            model.AuthorProfile{Username: username, ProfilePhotoURL: sess.PhotoURL},
	}

	if sess.Authenticated() {
		if err := s.remote.Insert(ctx, rev); err != nil {
			logRemoteFailure("reviews", "insert", err)
		}
	}

	stored, err := s.localReviews()
	if err != nil {
		return model.Review{}, err
	}
	stored = append([]model.Review{rev}, stored...)
	if err := s.local.Put(localstore.KeyReviews, stored); err != nil {
		return model.Review{}, err
	}
	s.bus.Publish(event.KindReviews)
	return rev, nil
}

// Delete removes a user-authored review and its comments.  Seed reviews are
// never deletable; user reviews only by their author.
func (s *ReviewStore) Delete(ctx context.Context, sess Session, id string) error {
	probe := model.Review{ID: id}
	if !probe.IsUserAuthored() {
		return ErrSeedRecord
	}

	stored, err := s.localReviews()
	if err != nil {
		return err
	}
	for _, rev := range stored {
		if rev.ID == id && rev.UserID != sess.AuthorID() {
			return ErrNotOwner
		}
	}

	if sess.Authenticated() {
		err := s.remote.Delete(ctx, id, sess.AuthorID())
		switch {
		case errors.Is(err, repository.ErrForbidden):
			return ErrNotOwner
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			logRemoteFailure("reviews", "delete", err)
		}
		if err := s.comments.DeleteByReview(ctx, id); err != nil {
			logRemoteFailure("comments", "cascade delete", err)
		}
	}

	kept := stored[:0]
	for _, rev := range stored {
		if rev.ID != id {
			kept = append(kept, rev)
		}
	}
	if err := s.local.Put(localstore.KeyReviews, kept); err != nil {
		return err
	}
	if err := s.local.Remove(localstore.CommentsKey(id)); err != nil {
		return err
	}
	s.bus.Publish(event.KindReviews)
	s.bus.Publish(event.KindComments)
	return nil
}

// ToggleLike flips the session's like on a review and reports the resulting
// state.
func (s *ReviewStore) ToggleLike(ctx context.Context, sess Session, reviewID string) (bool, error) {
	liked, err := s.likedIDs(ctx, sess)
	if err != nil {
		return false, err
	}
	on := false
	for _, id := range liked {
		if id == reviewID {
			on = true
			break
		}
	}

	if sess.Authenticated() {
		if on {
			if err := s.likes.Delete(ctx, sess.UserID, reviewID); err != nil && !errors.Is(err, repository.ErrNotFound) {
				logRemoteFailure("likes", "delete", err)
			}
		} else {
			if err := s.likes.Insert(ctx, sess.UserID, reviewID); err != nil && !errors.Is(err, repository.ErrDuplicate) {
				logRemoteFailure("likes", "insert", err)
			}
		}
	}

	var next []string
	if on {
		for _, id := range liked {
			if id != reviewID {
				next = append(next, id)
			}
		}
	} else {
		next = append(liked, reviewID)
	}
	if err := s.local.Put(localstore.KeyLikes, next); err != nil {
		return on, err
	}
	s.bus.Publish(event.KindLikes)
	return !on, nil
}

func (s *ReviewStore) userReviews(ctx context.Context, sess Session) ([]model.Review, error) {
	if sess.Authenticated() {
		revs, err := s.remote.ListAll(ctx)
		if err == nil {
			return revs, nil
		}
		logRemoteFailure("reviews", "list", err)
	}
	return s.localReviews()
}

func (s *ReviewStore) likedIDs(ctx context.Context, sess Session) ([]string, error) {
	if sess.Authenticated() {
		ids, err := s.likes.ListReviewIDs(ctx, sess.UserID)
		if err == nil {
			return ids, nil
		}
		logRemoteFailure("likes", "list", err)
	}
	var ids []string
	if _, err := s.local.Get(localstore.KeyLikes, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *ReviewStore) localReviews() ([]model.Review, error) {
	var revs []model.Review
	if _, err := s.local.Get(localstore.KeyReviews, &revs); err != nil {
		return nil, err
	}
	return revs, nil
}

// localCommentCount counts user-added comments for a review.  The mirror
// shadows every comment write, so this is complete for this instance.
func (s *ReviewStore) localCommentCount(reviewID string) (int, error) {
	var cs []model.Comment
	if _, err := s.local.Get(localstore.CommentsKey(reviewID), &cs); err != nil {
		return 0, err
	}
	return len(cs), nil
}
