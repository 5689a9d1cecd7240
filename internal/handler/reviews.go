package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/store"
)

// ReviewHandler serves the community feed: reviews, likes and comment
// threads.  All routes run behind OptionalJWT.
type ReviewHandler struct {
	Reviews  *store.ReviewStore
	Comments *store.CommentStore
}

func NewReviewHandler(r *store.ReviewStore, cm *store.CommentStore) *ReviewHandler {
	return &ReviewHandler{Reviews: r, Comments: cm}
}

type createCommentReq struct {
	Content string `json:"content"`
}

// List returns the merged feed.  ?sort=recent|popular (default recent),
// ?rating=1..5 keeps only that exact rating.
func (h *ReviewHandler) List(c echo.Context) error {
	sortBy := c.QueryParam("sort")
	if sortBy == "" {
		sortBy = store.SortRecent
	}
	rating, _ := strconv.Atoi(c.QueryParam("rating"))
	feed, err := h.Reviews.List(c.Request().Context(), sessionFrom(c), sortBy, rating)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": feed, "count": len(feed)})
}

// Create stores a new review.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req store.ReviewInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	rev, err := h.Reviews.Create(c.Request().Context(), sessionFrom(c), req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, rev)
}

// Delete removes a user-authored review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.Reviews.Delete(c.Request().Context(), sessionFrom(c), c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleLike flips the session's like on a review.
func (h *ReviewHandler) ToggleLike(c echo.Context) error {
	on, err := h.Reviews.ToggleLike(c.Request().Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"review_id": c.Param("id"), "liked": on})
}

// AccommodationNames lists the accommodations selectable on the review form.
func (h *ReviewHandler) AccommodationNames(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"names": store.AccommodationNames})
}

// ListComments returns a review's comment thread, oldest first.
func (h *ReviewHandler) ListComments(c echo.Context) error {
	thread, err := h.Comments.List(c.Request().Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": thread, "count": len(thread)})
}

// CreateComment appends a comment to a review's thread.
func (h *ReviewHandler) CreateComment(c echo.Context) error {
	var req createCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cm, err := h.Comments.Create(c.Request().Context(), sessionFrom(c), c.Param("id"), req.Content)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, cm)
}

// DeleteComment removes a user-authored comment.
func (h *ReviewHandler) DeleteComment(c echo.Context) error {
	err := h.Comments.Delete(c.Request().Context(), sessionFrom(c), c.Param("id"), c.Param("commentID"))
	if err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
