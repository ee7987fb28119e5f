package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinegraph/cinegraph/internal/auth"
)

func (s *Server) MovieReviews(c *gin.Context) {
	reviews, err := s.Catalog.MovieReviews(c.Request.Context(), c.Param("movieId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Rating is a pointer so a literal 0 still passes the required check; the
// validator treats a zero float as absent otherwise.
type ReviewRequest struct {
	Rating *float64 `json:"rating" binding:"required,min=0,max=10"`
	Text   string   `json:"text"`
}

// CreateReview upserts the caller's review: a second submission for the same
// movie updates the existing one instead of duplicating it.
func (s *Server) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	review, created, err := s.Catalog.UpsertReview(c.Request.Context(),
		c.GetString(auth.CtxUserID), c.Param("movieId"), *req.Rating, req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, review)
}

func (s *Server) DeleteReview(c *gin.Context) {
	err := s.Catalog.DeleteOwnReview(c.Request.Context(),
		c.GetString(auth.CtxUserID), c.Param("reviewId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
