package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinegraph/cinegraph/internal/driver"
)

func reviewRel(id string, rating float64, text string) neo4j.Relationship {
	return neo4j.Relationship{Props: map[string]interface{}{
		"id":        id,
		"rating":    rating,
		"text":      text,
		"createdAt": time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestMovieReviews(t *testing.T) {
	result := eager(
		record([]string{"r", "username", "userId"}, reviewRel("rev-1", 9.5, "Great"), "demo", "user-1"),
		record([]string{"r", "username", "userId"}, reviewRel("rev-2", 7.0, "Fine"), "moviefan", "user-2"),
	)
	mock := &MockDriver{Results: []neo4j.EagerResult{result}}
	svc := NewService(mock, 10, nil)

	reviews, err := svc.MovieReviews(context.Background(), "movie-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "demo", reviews[0].Username)
	assert.Equal(t, "user-1", reviews[0].UserID)
	assert.Equal(t, 9.5, reviews[0].Rating)
}

func TestUpsertReview_CreatesWhenNoneExists(t *testing.T) {
	created := eager(record([]string{"r", "username"}, reviewRel("rev-1", 8.0, "Solid"), "demo"))
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(), created}}
	svc := NewService(mock, 10, nil)

	review, isNew, err := svc.UpsertReview(context.Background(), "user-1", "movie-1", 8.0, "Solid")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "rev-1", review.ID)

	require.Len(t, mock.Executed, 2)
	assert.Equal(t, driver.ExistingReviewQuery, mock.Executed[0].Query)
	assert.Equal(t, driver.CreateReviewQuery, mock.Executed[1].Query)
	assert.NotEmpty(t, mock.Executed[1].Params["reviewId"])
}

func TestUpsertReview_UpdatesExisting(t *testing.T) {
	existing := eager(record([]string{"r"}, reviewRel("rev-1", 6.0, "Meh")))
	updated := eager(record([]string{"r", "username"}, reviewRel("rev-1", 9.0, "Rewatched, amazing"), "demo"))
	mock := &MockDriver{Results: []neo4j.EagerResult{existing, updated}}
	svc := NewService(mock, 10, nil)

	review, isNew, err := svc.UpsertReview(context.Background(), "user-1", "movie-1", 9.0, "Rewatched, amazing")
	require.NoError(t, err)
	assert.False(t, isNew, "second review by the same user must update, not duplicate")
	assert.Equal(t, "rev-1", review.ID)
	assert.Equal(t, 9.0, review.Rating)

	require.Len(t, mock.Executed, 2)
	assert.Equal(t, driver.UpdateReviewQuery, mock.Executed[1].Query)
	assert.NotContains(t, mock.Executed[1].Params, "reviewId")
}

func TestUpsertReview_MissingMovie(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(), eager()}}
	svc := NewService(mock, 10, nil)

	_, _, err := svc.UpsertReview(context.Background(), "user-1", "nope", 8.0, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOwnReview_NotFoundOrForeign(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(record([]string{"deleted"}, int64(0)))}}
	svc := NewService(mock, 10, nil)

	err := svc.DeleteOwnReview(context.Background(), "user-1", "rev-9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOwnReview_ScopedToOwner(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(record([]string{"deleted"}, int64(1)))}}
	svc := NewService(mock, 10, nil)

	err := svc.DeleteOwnReview(context.Background(), "user-1", "rev-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", mock.Executed[0].Params["userId"])
}

func TestAdminReviews(t *testing.T) {
	result := eager(record(
		[]string{"r", "username", "userEmail", "movieTitle", "movieId"},
		reviewRel("rev-1", 9.5, "Great"), "demo", "demo@example.com", "The Matrix", "movie-11",
	))
	mock := &MockDriver{Results: []neo4j.EagerResult{result}}
	svc := NewService(mock, 10, nil)

	reviews, err := svc.AdminReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "demo@example.com", reviews[0].UserEmail)
	assert.Equal(t, "movie-11", reviews[0].MovieID)
	assert.Equal(t, "The Matrix", reviews[0].MovieTitle)
}
