package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

// MovieReviews lists a movie's reviews with the reviewer's name, newest
// first.
func (s *Service) MovieReviews(ctx context.Context, movieID string) ([]model.Review, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.MovieReviewsQuery, map[string]interface{}{"movieId": movieID})
	if err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0, len(result.Records))
	for _, rec := range result.Records {
		review, ok := reviewFromRecord(rec, "r")
		if !ok {
			continue
		}
		review.Username = asString(recordValue(rec, "username"))
		review.UserID = asString(recordValue(rec, "userId"))
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// UpsertReview creates the user's review of a movie, or updates it when one
// already exists. At most one review per user per movie. The returned bool
// reports whether a new review was created.
func (s *Service) UpsertReview(ctx context.Context, userID, movieID string, rating float64, text string) (*model.Review, bool, error) {
	existing, err := s.Driver.ExecuteQuery(ctx, driver.ExistingReviewQuery, map[string]interface{}{
		"userId": userID, "movieId": movieID,
	})
	if err != nil {
		return nil, false, err
	}

	params := map[string]interface{}{
		"userId":  userID,
		"movieId": movieID,
		"rating":  rating,
		"text":    text,
	}

	if len(existing.Records) > 0 {
		result, err := s.Driver.ExecuteQuery(ctx, driver.UpdateReviewQuery, params)
		if err != nil {
			return nil, false, err
		}
		if len(result.Records) == 0 {
			return nil, false, ErrNotFound
		}
		review, _ := reviewFromRecord(result.Records[0], "r")
		review.Username = asString(recordValue(result.Records[0], "username"))
		return &review, false, nil
	}

	params["reviewId"] = uuid.New().String()
	result, err := s.Driver.ExecuteQuery(ctx, driver.CreateReviewQuery, params)
	if err != nil {
		return nil, false, err
	}
	if len(result.Records) == 0 {
		// Either the user or the movie is gone.
		return nil, false, ErrNotFound
	}
	review, _ := reviewFromRecord(result.Records[0], "r")
	review.Username = asString(recordValue(result.Records[0], "username"))

	s.log.Info("review created", zap.String("movieId", movieID), zap.String("userId", userID))
	return &review, true, nil
}

// DeleteOwnReview deletes a review owned by the user. ErrNotFound when the
// review does not exist or belongs to somebody else.
func (s *Service) DeleteOwnReview(ctx context.Context, userID, reviewID string) error {
	result, err := s.Driver.ExecuteQuery(ctx, driver.DeleteOwnReviewQuery, map[string]interface{}{
		"userId": userID, "reviewId": reviewID,
	})
	if err != nil {
		return err
	}
	if len(result.Records) == 0 || asInt64(recordValue(result.Records[0], "deleted")) == 0 {
		return ErrNotFound
	}
	return nil
}

// AdminReviews lists every review with user and movie context.
func (s *Service) AdminReviews(ctx context.Context) ([]model.AdminReview, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.AdminReviewsQuery, nil)
	if err != nil {
		return nil, err
	}

	reviews := make([]model.AdminReview, 0, len(result.Records))
	for _, rec := range result.Records {
		review, ok := reviewFromRecord(rec, "r")
		if !ok {
			continue
		}
		review.Username = asString(recordValue(rec, "username"))
		reviews = append(reviews, model.AdminReview{
			Review:     review,
			UserEmail:  asString(recordValue(rec, "userEmail")),
			MovieID:    asString(recordValue(rec, "movieId")),
			MovieTitle: asString(recordValue(rec, "movieTitle")),
		})
	}
	return reviews, nil
}

// AdminDeleteReview deletes any review by id, regardless of owner.
func (s *Service) AdminDeleteReview(ctx context.Context, reviewID string) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.AdminDeleteReviewQuery, map[string]interface{}{"id": reviewID})
	return err
}
