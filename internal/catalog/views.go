package catalog

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/driver"
)

// TrackView records a movie view. With a known user the VIEWED relationship
// is merged and its count incremented; anonymous views bump a counter on the
// movie node instead.
func (s *Service) TrackView(ctx context.Context, movieID, userID string) error {
	if userID != "" {
		_, err := s.Driver.ExecuteQuery(ctx, driver.TrackUserViewQuery, map[string]interface{}{
			"userId": userID, "movieId": movieID,
		})
		return err
	}

	_, err := s.Driver.ExecuteQuery(ctx, driver.TrackAnonymousViewQuery, map[string]interface{}{
		"movieId": movieID,
	})
	return err
}
