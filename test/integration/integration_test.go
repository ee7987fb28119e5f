//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/catalog"
	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

func TestFullFlow(t *testing.T) {
	// Load environment if present
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("Skipping integration test: NEO4J_URI not set")
	}
	user := os.Getenv("NEO4J_USER")
	pwd := os.Getenv("NEO4J_PASSWORD")

	ctx := context.Background()
	d, err := driver.NewNeo4jDriver(uri, user, pwd, zap.NewNop())
	require.NoError(t, err)
	defer d.Close(ctx)

	require.NoError(t, d.BuildConstraints(ctx))

	svc := catalog.NewService(d, 4, zap.NewNop())

	// Unique suffix so reruns against a shared database do not collide.
	run := uuid.New().String()
	movieID := "it-movie-" + run
	email := fmt.Sprintf("it-%s@example.com", run)

	// Step 1: create a movie with full relations in one transaction.
	movie, err := svc.CreateMovie(ctx, catalog.MovieInput{
		ID:          movieID,
		Title:       "Integration Test Feature",
		ReleaseYear: 2023,
		Director:    "IT Director " + run,
		Genres:      []string{"Drama"},
		Cast: []model.CastMember{
			{Name: "IT Actor " + run, Character: "Lead"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, movieID, movie.ID)
	defer svc.DeleteMovie(ctx, movieID)

	// Step 2: register and log back in.
	registered, err := svc.Register(ctx, "it-user-"+run, email, "secret123")
	require.NoError(t, err)
	defer svc.DeleteUser(ctx, registered.ID)

	loggedIn, err := svc.Login(ctx, email, "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)

	_, err = svc.Login(ctx, email, "wrong-password")
	assert.ErrorIs(t, err, catalog.ErrInvalidCredentials)

	// Step 3: review upsert. Second call with the same user updates in
	// place instead of adding a row.
	first, created, err := svc.UpsertReview(ctx, registered.ID, movieID, 7.5, "decent")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.UpsertReview(ctx, registered.ID, movieID, 9.0, "grew on me")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	reviews, err := svc.MovieReviews(ctx, movieID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.InDelta(t, 9.0, reviews[0].Rating, 0.001)

	// Step 4: views from both kinds of caller.
	require.NoError(t, svc.TrackView(ctx, movieID, registered.ID))
	require.NoError(t, svc.TrackView(ctx, movieID, ""))

	detail, err := svc.GetMovie(ctx, movieID)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, detail.AvgRating, 0.001)
	assert.Equal(t, int64(1), detail.ReviewCount)

	// Step 5: detach-delete removes the movie and everything hanging off it.
	require.NoError(t, svc.DeleteMovie(ctx, movieID))
	_, err = svc.GetMovie(ctx, movieID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.MovieReviews(ctx, movieID)
	require.NoError(t, err)
}
