package catalog

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinegraph/cinegraph/internal/driver"
)

func TestTrendScore_ZeroActivity(t *testing.T) {
	assert.Equal(t, 0.0, TrendScore(0, 0, 0))
}

func TestTrendScore_Weights(t *testing.T) {
	assert.InDelta(t, 4.0, TrendScore(8, 0, 0), 1e-9)
	assert.InDelta(t, 3.0, TrendScore(0, 10, 0), 1e-9)
	assert.InDelta(t, 2.0, TrendScore(0, 0, 10), 1e-9)
	assert.InDelta(t, 9.0, TrendScore(8, 10, 10), 1e-9)
}

func TestTrendScore_MonotoneInReviewCount(t *testing.T) {
	prev := TrendScore(7.5, 0, 3)
	for reviews := int64(1); reviews <= 100; reviews++ {
		score := TrendScore(7.5, reviews, 3)
		assert.Greater(t, score, prev)
		prev = score
	}
}

func TestTrending_FeaturedOnly(t *testing.T) {
	featured := eager(record(
		[]string{"m", "avgRating", "reviewCount", "viewCount", "genres", "trendScore"},
		movieNode("movie-11", "The Matrix", 1999),
		9.0, int64(3), int64(12), []interface{}{"Sci-Fi"}, 7.8,
	))
	mock := &MockDriver{Results: []neo4j.EagerResult{featured}}
	svc := NewService(mock, 10, nil)

	sets, err := svc.Trending(context.Background(), "featured")
	require.NoError(t, err)

	require.Len(t, mock.Executed, 1)
	assert.Equal(t, driver.FeaturedQuery, mock.Executed[0].Query)

	assert.Nil(t, sets.HighestRated)
	assert.Nil(t, sets.MostViewed)
	assert.Nil(t, sets.RecentReleases)
	require.Len(t, sets.Featured, 1)

	got := sets.Featured[0]
	assert.Equal(t, int64(3), got.ReviewCount)
	assert.Equal(t, int64(12), got.ViewCount)
	assert.InDelta(t, TrendScore(9.0, 3, 12), got.TrendScore, 1e-9)
}

func TestTrending_AllRunsFourQueries(t *testing.T) {
	mock := &MockDriver{}
	svc := NewService(mock, 10, nil)

	sets, err := svc.Trending(context.Background(), "all")
	require.NoError(t, err)

	require.Len(t, mock.Executed, 4)
	assert.Equal(t, driver.HighestRatedQuery, mock.Executed[0].Query)
	assert.Equal(t, driver.MostViewedQuery, mock.Executed[1].Query)
	assert.Equal(t, driver.RecentReleasesQuery, mock.Executed[2].Query)
	assert.Equal(t, driver.FeaturedQuery, mock.Executed[3].Query)
	assert.Equal(t, 2024, mock.Executed[2].Params["sinceYear"])

	assert.NotNil(t, sets.Featured)
	assert.NotNil(t, sets.HighestRated)
}

func TestTrending_UnknownKindSelectsNothing(t *testing.T) {
	mock := &MockDriver{}
	svc := NewService(mock, 10, nil)

	sets, err := svc.Trending(context.Background(), "xyz")
	require.NoError(t, err)

	assert.Empty(t, mock.Executed)
	assert.Nil(t, sets.Featured)
	assert.Nil(t, sets.HighestRated)
	assert.Nil(t, sets.MostViewed)
	assert.Nil(t, sets.RecentReleases)
}

func TestTrending_NullAverageBecomesZero(t *testing.T) {
	recent := eager(record(
		[]string{"m", "avgRating", "reviewCount", "genres"},
		movieNode("movie-13", "Dune: Part Two", 2024),
		nil, int64(0), []interface{}{},
	))
	mock := &MockDriver{Results: []neo4j.EagerResult{recent}}
	svc := NewService(mock, 10, nil)

	sets, err := svc.Trending(context.Background(), "recent")
	require.NoError(t, err)
	require.Len(t, sets.RecentReleases, 1)
	assert.Equal(t, 0.0, sets.RecentReleases[0].AvgRating)
}
