package catalog

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

// Trend score weights. avgRating is bounded 0-10 while the two counts are
// unbounded, so counts dominate once a movie accumulates activity. That is
// how the score has always worked and changing it would reorder the featured
// shelf, so it stays.
const (
	weightAvgRating   = 0.5
	weightReviewCount = 0.3
	weightViewCount   = 0.2
)

// recentReleaseFloor is the oldest release year shown in the recent set.
const recentReleaseFloor = 2024

// TrendScore is the sort key of the featured set. Missing aggregates are
// passed as zero, never propagated as null.
func TrendScore(avgRating float64, reviewCount, viewCount int64) float64 {
	return avgRating*weightAvgRating +
		float64(reviewCount)*weightReviewCount +
		float64(viewCount)*weightViewCount
}

// TrendingSets holds the four trending shelves; only requested ones are
// non-nil.
type TrendingSets struct {
	Featured       []model.TrendingMovie `json:"featured,omitempty"`
	HighestRated   []model.TrendingMovie `json:"highestRated,omitempty"`
	MostViewed     []model.TrendingMovie `json:"mostViewed,omitempty"`
	RecentReleases []model.TrendingMovie `json:"recentReleases,omitempty"`
}

// Trending computes the requested trending sets. kind is one of "all",
// "featured", "rated", "viewed", "recent"; an unrecognized kind selects
// nothing and yields four empty sets.
func (s *Service) Trending(ctx context.Context, kind string) (*TrendingSets, error) {
	all := kind == "" || kind == "all"
	sets := &TrendingSets{}

	if all || kind == "rated" {
		movies, err := s.trendingQuery(ctx, driver.HighestRatedQuery, nil, false)
		if err != nil {
			return nil, err
		}
		sets.HighestRated = movies
	}

	if all || kind == "viewed" {
		movies, err := s.trendingQuery(ctx, driver.MostViewedQuery, nil, false)
		if err != nil {
			return nil, err
		}
		sets.MostViewed = movies
	}

	if all || kind == "recent" {
		movies, err := s.trendingQuery(ctx, driver.RecentReleasesQuery,
			map[string]interface{}{"sinceYear": recentReleaseFloor}, false)
		if err != nil {
			return nil, err
		}
		sets.RecentReleases = movies
	}

	if all || kind == "featured" {
		movies, err := s.trendingQuery(ctx, driver.FeaturedQuery, nil, true)
		if err != nil {
			return nil, err
		}
		sets.Featured = movies
	}

	return sets, nil
}

func (s *Service) trendingQuery(ctx context.Context, query string, params map[string]interface{}, scored bool) ([]model.TrendingMovie, error) {
	result, err := s.Driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return trendingFromRecords(result.Records, scored), nil
}

func trendingFromRecords(records []*neo4j.Record, scored bool) []model.TrendingMovie {
	movies := make([]model.TrendingMovie, 0, len(records))
	for _, rec := range records {
		movie, ok := movieFromRecord(rec, "m")
		if !ok {
			continue
		}
		tm := model.TrendingMovie{
			Movie:       movie,
			Genres:      asStringList(recordValue(rec, "genres")),
			AvgRating:   asFloat64(recordValue(rec, "avgRating")),
			ReviewCount: asInt64(recordValue(rec, "reviewCount")),
			ViewCount:   asInt64(recordValue(rec, "viewCount")),
		}
		if scored {
			tm.TrendScore = TrendScore(tm.AvgRating, tm.ReviewCount, tm.ViewCount)
		}
		movies = append(movies, tm)
	}
	return movies
}
