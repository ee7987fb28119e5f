package catalog

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

// statsYearFloor is the oldest release year charted on the dashboard.
const statsYearFloor = 2015

// Stats assembles the admin dashboard: totals per label plus four small
// chart series.
func (s *Service) Stats(ctx context.Context) (*model.Stats, error) {
	stats := &model.Stats{
		Charts: model.StatsCharts{
			MoviesByYear:  []model.YearCount{},
			MoviesByGenre: []model.GenreCount{},
			TopDirectors:  []model.DirectorCount{},
			TopRated:      []model.RatedMovie{},
		},
	}

	totals, err := s.Driver.ExecuteQuery(ctx, driver.StatsTotalsQuery, nil)
	if err != nil {
		return nil, err
	}
	if len(totals.Records) > 0 {
		rec := totals.Records[0]
		stats.Totals = model.StatsTotals{
			Movies:    asInt64(recordValue(rec, "movies")),
			Actors:    asInt64(recordValue(rec, "actors")),
			Directors: asInt64(recordValue(rec, "directors")),
			Genres:    asInt64(recordValue(rec, "genres")),
			Users:     asInt64(recordValue(rec, "users")),
			Reviews:   asInt64(recordValue(rec, "reviews")),
		}
	}

	byYear, err := s.Driver.ExecuteQuery(ctx, driver.MoviesByYearQuery,
		map[string]interface{}{"sinceYear": statsYearFloor})
	if err != nil {
		return nil, err
	}
	for _, rec := range byYear.Records {
		stats.Charts.MoviesByYear = append(stats.Charts.MoviesByYear, model.YearCount{
			Year:  int(asInt64(recordValue(rec, "year"))),
			Count: asInt64(recordValue(rec, "count")),
		})
	}

	byGenre, err := s.Driver.ExecuteQuery(ctx, driver.MoviesByGenreQuery, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range byGenre.Records {
		stats.Charts.MoviesByGenre = append(stats.Charts.MoviesByGenre, model.GenreCount{
			Genre: asString(recordValue(rec, "genre")),
			Count: asInt64(recordValue(rec, "count")),
		})
	}

	topDirectors, err := s.Driver.ExecuteQuery(ctx, driver.TopDirectorsQuery, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range topDirectors.Records {
		stats.Charts.TopDirectors = append(stats.Charts.TopDirectors, model.DirectorCount{
			Name:       asString(recordValue(rec, "director")),
			MovieCount: asInt64(recordValue(rec, "movieCount")),
		})
	}

	topRated, err := s.Driver.ExecuteQuery(ctx, driver.TopRatedQuery, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range topRated.Records {
		stats.Charts.TopRated = append(stats.Charts.TopRated, model.RatedMovie{
			Title:       asString(recordValue(rec, "title")),
			Rating:      asFloat64(recordValue(rec, "avgRating")),
			ReviewCount: asInt64(recordValue(rec, "reviewCount")),
		})
	}

	return stats, nil
}
