package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

// MovieFilter holds the optional list filters. Zero values mean "no filter";
// all present filters are combined with AND.
type MovieFilter struct {
	Search string
	Genre  string
	Year   int
}

// WhereClause renders the filter as a Cypher WHERE fragment over a movie
// variable m, plus the query parameters it references. Empty when no filter
// is set.
func (f MovieFilter) WhereClause() (string, map[string]interface{}) {
	var conds []string
	params := map[string]interface{}{}

	if f.Search != "" {
		conds = append(conds, "(toLower(m.title) CONTAINS toLower($search) OR toLower(m.plot) CONTAINS toLower($search))")
		params["search"] = f.Search
	}
	if f.Genre != "" {
		conds = append(conds, "EXISTS { (m)-[:IN_GENRE]->(:Genre {name: $genre}) }")
		params["genre"] = f.Genre
	}
	if f.Year != 0 {
		conds = append(conds, "m.releaseYear = $year")
		params["year"] = f.Year
	}

	if len(conds) == 0 {
		return "", params
	}
	return "WHERE " + strings.Join(conds, " AND "), params
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// ListMovies returns one page of movies matching the filter, newest release
// first, together with the total count over the same predicate.
func (s *Service) ListMovies(ctx context.Context, filter MovieFilter, page, limit int) (*model.MoviePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	where, params := filter.WhereClause()
	params["skip"] = (page - 1) * limit
	params["limit"] = limit

	query := fmt.Sprintf(`
		MATCH (m:Movie)
		%s
		OPTIONAL MATCH (m)-[:DIRECTED_BY]->(d:Director)
		OPTIONAL MATCH (m)-[:IN_GENRE]->(g:Genre)
		WITH m, d, collect(DISTINCT g.name) AS genres
		RETURN m, d.name AS director, genres
		ORDER BY m.releaseYear DESC
		SKIP $skip LIMIT $limit
	`, where)

	result, err := s.Driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return nil, err
	}

	movies := make([]model.MovieSummary, 0, len(result.Records))
	for _, rec := range result.Records {
		movie, ok := movieFromRecord(rec, "m")
		if !ok {
			continue
		}
		summary := model.MovieSummary{
			Movie:  movie,
			Genres: asStringList(recordValue(rec, "genres")),
		}
		if name, ok := recordValue(rec, "director").(string); ok {
			summary.Director = &name
		}
		movies = append(movies, summary)
	}

	countQuery := fmt.Sprintf(`
		MATCH (m:Movie)
		%s
		RETURN count(m) AS total
	`, where)

	countParams := map[string]interface{}{}
	for k, v := range params {
		if k != "skip" && k != "limit" {
			countParams[k] = v
		}
	}

	countResult, err := s.Driver.ExecuteQuery(ctx, countQuery, countParams)
	if err != nil {
		return nil, err
	}

	var total int64
	if len(countResult.Records) > 0 {
		total = asInt64(recordValue(countResult.Records[0], "total"))
	}

	return &model.MoviePage{
		Movies: movies,
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: TotalPages(total, limit),
		},
	}, nil
}

// GetMovie assembles the single-movie read model: properties, optional
// director, cast, genres and review aggregates.
func (s *Service) GetMovie(ctx context.Context, id string) (*model.MovieDetail, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.MovieDetailQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	rec := result.Records[0]
	movie, ok := movieFromRecord(rec, "m")
	if !ok {
		return nil, ErrNotFound
	}

	detail := &model.MovieDetail{
		Movie:       movie,
		Genres:      asStringList(recordValue(rec, "genres")),
		AvgRating:   asFloat64(recordValue(rec, "avgRating")),
		ReviewCount: asInt64(recordValue(rec, "reviewCount")),
		Cast:        []model.CastMember{},
	}
	if name, ok := recordValue(rec, "director").(string); ok {
		detail.Director = &name
	}

	// A movie with no cast yields one {name: null} entry from the DISTINCT
	// collect; drop those.
	if rawCast, ok := recordValue(rec, "cast").([]interface{}); ok {
		for _, item := range rawCast {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			name := asString(entry["name"])
			if name == "" {
				continue
			}
			detail.Cast = append(detail.Cast, model.CastMember{
				Name:      name,
				Character: asString(entry["character"]),
			})
		}
	}

	return detail, nil
}

// GenreNames lists all genre names sorted alphabetically.
func (s *Service) GenreNames(ctx context.Context) ([]string, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.GenreNamesQuery, nil)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(result.Records))
	for _, rec := range result.Records {
		if name, ok := recordValue(rec, "name").(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// MovieInput carries the admin create/update payload. Director, Genres and
// Cast rewire relationships; empty values leave them untouched on update.
type MovieInput struct {
	ID          string
	Title       string
	Plot        string
	ReleaseYear int
	Runtime     int
	Rating      float64
	Poster      string
	Backdrop    string
	Director    string
	Genres      []string
	Cast        []model.CastMember
}

func (in MovieInput) props() map[string]interface{} {
	return map[string]interface{}{
		"title":       in.Title,
		"plot":        in.Plot,
		"releaseYear": in.ReleaseYear,
		"runtime":     in.Runtime,
		"rating":      in.Rating,
		"poster":      in.Poster,
		"backdrop":    in.Backdrop,
	}
}

// CreateMovie creates the movie node and its director/genre/cast relations
// in one transaction.
func (s *Service) CreateMovie(ctx context.Context, in MovieInput) (*model.Movie, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	var created model.Movie
	err := s.Driver.ExecuteWrite(ctx, func(ctx context.Context, tx driver.Tx) error {
		params := in.props()
		params["id"] = id
		records, err := tx.Run(ctx, driver.CreateMovieQuery, params)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("movie %s was not created", id)
		}
		movie, ok := movieFromRecord(records[0], "m")
		if !ok {
			return fmt.Errorf("unexpected create result for movie %s", id)
		}
		created = movie

		if in.Director != "" {
			if _, err := tx.Run(ctx, driver.MergeMovieDirectorQuery, map[string]interface{}{
				"movieId": id, "directorName": in.Director,
			}); err != nil {
				return err
			}
		}
		for _, genre := range in.Genres {
			if _, err := tx.Run(ctx, driver.MergeMovieGenreQuery, map[string]interface{}{
				"movieId": id, "genreName": genre,
			}); err != nil {
				return err
			}
		}
		for _, member := range in.Cast {
			if _, err := tx.Run(ctx, driver.MergeMovieActorQuery, map[string]interface{}{
				"movieId": id, "actorName": member.Name, "character": member.Character,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("movie created", zap.String("id", id), zap.String("title", in.Title))
	return &created, nil
}

// UpdateMovie updates the movie properties and rewires director/genre/cast
// relations. Everything runs in one transaction so a failure partway leaves
// the movie untouched.
func (s *Service) UpdateMovie(ctx context.Context, id string, in MovieInput) (*model.Movie, error) {
	var updated model.Movie
	err := s.Driver.ExecuteWrite(ctx, func(ctx context.Context, tx driver.Tx) error {
		records, err := tx.Run(ctx, driver.UpdateMoviePropsQuery, map[string]interface{}{
			"id": id, "props": in.props(),
		})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return ErrNotFound
		}
		movie, ok := movieFromRecord(records[0], "m")
		if !ok {
			return ErrNotFound
		}
		updated = movie

		if in.Director != "" {
			if _, err := tx.Run(ctx, driver.RewireMovieDirectorQuery, map[string]interface{}{
				"id": id, "directorName": in.Director,
			}); err != nil {
				return err
			}
		}
		if in.Genres != nil {
			if _, err := tx.Run(ctx, driver.ClearMovieGenresQuery, map[string]interface{}{"id": id}); err != nil {
				return err
			}
			for _, genre := range in.Genres {
				if _, err := tx.Run(ctx, driver.LinkMovieGenreQuery, map[string]interface{}{
					"id": id, "genreName": genre,
				}); err != nil {
					return err
				}
			}
		}
		if in.Cast != nil {
			if _, err := tx.Run(ctx, driver.ClearMovieActorsQuery, map[string]interface{}{"id": id}); err != nil {
				return err
			}
			for _, member := range in.Cast {
				if _, err := tx.Run(ctx, driver.MergeMovieActorQuery, map[string]interface{}{
					"movieId": id, "actorName": member.Name, "character": member.Character,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("movie updated", zap.String("id", id))
	return &updated, nil
}

// DeleteMovie detach-deletes the movie and all its relationships.
func (s *Service) DeleteMovie(ctx context.Context, id string) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.DeleteMovieQuery, map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	s.log.Info("movie deleted", zap.String("id", id))
	return nil
}
