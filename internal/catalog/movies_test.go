package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

func TestMovieFilter_WhereClause_Empty(t *testing.T) {
	where, params := MovieFilter{}.WhereClause()
	assert.Empty(t, where)
	assert.Empty(t, params)
}

func TestMovieFilter_WhereClause_Search(t *testing.T) {
	where, params := MovieFilter{Search: "matrix"}.WhereClause()
	assert.Contains(t, where, "toLower(m.title) CONTAINS toLower($search)")
	assert.Contains(t, where, "toLower(m.plot) CONTAINS toLower($search)")
	assert.Equal(t, "matrix", params["search"])
}

func TestMovieFilter_WhereClause_AllCombinedWithAnd(t *testing.T) {
	where, params := MovieFilter{Search: "war", Genre: "Drama", Year: 2019}.WhereClause()

	assert.True(t, len(where) > 0)
	assert.Contains(t, where, "WHERE ")
	assert.Contains(t, where, "$search")
	assert.Contains(t, where, `(m)-[:IN_GENRE]->(:Genre {name: $genre})`)
	assert.Contains(t, where, "m.releaseYear = $year")
	assert.Equal(t, 2, countOccurrences(where, " AND "))
	assert.Equal(t, map[string]interface{}{"search": "war", "genre": "Drama", "year": 2019}, params)
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 12))
	assert.Equal(t, int64(1), TotalPages(1, 12))
	assert.Equal(t, int64(1), TotalPages(12, 12))
	assert.Equal(t, int64(2), TotalPages(13, 12))
	assert.Equal(t, int64(0), TotalPages(10, 0))
}

func TestListMovies_PageAndTotals(t *testing.T) {
	listRecords := eager(
		record([]string{"m", "director", "genres"},
			movieNode("movie-2", "Inception", 2010), "Christopher Nolan", []interface{}{"Sci-Fi", "Thriller"}),
		record([]string{"m", "director", "genres"},
			movieNode("movie-1", "The Dark Knight", 2008), nil, []interface{}{"Action"}),
	)
	countRecords := eager(record([]string{"total"}, int64(25)))

	mock := &MockDriver{Results: []neo4j.EagerResult{listRecords, countRecords}}
	svc := NewService(mock, 10, nil)

	page, err := svc.ListMovies(context.Background(), MovieFilter{Genre: "Action"}, 2, 12)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(page.Movies), page.Pagination.Limit)
	assert.GreaterOrEqual(t, page.Pagination.Total, int64(len(page.Movies)))
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, int64(3), page.Pagination.TotalPages)

	require.Len(t, page.Movies, 2)
	require.NotNil(t, page.Movies[0].Director)
	assert.Equal(t, "Christopher Nolan", *page.Movies[0].Director)
	assert.Nil(t, page.Movies[1].Director)
	assert.Equal(t, []string{"Sci-Fi", "Thriller"}, page.Movies[0].Genres)

	// Two queries: the page and the count, both carrying the filter.
	require.Len(t, mock.Executed, 2)
	assert.Contains(t, mock.Executed[0].Query, "ORDER BY m.releaseYear DESC")
	assert.Equal(t, 12, mock.Executed[0].Params["skip"])
	assert.Equal(t, "Action", mock.Executed[1].Params["genre"])
	assert.NotContains(t, mock.Executed[1].Params, "skip")
	assert.Contains(t, mock.Executed[1].Query, "count(m) AS total")
}

func TestListMovies_DefaultsPageAndLimit(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(), eager(record([]string{"total"}, int64(0)))}}
	svc := NewService(mock, 10, nil)

	page, err := svc.ListMovies(context.Background(), MovieFilter{}, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 12, page.Pagination.Limit)
	assert.Equal(t, 0, mock.Executed[0].Params["skip"])
}

func TestGetMovie_NotFound(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{eager()}}
	svc := NewService(mock, 10, nil)

	_, err := svc.GetMovie(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMovie_FiltersEmptyCastEntries(t *testing.T) {
	detailRecord := record(
		[]string{"m", "director", "cast", "genres", "avgRating", "reviewCount"},
		movieNode("movie-1", "The Dark Knight", 2008),
		"Christopher Nolan",
		[]interface{}{
			map[string]interface{}{"name": nil, "character": nil}, // movie with no cast yields this
			map[string]interface{}{"name": "Heath Ledger", "character": "Joker"},
		},
		[]interface{}{"Action", "Crime"},
		8.75,
		int64(4),
	)
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(detailRecord)}}
	svc := NewService(mock, 10, nil)

	detail, err := svc.GetMovie(context.Background(), "movie-1")
	require.NoError(t, err)

	require.Len(t, detail.Cast, 1)
	assert.Equal(t, model.CastMember{Name: "Heath Ledger", Character: "Joker"}, detail.Cast[0])
	assert.Equal(t, 8.75, detail.AvgRating)
	assert.Equal(t, int64(4), detail.ReviewCount)
	require.NotNil(t, detail.Director)
	assert.Equal(t, "Christopher Nolan", *detail.Director)
}

func TestGetMovie_ZeroReviewsDefaultsToZero(t *testing.T) {
	detailRecord := record(
		[]string{"m", "director", "cast", "genres", "avgRating", "reviewCount"},
		movieNode("movie-9", "Obscure", 1999),
		nil, []interface{}{}, []interface{}{}, nil, int64(0),
	)
	mock := &MockDriver{Results: []neo4j.EagerResult{eager(detailRecord)}}
	svc := NewService(mock, 10, nil)

	detail, err := svc.GetMovie(context.Background(), "movie-9")
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.AvgRating)
	assert.Nil(t, detail.Director)
	assert.Empty(t, detail.Cast)
}

func TestCreateMovie_RunsRelationsInOneTransaction(t *testing.T) {
	mock := &MockDriver{
		TxRecords: [][]*neo4j.Record{
			{record([]string{"m"}, movieNode("", "Heat", 1995))},
		},
	}
	svc := NewService(mock, 10, nil)

	movie, err := svc.CreateMovie(context.Background(), MovieInput{
		Title:       "Heat",
		ReleaseYear: 1995,
		Director:    "Michael Mann",
		Genres:      []string{"Crime", "Thriller"},
		Cast:        []model.CastMember{{Name: "Al Pacino", Character: "Vincent Hanna"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)

	// CREATE + director + 2 genres + 1 cast member, all through the tx.
	require.Len(t, mock.Executed, 5)
	assert.Contains(t, mock.Executed[0].Query, "CREATE (m:Movie")
	assert.NotEmpty(t, mock.Executed[0].Params["id"]) // generated uuid
	assert.Equal(t, "Michael Mann", mock.Executed[1].Params["directorName"])
	assert.Equal(t, driver.MergeMovieGenreQuery, mock.Executed[2].Query)
	assert.Equal(t, "Al Pacino", mock.Executed[4].Params["actorName"])
}

func TestUpdateMovie_NotFound(t *testing.T) {
	mock := &MockDriver{}
	svc := NewService(mock, 10, nil)

	_, err := svc.UpdateMovie(context.Background(), "nope", MovieInput{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMovie_FailedGenreLinkAbortsTransaction(t *testing.T) {
	boom := errors.New("db error")
	mock := &MockDriver{
		TxRecords: [][]*neo4j.Record{
			{record([]string{"m"}, movieNode("movie-1", "Heat", 1995))},
		},
	}
	svc := NewService(mock, 10, nil)

	// First tx statement succeeds, everything after fails.
	mockWithFailure := &failAfterDriver{MockDriver: mock, failAfter: 1, err: boom}
	svc.Driver = mockWithFailure

	_, err := svc.UpdateMovie(context.Background(), "movie-1", MovieInput{
		Title:  "Heat",
		Genres: []string{"Crime"},
	})
	assert.ErrorIs(t, err, boom)
}

// failAfterDriver lets the first n tx statements through, then errors.
type failAfterDriver struct {
	*MockDriver
	failAfter int
	err       error
	calls     int
}

func (d *failAfterDriver) ExecuteWrite(ctx context.Context, work func(ctx context.Context, tx driver.Tx) error) error {
	return work(ctx, failTx{d: d})
}

type failTx struct {
	d *failAfterDriver
}

func (t failTx) Run(ctx context.Context, query string, params map[string]interface{}) ([]*neo4j.Record, error) {
	t.d.calls++
	if t.d.calls > t.d.failAfter {
		return nil, t.d.err
	}
	return mockTx{m: t.d.MockDriver}.Run(ctx, query, params)
}
