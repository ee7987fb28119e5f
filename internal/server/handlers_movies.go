package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cinegraph/cinegraph/internal/catalog"
	"github.com/cinegraph/cinegraph/internal/model"
)

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (s *Server) ListMovies(c *gin.Context) {
	filter := catalog.MovieFilter{
		Search: c.Query("search"),
		Genre:  c.Query("genre"),
		Year:   intQuery(c, "year", 0),
	}

	page, err := s.Catalog.ListMovies(c.Request.Context(), filter,
		intQuery(c, "page", 1), intQuery(c, "limit", 12))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) GetMovie(c *gin.Context) {
	detail, err := s.Catalog.GetMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) Connections(c *gin.Context) {
	graph, err := s.Catalog.Connections(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, graph)
}

func (s *Server) GenreNames(c *gin.Context) {
	names, err := s.Catalog.GenreNames(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

type MovieRequest struct {
	ID          string             `json:"id"`
	Title       string             `json:"title" binding:"required"`
	Plot        string             `json:"plot"`
	ReleaseYear int                `json:"releaseYear" binding:"required"`
	Runtime     int                `json:"runtime"`
	Rating      float64            `json:"rating"`
	Poster      string             `json:"poster"`
	Backdrop    string             `json:"backdrop"`
	Director    string             `json:"director"`
	Genres      []string           `json:"genres"`
	Cast        []model.CastMember `json:"cast"`
}

func (r MovieRequest) input() catalog.MovieInput {
	return catalog.MovieInput{
		ID:          r.ID,
		Title:       r.Title,
		Plot:        r.Plot,
		ReleaseYear: r.ReleaseYear,
		Runtime:     r.Runtime,
		Rating:      r.Rating,
		Poster:      r.Poster,
		Backdrop:    r.Backdrop,
		Director:    r.Director,
		Genres:      r.Genres,
		Cast:        r.Cast,
	}
}

func (s *Server) CreateMovie(c *gin.Context) {
	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	movie, err := s.Catalog.CreateMovie(c.Request.Context(), req.input())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (s *Server) UpdateMovie(c *gin.Context) {
	var req MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	movie, err := s.Catalog.UpdateMovie(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (s *Server) DeleteMovie(c *gin.Context) {
	if err := s.Catalog.DeleteMovie(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}
