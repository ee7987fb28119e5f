package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinegraph/cinegraph/internal/auth"
)

func (s *Server) Trending(c *gin.Context) {
	sets, err := s.Catalog.Trending(c.Request.Context(), c.DefaultQuery("type", "all"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sets)
}

// TrackView records a view for the movie. Authenticated callers get a
// VIEWED relationship, everyone else bumps the anonymous counter; an invalid
// token is not an error here.
func (s *Server) TrackView(c *gin.Context) {
	err := s.Catalog.TrackView(c.Request.Context(), c.Param("movieId"), c.GetString(auth.CtxUserID))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "View tracked"})
}
