package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinegraph/cinegraph/internal/catalog"
)

type NamedEntityRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameRequest struct {
	CurrentName string `json:"currentName"`
	NewName     string `json:"newName" binding:"required"`
}

// registerNamedEntityRoutes wires the shared CRUD for actors, directors and
// genres. The actor screen addresses entities by path parameter while the
// director/genre screens use request body and query string; both shapes are
// kept for client compatibility.
func (s *Server) registerNamedEntityRoutes(g *gin.RouterGroup, kind catalog.EntityKind, byPath bool) {
	g.GET("", func(c *gin.Context) {
		entities, err := s.Catalog.ListNamed(c.Request.Context(), kind)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, entities)
	})

	g.POST("", func(c *gin.Context) {
		var req NamedEntityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		entity, err := s.Catalog.CreateNamed(c.Request.Context(), kind, req.Name)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, entity)
	})

	rename := func(c *gin.Context, name string) {
		var req RenameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		if name == "" {
			name = req.CurrentName
		}
		entity, err := s.Catalog.RenameNamed(c.Request.Context(), kind, name, req.NewName)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, entity)
	}

	remove := func(c *gin.Context, name string) {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
			return
		}
		if err := s.Catalog.DeleteNamed(c.Request.Context(), kind, name); err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": kind.Label + " deleted successfully"})
	}

	if byPath {
		g.PUT("/:name", func(c *gin.Context) { rename(c, c.Param("name")) })
		g.DELETE("/:name", func(c *gin.Context) { remove(c, c.Param("name")) })
	} else {
		g.PUT("", func(c *gin.Context) { rename(c, "") })
		g.DELETE("", func(c *gin.Context) { remove(c, c.Query("name")) })
	}
}

func (s *Server) AdminListUsers(c *gin.Context) {
	users, err := s.Catalog.AdminListUsers(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type UserUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

func (s *Server) AdminUpdateUser(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := s.Catalog.UpdateUser(c.Request.Context(), c.Param("id"), catalog.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user.PublicView())
}

func (s *Server) AdminDeleteUser(c *gin.Context) {
	if err := s.Catalog.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (s *Server) AdminListReviews(c *gin.Context) {
	reviews, err := s.Catalog.AdminReviews(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) AdminDeleteReview(c *gin.Context) {
	if err := s.Catalog.AdminDeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (s *Server) AdminStats(c *gin.Context) {
	stats, err := s.Catalog.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
