package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinegraph/cinegraph/internal/auth"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := s.Catalog.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	token, err := s.Tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   token,
		"user":    user.PublicView(),
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := s.Catalog.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	token, err := s.Tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user.PublicView(),
	})
}

// Me returns the account behind the presented token; 404 when the account
// has been deleted since the token was issued.
func (s *Server) Me(c *gin.Context) {
	user, err := s.Catalog.GetUser(c.Request.Context(), c.GetString(auth.CtxUserID))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user.PublicView())
}
