package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/auth"
	"github.com/cinegraph/cinegraph/internal/catalog"
	"github.com/cinegraph/cinegraph/internal/config"
	"github.com/cinegraph/cinegraph/internal/driver"
)

type Server struct {
	Catalog *catalog.Service
	Tokens  *auth.TokenManager
	Driver  driver.GraphDriver
	Config  *config.Config
	Log     *zap.Logger
}

func New(cfg *config.Config, d driver.GraphDriver, log *zap.Logger) *Server {
	return &Server{
		Catalog: catalog.NewService(d, cfg.Auth.BcryptCost, log),
		Tokens:  auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour),
		Driver:  d,
		Config:  cfg,
		Log:     log,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.Config.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := auth.RequireAuth(s.Tokens)
	requireAdmin := auth.RequireAdmin(s.Tokens)
	optionalAuth := auth.OptionalAuth(s.Tokens)

	api := r.Group("/api")

	api.GET("/health", s.Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.GET("/me", requireAuth, s.Me)

	movies := api.Group("/movies")
	movies.GET("", s.ListMovies)
	movies.GET("/meta/genres", s.GenreNames)
	movies.GET("/:id", s.GetMovie)
	movies.GET("/:id/connections", s.Connections)
	movies.POST("", requireAdmin, s.CreateMovie)
	movies.PUT("/:id", requireAdmin, s.UpdateMovie)
	movies.DELETE("/:id", requireAdmin, s.DeleteMovie)

	reviews := api.Group("/reviews")
	reviews.GET("/movie/:movieId", s.MovieReviews)
	reviews.POST("/movie/:movieId", requireAuth, s.CreateReview)
	reviews.DELETE("/:reviewId", requireAuth, s.DeleteReview)

	trending := api.Group("/trending")
	trending.GET("", s.Trending)
	trending.POST("/view/:movieId", optionalAuth, s.TrackView)

	admin := api.Group("/admin", requireAdmin)
	s.registerNamedEntityRoutes(admin.Group("/actors"), catalog.Actors, true)
	s.registerNamedEntityRoutes(admin.Group("/directors"), catalog.Directors, false)
	s.registerNamedEntityRoutes(admin.Group("/genres"), catalog.Genres, false)
	admin.GET("/users", s.AdminListUsers)
	admin.PUT("/users/:id", s.AdminUpdateUser)
	admin.DELETE("/users/:id", s.AdminDeleteUser)
	admin.GET("/reviews", s.AdminListReviews)
	admin.DELETE("/reviews/:id", s.AdminDeleteReview)
	admin.GET("/stats", s.AdminStats)

	return r
}

// Health verifies database connectivity with a trivial query.
func (s *Server) Health(c *gin.Context) {
	if _, err := s.Driver.ExecuteQuery(c.Request.Context(), "RETURN 1", nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}

// fail maps catalog errors onto HTTP statuses. Anything unclassified is a
// 500 with the backend message surfaced, matching the error contract.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, catalog.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
	case errors.Is(err, catalog.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	default:
		s.Log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
