package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SodiqovS/Fyyur/internal/config"
	"github.com/SodiqovS/Fyyur/internal/database"
	"github.com/SodiqovS/Fyyur/internal/handlers"
	"github.com/SodiqovS/Fyyur/internal/logger"
	"github.com/SodiqovS/Fyyur/internal/messaging"
	"github.com/SodiqovS/Fyyur/internal/middleware"
	"github.com/SodiqovS/Fyyur/internal/repository"
	"github.com/SodiqovS/Fyyur/internal/seed"
	"github.com/SodiqovS/Fyyur/internal/service"
)

// Server wires the database, services and routes into one HTTP API.
type Server struct {
	router    *gin.Engine
	config    *config.Config
	db        *database.DB
	publisher *messaging.Publisher
	services  *service.Services
	repos     *repository.Repositories
}

// NewServer builds a fully wired server: database connected, migrations run,
// reference tables seeded, routes registered. The seed step runs before the
// listener ever accepts traffic.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	publisher, err := messaging.NewPublisher(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	repos := repository.NewRepositories(db)

	if err := seed.NewLoader(repos.Reference).Run(context.Background()); err != nil {
		logger.Fatal("Failed to seed reference data", "error", err)
	}

	services := service.NewServices(repos, publisher)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:    router,
		config:    cfg,
		db:        db,
		publisher: publisher,
		services:  services,
		repos:     repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	RegisterRoutes(s.router, h)

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
}

// RegisterRoutes mounts the application routes on the engine. Split out so
// handler tests can mount the same routes on a bare test engine.
func RegisterRoutes(router *gin.Engine, h *handlers.Handlers) {
	router.GET("/", h.Home)

	venues := router.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.POST("", h.CreateVenue)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/:id", h.GetVenue)
		venues.POST("/:id", h.UpdateVenue)
		venues.POST("/:id/delete", h.DeleteVenue)
	}

	artists := router.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.POST("", h.CreateArtist)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/:id", h.GetArtist)
		artists.POST("/:id", h.UpdateArtist)
	}

	shows := router.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.POST("", h.CreateShow)
	}

	router.GET("/states", h.ListStates)
	router.GET("/genres", h.ListGenres)
}

// healthCheck reports service status with a database pool snapshot.
func (s *Server) healthCheck(c *gin.Context) {
	health := s.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   health.Status,
		"service":  "fyyur-api",
		"database": health,
	})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for the http.Server and for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes the broker and database connections.
func (s *Server) Cleanup() error {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Get().Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
