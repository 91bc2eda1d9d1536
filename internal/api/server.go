package api

import (
	"log"

	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/config"
	"nestmetrics/internal/report"
	"nestmetrics/internal/scoring"

	"github.com/gin-gonic/gin"
)

// Server is the JSON API over the dataset snapshot. All state it holds is
// read-only; requests can be served in parallel without coordination.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	provider *aggregate.Provider
	engine   *scoring.Engine
	reports  *report.Builder
}

// NewServer creates the API server and wires its routes
func NewServer(cfg *config.Config, provider *aggregate.Provider, engine *scoring.Engine, reports *report.Builder) *Server {
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(RecoveryJSON())
	router.Use(RequestID())
	router.Use(CORS())

	s := &Server{
		router:   router,
		config:   cfg,
		provider: provider,
		engine:   engine,
		reports:  reports,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the API endpoints
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/health", s.handleHealth)

	// Scoring engine endpoints
	api.POST("/ml-predict", s.handlePredict)
	api.GET("/booking-score", s.handleBookingScore)
	api.POST("/booking-score", s.handleBookingScore)
	api.GET("/find-deals", s.handleFindDeals)
	api.POST("/find-deals", s.handleFindDeals)
	api.GET("/top-hosts", s.handleTopHosts)

	// Aggregate endpoints
	api.GET("/stats", s.handleStats)
	api.GET("/advanced-analytics", s.handleAdvancedAnalytics)
	api.GET("/listings", s.handleListings)
	api.GET("/travel-insights", s.handleTravelInsights)
	api.POST("/booking-optimizer", s.handleBookingOptimizer)
	api.GET("/market-report", s.handleMarketReport)
}

// Router exposes the underlying handler, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP listener
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	log.Printf("🌐 API server listening on %s", addr)
	return s.router.Run(addr)
}
