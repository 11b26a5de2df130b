// Package v1 provides HTTP API version 1.
package v1

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"docukit/internal/domain/documents"
	"docukit/internal/infrastructure/http/v1/handlers"
	"docukit/internal/infrastructure/http/v1/middleware"
	"docukit/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// DB is the application database (for health checks).
	DB *sql.DB

	// Logger for request logging.
	Logger *logger.Logger

	// Documents assembles document contexts.
	Documents *documents.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()
	documentHandler := handlers.NewDocumentHandler(baseHandler, cfg.Documents)

	v1 := router.Group("/api/v1")
	{
		docs := v1.Group("/documents")
		docs.POST("/context", documentHandler.AssembleContext)
	}

	return router
}
