package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trolley/backend/config"
)

// SetupRouter creates and configures the Gin router. mcpHandler, when
// non-nil, is mounted at /mcp so agents can reach the tools over HTTP.
func SetupRouter(cfg *config.Config, handler *Handler, mcpHandler http.Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// MCP transport (streamable HTTP uses several methods on one path)
	if mcpHandler != nil {
		router.Any("/mcp", gin.WrapH(mcpHandler))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("/search", handler.SearchProducts)
		}
		v1.GET("/stores", handler.ListStores)
	}

	return router
}
