package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trolley/backend/config"
	httpDelivery "github.com/trolley/backend/internal/delivery/http"
	"github.com/trolley/backend/internal/delivery/mcpserver"
	"github.com/trolley/backend/internal/infrastructure/coles"
	"github.com/trolley/backend/internal/infrastructure/woolworths"
	"github.com/trolley/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Trolley Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("MCP transport: %s", cfg.MCP.Transport)

	// Initialize backend clients
	woolworthsClient := woolworths.NewClient(cfg.Woolworths.BaseURL, cfg.Woolworths.Timeout)
	colesClient := coles.NewClient(cfg.Coles.BaseURL, cfg.Coles.DefaultStoreID, cfg.Coles.Timeout)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(woolworthsClient, colesClient)

	// MCP tool server
	mcpServer := mcpserver.New(searchService)

	if cfg.MCP.Transport == config.TransportStdio {
		// stdout belongs to the MCP protocol in stdio mode
		log.SetOutput(os.Stderr)
		log.Printf("Serving MCP over stdio")
		if err := mcpServer.Run(context.Background()); err != nil {
			log.Fatalf("MCP server stopped: %v", err)
		}
		return
	}

	// HTTP mode: gin serves the REST API and hosts the MCP endpoint at /mcp
	handler := httpDelivery.NewHandler(searchService)
	router := httpDelivery.SetupRouter(cfg, handler, mcpServer.Handler())

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}
