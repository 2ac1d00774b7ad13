package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"windfarm-analytics/internal/api/handlers"
	"windfarm-analytics/internal/api/middleware"
	"windfarm-analytics/internal/config"
	"windfarm-analytics/internal/dashboard"
	"windfarm-analytics/internal/observability/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load(os.Getenv("DASHBOARD_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Log working directory and input paths for debugging
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}
	for _, p := range []string{cfg.Data.ProductionFile, cfg.Data.PriceFile} {
		if _, err := os.Stat(p); err != nil {
			log.Printf("Input file not available: %s (error: %v)", p, err)
		} else {
			log.Printf("Input file found: %s", p)
		}
	}

	svc, err := dashboard.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise dashboard: %v", err)
	}

	metrics.Init()

	// Set up Gin router
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	handlers.NewDashboardHandler(svc).Register(api)

	// Serve static files from the built frontend (if it exists)
	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", filepath.Join(staticDir, "assets"))
		router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				middleware.NotFound(c)
			} else {
				c.File(filepath.Join(staticDir, "index.html"))
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		router.NoRoute(middleware.NotFound)
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
