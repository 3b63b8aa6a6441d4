package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Susenthrakumar/word2pdf/config"
	"github.com/Susenthrakumar/word2pdf/handler"
	"github.com/Susenthrakumar/word2pdf/middleware"
	"github.com/Susenthrakumar/word2pdf/pkg/logger"
	"github.com/Susenthrakumar/word2pdf/service"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	storage, err := service.NewLocalStorage(&cfg.Storage)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	var archiveSvc *service.ArchiveService
	if cfg.Archive.Enabled {
		archiveSvc, err = service.NewArchiveService(&cfg.Archive)
		if err != nil {
			slog.Error("failed to initialize archive service", "error", err)
			os.Exit(1)
		}
		if err := archiveSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	// Initialize job store with config
	service.InitJobStore(&cfg.Store)

	// Converters are tried in order until one produces a PDF
	runner := &service.ExecRunner{}
	chain := service.NewChain(
		time.Duration(cfg.Convert.TimeoutSeconds)*time.Second,
		service.NewLibreOfficeConverter(runner),
		service.NewUnoconvConverter(runner),
		service.NewPandocConverter(runner),
		service.NewBuiltinConverter(),
	)
	slog.Info("conversion chain ready", "converters", chain.Names())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	convertHandler := handler.NewConvertHandler(storage, chain, archiveSvc)
	downloadHandler := handler.NewDownloadHandler(storage)
	cleanupHandler := handler.NewCleanupHandler(storage, time.Duration(cfg.Cleanup.MaxAgeHours)*time.Hour)
	jobHandler := handler.NewJobHandler()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(cacheMiddleware())                      // Cache control
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute
	router.Use(maxBodySize(int64(cfg.Convert.MaxUploadMB) << 20))

	// Serve the upload page
	router.StaticFile("/", "./index.html")
	router.StaticFile("/index.html", "./index.html")

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes (pass-through when auth is disabled)
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.POST("/convert", convertHandler.Convert)
		protected.GET("/download/:filename", downloadHandler.Download)
		protected.POST("/cleanup", cleanupHandler.Cleanup)
		protected.GET("/jobs", jobHandler.List)
		protected.GET("/jobs/:id", jobHandler.Get)
		protected.GET("/jobs/:id/status", jobHandler.GetStatus)
		protected.DELETE("/jobs/:id", jobHandler.Delete)
	}

	// Periodic cleanup of old uploads and outputs
	cleanupDone := make(chan struct{})
	go func() {
		interval := time.Duration(cfg.Cleanup.IntervalMinutes) * time.Minute
		maxAge := time.Duration(cfg.Cleanup.MaxAgeHours) * time.Hour
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted := storage.Sweep(maxAge)
				if deleted > 0 {
					slog.Info("periodic cleanup completed", "deleted_count", deleted)
				}
			case <-cleanupDone:
				return
			}
		}
	}()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// cacheMiddleware sets cache control headers for static files
func cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Skip caching for API routes
		if strings.HasPrefix(path, "/api") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
			return
		}

		if strings.HasSuffix(path, ".html") || path == "/" {
			c.Header("Cache-Control", "public, max-age=3600, must-revalidate")
		}

		c.Next()
	}
}

// maxBodySize caps the request body so oversized uploads fail early
func maxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
