package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aether/internal/config"
	"aether/internal/handler"
	"aether/internal/observability/metrics"
	"aether/internal/repository"
	"aether/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging
	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.Printf("Aether Residences site server")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Metrics registry (default registerer, served at /metrics)
	siteMetrics := metrics.NewSiteMetrics(nil)

	// Lead sink: structured log always; PostgreSQL in front of it when enabled
	var repo *repository.PostgresRepository
	sink := service.MultiSink{service.NewLogSink(log)}
	if cfg.Lead.Sink == "postgres" {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		sink = append(service.MultiSink{repo}, sink...)

		log.Println("✅ Connected to PostgreSQL database")
	} else {
		log.Println("⚠️  Lead persistence disabled - accepted leads are logged only")
		log.Println("   Set LEAD_SINK=postgres to store leads in PostgreSQL")
	}

	// Initialize services
	leadService := service.NewLeadService(sink, cfg.Lead.RequireAck, log, siteMetrics)
	pricingService := service.NewPricingService(
		cfg.Pricing.TaxRatePercent,
		cfg.Pricing.LoanRatioPercent,
		cfg.Pricing.DefaultAnnualRate,
		cfg.Pricing.DefaultTenureYears,
	)

	log.Println("✅ Services initialized")

	// Initialize handlers
	leadHandler := handler.NewLeadHandler(leadService, repo, cfg.Lead.DefaultLimit, cfg.Lead.MaxLimit)
	pricingHandler := handler.NewPricingHandler(pricingService, siteMetrics)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "aether-residences-site",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Lead intake
		apiV1.POST("/lead", leadHandler.Submit)
		apiV1.GET("/leads", leadHandler.Recent)

		// Investment calculator
		apiV1.POST("/quote", pricingHandler.Quote)
		apiV1.POST("/emi", pricingHandler.EMI)
		apiV1.GET("/catalog", pricingHandler.Catalog)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, log)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
