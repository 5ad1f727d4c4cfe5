package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/config"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/earthdata"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/handlers"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/middleware"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/observability"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/services"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/simulation"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting EarthPulse API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Register Prometheus metrics
	metrics := observability.NewMetrics()

	// Create the simulation engine
	engine := simulation.NewEngine(log.WithComponent("simulation"), simulation.Options{
		SimulateDelay: cfg.Simulation.SimulateDelay,
		DelayMS:       cfg.Simulation.DelayMS,
		OnFallback: func(indicator models.Indicator) {
			metrics.SimulationFallbacks.WithLabelValues(indicator.String()).Inc()
		},
	})

	log.Info("Simulation engine initialized", map[string]interface{}{
		"year_min":       cfg.Data.YearMin,
		"year_max":       cfg.Data.YearMax,
		"simulate_delay": cfg.Simulation.SimulateDelay,
		"delay_ms":       cfg.Simulation.DelayMS,
	})

	// Create the NASA Earthdata CMR client
	cmrClient := earthdata.NewClient(cfg.EarthData, metrics, log.WithComponent("earthdata"))

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS -> Metrics
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.Metrics(metrics))

	// Register health check and metrics routes
	healthHandler := handlers.NewHealthHandler(cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize service layer
	environmentalService := services.NewEnvironmentalService(engine, cfg.Data, metrics, log)

	// Initialize handlers
	environmentalHandler := handlers.NewEnvironmentalHandler(environmentalService, cfg.Data)
	regionHandler := handlers.NewRegionHandler()
	earthdataHandler := handlers.NewEarthdataHandler(cmrClient)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		environmental := v1.Group("/environmental")
		{
			for _, indicator := range models.Indicators() {
				environmental.GET("/"+indicator.String()+"/:year", environmentalHandler.Indicator(indicator))
			}
			environmental.GET("/summary", environmentalHandler.Summary)
			environmental.GET("/compare/temporal", environmentalHandler.CompareTemporal)
			environmental.GET("/trends/:indicator", environmentalHandler.Trends)
			environmental.GET("/indicators", environmentalHandler.Catalog)
		}

		regions := v1.Group("/regions")
		{
			regions.GET("", regionHandler.List)
			regions.GET("/:id", regionHandler.ByID)
		}

		ed := v1.Group("/earthdata")
		{
			ed.GET("/availability/:indicator", earthdataHandler.Availability)
			ed.GET("/status", earthdataHandler.Status)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
