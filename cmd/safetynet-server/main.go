package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/safetynet/alerts/internal/config"
	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
	"github.com/safetynet/alerts/internal/domain/search"
	"github.com/safetynet/alerts/internal/platform/datastore"
	"github.com/safetynet/alerts/internal/platform/middleware"
	"github.com/safetynet/alerts/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "safetynet-server",
		Short: "SafetyNet Alerts API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the alerts API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a synthetic data document",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("out")
			cfg := sandbox.DefaultSeedConfig()
			cfg.Households, _ = cmd.Flags().GetInt("households")
			cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			return sandbox.WriteFile(path, cfg)
		},
	}
	cmd.Flags().String("out", "data/data.json", "Destination path for the data document")
	cmd.Flags().Int("households", sandbox.DefaultSeedConfig().Households, "Number of households to generate")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducible output")
	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Data document
	store, err := datastore.Open(cfg.DataFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load data file")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api := e.Group("", middleware.RateLimit(rateLimitCfg))

	// Domain services
	personSvc := person.NewService(person.NewStoreRepository(store), logger)
	firestationSvc := firestation.NewService(firestation.NewStoreRepository(store), logger)
	medicalRecordSvc := medicalrecord.NewService(medicalrecord.NewStoreRepository(store), logger)
	searchSvc := search.NewService(store)

	person.NewHandler(personSvc).RegisterRoutes(api)
	firestation.NewHandler(firestationSvc).RegisterRoutes(api)
	medicalrecord.NewHandler(medicalRecordSvc).RegisterRoutes(api)
	search.NewHandler(searchSvc).RegisterRoutes(api)

	// Ops surface
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})
	e.POST("/admin/reload", datastore.ReloadHandler(store))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
