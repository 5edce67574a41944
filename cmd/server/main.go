package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/api/middleware"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/api/rest"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/cache"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/config"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/generator"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/pkg/logger"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/pkg/tracing"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/repository"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/service"
	"github.com/SaiSriramKurapati/chatBot-backend/migrations"
)

func main() {
	log := logger.StdLogger()
	log.Info("chatbot backend starting")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cleanup, err := tracing.Init("chatbot-backend", cfg.OTLPEndpoint, cfg.TraceSamplingRate)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Open the message store: Postgres when a DSN is configured, SQLite otherwise.
	var repo repository.Store
	driver := "sqlite"
	if cfg.DatabaseURL != "" {
		driver = "postgres"
		repo, err = repository.NewPostgresRepository(cfg.DatabaseURL)
	} else {
		repo, err = repository.NewSQLiteRepository(cfg.DatabasePath)
	}
	if err != nil {
		log.Error("failed to initialize database", "driver", driver, "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Schema creation is idempotent; safe to run on every startup.
	schema, err := migrations.Schema(driver)
	if err != nil {
		log.Error("failed to load embedded schema", "error", err)
		os.Exit(1)
	}
	if err := repo.RunMigrations(schema); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	log.Info("database ready", "driver", driver)

	respCache := cache.NewMemory(cfg.CacheSize, time.Duration(cfg.CacheTTLSec)*time.Second)
	gen := generator.NewClient(
		cfg.GeneratorBaseURL,
		cfg.GeneratorModel,
		cfg.GeneratorAPIKey,
		time.Duration(cfg.GeneratorTimeoutSec)*time.Second,
	)
	messageService := service.NewMessageService(repo, respCache, gen, log)

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	if cfg.OTLPEndpoint != "" {
		router.Use(middleware.Tracing)
	}
	router.Use(middleware.StructuredLog)
	router.Use(middleware.Recovery)
	router.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

	healthz := rest.NewHealthzHandler(repo)
	router.HandleFunc("/healthz/live", healthz.Live).Methods("GET")
	router.HandleFunc("/healthz/ready", healthz.Ready).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	handler := rest.NewHandler(messageService, cfg.DefaultSkip, cfg.DefaultLimit)
	rest.SetupRoutes(router, handler)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handlerWithCORS := c.Handler(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlerWithCORS,
		ReadTimeout:  time.Duration(cfg.RequestTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeoutSec) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("server forced to shutdown", "error", err)
	}

	log.Info("server exited gracefully")
}
