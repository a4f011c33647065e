package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/attiodex/internal/config"
	logpkg "github.com/kailas-cloud/attiodex/internal/logger"
	"github.com/kailas-cloud/attiodex/internal/metrics"
	attiorepo "github.com/kailas-cloud/attiodex/internal/repository/attio"
	mcptransport "github.com/kailas-cloud/attiodex/internal/transport/mcp"
	batchuc "github.com/kailas-cloud/attiodex/internal/usecase/batch"
	healthuc "github.com/kailas-cloud/attiodex/internal/usecase/health"
	listuc "github.com/kailas-cloud/attiodex/internal/usecase/list"
	recorduc "github.com/kailas-cloud/attiodex/internal/usecase/record"
	searchuc "github.com/kailas-cloud/attiodex/internal/usecase/search"
	"github.com/kailas-cloud/attiodex/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting attiodex MCP server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("ops_port", cfg.HTTP.Port),
		zap.Bool("scoring", cfg.ScoringEnabled()),
		zap.Bool("fast_path", cfg.Search.FastPath),
	)

	metrics.RegisterAttioMetrics()

	// Composition root
	repo := attiorepo.New(attiorepo.NewClient(
		cfg.Attio.APIKey,
		attiorepo.WithBaseURL(cfg.Attio.BaseURL),
		attiorepo.WithTimeout(time.Duration(cfg.Attio.TimeoutSec)*time.Second),
	))

	searchSvc := searchuc.New(repo, searchuc.Config{
		ScoringEnabled: cfg.ScoringEnabled(),
		FastPath:       cfg.Search.FastPath,
	})
	batchSvc, err := batchuc.New(searchSvc, cfg.Batch.MaxConcurrency, cfg.Batch.MaxBatchSize)
	if err != nil {
		logger.Fatal("Failed to create batch service", zap.Error(err))
	}
	defer batchSvc.Release()

	healthSvc := healthuc.New(repo)

	mcpServer := mcptransport.NewServer(mcptransport.Deps{
		Search:  searchSvc,
		Batch:   batchSvc,
		Records: recorduc.New(repo),
		Lists:   listuc.New(repo),
		Logger:  logger,
	})

	// Ops HTTP server (health + metrics), disabled when port is 0.
	var opsSrv *http.Server
	if cfg.HTTP.Port > 0 {
		opsSrv = newOpsServer(cfg, healthSvc, logger)
		go func() {
			logger.Info("Starting ops HTTP server", zap.String("addr", opsSrv.Addr))
			if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal("Ops HTTP server error", zap.Error(err))
			}
		}()
	}

	// MCP stdio transport. ServeStdio returns when the client disconnects;
	// SIGINT/SIGTERM shut down the ops server alongside it.
	done := make(chan error, 1)
	go func() { done <- mcptransport.Serve(mcpServer) }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			logger.Error("MCP server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	if opsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second,
		)
		defer cancel()
		if err := opsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during ops server shutdown", zap.Error(err))
		}
	}

	logger.Info("Server stopped gracefully")
}

func newOpsServer(cfg config.Config, healthSvc *healthuc.Service, logger *zap.Logger) *http.Server {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": version.Version})
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		report := healthSvc.Check(req.Context())
		w.Header().Set("Content-Type", "application/json")
		if report.Status != healthuc.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.Error("Failed to encode readiness report", zap.Error(err))
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}
}
