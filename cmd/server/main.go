package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/config"
	"github.com/mmynk/settleup/internal/httpapi"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/service"
	"github.com/mmynk/settleup/pkg/logging"
	"github.com/mmynk/settleup/pkg/settleapi"
)

func main() {
	// Optional in production
	_ = godotenv.Load()

	cfg := config.Load()
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetupWith(os.Stderr, level, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	engine := calculator.NewEngine(cfg.AggregationWorkers, cfg.ParallelThreshold)
	slog.Info("Calculator engine initialized",
		"workers", cfg.AggregationWorkers,
		"parallel_threshold", cfg.ParallelThreshold,
	)

	mux := http.NewServeMux()

	// Register Connect service
	settlementPath, settlementHandler := settleapi.NewSettlementServiceHandler(
		service.NewSettlementService(engine, m),
		connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m)),
	)
	mux.Handle(settlementPath, settlementHandler)

	// REST routes
	httpapi.NewHandler(engine, m).Register(mux)

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	handler := middleware.RequestID(middleware.Logging(middleware.CORS(cfg.CORSOrigin)(mux)))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr, "url", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
