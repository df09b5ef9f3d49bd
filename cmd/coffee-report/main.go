package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"coffee-insights/internal/api"
	"coffee-insights/internal/config"
	"coffee-insights/internal/domain"
	"coffee-insights/internal/gateway"
	"coffee-insights/internal/logging"
	"coffee-insights/internal/presenter"
	"coffee-insights/internal/usecase"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Define command-line flags
	input := flag.String("input", cfg.DerivedPath(), "Path to the derived sales CSV")
	xlsx := flag.String("xlsx", cfg.WorkbookPath(), "Path of the chart workbook (empty to skip)")
	serve := flag.Bool("serve", false, "Serve the report as JSON after printing it")
	addr := flag.String("addr", cfg.Server.Address, "Listen address used with -serve")
	flag.Parse()

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependency Injection ---
	repo := gateway.NewCSVSaleRepository()
	reportUseCase := usecase.NewReportUseCase(repo, cfg.Options(), logger)

	// --- Execute the Usecase ---
	report, err := reportUseCase.Build(ctx, usecase.ReportInput{
		RunID:      runID,
		SourcePath: *input,
	})
	if err != nil {
		logger.Fatal("report failed", zap.Error(err))
	}

	// --- Present the Output ---
	if err := presenter.NewConsole(os.Stdout).PrintReport(report); err != nil {
		logger.Fatal("failed to print report", zap.Error(err))
	}
	if *xlsx != "" {
		if err := presenter.RenderWorkbook(report, *xlsx); err != nil {
			logger.Fatal("failed to render workbook", zap.Error(err))
		}
		logger.Info("workbook written", zap.String("path", *xlsx))
	}

	if *serve {
		if err := serveReport(ctx, cfg, *addr, report, logger); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}
}

// serveReport serves the report until ctx is cancelled.
func serveReport(ctx context.Context, cfg *config.Config, addr string, report *domain.Report, logger *zap.Logger) error {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	api.InitRoutes(engine, report, logger)

	srv := &http.Server{Addr: addr, Handler: engine}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving report", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	logger.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}
