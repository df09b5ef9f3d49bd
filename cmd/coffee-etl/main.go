package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"coffee-insights/internal/config"
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
	dataset := flag.String("dataset", cfg.Dataset.ID, "Remote dataset identifier (owner/slug)")
	dataDir := flag.String("data-dir", cfg.Dataset.DataDir, "Directory for the raw and derived files")
	rawFile := flag.String("raw", cfg.Dataset.RawFile, "Raw CSV file name inside the dataset")
	outPath := flag.String("out", "", "Path of the derived CSV (default <data-dir>/"+cfg.Dataset.DerivedFile+")")
	skipDownload := flag.Bool("skip-download", cfg.Dataset.SkipDownload, "Reuse the raw CSV already in data-dir")
	preview := flag.Int("preview", 5, "Number of derived rows to print")
	flag.Parse()

	cfg.Dataset.DataDir = *dataDir
	cfg.Dataset.RawFile = *rawFile
	if *outPath == "" {
		*outPath = cfg.DerivedPath()
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting cleaning",
		zap.String("dataset", *dataset),
		zap.String("raw", cfg.RawPath()),
		zap.String("out", *outPath),
	)

	// --- Dependency Injection ---
	fetcher := gateway.NewKaggleFetcher(gateway.KaggleOptions{
		BaseURL:  cfg.Kaggle.BaseURL,
		Username: cfg.Kaggle.Username,
		Key:      cfg.Kaggle.Key,
		Timeout:  cfg.Kaggle.Timeout,
	}, logger)
	store := gateway.NewDataFrameStore()
	cleaningUseCase := usecase.NewCleaningUseCase(fetcher, store, logger)

	// --- Execute the Usecase ---
	summary, err := cleaningUseCase.Clean(ctx, usecase.CleaningInput{
		RunID:        runID,
		Dataset:      *dataset,
		FileName:     cfg.Dataset.RawFile,
		DataDir:      cfg.Dataset.DataDir,
		OutputPath:   *outPath,
		SkipDownload: *skipDownload,
		PreviewRows:  *preview,
	})
	if err != nil {
		logger.Fatal("cleaning failed", zap.Error(err))
	}

	// --- Present the Output ---
	if err := presenter.NewConsole(os.Stdout).PrintCleaning(summary); err != nil {
		logger.Fatal("failed to print summary", zap.Error(err))
	}
}
