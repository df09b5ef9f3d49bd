package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"coffee-insights/internal/analysis"
	"coffee-insights/internal/domain"
)

// CleaningInput describes one run of the extraction/cleaning stage.
type CleaningInput struct {
	RunID        string
	Dataset      string // remote identifier, "owner/slug"
	FileName     string // raw CSV inside the dataset
	DataDir      string
	OutputPath   string
	SkipDownload bool // reuse DataDir/FileName when it already exists
	PreviewRows  int
}

// CleaningUseCase orchestrates the extraction and cleaning of the raw dataset.
type CleaningUseCase struct {
	fetcher DatasetFetcher
	store   TableStore
	logger  *zap.Logger
}

// NewCleaningUseCase creates a new instance of the usecase.
func NewCleaningUseCase(fetcher DatasetFetcher, store TableStore, logger *zap.Logger) *CleaningUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CleaningUseCase{fetcher: fetcher, store: store, logger: logger}
}

// Clean fetches the raw dataset, profiles it and writes the projected sales CSV.
// Duplicate rows are counted but kept in the output.
func (uc *CleaningUseCase) Clean(ctx context.Context, in CleaningInput) (*domain.CleaningSummary, error) {
	logger := uc.logger.With(zap.String("run_id", in.RunID), zap.String("dataset", in.Dataset))

	// Step 1: Data Acquisition
	sourcePath, err := uc.resolveSource(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("could not fetch dataset: %w", err)
	}

	// Step 2: Load
	df, err := uc.store.Load(ctx, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("could not load raw table: %w", err)
	}
	logger.Info("raw table loaded",
		zap.String("path", sourcePath),
		zap.Int("rows", df.Nrow()),
		zap.Int("columns", df.Ncol()),
	)

	// Step 3: Profile
	summary := &domain.CleaningSummary{
		RunID:          in.RunID,
		Dataset:        in.Dataset,
		SourcePath:     sourcePath,
		OutputPath:     in.OutputPath,
		Rows:           df.Nrow(),
		MissingValues:  analysis.MissingValues(df),
		DuplicateRows:  analysis.DuplicateRows(df),
		DistinctValues: analysis.DistinctValues(df),
	}
	summary.Money, err = analysis.SummarizeMoney(df, domain.ColumnMoney)
	if err != nil {
		return nil, fmt.Errorf("could not summarize %s: %w", domain.ColumnMoney, err)
	}
	if summary.DuplicateRows > 0 {
		logger.Warn("duplicate rows kept in output", zap.Int("duplicates", summary.DuplicateRows))
	}

	// Step 4: Project and persist
	projected, err := uc.store.Project(df, domain.SaleColumns)
	if err != nil {
		return nil, fmt.Errorf("could not project sale columns: %w", err)
	}
	if err := uc.store.Write(ctx, in.OutputPath, projected); err != nil {
		return nil, fmt.Errorf("could not write %s: %w", in.OutputPath, err)
	}

	records := projected.Records()
	if n := in.PreviewRows + 1; n < len(records) {
		records = records[:n]
	}
	summary.Preview = records

	logger.Info("sales table written",
		zap.String("path", in.OutputPath),
		zap.Int("rows", projected.Nrow()),
	)
	return summary, nil
}

func (uc *CleaningUseCase) resolveSource(ctx context.Context, in CleaningInput) (string, error) {
	local := filepath.Join(in.DataDir, in.FileName)
	if in.SkipDownload {
		if _, err := os.Stat(local); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s (download skipped)", domain.ErrMissingFile, local)
			}
			return "", err
		}
		uc.logger.Info("using cached dataset", zap.String("path", local))
		return local, nil
	}
	return uc.fetcher.Fetch(ctx, in.Dataset, in.FileName, in.DataDir)
}
