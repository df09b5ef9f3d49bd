package usecase

import (
	"context"

	"github.com/go-gota/gota/dataframe"

	"coffee-insights/internal/domain"
)

// SaleRepository defines the interface for loading typed sale records.
// The usecase layer depends on these interfaces, not on concrete implementations.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type SaleRepository interface {
	GetSales(ctx context.Context, path string) ([]domain.Sale, error)
}

// DatasetFetcher downloads a remote dataset and returns the local path of fileName.
type DatasetFetcher interface {
	Fetch(ctx context.Context, dataset, fileName, destDir string) (string, error)
}

// TableStore loads, projects and writes untyped tables.
type TableStore interface {
	Load(ctx context.Context, path string) (dataframe.DataFrame, error)
	Project(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error)
	Write(ctx context.Context, path string, df dataframe.DataFrame) error
}
