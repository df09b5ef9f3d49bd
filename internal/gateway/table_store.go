package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"coffee-insights/internal/domain"
)

// MissingTokens are the cell values treated as missing when a raw table is loaded.
var MissingTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL"}

// DataFrameStore loads and writes untyped tables backed by gota data frames.
type DataFrameStore struct{}

// NewDataFrameStore creates a new store instance.
func NewDataFrameStore() *DataFrameStore {
	return &DataFrameStore{}
}

// Load reads a CSV file into a data frame with every column kept as text.
func (s *DataFrameStore) Load(ctx context.Context, path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: failed to open table %s: %w", domain.ErrMissingFile, path, err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(MissingTokens),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse table %s: %w", path, df.Err)
	}
	for _, name := range df.Names() {
		if clean := headerName(name); clean != name {
			df = df.Rename(clean, name)
		}
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to normalise header of %s: %w", path, df.Err)
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", domain.ErrEmptyDataset, path)
	}
	return df, nil
}

// Project returns the given columns of df in the given order.
func (s *DataFrameStore) Project(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	present := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range columns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: missing columns %s", domain.ErrSchemaMismatch, strings.Join(missing, ", "))
	}

	projected := df.Select(columns)
	if projected.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to select columns: %w", projected.Err)
	}
	return projected, nil
}

// Write stores df as CSV with a header row and no index column. Missing cells
// are written empty.
func (s *DataFrameStore) Write(ctx context.Context, path string, df dataframe.DataFrame) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	names := df.Names()
	nan := make([][]bool, len(names))
	for j, name := range names {
		nan[j] = df.Col(name).IsNaN()
	}

	writer := csv.NewWriter(file)
	for i, record := range df.Records() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			for j := range record {
				if nan[j][i-1] {
					record[j] = ""
				}
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}
