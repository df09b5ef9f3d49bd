package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"coffee-insights/internal/domain"
)

// MissingValues counts the missing cells of every column, in column order.
func MissingValues(df dataframe.DataFrame) []domain.ColumnCount {
	counts := make([]domain.ColumnCount, 0, df.Ncol())
	for _, name := range df.Names() {
		missing := 0
		for _, isNaN := range df.Col(name).IsNaN() {
			if isNaN {
				missing++
			}
		}
		counts = append(counts, domain.ColumnCount{Column: name, Count: missing})
	}
	return counts
}

// DistinctValues counts the distinct non-missing values of every column.
func DistinctValues(df dataframe.DataFrame) []domain.ColumnCount {
	counts := make([]domain.ColumnCount, 0, df.Ncol())
	for _, name := range df.Names() {
		col := df.Col(name)
		nan := col.IsNaN()
		seen := make(map[string]struct{})
		for i, v := range col.Records() {
			if nan[i] {
				continue
			}
			seen[v] = struct{}{}
		}
		counts = append(counts, domain.ColumnCount{Column: name, Count: len(seen)})
	}
	return counts
}

// DuplicateRows counts rows that repeat an earlier row across all columns.
// Missing cells compare equal to each other.
func DuplicateRows(df dataframe.DataFrame) int {
	records := df.Records()
	if len(records) < 2 {
		return 0
	}

	seen := make(map[string]struct{}, len(records)-1)
	duplicates := 0
	for _, row := range records[1:] {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
	}
	return duplicates
}

// SummarizeMoney returns the median, mean, min and max of a numeric column.
// Missing cells are skipped; a non-numeric cell is a schema mismatch.
func SummarizeMoney(df dataframe.DataFrame, column string) (domain.MoneySummary, error) {
	col := df.Col(column)
	if col.Err != nil {
		return domain.MoneySummary{}, fmt.Errorf("%w: %v", domain.ErrSchemaMismatch, col.Err)
	}

	nan := col.IsNaN()
	values := make([]float64, 0, col.Len())
	for i, raw := range col.Records() {
		if nan[i] {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return domain.MoneySummary{}, fmt.Errorf("%w: column %s row %d: could not parse %q", domain.ErrSchemaMismatch, column, i+1, raw)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return domain.MoneySummary{}, fmt.Errorf("%w: column %s has no values", domain.ErrEmptyDataset, column)
	}

	s := series.Floats(values)
	return domain.MoneySummary{
		Median: s.Median(),
		Mean:   s.Mean(),
		Min:    s.Min(),
		Max:    s.Max(),
	}, nil
}
