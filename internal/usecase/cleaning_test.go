package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"coffee-insights/internal/domain"
	"coffee-insights/internal/usecase"
	mock_usecase "coffee-insights/internal/usecase/mocks"
)

func rawTable(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords([][]string{
		{"hour_of_day", "cash_type", "money", "coffee_name", "Time_of_Day", "Weekday", "Month_name", "Date", "Time", "Monthsort"},
		{"10", "card", "38.7", "Latte", "Morning", "Fri", "Mar", "2024-03-01", "10:15:50", "3"},
		{"10", "card", "38.7", "Latte", "Morning", "Fri", "Mar", "2024-03-01", "10:15:50", "3"},
		{"12", "cash", "28.9", "Americano", "Afternoon", "Fri", "Mar", "2024-03-01", "12:19:22", ""},
		{"13", "card", "33.8", "Cappuccino", "Afternoon", "Sat", "Mar", "2024-03-02", "13:00:00", "3"},
	},
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{""}),
	)
	require.NoError(t, df.Err)
	return df
}

func TestCleaningUseCase_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mock_usecase.NewMockDatasetFetcher(ctrl)
	store := mock_usecase.NewMockTableStore(ctrl)

	raw := rawTable(t)
	projected := raw.Select(domain.SaleColumns)
	require.NoError(t, projected.Err)

	in := usecase.CleaningInput{
		RunID:       "run-1",
		Dataset:     "sidraaazam/coffee-sales-insights-report",
		FileName:    "Coffe_sales.csv",
		DataDir:     "data",
		OutputPath:  "data/cafe_df.csv",
		PreviewRows: 2,
	}

	gomock.InOrder(
		fetcher.EXPECT().Fetch(gomock.Any(), in.Dataset, in.FileName, in.DataDir).Return("data/Coffe_sales.csv", nil),
		store.EXPECT().Load(gomock.Any(), "data/Coffe_sales.csv").Return(raw, nil),
		store.EXPECT().Project(gomock.Any(), domain.SaleColumns).Return(projected, nil),
		store.EXPECT().Write(gomock.Any(), in.OutputPath, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, df dataframe.DataFrame) error {
				assert.Equal(t, 4, df.Nrow(), "duplicates must be kept")
				return nil
			}),
	)

	uc := usecase.NewCleaningUseCase(fetcher, store, zaptest.NewLogger(t))
	summary, err := uc.Clean(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, "data/Coffe_sales.csv", summary.SourcePath)
	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 1, summary.DuplicateRows)
	assert.Contains(t, summary.MissingValues, domain.ColumnCount{Column: "Monthsort", Count: 1})
	assert.Contains(t, summary.MissingValues, domain.ColumnCount{Column: "money", Count: 0})
	assert.Contains(t, summary.DistinctValues, domain.ColumnCount{Column: "coffee_name", Count: 3})
	assert.Equal(t, domain.MoneySummary{Median: 36.25, Mean: 35.025, Min: 28.9, Max: 38.7}, roundSummary(summary.Money))
	require.Len(t, summary.Preview, 3)
	assert.Equal(t, domain.SaleColumns, summary.Preview[0])
}

func TestCleaningUseCase_CleanErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	in := usecase.CleaningInput{
		Dataset:    "owner/slug",
		FileName:   "Coffe_sales.csv",
		DataDir:    "data",
		OutputPath: "data/cafe_df.csv",
	}

	t.Run("network failure", func(t *testing.T) {
		fetcher := mock_usecase.NewMockDatasetFetcher(ctrl)
		store := mock_usecase.NewMockTableStore(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", domain.ErrNetworkFailure)

		_, err := usecase.NewCleaningUseCase(fetcher, store, nil).Clean(context.Background(), in)
		assert.True(t, errors.Is(err, domain.ErrNetworkFailure))
	})

	t.Run("schema mismatch on projection", func(t *testing.T) {
		fetcher := mock_usecase.NewMockDatasetFetcher(ctrl)
		store := mock_usecase.NewMockTableStore(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("raw.csv", nil)
		store.EXPECT().Load(gomock.Any(), "raw.csv").Return(rawTable(t), nil)
		store.EXPECT().Project(gomock.Any(), gomock.Any()).Return(dataframe.DataFrame{}, domain.ErrSchemaMismatch)

		_, err := usecase.NewCleaningUseCase(fetcher, store, nil).Clean(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	})

	t.Run("skip download without cached file", func(t *testing.T) {
		fetcher := mock_usecase.NewMockDatasetFetcher(ctrl)
		store := mock_usecase.NewMockTableStore(ctrl)

		skip := in
		skip.DataDir = t.TempDir()
		skip.SkipDownload = true

		_, err := usecase.NewCleaningUseCase(fetcher, store, nil).Clean(context.Background(), skip)
		assert.ErrorIs(t, err, domain.ErrMissingFile)
	})

	t.Run("skip download with cached file", func(t *testing.T) {
		fetcher := mock_usecase.NewMockDatasetFetcher(ctrl)
		store := mock_usecase.NewMockTableStore(ctrl)

		skip := in
		skip.DataDir = t.TempDir()
		skip.SkipDownload = true
		cached := filepath.Join(skip.DataDir, skip.FileName)
		require.NoError(t, os.WriteFile(cached, []byte("money\n1\n"), 0o644))

		loadErr := errors.New("boom")
		store.EXPECT().Load(gomock.Any(), cached).Return(dataframe.DataFrame{}, loadErr)

		_, err := usecase.NewCleaningUseCase(fetcher, store, nil).Clean(context.Background(), skip)
		assert.ErrorIs(t, err, loadErr)
	})
}

func roundSummary(m domain.MoneySummary) domain.MoneySummary {
	round := func(v float64) float64 {
		return float64(int64(v*1000+0.5)) / 1000
	}
	return domain.MoneySummary{Median: round(m.Median), Mean: round(m.Mean), Min: round(m.Min), Max: round(m.Max)}
}
