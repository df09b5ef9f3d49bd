package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"coffee-insights/internal/analysis"
	"coffee-insights/internal/domain"
)

// ReportInput describes one run of the reporting stage.
type ReportInput struct {
	RunID      string
	SourcePath string
}

// ReportUseCase answers the business questions over the cleaned sales table.
type ReportUseCase struct {
	repo   SaleRepository
	opts   analysis.Options
	logger *zap.Logger
	now    func() time.Time
}

// NewReportUseCase creates a new instance of the usecase.
func NewReportUseCase(repo SaleRepository, opts analysis.Options, logger *zap.Logger) *ReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{repo: repo, opts: opts, logger: logger, now: time.Now}
}

// Build loads the sales table and computes every question of the report.
// The questions are independent and are evaluated concurrently; each one
// writes only its own field of the report.
func (uc *ReportUseCase) Build(ctx context.Context, in ReportInput) (*domain.Report, error) {
	logger := uc.logger.With(zap.String("run_id", in.RunID))

	sales, err := uc.repo.GetSales(ctx, in.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("could not get sales: %w", err)
	}
	if len(sales) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDataset, in.SourcePath)
	}
	logger.Info("sales loaded", zap.String("path", in.SourcePath), zap.Int("rows", len(sales)))

	report := &domain.Report{
		RunID:       in.RunID,
		Source:      in.SourcePath,
		GeneratedAt: uc.now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)
	answer := func(question string, fn func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			fn()
			logger.Debug("question answered", zap.String("question", question), zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}

	answer("overview", func() { report.Overview = analysis.Describe(sales) })
	answer("weekday", func() { report.Weekday = analysis.ByWeekday(sales) })
	answer("hourly", func() { report.Hourly = analysis.ByHour(sales) })
	answer("monthly", func() { report.Monthly = analysis.ByMonth(sales) })
	answer("products", func() { report.Products = analysis.ByProduct(sales) })
	answer("low-volume", func() { report.LowVolume = analysis.LowVolume(sales, uc.opts.LowVolumeRatio) })
	answer("price-volume", func() { report.PriceVolume = analysis.PriceVolume(sales) })
	answer("staffing", func() { report.Staffing = analysis.StaffingPeaks(sales, uc.opts.PeakSigma) })
	answer("trends", func() { report.Trends = analysis.Trends(sales, uc.opts.RollingWindow) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not build report: %w", err)
	}

	logger.Info("report built",
		zap.Int("products", len(report.Products.Products)),
		zap.Int("low_volume_products", len(report.LowVolume.Products)),
		zap.Int("staffing_peaks", len(report.Staffing.Peaks)),
	)
	return report, nil
}
