package analysis

import (
	"sort"
	"time"

	"coffee-insights/internal/domain"
)

// Options tunes the thresholds used by the business questions.
type Options struct {
	// LowVolumeRatio is the share of all transactions below which a product
	// is flagged for removal.
	LowVolumeRatio float64
	// PeakSigma is the number of standard deviations above the mean a
	// weekday/hour cell must exceed to be a staffing peak.
	PeakSigma float64
	// RollingWindow is the number of daily rows in the revenue moving average.
	RollingWindow int
}

// DefaultOptions returns the thresholds used by the reports.
func DefaultOptions() Options {
	return Options{
		LowVolumeRatio: 0.05,
		PeakSigma:      2,
		RollingWindow:  7,
	}
}

// ByWeekday groups sales by weekday, always returning the seven weekdays in
// Mon..Sun order. Extremes are taken over observed weekdays only; ties go to
// the earliest weekday.
func ByWeekday(sales []domain.Sale) domain.WeekdayReport {
	sums := make([]moneySum, len(domain.Weekdays))
	for _, s := range sales {
		idx := s.Weekday.Index()
		if idx < 0 {
			continue
		}
		sums[idx].add(s.Money)
	}

	report := domain.WeekdayReport{Days: make([]domain.WeekdaySales, len(domain.Weekdays))}
	first := true
	for i, day := range domain.Weekdays {
		row := domain.WeekdaySales{
			Weekday:  day,
			Volume:   sums[i].count,
			Revenue:  sums[i].rounded(),
			Observed: sums[i].count > 0,
		}
		report.Days[i] = row
		if !row.Observed {
			continue
		}
		if first {
			report.MaxVolume, report.MinVolume = row, row
			report.MaxRevenue, report.MinRevenue = row, row
			first = false
			continue
		}
		if row.Volume > report.MaxVolume.Volume {
			report.MaxVolume = row
		}
		if row.Volume < report.MinVolume.Volume {
			report.MinVolume = row
		}
		if row.Revenue > report.MaxRevenue.Revenue {
			report.MaxRevenue = row
		}
		if row.Revenue < report.MinRevenue.Revenue {
			report.MinRevenue = row
		}
	}
	return report
}

// ByHour groups sales by hour of day in ascending hour order. Only hours with
// at least one sale are listed.
func ByHour(sales []domain.Sale) domain.HourlyReport {
	sums := make(map[int]*moneySum)
	for _, s := range sales {
		acc, ok := sums[s.HourOfDay]
		if !ok {
			acc = &moneySum{}
			sums[s.HourOfDay] = acc
		}
		acc.add(s.Money)
	}

	hours := make([]int, 0, len(sums))
	for h := range sums {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	report := domain.HourlyReport{Hours: make([]domain.HourlySales, 0, len(hours))}
	for i, h := range hours {
		row := domain.HourlySales{Hour: h, Volume: sums[h].count, Revenue: sums[h].rounded()}
		report.Hours = append(report.Hours, row)
		if i == 0 || row.Volume > report.Peak.Volume {
			report.Peak = row
		}
		if i == 0 || row.Volume < report.Low.Volume {
			report.Low = row
		}
	}
	return report
}

// ByMonth sums revenue per calendar month in chronological order.
func ByMonth(sales []domain.Sale) domain.MonthlyReport {
	sums := make(map[string]*moneySum)
	for _, s := range sales {
		p := periodOf(s)
		acc, ok := sums[p]
		if !ok {
			acc = &moneySum{}
			sums[p] = acc
		}
		acc.add(s.Money)
	}

	periods := make([]string, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	report := domain.MonthlyReport{Months: make([]domain.MonthlyRevenue, 0, len(periods))}
	for _, p := range periods {
		report.Months = append(report.Months, domain.MonthlyRevenue{Period: p, Revenue: sums[p].rounded()})
	}
	return report
}

// ByProduct groups sales by product, sorted by descending volume with ties
// broken by product name.
func ByProduct(sales []domain.Sale) domain.ProductReport {
	products := productSales(sales)

	report := domain.ProductReport{
		Products:    products,
		TopByVolume: topNames(products, 3),
	}

	byRevenue := append([]domain.ProductSales(nil), products...)
	sort.SliceStable(byRevenue, func(i, j int) bool {
		if byRevenue[i].Revenue != byRevenue[j].Revenue {
			return byRevenue[i].Revenue > byRevenue[j].Revenue
		}
		return byRevenue[i].Product < byRevenue[j].Product
	})
	report.TopByRevenue = topNames(byRevenue, 3)
	return report
}

// LowVolume flags products whose volume is strictly below ratio times the
// total number of transactions.
func LowVolume(sales []domain.Sale, ratio float64) domain.LowVolumeReport {
	report := domain.LowVolumeReport{
		TotalVolume: len(sales),
		Ratio:       ratio,
		Threshold:   float64(len(sales)) * ratio,
		Products:    make([]domain.ProductSales, 0),
	}
	for _, p := range productSales(sales) {
		if float64(p.Volume) < report.Threshold {
			report.Products = append(report.Products, p)
		}
	}
	return report
}

// PriceVolume computes the mean price of each product and correlates it with
// the product's volume.
func PriceVolume(sales []domain.Sale) domain.PriceVolumeReport {
	sums := make(map[string]*moneySum)
	for _, s := range sales {
		acc, ok := sums[s.CoffeeName]
		if !ok {
			acc = &moneySum{}
			sums[s.CoffeeName] = acc
		}
		acc.add(s.Money)
	}

	report := domain.PriceVolumeReport{Products: make([]domain.ProductPrice, 0, len(sums))}
	prices := make([]float64, 0, len(sums))
	volumes := make([]float64, 0, len(sums))
	for _, p := range productSales(sales) {
		acc := sums[p.Product]
		mean := roundMoney(acc.float() / float64(acc.count))
		report.Products = append(report.Products, domain.ProductPrice{
			Product:   p.Product,
			Volume:    p.Volume,
			MeanPrice: mean,
		})
		prices = append(prices, mean)
		volumes = append(volumes, float64(p.Volume))
	}

	if r, ok := Pearson(prices, volumes); ok {
		report.Correlation = &r
	}
	return report
}

// StaffingPeaks builds the weekday x hour volume cross-tab and flags cells
// whose volume exceeds mean + sigma*stddev. The mean and sample standard
// deviation are taken over cells with at least one sale.
func StaffingPeaks(sales []domain.Sale, sigma float64) domain.StaffingReport {
	hourSet := make(map[int]struct{})
	for _, s := range sales {
		if s.Weekday.Index() < 0 {
			continue
		}
		hourSet[s.HourOfDay] = struct{}{}
	}
	hours := make([]int, 0, len(hourSet))
	for h := range hourSet {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	column := make(map[int]int, len(hours))
	for i, h := range hours {
		column[h] = i
	}

	report := domain.StaffingReport{
		Hours: hours,
		Grid:  make([]domain.WeekdayHours, len(domain.Weekdays)),
		Sigma: sigma,
		Peaks: make([]domain.StaffingPeak, 0),
	}
	for i, day := range domain.Weekdays {
		report.Grid[i] = domain.WeekdayHours{Weekday: day, Volumes: make([]int, len(hours))}
	}
	for _, s := range sales {
		idx := s.Weekday.Index()
		if idx < 0 {
			continue
		}
		report.Grid[idx].Volumes[column[s.HourOfDay]]++
	}

	var cells []float64
	for _, row := range report.Grid {
		for _, v := range row.Volumes {
			if v > 0 {
				cells = append(cells, float64(v))
			}
		}
	}
	report.Mean = Mean(cells)
	report.StdDev = StdDev(cells)
	report.Threshold = report.Mean + sigma*report.StdDev

	for _, row := range report.Grid {
		for j, v := range row.Volumes {
			if v > 0 && float64(v) > report.Threshold {
				report.Peaks = append(report.Peaks, domain.StaffingPeak{
					Weekday: row.Weekday,
					Hour:    hours[j],
					Volume:  v,
				})
			}
		}
	}
	return report
}

// Trends returns the weekly revenue trend and the daily revenue with its
// trailing moving average over window rows.
func Trends(sales []domain.Sale, window int) domain.TrendReport {
	sums := make(map[time.Time]*moneySum)
	for _, s := range sales {
		d := dateOf(s.Date)
		acc, ok := sums[d]
		if !ok {
			acc = &moneySum{}
			sums[d] = acc
		}
		acc.add(s.Money)
	}

	dates := make([]time.Time, 0, len(sums))
	for d := range sums {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	daily := make([]float64, len(dates))
	for i, d := range dates {
		daily[i] = sums[d].float()
	}
	rolling := Rolling(daily, window)

	report := domain.TrendReport{
		Weekly: ByWeekday(sales).Days,
		Daily:  make([]domain.DailyRevenue, len(dates)),
		Window: window,
	}
	for i, d := range dates {
		row := domain.DailyRevenue{Date: d, Revenue: roundMoney(daily[i])}
		if rolling[i] != nil {
			v := roundMoney(*rolling[i])
			row.Rolling = &v
		}
		report.Daily[i] = row
	}
	return report
}

// Describe summarises the table: row count, date range and money statistics.
func Describe(sales []domain.Sale) domain.Overview {
	overview := domain.Overview{Rows: len(sales)}
	if len(sales) == 0 {
		return overview
	}

	amounts := make([]float64, len(sales))
	overview.FirstDate, overview.LastDate = sales[0].Date, sales[0].Date
	for i, s := range sales {
		amounts[i] = s.Money
		if s.Date.Before(overview.FirstDate) {
			overview.FirstDate = s.Date
		}
		if s.Date.After(overview.LastDate) {
			overview.LastDate = s.Date
		}
	}

	overview.Money = domain.MoneyDescription{
		Count:  len(amounts),
		Mean:   Mean(amounts),
		StdDev: StdDev(amounts),
		Min:    Quantile(amounts, 0),
		Q25:    Quantile(amounts, 0.25),
		Median: Quantile(amounts, 0.5),
		Q75:    Quantile(amounts, 0.75),
		Max:    Quantile(amounts, 1),
	}
	return overview
}

func productSales(sales []domain.Sale) []domain.ProductSales {
	sums := make(map[string]*moneySum)
	for _, s := range sales {
		acc, ok := sums[s.CoffeeName]
		if !ok {
			acc = &moneySum{}
			sums[s.CoffeeName] = acc
		}
		acc.add(s.Money)
	}

	products := make([]domain.ProductSales, 0, len(sums))
	for name, acc := range sums {
		products = append(products, domain.ProductSales{
			Product: name,
			Volume:  acc.count,
			Revenue: acc.rounded(),
		})
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Volume != products[j].Volume {
			return products[i].Volume > products[j].Volume
		}
		return products[i].Product < products[j].Product
	})
	return products
}

func topNames(products []domain.ProductSales, n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < len(products) && i < n; i++ {
		names = append(names, products[i].Product)
	}
	return names
}

func periodOf(s domain.Sale) string {
	if s.Period != "" {
		return s.Period
	}
	return domain.PeriodOf(s.Date)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
