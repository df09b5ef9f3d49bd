package presenter_test

import (
	"time"

	"coffee-insights/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleReport() *domain.Report {
	days := []domain.WeekdaySales{
		{Weekday: domain.Monday, Volume: 2, Revenue: 8, Observed: true},
		{Weekday: domain.Tuesday, Volume: 1, Revenue: 10, Observed: true},
		{Weekday: domain.Wednesday},
		{Weekday: domain.Thursday},
		{Weekday: domain.Friday},
		{Weekday: domain.Saturday},
		{Weekday: domain.Sunday},
	}
	corr := -1.0

	return &domain.Report{
		RunID:       "run-1",
		Source:      "cafe_df.csv",
		GeneratedAt: date("2024-03-10"),
		Overview: domain.Overview{
			Rows:      3,
			FirstDate: date("2024-03-04"),
			LastDate:  date("2024-03-05"),
			Money:     domain.MoneyDescription{Count: 3, Mean: 6, StdDev: 3.4641016151377544, Min: 3, Q25: 4, Median: 5, Q75: 7.5, Max: 10},
		},
		Weekday: domain.WeekdayReport{
			Days:       days,
			MaxVolume:  days[0],
			MinVolume:  days[1],
			MaxRevenue: days[1],
			MinRevenue: days[0],
		},
		Hourly: domain.HourlyReport{
			Hours: []domain.HourlySales{{Hour: 8, Volume: 2, Revenue: 8}, {Hour: 9, Volume: 1, Revenue: 10}},
			Peak:  domain.HourlySales{Hour: 8, Volume: 2, Revenue: 8},
			Low:   domain.HourlySales{Hour: 9, Volume: 1, Revenue: 10},
		},
		Monthly: domain.MonthlyReport{
			Months: []domain.MonthlyRevenue{{Period: "2024-03", Revenue: 18}},
		},
		Products: domain.ProductReport{
			Products:     []domain.ProductSales{{Product: "Latte", Volume: 2, Revenue: 8}, {Product: "Espresso", Volume: 1, Revenue: 10}},
			TopByVolume:  []string{"Latte", "Espresso"},
			TopByRevenue: []string{"Espresso", "Latte"},
		},
		LowVolume: domain.LowVolumeReport{TotalVolume: 3, Ratio: 0.05, Threshold: 0.15},
		PriceVolume: domain.PriceVolumeReport{
			Products:    []domain.ProductPrice{{Product: "Latte", Volume: 2, MeanPrice: 4}, {Product: "Espresso", Volume: 1, MeanPrice: 10}},
			Correlation: &corr,
		},
		Staffing: domain.StaffingReport{
			Hours: []int{8, 9},
			Grid: []domain.WeekdayHours{
				{Weekday: domain.Monday, Volumes: []int{2, 0}},
				{Weekday: domain.Tuesday, Volumes: []int{0, 1}},
				{Weekday: domain.Wednesday, Volumes: []int{0, 0}},
				{Weekday: domain.Thursday, Volumes: []int{0, 0}},
				{Weekday: domain.Friday, Volumes: []int{0, 0}},
				{Weekday: domain.Saturday, Volumes: []int{0, 0}},
				{Weekday: domain.Sunday, Volumes: []int{0, 0}},
			},
			Mean:      1.5,
			StdDev:    0.7071067811865476,
			Sigma:     2,
			Threshold: 2.914213562373095,
		},
		Trends: domain.TrendReport{
			Weekly: days,
			Daily: []domain.DailyRevenue{
				{Date: date("2024-03-04"), Revenue: 8},
				{Date: date("2024-03-05"), Revenue: 10},
			},
			Window: 7,
		},
	}
}
