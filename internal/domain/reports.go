package domain

import "time"

// WeekdaySales holds the volume and revenue of one weekday.
// Observed is false when the input has no sale on that weekday; Revenue is
// then meaningless and left at zero.
type WeekdaySales struct {
	Weekday  Weekday `json:"weekday"`
	Volume   int     `json:"volume"`
	Revenue  float64 `json:"revenue"`
	Observed bool    `json:"observed"`
}

// WeekdayReport answers which weekdays sell the most and the least.
type WeekdayReport struct {
	Days       []WeekdaySales `json:"days"`
	MaxVolume  WeekdaySales   `json:"max_volume"`
	MinVolume  WeekdaySales   `json:"min_volume"`
	MaxRevenue WeekdaySales   `json:"max_revenue"`
	MinRevenue WeekdaySales   `json:"min_revenue"`
}

// HourlySales holds the volume and revenue of one hour of the day.
type HourlySales struct {
	Hour    int     `json:"hour"`
	Volume  int     `json:"volume"`
	Revenue float64 `json:"revenue"`
}

// HourlyReport answers when sales peak and when they are lowest.
type HourlyReport struct {
	Hours []HourlySales `json:"hours"`
	Peak  HourlySales   `json:"peak"`
	Low   HourlySales   `json:"low"`
}

// MonthlyRevenue is the revenue of one calendar month ("2006-01").
type MonthlyRevenue struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// MonthlyReport answers how revenue varies over the months.
type MonthlyReport struct {
	Months []MonthlyRevenue `json:"months"`
}

// ProductSales holds the volume and revenue of one product.
type ProductSales struct {
	Product string  `json:"product"`
	Volume  int     `json:"volume"`
	Revenue float64 `json:"revenue"`
}

// ProductReport answers which products sell the most and earn the most.
// Products is sorted by descending volume.
type ProductReport struct {
	Products     []ProductSales `json:"products"`
	TopByVolume  []string       `json:"top_by_volume"`
	TopByRevenue []string       `json:"top_by_revenue"`
}

// LowVolumeReport lists products whose volume is below Ratio of all transactions.
type LowVolumeReport struct {
	TotalVolume int            `json:"total_volume"`
	Ratio       float64        `json:"ratio"`
	Threshold   float64        `json:"threshold"`
	Products    []ProductSales `json:"products"`
}

// ProductPrice pairs a product's volume with its mean ticket.
type ProductPrice struct {
	Product   string  `json:"product"`
	Volume    int     `json:"volume"`
	MeanPrice float64 `json:"mean_price"`
}

// PriceVolumeReport relates product prices to sales volume.
// Correlation is nil when it is undefined for the input.
type PriceVolumeReport struct {
	Products    []ProductPrice `json:"products"`
	Correlation *float64       `json:"correlation"`
}

// WeekdayHours is one row of the weekday x hour volume cross-tab.
type WeekdayHours struct {
	Weekday Weekday `json:"weekday"`
	Volumes []int   `json:"volumes"`
}

// StaffingPeak is a weekday/hour cell busy enough to need extra staff.
type StaffingPeak struct {
	Weekday Weekday `json:"weekday"`
	Hour    int     `json:"hour"`
	Volume  int     `json:"volume"`
}

// StaffingReport is the weekday x hour cross-tab with its peak cells.
// Grid rows follow Weekdays and columns follow Hours.
type StaffingReport struct {
	Hours     []int          `json:"hours"`
	Grid      []WeekdayHours `json:"grid"`
	Mean      float64        `json:"mean"`
	StdDev    float64        `json:"std_dev"`
	Sigma     float64        `json:"sigma"`
	Threshold float64        `json:"threshold"`
	Peaks     []StaffingPeak `json:"peaks"`
}

// DailyRevenue is the revenue of one date with its trailing rolling mean.
// Rolling is nil until the window is full.
type DailyRevenue struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Rolling *float64  `json:"rolling"`
}

// TrendReport holds the weekly and daily revenue trends.
type TrendReport struct {
	Weekly []WeekdaySales `json:"weekly"`
	Daily  []DailyRevenue `json:"daily"`
	Window int            `json:"window"`
}

// MoneyDescription is a describe-style summary of the money column.
type MoneyDescription struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Overview summarises the loaded table.
type Overview struct {
	Rows      int              `json:"rows"`
	FirstDate time.Time        `json:"first_date"`
	LastDate  time.Time        `json:"last_date"`
	Money     MoneyDescription `json:"money"`
}

// Report is the top-level structure holding the answers to all business questions.
type Report struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`

	Overview    Overview          `json:"overview"`
	Weekday     WeekdayReport     `json:"weekday"`
	Hourly      HourlyReport      `json:"hourly"`
	Monthly     MonthlyReport     `json:"monthly"`
	Products    ProductReport     `json:"products"`
	LowVolume   LowVolumeReport   `json:"low_volume"`
	PriceVolume PriceVolumeReport `json:"price_volume"`
	Staffing    StaffingReport    `json:"staffing"`
	Trends      TrendReport       `json:"trends"`
}
