package domain

import (
	"fmt"
	"time"
)

// Weekday is the abbreviated weekday name used by the dataset ("Mon".."Sun").
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Weekdays lists the weekdays in reporting order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the position of w in Weekdays, or -1 when w is not a known weekday.
func (w Weekday) Index() int {
	for i, d := range Weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// ParseWeekday converts a raw weekday cell into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	if w.Index() < 0 {
		return "", fmt.Errorf("unknown weekday %q", s)
	}
	return w, nil
}

// Column names of the derived sales CSV, in file order.
const (
	ColumnHourOfDay  = "hour_of_day"
	ColumnCashType   = "cash_type"
	ColumnMoney      = "money"
	ColumnCoffeeName = "coffee_name"
	ColumnTimeOfDay  = "Time_of_Day"
	ColumnWeekday    = "Weekday"
	ColumnMonthName  = "Month_name"
	ColumnDate       = "Date"
	ColumnTime       = "Time"
)

// SaleColumns is the fixed column subset kept by the cleaning stage.
var SaleColumns = []string{
	ColumnHourOfDay,
	ColumnCashType,
	ColumnMoney,
	ColumnCoffeeName,
	ColumnTimeOfDay,
	ColumnWeekday,
	ColumnMonthName,
	ColumnDate,
	ColumnTime,
}

// Sale represents a single coffee sale from the derived CSV.
type Sale struct {
	HourOfDay  int       `json:"hour_of_day" validate:"gte=0,lte=23"`
	CashType   string    `json:"cash_type" validate:"required"`
	Money      float64   `json:"money" validate:"gte=0"`
	CoffeeName string    `json:"coffee_name" validate:"required"`
	TimeOfDay  string    `json:"time_of_day" validate:"required"`
	Weekday    Weekday   `json:"weekday" validate:"oneof=Mon Tue Wed Thu Fri Sat Sun"`
	MonthName  string    `json:"month_name" validate:"oneof=Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec"`
	Date       time.Time `json:"date" validate:"required"`
	Time       string    `json:"time"`

	// Period is the calendar month of Date ("2006-01"), derived at load time.
	Period string `json:"period"`
}

// PeriodOf returns the calendar month key used to group sales by month.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}
