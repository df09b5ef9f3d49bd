package analysis

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return series.Floats(values).Mean()
}

// StdDev returns the sample standard deviation of values (n-1 denominator).
// It is 0 for fewer than two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return series.Floats(values).StdDev()
}

// Pearson returns the Pearson correlation coefficient of the paired series x
// and y. The second result is false when the coefficient is undefined: the
// series differ in length, have fewer than two points, or one of them is constant.
func Pearson(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, false
	}

	r := stat.Correlation(x, y, nil)
	// Clamp rounding noise so perfectly linear series yield exactly +/-1.
	return math.Max(-1, math.Min(1, r)), true
}

// Rolling returns the trailing moving average of values over window points.
// Entries before the window is full are nil.
func Rolling(values []float64, window int) []*float64 {
	result := make([]*float64, len(values))
	if window <= 0 {
		return result
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			avg := sum / float64(window)
			result[i] = &avg
		}
	}
	return result
}

// Quantile returns the p-quantile of values using linear interpolation
// between closest ranks. It returns 0 for an empty slice.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// roundMoney rounds an amount to cents.
func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// moneySum accumulates amounts without binary floating point drift.
type moneySum struct {
	total decimal.Decimal
	count int
}

func (m *moneySum) add(v float64) {
	m.total = m.total.Add(decimal.NewFromFloat(v))
	m.count++
}

func (m moneySum) rounded() float64 {
	return m.total.Round(2).InexactFloat64()
}

func (m moneySum) float() float64 {
	return m.total.InexactFloat64()
}
