package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"coffee-insights/internal/domain"
)

// dateLayouts are the accepted layouts of the Date column, tried in order.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "01/02/2006"}

// CSVSaleRepository implements the SaleRepository interface for the derived sales CSV.
type CSVSaleRepository struct {
	validate *validator.Validate
}

// NewCSVSaleRepository creates a new repository instance.
func NewCSVSaleRepository() *CSVSaleRepository {
	return &CSVSaleRepository{validate: validator.New()}
}

// GetSales reads and validates the sales CSV file. The header must contain
// every column of domain.SaleColumns, in any order; extra columns are ignored.
func (r *CSVSaleRepository) GetSales(ctx context.Context, path string) ([]domain.Sale, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open sales file %s: %w", domain.ErrMissingFile, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header from %s: %v", domain.ErrSchemaMismatch, path, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var sales []domain.Sale
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrSchemaMismatch, path, err)
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		sale, err := r.parseSale(record, index)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", domain.ErrSchemaMismatch, path, line, err)
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

func (r *CSVSaleRepository) parseSale(record []string, index map[string]int) (domain.Sale, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[index[name]])
	}

	hour, err := strconv.Atoi(field(domain.ColumnHourOfDay))
	if err != nil {
		return domain.Sale{}, fmt.Errorf("could not parse hour_of_day '%s'", field(domain.ColumnHourOfDay))
	}

	money, err := strconv.ParseFloat(field(domain.ColumnMoney), 64)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("could not parse money '%s'", field(domain.ColumnMoney))
	}

	weekday, err := domain.ParseWeekday(field(domain.ColumnWeekday))
	if err != nil {
		return domain.Sale{}, err
	}

	date, err := parseDate(field(domain.ColumnDate))
	if err != nil {
		return domain.Sale{}, err
	}

	sale := domain.Sale{
		HourOfDay:  hour,
		CashType:   field(domain.ColumnCashType),
		Money:      money,
		CoffeeName: field(domain.ColumnCoffeeName),
		TimeOfDay:  field(domain.ColumnTimeOfDay),
		Weekday:    weekday,
		MonthName:  field(domain.ColumnMonthName),
		Date:       date,
		Time:       field(domain.ColumnTime),
		Period:     domain.PeriodOf(date),
	}
	if err := r.validate.Struct(sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = headerName(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range domain.SaleColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domain.ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return index, nil
}

// headerName normalises a header cell. Files saved from spreadsheet tools may
// start with a UTF-8 BOM.
func headerName(raw string) string {
	return strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse Date '%s'", raw)
}
