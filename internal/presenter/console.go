package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"coffee-insights/internal/domain"
)

// Console prints the cleaning summary and the report as plain text.
type Console struct {
	w   io.Writer
	err error
}

// NewConsole creates a console printer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) printf(format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

// table writes tab separated rows aligned in columns.
func (c *Console) table(header []string, rows [][]string) {
	if c.err != nil {
		return
	}
	tw := tabwriter.NewWriter(c.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	c.err = tw.Flush()
}

// PrintCleaning prints the outcome of the extraction/cleaning stage.
func (c *Console) PrintCleaning(s *domain.CleaningSummary) error {
	c.printf("Caminho do dataset: %s\n\n", s.SourcePath)

	c.printf("A quantidade de nulos por campo é:\n")
	c.table([]string{"Campo", "Nulos"}, columnRows(s.MissingValues))

	c.printf("\nQtd registros atual: %d\n", s.Rows)
	c.printf("Qtd de registros duplicados: %d (mantidos no arquivo)\n", s.DuplicateRows)
	c.printf("Qtd de registros sem duplicadas: %d\n\n", s.Rows-s.DuplicateRows)

	c.printf("Qtd de valores únicos:\n")
	c.table([]string{"Campo", "Únicos"}, columnRows(s.DistinctValues))

	c.printf("\nMediana %s\n", FormatNumber(s.Money.Median, 2))
	c.printf("Média %s\n", FormatNumber(s.Money.Mean, 2))
	c.printf("Mínimo %s\n", FormatNumber(s.Money.Min, 2))
	c.printf("Máximo %s\n\n", FormatNumber(s.Money.Max, 2))

	if len(s.Preview) > 0 {
		c.printf("Arquivo gerado: %s\n", s.OutputPath)
		c.table(s.Preview[0], s.Preview[1:])
	}
	return c.err
}

// PrintReport prints the answers to every business question.
func (c *Console) PrintReport(r *domain.Report) error {
	c.printOverview(r.Overview)
	c.printWeekday(r.Weekday)
	c.printHourly(r.Hourly)
	c.printMonthly(r.Monthly)
	c.printProducts(r.Products)
	c.printLowVolume(r.LowVolume)
	c.printPriceVolume(r.PriceVolume)
	c.printStaffing(r.Staffing)
	c.printTrends(r.Trends)
	return c.err
}

func (c *Console) printOverview(o domain.Overview) {
	c.printf("Registros: %d (%s a %s)\n", o.Rows, o.FirstDate.Format("2006-01-02"), o.LastDate.Format("2006-01-02"))
	m := o.Money
	c.table(
		[]string{"money", "count", "mean", "std", "min", "25%", "50%", "75%", "max"},
		[][]string{{
			"",
			fmt.Sprint(m.Count),
			FormatNumber(m.Mean, 2),
			FormatNumber(m.StdDev, 2),
			FormatNumber(m.Min, 2),
			FormatNumber(m.Q25, 2),
			FormatNumber(m.Median, 2),
			FormatNumber(m.Q75, 2),
			FormatNumber(m.Max, 2),
		}},
	)
}

func (c *Console) printWeekday(r domain.WeekdayReport) {
	c.printf("\n%s\n", titleWeekday)
	rows := make([][]string, 0, len(r.Days))
	for _, d := range r.Days {
		rows = append(rows, []string{string(d.Weekday), weekdayVolume(d), weekdayRevenue(d)})
	}
	c.table([]string{labelDay, labelVolume, labelRevenue}, rows)

	c.printf("\nDia com maior volume: %s (%d transações)\n", r.MaxVolume.Weekday, r.MaxVolume.Volume)
	c.printf("Dia com menor volume: %s (%d transações)\n", r.MinVolume.Weekday, r.MinVolume.Volume)
	c.printf("Dia com maior faturamento: %s (%s)\n", r.MaxRevenue.Weekday, FormatBRL(r.MaxRevenue.Revenue))
	c.printf("Dia com menor faturamento: %s (%s)\n", r.MinRevenue.Weekday, FormatBRL(r.MinRevenue.Revenue))
}

func (c *Console) printHourly(r domain.HourlyReport) {
	c.printf("\n%s\n", titleHourly)
	rows := make([][]string, 0, len(r.Hours))
	for _, h := range r.Hours {
		rows = append(rows, []string{fmt.Sprint(h.Hour), fmt.Sprint(h.Volume), FormatNumber(h.Revenue, 2)})
	}
	c.table([]string{labelHour, labelVolume, labelRevenue}, rows)

	c.printf("\nPico de volume: %dh (%d transações)\n", r.Peak.Hour, r.Peak.Volume)
	c.printf("Baixa de volume: %dh (%d transações)\n", r.Low.Hour, r.Low.Volume)
}

func (c *Console) printMonthly(r domain.MonthlyReport) {
	c.printf("\n%s\n", titleMonthly)
	rows := make([][]string, 0, len(r.Months))
	for _, m := range r.Months {
		rows = append(rows, []string{m.Period, FormatBRL(m.Revenue)})
	}
	c.table([]string{labelMonth, labelRevenue}, rows)
}

func (c *Console) printProducts(r domain.ProductReport) {
	c.printf("\n%s\n", titleProducts)
	c.table([]string{labelProduct, labelVolume, labelRevenue}, productRows(r.Products))

	c.printf("\nTop 3 mais vendidos: %s\n", nameList(r.TopByVolume))
	c.printf("Top 3 maior faturamento: %s\n", nameList(r.TopByRevenue))
}

func (c *Console) printLowVolume(r domain.LowVolumeReport) {
	c.printf("\n%s\n", titleLowVolume)
	if len(r.Products) > 0 {
		c.table([]string{labelProduct, labelVolume, labelRevenue}, productRows(r.Products))
	}

	names := make([]string, 0, len(r.Products))
	for _, p := range r.Products {
		names = append(names, p.Product)
	}
	c.printf("\nSugestão: Remover %s se volume < %s transações.\n", nameList(names), FormatNumber(r.Threshold, 2))
}

func (c *Console) printPriceVolume(r domain.PriceVolumeReport) {
	c.printf("\n%s\n", titlePriceVolume)
	rows := make([][]string, 0, len(r.Products))
	for _, p := range r.Products {
		rows = append(rows, []string{p.Product, fmt.Sprint(p.Volume), FormatBRL(p.MeanPrice)})
	}
	c.table([]string{labelProduct, labelVolume, labelMeanPrice}, rows)

	if r.Correlation == nil {
		c.printf("\nCorrelação preço-volume: indefinida\n")
		return
	}
	c.printf("\nCorrelação preço-volume: %.2f (se negativa = preços altos vendem menos)\n", *r.Correlation)
}

func (c *Console) printStaffing(r domain.StaffingReport) {
	c.printf("\n%s\n", titleStaffing)
	header := []string{labelDay}
	for _, h := range r.Hours {
		header = append(header, fmt.Sprint(h))
	}
	rows := make([][]string, 0, len(r.Grid))
	for _, row := range r.Grid {
		cells := []string{string(row.Weekday)}
		for _, v := range row.Volumes {
			cells = append(cells, cellVolume(v))
		}
		rows = append(rows, cells)
	}
	c.table(header, rows)

	c.printf("\nPicos (> %.0f transações):\n", r.Threshold)
	if len(r.Peaks) == 0 {
		c.printf("nenhum\n")
	}
	for _, p := range r.Peaks {
		c.printf("%s %dh: %d transações\n", p.Weekday, p.Hour, p.Volume)
	}
	c.printf("\nSugestão: Mais funcionários nos picos identificados.\n")
}

func (c *Console) printTrends(r domain.TrendReport) {
	c.printf("\n%s\n", titleTrends)
	c.printf("\nTendência semanal:\n")
	rows := make([][]string, 0, len(r.Weekly))
	for _, d := range r.Weekly {
		rows = append(rows, []string{string(d.Weekday), weekdayRevenue(d)})
	}
	c.table([]string{labelDay, labelRevenue}, rows)

	c.printf("\nTendência diária:\n")
	rows = make([][]string, 0, len(r.Daily))
	for _, d := range r.Daily {
		rolling := "-"
		if d.Rolling != nil {
			rolling = FormatNumber(*d.Rolling, 2)
		}
		rows = append(rows, []string{d.Date.Format("2006-01-02"), FormatNumber(d.Revenue, 2), rolling})
	}
	c.table([]string{labelDate, labelDaily, fmt.Sprintf(labelRolling, r.Window)}, rows)
}

func columnRows(counts []domain.ColumnCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Column, fmt.Sprint(c.Count)})
	}
	return rows
}

func productRows(products []domain.ProductSales) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.Product, fmt.Sprint(p.Volume), FormatNumber(p.Revenue, 2)})
	}
	return rows
}

func weekdayVolume(d domain.WeekdaySales) string {
	if !d.Observed {
		return "-"
	}
	return fmt.Sprint(d.Volume)
}

func weekdayRevenue(d domain.WeekdaySales) string {
	if !d.Observed {
		return "-"
	}
	return FormatNumber(d.Revenue, 2)
}

func cellVolume(v int) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprint(v)
}

func nameList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
