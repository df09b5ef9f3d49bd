package presenter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"coffee-insights/internal/domain"
)

const (
	sheetWeekday     = "1 Dia da Semana"
	sheetHourly      = "2 Hora do Dia"
	sheetMonthly     = "3 Faturamento Mensal"
	sheetProducts    = "4 Produtos"
	sheetLowVolume   = "5 Baixa Venda"
	sheetPriceVolume = "6 Preço x Volume"
	sheetStaffing    = "7 Dia x Hora"
	sheetTrends      = "8 Tendências"
)

// Sheets lists the workbook sheets in question order.
var Sheets = []string{
	sheetWeekday,
	sheetHourly,
	sheetMonthly,
	sheetProducts,
	sheetLowVolume,
	sheetPriceVolume,
	sheetStaffing,
	sheetTrends,
}

var chartSize = excelize.ChartDimension{Width: 720, Height: 360}

// RenderWorkbook writes one sheet per business question to an xlsx file at
// path, each with its data table and a native chart.
func RenderWorkbook(r *domain.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), Sheets[0]); err != nil {
		return fmt.Errorf("failed to rename first sheet: %w", err)
	}
	for _, name := range Sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	renderers := []func(*excelize.File, *domain.Report) error{
		weekdaySheet,
		hourlySheet,
		monthlySheet,
		productsSheet,
		lowVolumeSheet,
		priceVolumeSheet,
		staffingSheet,
		trendsSheet,
	}
	for i, render := range renderers {
		if err := render(f, r); err != nil {
			return fmt.Errorf("failed to render sheet %q: %w", Sheets[i], err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// ref builds an absolute range reference for column col over rows [from, to].
func ref(sheet, col string, from, to int) string {
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, col, from, col, to)
}

func title(text string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: text}}
}

func addChart(f *excelize.File, sheet, cell string, typ excelize.ChartType, text string, series []excelize.ChartSeries) error {
	return f.AddChart(sheet, cell, &excelize.Chart{
		Type:      typ,
		Series:    series,
		Title:     title(text),
		Dimension: chartSize,
		Legend:    excelize.ChartLegend{Position: "bottom"},
	})
}

func weekdaySheet(f *excelize.File, r *domain.Report) error {
	rows := [][]interface{}{{labelDay, labelVolume, labelRevenue}}
	for _, d := range r.Weekday.Days {
		if !d.Observed {
			rows = append(rows, []interface{}{string(d.Weekday), 0, nil})
			continue
		}
		rows = append(rows, []interface{}{string(d.Weekday), d.Volume, d.Revenue})
	}
	if err := writeRows(f, sheetWeekday, rows); err != nil {
		return err
	}

	last := len(rows)
	if err := addChart(f, sheetWeekday, "E2", excelize.Col, chartWeekday+" - "+labelVolume, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$B$1", sheetWeekday),
		Categories: ref(sheetWeekday, "A", 2, last),
		Values:     ref(sheetWeekday, "B", 2, last),
	}}); err != nil {
		return err
	}
	return addChart(f, sheetWeekday, "E22", excelize.Col, chartWeekday+" - "+labelRevenue, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$C$1", sheetWeekday),
		Categories: ref(sheetWeekday, "A", 2, last),
		Values:     ref(sheetWeekday, "C", 2, last),
	}})
}

func hourlySheet(f *excelize.File, r *domain.Report) error {
	rows := [][]interface{}{{labelHour, labelVolume, labelRevenue}}
	for _, h := range r.Hourly.Hours {
		rows = append(rows, []interface{}{h.Hour, h.Volume, h.Revenue})
	}
	if err := writeRows(f, sheetHourly, rows); err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}

	last := len(rows)
	if err := addChart(f, sheetHourly, "E2", excelize.Line, chartHourly+" - "+labelVolume, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$B$1", sheetHourly),
		Categories: ref(sheetHourly, "A", 2, last),
		Values:     ref(sheetHourly, "B", 2, last),
		Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
	}}); err != nil {
		return err
	}
	return addChart(f, sheetHourly, "E22", excelize.Line, chartHourly+" - "+labelRevenue, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$C$1", sheetHourly),
		Categories: ref(sheetHourly, "A", 2, last),
		Values:     ref(sheetHourly, "C", 2, last),
		Marker:     excelize.ChartMarker{Symbol: "square", Size: 5},
	}})
}

func monthlySheet(f *excelize.File, r *domain.Report) error {
	rows := [][]interface{}{{labelMonth, labelTotal}}
	for _, m := range r.Monthly.Months {
		rows = append(rows, []interface{}{m.Period, m.Revenue})
	}
	if err := writeRows(f, sheetMonthly, rows); err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}

	last := len(rows)
	return addChart(f, sheetMonthly, "D2", excelize.Col, chartMonthly, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$B$1", sheetMonthly),
		Categories: ref(sheetMonthly, "A", 2, last),
		Values:     ref(sheetMonthly, "B", 2, last),
	}})
}

func productsSheet(f *excelize.File, r *domain.Report) error {
	rows := [][]interface{}{{labelProduct, labelVolume, labelRevenue}}
	for _, p := range r.Products.Products {
		rows = append(rows, []interface{}{p.Product, p.Volume, p.Revenue})
	}
	if err := writeRows(f, sheetProducts, rows); err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}

	last := len(rows)
	if err := addChart(f, sheetProducts, "E2", excelize.Col, chartProducts+" - "+labelVolume, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$B$1", sheetProducts),
		Categories: ref(sheetProducts, "A", 2, last),
		Values:     ref(sheetProducts, "B", 2, last),
	}}); err != nil {
		return err
	}
	return addChart(f, sheetProducts, "E22", excelize.Col, chartProducts+" - "+labelRevenue, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$C$1", sheetProducts),
		Categories: ref(sheetProducts, "A", 2, last),
		Values:     ref(sheetProducts, "C", 2, last),
	}})
}

func lowVolumeSheet(f *excelize.File, r *domain.Report) error {
	lv := r.LowVolume
	rows := [][]interface{}{
		{titleLowVolume},
		{"Total de transações", lv.TotalVolume},
		{"Limite", lv.Threshold},
		{},
		{labelProduct, labelVolume, labelRevenue},
	}
	for _, p := range lv.Products {
		rows = append(rows, []interface{}{p.Product, p.Volume, p.Revenue})
	}
	return writeRows(f, sheetLowVolume, rows)
}

func priceVolumeSheet(f *excelize.File, r *domain.Report) error {
	pv := r.PriceVolume
	rows := [][]interface{}{{labelProduct, labelMeanPrice, labelVolume}}
	for _, p := range pv.Products {
		rows = append(rows, []interface{}{p.Product, p.MeanPrice, p.Volume})
	}
	if pv.Correlation != nil {
		rows = append(rows, []interface{}{}, []interface{}{"Correlação", *pv.Correlation})
	}
	if err := writeRows(f, sheetPriceVolume, rows); err != nil {
		return err
	}
	if len(pv.Products) == 0 {
		return nil
	}

	last := len(pv.Products) + 1
	return addChart(f, sheetPriceVolume, "E2", excelize.Scatter, chartPriceVolume, []excelize.ChartSeries{{
		Name:       fmt.Sprintf("'%s'!$C$1", sheetPriceVolume),
		Categories: ref(sheetPriceVolume, "B", 2, last),
		Values:     ref(sheetPriceVolume, "C", 2, last),
		Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
		Marker:     excelize.ChartMarker{Symbol: "circle", Size: 7},
	}})
}

func staffingSheet(f *excelize.File, r *domain.Report) error {
	st := r.Staffing
	header := []interface{}{labelDay}
	for _, h := range st.Hours {
		header = append(header, h)
	}
	rows := [][]interface{}{header}
	for _, row := range st.Grid {
		cells := []interface{}{string(row.Weekday)}
		for _, v := range row.Volumes {
			if v == 0 {
				cells = append(cells, nil)
				continue
			}
			cells = append(cells, v)
		}
		rows = append(rows, cells)
	}
	if err := writeRows(f, sheetStaffing, rows); err != nil {
		return err
	}
	if len(st.Hours) == 0 {
		return nil
	}

	first, err := excelize.CoordinatesToCellName(2, 2)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(st.Hours)+1, len(st.Grid)+1)
	if err != nil {
		return err
	}
	return f.SetConditionalFormat(sheetStaffing, first+":"+last, []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "min",
		MidType:  "percentile",
		MidValue: "50",
		MaxType:  "max",
		MinColor: "#FFFFCC",
		MidColor: "#FD8D3C",
		MaxColor: "#800026",
	}})
}

func trendsSheet(f *excelize.File, r *domain.Report) error {
	tr := r.Trends
	rows := [][]interface{}{{labelDate, labelDaily, fmt.Sprintf(labelRolling, tr.Window)}}
	for _, d := range tr.Daily {
		var rolling interface{}
		if d.Rolling != nil {
			rolling = *d.Rolling
		}
		rows = append(rows, []interface{}{d.Date.Format("2006-01-02"), d.Revenue, rolling})
	}
	if err := writeRows(f, sheetTrends, rows); err != nil {
		return err
	}
	if len(tr.Daily) == 0 {
		return nil
	}

	last := len(rows)
	return addChart(f, sheetTrends, "E2", excelize.Line, chartTrends, []excelize.ChartSeries{
		{
			Name:       fmt.Sprintf("'%s'!$B$1", sheetTrends),
			Categories: ref(sheetTrends, "A", 2, last),
			Values:     ref(sheetTrends, "B", 2, last),
		},
		{
			Name:       fmt.Sprintf("'%s'!$C$1", sheetTrends),
			Categories: ref(sheetTrends, "A", 2, last),
			Values:     ref(sheetTrends, "C", 2, last),
		},
	})
}
