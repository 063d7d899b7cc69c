// Package report renders a day plan as downloadable XLSX and PDF documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/hybridpark/core/dashboard"
	"github.com/kilianp07/hybridpark/core/model"
)

const (
	summarySheet = "summary"
	hoursSheet   = "hours"
)

var hourColumns = []string{"Time", "Solar (MW)", "BESS (MW)", "Grid Export (MW)", "H2 (kg)", "Price (INR/kWh)"}

func hourRow(r model.HourlyRecord) []any {
	return []any{r.HourLabel, r.SolarMW, r.BESSChargeMW, r.GridExportMW, r.HydrogenKg, r.MarketPriceINR}
}

// BuildPlanXLSX renders the plan with a summary sheet and one row per hour.
func BuildPlanXLSX(plan model.DayPlan, kpi dashboard.KPI) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(hoursSheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Day Plan", plan.ID},
		{"Generated", plan.GeneratedAt.Format(time.RFC3339)},
		{"Total Solar (MWh)", kpi.TotalSolarMWh},
		{"Total Export (MWh)", kpi.TotalExportMWh},
		{"Total H2 (kg)", kpi.TotalHydrogenKg},
		{"Peak Price (INR/kWh)", kpi.PeakPriceINR},
		{"Arbitrage Hours", kpi.ArbitrageHours},
		{"Revenue (Lakh INR)", kpi.RevenueLakh},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	header := make([]any, len(hourColumns))
	for i, c := range hourColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(hoursSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range plan.Records() {
		row := hourRow(r)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(hoursSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPlanPDF renders the plan as a one page A4 table.
func BuildPlanPDF(plan model.DayPlan, kpi dashboard.KPI) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Hybrid Park Day Plan")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Plan: %s", plan.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", plan.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Solar: %.1f MWh  Export: %.1f MWh  H2: %.1f kg", kpi.TotalSolarMWh, kpi.TotalExportMWh, kpi.TotalHydrogenKg))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Revenue: %.2f Lakh INR  Arbitrage hours: %d", kpi.RevenueLakh, kpi.ArbitrageHours))
	pdf.Ln(8)

	widths := []float64{20, 30, 30, 35, 25, 35}
	pdf.SetFont("Arial", "B", 9)
	for i, c := range hourColumns {
		pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, r := range plan.Records() {
		pdf.CellFormat(widths[0], 5, r.HourLabel, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 5, fmt.Sprintf("%.1f", r.SolarMW), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 5, fmt.Sprintf("%.1f", r.BESSChargeMW), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5, fmt.Sprintf("%.1f", r.GridExportMW), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 5, fmt.Sprintf("%.1f", r.HydrogenKg), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 5, fmt.Sprintf("%.2f", r.MarketPriceINR), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
