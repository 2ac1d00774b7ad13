package export

import (
	"bytes"
	"fmt"
	"time"

	"windfarm-analytics/internal/analysis"

	"github.com/jung-kurt/gofpdf"
)

// BuildEarningsPDF renders a one-page earnings report for a farm and year.
func BuildEarningsPDF(year int, s analysis.EarningsSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; farm names carry Norwegian letters.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(fmt.Sprintf("Earnings report: %s", s.Farm)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Year: %d", year))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Matched hours: %d", s.Metrics.Rows))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Total earnings (EUR): %.2f", s.Metrics.TotalEarnings))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total production (MWh): %.3f", s.Metrics.TotalProduction))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Weighted average price (EUR/MWh): "+fmtOptional(s.Metrics.WeightedAvgPrice, 2))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Average spot price (EUR/MWh): "+fmtOptional(s.Metrics.AvgSpotPrice, 2))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Capture rate: "+fmtOptional(s.Metrics.CaptureRate, 3))
	pdf.Ln(5)
	if s.Metrics.BestDay != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Best day: %s (%.2f EUR)",
			s.Metrics.BestDay.Date.Format("2006-01-02"), s.Metrics.BestDay.Value))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Month", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Earnings (EUR)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Hours", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, m := range s.Monthly {
		pdf.CellFormat(40, 6, m.Start.Format("2006-01"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", m.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", m.Count), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtOptional(v *float64, prec int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}
