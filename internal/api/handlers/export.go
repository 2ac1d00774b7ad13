package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"windfarm-analytics/internal/api/models"
	"windfarm-analytics/internal/dashboard"
	"windfarm-analytics/internal/export"
	"windfarm-analytics/internal/model"
	"windfarm-analytics/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// Export handles GET /api/v1/export/:table where table is earnings,
// production or prices.
func (h *DashboardHandler) Export(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	table := c.Param("table")
	format := strings.ToLower(req.Format)
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" && format != "pdf" {
		badRequest(c, "INVALID_REQUEST", fmt.Sprintf("unsupported format %q", req.Format))
		return
	}
	if format == "pdf" && table != "earnings" {
		badRequest(c, "INVALID_REQUEST", "pdf export is only available for earnings")
		return
	}

	var (
		body     []byte
		filename string
		err      error
	)
	switch table {
	case "earnings":
		body, filename, err = h.exportEarnings(req, format)
	case "production":
		body, filename, err = h.exportProduction(req, format)
	case "prices":
		body, filename, err = h.exportPrices(req, format)
	default:
		badRequest(c, "INVALID_REQUEST", fmt.Sprintf("unknown table %q", table))
		return
	}
	metrics.IncExport(table, format, err)
	if err != nil {
		if _, bad := err.(requestError); bad {
			badRequest(c, "INVALID_DATE", err.Error())
			return
		}
		respondError(c, err)
		return
	}

	contentType := contentTypeCSV
	switch format {
	case "xlsx":
		contentType = contentTypeXLSX
	case "pdf":
		contentType = contentTypePDF
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// requestError marks a query problem found after binding.
type requestError struct{ error }

func (h *DashboardHandler) exportEarnings(req models.ExportRequest, format string) ([]byte, string, error) {
	report, err := h.svc.Earnings(dashboard.EarningsQuery{Farm: req.Farm, Year: req.Year})
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("earnings_%d.%s", report.Year, format)
	if format == "pdf" {
		body, err := export.BuildEarningsPDF(report.Year, report.Summary)
		return body, filename, err
	}

	m := report.Summary.Metrics
	summary := []export.SummaryLine{
		{Label: "Farm", Value: report.Summary.Farm},
		{Label: "Year", Value: report.Year},
		{Label: "Matched hours", Value: m.Rows},
		{Label: "Total earnings", Value: m.TotalEarnings},
		{Label: "Total production (MWh)", Value: m.TotalProduction},
		{Label: "Weighted average price", Value: m.WeightedAvgPrice},
		{Label: "Average spot price", Value: m.AvgSpotPrice},
		{Label: "Capture rate", Value: m.CaptureRate},
	}
	body, err := encodeTable(format, "Earnings", report.Table.Table(), summary)
	return body, filename, err
}

func (h *DashboardHandler) exportProduction(req models.ExportRequest, format string) ([]byte, string, error) {
	q, err := productionQuery(req.Farms, req.StartDate, req.EndDate, req.All)
	if err != nil {
		return nil, "", requestError{err}
	}
	summary, err := h.svc.Production(q)
	if err != nil {
		return nil, "", err
	}
	var lines []export.SummaryLine
	if format == "xlsx" {
		lines = []export.SummaryLine{
			{Label: "Farms", Value: strings.Join(summary.Table.Columns, ", ")},
			{Label: "Total production (MWh)", Value: summary.Metrics.TotalProduction},
			{Label: "Average daily (MWh)", Value: summary.Metrics.AvgDaily},
			{Label: "Average hourly (MWh)", Value: summary.Metrics.AvgHourly},
		}
	}
	body, err := encodeTable(format, "Production", summary.Table, lines)
	return body, "production." + format, err
}

func (h *DashboardHandler) exportPrices(req models.ExportRequest, format string) ([]byte, string, error) {
	report, err := h.svc.PriceSummary(dashboard.PriceQuery{Year: req.Year})
	if err != nil {
		return nil, "", err
	}
	var lines []export.SummaryLine
	if format == "xlsx" {
		lines = []export.SummaryLine{
			{Label: "Hours", Value: report.Summary.Rows},
			{Label: "Average price", Value: report.Summary.AvgPrice},
			{Label: "Minimum price", Value: report.Summary.MinPrice},
			{Label: "Maximum price", Value: report.Summary.MaxPrice},
		}
	}
	body, err := encodeTable(format, "Prices", report.Table.Table(), lines)
	return body, "prices." + format, err
}

func encodeTable(format, sheet string, t *model.Table, summary []export.SummaryLine) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if format == "xlsx" {
		err = export.WriteXLSX(&buf, sheet, t, summary)
	} else {
		err = export.WriteCSV(&buf, t)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
