package handlers

import (
	"net/http"

	"windfarm-analytics/internal/api/models"
	"windfarm-analytics/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// GetEarnings handles GET /api/v1/earnings
func (h *DashboardHandler) GetEarnings(c *gin.Context) {
	var req models.EarningsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.svc.Earnings(dashboard.EarningsQuery{Farm: req.Farm, Year: req.Year, TopN: req.Top})
	if err != nil {
		respondError(c, err)
		return
	}

	s := report.Summary
	resp := models.EarningsResponse{
		Farm:    s.Farm,
		Year:    report.Year,
		Metrics: s.Metrics,
		Daily:   s.Daily,
		Monthly: s.Monthly,
		Top:     s.Top,
		Bottom:  s.Bottom,
	}
	if req.Series {
		resp.Series = make([]models.EarningsPoint, len(report.Table.Rows))
		for i, r := range report.Table.Rows {
			resp.Series[i] = models.EarningsPoint{
				Timestamp:  r.Timestamp,
				Production: r.Production,
				Price:      r.Price,
				Earnings:   r.Earnings,
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}
