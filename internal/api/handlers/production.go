package handlers

import (
	"net/http"

	"windfarm-analytics/internal/api/models"

	"github.com/gin-gonic/gin"
)

// GetProduction handles GET /api/v1/production
func (h *DashboardHandler) GetProduction(c *gin.Context) {
	var req models.ProductionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	q, err := productionQuery(req.Farms, req.StartDate, req.EndDate, req.All)
	if err != nil {
		badRequest(c, "INVALID_DATE", err.Error())
		return
	}

	summary, err := h.svc.Production(q)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.ProductionResponse{
		Farms:   summary.Table.Columns,
		Metrics: summary.Metrics,
		Daily:   summary.Daily,
		Monthly: summary.Monthly,
	}
	if first, last, ok := summary.Table.Span(); ok {
		resp.Window = models.TimeWindow{Start: first, End: last}
	}
	if req.Series {
		resp.Hourly = make([]models.SeriesPoint, len(summary.Hourly))
		for i, v := range summary.Hourly {
			resp.Hourly[i] = models.SeriesPoint{Timestamp: summary.Table.Index[i], Value: v}
		}
	}
	c.JSON(http.StatusOK, resp)
}
