package handlers

import (
	"net/http"

	"windfarm-analytics/internal/api/models"
	"windfarm-analytics/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// GetPrices handles GET /api/v1/prices
func (h *DashboardHandler) GetPrices(c *gin.Context) {
	var req models.PricesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.svc.PriceSummary(dashboard.PriceQuery{Year: req.Year, TopN: req.Top})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PricesResponse{PriceSummary: report.Summary, Year: req.Year})
}
