package handlers

import (
	"net/http"

	"windfarm-analytics/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListFarms handles GET /api/v1/farms
func (h *DashboardHandler) ListFarms(c *gin.Context) {
	farms, err := h.svc.Farms()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FarmsResponse{
		Farms:       farms.Farms,
		Count:       len(farms.Farms),
		DefaultFarm: farms.DefaultFarm,
		DefaultYear: farms.DefaultYear,
		DataWindow:  models.TimeWindow{Start: farms.Start, End: farms.End},
	})
}

// ListSites handles GET /api/v1/farms/sites
func (h *DashboardHandler) ListSites(c *gin.Context) {
	sites, err := h.svc.Sites()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SitesResponse{Sites: sites, Count: len(sites)})
}

// ResetCache handles DELETE /api/v1/cache
func (h *DashboardHandler) ResetCache(c *gin.Context) {
	c.JSON(http.StatusOK, models.CacheResponse{Cleared: h.svc.ResetCache()})
}
