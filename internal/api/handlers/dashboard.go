package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"windfarm-analytics/internal/api/models"
	"windfarm-analytics/internal/dashboard"
	"windfarm-analytics/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// DashboardHandler serves the dashboard views over HTTP
type DashboardHandler struct {
	svc *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Register mounts the dashboard routes on an /api/v1 group.
func (h *DashboardHandler) Register(api *gin.RouterGroup) {
	api.GET("/farms", h.ListFarms)
	api.GET("/farms/sites", h.ListSites)
	api.GET("/production", h.GetProduction)
	api.GET("/prices", h.GetPrices)
	api.GET("/earnings", h.GetEarnings)
	api.GET("/export/:table", h.Export)
	api.DELETE("/cache", h.ResetCache)
}

// respondError maps pipeline errors onto status codes and the JSON error shape.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, model.ErrUnknownFarm):
		status, code = http.StatusNotFound, "UNKNOWN_FARM"
	case errors.Is(err, model.ErrSourceUnavailable):
		status, code = http.StatusServiceUnavailable, "SOURCE_UNAVAILABLE"
	case errors.Is(err, model.ErrMalformedSource):
		status, code = http.StatusInternalServerError, "MALFORMED_SOURCE"
	}

	detail := models.ErrorDetail{Code: code, Message: err.Error()}
	var srcErr *model.SourceError
	if errors.As(err, &srcErr) {
		detail.Details = map[string]interface{}{"path": srcErr.Path}
		if srcErr.Reason != "" {
			detail.Details["reason"] = srcErr.Reason
		}
	}
	c.JSON(status, models.ErrorResponse{Error: detail})
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// parseFarms splits a comma separated list, dropping blanks.
func parseFarms(s string) []string {
	if s == "" {
		return nil
	}
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}

// parseDate accepts YYYY-MM-DD; an empty string is the zero time.
func parseDate(s, name string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return t, nil
}

func productionQuery(farms, start, end string, all bool) (dashboard.ProductionQuery, error) {
	q := dashboard.ProductionQuery{Farms: parseFarms(farms), All: all}
	var err error
	if q.Start, err = parseDate(start, "start"); err != nil {
		return q, err
	}
	if q.End, err = parseDate(end, "end"); err != nil {
		return q, err
	}
	return q, nil
}
