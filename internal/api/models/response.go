package models

import (
	"time"

	"windfarm-analytics/internal/analysis"
	"windfarm-analytics/internal/data"
)

// FarmsResponse lists the farms found in the production file
type FarmsResponse struct {
	Farms       []string   `json:"farms"`
	Count       int        `json:"count"`
	DefaultFarm string     `json:"default_farm"`
	DefaultYear int        `json:"default_year"`
	DataWindow  TimeWindow `json:"data_window"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SitesResponse holds map coordinates per farm
type SitesResponse struct {
	Sites []data.Site `json:"sites"`
	Count int         `json:"count"`
}

// SeriesPoint is one hourly value
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// ProductionResponse is the aggregated production of a farm selection
type ProductionResponse struct {
	Farms   []string                   `json:"farms"`
	Window  TimeWindow                 `json:"window"`
	Metrics analysis.ProductionMetrics `json:"metrics"`
	Daily   []analysis.Bucket          `json:"daily"`
	Monthly []analysis.Bucket          `json:"monthly"`
	Hourly  []SeriesPoint              `json:"hourly,omitempty"` // summed over the selected farms
}

// EarningsPoint is one joined hour
type EarningsPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Production float64   `json:"production_mwh"`
	Price      float64   `json:"price"`
	Earnings   float64   `json:"earnings"`
}

// EarningsResponse carries the earnings summary for one farm and year
type EarningsResponse struct {
	Farm    string                   `json:"farm"`
	Year    int                      `json:"year"`
	Metrics analysis.EarningsMetrics `json:"metrics"`
	Daily   []analysis.Bucket        `json:"daily"`
	Monthly []analysis.Bucket        `json:"monthly"`
	Top     []analysis.RankedHour    `json:"top_hours"`
	Bottom  []analysis.RankedHour    `json:"bottom_hours"`
	Series  []EarningsPoint          `json:"series,omitempty"`
}

// PricesResponse wraps the spot price summary
type PricesResponse struct {
	analysis.PriceSummary
	Year int `json:"year,omitempty"`
}

// CacheResponse reports a cache reset
type CacheResponse struct {
	Cleared int `json:"cleared"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
