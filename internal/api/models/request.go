package models

// ProductionRequest is the query string of GET /api/v1/production
type ProductionRequest struct {
	Farms     string `form:"farms"` // comma separated; empty selects every farm
	StartDate string `form:"start"` // YYYY-MM-DD
	EndDate   string `form:"end"`   // YYYY-MM-DD
	All       bool   `form:"all"`   // use every year in the file instead of the default year
	Series    bool   `form:"series"`
}

// EarningsRequest is the query string of GET /api/v1/earnings
type EarningsRequest struct {
	Farm   string `form:"farm"`
	Year   int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Top    int    `form:"top" binding:"omitempty,min=1,max=1000"`
	Series bool   `form:"series"`
}

// PricesRequest is the query string of GET /api/v1/prices
type PricesRequest struct {
	Year int `form:"year" binding:"omitempty,min=1900,max=9999"`
	Top  int `form:"top" binding:"omitempty,min=1,max=1000"`
}

// ExportRequest is the query string of GET /api/v1/export/:table
type ExportRequest struct {
	Format    string `form:"format"` // csv (default), xlsx or pdf
	Farms     string `form:"farms"`
	Farm      string `form:"farm"`
	StartDate string `form:"start"`
	EndDate   string `form:"end"`
	All       bool   `form:"all"`
	Year      int    `form:"year" binding:"omitempty,min=1900,max=9999"`
}
