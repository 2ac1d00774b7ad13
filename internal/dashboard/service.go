package dashboard

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"windfarm-analytics/internal/analysis"
	"windfarm-analytics/internal/config"
	"windfarm-analytics/internal/data"
	"windfarm-analytics/internal/model"
	"windfarm-analytics/internal/observability/metrics"
)

// Service wires the configured input files through the loading and analysis
// pipeline. Results handed out are shared with the cache and must be treated
// as read-only.
type Service struct {
	cfg    *config.Config
	parser data.TimeParser
	cache  *data.Cache
}

// New builds a Service. Memoization follows cfg.Cache.
func New(cfg *config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	parser, err := data.NewTimeParser(cfg.Data.Timezone)
	if err != nil {
		return nil, err
	}
	var cache *data.Cache
	if !cfg.Cache.Disabled {
		cache = data.NewCache()
	}
	return &Service{cfg: cfg, parser: parser, cache: cache}, nil
}

// Config returns the configuration the service was built with.
func (s *Service) Config() *config.Config { return s.cfg }

// ResetCache drops every memoized result so the next call rereads the files.
func (s *Service) ResetCache() int {
	n := s.cache.Len()
	s.cache.Clear()
	log.Printf("Dashboard: cache cleared (%d entries)", n)
	return n
}

// FullProduction is the normalized production table for all years.
func (s *Service) FullProduction() (*model.Table, error) {
	path, sheet := s.cfg.Data.ProductionFile, s.cfg.Data.ProductionSheet
	return data.Memoize(s.cache, "production", []any{path, sheet, s.cfg.Data.Timezone}, func() (*model.Table, error) {
		start := time.Now()
		t, err := s.loadProduction(path, sheet)
		metrics.ObserveLoad("production", err, time.Since(start))
		if err != nil {
			return nil, err
		}
		metrics.AddDroppedRows("production", t.Dropped)
		log.Printf("Dashboard: loaded %d production rows, %d farms from %s (dropped %d)",
			t.Len(), len(t.Columns), path, t.Dropped)
		return t, nil
	})
}

func (s *Service) loadProduction(path, sheet string) (*model.Table, error) {
	raw, err := data.LoadRaw(path, sheet)
	if err != nil {
		return nil, err
	}
	return data.Normalize(raw, s.parser)
}

// YearProduction is the production table restricted to one calendar year.
func (s *Service) YearProduction(year int) (*model.Table, error) {
	return data.Memoize(s.cache, "production_year", []any{s.cfg.Data.ProductionFile, year}, func() (*model.Table, error) {
		full, err := s.FullProduction()
		if err != nil {
			return nil, err
		}
		return data.FilterYear(full, year), nil
	})
}

// Prices is the spot price series.
func (s *Service) Prices() (*model.PriceTable, error) {
	path, sheet := s.cfg.Data.PriceFile, s.cfg.Data.PriceSheet
	return data.Memoize(s.cache, "prices", []any{path, sheet, s.cfg.Data.Timezone}, func() (*model.PriceTable, error) {
		start := time.Now()
		p, err := data.LoadPrices(path, sheet, s.parser)
		metrics.ObserveLoad("prices", err, time.Since(start))
		if err != nil {
			return nil, err
		}
		metrics.AddDroppedRows("prices", p.Dropped)
		log.Printf("Dashboard: loaded %d price rows from %s (dropped %d)", p.Len(), path, p.Dropped)
		return p, nil
	})
}

// FarmList describes the available farms and data range.
type FarmList struct {
	Farms       []string  `json:"farms"`
	DefaultFarm string    `json:"default_farm"`
	DefaultYear int       `json:"default_year"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Farms lists the farm columns of the full production table.
func (s *Service) Farms() (*FarmList, error) {
	t, err := s.FullProduction()
	if err != nil {
		return nil, err
	}
	out := &FarmList{
		Farms:       append([]string(nil), t.Columns...),
		DefaultFarm: s.DefaultFarm(t),
		DefaultYear: s.cfg.Defaults.Year,
	}
	out.Start, out.End, _ = t.Span()
	return out, nil
}

// DefaultFarm returns the configured farm when t has it, else its first column.
func (s *Service) DefaultFarm(t *model.Table) string {
	if _, ok := t.ColumnIndex(s.cfg.Defaults.Farm); ok {
		return s.cfg.Defaults.Farm
	}
	if len(t.Columns) > 0 {
		return t.Columns[0]
	}
	return ""
}

// ProductionQuery selects farms and an inclusive date range. Zero dates mean
// the first/last timestamp of the source table. With All unset the source is
// the default year; with All set it is every year in the file.
type ProductionQuery struct {
	Farms []string
	Start time.Time
	End   time.Time
	All   bool
}

// Production aggregates the selected farms over the requested range.
func (s *Service) Production(q ProductionQuery) (*analysis.ProductionSummary, error) {
	var (
		t   *model.Table
		err error
	)
	if q.All {
		t, err = s.FullProduction()
	} else {
		t, err = s.YearProduction(s.cfg.Defaults.Year)
	}
	if err != nil {
		return nil, err
	}
	farms := q.Farms
	if len(farms) == 0 {
		farms = t.Columns
	}
	first, last, ok := t.Span()
	if !ok {
		// No rows to bound: the summary is empty, farm names are still checked.
		return analysis.AggregateProduction(t, farms, q.Start, q.End)
	}
	start, end := q.Start, q.End
	if start.IsZero() {
		start = first
	}
	if end.IsZero() {
		end = last
	}
	return analysis.AggregateProduction(t, farms, start, end)
}

// EarningsQuery names a farm and year. Empty or zero fields use the defaults.
type EarningsQuery struct {
	Farm string
	Year int
	TopN int
}

// EarningsReport is the joined table plus its summary.
type EarningsReport struct {
	Year    int                      `json:"year"`
	Table   *model.EarningsTable     `json:"-"`
	Summary analysis.EarningsSummary `json:"summary"`
}

// Earnings joins one farm's production for a year with the spot prices.
func (s *Service) Earnings(q EarningsQuery) (*EarningsReport, error) {
	year := q.Year
	if year == 0 {
		year = s.cfg.Defaults.Year
	}
	topN := q.TopN
	if topN <= 0 {
		topN = s.cfg.Defaults.TopN
	}

	production, err := s.YearProduction(year)
	if err != nil {
		return nil, err
	}
	farm := q.Farm
	if farm == "" {
		farm = s.DefaultFarm(production)
	}
	prices, err := s.Prices()
	if err != nil {
		return nil, err
	}

	return data.Memoize(s.cache, "earnings", []any{farm, year, topN}, func() (*EarningsReport, error) {
		series, err := production.Series(farm)
		if err != nil {
			return nil, err
		}
		table := analysis.ComputeEarnings(series, prices)
		if table.Len() == 0 {
			log.Printf("Dashboard: earnings for %q in %d have no overlapping hours", farm, year)
		}
		return &EarningsReport{
			Year:    year,
			Table:   table,
			Summary: analysis.SummarizeEarnings(table, topN),
		}, nil
	})
}

// PriceQuery optionally restricts prices to a year.
type PriceQuery struct {
	Year int
	TopN int
}

// PriceReport is the (possibly filtered) price table plus its summary.
type PriceReport struct {
	Table   *model.PriceTable     `json:"-"`
	Summary analysis.PriceSummary `json:"summary"`
}

// PriceSummary summarizes the spot prices.
func (s *Service) PriceSummary(q PriceQuery) (*PriceReport, error) {
	topN := q.TopN
	if topN <= 0 {
		topN = s.cfg.Defaults.TopN
	}
	prices, err := s.Prices()
	if err != nil {
		return nil, err
	}
	if q.Year != 0 {
		prices = analysis.FilterPriceYear(prices, q.Year)
	}
	return &PriceReport{Table: prices, Summary: analysis.SummarizePrices(prices, topN)}, nil
}

// Sites returns map coordinates for every farm. Generated coordinates are
// overlaid with the configured sites file when one exists.
func (s *Service) Sites() ([]data.Site, error) {
	t, err := s.FullProduction()
	if err != nil {
		return nil, err
	}
	sites := data.GenerateSites(t.Columns, s.cfg.Sites.Seed, s.cfg.Sites.Box)
	if s.cfg.Sites.File == "" {
		return sites, nil
	}
	list, err := data.LoadSites(s.cfg.Sites.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sites, nil
		}
		log.Printf("Dashboard: ignoring sites file %s: %v", s.cfg.Sites.File, err)
		return sites, nil
	}
	return data.MergeSites(sites, list.Sites), nil
}
