package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"windfarm-analytics/internal/analysis"
	"windfarm-analytics/internal/config"
	"windfarm-analytics/internal/dashboard"
	"windfarm-analytics/internal/export"
	"windfarm-analytics/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "farms":
		cmdFarms(os.Args[2:])
	case "production":
		cmdProduction(os.Args[2:])
	case "prices":
		cmdPrices(os.Args[2:])
	case "earnings":
		cmdEarnings(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli farms --config examples/config.yaml")
	fmt.Println("  cli production --farms Høg-Jæren,Bjerkreim --start 2024-01-01 --end 2024-03-31 --out results/production.csv")
	fmt.Println("  cli prices --year 2024 --top 10")
	fmt.Println("  cli earnings --farm Høg-Jæren --year 2024 --out results/earnings.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --production and --prices override the input files named in the config")
	fmt.Println("  - earnings only count hours present in both files with both values set")
}

// commonFlags registers the flags every subcommand shares.
type commonFlags struct {
	cfgPath    *string
	production *string
	prices     *string
	out        *string
}

func addCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		cfgPath:    fs.String("config", "", "Path to YAML config"),
		production: fs.String("production", "", "Production workbook or CSV (overrides config)"),
		prices:     fs.String("prices", "", "Spot price workbook or CSV (overrides config)"),
		out:        fs.String("out", "", "Optional: write the resulting table as CSV"),
	}
}

func (f commonFlags) service() *dashboard.Service {
	cfg, err := config.Load(*f.cfgPath)
	if err != nil {
		fail(err)
	}
	if *f.production != "" {
		cfg.Data.ProductionFile = *f.production
	}
	if *f.prices != "" {
		cfg.Data.PriceFile = *f.prices
	}
	// One-shot process: nothing to reuse between calls.
	cfg.Cache.Disabled = true
	svc, err := dashboard.New(cfg)
	if err != nil {
		fail(err)
	}
	return svc
}

func (f commonFlags) writeOut(t *model.Table) {
	if *f.out == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(*f.out), 0o755); err != nil {
		fail(err)
	}
	if err := export.WriteCSVFile(*f.out, t); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", t.Len(), *f.out)
}

func cmdFarms(args []string) {
	fs := flag.NewFlagSet("farms", flag.ExitOnError)
	common := addCommon(fs)
	_ = fs.Parse(args)

	farms, err := common.service().Farms()
	if err != nil {
		fail(err)
	}
	fmt.Printf("%d farms, data from %s to %s\n", len(farms.Farms),
		farms.Start.Format(time.DateOnly), farms.End.Format(time.DateOnly))
	for _, name := range farms.Farms {
		marker := " "
		if name == farms.DefaultFarm {
			marker = "*"
		}
		fmt.Printf(" %s %s\n", marker, name)
	}
}

func cmdProduction(args []string) {
	fs := flag.NewFlagSet("production", flag.ExitOnError)
	common := addCommon(fs)
	farms := fs.String("farms", "", "Comma-separated farm names (default: all)")
	start := fs.String("start", "", "First date, YYYY-MM-DD (default: first in data)")
	end := fs.String("end", "", "Last date, YYYY-MM-DD (default: last in data)")
	all := fs.Bool("all", false, "Use every year in the file instead of the default year")
	_ = fs.Parse(args)

	q := dashboard.ProductionQuery{Farms: splitList(*farms), All: *all}
	q.Start = parseDate("start", *start)
	q.End = parseDate("end", *end)

	summary, err := common.service().Production(q)
	if err != nil {
		fail(err)
	}

	m := summary.Metrics
	fmt.Printf("Farms: %s\n", strings.Join(summary.Table.Columns, ", "))
	fmt.Printf("Total production: %.2f MWh over %d days (%d hours)\n", m.TotalProduction, m.Days, m.Hours)
	fmt.Printf("Average daily: %s MWh\n", fmtOptional(m.AvgDaily))
	fmt.Printf("Average hourly: %s MWh\n", fmtOptional(m.AvgHourly))
	if m.PeakDay != nil {
		fmt.Printf("Peak day: %s (%.2f MWh)\n", m.PeakDay.Date.Format(time.DateOnly), m.PeakDay.Value)
	}
	printBuckets("Monthly production (MWh)", summary.Monthly)

	common.writeOut(summary.Table)
}

func cmdPrices(args []string) {
	fs := flag.NewFlagSet("prices", flag.ExitOnError)
	common := addCommon(fs)
	year := fs.Int("year", 0, "Optional: restrict to one year")
	top := fs.Int("top", 0, "Number of ranked hours (default: config)")
	_ = fs.Parse(args)

	report, err := common.service().PriceSummary(dashboard.PriceQuery{Year: *year, TopN: *top})
	if err != nil {
		fail(err)
	}

	s := report.Summary
	fmt.Printf("Hours: %d\n", s.Rows)
	fmt.Printf("Average price: %s EUR/MWh\n", fmtOptional(s.AvgPrice))
	fmt.Printf("Min/max price: %s / %s EUR/MWh\n", fmtOptional(s.MinPrice), fmtOptional(s.MaxPrice))
	printBuckets("Monthly average price (EUR/MWh)", s.Monthly)
	printRanked("Highest priced hours", s.Top)
	printRanked("Lowest priced hours", s.Bottom)

	common.writeOut(report.Table.Table())
}

func cmdEarnings(args []string) {
	fs := flag.NewFlagSet("earnings", flag.ExitOnError)
	common := addCommon(fs)
	farm := fs.String("farm", "", "Farm name (default: config)")
	year := fs.Int("year", 0, "Year (default: config)")
	top := fs.Int("top", 0, "Number of ranked hours (default: config)")
	_ = fs.Parse(args)

	report, err := common.service().Earnings(dashboard.EarningsQuery{Farm: *farm, Year: *year, TopN: *top})
	if err != nil {
		fail(err)
	}

	s := report.Summary
	m := s.Metrics
	fmt.Printf("Farm: %s, year %d, %d matched hours\n", s.Farm, report.Year, m.Rows)
	fmt.Printf("Total earnings: %.2f EUR\n", m.TotalEarnings)
	fmt.Printf("Total production: %.2f MWh\n", m.TotalProduction)
	fmt.Printf("Weighted average price: %s EUR/MWh\n", fmtOptional(m.WeightedAvgPrice))
	fmt.Printf("Average spot price: %s EUR/MWh\n", fmtOptional(m.AvgSpotPrice))
	fmt.Printf("Capture rate: %s\n", fmtOptional(m.CaptureRate))
	if m.BestDay != nil {
		fmt.Printf("Best day: %s (%.2f EUR)\n", m.BestDay.Date.Format(time.DateOnly), m.BestDay.Value)
	}
	printBuckets("Monthly earnings (EUR)", s.Monthly)
	printRanked("Top earning hours", s.Top)
	printRanked("Bottom earning hours", s.Bottom)

	common.writeOut(report.Table.Table())
}

func printBuckets(title string, buckets []analysis.Bucket) {
	if len(buckets) == 0 {
		return
	}
	fmt.Println(title + ":")
	for _, b := range buckets {
		fmt.Printf("  %s  %12.2f\n", b.Start.Format("2006-01"), b.Value)
	}
}

func printRanked(title string, hours []analysis.RankedHour) {
	if len(hours) == 0 {
		return
	}
	fmt.Println(title + ":")
	for _, h := range hours {
		fmt.Printf("  %2d. %s  %12.2f\n", h.Rank, h.Timestamp.Format("2006-01-02 15:04"), h.Value)
	}
}

func fmtOptional(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDate(name, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		fmt.Printf("--%s must be in YYYY-MM-DD format\n", name)
		os.Exit(2)
	}
	return t
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
