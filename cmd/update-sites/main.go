package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"windfarm-analytics/internal/config"
	"windfarm-analytics/internal/data"
)

func main() {
	var (
		cfgPath    = flag.String("config", "", "Path to YAML config")
		outputPath = flag.String("output", "", "Output file path (default: sites.file from config, else ./data/sites.json)")
		seedFile   = flag.String("seed-file", "", "Existing sites file whose coordinates override generated ones")
		seed       = flag.Int64("seed", 0, "Generator seed (default: sites.seed from config)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *outputPath == "" {
		*outputPath = cfg.Sites.File
	}
	if *outputPath == "" {
		*outputPath = "data/sites.json"
	}
	if *seed == 0 {
		*seed = cfg.Sites.Seed
	}

	parser, err := data.NewTimeParser(cfg.Data.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}
	raw, err := data.LoadRaw(cfg.Data.ProductionFile, cfg.Data.ProductionSheet)
	if err != nil {
		log.Fatalf("Failed to read production file: %v", err)
	}
	table, err := data.Normalize(raw, parser)
	if err != nil {
		log.Fatalf("Failed to read production file: %v", err)
	}

	fmt.Printf("Generating sites for %d farms (seed %d)\n", len(table.Columns), *seed)
	sites := data.GenerateSites(table.Columns, *seed, cfg.Sites.Box)

	// Keep coordinates that were already curated by hand
	existing := *seedFile
	if existing == "" {
		existing = *outputPath
	}
	if list, err := data.LoadSites(existing); err == nil {
		sites = data.MergeSites(sites, list.Sites)
		fmt.Printf("Merged %d known sites from %s\n", len(list.Sites), existing)
	}

	list := &data.SiteList{
		Seed:      *seed,
		UpdatedAt: time.Now().Format(time.RFC3339),
		Sites:     sites,
	}
	if err := data.SaveSites(list, *outputPath); err != nil {
		log.Fatalf("Failed to save sites: %v", err)
	}

	fmt.Printf("Saved %d sites to %s\n", len(sites), *outputPath)
}
