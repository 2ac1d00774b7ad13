package data

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// Site is a map marker for a wind farm. Coordinates are decorative: they are
// drawn from a seeded generator unless a sites file provides real ones.
type Site struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// SiteList represents a collection of sites
type SiteList struct {
	Seed      int64  `json:"seed"`
	UpdatedAt string `json:"updated_at"` // ISO 8601 timestamp
	Sites     []Site `json:"sites"`
}

// BoundingBox limits generated coordinates.
type BoundingBox struct {
	MinLat float64 `yaml:"min_lat" json:"min_lat"`
	MaxLat float64 `yaml:"max_lat" json:"max_lat"`
	MinLon float64 `yaml:"min_lon" json:"min_lon"`
	MaxLon float64 `yaml:"max_lon" json:"max_lon"`
}

// GenerateSites places each farm uniformly inside box using a generator seeded
// with seed, so the same names and seed always give the same coordinates.
func GenerateSites(names []string, seed int64, box BoundingBox) []Site {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Site, len(names))
	for i, name := range names {
		out[i] = Site{
			Name: name,
			Lat:  box.MinLat + rng.Float64()*(box.MaxLat-box.MinLat),
			Lon:  box.MinLon + rng.Float64()*(box.MaxLon-box.MinLon),
		}
	}
	return out
}

// MergeSites overlays known coordinates onto generated ones by farm name.
// Overrides for farms not in base are ignored.
func MergeSites(base, overrides []Site) []Site {
	byName := make(map[string]Site, len(overrides))
	for _, s := range overrides {
		byName[s.Name] = s
	}
	out := make([]Site, len(base))
	for i, s := range base {
		if o, ok := byName[s.Name]; ok {
			s.Lat, s.Lon = o.Lat, o.Lon
		}
		out[i] = s
	}
	return out
}

// LoadSites loads sites from a JSON file
func LoadSites(filePath string) (*SiteList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}

	var list SiteList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}

	return &list, nil
}

// SaveSites saves sites to a JSON file
func SaveSites(list *SiteList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sites: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write sites file: %w", err)
	}

	return nil
}
