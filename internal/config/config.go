package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"windfarm-analytics/internal/data"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Server   ServerConfig   `yaml:"server"`
	Sites    SitesConfig    `yaml:"sites"`
	Cache    CacheConfig    `yaml:"cache"`
}

type DataConfig struct {
	ProductionFile  string `yaml:"production_file"`
	ProductionSheet string `yaml:"production_sheet"`
	PriceFile       string `yaml:"price_file"`
	PriceSheet      string `yaml:"price_sheet"`
	// Timezone applies to timestamps written without an offset. In a zone
	// with daylight saving, the skipped spring hour is dropped as unparseable.
	Timezone string `yaml:"timezone"`
}

// DefaultsConfig holds the values the dashboard pre-selects. They are passed
// into each computation explicitly; nothing reads them from package state.
type DefaultsConfig struct {
	Year int    `yaml:"year"`
	Farm string `yaml:"farm"`
	TopN int    `yaml:"top_n"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Env         string   `yaml:"env"`
	StaticDir   string   `yaml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type SitesConfig struct {
	File string           `yaml:"file"`
	Seed int64            `yaml:"seed"`
	Box  data.BoundingBox `yaml:"bounding_box"`
}

type CacheConfig struct {
	// Disabled turns memoization off; every call recomputes from the files.
	Disabled bool `yaml:"disabled"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			ProductionFile: filepath.Join("data", "vindproduksjon.xlsx"),
			PriceFile:      filepath.Join("data", "NO2_price_2024.xlsx"),
			Timezone:       "UTC",
		},
		Defaults: DefaultsConfig{
			Year: 2024,
			Farm: "Høg-Jæren",
			TopN: 10,
		},
		Server: ServerConfig{
			Port:        "8080",
			StaticDir:   "./web/dist",
			CORSOrigins: []string{"*"},
		},
		Sites: SitesConfig{
			Seed: 42,
			// Southern Norway, roughly the NO2 price area.
			Box: data.BoundingBox{MinLat: 57.9, MaxLat: 59.9, MinLon: 5.4, MaxLon: 8.0},
		},
	}
}

// Load reads, merges with defaults, applies env overrides and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// An empty path yields the defaults. Relative data paths are resolved against
// the config file directory when the file exists there.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	c.Data.ProductionFile = resolveRelative(dir, c.Data.ProductionFile)
	c.Data.PriceFile = resolveRelative(dir, c.Data.PriceFile)
	c.Sites.File = resolveRelative(dir, c.Sites.File)
	return c, nil
}

// Prefer interpreting relative paths as relative to the config file directory,
// but fall back to the provided path (relative to cwd) if that doesn't exist.
func resolveRelative(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(dir, p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

// ApplyEnv overlays environment variables onto the loaded values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("PRODUCTION_FILE"); v != "" {
		c.Data.ProductionFile = v
	}
	if v := os.Getenv("PRICE_FILE"); v != "" {
		c.Data.PriceFile = v
	}
	if v := os.Getenv("SITES_FILE"); v != "" {
		c.Sites.File = v
	}
	if v := os.Getenv("DATA_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			c.Defaults.Year = year
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.ProductionFile == "" {
		return errors.New("data.production_file is required")
	}
	if c.Data.PriceFile == "" {
		return errors.New("data.price_file is required")
	}
	if _, err := time.LoadLocation(c.Data.Timezone); err != nil {
		return fmt.Errorf("data.timezone invalid: %w", err)
	}
	if c.Defaults.Year < 1900 || c.Defaults.Year > 9999 {
		return fmt.Errorf("defaults.year out of range: %d", c.Defaults.Year)
	}
	if c.Defaults.TopN < 0 {
		return errors.New("defaults.top_n must be >= 0")
	}
	b := c.Sites.Box
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return errors.New("sites.bounding_box min must not exceed max")
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}
