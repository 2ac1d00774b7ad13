package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Empty path gives defaults", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2024, c.Defaults.Year)
		assert.Equal(t, "Høg-Jæren", c.Defaults.Farm)
		assert.Equal(t, 10, c.Defaults.TopN)
		assert.Equal(t, "UTC", c.Data.Timezone)
		assert.Equal(t, int64(42), c.Sites.Seed)
	})

	t.Run("File values merge over defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.csv"), []byte("x"), 0o644))
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
data:
  production_file: prod.csv
  price_file: /abs/prices.xlsx
defaults:
  year: 2023
  farm: Bjerkreim
cache:
  disabled: true
`), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		// Resolved against the config directory because the file exists there.
		assert.Equal(t, filepath.Join(dir, "prod.csv"), c.Data.ProductionFile)
		assert.Equal(t, "/abs/prices.xlsx", c.Data.PriceFile)
		assert.Equal(t, 2023, c.Defaults.Year)
		assert.Equal(t, "Bjerkreim", c.Defaults.Farm)
		assert.Equal(t, 10, c.Defaults.TopN)
		assert.True(t, c.Cache.Disabled)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("API_PORT", "9090")
		t.Setenv("PRICE_FILE", "other.csv")
		t.Setenv("DATA_YEAR", "2022")
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "9090", c.Server.Port)
		assert.Equal(t, "other.csv", c.Data.PriceFile)
		assert.Equal(t, 2022, c.Defaults.Year)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data: [unterminated"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"no production file": func(c *Config) { c.Data.ProductionFile = "" },
		"no price file":      func(c *Config) { c.Data.PriceFile = "" },
		"bad timezone":       func(c *Config) { c.Data.Timezone = "Nowhere/Else" },
		"year":               func(c *Config) { c.Defaults.Year = 12 },
		"top n":              func(c *Config) { c.Defaults.TopN = -1 },
		"bounding box":       func(c *Config) { c.Sites.Box.MinLat = 80 },
	}
	for name, mutate := range cases {
		c := Default()
		mutate(c)
		assert.Error(t, c.Validate(), name)
	}

	assert.NoError(t, Default().Validate())
	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
