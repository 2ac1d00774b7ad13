package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBox = BoundingBox{MinLat: 58, MaxLat: 59, MinLon: 5, MaxLon: 7}

func TestGenerateSites(t *testing.T) {
	names := []string{"Alpha", "Bravo", "Charlie"}

	a := GenerateSites(names, 42, testBox)
	b := GenerateSites(names, 42, testBox)
	assert.Equal(t, a, b)

	for i, s := range a {
		assert.Equal(t, names[i], s.Name)
		assert.GreaterOrEqual(t, s.Lat, testBox.MinLat)
		assert.LessOrEqual(t, s.Lat, testBox.MaxLat)
		assert.GreaterOrEqual(t, s.Lon, testBox.MinLon)
		assert.LessOrEqual(t, s.Lon, testBox.MaxLon)
	}

	assert.NotEqual(t, a, GenerateSites(names, 7, testBox))
}

func TestMergeSites(t *testing.T) {
	base := GenerateSites([]string{"Alpha", "Bravo"}, 42, testBox)
	merged := MergeSites(base, []Site{
		{Name: "Bravo", Lat: 58.5, Lon: 6.5},
		{Name: "Zulu", Lat: 1, Lon: 1},
	})
	require.Len(t, merged, 2)
	assert.Equal(t, base[0], merged[0])
	assert.Equal(t, Site{Name: "Bravo", Lat: 58.5, Lon: 6.5}, merged[1])
}

func TestSaveLoadSites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sites.json")
	list := &SiteList{Seed: 42, UpdatedAt: "2024-01-01T00:00:00Z", Sites: GenerateSites([]string{"Alpha"}, 42, testBox)}
	require.NoError(t, SaveSites(list, path))

	got, err := LoadSites(path)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	_, err = LoadSites(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
