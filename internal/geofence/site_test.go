package geofence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeSitesFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "office_sites.json")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSites(t *testing.T) {
	path := writeSitesFile(t, `[
		{"name": "Pallikaranai", "latitude": 12.94198577, "longitude": 80.21012198, "radius_meters": 200},
		{"name": "Guindy", "latitude": 13.0067, "longitude": 80.2206, "radius_meters": 150}
	]`)

	sites, err := LoadSites(path)
	assert.NoError(t, err)
	assert.Len(t, sites, 2)
	assert.Equal(t, "Pallikaranai", sites[0].Name)
	assert.Equal(t, float64(200), sites[0].RadiusMeters)
}

func TestLoadSites_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty list", `[]`},
		{"zero radius", `[{"name": "X", "latitude": 1, "longitude": 1, "radius_meters": 0}]`},
		{"negative radius", `[{"name": "X", "latitude": 1, "longitude": 1, "radius_meters": -5}]`},
		{"missing name", `[{"latitude": 1, "longitude": 1, "radius_meters": 100}]`},
		{"bad latitude", `[{"name": "X", "latitude": 120, "longitude": 1, "radius_meters": 100}]`},
		{"not json", `radius: 5`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSites(writeSitesFile(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadSites_MissingFile(t *testing.T) {
	_, err := LoadSites(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
