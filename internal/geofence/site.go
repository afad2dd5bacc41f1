package geofence

import (
	"encoding/json"
	"fmt"
	"os"
)

// Site is one registered office location. The list is static
// configuration loaded once at process start and never mutated.
type Site struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// LoadSites reads and validates the office site list from a JSON file.
// Order in the file is significant: overlapping sites are tie-broken by
// first match.
func LoadSites(path string) ([]Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read office sites config: %w", err)
	}

	var sites []Site
	if err := json.Unmarshal(raw, &sites); err != nil {
		return nil, fmt.Errorf("parse office sites config: %w", err)
	}

	if len(sites) == 0 {
		return nil, fmt.Errorf("office sites config %s is empty", path)
	}

	for i, s := range sites {
		if s.Name == "" {
			return nil, fmt.Errorf("office site %d has no name", i)
		}
		if s.RadiusMeters <= 0 {
			return nil, fmt.Errorf("office site %q has non-positive radius", s.Name)
		}
		if err := validateCoordinate(s.Latitude, s.Longitude); err != nil {
			return nil, fmt.Errorf("office site %q: %w", s.Name, err)
		}
	}

	return sites, nil
}
