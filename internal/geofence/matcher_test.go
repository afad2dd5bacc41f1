package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSites = []Site{
	{Name: "Pallikaranai", Latitude: 12.94198577, Longitude: 80.21012198, RadiusMeters: 200},
	{Name: "Guindy", Latitude: 13.0067, Longitude: 80.2206, RadiusMeters: 150},
}

func TestMatch_ExactCenter(t *testing.T) {
	res, err := Match(12.94198577, 80.21012198, testSites)
	assert.NoError(t, err)
	assert.True(t, res.IsInside)
	assert.Equal(t, "Pallikaranai", res.OfficeName)
	assert.Equal(t, float64(0), res.DistanceMeters)
}

func TestMatch_FarFromAllSites(t *testing.T) {
	// ~5km north of Pallikaranai, well outside both radii.
	res, err := Match(12.987, 80.21012198, testSites)
	assert.NoError(t, err)
	assert.False(t, res.IsInside)
	assert.Equal(t, OutsideOffice, res.OfficeName)
}

func TestMatch_FirstMatchWinsOnOverlap(t *testing.T) {
	overlapping := []Site{
		{Name: "Wide", Latitude: 12.94198577, Longitude: 80.21012198, RadiusMeters: 10000},
		{Name: "Narrow", Latitude: 12.94198577, Longitude: 80.21012198, RadiusMeters: 100},
	}

	for i := 0; i < 5; i++ {
		res, err := Match(12.94198577, 80.21012198, overlapping)
		assert.NoError(t, err)
		assert.Equal(t, "Wide", res.OfficeName)
	}
}

func TestMatch_BoundaryIsInside(t *testing.T) {
	// A point just inside the radius counts as inside, just past it does not.
	site := []Site{{Name: "Edge", Latitude: 0, Longitude: 0, RadiusMeters: 1000}}

	inside, err := Match(0, 0.00895, site) // ~996m east on the equator
	assert.NoError(t, err)
	assert.True(t, inside.IsInside)

	outside, err := Match(0, 0.00910, site) // ~1012m east
	assert.NoError(t, err)
	assert.False(t, outside.IsInside)
}

func TestMatch_InvalidCoordinate(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 91, 0},
		{"lat too low", -91, 0},
		{"lon too high", 0, 181},
		{"lon too low", 0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Match(tc.lat, tc.lon, testSites)
			assert.ErrorIs(t, err, ErrInvalidLocation)
		})
	}
}

func TestParsePoint(t *testing.T) {
	lat, lon, err := ParsePoint("12.94198577, 80.21012198")
	assert.NoError(t, err)
	assert.Equal(t, 12.94198577, lat)
	assert.Equal(t, 80.21012198, lon)

	_, _, err = ParsePoint("not a point")
	assert.ErrorIs(t, err, ErrInvalidLocationFormat)

	_, _, err = ParsePoint("12.94")
	assert.ErrorIs(t, err, ErrInvalidLocationFormat)

	_, _, err = ParsePoint("12.94,80.21,3")
	assert.ErrorIs(t, err, ErrInvalidLocationFormat)

	_, _, err = ParsePoint("95.0,80.21")
	assert.Error(t, err)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Chennai central to Pallikaranai is roughly 14-15 km.
	d := haversineMeters(13.0827, 80.2707, 12.94198577, 80.21012198)
	assert.InDelta(t, 17000, d, 4000)
}
