package geofence

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
)

// OutsideOffice is the office tag recorded when a point matches no site.
const OutsideOffice = "Outside Office"

const earthRadiusMeters = 6371000

var (
	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidInput,
		"coordinate out of range",
		http.StatusBadRequest,
	)
	ErrInvalidLocationFormat = apperror.New(
		apperror.CodeInvalidInput,
		"location must be two comma-separated decimal degrees",
		http.StatusBadRequest,
	)
)

type MatchResult struct {
	OfficeName     string
	IsInside       bool
	DistanceMeters float64 // distance to the matched site center, 0 when outside
}

// Match resolves a GPS point against the configured sites in list order
// and returns the first site whose radius encloses the point. Sites may
// overlap; list order is the tie-break.
func Match(lat, lon float64, sites []Site) (MatchResult, error) {
	if err := validateCoordinate(lat, lon); err != nil {
		return MatchResult{}, err
	}

	for _, s := range sites {
		d := haversineMeters(lat, lon, s.Latitude, s.Longitude)
		if d <= s.RadiusMeters {
			return MatchResult{
				OfficeName:     s.Name,
				IsInside:       true,
				DistanceMeters: d,
			}, nil
		}
	}

	return MatchResult{OfficeName: OutsideOffice}, nil
}

// ParsePoint parses a "lat,lon" request string into decimal degrees.
func ParsePoint(raw string) (lat, lon float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidLocationFormat
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrInvalidLocationFormat
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrInvalidLocationFormat
	}

	if err := validateCoordinate(lat, lon); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func validateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return ErrInvalidLocation
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidLocation
	}
	return nil
}

// haversineMeters computes the great-circle surface distance between two
// points on the WGS84 sphere approximation.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
