// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geo provides great-circle distance and the flat-earth offset used
// to place synthetic points around an origin.
package geo

import (
	"math"

	"github.com/pdiddy/seekspot/pkg/types"
)

// EarthRadiusMeters matches the sphere used by the Google Maps geometry
// library, so computed distances agree with provider-side values.
const EarthRadiusMeters = 6378137.0

// MetersPerDegreeLat is the approximation used for offsets: 111,111 m ≈ 1°.
const MetersPerDegreeLat = 111111.0

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b types.Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h a hair past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Offset moves origin by meters along bearing (radians, 0 = north,
// clockwise) using the meters-to-degrees approximation. Longitude is scaled
// by cos(latitude) of the origin.
func Offset(origin types.Coordinate, meters, bearing float64) types.Coordinate {
	latOffset := meters / MetersPerDegreeLat * math.Cos(bearing)
	lngOffset := meters / (MetersPerDegreeLat * math.Cos(radians(origin.Latitude))) * math.Sin(bearing)
	return types.Coordinate{
		Latitude:  origin.Latitude + latOffset,
		Longitude: origin.Longitude + lngOffset,
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
