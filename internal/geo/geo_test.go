package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/seekspot/pkg/types"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    types.Coordinate
		want    float64
		epsilon float64
	}{
		{"same point", types.Coordinate{Latitude: 40.7128, Longitude: -74.006}, types.Coordinate{Latitude: 40.7128, Longitude: -74.006}, 0, 1e-9},
		{"one degree of latitude", types.Coordinate{}, types.Coordinate{Latitude: 1}, 111319.49, 1},
		{"paris to london", types.Coordinate{Latitude: 48.8566, Longitude: 2.3522}, types.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, 344000, 2000},
		{"kadikoy to besiktas", types.Coordinate{Latitude: 40.9906, Longitude: 29.0306}, types.Coordinate{Latitude: 41.0422, Longitude: 29.0083}, 6030, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.epsilon)
			assert.InDelta(t, got, Distance(tt.b, tt.a), 1e-6, "distance should be symmetric")
		})
	}
}

func TestDistanceAntipodal(t *testing.T) {
	d := Distance(types.Coordinate{Latitude: 0, Longitude: 0}, types.Coordinate{Latitude: 0, Longitude: 180})
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1)
}

func TestOffsetMatchesDistance(t *testing.T) {
	origins := []types.Coordinate{
		{Latitude: 48.8566, Longitude: 2.3522},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 59.9139, Longitude: 10.7522},
	}
	for _, origin := range origins {
		for _, meters := range []float64{0, 150, 1999, 4800} {
			for _, bearing := range []float64{0, math.Pi / 3, math.Pi, 5.5} {
				p := Offset(origin, meters, bearing)
				// The 111,111 m/° approximation differs from the sphere by
				// well under 1% at city scale.
				assert.InDelta(t, meters, Distance(origin, p), meters*0.01+0.5)
			}
		}
	}
}

func TestOffsetNorth(t *testing.T) {
	p := Offset(types.Coordinate{Latitude: 10, Longitude: 20}, MetersPerDegreeLat, 0)
	assert.InDelta(t, 11.0, p.Latitude, 1e-9)
	assert.InDelta(t, 20.0, p.Longitude, 1e-9)
}
