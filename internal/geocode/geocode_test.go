// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/seekspot/internal/locale"
	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/pkg/types"
)

// fakeProvider answers Geocode from fixed values and counts calls.
type fakeProvider struct {
	provider.Offline
	coords []types.Coordinate
	err    error
	delay  time.Duration
	calls  int
}

func (f *fakeProvider) Available() bool { return true }

func (f *fakeProvider) Geocode(ctx context.Context, _ string) ([]types.Coordinate, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.coords, f.err
}

var kadikoy = types.Coordinate{Latitude: 40.9906, Longitude: 29.0306}

func TestResolve_OfflineUsesTable(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     types.Coordinate
		source   Source
	}{
		{"district beats city", "Kadikoy, Istanbul", kadikoy, SourceTable},
		{"case insensitive", "PARIS, France", types.Coordinate{Latitude: 48.8566, Longitude: 2.3522}, SourceTable},
		{"unknown falls back to New York", "Atlantis", locale.NewYork, SourceDefault},
	}
	g := New(provider.Offline{}, types.GeocoderConfig{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src := g.ResolveWithSource(context.Background(), tt.location)
			assert.InDelta(t, tt.want.Latitude, got.Latitude, 1e-9)
			assert.InDelta(t, tt.want.Longitude, got.Longitude, 1e-9)
			assert.Equal(t, tt.source, src)
		})
	}
}

func TestResolve_NilProvider(t *testing.T) {
	g := New(nil, types.GeocoderConfig{}, nil)
	assert.Equal(t, kadikoy, g.Resolve(context.Background(), "kadikoy"))
}

func TestResolve_LiveResultIsCached(t *testing.T) {
	live := types.Coordinate{Latitude: 1.5, Longitude: 2.5}
	fp := &fakeProvider{coords: []types.Coordinate{live, {Latitude: 9, Longitude: 9}}}
	g := New(fp, types.GeocoderConfig{CacheTTL: time.Minute}, nil)

	got, src := g.ResolveWithSource(context.Background(), "Somewhere")
	assert.Equal(t, live, got)
	assert.Equal(t, SourceProvider, src)

	got, src = g.ResolveWithSource(context.Background(), "  somewhere ")
	assert.Equal(t, live, got)
	assert.Equal(t, SourceCache, src)
	assert.Equal(t, 1, fp.calls)
}

func TestResolve_LiveFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		fp   *fakeProvider
	}{
		{"provider error", &fakeProvider{err: errors.New("boom")}},
		{"zero results", &fakeProvider{}},
		{"timeout", &fakeProvider{coords: []types.Coordinate{{Latitude: 1, Longitude: 1}}, delay: time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.fp, types.GeocoderConfig{Timeout: 20 * time.Millisecond}, nil)
			got, src := g.ResolveWithSource(context.Background(), "Kadikoy, Istanbul")
			assert.Equal(t, kadikoy, got)
			assert.Equal(t, SourceTable, src)
		})
	}
}

func TestResolve_FallbackIsNotCached(t *testing.T) {
	fp := &fakeProvider{err: errors.New("down")}
	g := New(fp, types.GeocoderConfig{}, nil)
	g.Resolve(context.Background(), "Rome")
	g.Resolve(context.Background(), "Rome")
	assert.Equal(t, 2, fp.calls)
}
