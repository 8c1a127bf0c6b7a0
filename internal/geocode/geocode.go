// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geocode resolves free-text locations to coordinates. A live
// provider lookup is tried first under a bounded timeout; on any failure the
// static city table is consulted, and an unknown location resolves to New
// York. Resolve never fails.
package geocode

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/pdiddy/seekspot/internal/locale"
	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/pkg/types"
)

const defaultTimeout = 5 * time.Second

// Source reports where a resolved coordinate came from.
type Source string

const (
	SourceProvider Source = "provider"
	SourceCache    Source = "cache"
	SourceTable    Source = "table"
	SourceDefault  Source = "default"
)

// Geocoder wraps a maps provider with caching and the static fallback.
type Geocoder struct {
	provider provider.Provider
	timeout  time.Duration
	cache    *cache.Cache
	logger   *zap.Logger
}

// New builds a Geocoder. A nil provider behaves like an offline one; a nil
// logger discards output.
func New(p provider.Provider, cfg types.GeocoderConfig, logger *zap.Logger) *Geocoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Geocoder{
		provider: p,
		timeout:  timeout,
		cache:    cache.New(ttl, 10*time.Minute),
		logger:   logger.Named("geocode"),
	}
}

// Resolve returns the coordinate for text.
func (g *Geocoder) Resolve(ctx context.Context, text string) types.Coordinate {
	coord, _ := g.ResolveWithSource(ctx, text)
	return coord
}

// ResolveWithSource is Resolve that also reports which stage answered.
func (g *Geocoder) ResolveWithSource(ctx context.Context, text string) (types.Coordinate, Source) {
	key := strings.ToLower(strings.TrimSpace(text))
	if v, ok := g.cache.Get(key); ok {
		return v.(types.Coordinate), SourceCache
	}

	if coord, ok := g.lookup(ctx, text); ok {
		g.cache.Set(key, coord, cache.DefaultExpiration)
		return coord, SourceProvider
	}

	if coord, ok := locale.Cities.Match(key); ok {
		g.logger.Debug("resolved from city table", zap.String("location", text))
		return coord, SourceTable
	}

	g.logger.Debug("no match for location; using default", zap.String("location", text))
	return locale.NewYork, SourceDefault
}

func (g *Geocoder) lookup(ctx context.Context, text string) (types.Coordinate, bool) {
	if !provider.IsAvailable(g.provider) {
		return types.Coordinate{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	coords, err := g.provider.Geocode(ctx, text)
	if err != nil {
		g.logger.Warn("live geocode failed", zap.String("location", text), zap.Error(err))
		return types.Coordinate{}, false
	}
	if len(coords) == 0 {
		g.logger.Debug("live geocode returned no results", zap.String("location", text))
		return types.Coordinate{}, false
	}
	return coords[0], true
}
