// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns a location, preference keywords, and a budget into a
// ranked list of nearby places. It maps preferences to provider categories,
// geocodes the location, fans out category and keyword queries, then
// deduplicates, scores, and normalizes the results. When the provider is
// offline or returns too little, it falls back to synthetic places.
package search

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/seekspot/internal/geocode"
	"github.com/pdiddy/seekspot/internal/mock"
	"github.com/pdiddy/seekspot/internal/prefs"
	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/pkg/types"
)

// Source reports which stage produced a search's places.
type Source string

const (
	SourceNone     Source = "none"
	SourceProvider Source = "provider"
	SourceMock     Source = "mock"
)

// Output is a search result with diagnostics.
type Output struct {
	Request    types.SearchRequest
	Origin     types.Coordinate
	Categories []types.CategoryTag
	Source     Source
	// RawResults counts provider results before dedup and filtering.
	RawResults int
	// Secondary is true when the broader fan-out ran.
	Secondary bool
	Places    []types.Place
}

// Searcher runs the search pipeline. It is safe for concurrent use.
type Searcher struct {
	provider provider.Provider
	geocoder *geocode.Geocoder
	cfg      types.SearchConfig
	logger   *zap.Logger

	mu   sync.Mutex
	seed *rand.Rand
}

// New builds a Searcher. A nil geocoder is created over p with defaults; a
// nil logger discards output. Zero thresholds in cfg take their defaults,
// except MinScore where zero disables score filtering.
func New(p provider.Provider, g *geocode.Geocoder, cfg types.SearchConfig, logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if p == nil {
		p = provider.Offline{}
	}
	if g == nil {
		g = geocode.New(p, types.DefaultConfig().Geocoder, logger)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Searcher{
		provider: p,
		geocoder: g,
		cfg:      withDefaults(cfg),
		logger:   logger.Named("search"),
		seed:     rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func withDefaults(cfg types.SearchConfig) types.SearchConfig {
	def := types.DefaultSearchConfig()
	if cfg.MaxCategoryQueries <= 0 {
		cfg.MaxCategoryQueries = def.MaxCategoryQueries
	}
	if cfg.MaxSecondaryQueries <= 0 {
		cfg.MaxSecondaryQueries = def.MaxSecondaryQueries
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = def.QueryTimeout
	}
	if cfg.FilterThreshold <= 0 {
		cfg.FilterThreshold = def.FilterThreshold
	}
	if cfg.MinScore < 0 {
		cfg.MinScore = def.MinScore
	}
	if cfg.SecondaryThreshold <= 0 {
		cfg.SecondaryThreshold = def.SecondaryThreshold
	}
	if cfg.MinRawResults <= 0 {
		cfg.MinRawResults = def.MinRawResults
	}
	return cfg
}

// Config returns the effective configuration.
func (s *Searcher) Config() types.SearchConfig { return s.cfg }

// Provider returns the provider the pipeline queries.
func (s *Searcher) Provider() provider.Provider { return s.provider }

// Search returns places for req sorted by distance. It never fails: an
// empty slice is the only failure signal.
func (s *Searcher) Search(ctx context.Context, req types.SearchRequest) []types.Place {
	return s.Run(ctx, req).Places
}

// Run is Search with diagnostics.
func (s *Searcher) Run(ctx context.Context, req types.SearchRequest) (out Output) {
	req = req.Normalized()
	out = Output{Request: req, Source: SourceNone, Places: []types.Place{}}
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search panicked", zap.String("location", req.Location), zap.Any("panic", r))
			out = Output{Request: req, Source: SourceNone, Places: []types.Place{}}
		}
		s.logger.Info("search complete",
			zap.String("location", req.Location),
			zap.Strings("preferences", req.Preferences),
			zap.String("source", string(out.Source)),
			zap.Int("raw", out.RawResults),
			zap.Bool("secondary", out.Secondary),
			zap.Int("places", len(out.Places)),
			zap.Duration("elapsed", time.Since(start)))
	}()

	if req.Location == "" {
		return out
	}

	rng := s.newRand()
	out.Origin = s.geocoder.Resolve(ctx, req.Location)
	out.Categories = prefs.MapToCategories(req.Preferences)

	if !provider.IsAvailable(s.provider) {
		s.logger.Debug("provider offline; generating places", zap.String("provider", s.provider.Name()))
		return s.fallback(out, rng)
	}

	tier := MaxPriceTier(req.Budget)
	raw := s.FanOut(ctx, out.Origin, out.Categories, req.Preferences, req.RadiusMeters, tier)
	out.RawResults = len(raw)
	if ctx.Err() != nil {
		return out
	}
	if len(raw) < s.cfg.MinRawResults {
		s.logger.Debug("provider returned too few results; generating places", zap.Int("raw", len(raw)))
		return s.fallback(out, rng)
	}

	opts := NormalizeOptions{
		Origin:             out.Origin,
		Location:           req.Location,
		Budget:             req.Budget,
		Radius:             req.RadiusMeters,
		MaxPriceTier:       tier,
		FallbackCategories: prefs.Labels(req.Preferences),
		ImageTopic:         firstOr(req.Preferences, "place"),
		Distance:           s.provider.DistanceBetween,
	}
	ranked := Aggregate(raw, req.Preferences, out.Categories, s.cfg)
	places := make([]types.Place, 0, len(ranked))
	for i, r := range ranked {
		places = append(places, Normalize(r, i, opts, rng))
	}

	if len(places) < s.cfg.SecondaryThreshold {
		out.Secondary = true
		places = mergeByID(places, s.secondary(ctx, out.Origin, req, out.Categories, rng))
	}

	SortPlaces(places, ByDistance)
	out.Source = SourceProvider
	out.Places = places
	return out
}

// FanOut runs the primary category and keyword queries and returns their
// results in query order.
func (s *Searcher) FanOut(ctx context.Context, coord types.Coordinate, categories []types.CategoryTag, preferences []string, radius float64, tier int) []types.ProviderResult {
	queries := PrimaryQueries(coord, categories, preferences, radius, tier, s.cfg.MaxCategoryQueries)
	return Flatten(FanOut(ctx, s.provider, queries, s.cfg.QueryTimeout, s.logger))
}

func (s *Searcher) fallback(out Output, rng *rand.Rand) Output {
	req := out.Request
	out.Source = SourceMock
	out.Places = mock.NewGeneratorFromRand(rng).Generate(out.Origin, req.Location, req.Preferences, req.Budget, req.RadiusMeters)
	return out
}

// newRand derives an independent random source for one search so
// concurrent searches never share generator state.
func (s *Searcher) newRand() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewPCG(s.seed.Uint64(), s.seed.Uint64()))
}

// mergeByID appends the places from extra whose ID is not in base.
func mergeByID(base, extra []types.Place) []types.Place {
	seen := make(map[string]bool, len(base))
	for _, p := range base {
		seen[p.ID] = true
	}
	for _, p := range extra {
		if !seen[p.ID] {
			seen[p.ID] = true
			base = append(base, p)
		}
	}
	return base
}

func firstOr(items []string, def string) string {
	if len(items) > 0 {
		return items[0]
	}
	return def
}
