// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/pkg/types"
)

// MaxPriceTier maps a budget to the provider's 1..4 price ceiling.
func MaxPriceTier(budget float64) int {
	switch {
	case budget <= 30:
		return 1
	case budget <= 60:
		return 2
	case budget <= 100:
		return 3
	default:
		return 4
	}
}

// PrimaryQueries builds the primary fan-out: one category query for each of
// the first maxCategories tags, then one keyword query per preference.
func PrimaryQueries(coord types.Coordinate, categories []types.CategoryTag, preferences []string, radius float64, tier, maxCategories int) []provider.NearbyQuery {
	n := len(categories)
	if maxCategories > 0 && n > maxCategories {
		n = maxCategories
	}
	queries := make([]provider.NearbyQuery, 0, n+len(preferences))
	for _, tag := range categories[:n] {
		queries = append(queries, provider.NearbyQuery{
			Location:     coord,
			RadiusMeters: radius,
			Category:     tag,
			MaxPriceTier: tier,
		})
	}
	for _, pref := range preferences {
		queries = append(queries, provider.NearbyQuery{
			Location:     coord,
			RadiusMeters: radius,
			Keyword:      pref,
			MaxPriceTier: tier,
		})
	}
	return queries
}

// FanOut runs every query concurrently and returns one result slot per
// query, in query order. Each query gets its own timeout derived from ctx.
// A query that errors, times out, or panics leaves its slot empty; the
// others are unaffected.
func FanOut(ctx context.Context, p provider.Provider, queries []provider.NearbyQuery, timeout time.Duration, logger *zap.Logger) [][]types.ProviderResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	slots := make([][]types.ProviderResult, len(queries))
	if p == nil {
		return slots
	}

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q provider.NearbyQuery) {
			defer wg.Done()
			results, err := runQuery(ctx, p, q, timeout)
			if err != nil {
				logger.Warn("query failed", zap.String("provider", p.Name()), zap.String("query", q.Label()), zap.Error(err))
				return
			}
			slots[i] = results
		}(i, q)
	}
	wg.Wait()
	return slots
}

func runQuery(ctx context.Context, p provider.Provider, q provider.NearbyQuery, timeout time.Duration) (results []types.ProviderResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results, err = nil, fmt.Errorf("query panicked: %v", r)
		}
	}()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return p.NearbySearch(ctx, q)
}

// Flatten concatenates slots in order.
func Flatten(slots [][]types.ProviderResult) []types.ProviderResult {
	var n int
	for _, s := range slots {
		n += len(s)
	}
	out := make([]types.ProviderResult, 0, n)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out
}
