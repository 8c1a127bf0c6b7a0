// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/pdiddy/seekspot/internal/prefs"
	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/pkg/types"
)

// plannedQuery is one secondary query plus how to treat its results.
type plannedQuery struct {
	query provider.NearbyQuery
	// keep post-filters results; nil keeps everything.
	keep func(types.ProviderResult) bool
	// fallback labels results that have no types.
	fallback []string
	topic    string
}

// secondaryPlan builds the broader search used when the primary one comes up
// short. Each preference gets one typed query per mapped tag (with the
// preference as keyword) and one untyped keyword query whose results must
// mention the preference by name or carry one of its tags. Without
// preferences the extended category list is queried instead. The plan is
// capped at limit queries.
func secondaryPlan(coord types.Coordinate, preferences []string, radius float64, tier, limit int) []plannedQuery {
	var plan []plannedQuery
	for _, pref := range preferences {
		tags := prefs.Lookup(pref)
		for _, tag := range tags {
			plan = append(plan, plannedQuery{
				query: provider.NearbyQuery{
					Location:     coord,
					RadiusMeters: radius,
					Category:     tag,
					Keyword:      pref,
					MaxPriceTier: tier,
				},
				fallback: []string{prefs.Label(string(tag))},
				topic:    pref,
			})
		}
		plan = append(plan, plannedQuery{
			query: provider.NearbyQuery{
				Location:     coord,
				RadiusMeters: radius,
				Keyword:      pref,
			},
			keep:     mentions(pref, tags),
			fallback: []string{prefs.Label(pref)},
			topic:    pref,
		})
	}
	if len(preferences) == 0 {
		for _, tag := range prefs.ExtendedCategories {
			plan = append(plan, plannedQuery{
				query: provider.NearbyQuery{
					Location:     coord,
					RadiusMeters: radius,
					Category:     tag,
					MaxPriceTier: tier,
				},
				fallback: []string{prefs.Label(string(tag))},
				topic:    string(tag),
			})
		}
	}
	if limit > 0 && len(plan) > limit {
		plan = plan[:limit]
	}
	return plan
}

// mentions reports whether a result names pref or carries one of tags.
func mentions(pref string, tags []types.CategoryTag) func(types.ProviderResult) bool {
	token := strings.ToLower(pref)
	return func(r types.ProviderResult) bool {
		if strings.Contains(strings.ToLower(r.Name), token) {
			return true
		}
		for _, t := range r.Types {
			if prefs.Contains(tags, t) {
				return true
			}
		}
		return false
	}
}

// secondary runs the broader search and returns normalized, deduplicated
// places that pass the relevance filter.
func (s *Searcher) secondary(ctx context.Context, origin types.Coordinate, req types.SearchRequest, mapped []types.CategoryTag, rng *rand.Rand) []types.Place {
	tier := MaxPriceTier(req.Budget)
	plan := secondaryPlan(origin, req.Preferences, req.RadiusMeters, tier, s.cfg.MaxSecondaryQueries)

	queries := make([]provider.NearbyQuery, len(plan))
	for i, pq := range plan {
		queries[i] = pq.query
	}
	slots := FanOut(ctx, s.provider, queries, s.cfg.QueryTimeout, s.logger)

	seen := make(map[string]bool)
	var places []types.Place
	for i, results := range slots {
		pq := plan[i]
		opts := NormalizeOptions{
			Origin:             origin,
			Location:           req.Location,
			Budget:             req.Budget,
			Radius:             req.RadiusMeters,
			MaxPriceTier:       tier,
			FallbackCategories: pq.fallback,
			ImageTopic:         pq.topic,
			Distance:           s.provider.DistanceBetween,
		}
		for j, r := range results {
			if pq.keep != nil && !pq.keep(r) {
				continue
			}
			p := Normalize(r, j, opts, rng)
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			places = append(places, p)
		}
	}
	return relevant(places, req.Preferences, mapped, s.cfg.SecondaryThreshold)
}

// relevant keeps places whose name or a category label contains a
// preference, or whose category matches a mapped tag. When fewer than
// minKeep places were found, or there are no preferences, everything is kept.
func relevant(places []types.Place, preferences []string, mapped []types.CategoryTag, minKeep int) []types.Place {
	if len(preferences) == 0 || len(places) < minKeep {
		return places
	}
	out := make([]types.Place, 0, len(places))
	for _, p := range places {
		if matchesPreference(p, preferences, mapped) {
			out = append(out, p)
		}
	}
	return out
}

func matchesPreference(p types.Place, preferences []string, mapped []types.CategoryTag) bool {
	name := strings.ToLower(p.Name)
	for _, pref := range preferences {
		token := strings.ToLower(pref)
		if strings.Contains(name, token) {
			return true
		}
		for _, c := range p.Categories {
			if strings.Contains(strings.ToLower(c), token) {
				return true
			}
		}
	}
	for _, c := range p.Categories {
		tag := strings.ReplaceAll(strings.ToLower(c), " ", "_")
		if prefs.Contains(mapped, tag) {
			return true
		}
	}
	return false
}
