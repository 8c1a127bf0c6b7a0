// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"
	"strings"

	"github.com/pdiddy/seekspot/pkg/types"
)

// Score weights.
const (
	typeMatchPoints     = 5
	nameMatchPoints     = 3
	vicinityMatchPoints = 1
	photoPoints         = 2
	ratingPoints        = 2
	highRating          = 4.0
)

// Dedup drops results whose ProviderID was already seen; the first
// occurrence wins. Results without an ID are always kept.
func Dedup(results []types.ProviderResult) []types.ProviderResult {
	seen := make(map[string]bool, len(results))
	out := make([]types.ProviderResult, 0, len(results))
	for _, r := range results {
		if r.ProviderID != "" {
			if seen[r.ProviderID] {
				continue
			}
			seen[r.ProviderID] = true
		}
		out = append(out, r)
	}
	return out
}

// Score rates how well r matches the request. Every matching type and every
// matching preference token adds points independently.
func Score(r types.ProviderResult, preferences []string, mapped []types.CategoryTag) int {
	mappedSet := make(map[string]bool, len(mapped))
	for _, tag := range mapped {
		mappedSet[string(tag)] = true
	}

	score := 0
	for _, t := range r.Types {
		if mappedSet[t] {
			score += typeMatchPoints
		}
	}

	name := strings.ToLower(r.Name)
	vicinity := strings.ToLower(r.Vicinity)
	for _, p := range preferences {
		token := strings.ToLower(strings.TrimSpace(p))
		if token == "" {
			continue
		}
		if strings.Contains(name, token) {
			score += nameMatchPoints
		}
		if strings.Contains(vicinity, token) {
			score += vicinityMatchPoints
		}
	}

	if r.PhotoAvailable() {
		score += photoPoints
	}
	if r.Rating != nil && *r.Rating >= highRating {
		score += ratingPoints
	}
	return score
}

// Rank deduplicates and scores results, returning them by descending score.
// Equal scores keep their post-dedup order.
func Rank(raw []types.ProviderResult, preferences []string, mapped []types.CategoryTag) []types.ScoredResult {
	unique := Dedup(raw)
	scored := make([]types.ScoredResult, len(unique))
	for i, r := range unique {
		scored[i] = types.ScoredResult{Result: r, Score: Score(r, preferences, mapped)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Aggregate ranks raw results and, when more than cfg.FilterThreshold
// remain, drops those scoring below cfg.MinScore. Small result sets are
// kept whole so sparse areas still return something.
func Aggregate(raw []types.ProviderResult, preferences []string, mapped []types.CategoryTag, cfg types.SearchConfig) []types.ProviderResult {
	scored := Rank(raw, preferences, mapped)
	filter := len(scored) > cfg.FilterThreshold

	out := make([]types.ProviderResult, 0, len(scored))
	for _, s := range scored {
		if filter && s.Score < cfg.MinScore {
			continue
		}
		out = append(out, s.Result)
	}
	return out
}
