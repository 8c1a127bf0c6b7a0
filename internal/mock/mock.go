// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mock synthesizes plausible places around a coordinate. The search
// pipeline uses it when the live provider is offline or returns too little
// to work with. Output is fully formed, needs no network, and is
// reproducible for a fixed seed.
package mock

import (
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/seekspot/internal/geo"
	"github.com/pdiddy/seekspot/internal/locale"
	"github.com/pdiddy/seekspot/internal/prefs"
	"github.com/pdiddy/seekspot/pkg/types"
)

// Count bounds: each call generates MinPlaces + IntN(PlaceSpread) places.
const (
	MinPlaces   = 30
	PlaceSpread = 20
)

type nameTemplate struct {
	prefixes []string
	suffixes []string
}

var hotelTemplate = nameTemplate{
	prefixes: []string{"Grand", "Royal", "Luxury", "Comfort", "Premium"},
	suffixes: []string{"Hotel", "Inn", "Suites", "Resort", "Lodge"},
}

var templates = map[types.CategoryTag]nameTemplate{
	"restaurant": {
		prefixes: []string{"Gourmet", "Tasty", "Delicious", "Savory", "Fresh", "Organic"},
		suffixes: []string{"Restaurant", "Eatery", "Bistro", "Kitchen", "Grill", "Diner"},
	},
	"cafe": {
		prefixes: []string{"Cozy", "Morning", "Sunny", "Artisan", "Brew"},
		suffixes: []string{"Cafe", "Coffee", "Espresso", "Bakery", "Roasters"},
	},
	"bar": {
		prefixes: []string{"Vintage", "Classic", "Urban", "Night", "Craft"},
		suffixes: []string{"Bar", "Lounge", "Pub", "Tavern", "Spirits"},
	},
	"hotel":   hotelTemplate,
	"lodging": hotelTemplate,
	"spa": {
		prefixes: []string{"Tranquil", "Serene", "Relaxing", "Zen", "Peaceful"},
		suffixes: []string{"Spa", "Wellness", "Retreat", "Massage", "Relaxation"},
	},
	"gym": {
		prefixes: []string{"Power", "Fitness", "Strong", "Elite", "Active"},
		suffixes: []string{"Gym", "Fitness", "Training", "Athletics", "Club"},
	},
	"shopping_mall": {
		prefixes: []string{"Grand", "City", "Metro", "Central", "Plaza"},
		suffixes: []string{"Mall", "Center", "Galleria", "Shops", "Outlets"},
	},
	"park": {
		prefixes: []string{"Green", "Central", "Memorial", "City", "National"},
		suffixes: []string{"Park", "Gardens", "Reserve", "Fields", "Commons"},
	},
	"museum": {
		prefixes: []string{"National", "Modern", "Contemporary", "Historical", "Science"},
		suffixes: []string{"Museum", "Gallery", "Exhibition", "Collection", "Center"},
	},
	"hospital": {
		prefixes: []string{"General", "Community", "Memorial", "Regional", "University"},
		suffixes: []string{"Hospital", "Medical Center", "Clinic", "Care", "Health"},
	},
}

var (
	genericPrefixes = []string{
		"The", "Royal", "Golden", "Silver", "Blue", "Red", "Green",
		"Vintage", "Urban", "Downtown", "Uptown", "Classic", "Modern",
		"Fusion", "Artisan", "Gourmet", "Premium", "Elite", "Local",
	}
	genericSuffixes = []string{
		"House", "Spot", "Place", "Corner", "Junction", "Hub",
		"Lounge", "Grill", "Kitchen", "Eatery", "Diner", "Bistro",
	}
	defaultCategories = []string{"Restaurant", "Bar", "Cafe", "Bistro", "Pub"}
)

// Generator produces synthetic places. It is not safe for concurrent use
// because it owns a single random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. Zero seeds from the
// clock.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewGeneratorFromRand wraps an existing random source.
func NewGeneratorFromRand(r *rand.Rand) *Generator {
	return &Generator{rng: r}
}

// PriceTier derives the coarse tier used for synthetic places:
// ceil(budget/125) clamped to 1..4.
func PriceTier(budget float64) int {
	tier := int(math.Ceil(budget / 125))
	return min(4, max(1, tier))
}

// Generate returns between MinPlaces and MinPlaces+PlaceSpread-1 places
// around origin, sorted by distance. Every place lies strictly inside
// radius meters and costs no more than budget.
func (g *Generator) Generate(origin types.Coordinate, location string, preferences []string, budget, radius float64) []types.Place {
	tags := prefs.MapToCategories(preferences)
	categories := defaultCategories
	if len(preferences) > 0 {
		categories = prefs.Labels(preferences)
	}
	streets := locale.Streets.Lookup(location)
	tier := PriceTier(budget)

	n := MinPlaces + g.rng.IntN(PlaceSpread)
	places := make([]types.Place, 0, n)
	for i := range n {
		distance := g.rng.Float64() * radius
		bearing := g.rng.Float64() * 2 * math.Pi
		pos := geo.Offset(origin, distance, bearing)

		tag := tags[g.rng.IntN(len(tags))]
		name := g.name(tag, categories, location, i)
		address := fmt.Sprintf("%d %s", 100+g.rng.IntN(900), pick(g.rng, streets))
		rating := 3.5 + g.rng.Float64()*1.5

		labels := []string{prefs.Label(string(tag))}
		switch tag {
		case "restaurant":
			labels = append(labels, pick(g.rng, locale.Cuisines.Lookup(location)))
		case "bar":
			labels = append(labels, pick(g.rng, locale.BarTypes.Lookup(location)))
		}

		places = append(places, types.Place{
			ID:         fmt.Sprintf("mock-%d", i),
			Name:       name,
			Address:    address,
			City:       location,
			Categories: labels,
			Rating:     fmt.Sprintf("%.1f", rating),
			Price:      g.price(budget),
			PriceTier:  tier,
			Distance:   distance,
			Latitude:   pos.Latitude,
			Longitude:  pos.Longitude,
			ImageURL:   ImageURL(string(tag), location),
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Distance < places[j].Distance
	})
	return places
}

// price picks a whole amount in [max(10, 0.3*budget), 0.9*budget). Budgets
// too small for that band are clamped so the result never exceeds budget.
func (g *Generator) price(budget float64) float64 {
	lo := math.Max(10, 0.3*budget)
	hi := 0.9 * budget
	p := math.Floor(lo + g.rng.Float64()*(hi-lo))
	return math.Max(0, math.Min(p, budget))
}

func (g *Generator) name(tag types.CategoryTag, categories []string, location string, i int) string {
	if t, ok := templates[tag]; ok {
		base := pick(g.rng, t.prefixes) + " " + pick(g.rng, t.suffixes)
		if g.rng.Float64() > 0.5 {
			return base
		}
		return "The " + base
	}

	usePrefix := g.rng.Float64() > 0.3
	useSuffix := g.rng.Float64() > 0.4

	var parts []string
	if usePrefix {
		parts = append(parts, pick(g.rng, genericPrefixes))
	}
	if g.rng.Float64() > 0.5 {
		parts = append(parts, pick(g.rng, categories))
	} else if tag == types.Restaurant {
		parts = append(parts, pick(g.rng, locale.Cuisines.Lookup(location)))
	}
	if useSuffix {
		parts = append(parts, pick(g.rng, genericSuffixes))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s %d", prefs.Label(string(tag)), i+1)
	}
	return strings.Join(parts, " ")
}

// ImageURL returns a placeholder image URL keyed by topic and location.
func ImageURL(topic, location string) string {
	terms := []string{url.QueryEscape(strings.ToLower(topic))}
	if location != "" {
		terms = append(terms, url.QueryEscape(strings.ToLower(location)))
	}
	return "https://source.unsplash.com/random/800x600/?" + strings.Join(terms, ",")
}

func pick(r *rand.Rand, items []string) string {
	return items[r.IntN(len(items))]
}
