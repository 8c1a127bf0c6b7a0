// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/pdiddy/seekspot/internal/geo"
	"github.com/pdiddy/seekspot/internal/mock"
	"github.com/pdiddy/seekspot/internal/prefs"
	"github.com/pdiddy/seekspot/pkg/types"
)

// NormalizeOptions carries the request context a provider result is
// normalized against.
type NormalizeOptions struct {
	Origin   types.Coordinate
	Location string
	Budget   float64
	Radius   float64

	// MaxPriceTier bounds the random tier assigned when the provider gave
	// no price level.
	MaxPriceTier int

	// FallbackCategories label results the provider returned without types.
	FallbackCategories []string

	// ImageTopic keys the placeholder image for results without a photo.
	ImageTopic string

	// Distance measures origin to result in meters. Nil uses geo.Distance.
	Distance func(a, b types.Coordinate) float64
}

// Normalize converts a provider result into a Place. Missing optional
// fields are synthesized from rng; index numbers unnamed places.
func Normalize(res types.ProviderResult, index int, opts NormalizeOptions, rng *rand.Rand) types.Place {
	p := types.Place{
		ID:       res.ProviderID,
		Name:     res.Name,
		Address:  res.Vicinity,
		City:     opts.Location,
		ImageURL: res.PhotoURL,
	}
	if p.ID == "" {
		p.ID = "place-" + uuid.NewString()
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("Place %d", index+1)
	}
	if p.Address == "" {
		p.Address = "Address in " + opts.Location
	}

	p.Categories = prefs.Labels(res.Types)
	if len(p.Categories) == 0 {
		p.Categories = opts.FallbackCategories
	}
	if len(p.Categories) == 0 {
		p.Categories = []string{"Place"}
	}

	maxTier := max(1, min(4, opts.MaxPriceTier))
	tier := 1 + rng.IntN(maxTier)
	if res.PriceLevel != nil && *res.PriceLevel > 0 {
		tier = min(4, *res.PriceLevel)
	}
	p.PriceTier = tier
	p.Price = math.Max(0, math.Min(opts.Budget, float64(tier*20+rng.IntN(20))))

	if res.Coordinate != nil {
		p.Latitude, p.Longitude = res.Coordinate.Latitude, res.Coordinate.Longitude
		distance := opts.Distance
		if distance == nil {
			distance = geo.Distance
		}
		p.Distance = distance(opts.Origin, *res.Coordinate)
	} else {
		p.Distance = rng.Float64() * opts.Radius
		pos := geo.Offset(opts.Origin, p.Distance, rng.Float64()*2*math.Pi)
		p.Latitude, p.Longitude = pos.Latitude, pos.Longitude
	}

	if res.Rating != nil {
		p.Rating = fmt.Sprintf("%.1f", *res.Rating)
	} else {
		p.Rating = fmt.Sprintf("%.1f", 3+rng.Float64()*2)
	}

	if p.ImageURL == "" {
		topic := opts.ImageTopic
		if topic == "" {
			topic = "place"
		}
		p.ImageURL = mock.ImageURL(topic, "")
	}
	return p
}
