// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the seekspot pipeline:
// the search request, the transient provider records produced during
// aggregation, and the canonical Place returned to callers.
package types

import "strings"

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// DefaultRadiusMeters is used when a request leaves the radius unset.
const DefaultRadiusMeters = 5000

// SearchRequest is the caller-supplied search input.
type SearchRequest struct {
	// Location is free text ("Kadikoy, Istanbul"). Required.
	Location string `json:"location" yaml:"location"`

	// Preferences are keyword tokens in insertion order. Mapping treats
	// them as a set; keyword queries and scoring use them as given.
	Preferences []string `json:"preferences" yaml:"preferences,omitempty"`

	// Budget is the spend ceiling; every returned Place has Price <= Budget.
	Budget float64 `json:"budget" yaml:"budget"`

	// RadiusMeters bounds provider queries and synthetic placement.
	RadiusMeters float64 `json:"radius_meters" yaml:"radius_meters"`
}

// Normalized returns a copy with trimmed location, blank preferences
// removed, and the default radius applied.
func (r SearchRequest) Normalized() SearchRequest {
	out := SearchRequest{
		Location:     strings.TrimSpace(r.Location),
		Budget:       r.Budget,
		RadiusMeters: r.RadiusMeters,
	}
	for _, p := range r.Preferences {
		if p = strings.TrimSpace(p); p != "" {
			out.Preferences = append(out.Preferences, p)
		}
	}
	if out.RadiusMeters <= 0 {
		out.RadiusMeters = DefaultRadiusMeters
	}
	return out
}

// CategoryTag is a canonical place category from the provider vocabulary
// (e.g. "restaurant", "night_club").
type CategoryTag string

// PointOfInterest is the generic tag for tokens with no dictionary entry.
const PointOfInterest CategoryTag = "point_of_interest"

// Restaurant is the tag used when no preferences are supplied.
const Restaurant CategoryTag = "restaurant"

// ProviderResult is a raw place record from the live provider. Optional
// provider fields are pointers so "absent" differs from zero.
type ProviderResult struct {
	ProviderID string      `json:"provider_id,omitempty"`
	Name       string      `json:"name,omitempty"`
	Vicinity   string      `json:"vicinity,omitempty"`
	Types      []string    `json:"types,omitempty"`
	Rating     *float64    `json:"rating,omitempty"`
	PriceLevel *int        `json:"price_level,omitempty"`
	PhotoURL   string      `json:"photo_url,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// PhotoAvailable reports whether the provider returned at least one photo.
func (r ProviderResult) PhotoAvailable() bool { return r.PhotoURL != "" }

// ScoredResult pairs a provider result with its relevance score.
type ScoredResult struct {
	Result ProviderResult
	Score  int
}

// Place is the canonical, user-facing search result. A Place is created
// once per search response and never mutated afterwards.
type Place struct {
	// ID is unique within one search response.
	ID string `json:"id" yaml:"id"`

	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	City    string `json:"city" yaml:"city"`

	// Categories are display labels in provider type order. Never empty.
	Categories []string `json:"categories" yaml:"categories"`

	// Rating is formatted with one decimal ("4.3").
	Rating string `json:"rating" yaml:"rating"`

	// Price never exceeds the request budget.
	Price float64 `json:"price" yaml:"price"`

	// PriceTier is a coarse 1..4 price bucket.
	PriceTier int `json:"price_tier" yaml:"price_tier"`

	// Distance from the search origin in meters.
	Distance float64 `json:"distance" yaml:"distance"`

	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	ImageURL  string  `json:"image_url" yaml:"image_url"`
}

// Coordinate returns the place position.
func (p Place) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}
