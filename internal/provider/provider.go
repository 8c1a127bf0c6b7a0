// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider defines the maps capability the search pipeline depends
// on (geocoding, nearby search, distance) and its implementations: a live
// Google Maps client and an offline stand-in used when no API key is
// configured. Callers select by availability instead of probing for a
// loaded SDK.
package provider

import (
	"context"
	"errors"
	"io"

	"github.com/pdiddy/seekspot/internal/geo"
	"github.com/pdiddy/seekspot/pkg/types"
)

// ErrUnavailable is returned by every call on a provider that cannot reach
// a live backend.
var ErrUnavailable = errors.New("maps provider unavailable")

// ErrNoAPIKey is returned when constructing a live provider without a key.
var ErrNoAPIKey = errors.New("no API key configured")

// Provider is the maps capability set. Each implementation (Google,
// Offline) follows the Strategy pattern so tests can substitute fakes.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Available reports whether calls can reach a live backend.
	Available() bool

	// Geocode resolves free text to candidate coordinates, best first.
	Geocode(ctx context.Context, address string) ([]types.Coordinate, error)

	// NearbySearch returns places around q.Location in provider order.
	NearbySearch(ctx context.Context, q NearbyQuery) ([]types.ProviderResult, error)

	// DistanceBetween returns the great-circle distance in meters.
	DistanceBetween(a, b types.Coordinate) float64
}

// PhotoPathPrefix is the HTTP API route that serves provider photos. Result
// photo URLs point at it so the API key stays on the server.
const PhotoPathPrefix = "/api/photo/"

// PhotoSource fetches a place photo by its provider reference. The caller
// closes the returned body.
type PhotoSource interface {
	Photo(ctx context.Context, ref string, maxWidth, maxHeight uint) (body io.ReadCloser, contentType string, err error)
}

// NearbyQuery scopes one nearby search. Category and Keyword are optional;
// a query usually sets exactly one of them.
type NearbyQuery struct {
	Location     types.Coordinate
	RadiusMeters float64
	Category     types.CategoryTag
	Keyword      string
	// MaxPriceTier is 1..4; zero leaves the price unbounded.
	MaxPriceTier int
}

// Label describes the query for log messages.
func (q NearbyQuery) Label() string {
	switch {
	case q.Category != "" && q.Keyword != "":
		return string(q.Category) + "/" + q.Keyword
	case q.Category != "":
		return string(q.Category)
	default:
		return "keyword:" + q.Keyword
	}
}

// IsAvailable reports whether p is non-nil and live.
func IsAvailable(p Provider) bool {
	return p != nil && p.Available()
}

// Offline is the provider used when no live backend is configured. Every
// lookup fails with ErrUnavailable, which routes the pipeline to its static
// fallbacks.
type Offline struct{}

// Name returns the provider identifier.
func (Offline) Name() string { return "offline" }

// Available always reports false.
func (Offline) Available() bool { return false }

// Geocode always fails with ErrUnavailable.
func (Offline) Geocode(context.Context, string) ([]types.Coordinate, error) {
	return nil, ErrUnavailable
}

// NearbySearch always fails with ErrUnavailable.
func (Offline) NearbySearch(context.Context, NearbyQuery) ([]types.ProviderResult, error) {
	return nil, ErrUnavailable
}

// DistanceBetween uses the local haversine implementation.
func (Offline) DistanceBetween(a, b types.Coordinate) float64 {
	return geo.Distance(a, b)
}

// New returns a live Google provider when cfg carries an API key and the
// offline provider otherwise.
func New(cfg types.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return Offline{}, nil
	}
	return NewGoogle(cfg)
}
