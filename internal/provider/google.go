// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/pdiddy/seekspot/internal/geo"
	"github.com/pdiddy/seekspot/internal/httputil"
	"github.com/pdiddy/seekspot/pkg/types"
)

// Photo dimensions requested from the Places photo endpoint.
const (
	PhotoMaxWidth  = 800
	PhotoMaxHeight = 600
)

var _ PhotoSource = (*Google)(nil)

// Google queries the Google Maps web services (Geocoding and Places
// Nearby Search).
type Google struct {
	client   *maps.Client
	language string
}

// NewGoogle builds a live provider. The HTTP client retries 429 responses.
// Extra options (e.g. maps.WithBaseURL in tests) are applied last.
func NewGoogle(cfg types.ProviderConfig, opts ...maps.ClientOption) (*Google, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google maps: %w", ErrNoAPIKey)
	}
	options := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(httputil.NewClient(cfg.Timeout, cfg.MaxRetries)),
	}
	client, err := maps.NewClient(append(options, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &Google{client: client, language: cfg.Language}, nil
}

// Name returns the provider identifier.
func (g *Google) Name() string { return "google" }

// Available reports true; reachability is discovered per call.
func (g *Google) Available() bool { return true }

// Geocode resolves address with the Geocoding API. ZERO_RESULTS is not an
// error; it yields an empty slice.
func (g *Google) Geocode(ctx context.Context, address string) ([]types.Coordinate, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: g.language,
	})
	if err != nil {
		if isZeroResults(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("geocoding %q: %w", address, err)
	}
	coords := make([]types.Coordinate, 0, len(results))
	for _, r := range results {
		coords = append(coords, types.Coordinate{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		})
	}
	return coords, nil
}

// NearbySearch runs one Places Nearby Search request.
func (g *Google) NearbySearch(ctx context.Context, q NearbyQuery) ([]types.ProviderResult, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: q.Location.Latitude, Lng: q.Location.Longitude},
		Radius:   uint(q.RadiusMeters),
		Keyword:  q.Keyword,
		Language: g.language,
		Type:     maps.PlaceType(q.Category),
	}
	if q.MaxPriceTier > 0 {
		req.MaxPrice = maps.PriceLevel(strconv.Itoa(q.MaxPriceTier))
	}

	resp, err := g.client.NearbySearch(ctx, req)
	if err != nil {
		if isZeroResults(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("nearby search %s: %w", q.Label(), err)
	}

	results := make([]types.ProviderResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, g.convert(r))
	}
	return results, nil
}

// DistanceBetween uses the same spherical model as the Maps geometry library.
func (g *Google) DistanceBetween(a, b types.Coordinate) float64 {
	return geo.Distance(a, b)
}

func (g *Google) convert(r maps.PlacesSearchResult) types.ProviderResult {
	pr := types.ProviderResult{
		ProviderID: r.PlaceID,
		Name:       r.Name,
		Vicinity:   r.Vicinity,
		Types:      r.Types,
	}
	if pr.Vicinity == "" {
		pr.Vicinity = r.FormattedAddress
	}
	// The API reports 0 for both "free" and "unknown"; treat it as unknown.
	if r.Rating > 0 {
		rating := float64(r.Rating)
		pr.Rating = &rating
	}
	if r.PriceLevel > 0 {
		level := r.PriceLevel
		pr.PriceLevel = &level
	}
	loc := r.Geometry.Location
	if loc.Lat != 0 || loc.Lng != 0 {
		pr.Coordinate = &types.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
	}
	if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
		pr.PhotoURL = PhotoPathPrefix + url.PathEscape(r.Photos[0].PhotoReference)
	}
	return pr
}

// Photo downloads a place photo through the Places photo endpoint. The API
// key is added here and never appears in result URLs.
func (g *Google) Photo(ctx context.Context, ref string, maxWidth, maxHeight uint) (io.ReadCloser, string, error) {
	resp, err := g.client.PlacePhoto(ctx, &maps.PlacePhotoRequest{
		PhotoReference: ref,
		MaxWidth:       maxWidth,
		MaxHeight:      maxHeight,
	})
	if err != nil {
		return nil, "", fmt.Errorf("fetching photo: %w", err)
	}
	return resp.Data, resp.ContentType, nil
}

func isZeroResults(err error) bool {
	return strings.Contains(err.Error(), "ZERO_RESULTS")
}
