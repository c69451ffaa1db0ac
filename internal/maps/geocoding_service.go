package maps

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"

	"roadside/internal/modules/dispatch"
	"roadside/internal/types"
)

// GeocodingService resolves free-text locations through the Google Maps
// Geocoding API. It satisfies dispatch.Geocoder, which requires a total
// Resolve: on API failure or an empty result set it falls back to the
// keyword table rather than failing the dispatch.
type GeocodingService struct {
	client   *maps.Client
	fallback dispatch.Geocoder
}

// NewGeocodingService creates a GeocodingService with the given API key.
func NewGeocodingService(apiKey string) (*GeocodingService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodingService{
		client:   client,
		fallback: dispatch.KeywordGeocoder{},
	}, nil
}

func (s *GeocodingService) Resolve(ctx context.Context, location string) types.Point {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: location,
		Region:  "us",
	})
	if err != nil {
		log.Printf("geocoding error for %q, using keyword fallback: %v", location, err)
		return s.fallback.Resolve(ctx, location)
	}
	if len(results) == 0 {
		return s.fallback.Resolve(ctx, location)
	}

	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}
}
