// README: Geocoder interface plus the keyword-table implementation.
package dispatch

import (
	"context"
	"strings"

	"roadside/internal/types"
)

// Geocoder resolves a free-text location to a coordinate. Implementations
// must be total: they always return a usable point, never an error. The
// interface exists so a real geocoding backend can replace the keyword
// table without touching the decision engine.
type Geocoder interface {
	Resolve(ctx context.Context, location string) types.Point
}

// fallbackPoint is the default downtown point returned when no keyword
// matches. It is deliberately distinct from every keyword coordinate so
// the fallback path is observable in tests.
var fallbackPoint = types.Point{Lat: 37.7849, Lng: -122.4094}

// locationRules is an ordered keyword table, first match wins.
var locationRules = []struct {
	keywords []string
	point    types.Point
}{
	{[]string{"san francisco", "sf", "highway 101"}, types.Point{Lat: 37.7749, Lng: -122.4194}},
	{[]string{"oakland"}, types.Point{Lat: 37.8044, Lng: -122.2712}},
	{[]string{"palo alto", "stanford"}, types.Point{Lat: 37.4419, Lng: -122.1430}},
	{[]string{"san jose"}, types.Point{Lat: 37.3382, Lng: -121.8863}},
}

// KeywordGeocoder is the mock-geocoding policy: a deterministic
// keyword-to-coordinate table for reproducible behavior without a
// mapping service.
type KeywordGeocoder struct{}

func (KeywordGeocoder) Resolve(_ context.Context, location string) types.Point {
	lower := strings.ToLower(location)
	for _, rule := range locationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.point
			}
		}
	}
	return fallbackPoint
}
