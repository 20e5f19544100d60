package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

var ErrNoResults = errors.New("no geocoding results")

// Resolver forward-geocodes free-text mission locations.
type Resolver struct {
	client *maps.Client
}

func NewResolver(apiKey string, opts ...maps.ClientOption) (*Resolver, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
	}
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &Resolver{client: client}, nil
}

// Resolve returns the coordinates of the first geocoding result for address.
func (r *Resolver) Resolve(ctx context.Context, address string) (float64, float64, error) {
	results, err := r.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("geocode %q: %w", address, ErrNoResults)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
