// Package geo provides city geocoding and elevation lookups against the
// Open-Meteo geocoding and elevation APIs.
package geo

import (
	"context"
	"strconv"

	"atmos/meteo"
)

// Option configures a single lookup.
type Option func(*settings)

type settings struct {
	endpoint string
}

// WithEndpoint overrides the API base URL of the lookup.
func WithEndpoint(url string) Option {
	return func(s *settings) { s.endpoint = url }
}

func resolve(endpoint string, opts []Option) settings {
	s := settings{endpoint: endpoint}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Location describes one geocoding match.
type Location struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	Timezone    string  `json:"timezone"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Population  int64   `json:"population"`
}

// CityDetails looks up cities matching the given name and returns up to
// count records, between 1 and 20. A nil slice with no error means the
// name matched nothing; absence of results is not a failure.
func CityDetails(ctx context.Context, client *meteo.Client, name string, count int, opts ...Option) ([]Location, error) {
	if err := meteo.VerifyCount(count); err != nil {
		return nil, err
	}

	var payload struct {
		Results []Location `json:"results"`
	}

	cfg := resolve(meteo.GeocodingURL, opts)
	params := meteo.Params{"name": name, "count": strconv.Itoa(count)}
	if err := client.FetchDecoded(ctx, cfg.endpoint, params, &payload); err != nil {
		return nil, err
	}

	return payload.Results, nil
}

// Elevation fetches the elevation in meters above sea level at the given
// coordinates.
func Elevation(ctx context.Context, client *meteo.Client, lat, long float64, opts ...Option) (float64, error) {
	if err := meteo.VerifyCoordinates(lat, long); err != nil {
		return 0, err
	}

	var payload struct {
		Elevation []float64 `json:"elevation"`
	}

	cfg := resolve(meteo.ElevationURL, opts)
	if err := client.FetchDecoded(ctx, cfg.endpoint, meteo.Coordinates(lat, long), &payload); err != nil {
		return 0, err
	}

	if len(payload.Elevation) == 0 {
		return 0, &meteo.MissingFieldError{Field: "elevation"}
	}
	return payload.Elevation[0], nil
}
