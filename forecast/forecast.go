// Package forecast provides a typed facade over the Open-Meteo weather
// forecast API. A Weather value is pinned to a geographic location and a
// forecast horizon; its accessors fetch current readings, hourly series
// and daily series on demand.
package forecast

import (
	"context"
	"strconv"

	"atmos/meteo"
)

// MaxForecastDays is the longest horizon the forecast API serves.
const MaxForecastDays = 16

// DefaultForecastDays is applied when no explicit horizon is configured.
const DefaultForecastDays = 7

// Weather extracts weather data for a fixed location from the Open-Meteo
// forecast API.
type Weather struct {
	client   *meteo.Client
	owned    bool
	endpoint string

	lat, long    float64
	forecastDays int

	// base carries the parameters shared by every request; per-call
	// overlays are merged on top without mutating it.
	base meteo.Params
}

// Option configures a Weather during construction.
type Option func(*Weather)

// WithForecastDays sets the forecast horizon in days, between 1 and 16.
func WithForecastDays(days int) Option {
	return func(w *Weather) { w.forecastDays = days }
}

// WithClient supplies a shared client. The caller retains ownership and
// is responsible for closing it.
func WithClient(client *meteo.Client) Option {
	return func(w *Weather) { w.client = client }
}

// WithEndpoint overrides the forecast API base URL.
func WithEndpoint(url string) Option {
	return func(w *Weather) { w.endpoint = url }
}

// New validates the coordinates and horizon and returns a Weather bound
// to them. Unless a client is injected, the Weather owns one and Close
// must be called to release its connections.
func New(lat, long float64, opts ...Option) (*Weather, error) {
	w := &Weather{
		endpoint:     meteo.ForecastURL,
		forecastDays: DefaultForecastDays,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := meteo.VerifyCoordinates(lat, long); err != nil {
		return nil, err
	}
	if err := meteo.VerifyForecastDays(w.forecastDays, MaxForecastDays); err != nil {
		return nil, err
	}

	if w.client == nil {
		w.client = meteo.NewClient()
		w.owned = true
	}

	w.lat, w.long = lat, long
	w.base = meteo.Coordinates(lat, long).Merge(meteo.Params{
		"forecast_days": strconv.Itoa(w.forecastDays),
	})

	return w, nil
}

// Close releases the underlying client if this Weather owns it. Injected
// clients are left untouched.
func (w *Weather) Close() {
	if w.owned {
		w.client.Close()
	}
}

// Coordinates returns the latitude and longitude the Weather is bound to.
func (w *Weather) Coordinates() (lat, long float64) {
	return w.lat, w.long
}

// ForecastDays returns the configured forecast horizon.
func (w *Weather) ForecastDays() int {
	return w.forecastDays
}

func (w *Weather) currentValue(ctx context.Context, metric string, extra meteo.Params) (float64, error) {
	return w.client.CurrentValue(ctx, w.endpoint, metric, w.base.Merge(extra))
}

func (w *Weather) series(ctx context.Context, freq meteo.Frequency, metric string, extra meteo.Params) (meteo.Series[float32], error) {
	return meteo.FetchSeries[float32](ctx, w.client, w.endpoint, freq, metric, w.base.Merge(extra))
}

// Wire metrics and display labels of the summary calls, positionally
// aligned.
var (
	currentSummaryMetrics = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"precipitation",
		"weather_code",
		"cloud_cover",
		"surface_pressure",
		"wind_speed_10m",
		"wind_direction_10m",
	}
	currentSummaryLabels = []string{
		"temperature",
		"relative_humidity",
		"precipitation",
		"weather_code",
		"cloud_cover",
		"surface_pressure",
		"wind_speed",
		"wind_direction",
	}

	hourlySummaryMetrics = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"dew_point_2m",
		"precipitation",
		"weather_code",
		"surface_pressure",
		"cloud_cover",
		"visibility",
		"wind_speed_10m",
		"soil_temperature_0cm",
	}
	hourlySummaryLabels = []string{
		"temperature",
		"relative_humidity",
		"dew_point",
		"precipitation",
		"weather_code",
		"surface_pressure",
		"cloud_cover",
		"visibility",
		"wind_speed",
		"soil_temperature",
	}

	dailySummaryMetrics = []string{
		"weather_code",
		"temperature_2m_mean",
		"daylight_duration",
		"uv_index_max",
		"precipitation_sum",
		"wind_speed_10m_mean",
		"wind_direction_10m_dominant",
	}
	dailySummaryLabels = []string{
		"weather_code",
		"temperature",
		"daylight_duration",
		"uv_index",
		"precipitation",
		"wind_speed",
		"wind_direction",
	}
)
