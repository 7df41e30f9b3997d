// Package marine provides a typed facade over the Open-Meteo marine
// weather API, serving ocean wave forecasts at a 5 km resolution for up
// to 8 days.
package marine

import (
	"context"
	"strconv"

	"atmos/meteo"
)

// MaxForecastDays is the longest horizon the marine weather API serves.
const MaxForecastDays = 8

// DefaultForecastDays is applied when no explicit horizon is configured.
const DefaultForecastDays = 7

// MarineWeather extracts ocean wave data for a fixed location and wave
// type from the Open-Meteo marine weather API.
type MarineWeather struct {
	client   *meteo.Client
	owned    bool
	endpoint string

	lat, long    float64
	waveType     string
	prefix       string
	forecastDays int

	base meteo.Params
}

// Option configures a MarineWeather during construction.
type Option func(*MarineWeather)

// WithWaveType selects the ocean wave type: "composite" (all waves),
// "wind" (wind-generated waves) or "swell" (long-distance waves).
// Defaults to "composite".
func WithWaveType(waveType string) Option {
	return func(m *MarineWeather) { m.waveType = waveType }
}

// WithForecastDays sets the forecast horizon in days, between 1 and 8.
func WithForecastDays(days int) Option {
	return func(m *MarineWeather) { m.forecastDays = days }
}

// WithClient supplies a shared client. The caller retains ownership and
// is responsible for closing it.
func WithClient(client *meteo.Client) Option {
	return func(m *MarineWeather) { m.client = client }
}

// WithEndpoint overrides the marine weather API base URL.
func WithEndpoint(url string) Option {
	return func(m *MarineWeather) { m.endpoint = url }
}

// New validates the coordinates, wave type and horizon and returns a
// MarineWeather bound to them. Unless a client is injected, the value
// owns one and Close must be called to release its connections.
func New(lat, long float64, opts ...Option) (*MarineWeather, error) {
	m := &MarineWeather{
		endpoint:     meteo.MarineURL,
		waveType:     "composite",
		forecastDays: DefaultForecastDays,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := meteo.VerifyCoordinates(lat, long); err != nil {
		return nil, err
	}
	if err := meteo.VerifyForecastDays(m.forecastDays, MaxForecastDays); err != nil {
		return nil, err
	}

	prefix, err := meteo.WaveTypePrefix(m.waveType)
	if err != nil {
		return nil, err
	}

	if m.client == nil {
		m.client = meteo.NewClient()
		m.owned = true
	}

	m.lat, m.long = lat, long
	m.prefix = prefix
	m.base = meteo.Coordinates(lat, long).Merge(meteo.Params{
		"forecast_days": strconv.Itoa(m.forecastDays),
	})

	return m, nil
}

// Close releases the underlying client if this value owns it.
func (m *MarineWeather) Close() {
	if m.owned {
		m.client.Close()
	}
}

// Coordinates returns the latitude and longitude the value is bound to.
func (m *MarineWeather) Coordinates() (lat, long float64) {
	return m.lat, m.long
}

// WaveType returns the configured ocean wave type.
func (m *MarineWeather) WaveType() string { return m.waveType }

// ForecastDays returns the configured forecast horizon.
func (m *MarineWeather) ForecastDays() int { return m.forecastDays }

// prefixed applies the wave-type prefix to each base metric name.
func (m *MarineWeather) prefixed(metrics []string) []string {
	wired := make([]string, len(metrics))
	for i, metric := range metrics {
		wired[i] = m.prefix + metric
	}
	return wired
}

func (m *MarineWeather) series(ctx context.Context, freq meteo.Frequency, metric string) (meteo.Series[float32], error) {
	return meteo.FetchSeries[float32](ctx, m.client, m.endpoint, freq, m.prefix+metric, m.base)
}

// Base metric names of the summary calls; the wave-type prefix is
// applied at request time while the labels stay unprefixed.
var (
	summaryMetrics = []string{"wave_height", "wave_direction", "wave_period"}

	dailySummaryMetrics = []string{
		"wave_height_max",
		"wave_direction_dominant",
		"wave_period_max",
	}
	dailySummaryLabels = []string{
		"wave_height",
		"wave_direction",
		"wave_period",
	}
)

// CurrentSummary fetches the current wave height, direction and period
// for the configured wave type.
func (m *MarineWeather) CurrentSummary(ctx context.Context) (meteo.Bundle, error) {
	return m.client.CurrentSummary(ctx, m.endpoint, m.prefixed(summaryMetrics), summaryMetrics, m.base)
}

// HourlySummary fetches the hourly wave height, direction and period
// forecast for the configured wave type.
func (m *MarineWeather) HourlySummary(ctx context.Context) (meteo.Table, error) {
	return m.client.FetchTable(ctx, m.endpoint, meteo.Hourly, m.prefixed(summaryMetrics), summaryMetrics, m.base)
}

// DailySummary fetches the daily maximum wave height, dominant wave
// direction and maximum wave period forecast for the configured wave
// type.
func (m *MarineWeather) DailySummary(ctx context.Context) (meteo.Table, error) {
	return m.client.FetchTable(ctx, m.endpoint, meteo.Daily, m.prefixed(dailySummaryMetrics), dailySummaryLabels, m.base)
}

// CurrentWaveHeight fetches the current wave height in meters.
func (m *MarineWeather) CurrentWaveHeight(ctx context.Context) (float64, error) {
	return m.client.CurrentValue(ctx, m.endpoint, m.prefix+"wave_height", m.base)
}

// CurrentWaveDirection fetches the current wave direction in degrees.
func (m *MarineWeather) CurrentWaveDirection(ctx context.Context) (float64, error) {
	return m.client.CurrentValue(ctx, m.endpoint, m.prefix+"wave_direction", m.base)
}

// CurrentWavePeriod fetches the current wave period, the time in seconds
// between two consecutive wave crests passing a fixed point.
func (m *MarineWeather) CurrentWavePeriod(ctx context.Context) (float64, error) {
	return m.client.CurrentValue(ctx, m.endpoint, m.prefix+"wave_period", m.base)
}

// HourlyWaveHeight fetches the hourly wave height forecast in meters.
func (m *MarineWeather) HourlyWaveHeight(ctx context.Context) (meteo.Series[float32], error) {
	return m.series(ctx, meteo.Hourly, "wave_height")
}

// HourlyWaveDirection fetches the hourly wave direction forecast in
// degrees.
func (m *MarineWeather) HourlyWaveDirection(ctx context.Context) (meteo.Series[float32], error) {
	return m.series(ctx, meteo.Hourly, "wave_direction")
}

// HourlyWavePeriod fetches the hourly wave period forecast in seconds.
func (m *MarineWeather) HourlyWavePeriod(ctx context.Context) (meteo.Series[float32], error) {
	return m.series(ctx, meteo.Hourly, "wave_period")
}

// DailyMaxWaveHeight fetches the daily maximum wave height forecast in
// meters.
func (m *MarineWeather) DailyMaxWaveHeight(ctx context.Context) (meteo.Series[float32], error) {
	return m.series(ctx, meteo.Daily, "wave_height_max")
}

// DailyDominantWaveDirection fetches the daily dominant wave direction
// forecast in degrees.
func (m *MarineWeather) DailyDominantWaveDirection(ctx context.Context) (meteo.Series[float32], error) {
	return m.series(ctx, meteo.Daily, "wave_direction_dominant")
}

// DailyMaxWavePeriod fetches the daily maximum wave period forecast in
// seconds.
func (m *MarineWeather) DailyMaxWavePeriod(ctx context.Context) (meteo.Series[float32], error) {
	return m.series(ctx, meteo.Daily, "wave_period_max")
}
