// Package air provides a typed facade over the Open-Meteo air quality
// API, serving current and up to 7-day hourly air quality forecasts.
package air

import (
	"context"
	"strconv"

	"atmos/meteo"
)

// MaxForecastDays is the longest horizon the air quality API serves.
const MaxForecastDays = 7

// DefaultForecastDays is applied when no explicit horizon is configured.
const DefaultForecastDays = 7

// AirQuality extracts air quality data for a fixed location from the
// Open-Meteo air quality API.
type AirQuality struct {
	client   *meteo.Client
	owned    bool
	endpoint string

	lat, long    float64
	forecastDays int

	base meteo.Params
}

// Option configures an AirQuality during construction.
type Option func(*AirQuality)

// WithForecastDays sets the forecast horizon in days, between 1 and 7.
func WithForecastDays(days int) Option {
	return func(a *AirQuality) { a.forecastDays = days }
}

// WithClient supplies a shared client. The caller retains ownership and
// is responsible for closing it.
func WithClient(client *meteo.Client) Option {
	return func(a *AirQuality) { a.client = client }
}

// WithEndpoint overrides the air quality API base URL.
func WithEndpoint(url string) Option {
	return func(a *AirQuality) { a.endpoint = url }
}

// New validates the coordinates and horizon and returns an AirQuality
// bound to them. Unless a client is injected, the value owns one and
// Close must be called to release its connections.
func New(lat, long float64, opts ...Option) (*AirQuality, error) {
	a := &AirQuality{
		endpoint:     meteo.AirQualityURL,
		forecastDays: DefaultForecastDays,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := meteo.VerifyCoordinates(lat, long); err != nil {
		return nil, err
	}
	if err := meteo.VerifyForecastDays(a.forecastDays, MaxForecastDays); err != nil {
		return nil, err
	}

	if a.client == nil {
		a.client = meteo.NewClient()
		a.owned = true
	}

	a.lat, a.long = lat, long
	a.base = meteo.Coordinates(lat, long).Merge(meteo.Params{
		"forecast_days": strconv.Itoa(a.forecastDays),
	})

	return a, nil
}

// Close releases the underlying client if this value owns it.
func (a *AirQuality) Close() {
	if a.owned {
		a.client.Close()
	}
}

// Coordinates returns the latitude and longitude the value is bound to.
func (a *AirQuality) Coordinates() (lat, long float64) {
	return a.lat, a.long
}

// ForecastDays returns the configured forecast horizon.
func (a *AirQuality) ForecastDays() int { return a.forecastDays }

func (a *AirQuality) currentValue(ctx context.Context, metric string) (float64, error) {
	return a.client.CurrentValue(ctx, a.endpoint, metric, a.base)
}

func (a *AirQuality) series(ctx context.Context, metric string) (meteo.Series[float32], error) {
	return meteo.FetchSeries[float32](ctx, a.client, a.endpoint, meteo.Hourly, metric, a.base)
}

// Summary metrics; the wire names double as display labels.
var (
	currentSummaryMetrics = []string{
		"dust",
		"pm10",
		"ozone",
		"pm2_5",
		"us_aqi",
		"uv_index",
		"carbon_monoxide",
		"nitrogen_dioxide",
		"sulphur_dioxide",
		"european_aqi",
		"ammonia",
	}

	hourlySummaryMetrics = []string{
		"pm10",
		"pm2_5",
		"carbon_monoxide",
		"nitrogen_dioxide",
		"sulphur_dioxide",
		"ozone",
		"dust",
		"uv_index",
		"ammonia",
	}
)

// CurrentSummary fetches the current air quality summary: both AQI
// standards, particulate matter, gas concentrations, dust, UV index and
// ammonia (European regions only).
func (a *AirQuality) CurrentSummary(ctx context.Context) (meteo.Bundle, error) {
	return a.client.CurrentSummary(ctx, a.endpoint, currentSummaryMetrics, currentSummaryMetrics, a.base)
}

// HourlySummary fetches the hourly air quality summary table:
// particulate matter, gas concentrations, dust, UV index and ammonia
// (European regions only).
func (a *AirQuality) HourlySummary(ctx context.Context) (meteo.Table, error) {
	return a.client.FetchTable(ctx, a.endpoint, meteo.Hourly, hourlySummaryMetrics, hourlySummaryMetrics, a.base)
}

// CurrentAQI fetches the current air quality index from the given
// source standard: "european" or "us".
func (a *AirQuality) CurrentAQI(ctx context.Context, source string) (int, error) {
	if err := meteo.VerifyAQISource(source); err != nil {
		return 0, err
	}

	value, err := a.currentValue(ctx, source+"_aqi")
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// CurrentAmmoniaConcentration fetches the current aerial ammonia (NH3)
// concentration in µg/m³. Only reported for European regions.
func (a *AirQuality) CurrentAmmoniaConcentration(ctx context.Context) (float64, error) {
	return a.currentValue(ctx, "ammonia")
}

// CurrentDustConcentration fetches the current aerial dust concentration
// in µg/m³ at 10 meters above ground level.
func (a *AirQuality) CurrentDustConcentration(ctx context.Context) (float64, error) {
	return a.currentValue(ctx, "dust")
}

// CurrentGasConcentration fetches the current concentration in µg/m³ of
// the given atmospheric gas: "ozone", "carbon_monoxide",
// "nitrogen_dioxide" or "sulphur_dioxide".
func (a *AirQuality) CurrentGasConcentration(ctx context.Context, gas string) (float64, error) {
	if err := meteo.VerifyGas(gas); err != nil {
		return 0, err
	}
	return a.currentValue(ctx, gas)
}

// CurrentPM2p5Concentration fetches the current concentration in µg/m³
// of particulate matter smaller than 2.5 µm in diameter.
func (a *AirQuality) CurrentPM2p5Concentration(ctx context.Context) (float64, error) {
	return a.currentValue(ctx, "pm2_5")
}

// CurrentPM10Concentration fetches the current concentration in µg/m³
// of particulate matter smaller than 10 µm in diameter.
func (a *AirQuality) CurrentPM10Concentration(ctx context.Context) (float64, error) {
	return a.currentValue(ctx, "pm10")
}

// CurrentPollenConcentration fetches the current pollen concentration in
// grains/m³ for the given plant: "alder", "birch", "grass", "mugwort",
// "olive" or "ragweed". Only reported for European regions.
func (a *AirQuality) CurrentPollenConcentration(ctx context.Context, plant string) (float64, error) {
	if err := meteo.VerifyPlant(plant); err != nil {
		return 0, err
	}
	return a.currentValue(ctx, plant+"_pollen")
}

// CurrentUVIndex fetches the current ultraviolet radiation index.
func (a *AirQuality) CurrentUVIndex(ctx context.Context) (float64, error) {
	return a.currentValue(ctx, "uv_index")
}

// CurrentAerosolOpticalDepth fetches the current aerosol optical depth
// at 550 nm, an indicator of haze.
func (a *AirQuality) CurrentAerosolOpticalDepth(ctx context.Context) (float64, error) {
	return a.currentValue(ctx, "aerosol_optical_depth")
}

// HourlyDustConcentration fetches hourly aerial dust concentration in
// µg/m³ at 10 meters above ground level.
func (a *AirQuality) HourlyDustConcentration(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, "dust")
}

// HourlyUVIndex fetches the hourly ultraviolet radiation index.
func (a *AirQuality) HourlyUVIndex(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, "uv_index")
}

// HourlyPM2p5Concentration fetches hourly concentration in µg/m³ of
// particulate matter smaller than 2.5 µm in diameter.
func (a *AirQuality) HourlyPM2p5Concentration(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, "pm2_5")
}

// HourlyPM10Concentration fetches hourly concentration in µg/m³ of
// particulate matter smaller than 10 µm in diameter.
func (a *AirQuality) HourlyPM10Concentration(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, "pm10")
}

// HourlyPollenConcentration fetches hourly pollen concentration in
// grains/m³ for the given plant. Only reported for European regions.
func (a *AirQuality) HourlyPollenConcentration(ctx context.Context, plant string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPlant(plant); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, plant+"_pollen")
}

// HourlyAerosolOpticalDepth fetches hourly aerosol optical depth at
// 550 nm.
func (a *AirQuality) HourlyAerosolOpticalDepth(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, "aerosol_optical_depth")
}

// HourlyGasConcentration fetches hourly concentration in µg/m³ of the
// given atmospheric gas at 10 meters above ground level.
func (a *AirQuality) HourlyGasConcentration(ctx context.Context, gas string) (meteo.Series[float32], error) {
	if err := meteo.VerifyGas(gas); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, gas)
}

// HourlyAmmoniaConcentration fetches hourly aerial ammonia (NH3)
// concentration in µg/m³. Only reported for European regions.
func (a *AirQuality) HourlyAmmoniaConcentration(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, "ammonia")
}
