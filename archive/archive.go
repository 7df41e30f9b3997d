// Package archive provides a typed facade over the Open-Meteo weather
// history API, serving historical data from 1940 to the present for a
// fixed location and date range.
package archive

import (
	"context"
	"time"

	"atmos/meteo"
)

// WeatherArchive extracts historical weather data for a fixed location
// and date range from the Open-Meteo weather history API.
type WeatherArchive struct {
	client   *meteo.Client
	owned    bool
	endpoint string

	lat, long          float64
	startDate, endDate time.Time

	base meteo.Params
}

// Option configures a WeatherArchive during construction.
type Option func(*WeatherArchive)

// WithClient supplies a shared client. The caller retains ownership and
// is responsible for closing it.
func WithClient(client *meteo.Client) Option {
	return func(a *WeatherArchive) { a.client = client }
}

// WithEndpoint overrides the weather history API base URL.
func WithEndpoint(url string) Option {
	return func(a *WeatherArchive) { a.endpoint = url }
}

// New validates the coordinates and the ISO-8601 (YYYY-MM-DD) date range
// and returns a WeatherArchive bound to them. Both dates must not lie in
// the future and startDate must not come after endDate. Unless a client
// is injected, the archive owns one and Close must be called to release
// its connections.
func New(lat, long float64, startDate, endDate string, opts ...Option) (*WeatherArchive, error) {
	a := &WeatherArchive{endpoint: meteo.ArchiveURL}
	for _, opt := range opts {
		opt(a)
	}

	if err := meteo.VerifyCoordinates(lat, long); err != nil {
		return nil, err
	}

	start, err := meteo.ResolveDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := meteo.ResolveDate(endDate)
	if err != nil {
		return nil, err
	}
	if err := meteo.VerifyDateOrder(start, end); err != nil {
		return nil, err
	}

	if a.client == nil {
		a.client = meteo.NewClient()
		a.owned = true
	}

	a.lat, a.long = lat, long
	a.startDate, a.endDate = start, end
	a.rebuildParams()

	return a, nil
}

func (a *WeatherArchive) rebuildParams() {
	a.base = meteo.Coordinates(a.lat, a.long).Merge(meteo.Params{
		"start_date": a.startDate.Format(meteo.DateLayout),
		"end_date":   a.endDate.Format(meteo.DateLayout),
	})
}

// Close releases the underlying client if this archive owns it.
func (a *WeatherArchive) Close() {
	if a.owned {
		a.client.Close()
	}
}

// Coordinates returns the latitude and longitude the archive is bound to.
func (a *WeatherArchive) Coordinates() (lat, long float64) {
	return a.lat, a.long
}

// StartDate returns the first day of the extraction range.
func (a *WeatherArchive) StartDate() time.Time { return a.startDate }

// EndDate returns the last day of the extraction range.
func (a *WeatherArchive) EndDate() time.Time { return a.endDate }

// SetStartDate moves the start of the extraction range. The new date must
// not lie in the future and must not come after the current end date.
func (a *WeatherArchive) SetStartDate(value string) error {
	start, err := meteo.ResolveDate(value)
	if err != nil {
		return err
	}
	if err := meteo.VerifyDateOrder(start, a.endDate); err != nil {
		return err
	}

	a.startDate = start
	a.rebuildParams()
	return nil
}

// SetEndDate moves the end of the extraction range. The new date must not
// lie in the future and must not come before the current start date.
func (a *WeatherArchive) SetEndDate(value string) error {
	end, err := meteo.ResolveDate(value)
	if err != nil {
		return err
	}
	if err := meteo.VerifyDateOrder(a.startDate, end); err != nil {
		return err
	}

	a.endDate = end
	a.rebuildParams()
	return nil
}

func (a *WeatherArchive) series(ctx context.Context, freq meteo.Frequency, metric string, extra meteo.Params) (meteo.Series[float32], error) {
	return meteo.FetchSeries[float32](ctx, a.client, a.endpoint, freq, metric, a.base.Merge(extra))
}

// Wire metrics and display labels of the summary calls, positionally
// aligned.
var (
	hourlySummaryMetrics = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"dew_point_2m",
		"precipitation",
		"weather_code",
		"surface_pressure",
		"wind_speed_10m",
		"soil_temperature_0_to_7cm",
	}
	hourlySummaryLabels = []string{
		"temperature",
		"relative_humidity",
		"dew_point",
		"precipitation",
		"weather_code",
		"surface_pressure",
		"wind_speed",
		"soil_temperature",
	}

	dailySummaryMetrics = []string{
		"weather_code",
		"temperature_2m_mean",
		"daylight_duration",
		"precipitation_sum",
		"wind_speed_10m_mean",
		"wind_direction_10m_dominant",
	}
	dailySummaryLabels = []string{
		"weather_code",
		"temperature",
		"daylight_duration",
		"precipitation",
		"wind_speed",
		"wind_direction",
	}
)
