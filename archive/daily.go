package archive

import (
	"context"

	"atmos/meteo"
)

// DailySummary fetches the historical daily summary table: weather code,
// mean temperature, daylight duration, total precipitation, mean wind
// speed and dominant wind direction.
func (a *WeatherArchive) DailySummary(ctx context.Context, temperatureUnit, precipitationUnit, windSpeedUnit string) (meteo.Table, error) {
	if err := meteo.VerifyUnits(temperatureUnit, precipitationUnit, windSpeedUnit); err != nil {
		return meteo.Table{}, err
	}
	params := a.base.Merge(meteo.UnitParams(temperatureUnit, precipitationUnit, windSpeedUnit))
	return a.client.FetchTable(ctx, a.endpoint, meteo.Daily, dailySummaryMetrics, dailySummaryLabels, params)
}

// DailyTemperature fetches the historical daily temperature statistic
// ("min", "max" or "mean") at 2 meters above ground level.
func (a *WeatherArchive) DailyTemperature(ctx context.Context, statistic, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyDailyStatistic(statistic); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Daily, "temperature_2m_"+statistic, meteo.Params{"temperature_unit": unit})
}

// DailyApparentTemperature fetches the historical daily feels-like
// temperature statistic ("min", "max" or "mean").
func (a *WeatherArchive) DailyApparentTemperature(ctx context.Context, statistic, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyDailyStatistic(statistic); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Daily, "apparent_temperature_"+statistic, meteo.Params{"temperature_unit": unit})
}

// DailyMaxWindSpeed fetches historical daily maximum wind speed at
// 10 meters above ground level.
func (a *WeatherArchive) DailyMaxWindSpeed(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Daily, "wind_speed_10m_max", meteo.Params{"wind_speed_unit": unit})
}

// DailyDominantWindDirection fetches historical daily dominant wind
// direction in degrees at 10 meters above ground level.
func (a *WeatherArchive) DailyDominantWindDirection(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Daily, "wind_direction_10m_dominant", nil)
}

// DailyMaxWindGusts fetches historical daily maximum wind gusts at
// 10 meters above ground level.
func (a *WeatherArchive) DailyMaxWindGusts(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Daily, "wind_gusts_10m_max", meteo.Params{"wind_speed_unit": unit})
}

// DailyTotalPrecipitation fetches the historical daily precipitation sum
// of rain, showers and snowfall.
func (a *WeatherArchive) DailyTotalPrecipitation(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Daily, "precipitation_sum", meteo.Params{"precipitation_unit": unit})
}

// DailyTotalRainfall fetches the historical daily rainfall sum.
func (a *WeatherArchive) DailyTotalRainfall(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Daily, "rain_sum", meteo.Params{"precipitation_unit": unit})
}

// DailyTotalSnowfall fetches the historical daily snowfall sum in
// centimeters.
func (a *WeatherArchive) DailyTotalSnowfall(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Daily, "snowfall_sum", nil)
}

// DailySunrise fetches historical daily sunrise times as ISO-8601
// datetime strings.
func (a *WeatherArchive) DailySunrise(ctx context.Context) (meteo.Series[string], error) {
	return meteo.FetchSeries[string](ctx, a.client, a.endpoint, meteo.Daily, "sunrise", a.base)
}

// DailySunset fetches historical daily sunset times as ISO-8601 datetime
// strings.
func (a *WeatherArchive) DailySunset(ctx context.Context) (meteo.Series[string], error) {
	return meteo.FetchSeries[string](ctx, a.client, a.endpoint, meteo.Daily, "sunset", a.base)
}

// DailyDaylightDuration fetches historical daily daylight duration in
// seconds.
func (a *WeatherArchive) DailyDaylightDuration(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Daily, "daylight_duration", nil)
}

// DailySunshineDuration fetches historical daily sunshine duration in
// seconds.
func (a *WeatherArchive) DailySunshineDuration(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Daily, "sunshine_duration", nil)
}

// DailyTotalShortwaveRadiation fetches the historical daily shortwave
// radiation sum in megajoules per square meter.
func (a *WeatherArchive) DailyTotalShortwaveRadiation(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Daily, "shortwave_radiation_sum", nil)
}
