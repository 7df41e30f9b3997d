package forecast

import (
	"context"

	"atmos/meteo"
)

// DailySummary fetches the standing daily summary table: weather code,
// mean temperature, daylight duration, max UV index, total precipitation,
// mean wind speed and dominant wind direction.
func (w *Weather) DailySummary(ctx context.Context, temperatureUnit, precipitationUnit, windSpeedUnit string) (meteo.Table, error) {
	if err := meteo.VerifyUnits(temperatureUnit, precipitationUnit, windSpeedUnit); err != nil {
		return meteo.Table{}, err
	}
	params := w.base.Merge(meteo.UnitParams(temperatureUnit, precipitationUnit, windSpeedUnit))
	return w.client.FetchTable(ctx, w.endpoint, meteo.Daily, dailySummaryMetrics, dailySummaryLabels, params)
}

// DailyTemperature fetches the daily temperature statistic ("min", "max"
// or "mean") at 2 meters above ground level.
func (w *Weather) DailyTemperature(ctx context.Context, statistic, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyDailyStatistic(statistic); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Daily, "temperature_2m_"+statistic, meteo.Params{"temperature_unit": unit})
}

// DailyApparentTemperature fetches the daily feels-like temperature
// statistic ("min", "max" or "mean") at 2 meters above ground level.
func (w *Weather) DailyApparentTemperature(ctx context.Context, statistic, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyDailyStatistic(statistic); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Daily, "apparent_temperature_"+statistic, meteo.Params{"temperature_unit": unit})
}

// DailyMaxWindSpeed fetches daily maximum wind speed at 10 meters above
// ground level.
func (w *Weather) DailyMaxWindSpeed(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Daily, "wind_speed_10m_max", meteo.Params{"wind_speed_unit": unit})
}

// DailyDominantWindDirection fetches daily dominant wind direction in
// degrees at 10 meters above ground level.
func (w *Weather) DailyDominantWindDirection(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "wind_direction_10m_dominant", nil)
}

// DailyMaxWindGusts fetches daily maximum wind gusts at 10 meters above
// ground level.
func (w *Weather) DailyMaxWindGusts(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Daily, "wind_gusts_10m_max", meteo.Params{"wind_speed_unit": unit})
}

// DailyTotalPrecipitation fetches the daily precipitation sum of rain,
// showers and snowfall.
func (w *Weather) DailyTotalPrecipitation(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Daily, "precipitation_sum", meteo.Params{"precipitation_unit": unit})
}

// DailyTotalRainfall fetches the daily rainfall sum.
func (w *Weather) DailyTotalRainfall(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Daily, "rain_sum", meteo.Params{"precipitation_unit": unit})
}

// DailyTotalSnowfall fetches the daily snowfall sum in centimeters.
func (w *Weather) DailyTotalSnowfall(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "snowfall_sum", nil)
}

// DailySunrise fetches daily sunrise times as ISO-8601 datetime strings.
func (w *Weather) DailySunrise(ctx context.Context) (meteo.Series[string], error) {
	return meteo.FetchSeries[string](ctx, w.client, w.endpoint, meteo.Daily, "sunrise", w.base)
}

// DailySunset fetches daily sunset times as ISO-8601 datetime strings.
func (w *Weather) DailySunset(ctx context.Context) (meteo.Series[string], error) {
	return meteo.FetchSeries[string](ctx, w.client, w.endpoint, meteo.Daily, "sunset", w.base)
}

// DailyDaylightDuration fetches the daily daylight duration in seconds.
func (w *Weather) DailyDaylightDuration(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "daylight_duration", nil)
}

// DailySunshineDuration fetches the daily sunshine duration in seconds.
func (w *Weather) DailySunshineDuration(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "sunshine_duration", nil)
}

// DailyTotalShortwaveRadiation fetches the daily shortwave radiation sum
// in megajoules per square meter.
func (w *Weather) DailyTotalShortwaveRadiation(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "shortwave_radiation_sum", nil)
}

// DailyMaxUVIndex fetches the daily maximum ultraviolet index.
func (w *Weather) DailyMaxUVIndex(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "uv_index_max", nil)
}

// DailyMaxPrecipitationProbability fetches the daily maximum
// precipitation probability percentage.
func (w *Weather) DailyMaxPrecipitationProbability(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Daily, "precipitation_probability_max", nil)
}
