package forecast

import (
	"context"
	"fmt"

	"atmos/meteo"
)

// HourlySummary fetches the standing hourly summary table: temperature,
// relative humidity, dew point, precipitation, weather code, surface
// pressure, cloud cover, visibility, wind speed and surface soil
// temperature.
func (w *Weather) HourlySummary(ctx context.Context, temperatureUnit, precipitationUnit, windSpeedUnit string) (meteo.Table, error) {
	if err := meteo.VerifyUnits(temperatureUnit, precipitationUnit, windSpeedUnit); err != nil {
		return meteo.Table{}, err
	}
	params := w.base.Merge(meteo.UnitParams(temperatureUnit, precipitationUnit, windSpeedUnit))
	return w.client.FetchTable(ctx, w.endpoint, meteo.Hourly, hourlySummaryMetrics, hourlySummaryLabels, params)
}

// HourlyTemperature fetches hourly temperature at an altitude of 2, 80,
// 120 or 180 meters above ground level.
func (w *Weather) HourlyTemperature(ctx context.Context, altitude int, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyTemperatureAltitude(altitude); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	metric := fmt.Sprintf("temperature_%dm", altitude)
	return w.series(ctx, meteo.Hourly, metric, meteo.Params{"temperature_unit": unit})
}

// HourlyApparentTemperature fetches hourly feels-like temperature at
// 2 meters above ground level.
func (w *Weather) HourlyApparentTemperature(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, "apparent_temperature", meteo.Params{"temperature_unit": unit})
}

// HourlyDewPoint fetches hourly dew point at 2 meters above ground level.
func (w *Weather) HourlyDewPoint(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, "dew_point_2m", meteo.Params{"temperature_unit": unit})
}

// HourlyRelativeHumidity fetches hourly relative humidity percentage at
// 2 meters above ground level.
func (w *Weather) HourlyRelativeHumidity(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Hourly, "relative_humidity_2m", nil)
}

// PeriodicalWeatherCode fetches hourly or daily WMO weather codes
// together with their descriptions.
func (w *Weather) PeriodicalWeatherCode(ctx context.Context, freq meteo.Frequency) (meteo.CodeTable, error) {
	if err := meteo.VerifyPeriodicalFrequency(freq); err != nil {
		return meteo.CodeTable{}, err
	}

	codes, err := meteo.FetchSeries[uint8](ctx, w.client, w.endpoint, freq, "weather_code", w.base)
	if err != nil {
		return meteo.CodeTable{}, err
	}
	return meteo.DescribeCodes(codes)
}

// HourlyRainfall fetches hourly rainfall in the given precipitation unit.
func (w *Weather) HourlyRainfall(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, "rain", meteo.Params{"precipitation_unit": unit})
}

// HourlySnowfall fetches hourly snowfall in centimeters.
func (w *Weather) HourlySnowfall(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Hourly, "snowfall", nil)
}

// HourlyPressure fetches hourly atmospheric pressure in hectopascals at
// the "surface" or "sealevel" measurement level.
func (w *Weather) HourlyPressure(ctx context.Context, level string) (meteo.Series[float32], error) {
	metric, err := meteo.PressureLevelMetric(level)
	if err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, metric, nil)
}

// HourlyTotalCloudCover fetches hourly total cloud cover percentage.
func (w *Weather) HourlyTotalCloudCover(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Hourly, "cloud_cover", nil)
}

// HourlyCloudCover fetches hourly cloud cover percentage at the given
// altitude level: "low", "mid" or "high".
func (w *Weather) HourlyCloudCover(ctx context.Context, level string) (meteo.Series[float32], error) {
	if err := meteo.VerifyCloudCoverLevel(level); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, "cloud_cover_"+level, nil)
}

// HourlyPrecipitation fetches hourly precipitation, the sum of rain,
// showers and snowfall.
func (w *Weather) HourlyPrecipitation(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, "precipitation", meteo.Params{"precipitation_unit": unit})
}

// HourlyPrecipitationProbability fetches hourly precipitation
// probability percentage.
func (w *Weather) HourlyPrecipitationProbability(ctx context.Context) (meteo.Series[float32], error) {
	return w.series(ctx, meteo.Hourly, "precipitation_probability", nil)
}

// HourlyWindSpeed fetches hourly wind speed at an altitude of 10, 80,
// 120 or 180 meters above ground level.
func (w *Weather) HourlyWindSpeed(ctx context.Context, altitude int, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindAltitude(altitude); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	metric := fmt.Sprintf("wind_speed_%dm", altitude)
	return w.series(ctx, meteo.Hourly, metric, meteo.Params{"wind_speed_unit": unit})
}

// HourlyWindDirection fetches hourly wind direction in degrees at an
// altitude of 10, 80, 120 or 180 meters above ground level.
func (w *Weather) HourlyWindDirection(ctx context.Context, altitude int) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindAltitude(altitude); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, fmt.Sprintf("wind_direction_%dm", altitude), nil)
}

// HourlyWindGusts fetches hourly wind gusts at 10 meters above ground
// level.
func (w *Weather) HourlyWindGusts(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, "wind_gusts_10m", meteo.Params{"wind_speed_unit": unit})
}

// HourlyVisibility fetches hourly visibility in whole meters.
func (w *Weather) HourlyVisibility(ctx context.Context) (meteo.Series[int32], error) {
	return meteo.FetchSeries[int32](ctx, w.client, w.endpoint, meteo.Hourly, "visibility", w.base)
}

// HourlySoilTemperature fetches hourly soil temperature at a depth of
// 0, 6, 18 or 54 centimeters below ground level.
func (w *Weather) HourlySoilTemperature(ctx context.Context, depth int, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifySoilTemperatureDepth(depth); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	metric := fmt.Sprintf("soil_temperature_%dcm", depth)
	return w.series(ctx, meteo.Hourly, metric, meteo.Params{"temperature_unit": unit})
}

// HourlySoilMoisture fetches hourly soil moisture (m³/m³) for the depth
// bucket enclosing the given depth; supported depths span 0 to 81
// centimeters below ground level.
func (w *Weather) HourlySoilMoisture(ctx context.Context, depth int) (meteo.Series[float32], error) {
	bucket, err := meteo.SoilMoistureDepthRange(depth)
	if err != nil {
		return meteo.Series[float32]{}, err
	}
	return w.series(ctx, meteo.Hourly, fmt.Sprintf("soil_moisture_%scm", bucket), nil)
}
