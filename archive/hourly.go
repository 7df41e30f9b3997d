package archive

import (
	"context"
	"fmt"

	"atmos/meteo"
)

// HourlySummary fetches the historical hourly summary table: temperature,
// relative humidity, dew point, precipitation, weather code, surface
// pressure, wind speed and surface soil temperature.
func (a *WeatherArchive) HourlySummary(ctx context.Context, temperatureUnit, precipitationUnit, windSpeedUnit string) (meteo.Table, error) {
	if err := meteo.VerifyUnits(temperatureUnit, precipitationUnit, windSpeedUnit); err != nil {
		return meteo.Table{}, err
	}
	params := a.base.Merge(meteo.UnitParams(temperatureUnit, precipitationUnit, windSpeedUnit))
	return a.client.FetchTable(ctx, a.endpoint, meteo.Hourly, hourlySummaryMetrics, hourlySummaryLabels, params)
}

// HourlyTemperature fetches historical hourly temperature at 2 meters
// above ground level.
func (a *WeatherArchive) HourlyTemperature(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "temperature_2m", meteo.Params{"temperature_unit": unit})
}

// HourlyApparentTemperature fetches historical hourly feels-like
// temperature at 2 meters above ground level.
func (a *WeatherArchive) HourlyApparentTemperature(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "apparent_temperature", meteo.Params{"temperature_unit": unit})
}

// HourlyDewPoint fetches historical hourly dew point at 2 meters above
// ground level.
func (a *WeatherArchive) HourlyDewPoint(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "dew_point_2m", meteo.Params{"temperature_unit": unit})
}

// HourlyRelativeHumidity fetches historical hourly relative humidity
// percentage at 2 meters above ground level.
func (a *WeatherArchive) HourlyRelativeHumidity(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Hourly, "relative_humidity_2m", nil)
}

// PeriodicalWeatherCode fetches historical hourly or daily WMO weather
// codes together with their descriptions.
func (a *WeatherArchive) PeriodicalWeatherCode(ctx context.Context, freq meteo.Frequency) (meteo.CodeTable, error) {
	if err := meteo.VerifyPeriodicalFrequency(freq); err != nil {
		return meteo.CodeTable{}, err
	}

	codes, err := meteo.FetchSeries[uint8](ctx, a.client, a.endpoint, freq, "weather_code", a.base)
	if err != nil {
		return meteo.CodeTable{}, err
	}
	return meteo.DescribeCodes(codes)
}

// HourlyRainfall fetches historical hourly rainfall.
func (a *WeatherArchive) HourlyRainfall(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "rain", meteo.Params{"precipitation_unit": unit})
}

// HourlySnowfall fetches historical hourly snowfall in centimeters.
func (a *WeatherArchive) HourlySnowfall(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Hourly, "snowfall", nil)
}

// HourlyPressure fetches historical hourly atmospheric pressure in
// hectopascals at the "surface" or "sealevel" measurement level.
func (a *WeatherArchive) HourlyPressure(ctx context.Context, level string) (meteo.Series[float32], error) {
	metric, err := meteo.PressureLevelMetric(level)
	if err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, metric, nil)
}

// HourlyTotalCloudCover fetches historical hourly total cloud cover
// percentage.
func (a *WeatherArchive) HourlyTotalCloudCover(ctx context.Context) (meteo.Series[float32], error) {
	return a.series(ctx, meteo.Hourly, "cloud_cover", nil)
}

// HourlyCloudCover fetches historical hourly cloud cover percentage at
// the given altitude level: "low", "mid" or "high".
func (a *WeatherArchive) HourlyCloudCover(ctx context.Context, level string) (meteo.Series[float32], error) {
	if err := meteo.VerifyCloudCoverLevel(level); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "cloud_cover_"+level, nil)
}

// HourlyPrecipitation fetches historical hourly precipitation, the sum
// of rain, showers and snowfall.
func (a *WeatherArchive) HourlyPrecipitation(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "precipitation", meteo.Params{"precipitation_unit": unit})
}

// HourlyWindSpeed fetches historical hourly wind speed at an altitude of
// 10 or 100 meters above ground level.
func (a *WeatherArchive) HourlyWindSpeed(ctx context.Context, altitude int, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyArchiveWindAltitude(altitude); err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	metric := fmt.Sprintf("wind_speed_%dm", altitude)
	return a.series(ctx, meteo.Hourly, metric, meteo.Params{"wind_speed_unit": unit})
}

// HourlyWindDirection fetches historical hourly wind direction in
// degrees at an altitude of 10 or 100 meters above ground level.
func (a *WeatherArchive) HourlyWindDirection(ctx context.Context, altitude int) (meteo.Series[float32], error) {
	if err := meteo.VerifyArchiveWindAltitude(altitude); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, fmt.Sprintf("wind_direction_%dm", altitude), nil)
}

// HourlyWindGusts fetches historical hourly wind gusts at 10 meters
// above ground level.
func (a *WeatherArchive) HourlyWindGusts(ctx context.Context, unit string) (meteo.Series[float32], error) {
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, "wind_gusts_10m", meteo.Params{"wind_speed_unit": unit})
}

// HourlySoilTemperature fetches historical hourly soil temperature for
// the depth bucket enclosing the given depth; supported depths span 0 to
// 255 centimeters below ground level.
func (a *WeatherArchive) HourlySoilTemperature(ctx context.Context, depth int, unit string) (meteo.Series[float32], error) {
	bucket, err := meteo.ArchiveSoilDepthRange(depth)
	if err != nil {
		return meteo.Series[float32]{}, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return meteo.Series[float32]{}, err
	}
	metric := fmt.Sprintf("soil_temperature_%scm", bucket)
	return a.series(ctx, meteo.Hourly, metric, meteo.Params{"temperature_unit": unit})
}

// HourlySoilMoisture fetches historical hourly soil moisture (m³/m³) for
// the depth bucket enclosing the given depth; supported depths span 0 to
// 255 centimeters below ground level.
func (a *WeatherArchive) HourlySoilMoisture(ctx context.Context, depth int) (meteo.Series[float32], error) {
	bucket, err := meteo.ArchiveSoilDepthRange(depth)
	if err != nil {
		return meteo.Series[float32]{}, err
	}
	return a.series(ctx, meteo.Hourly, fmt.Sprintf("soil_moisture_%scm", bucket), nil)
}
