package forecast

import (
	"context"
	"fmt"

	"atmos/meteo"
)

// CurrentSummary fetches the standing current-weather summary: temperature,
// relative humidity, precipitation, weather code, cloud cover, surface
// pressure, wind speed and wind direction.
func (w *Weather) CurrentSummary(ctx context.Context, temperatureUnit, precipitationUnit, windSpeedUnit string) (meteo.Bundle, error) {
	if err := meteo.VerifyUnits(temperatureUnit, precipitationUnit, windSpeedUnit); err != nil {
		return meteo.Bundle{}, err
	}
	params := w.base.Merge(meteo.UnitParams(temperatureUnit, precipitationUnit, windSpeedUnit))
	return w.client.CurrentSummary(ctx, w.endpoint, currentSummaryMetrics, currentSummaryLabels, params)
}

// CurrentTemperature fetches the current temperature at an altitude of
// 2, 80, 120 or 180 meters above ground level.
func (w *Weather) CurrentTemperature(ctx context.Context, altitude int, unit string) (float64, error) {
	if err := meteo.VerifyTemperatureAltitude(altitude); err != nil {
		return 0, err
	}
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return 0, err
	}
	metric := fmt.Sprintf("temperature_%dm", altitude)
	return w.currentValue(ctx, metric, meteo.Params{"temperature_unit": unit})
}

// CurrentApparentTemperature fetches the current feels-like temperature,
// combining wind chill, relative humidity and solar radiation.
func (w *Weather) CurrentApparentTemperature(ctx context.Context, unit string) (float64, error) {
	if err := meteo.VerifyTemperatureUnit(unit); err != nil {
		return 0, err
	}
	return w.currentValue(ctx, "apparent_temperature", meteo.Params{"temperature_unit": unit})
}

// CurrentWeatherCode fetches the current WMO weather code together with
// its description.
func (w *Weather) CurrentWeatherCode(ctx context.Context) (int, string, error) {
	value, err := w.currentValue(ctx, "weather_code", nil)
	if err != nil {
		return 0, "", err
	}

	code := int(value)
	description, err := meteo.WeatherCodeDescription(code)
	if err != nil {
		return 0, "", err
	}
	return code, description, nil
}

// CurrentTotalCloudCover fetches the current total cloud cover percentage.
func (w *Weather) CurrentTotalCloudCover(ctx context.Context) (float64, error) {
	return w.currentValue(ctx, "cloud_cover", nil)
}

// CurrentCloudCover fetches the current cloud cover percentage at the
// given altitude level: "low" (up to 3 km), "mid" (3-8 km) or "high"
// (above 8 km).
func (w *Weather) CurrentCloudCover(ctx context.Context, level string) (float64, error) {
	if err := meteo.VerifyCloudCoverLevel(level); err != nil {
		return 0, err
	}
	return w.currentValue(ctx, "cloud_cover_"+level, nil)
}

// CurrentWindSpeed fetches the current wind speed at an altitude of 10,
// 80, 120 or 180 meters above ground level.
func (w *Weather) CurrentWindSpeed(ctx context.Context, altitude int, unit string) (float64, error) {
	if err := meteo.VerifyWindAltitude(altitude); err != nil {
		return 0, err
	}
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return 0, err
	}
	metric := fmt.Sprintf("wind_speed_%dm", altitude)
	return w.currentValue(ctx, metric, meteo.Params{"wind_speed_unit": unit})
}

// CurrentWindDirection fetches the current wind direction in degrees at
// an altitude of 10, 80, 120 or 180 meters above ground level.
func (w *Weather) CurrentWindDirection(ctx context.Context, altitude int) (float64, error) {
	if err := meteo.VerifyWindAltitude(altitude); err != nil {
		return 0, err
	}
	return w.currentValue(ctx, fmt.Sprintf("wind_direction_%dm", altitude), nil)
}

// CurrentWindGusts fetches the current wind gusts at an altitude of 10,
// 80, 120 or 180 meters above ground level.
func (w *Weather) CurrentWindGusts(ctx context.Context, altitude int, unit string) (float64, error) {
	if err := meteo.VerifyWindAltitude(altitude); err != nil {
		return 0, err
	}
	if err := meteo.VerifyWindSpeedUnit(unit); err != nil {
		return 0, err
	}
	metric := fmt.Sprintf("wind_gusts_%dm", altitude)
	return w.currentValue(ctx, metric, meteo.Params{"wind_speed_unit": unit})
}

// CurrentRelativeHumidity fetches the current relative humidity
// percentage at 2 meters above ground level.
func (w *Weather) CurrentRelativeHumidity(ctx context.Context) (float64, error) {
	return w.currentValue(ctx, "relative_humidity_2m", nil)
}

// CurrentPrecipitation fetches the current precipitation sum of rain,
// showers and snowfall.
func (w *Weather) CurrentPrecipitation(ctx context.Context, unit string) (float64, error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return 0, err
	}
	return w.currentValue(ctx, "precipitation", meteo.Params{"precipitation_unit": unit})
}

// CurrentPressure fetches the current atmospheric pressure in
// hectopascals at the "surface" or "sealevel" measurement level.
func (w *Weather) CurrentPressure(ctx context.Context, level string) (float64, error) {
	metric, err := meteo.PressureLevelMetric(level)
	if err != nil {
		return 0, err
	}
	return w.currentValue(ctx, metric, nil)
}

// CurrentRainfall fetches the current rainfall in the given
// precipitation unit.
func (w *Weather) CurrentRainfall(ctx context.Context, unit string) (float64, error) {
	if err := meteo.VerifyPrecipitationUnit(unit); err != nil {
		return 0, err
	}
	return w.currentValue(ctx, "rain", meteo.Params{"precipitation_unit": unit})
}

// CurrentSnowfall fetches the current snowfall in centimeters.
func (w *Weather) CurrentSnowfall(ctx context.Context) (float64, error) {
	return w.currentValue(ctx, "snowfall", nil)
}

// CurrentVisibility fetches the current visibility in meters.
func (w *Weather) CurrentVisibility(ctx context.Context) (float64, error) {
	return w.currentValue(ctx, "visibility", nil)
}

// IsDay reports whether it is currently daytime at the location.
func (w *Weather) IsDay(ctx context.Context) (bool, error) {
	value, err := w.currentValue(ctx, "is_day", nil)
	if err != nil {
		return false, err
	}
	return value == 1, nil
}
