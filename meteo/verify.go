package meteo

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func verifyChoice(param, value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	return &ArgumentError{
		Param:      param,
		Value:      value,
		Constraint: "one of " + strings.Join(choices, ", "),
	}
}

func verifyAltitude(param string, altitude int, choices []int) error {
	if slices.Contains(choices, altitude) {
		return nil
	}
	constraint := make([]string, len(choices))
	for i, choice := range choices {
		constraint[i] = fmt.Sprintf("%d", choice)
	}
	return &ArgumentError{
		Param:      param,
		Value:      altitude,
		Constraint: "one of " + strings.Join(constraint, ", "),
	}
}

func verifyIntRange(param string, value, lo, hi int) error {
	if validate.Var(value, fmt.Sprintf("gte=%d,lte=%d", lo, hi)) != nil {
		return &ArgumentError{
			Param:      param,
			Value:      value,
			Constraint: fmt.Sprintf("an integer between %d and %d", lo, hi),
		}
	}
	return nil
}

// VerifyCoordinates checks that lat and long form a valid geographic point.
func VerifyCoordinates(lat, long float64) error {
	if validate.Var(lat, "gte=-90,lte=90") != nil {
		return &ArgumentError{Param: "lat", Value: lat, Constraint: "a number between -90 and 90"}
	}
	if validate.Var(long, "gte=-180,lte=180") != nil {
		return &ArgumentError{Param: "long", Value: long, Constraint: "a number between -180 and 180"}
	}
	return nil
}

// VerifyTemperatureUnit checks the temperature unit selector.
func VerifyTemperatureUnit(unit string) error {
	return verifyChoice("temperature unit", unit, TemperatureUnits)
}

// VerifyPrecipitationUnit checks the precipitation unit selector.
func VerifyPrecipitationUnit(unit string) error {
	return verifyChoice("precipitation unit", unit, PrecipitationUnits)
}

// VerifyWindSpeedUnit checks the wind speed unit selector.
func VerifyWindSpeedUnit(unit string) error {
	return verifyChoice("wind speed unit", unit, WindSpeedUnits)
}

// VerifyUnits checks the three unit selectors shared by the summary calls.
func VerifyUnits(temperatureUnit, precipitationUnit, windSpeedUnit string) error {
	if err := VerifyTemperatureUnit(temperatureUnit); err != nil {
		return err
	}
	if err := VerifyPrecipitationUnit(precipitationUnit); err != nil {
		return err
	}
	return VerifyWindSpeedUnit(windSpeedUnit)
}

// VerifyCloudCoverLevel checks the cloud cover altitude level.
func VerifyCloudCoverLevel(level string) error {
	return verifyChoice("cloud cover level", level, CloudCoverLevels)
}

// VerifyDailyStatistic checks the daily statistical metric selector.
func VerifyDailyStatistic(statistic string) error {
	return verifyChoice("daily statistic", statistic, DailyStatistics)
}

// VerifyGas checks the atmospheric gas selector.
func VerifyGas(gas string) error {
	return verifyChoice("atmospheric gas", gas, Gases)
}

// VerifyPlant checks the plant species selector for pollen data.
func VerifyPlant(plant string) error {
	return verifyChoice("plant species", plant, Plants)
}

// VerifyAQISource checks the air quality index source selector.
func VerifyAQISource(source string) error {
	return verifyChoice("AQI source", source, AQISources)
}

// PressureLevelMetric resolves a measurement level to its wire metric name.
func PressureLevelMetric(level string) (string, error) {
	metric, ok := pressureLevelMetrics[level]
	if !ok {
		return "", &ArgumentError{Param: "pressure level", Value: level, Constraint: "one of surface, sealevel"}
	}
	return metric, nil
}

// WaveTypePrefix resolves an ocean wave type to its metric name prefix.
func WaveTypePrefix(waveType string) (string, error) {
	prefix, ok := WaveTypePrefixes[waveType]
	if !ok {
		return "", &ArgumentError{Param: "wave type", Value: waveType, Constraint: "one of composite, wind, swell"}
	}
	return prefix, nil
}

// VerifyPeriodicalFrequency checks that the frequency targets a periodical
// response branch.
func VerifyPeriodicalFrequency(freq Frequency) error {
	if freq != Hourly && freq != Daily {
		return &ArgumentError{Param: "frequency", Value: freq.Key(), Constraint: "one of hourly, daily"}
	}
	return nil
}

// VerifyForecastDays checks the forecast horizon against the endpoint's
// source-specific maximum.
func VerifyForecastDays(days, max int) error {
	return verifyIntRange("forecast_days", days, 1, max)
}

// VerifyPastDays checks the number of past days included in a forecast.
func VerifyPastDays(days int) error {
	return verifyIntRange("past_days", days, 0, 92)
}

// VerifyCount checks the geocoding result count.
func VerifyCount(count int) error {
	return verifyIntRange("count", count, 1, 20)
}

// VerifyTemperatureAltitude checks an altitude for temperature extraction.
func VerifyTemperatureAltitude(altitude int) error {
	return verifyAltitude("altitude", altitude, TemperatureAltitudes)
}

// VerifyWindAltitude checks an altitude for wind data extraction.
func VerifyWindAltitude(altitude int) error {
	return verifyAltitude("altitude", altitude, WindAltitudes)
}

// VerifyArchiveWindAltitude checks an altitude for historical wind data.
func VerifyArchiveWindAltitude(altitude int) error {
	return verifyAltitude("altitude", altitude, ArchiveWindAltitudes)
}

// VerifySoilTemperatureDepth checks a forecast soil temperature depth.
func VerifySoilTemperatureDepth(depth int) error {
	return verifyAltitude("depth", depth, SoilTemperatureDepths)
}

func resolveDepth(depth int, buckets []depthBucket) (string, error) {
	for _, bucket := range buckets {
		if depth >= bucket.lo && depth < bucket.hi {
			return bucket.label, nil
		}
	}
	top := buckets[len(buckets)-1].hi
	return "", &ArgumentError{
		Param:      "depth",
		Value:      depth,
		Constraint: fmt.Sprintf("an integer between 0 and %d", top-1),
	}
}

// ArchiveSoilDepthRange resolves a soil depth in centimeters to the
// enclosing bucket label accepted by the historical archive API.
func ArchiveSoilDepthRange(depth int) (string, error) {
	return resolveDepth(depth, archiveSoilDepths)
}

// SoilMoistureDepthRange resolves a soil moisture depth in centimeters to
// the enclosing bucket label accepted by the forecast API.
func SoilMoistureDepthRange(depth int) (string, error) {
	return resolveDepth(depth, soilMoistureDepths)
}

// DateLayout is the ISO-8601 date format used by the archive endpoint.
const DateLayout = "2006-01-02"

// ResolveDate parses an ISO-8601 (YYYY-MM-DD) date string and rejects
// dates later than the current date.
func ResolveDate(value string) (time.Time, error) {
	target, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &ArgumentError{
			Param:      "date",
			Value:      value,
			Constraint: "an ISO-8601 (YYYY-MM-DD) date string",
		}
	}
	return CheckDate(target)
}

// CheckDate rejects dates later than the current date. The comparison is
// calendar-based, so any time on today's date passes.
func CheckDate(target time.Time) (time.Time, error) {
	if target.Format(DateLayout) > time.Now().Format(DateLayout) {
		return time.Time{}, &ArgumentError{
			Param:      "date",
			Value:      target.Format(DateLayout),
			Constraint: "a date not later than the current date",
		}
	}
	return target, nil
}

// VerifyDateOrder checks that the start date does not come after the end date.
func VerifyDateOrder(start, end time.Time) error {
	if start.After(end) {
		return &ArgumentError{
			Param:      "start_date",
			Value:      start.Format(DateLayout),
			Constraint: "a date not later than end_date",
		}
	}
	return nil
}
