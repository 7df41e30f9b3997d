package meteo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, raw string) map[string]any {
	t.Helper()
	body := make(map[string]any)
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestExtractCurrent(t *testing.T) {
	body := decodeBody(t, `{
		"current": {"time": "2024-06-01T12:00", "interval": 900, "temperature_2m": 21.5}
	}`)

	value, err := extractCurrent(body, "temperature_2m")
	require.NoError(t, err)
	assert.Equal(t, 21.5, value)
}

func TestExtractCurrentMissing(t *testing.T) {
	var missing *MissingFieldError

	_, err := extractCurrent(decodeBody(t, `{"hourly": {}}`), "temperature_2m")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "current", missing.Field)

	_, err = extractCurrent(decodeBody(t, `{"current": {"time": "t", "interval": 900}}`), "temperature_2m")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "temperature_2m", missing.Field)
}

func TestExtractBundle(t *testing.T) {
	body := decodeBody(t, `{
		"current": {
			"time": "2024-06-01T12:00",
			"interval": 900,
			"temperature_2m": 21.5,
			"relative_humidity_2m": 40
		}
	}`)

	bundle, err := extractBundle(body,
		[]string{"temperature_2m", "relative_humidity_2m"},
		[]string{"temperature", "relative_humidity"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"temperature", "relative_humidity"}, bundle.Labels)
	assert.Equal(t, []float64{21.5, 40}, bundle.Values)

	humidity, ok := bundle.Get("relative_humidity")
	require.True(t, ok)
	assert.Equal(t, 40.0, humidity)

	_, ok = bundle.Get("wind_speed")
	assert.False(t, ok)
}

func TestExtractBundleLabelMismatch(t *testing.T) {
	body := decodeBody(t, `{"current": {"time": "t", "interval": 900, "temperature_2m": 21.5}}`)

	var shapeErr *ShapeError
	_, err := extractBundle(body, []string{"temperature_2m"}, []string{"a", "b"})
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Expected)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestExtractSeriesHourly(t *testing.T) {
	body := decodeBody(t, `{
		"hourly": {
			"time": ["2020-01-01T00:00", "2020-01-01T01:00"],
			"temperature_2m": [10.0, 10.5]
		}
	}`)

	series, err := extractSeries[float32](body, Hourly, "temperature_2m")
	require.NoError(t, err)

	assert.Equal(t, "Datetime", series.IndexName)
	assert.Equal(t, []string{"2020-01-01T00:00", "2020-01-01T01:00"}, series.Index)
	assert.Equal(t, []float32{10.0, 10.5}, series.Values)
	assert.Equal(t, 2, series.Len())

	timestamp, value := series.At(1)
	assert.Equal(t, "2020-01-01T01:00", timestamp)
	assert.Equal(t, float32(10.5), value)
}

func TestExtractSeriesDailyIndexName(t *testing.T) {
	body := decodeBody(t, `{
		"daily": {
			"time": ["2020-01-01", "2020-01-02"],
			"sunrise": ["2020-01-01T07:12", "2020-01-02T07:12"]
		}
	}`)

	series, err := extractSeries[string](body, Daily, "sunrise")
	require.NoError(t, err)
	assert.Equal(t, "Date", series.IndexName)
	assert.Equal(t, []string{"2020-01-01T07:12", "2020-01-02T07:12"}, series.Values)
}

func TestExtractSeriesCodes(t *testing.T) {
	body := decodeBody(t, `{
		"daily": {"time": ["2020-01-01", "2020-01-02"], "weather_code": [0, 63]}
	}`)

	series, err := extractSeries[uint8](body, Daily, "weather_code")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 63}, series.Values)
}

func TestExtractSeriesMissingMetric(t *testing.T) {
	body := decodeBody(t, `{"hourly": {"time": ["2020-01-01T00:00"]}}`)

	var missing *MissingFieldError
	_, err := extractSeries[float32](body, Hourly, "temperature_2m")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "temperature_2m", missing.Field)
}

func TestExtractSeriesMisaligned(t *testing.T) {
	body := decodeBody(t, `{
		"hourly": {"time": ["2020-01-01T00:00", "2020-01-01T01:00"], "rain": [0.1]}
	}`)

	var shapeErr *ShapeError
	_, err := extractSeries[float32](body, Hourly, "rain")
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Expected)
	assert.Equal(t, 1, shapeErr.Got)
}

func TestSeriesRoundTrip(t *testing.T) {
	wantIndex := []string{"2020-01-01T00:00", "2020-01-01T01:00", "2020-01-01T02:00"}
	wantValues := []float32{1.25, -3.5, 0}

	body := decodeBody(t, `{
		"hourly": {
			"time": ["2020-01-01T00:00", "2020-01-01T01:00", "2020-01-01T02:00"],
			"temperature_2m": [1.25, -3.5, 0]
		}
	}`)

	series, err := extractSeries[float32](body, Hourly, "temperature_2m")
	require.NoError(t, err)

	index, values := series.Pairs()
	assert.Equal(t, wantIndex, index)
	assert.Equal(t, wantValues, values)
}

func TestExtractTable(t *testing.T) {
	body := decodeBody(t, `{
		"hourly": {
			"time": ["2020-01-01T00:00", "2020-01-01T01:00"],
			"temperature_2m": [10.0, 10.5],
			"relative_humidity_2m": [40, 42]
		}
	}`)

	table, err := extractTable(body, Hourly,
		[]string{"temperature_2m", "relative_humidity_2m"},
		[]string{"temperature", "humidity"},
	)
	require.NoError(t, err)

	assert.Equal(t, "Datetime", table.IndexName)
	assert.Equal(t, []string{"2020-01-01T00:00", "2020-01-01T01:00"}, table.Index)
	assert.Equal(t, []string{"temperature", "humidity"}, table.Columns)

	temperature, ok := table.Column("temperature")
	require.True(t, ok)
	assert.Equal(t, []float32{10.0, 10.5}, temperature)

	humidity, ok := table.Column("humidity")
	require.True(t, ok)
	assert.Equal(t, []float32{40, 42}, humidity)

	_, ok = table.Column("temperature_2m")
	assert.False(t, ok, "columns must carry display labels, not wire names")
}

func TestExtractTableMissingMetric(t *testing.T) {
	body := decodeBody(t, `{
		"daily": {"time": ["2020-01-01"], "rain_sum": [1.0]}
	}`)

	var missing *MissingFieldError
	_, err := extractTable(body, Daily, []string{"rain_sum", "snowfall_sum"}, []string{"rain", "snow"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "snowfall_sum", missing.Field)
}

func TestExtractSeriesNullBecomesNaN(t *testing.T) {
	body := decodeBody(t, `{
		"hourly": {"time": ["2020-01-01T00:00", "2020-01-01T01:00"], "ammonia": [3.5, null]}
	}`)

	series, err := extractSeries[float32](body, Hourly, "ammonia")
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), series.Values[0])
	assert.True(t, series.Values[1] != series.Values[1], "null must decode to NaN")
}

func TestExtractSeriesNullCodeFailsLoudly(t *testing.T) {
	// weather codes have no gap representation, so a null must not
	// default to code 0 ("Clear sky")
	body := decodeBody(t, `{
		"daily": {"time": ["2020-01-01", "2020-01-02"], "weather_code": [63, null]}
	}`)

	_, err := extractSeries[uint8](body, Daily, "weather_code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather_code")
}

func TestExtractSeriesNullVisibilityFailsLoudly(t *testing.T) {
	body := decodeBody(t, `{
		"hourly": {"time": ["2020-01-01T00:00"], "visibility": [null]}
	}`)

	_, err := extractSeries[int32](body, Hourly, "visibility")
	require.Error(t, err)
}

func TestExtractSeriesNullTimestampFailsLoudly(t *testing.T) {
	body := decodeBody(t, `{
		"daily": {"time": ["2020-01-01"], "sunrise": [null]}
	}`)

	_, err := extractSeries[string](body, Daily, "sunrise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sunrise")
}

func TestParamsMergeIsPure(t *testing.T) {
	base := Params{"latitude": "26.91", "longitude": "32.89", "forecast_days": "7"}
	overlay := Params{"hourly": "temperature_2m", "forecast_days": "3"}

	merged := base.Merge(overlay)

	assert.Equal(t, "3", merged["forecast_days"], "overlay wins")
	assert.Equal(t, "7", base["forecast_days"], "base is never mutated")
	assert.Equal(t, "temperature_2m", merged["hourly"])
	assert.NotContains(t, overlay, "latitude")
}

func TestFrequencyKeys(t *testing.T) {
	assert.Equal(t, "current", Current.Key())
	assert.Equal(t, "hourly", Hourly.Key())
	assert.Equal(t, "daily", Daily.Key())
	assert.Equal(t, "", Current.IndexName())
	assert.Equal(t, "Datetime", Hourly.IndexName())
	assert.Equal(t, "Date", Daily.IndexName())
}
