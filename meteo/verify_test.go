package meteo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCoordinates(t *testing.T) {
	valid := [][2]float64{
		{0, 0},
		{-90, -180},
		{90, 180},
		{26.91, 32.89},
	}
	for _, pair := range valid {
		assert.NoError(t, VerifyCoordinates(pair[0], pair[1]))
	}

	invalid := [][2]float64{
		{-90.01, 0},
		{90.01, 0},
		{0, -180.5},
		{0, 181},
	}
	for _, pair := range invalid {
		err := VerifyCoordinates(pair[0], pair[1])
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
	}
}

func TestVerifyUnits(t *testing.T) {
	for _, unit := range WindSpeedUnits {
		assert.NoError(t, VerifyWindSpeedUnit(unit))
	}
	assert.Error(t, VerifyWindSpeedUnit("knots"))

	assert.NoError(t, VerifyTemperatureUnit("celsius"))
	assert.NoError(t, VerifyTemperatureUnit("fahrenheit"))
	assert.Error(t, VerifyTemperatureUnit("kelvin"))

	assert.NoError(t, VerifyPrecipitationUnit("mm"))
	assert.NoError(t, VerifyPrecipitationUnit("inch"))
	assert.Error(t, VerifyPrecipitationUnit("cm"))

	err := VerifyUnits("celsius", "mm", "warp")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "wind speed unit", argErr.Param)
}

func TestVerifyEnumerations(t *testing.T) {
	assert.NoError(t, VerifyCloudCoverLevel("mid"))
	assert.Error(t, VerifyCloudCoverLevel("top"))

	assert.NoError(t, VerifyDailyStatistic("mean"))
	assert.Error(t, VerifyDailyStatistic("median"))

	assert.NoError(t, VerifyGas("sulphur_dioxide"))
	assert.Error(t, VerifyGas("methane"))

	assert.NoError(t, VerifyPlant("ragweed"))
	assert.Error(t, VerifyPlant("oak"))

	assert.NoError(t, VerifyAQISource("us"))
	assert.Error(t, VerifyAQISource("asian"))
}

func TestPressureLevelMetric(t *testing.T) {
	metric, err := PressureLevelMetric("surface")
	require.NoError(t, err)
	assert.Equal(t, "surface_pressure", metric)

	metric, err = PressureLevelMetric("sealevel")
	require.NoError(t, err)
	assert.Equal(t, "pressure_msl", metric)

	_, err = PressureLevelMetric("underground")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestWaveTypePrefix(t *testing.T) {
	prefix, err := WaveTypePrefix("composite")
	require.NoError(t, err)
	assert.Equal(t, "", prefix)

	prefix, err = WaveTypePrefix("swell")
	require.NoError(t, err)
	assert.Equal(t, "swell_", prefix)

	_, err = WaveTypePrefix("tsunami")
	assert.Error(t, err)
}

func TestVerifyBoundedIntegers(t *testing.T) {
	assert.NoError(t, VerifyForecastDays(1, 16))
	assert.NoError(t, VerifyForecastDays(16, 16))
	assert.Error(t, VerifyForecastDays(0, 16))
	assert.Error(t, VerifyForecastDays(17, 16))
	assert.Error(t, VerifyForecastDays(9, 8))

	assert.NoError(t, VerifyPastDays(0))
	assert.NoError(t, VerifyPastDays(92))
	assert.Error(t, VerifyPastDays(93))
	assert.Error(t, VerifyPastDays(-1))

	assert.NoError(t, VerifyCount(1))
	assert.NoError(t, VerifyCount(20))
	assert.Error(t, VerifyCount(0))
	assert.Error(t, VerifyCount(21))
}

func TestVerifyAltitudes(t *testing.T) {
	for _, altitude := range TemperatureAltitudes {
		assert.NoError(t, VerifyTemperatureAltitude(altitude))
	}
	assert.Error(t, VerifyTemperatureAltitude(10))

	for _, altitude := range WindAltitudes {
		assert.NoError(t, VerifyWindAltitude(altitude))
	}
	assert.Error(t, VerifyWindAltitude(2))

	assert.NoError(t, VerifyArchiveWindAltitude(100))
	assert.Error(t, VerifyArchiveWindAltitude(80))

	assert.NoError(t, VerifySoilTemperatureDepth(54))
	assert.Error(t, VerifySoilTemperatureDepth(7))
}

func TestArchiveSoilDepthRange(t *testing.T) {
	cases := []struct {
		depth int
		label string
	}{
		{0, "0_to_7"},
		{6, "0_to_7"},
		{7, "7_to_28"},
		{27, "7_to_28"},
		{28, "28_to_100"},
		{99, "28_to_100"},
		{100, "100_to_255"},
		{255, "100_to_255"},
	}
	for _, tc := range cases {
		label, err := ArchiveSoilDepthRange(tc.depth)
		require.NoError(t, err, "depth %d", tc.depth)
		assert.Equal(t, tc.label, label, "depth %d", tc.depth)
	}

	for _, depth := range []int{-1, 256, 1000} {
		_, err := ArchiveSoilDepthRange(depth)
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr, "depth %d", depth)
	}
}

func TestSoilMoistureDepthRange(t *testing.T) {
	cases := []struct {
		depth int
		label string
	}{
		{0, "0_to_1"},
		{1, "1_to_3"},
		{3, "3_to_9"},
		{9, "9_to_27"},
		{27, "27_to_81"},
		{81, "27_to_81"},
	}
	for _, tc := range cases {
		label, err := SoilMoistureDepthRange(tc.depth)
		require.NoError(t, err, "depth %d", tc.depth)
		assert.Equal(t, tc.label, label, "depth %d", tc.depth)
	}

	_, err := SoilMoistureDepthRange(82)
	assert.Error(t, err)
	_, err = SoilMoistureDepthRange(-1)
	assert.Error(t, err)
}

func TestResolveDate(t *testing.T) {
	resolved, err := ResolveDate("2020-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2020, resolved.Year())
	assert.Equal(t, time.January, resolved.Month())
	assert.Equal(t, 10, resolved.Day())

	_, err = ResolveDate("not-a-date")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)

	future := time.Now().AddDate(1, 0, 0).Format(DateLayout)
	_, err = ResolveDate(future)
	require.ErrorAs(t, err, &argErr)

	// Today is not in the future.
	_, err = ResolveDate(time.Now().Format(DateLayout))
	assert.NoError(t, err)
}

func TestVerifyDateOrder(t *testing.T) {
	start, err := ResolveDate("2020-01-01")
	require.NoError(t, err)
	end, err := ResolveDate("2020-02-01")
	require.NoError(t, err)

	assert.NoError(t, VerifyDateOrder(start, end))
	assert.NoError(t, VerifyDateOrder(start, start))

	err = VerifyDateOrder(end, start)
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "start_date", argErr.Param)
}

func TestVerifyPeriodicalFrequency(t *testing.T) {
	assert.NoError(t, VerifyPeriodicalFrequency(Hourly))
	assert.NoError(t, VerifyPeriodicalFrequency(Daily))
	assert.Error(t, VerifyPeriodicalFrequency(Current))
}
