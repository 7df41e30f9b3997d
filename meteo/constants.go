package meteo

// Open-Meteo API endpoints.
const (
	ForecastURL   = "https://api.open-meteo.com/v1/forecast"
	ArchiveURL    = "https://archive-api.open-meteo.com/v1/archive"
	MarineURL     = "https://marine-api.open-meteo.com/v1/marine"
	AirQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
	GeocodingURL  = "https://geocoding-api.open-meteo.com/v1/search"
	ElevationURL  = "https://api.open-meteo.com/v1/elevation"
)

// Unit and argument domains accepted by the data endpoints.
var (
	TemperatureUnits   = []string{"celsius", "fahrenheit"}
	PrecipitationUnits = []string{"mm", "inch"}
	WindSpeedUnits     = []string{"kmh", "mph", "ms", "kn"}
	CloudCoverLevels   = []string{"low", "mid", "high"}
	DailyStatistics    = []string{"max", "min", "mean"}
	AQISources         = []string{"european", "us"}

	Gases  = []string{"ozone", "carbon_monoxide", "nitrogen_dioxide", "sulphur_dioxide"}
	Plants = []string{"alder", "birch", "grass", "mugwort", "olive", "ragweed"}
)

// Altitudes in meters above ground level supported per metric family.
var (
	TemperatureAltitudes = []int{2, 80, 120, 180}
	WindAltitudes        = []int{10, 80, 120, 180}
	ArchiveWindAltitudes = []int{10, 100}
)

// SoilTemperatureDepths lists the discrete depths in centimeters at which
// the forecast API reports soil temperature.
var SoilTemperatureDepths = []int{0, 6, 18, 54}

// pressureLevelMetrics maps measurement levels to wire metric names.
var pressureLevelMetrics = map[string]string{
	"sealevel": "pressure_msl",
	"surface":  "surface_pressure",
}

// WaveTypePrefixes maps ocean wave types to the prefix applied to marine
// metric names on the wire.
var WaveTypePrefixes = map[string]string{
	"composite": "",
	"wind":      "wind_",
	"swell":     "swell_",
}

// Depth buckets are half-open ranges [Lo, Hi) in centimeters; the archive
// API accepts the bucket label in place of an arbitrary depth.
type depthBucket struct {
	lo, hi int
	label  string
}

var archiveSoilDepths = []depthBucket{
	{0, 7, "0_to_7"},
	{7, 28, "7_to_28"},
	{28, 100, "28_to_100"},
	{100, 256, "100_to_255"},
}

var soilMoistureDepths = []depthBucket{
	{0, 1, "0_to_1"},
	{1, 3, "1_to_3"},
	{3, 9, "3_to_9"},
	{9, 27, "9_to_27"},
	{27, 82, "27_to_81"},
}
