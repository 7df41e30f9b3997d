package meteo

import "strconv"

// Params is a flat mapping of query parameters for a single API request.
type Params map[string]string

// Merge combines the receiver with an overlay and returns a fresh map.
// Overlay values win; neither argument is mutated.
func (p Params) Merge(overlay Params) Params {
	merged := make(Params, len(p)+len(overlay))
	for key, value := range p {
		merged[key] = value
	}
	for key, value := range overlay {
		merged[key] = value
	}
	return merged
}

// Frequency identifies which time-granularity branch of a response is
// being read: a single current reading, or an hourly/daily series.
type Frequency uint8

const (
	Current Frequency = iota
	Hourly
	Daily
)

// Key returns the wire-format query key and response branch name.
func (f Frequency) Key() string {
	switch f {
	case Current:
		return "current"
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	}
	return ""
}

// IndexName returns the label of the timestamp index for periodical
// results: "Datetime" for hourly data and "Date" for daily data.
func (f Frequency) IndexName() string {
	switch f {
	case Hourly:
		return "Datetime"
	case Daily:
		return "Date"
	}
	return ""
}

func (f Frequency) String() string { return f.Key() }

// Coordinates returns the base parameters shared by every data request.
func Coordinates(lat, long float64) Params {
	return Params{
		"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
		"longitude": strconv.FormatFloat(long, 'f', -1, 64),
	}
}

// UnitParams returns the unit-selector parameters common to the weather
// and archive endpoints.
func UnitParams(temperatureUnit, precipitationUnit, windSpeedUnit string) Params {
	return Params{
		"temperature_unit":   temperatureUnit,
		"precipitation_unit": precipitationUnit,
		"wind_speed_unit":    windSpeedUnit,
	}
}
