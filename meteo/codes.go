package meteo

import (
	_ "embed"
	"encoding/json"
	"strconv"
)

// weather_codes.json maps WMO weather codes (string keys, matching the
// wire format) to human descriptions.
//
//go:embed weather_codes.json
var weatherCodesRaw []byte

var weatherCodes = func() map[string]string {
	codes := make(map[string]string)
	if err := json.Unmarshal(weatherCodesRaw, &codes); err != nil {
		panic("meteo: malformed weather_codes.json: " + err.Error())
	}
	return codes
}()

// WeatherCodeDescription looks up the description of a WMO weather code.
// An unknown code indicates a data-integrity problem and fails loudly
// rather than defaulting.
func WeatherCodeDescription(code int) (string, error) {
	description, ok := weatherCodes[strconv.Itoa(code)]
	if !ok {
		return "", &CodeLookupError{Code: code}
	}
	return description, nil
}

// DescribeCodes derives a two-column table pairing each weather code in
// the series with its description.
func DescribeCodes(series Series[uint8]) (CodeTable, error) {
	descriptions := make([]string, series.Len())
	for i, code := range series.Values {
		description, err := WeatherCodeDescription(int(code))
		if err != nil {
			return CodeTable{}, err
		}
		descriptions[i] = description
	}

	return CodeTable{
		IndexName:    series.IndexName,
		Index:        series.Index,
		Codes:        series.Values,
		Descriptions: descriptions,
	}, nil
}
