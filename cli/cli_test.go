package cli

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmos/meteo"
)

func validConfig() Config {
	var config Config
	config.Units.Temperature = "celsius"
	config.Units.Precipitation = "mm"
	config.Units.WindSpeed = "kmh"
	config.Geocoding.Count = 5
	config.TimeoutSeconds = 30
	return config
}

func TestNewBuildsSubcommands(t *testing.T) {
	root, err := New(validConfig(), zerolog.Nop())
	require.NoError(t, err)

	names := make([]string, 0, 4)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"current", "daily", "geocode", "elevation"}, names)
}

func TestNewRejectsBadConfig(t *testing.T) {
	var argErr *meteo.ArgumentError

	config := validConfig()
	config.Units.WindSpeed = "warp"
	_, err := New(config, zerolog.Nop())
	require.ErrorAs(t, err, &argErr)

	config = validConfig()
	config.Geocoding.Count = 0
	_, err = New(config, zerolog.Nop())
	require.ErrorAs(t, err, &argErr)
}
