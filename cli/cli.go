// Package cli wires the atmos library into a small demo command for
// inspecting weather, geocoding and elevation data from a terminal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"atmos/forecast"
	"atmos/geo"
	"atmos/meteo"
)

// Config carries the CLI defaults loaded from the embedded config file.
type Config struct {
	Units struct {
		Temperature   string `yaml:"temperature"`
		Precipitation string `yaml:"precipitation"`
		WindSpeed     string `yaml:"windSpeed"`
	} `yaml:"units"`
	Geocoding struct {
		Count int `yaml:"count"`
	} `yaml:"geocoding"`
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// New builds the root command with its current, daily, geocode and
// elevation subcommands. The returned command owns a shared client for
// its whole lifetime.
func New(config Config, log zerolog.Logger) (*cobra.Command, error) {
	if err := meteo.VerifyUnits(
		config.Units.Temperature,
		config.Units.Precipitation,
		config.Units.WindSpeed,
	); err != nil {
		return nil, err
	}
	if err := meteo.VerifyCount(config.Geocoding.Count); err != nil {
		return nil, err
	}

	client := meteo.NewClient(
		meteo.WithTimeout(time.Duration(config.TimeoutSeconds)*time.Second),
		meteo.WithLogger(log),
	)

	root := &cobra.Command{
		Use:           "atmos",
		Short:         "Weather, air quality and geocoding data from Open-Meteo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			client.Close()
		},
	}

	root.AddCommand(
		newCurrentCommand(client, config),
		newDailyCommand(client, config),
		newGeocodeCommand(client, config),
		newElevationCommand(client, config),
	)

	return root, nil
}

// locate resolves a city name to its best geocoding match.
func locate(ctx context.Context, client *meteo.Client, config Config, name string) (geo.Location, error) {
	locations, err := geo.CityDetails(ctx, client, name, config.Geocoding.Count)
	if err != nil {
		return geo.Location{}, err
	}
	if len(locations) == 0 {
		return geo.Location{}, fmt.Errorf("no location found for %q", name)
	}
	return locations[0], nil
}

func newCurrentCommand(client *meteo.Client, config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "current <city>",
		Short: "Current weather summary for a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := locate(cmd.Context(), client, config, args[0])
			if err != nil {
				return err
			}

			weather, err := forecast.New(location.Latitude, location.Longitude, forecast.WithClient(client))
			if err != nil {
				return err
			}

			summary, err := weather.CurrentSummary(
				cmd.Context(),
				config.Units.Temperature,
				config.Units.Precipitation,
				config.Units.WindSpeed,
			)
			if err != nil {
				return err
			}

			cmd.Printf("LOCATION\t%s, %s\n", location.Name, location.Country)
			for i, label := range summary.Labels {
				cmd.Printf("%-18s\t%.1f\n", label, summary.Values[i])
			}
			return nil
		},
	}
}

func newDailyCommand(client *meteo.Client, config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "daily <city>",
		Short: "Daily weather forecast summary for a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := locate(cmd.Context(), client, config, args[0])
			if err != nil {
				return err
			}

			weather, err := forecast.New(location.Latitude, location.Longitude, forecast.WithClient(client))
			if err != nil {
				return err
			}

			table, err := weather.DailySummary(
				cmd.Context(),
				config.Units.Temperature,
				config.Units.Precipitation,
				config.Units.WindSpeed,
			)
			if err != nil {
				return err
			}

			cmd.Printf("LOCATION\t%s, %s\n", location.Name, location.Country)
			cmd.Printf("%-12s", table.IndexName)
			for _, column := range table.Columns {
				cmd.Printf("%18s", column)
			}
			cmd.Printf("\n")

			for i, day := range table.Index {
				cmd.Printf("%-12s", day)
				for _, cells := range table.Cells {
					cmd.Printf("%18.1f", cells[i])
				}
				cmd.Printf("\n")
			}
			return nil
		},
	}
}

func newGeocodeCommand(client *meteo.Client, config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "geocode <city>",
		Short: "List locations matching a city name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := geo.CityDetails(cmd.Context(), client, args[0], config.Geocoding.Count)
			if err != nil {
				return err
			}
			if len(locations) == 0 {
				return fmt.Errorf("no location found for %q", args[0])
			}

			for _, location := range locations {
				cmd.Printf("%-24s %-20s %9.4f %9.4f\n",
					location.Name, location.Country,
					location.Latitude, location.Longitude,
				)
			}
			return nil
		},
	}
}

func newElevationCommand(client *meteo.Client, config Config) *cobra.Command {
	return &cobra.Command{
		Use:   "elevation <city>",
		Short: "Elevation above sea level for a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := locate(cmd.Context(), client, config, args[0])
			if err != nil {
				return err
			}

			elevation, err := geo.Elevation(cmd.Context(), client, location.Latitude, location.Longitude)
			if err != nil {
				return err
			}

			cmd.Printf("%s, %s: %.1f m\n", location.Name, location.Country, elevation)
			return nil
		},
	}
}
