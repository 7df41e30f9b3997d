package main

import (
	"context"
	_ "embed"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"atmos/cli"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx := context.Background()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	var config cli.Config
	if err := yaml.Unmarshal(configRaw, &config); err != nil {
		log.Fatal().Err(err).Msg("parsing embedded config")
	}

	cmd, err := cli.New(config, log)
	if err != nil {
		log.Fatal().Err(err).Msg("building command")
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
