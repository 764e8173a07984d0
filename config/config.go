// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// SimConfig is settings for the simulation engine
type SimConfig struct {
	// the number of 3' primer bases used as a PCR annealing anchor
	AnnealLength int `mapstructure:"anneal-length"`

	// the homology-arm length used by Gibson assembly
	HomologyLength int `mapstructure:"homology-length"`
}

// OutputConfig is settings for how run results are written
type OutputConfig struct {
	// write results as JSON rather than a text table
	JSON bool `mapstructure:"json"`
}

// Config is the root-level settings struct and is a mix of settings available
// in settings.yaml and those available from the command line
type Config struct {
	// simulation settings
	Sim SimConfig `mapstructure:",squash"`

	// output settings
	Output OutputConfig `mapstructure:",squash"`
}

// New returns a new Config struct populated by Viper settings (either from
// the local settings.yaml or command line arguments)
func New() Config {
	viper.SetDefault("anneal-length", 18)
	viper.SetDefault("homology-length", 20)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings, %v", err)
	}

	return c
}
