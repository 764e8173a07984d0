// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"
)

func TestNew_defaults(t *testing.T) {
	c := New()

	if got, want := c.Sim.AnnealLength, 18; got != want {
		t.Errorf("Config.Sim.AnnealLength = %v, want %v", got, want)
	}
	if got, want := c.Sim.HomologyLength, 20; got != want {
		t.Errorf("Config.Sim.HomologyLength = %v, want %v", got, want)
	}
	if c.Output.JSON {
		t.Error("Config.Output.JSON should default to false")
	}
}
