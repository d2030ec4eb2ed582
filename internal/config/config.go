// Package config loads the boardkit CLI configuration from an HCL
// file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete CLI configuration.
type Config struct {
	Defaults *Defaults `hcl:"defaults,block"`
	Rooms    []Room    `hcl:"room,block"`
}

// Defaults contains settings applied to every command.
type Defaults struct {
	Hero     string `hcl:"hero,optional"`
	TimeZone string `hcl:"time_zone,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Room points at a poker room's hand-history files.
type Room struct {
	Name        string `hcl:"name,label"`
	HistoryGlob string `hcl:"history_glob"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Defaults: &Defaults{
			TimeZone: "America/New_York",
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if config.Defaults == nil {
		config.Defaults = Default().Defaults
	}
	if config.Defaults.TimeZone == "" {
		config.Defaults.TimeZone = "America/New_York"
	}
	if config.Defaults.LogLevel == "" {
		config.Defaults.LogLevel = "info"
	}
	return &config, nil
}

// Room returns the named room, or nil.
func (c *Config) Room(name string) *Room {
	for i := range c.Rooms {
		if c.Rooms[i].Name == name {
			return &c.Rooms[i]
		}
	}
	return nil
}
