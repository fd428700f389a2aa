// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Species    SpeciesConfig    `yaml:"species"`
	Population PopulationConfig `yaml:"population"`
	Genome     GenomeConfig     `yaml:"genome"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds grid dimensions in tiles.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeciesConfig holds procedural species generation parameters.
type SpeciesConfig struct {
	Count           int     `yaml:"count"`            // number of species rolled at world reset
	AquaticChance   float64 `yaml:"aquatic_chance"`   // probability a species is water-bound
	CarnivoreChance float64 `yaml:"carnivore_chance"` // diet roll: carnivore
	OmnivoreChance  float64 `yaml:"omnivore_chance"`  // diet roll: omnivore (rest are herbivores)
	CannibalChance  float64 `yaml:"cannibal_chance"`  // probability a species eats its own kind
}

// PopulationConfig holds initial population parameters.
type PopulationConfig struct {
	InitialPerSpecies int `yaml:"initial_per_species"`
}

// GenomeConfig holds founder genome parameters.
type GenomeConfig struct {
	InitJitter float64 `yaml:"init_jitter"` // uniform variance applied to baseline traits at spawn
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowSteps int `yaml:"stats_window_steps"`
	PerfWindow       int `yaml:"perf_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyFloors()

	return cfg, nil
}

// applyFloors keeps a hand-edited config from producing a degenerate run.
func (c *Config) applyFloors() {
	if c.Species.Count < 1 {
		c.Species.Count = 1
	}
	if c.Population.InitialPerSpecies < 0 {
		c.Population.InitialPerSpecies = 0
	}
	if c.Telemetry.StatsWindowSteps < 1 {
		c.Telemetry.StatsWindowSteps = 1
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
