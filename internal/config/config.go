// Package config defines the run configuration and its yaml form.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chargesim/internal/bounds"
	"github.com/san-kum/chargesim/internal/engine"
	"github.com/san-kum/chargesim/internal/force"
)

const (
	DefaultSteps   = 2000
	DefaultPreset  = "orbital"
	DefaultWorkers = 0 // auto
)

type Config struct {
	Preset      string       `yaml:"preset"`
	Seed        int64        `yaml:"seed"`
	Dt          float64      `yaml:"dt"`
	Steps       int          `yaml:"steps"`
	K           float64      `yaml:"k"`
	MinDistance float64      `yaml:"min_distance"`
	Integrator  string       `yaml:"integrator"`
	Force       string       `yaml:"force"`
	Workers     int          `yaml:"workers"`
	MaxTrail    int          `yaml:"max_trail"`
	Bounds      BoundsConfig `yaml:"bounds"`
}

type BoundsConfig struct {
	Shape string  `yaml:"shape"`
	Limit float64 `yaml:"limit"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:      DefaultPreset,
		Dt:          engine.DefaultDt,
		Steps:       DefaultSteps,
		K:           force.DefaultK,
		MinDistance: force.DefaultMinDistance,
		Integrator:  "semi-implicit",
		Force:       "serial",
		Workers:     DefaultWorkers,
		Bounds: BoundsConfig{
			Shape: "box",
			Limit: bounds.DefaultLimit,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
