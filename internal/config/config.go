package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hemosim/internal/hemo"
)

const (
	DefaultStepsPerBeat = 400
	DefaultBeats        = 8
)

// Config is the yaml run configuration. A preset, if named, supplies the
// scenario; an explicit scenario block overrides the preset wholesale.
type Config struct {
	Preset        string   `yaml:"preset"`
	AutoElastance bool     `yaml:"auto_elastance"`
	StepsPerBeat  int      `yaml:"steps_per_beat"`
	Beats         int      `yaml:"beats"`
	Scenario      Scenario `yaml:"scenario"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:       "normal",
		StepsPerBeat: DefaultStepsPerBeat,
		Beats:        DefaultBeats,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{StepsPerBeat: DefaultStepsPerBeat, Beats: DefaultBeats}
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

// Options returns the run options described by the config.
func (c *Config) Options() hemo.RunOptions {
	return hemo.RunOptions{StepsPerBeat: c.StepsPerBeat, Beats: c.Beats}
}

// Resolve returns the scenario the config describes: the named preset,
// unless an explicit scenario block is present.
func (c *Config) Resolve() (Scenario, error) {
	if c.Scenario != (Scenario{}) {
		return c.Scenario, nil
	}
	name := c.Preset
	if name == "" {
		name = "normal"
	}
	sc, ok := GetPreset(name)
	if !ok {
		return Scenario{}, fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	return sc, nil
}

// Parameters resolves the config to engine parameters, applying the
// auto-elastance transform when requested.
func (c *Config) Parameters() (hemo.Parameters, error) {
	sc, err := c.Resolve()
	if err != nil {
		return hemo.Parameters{}, err
	}
	p := sc.Parameters()
	if c.AutoElastance {
		p = p.WithDerivedElastance()
	}
	return p, nil
}
