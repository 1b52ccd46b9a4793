// Package config loads hexlife settings from YAML and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hexlife/pkg/sims/hexlife"
)

// EnvPath names the environment variable consulted when -config is not given.
const EnvPath = "HEXLIFE_CONFIG"

// Config holds everything a host needs to build and drive a world.
type Config struct {
	World WorldConfig `yaml:"world"`
	View  ViewConfig  `yaml:"view"`
	Run   RunConfig   `yaml:"run"`
}

// WorldConfig describes the automaton itself.
type WorldConfig struct {
	Radius  int       `yaml:"radius"`
	Preset  string    `yaml:"preset"`
	Rule    RuleValue `yaml:"rule"` // overrides Preset when set
	Workers int       `yaml:"workers"`
	Seed    int64     `yaml:"seed"` // 0 seeds from entropy
}

// ViewConfig holds GUI settings.
type ViewConfig struct {
	HexSize float64 `yaml:"hex_size"`
	TPS     int     `yaml:"tps"`
	Margin  float64 `yaml:"margin"`
}

// RunConfig holds headless runner settings.
type RunConfig struct {
	Steps    int  `yaml:"steps"`
	LogEvery int  `yaml:"log_every"`
	LogJSON  bool `yaml:"log_json"`
}

// Default returns a Config populated with the stock settings.
func Default() *Config {
	return &Config{
		World: WorldConfig{Radius: 20, Preset: hexlife.DefaultPreset, Workers: 1},
		View:  ViewConfig{HexSize: 7, TPS: 60, Margin: 1},
		Run:   RunConfig{Steps: 200, LogEvery: 10},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.World.Radius == 0 {
		c.World.Radius = 20
	}
	if c.World.Preset == "" {
		c.World.Preset = hexlife.DefaultPreset
	}
	if c.World.Workers == 0 {
		c.World.Workers = 1
	}
	if c.View.HexSize == 0 {
		c.View.HexSize = 7
	}
	if c.View.TPS == 0 {
		c.View.TPS = 60
	}
	if c.Run.LogEvery == 0 {
		c.Run.LogEvery = 10
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.World.Radius, "radius", c.World.Radius, "disc radius in cells")
	fs.StringVar(&c.World.Preset, "preset", c.World.Preset, "named rule preset")
	fs.Var(&c.World.Rule, "rule", "rule in survival/birth/states notation, e.g. 12/2/3 (overrides -preset)")
	fs.IntVar(&c.World.Workers, "workers", c.World.Workers, "goroutines per generation")
	fs.Int64Var(&c.World.Seed, "seed", c.World.Seed, "seed for the initial grid (0 = entropy)")
	fs.Float64Var(&c.View.HexSize, "hex-size", c.View.HexSize, "hex corner radius in pixels")
	fs.IntVar(&c.View.TPS, "tps", c.View.TPS, "generations per second")
	fs.IntVar(&c.Run.Steps, "steps", c.Run.Steps, "generations to run headless")
	fs.IntVar(&c.Run.LogEvery, "log-every", c.Run.LogEvery, "generations between census records")
	fs.BoolVar(&c.Run.LogJSON, "log-json", c.Run.LogJSON, "emit JSON log records")
}

// Parse builds a Config from command-line arguments. When -config (or
// HEXLIFE_CONFIG) names a file it is loaded first and the explicit flags are
// applied on top of it.
func Parse(name string, args []string) (*Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", os.Getenv(EnvPath), "YAML config file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		return cfg, nil
	}

	loaded, err := Load(*path)
	if err != nil {
		return nil, err
	}
	again := flag.NewFlagSet(name, flag.ContinueOnError)
	again.String("config", *path, "YAML config file")
	loaded.Bind(again)
	if err := again.Parse(args); err != nil {
		return nil, err
	}
	return loaded, nil
}

// WorldConfig resolves the rule and returns the settings for hexlife.New.
func (c *Config) WorldConfig() (hexlife.Config, error) {
	rule := c.World.Rule.Rule
	if !c.World.Rule.Given {
		var err error
		rule, err = hexlife.Preset(c.World.Preset)
		if err != nil {
			return hexlife.Config{}, err
		}
	}
	if err := rule.Validate(); err != nil {
		return hexlife.Config{}, err
	}
	return hexlife.Config{Radius: c.World.Radius, Rule: rule, Workers: c.World.Workers}, nil
}

// RuleValue is a rule that can be given either in notation ("12/2/3") or as a
// YAML mapping with survival, birth and states keys.
type RuleValue struct {
	Rule  hexlife.Rule
	Given bool
}

// String implements flag.Value.
func (v *RuleValue) String() string {
	if v == nil || !v.Given {
		return ""
	}
	return v.Rule.String()
}

// Set implements flag.Value.
func (v *RuleValue) Set(s string) error {
	r, err := hexlife.ParseRule(s)
	if err != nil {
		return err
	}
	v.Rule, v.Given = r, true
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *RuleValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil
		}
		return v.Set(node.Value)
	case yaml.MappingNode:
		var r hexlife.Rule
		if err := node.Decode(&r); err != nil {
			return err
		}
		if err := r.Validate(); err != nil {
			return err
		}
		v.Rule, v.Given = r, true
		return nil
	default:
		return errors.New("rule must be a string or a mapping")
	}
}
