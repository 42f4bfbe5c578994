package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/levelcheck/internal/core/level"
	"github.com/zeusync/levelcheck/internal/core/observability/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the CLI configuration, usually loaded from a YAML file.
type Config struct {
	Dim   int         `json:"dim" yaml:"dim"`
	Check CheckConfig `json:"check" yaml:"check"`
	Log   LogConfig   `json:"log" yaml:"log"`
}

// CheckConfig controls the conformance trials.
type CheckConfig struct {
	Trials int `json:"trials" yaml:"trials"`
	Min    int `json:"min" yaml:"min"`
	Max    int `json:"max" yaml:"max"`
	// Seed 0 draws a fresh seed per run.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

func Default() *Config {
	return &Config{
		Dim: 3,
		Check: CheckConfig{
			Trials: level.DefaultTrials,
			Min:    level.DefaultMin,
			Max:    level.DefaultMax,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML decodes config from a YAML reader on top of Default and validates it.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Dim < 1 {
		return fmt.Errorf("%w: dim must be at least 1, got %d", ErrInvalidConfig, c.Dim)
	}
	if c.Check.Trials < 1 {
		return fmt.Errorf("%w: check.trials must be at least 1, got %d", ErrInvalidConfig, c.Check.Trials)
	}
	if c.Check.Min >= c.Check.Max {
		return fmt.Errorf("%w: check.min (%d) must be below check.max (%d)", ErrInvalidConfig, c.Check.Min, c.Check.Max)
	}
	if c.Check.Max-c.Check.Min <= 0 {
		return fmt.Errorf("%w: check range [%d, %d) is too wide", ErrInvalidConfig, c.Check.Min, c.Check.Max)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the parsed log level; call after Validate.
func (c *Config) LogLevel() log.Level {
	lvl, _ := log.ParseLevel(c.Log.Level)
	return lvl
}

// Sampler returns a sampler seeded from Check.Seed, or from crypto/rand when
// the seed is 0.
func (c *Config) Sampler() (*level.RandSampler, error) {
	seed := c.Check.Seed
	if seed == 0 {
		var err error
		if seed, err = level.NewSeed(); err != nil {
			return nil, err
		}
	}
	return level.NewRandSampler(seed), nil
}

// LevelOptions translates the check settings into level options.
func (c *Config) LevelOptions(sampler level.Sampler, logger log.Log) []level.Option {
	return []level.Option{
		level.WithSampler(sampler),
		level.WithLogger(logger),
		level.WithTrials(c.Check.Trials),
		level.WithRange(c.Check.Min, c.Check.Max),
	}
}
