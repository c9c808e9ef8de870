package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/centrality"
	"github.com/katalvlaran/influence/diffusion"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all runtime configuration for a simulation.
// Values are populated from .influence.yaml, INFLUENCE_* env vars, and CLI flags.
type Config struct {
	Nodes                 int           `mapstructure:"nodes"`
	EdgeProbability       float64       `mapstructure:"edge_probability"`
	ActivationProbability float64       `mapstructure:"activation_probability"`
	MaxSteps              int           `mapstructure:"max_steps"`
	Seed                  int64         `mapstructure:"seed"` // 0 picks one from the clock
	Ranker                string        `mapstructure:"ranker"`
	Damping               float64       `mapstructure:"damping"`
	Delay                 time.Duration `mapstructure:"delay"`
	DotDir                string        `mapstructure:"dot_dir"`
	Top                   int           `mapstructure:"top"`
	Trials                int           `mapstructure:"trials"`
	Verbose               bool          `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("nodes", 15)
	viper.SetDefault("edge_probability", 0.3)
	viper.SetDefault("activation_probability", diffusion.DefaultActivationProbability)
	viper.SetDefault("max_steps", diffusion.DefaultMaxSteps)
	viper.SetDefault("seed", 0)
	viper.SetDefault("ranker", "pagerank")
	viper.SetDefault("damping", centrality.DefaultDamping)
	viper.SetDefault("delay", time.Duration(0))
	viper.SetDefault("dot_dir", "")
	viper.SetDefault("top", 5)
	viper.SetDefault("trials", 1)
	viper.SetDefault("verbose", false)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, then validates it.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range field. Errors match both
// ErrInvalidConfig and the sentinel of the package that owns the value.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 1:
		return fmt.Errorf("%w: nodes=%d: %w", ErrInvalidConfig, c.Nodes, builder.ErrTooFewVertices)
	case !(c.EdgeProbability >= 0 && c.EdgeProbability <= 1):
		return fmt.Errorf("%w: edge_probability=%v: %w", ErrInvalidConfig, c.EdgeProbability, builder.ErrInvalidProbability)
	case !(c.ActivationProbability >= 0 && c.ActivationProbability <= 1):
		return fmt.Errorf("%w: activation_probability=%v: %w", ErrInvalidConfig, c.ActivationProbability, diffusion.ErrInvalidProbability)
	case c.MaxSteps < 1:
		return fmt.Errorf("%w: max_steps=%d: %w", ErrInvalidConfig, c.MaxSteps, diffusion.ErrInvalidStepBound)
	case !(c.Damping > 0 && c.Damping < 1):
		return fmt.Errorf("%w: damping=%v: %w", ErrInvalidConfig, c.Damping, centrality.ErrBadDamping)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay=%s is negative", ErrInvalidConfig, c.Delay)
	case c.Top < 0:
		return fmt.Errorf("%w: top=%d is negative", ErrInvalidConfig, c.Top)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials=%d must be >= 1", ErrInvalidConfig, c.Trials)
	}
	if _, err := centrality.ByName(c.Ranker, c.Damping); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
