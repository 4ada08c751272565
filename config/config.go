// Package config resolves vitality CLI settings from .vitality.yaml,
// VITALITY_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/vitality/core"
)

// ErrInvalidConfig is returned for values Load cannot interpret.
var ErrInvalidConfig = errors.New("config: invalid value")

// WeightEdge selects the stored edge weight. Any other non-empty Weight
// names an edge attribute; empty means unit weight.
const WeightEdge = "edge"

// Config holds the runtime settings of one CLI invocation.
type Config struct {
	Parallelism int    `mapstructure:"parallelism"`
	Weight      string `mapstructure:"weight"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	Trace       bool   `mapstructure:"trace"`
}

// New returns a viper instance reading cfgFile, or .vitality.yaml from the
// working directory then $HOME when cfgFile is empty. A missing default file
// is not an error; a missing explicit one is.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".vitality")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("VITALITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config: %w", err)
		}
	}

	return v, nil
}

// Load applies defaults for anything not set by file, environment or flags
// and validates the result.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("parallelism", -1)
	v.SetDefault("weight", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("trace", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.level(); err != nil {
		return Config{}, err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, cfg.LogFormat)
	}

	return cfg, nil
}

// WeightFunc maps Weight onto a core.WeightFunc; nil means unit weight.
func (c Config) WeightFunc() core.WeightFunc {
	switch c.Weight {
	case "":
		return nil
	case WeightEdge:
		return core.EdgeWeight
	default:
		return core.Attribute(c.Weight)
	}
}

// Logger builds a slog.Logger writing to w with the configured level and format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, _ := c.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
