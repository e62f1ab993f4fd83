// Package config loads CLI settings from flags, HAMROUTE_* environment
// variables, an optional yaml file and built-in defaults, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
)

// Keys understood by Load.
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeySearchParallel = "search.parallel"
	KeySearchValidate = "search.validate"
	KeyOutputFormat   = "output.format"

	EnvPrefix = "HAMROUTE"
)

var (
	// ErrBadValue indicates a setting outside its allowed set.
	ErrBadValue = errors.New("config: invalid value")
)

// Config is the resolved CLI configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Search SearchConfig `mapstructure:"search"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig selects the level and encoding of process logs.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

// SearchConfig holds the options passed to search.Solve.
type SearchConfig struct {
	Parallel int  `mapstructure:"parallel"` // 0 = sequential
	Validate bool `mapstructure:"validate"`
}

// OutputConfig selects the report format written to stdout.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text | json | yaml
}

// SetDefaults installs the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeySearchParallel, 0)
	v.SetDefault(KeySearchValidate, true)
	v.SetDefault(KeyOutputFormat, "text")
}

// Load resolves the configuration. file may be empty; flags may be nil.
// Every entry of bindings maps a config key to a flag name in flags.
func Load(file string, flags *pflag.FlagSet, bindings map[string]string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	if flags != nil {
		// Bind in key order so a missing flag is reported deterministically.
		keys := maps.Keys(bindings)
		slices.Sort(keys)
		var key, name string
		for _, key = range keys {
			name = bindings[key]
			f := flags.Lookup(name)
			if f == nil {
				return Config{}, fmt.Errorf("config: no flag %q for key %s", name, key)
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("config: bind %s: %w", key, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects settings outside their allowed sets.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s=%q: %w", KeyLogLevel, c.Log.Level, ErrBadValue)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%s=%q: %w", KeyLogFormat, c.Log.Format, ErrBadValue)
	}
	if c.Search.Parallel < 0 {
		return fmt.Errorf("%s=%d: %w", KeySearchParallel, c.Search.Parallel, ErrBadValue)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%s=%q: %w", KeyOutputFormat, c.Output.Format, ErrBadValue)
	}

	return nil
}

// Logger builds the process logger writing to w (stderr when nil).
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
