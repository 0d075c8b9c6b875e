package config

import (
	"os"

	"codeberg.org/mutker/hwtriage/internal/errors"
	"codeberg.org/mutker/hwtriage/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel     = "warn"
	DefaultProbeTimeout = 5 // seconds
)

type Config struct {
	LogLevel       string `mapstructure:"log_level"`
	NoColor        bool   `mapstructure:"no_color"`
	ProbeTimeout   int    `mapstructure:"probe_timeout"`
	AssumeElevated bool   `mapstructure:"assume_elevated"`
}

// Load reads configuration from flags, the environment and an optional TOML
// file. Flags win over the file, the file wins over defaults. The config
// file is looked up via HWTRIAGE_CONFIG or in /etc and the working directory.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet("hwtriage", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.String("log-level", DefaultLogLevel, "Logging level (debug, info, warn, error)")
	fs.Bool("no-color", false, "Disable colored output")
	fs.Int("probe-timeout", DefaultProbeTimeout, "Per-domain probe timeout in seconds")
	fs.Bool("assume-elevated", false, "Treat the process as elevated regardless of detection")
	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("no_color", false)
	v.SetDefault("probe_timeout", DefaultProbeTimeout)
	v.SetDefault("assume_elevated", false)

	if path := os.Getenv("HWTRIAGE_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hwtriage")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Flags that were explicitly set override file values
	flagKeys := map[string]string{
		"log-level":       "log_level",
		"no-color":        "no_color",
		"probe-timeout":   "probe_timeout",
		"assume-elevated": "assume_elevated",
	}
	fs.Visit(func(f *pflag.Flag) {
		v.Set(flagKeys[f.Name], f.Value.String())
	})

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if !logger.IsValidLevel(c.LogLevel) {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.ProbeTimeout <= 0 {
		return errFactory.WithData(errors.ErrInvalidTimeout, c.ProbeTimeout)
	}

	return nil
}
