// Package config resolves countyq settings from flags, environment and config files.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/loader"
)

// AppFs is the filesystem every input file is read from.
var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	MaxRecords   int    `mapstructure:"max_records"`
	MaxLineBytes int    `mapstructure:"max_line_bytes"`
	QuoteAware   bool   `mapstructure:"quote_aware"`
	DisplayStyle string `mapstructure:"display_style"`
	NoColor      bool   `mapstructure:"no_color"`
	Debug        bool   `mapstructure:"debug"`
}

// Load reads configuration from fs. An explicit configFile must exist;
// otherwise ".countyq.yaml" is looked up in the working directory, the home
// directory and ~/.config/countyq, and a missing file is not an error.
// Flags that were set on the command line take precedence.
func Load(fs afero.Fs, configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault("max_records", county.DefaultCapacity)
	v.SetDefault("max_line_bytes", loader.DefaultMaxLineBytes)
	v.SetDefault("quote_aware", false)
	v.SetDefault("display_style", "block")
	v.SetDefault("no_color", false)
	v.SetDefault("debug", false)

	loadDotEnv(fs)
	v.SetEnvPrefix("COUNTYQ")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(".countyq")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(filepath.Join(home, ".config", "countyq"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the loader and interpreter cannot use.
func (c *Config) Validate() error {
	if c.MaxRecords <= 0 {
		return fmt.Errorf("max_records must be positive, got %d", c.MaxRecords)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	switch c.DisplayStyle {
	case "block", "table":
	default:
		return fmt.Errorf("display_style must be block or table, got %q", c.DisplayStyle)
	}
	return nil
}

// LoaderOptions returns the loader settings.
func (c *Config) LoaderOptions() loader.Options {
	return loader.Options{
		Capacity:     c.MaxRecords,
		MaxLineBytes: c.MaxLineBytes,
		QuoteAware:   c.QuoteAware,
	}
}

var flagKeys = map[string]string{
	"max-records": "max_records",
	"quote-aware": "quote_aware",
	"no-color":    "no_color",
	"debug":       "debug",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	if f := flags.Lookup("table"); f != nil && f.Changed {
		v.Set("display_style", "table")
	}
	return nil
}

// loadDotEnv loads .env and then .env.local, which overrides .env.
func loadDotEnv(fs afero.Fs) {
	if env, err := readEnvFile(fs, ".env"); err == nil {
		setMissing(env)
	}
	if env, err := readEnvFile(fs, ".env.local"); err == nil {
		setAll(env)
	}
}

func readEnvFile(fs afero.Fs, name string) (map[string]string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return godotenv.Parse(f)
}
