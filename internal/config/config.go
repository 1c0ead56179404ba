// Package config loads kundali's runtime configuration.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/transit"
)

// EnvPrefix is the prefix of environment variables that override config
// keys: cache.redis.addr is read from KUNDALI_CACHE_REDIS_ADDR.
const EnvPrefix = "KUNDALI"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// RedisConfig holds the redis cache connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// CacheConfig selects and configures the report cache.
type CacheConfig struct {
	Backend string      `mapstructure:"backend"`
	Dir     string      `mapstructure:"dir"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// DashaConfig holds the default dasha options.
type DashaConfig struct {
	Levels    int     `mapstructure:"levels"`
	SpanYears float64 `mapstructure:"span_years"`
	YearDays  float64 `mapstructure:"year_days"`
}

// TransitConfig holds the default scanner settings.
type TransitConfig struct {
	Step       time.Duration `mapstructure:"step"`
	Iterations int           `mapstructure:"iterations"`
}

// Config holds all runtime configuration.
// Values are populated from .kundali.toml, KUNDALI_* env vars, and CLI flags.
type Config struct {
	Verbose bool          `mapstructure:"verbose"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Dasha   DashaConfig   `mapstructure:"dasha"`
	Transit TransitConfig `mapstructure:"transit"`
}

// Init points viper at the config file and the environment. An empty
// cfgFile searches for .kundali.toml in the working directory and the home
// directory. A missing config file is not an error.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".kundali")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}
	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("verbose", false)
	viper.SetDefault("cache.backend", BackendFile)
	viper.SetDefault("cache.dir", DefaultCacheDir())
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.password", "")
	viper.SetDefault("cache.redis.db", 0)
	viper.SetDefault("cache.redis.prefix", "kundali:")
	viper.SetDefault("dasha.levels", chart.DefaultDashaLevels)
	viper.SetDefault("dasha.span_years", chart.DefaultSpanYears)
	viper.SetDefault("dasha.year_days", chart.DefaultYearDays)
	viper.SetDefault("transit.step", transit.DefaultStep)
	viper.SetDefault("transit.iterations", transit.DefaultIterations)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Transit.Step <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "transit.step must be positive")
	}
	if c.Transit.Iterations < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "transit.iterations must be at least 1")
	}
	opts := c.ChartOptions()
	return opts.ValidateAndSetDefaults()
}

// ChartOptions returns the calculation options the config describes.
func (c Config) ChartOptions() chart.Options {
	return chart.Options{
		DashaLevels: c.Dasha.Levels,
		SpanYears:   c.Dasha.SpanYears,
		YearDays:    c.Dasha.YearDays,
	}
}

// DefaultCacheDir returns the cache directory using the XDG convention
// (~/.cache/kundali/), or "" when no home directory is known.
func DefaultCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "kundali")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", "kundali")
}
