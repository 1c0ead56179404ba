package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/internal/config"
	"github.com/matzehuels/kundali/pkg/buildinfo"
	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/chart"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "kundali"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config config.Config

	cfgFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Kundali computes Vedic and KP astrology charts",
		Long: `Kundali turns planetary longitudes into a Vedic/KP chart report:
zodiac placements, sub-lords, dignities, houses, aspects, significators,
Vimshottari dasha periods and UPBS strength scores.

Positions are read from TOML chart files; kundali does not compute
ephemerides itself.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default .kundali.toml)")

	root.AddCommand(c.chartCommand())
	root.AddCommand(c.dashaCommand())
	root.AddCommand(c.aspectsCommand())
	root.AddCommand(c.transitCommand())
	root.AddCommand(c.locateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads .kundali.toml and KUNDALI_* variables into c.Config.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.Init(c.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a chart runner for CLI use. Keys are scoped by the
// build version so reports from an older engine are never reused.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*chart.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return chart.NewRunner(cache.NewInstrumented(cc, "chart"), keyer, c.Logger), nil
}

// newCache opens the configured backend. A redis server that cannot be
// reached degrades to no caching with a warning.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		r := c.Config.Cache.Redis
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     r.Addr,
			Password: r.Password,
			DB:       r.DB,
			Prefix:   r.Prefix,
		})
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", r.Addr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir := c.cacheDir()
		if dir == "" {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the file cache directory, which defaults to
// ~/.cache/kundali/.
func (c *CLI) cacheDir() string {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir
	}
	return config.DefaultCacheDir()
}

// chartOptions returns the configured calculation options.
func (c *CLI) chartOptions() chart.Options {
	opts := c.Config.ChartOptions()
	opts.Logger = c.Logger
	return opts
}
