package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/transit"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Cache.Backend", cfg.Cache.Backend, BackendFile},
		{"Cache.Redis.Addr", cfg.Cache.Redis.Addr, "localhost:6379"},
		{"Cache.Redis.Prefix", cfg.Cache.Redis.Prefix, "kundali:"},
		{"Dasha.Levels", cfg.Dasha.Levels, chart.DefaultDashaLevels},
		{"Dasha.SpanYears", cfg.Dasha.SpanYears, float64(chart.DefaultSpanYears)},
		{"Dasha.YearDays", cfg.Dasha.YearDays, chart.DefaultYearDays},
		{"Transit.Step", cfg.Transit.Step, transit.DefaultStep},
		{"Transit.Iterations", cfg.Transit.Iterations, transit.DefaultIterations},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "cache backend",
			envKey: "KUNDALI_CACHE_BACKEND",
			envVal: "redis",
			field:  func(c Config) any { return c.Cache.Backend },
			want:   "redis",
		},
		{
			name:   "redis addr",
			envKey: "KUNDALI_CACHE_REDIS_ADDR",
			envVal: "cache.internal:6380",
			field:  func(c Config) any { return c.Cache.Redis.Addr },
			want:   "cache.internal:6380",
		},
		{
			name:   "redis db",
			envKey: "KUNDALI_CACHE_REDIS_DB",
			envVal: "3",
			field:  func(c Config) any { return c.Cache.Redis.DB },
			want:   3,
		},
		{
			name:   "dasha levels",
			envKey: "KUNDALI_DASHA_LEVELS",
			envVal: "5",
			field:  func(c Config) any { return c.Dasha.Levels },
			want:   5,
		},
		{
			name:   "transit step",
			envKey: "KUNDALI_TRANSIT_STEP",
			envVal: "30m",
			field:  func(c Config) any { return c.Transit.Step },
			want:   30 * time.Minute,
		},
		{
			name:   "verbose",
			envKey: "KUNDALI_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix(EnvPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestInit_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), "kundali.toml")
	src := `
[cache]
backend = "none"

[dasha]
levels = 2
span_years = 80.0

[transit]
step = "6h"
iterations = 20
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Dasha.Levels != 2 || cfg.Dasha.SpanYears != 80 {
		t.Errorf("Dasha = %+v, want levels 2, span 80", cfg.Dasha)
	}
	if cfg.Transit.Step != 6*time.Hour || cfg.Transit.Iterations != 20 {
		t.Errorf("Transit = %+v, want 6h, 20", cfg.Transit)
	}
}

func TestInit_MissingExplicitFile(t *testing.T) {
	resetViper()
	if err := Init(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Init() with missing explicit file should fail")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"backend", "cache.backend", "memcached"},
		{"levels", "dasha.levels", 9},
		{"step", "transit.step", time.Duration(0)},
		{"iterations", "transit.iterations", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%v should fail", tt.key, tt.val)
			}
		})
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg", "kundali") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}
}
