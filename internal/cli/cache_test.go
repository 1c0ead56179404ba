package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/kundali/internal/config"
	"github.com/matzehuels/kundali/pkg/cache"
)

func TestCacheDirFromConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config.Cache.Dir = "/var/cache/kundali"
	if got := c.cacheDir(); got != "/var/cache/kundali" {
		t.Errorf("cacheDir() = %q, want /var/cache/kundali", got)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	c := New(io.Discard, LogInfo)
	if got := c.cacheDir(); got != filepath.Join("/tmp/xdg", "kundali") {
		t.Errorf("cacheDir() = %q, want XDG location", got)
	}
}

func TestCacheLocation(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendFile, "/tmp/kc"},
		{config.BackendNone, "none"},
		{config.BackendRedis, "redis://localhost:6379/2"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			c.Config.Cache = config.CacheConfig{
				Backend: tt.backend,
				Dir:     "/tmp/kc",
				Redis:   config.RedisConfig{Addr: "localhost:6379", DB: 2, Prefix: "k:"},
			}
			if got := c.cacheLocation(); !strings.HasPrefix(got, tt.want) {
				t.Errorf("cacheLocation() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestNewCacheBackends(t *testing.T) {
	ctx := context.Background()

	c := New(io.Discard, LogInfo)
	c.Config.Cache = config.CacheConfig{Backend: config.BackendFile, Dir: t.TempDir()}
	cc, err := c.newCache(ctx, false)
	if err != nil {
		t.Fatalf("newCache(file) error: %v", err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("newCache(file) = %T, want *cache.FileCache", cc)
	}

	cc, err = c.newCache(ctx, true)
	if err != nil {
		t.Fatalf("newCache(noCache) error: %v", err)
	}
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("newCache(noCache) = %T, want cache.NullCache", cc)
	}

	c.Config.Cache.Backend = config.BackendNone
	cc, _ = c.newCache(ctx, false)
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("newCache(none) = %T, want cache.NullCache", cc)
	}
}

func TestNewCacheRedisUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(io.Discard, LogInfo)
	c.Config.Cache = config.CacheConfig{
		Backend: config.BackendRedis,
		Redis:   config.RedisConfig{Addr: "127.0.0.1:1"},
	}
	cc, err := c.newCache(ctx, false)
	if err != nil {
		t.Fatalf("newCache(redis) error: %v", err)
	}
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("unreachable redis gave %T, want cache.NullCache", cc)
	}
}
