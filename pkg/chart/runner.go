package chart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/render/aspectgraph"
)

// Artifact formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// Runner wraps Calculate and rendering with caching.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can safely share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// CalculateWithCacheInfo returns the report for in and whether it came from
// the cache.
func (r *Runner) CalculateWithCacheInfo(ctx context.Context, in Input, opts Options) (*Report, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	inputHash, err := in.Hash()
	if err != nil {
		r.Logger.Debug("input not cacheable", "error", err)
	}
	var key string
	if inputHash != "" {
		key = r.Keyer.ReportKey(inputHash, cache.ReportKeyOpts{
			DashaLevels: opts.DashaLevels,
			SpanYears:   opts.SpanYears,
			YearDays:    opts.YearDays,
			FromBirth:   opts.FromBirth,
		})
	}

	if key != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rep Report
			if err := json.Unmarshal(data, &rep); err == nil {
				r.Logger.Debug("report cache hit", "id", rep.ID)
				return &rep, true, nil
			}
			r.Logger.Warn("discarding unreadable cached report", "key", key)
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
	}

	rep, err := Calculate(ctx, in, opts)
	if err != nil {
		return nil, false, err
	}
	rep.InputHash = inputHash

	if key != "" {
		data, err := json.Marshal(rep)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode report")
		}
		if err := r.Cache.Set(ctx, key, data, cache.TTLReport); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		}
	}

	r.Logger.Info("calculated chart",
		"name", rep.Name,
		"planets", len(rep.Planets),
		"warnings", len(rep.Warnings))
	return rep, false, nil
}

// Calculate is CalculateWithCacheInfo without the hit flag.
func (r *Runner) Calculate(ctx context.Context, in Input, opts Options) (*Report, error) {
	rep, _, err := r.CalculateWithCacheInfo(ctx, in, opts)
	return rep, err
}

// RenderAspects renders the report's aspect graph as DOT or SVG, caching
// the output by report and options.
func (r *Runner) RenderAspects(ctx context.Context, rep *Report, format string, opts aspectgraph.Options) ([]byte, bool, error) {
	if format != FormatDOT && format != FormatSVG {
		return nil, false, errors.New(errors.ErrCodeUnsupported, "unsupported aspect graph format %q", format)
	}
	base := rep.InputHash
	if base == "" {
		base = rep.ID
	}
	key := r.Keyer.ArtifactKey(base, cache.ArtifactKeyOpts{
		Kind:   fmt.Sprintf("aspects-c%t-d%t", opts.Clusters, opts.Detailed),
		Format: format,
	})
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	dot := aspectgraph.ToDOT(rep.AspectGraph(), opts)
	out := []byte(dot)
	if format == FormatSVG {
		svg, err := aspectgraph.RenderSVG(ctx, dot)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render aspect graph")
		}
		out = svg
	}
	if err := r.Cache.Set(ctx, key, out, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	}
	return out, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
