// Package cli implements the kundali command-line interface.
//
// Commands read TOML chart and ephemeris files (see pkg/io), run them
// through a caching [chart.Runner] and print styled tables. The main
// commands are:
//   - chart: full chart report, optionally exported as JSON
//   - dasha: Vimshottari periods, with an interactive browser
//   - aspects: aspect graph as Graphviz DOT or SVG
//   - transit: sign, nakshatra and sub-lord changes over an ephemeris
//   - locate: placement of a single longitude
//   - cache: inspect or clear the report cache
//
// # Logging
//
// All commands log through charmbracelet/log at info level; verbose = true
// in the config (or KUNDALI_VERBOSE) and --verbose switch to debug. Loggers
// are passed through context.Context.
//
// [chart.Runner]: github.com/matzehuels/kundali/pkg/chart.Runner
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes to w with short wall-clock timestamps ("14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one step of a command.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time, rounded to the
// millisecond, appended to keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger set by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
