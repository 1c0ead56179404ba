package chart

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/kundali/pkg/dasha"
	"github.com/matzehuels/kundali/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultDashaLevels emits Maha, Antar and Pratyantar periods.
	DefaultDashaLevels = dasha.DefaultLevels

	// DefaultSpanYears covers one full Vimshottari cycle from birth.
	DefaultSpanYears = dasha.DefaultSpanYears

	// DefaultYearDays is the length of a dasha year.
	DefaultYearDays = dasha.DefaultYearDays
)

// Options configures a calculation.
type Options struct {
	DashaLevels int     `json:"dasha_levels,omitempty"`
	SpanYears   float64 `json:"span_years,omitempty"`
	YearDays    float64 `json:"year_days,omitempty"`

	// FromBirth drops dasha rows that end before birth.
	FromBirth bool `json:"from_birth,omitempty"`

	// Refresh bypasses the cache read; the fresh report is still stored.
	Refresh bool `json:"-"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults fills zero values and checks ranges.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.DashaLevels == 0 {
		o.DashaLevels = DefaultDashaLevels
	}
	if o.SpanYears == 0 {
		o.SpanYears = DefaultSpanYears
	}
	if o.YearDays == 0 {
		o.YearDays = DefaultYearDays
	}
	if o.DashaLevels < 1 || o.DashaLevels > dasha.MaxLevels {
		return errors.New(errors.ErrCodeInvalidInput, "dasha levels must be between 1 and %d", dasha.MaxLevels)
	}
	if o.SpanYears < 0 || o.SpanYears > 200 {
		return errors.New(errors.ErrCodeInvalidInput, "span years must be in (0, 200]")
	}
	if o.YearDays < 360 || o.YearDays > 366 {
		return errors.New(errors.ErrCodeInvalidInput, "year length must be between 360 and 366 days")
	}
	o.validated = true
	return nil
}

func (o Options) dashaOptions() dasha.Options {
	return dasha.Options{Levels: o.DashaLevels, SpanYears: o.SpanYears, YearDays: o.YearDays}
}
