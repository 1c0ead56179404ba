package dasha

import (
	"math"
	"time"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Level is the depth of a period in the tree.
type Level int

const (
	Maha Level = iota + 1
	Antar
	Pratyantar
	Sookshma
	Prana
)

var levelNames = [...]string{"", "Maha", "Antar", "Pratyantar", "Sookshma", "Prana"}

// String returns the level name.
func (l Level) String() string {
	if l < Maha || l > Prana {
		return "Unknown"
	}
	return levelNames[l]
}

// Defaults.
const (
	DefaultLevels    = 3
	MaxLevels        = int(Prana)
	DefaultSpanYears = graha.TotalYears
	DefaultYearDays  = 365.25
)

// Options configures tree generation. Zero values select the defaults.
type Options struct {
	// Levels is the depth of the tree, 1 (Maha only) to 5 (Prana).
	Levels int
	// SpanYears is how far past birth Maha-Dashas are emitted.
	SpanYears float64
	// YearDays is the length of a dasha year in days.
	YearDays float64
}

func (o *Options) setDefaults() {
	if o.Levels == 0 {
		o.Levels = DefaultLevels
	}
	if o.SpanYears == 0 {
		o.SpanYears = DefaultSpanYears
	}
	if o.YearDays == 0 {
		o.YearDays = DefaultYearDays
	}
}

func (o Options) validate() error {
	if o.Levels < 1 || o.Levels > MaxLevels {
		return errors.New(errors.ErrCodeInvalidInput, "levels must be between 1 and %d, got %d", MaxLevels, o.Levels)
	}
	if !(o.SpanYears > 0) || math.IsInf(o.SpanYears, 0) || o.SpanYears > 200 {
		return errors.New(errors.ErrCodeInvalidInput, "span years must be in (0, 200], got %v", o.SpanYears)
	}
	if !(o.YearDays > 0) || math.IsInf(o.YearDays, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "year length must be positive, got %v", o.YearDays)
	}
	return nil
}

// Period is one node of the dasha tree.
type Period struct {
	Lord        graha.Planet   `json:"lord"`
	Level       Level          `json:"level"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	ParentLords []graha.Planet `json:"parent_lords,omitempty"`
	Children    []*Period      `json:"children,omitempty"`
}

// Duration returns End-Start.
func (p *Period) Duration() time.Duration { return p.End.Sub(p.Start) }

// Contains reports whether t falls in [Start, End).
func (p *Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Tree is a generated dasha hierarchy.
type Tree struct {
	Birth         time.Time    `json:"birth"`
	MoonLongitude float64      `json:"moon_longitude"`
	StartLord     graha.Planet `json:"start_lord"`
	// Elapsed is the fraction of the opening Maha-Dasha already run at birth.
	Elapsed float64 `json:"elapsed_fraction"`
	// Balance is what remains of the opening Maha-Dasha at birth.
	Balance  time.Duration `json:"balance"`
	YearDays float64       `json:"year_days"`
	Periods  []*Period     `json:"periods"`
}

// Generate builds the dasha tree for a Moon at moonLon (sidereal degrees)
// at the instant birth.
func Generate(moonLon float64, birth time.Time, opts Options) (*Tree, error) {
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateLongitude(moonLon); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLongitude, err, "moon longitude")
	}
	if birth.IsZero() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "birth time is required")
	}

	moonLon = zodiac.Normalize(moonLon)
	nak := zodiac.NakshatraIndex(moonLon)
	lord, ok := graha.NakshatraLord(nak).Planet()
	if !ok {
		return nil, errors.New(errors.ErrCodeLookupGap, "no lord for nakshatra %d", nak)
	}
	elapsed := zodiac.OffsetInNakshatra(moonLon) / zodiac.NakshatraSpan
	years, _ := graha.Years(lord)

	tree := &Tree{
		Birth:         birth,
		MoonLongitude: moonLon,
		StartLord:     lord,
		Elapsed:       elapsed,
		Balance:       yearsToDuration((1-elapsed)*years, opts.YearDays),
		YearDays:      opts.YearDays,
	}

	start := birth.Add(-yearsToDuration(elapsed*years, opts.YearDays))
	horizon := birth.Add(yearsToDuration(opts.SpanYears, opts.YearDays))
	cycle := graha.NextLords(lord, len(graha.Vimshottari))
	for i := 0; start.Before(horizon); i++ {
		l := cycle[i%len(cycle)]
		y, _ := graha.Years(l)
		p := &Period{
			Lord:  l,
			Level: Maha,
			Start: start,
			End:   start.Add(yearsToDuration(y, opts.YearDays)),
		}
		subdivide(p, opts.Levels)
		tree.Periods = append(tree.Periods, p)
		start = p.End
	}
	return tree, nil
}

// Subdivide returns the nine child periods of parent without attaching them.
func Subdivide(parent *Period) []*Period {
	lords := graha.NextLords(parent.Lord, len(graha.Vimshottari))
	if lords == nil {
		return nil
	}
	total := float64(parent.Duration())
	parents := append(append([]graha.Planet{}, parent.ParentLords...), parent.Lord)

	children := make([]*Period, len(lords))
	start := parent.Start
	for i, l := range lords {
		share, _ := graha.Share(l)
		end := start.Add(time.Duration(math.Round(share * total)))
		if i == len(lords)-1 {
			end = parent.End
		}
		children[i] = &Period{
			Lord:        l,
			Level:       parent.Level + 1,
			Start:       start,
			End:         end,
			ParentLords: parents,
		}
		start = end
	}
	return children
}

func subdivide(p *Period, levels int) {
	if int(p.Level) >= levels {
		return
	}
	p.Children = Subdivide(p)
	for _, c := range p.Children {
		subdivide(c, levels)
	}
}

// At returns the chain of running periods at t, Maha first. It returns nil
// if t lies outside the tree.
func (t *Tree) At(when time.Time) []*Period {
	var chain []*Period
	periods := t.Periods
	for len(periods) > 0 {
		var found *Period
		for _, p := range periods {
			if p.Contains(when) {
				found = p
				break
			}
		}
		if found == nil {
			break
		}
		chain = append(chain, found)
		periods = found.Children
	}
	return chain
}

// End returns the end of the last Maha-Dasha.
func (t *Tree) End() time.Time {
	if len(t.Periods) == 0 {
		return t.Birth
	}
	return t.Periods[len(t.Periods)-1].End
}

func yearsToDuration(years, yearDays float64) time.Duration {
	return time.Duration(math.Round(years * yearDays * 24 * float64(time.Hour)))
}

// DurationYears converts a duration back to dasha years.
func DurationYears(d time.Duration, yearDays float64) float64 {
	return float64(d) / (yearDays * 24 * float64(time.Hour))
}
