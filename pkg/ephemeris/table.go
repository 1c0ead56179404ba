package ephemeris

import (
	"math"
	"sort"
	"time"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Sample is one tabulated position.
type Sample struct {
	Time time.Time
	Position
}

// Table is a Provider that linearly interpolates between tabulated samples.
// Longitudes are unwrapped across 0°/360° before interpolating. A Table is
// immutable after construction and safe for concurrent use.
type Table struct {
	name    string
	samples map[graha.Planet][]Sample
}

// NewTable builds a table from per-body samples. Samples are sorted by time.
// When every sample of a body has zero speed, speeds are derived from
// neighbouring samples. Ketu is filled in from Rahu when missing.
func NewTable(name string, samples map[graha.Planet][]Sample) (*Table, error) {
	t := &Table{name: name, samples: make(map[graha.Planet][]Sample, len(samples))}
	for body, ss := range samples {
		if !body.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidPlanet, "invalid body %d", body)
		}
		if len(ss) == 0 {
			continue
		}
		cp := append([]Sample(nil), ss...)
		sort.Slice(cp, func(i, j int) bool { return cp[i].Time.Before(cp[j].Time) })
		for i, s := range cp {
			if err := errors.ValidateLongitude(s.Longitude); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidLongitude, err, "%s sample %d", body, i)
			}
			cp[i].Longitude = zodiac.Normalize(s.Longitude)
		}
		deriveSpeeds(cp)
		t.samples[body] = cp
	}
	if _, ok := t.samples[graha.Ketu]; !ok {
		if rahu, ok := t.samples[graha.Rahu]; ok {
			ketu := make([]Sample, len(rahu))
			for i, s := range rahu {
				ketu[i] = s
				ketu[i].Longitude = zodiac.Normalize(s.Longitude + 180)
				ketu[i].Latitude = -s.Latitude
				ketu[i].Declination = -s.Declination
			}
			t.samples[graha.Ketu] = ketu
		}
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Available reports whether the table holds samples for body.
func (t *Table) Available(body graha.Planet) bool {
	return len(t.samples[body]) > 0
}

// Range returns the time span covered by every body in the table.
func (t *Table) Range() (from, to time.Time) {
	first := true
	for _, ss := range t.samples {
		lo, hi := ss[0].Time, ss[len(ss)-1].Time
		if first || lo.After(from) {
			from = lo
		}
		if first || hi.Before(to) {
			to = hi
		}
		first = false
	}
	return from, to
}

// Bodies returns the bodies with samples, in planet order.
func (t *Table) Bodies() []graha.Planet {
	var out []graha.Planet
	for _, p := range graha.All {
		if t.Available(p) {
			out = append(out, p)
		}
	}
	return out
}

// Position interpolates body's position at when.
func (t *Table) Position(body graha.Planet, when time.Time) (Position, error) {
	ss := t.samples[body]
	if len(ss) == 0 {
		return Position{}, errors.New(errors.ErrCodeNotFound, "no samples for %s", body)
	}
	if when.Before(ss[0].Time) || when.After(ss[len(ss)-1].Time) {
		return Position{}, errors.New(errors.ErrCodeOutOfRange,
			"%s: %s outside table range %s to %s", body,
			when.Format(time.RFC3339), ss[0].Time.Format(time.RFC3339), ss[len(ss)-1].Time.Format(time.RFC3339))
	}
	i := sort.Search(len(ss), func(i int) bool { return !ss[i].Time.Before(when) })
	if ss[i].Time.Equal(when) {
		return ss[i].Position, nil
	}
	a, b := ss[i-1], ss[i]
	f := float64(when.Sub(a.Time)) / float64(b.Time.Sub(a.Time))
	return Position{
		Longitude:     zodiac.Normalize(a.Longitude + f*unwrap(b.Longitude-a.Longitude)),
		Latitude:      lerp(a.Latitude, b.Latitude, f),
		Distance:      lerp(a.Distance, b.Distance, f),
		Speed:         lerp(a.Speed, b.Speed, f),
		SpeedLatitude: lerp(a.SpeedLatitude, b.SpeedLatitude, f),
		Declination:   lerp(a.Declination, b.Declination, f),
	}, nil
}

func deriveSpeeds(ss []Sample) {
	if len(ss) < 2 {
		return
	}
	for _, s := range ss {
		if s.Speed != 0 {
			return
		}
	}
	for i := range ss {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi >= len(ss) {
			hi = len(ss) - 1
		}
		days := ss[hi].Time.Sub(ss[lo].Time).Hours() / 24
		if days > 0 {
			ss[i].Speed = unwrap(ss[hi].Longitude-ss[lo].Longitude) / days
		}
	}
}

// unwrap maps a longitude difference into (-180, 180].
func unwrap(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func lerp(a, b, f float64) float64 { return a + f*(b-a) }
