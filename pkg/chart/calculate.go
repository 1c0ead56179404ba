package chart

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/kundali/pkg/aspect"
	"github.com/matzehuels/kundali/pkg/dasha"
	"github.com/matzehuels/kundali/pkg/dignity"
	"github.com/matzehuels/kundali/pkg/ephemeris"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/house"
	"github.com/matzehuels/kundali/pkg/kp"
	"github.com/matzehuels/kundali/pkg/observability"
	"github.com/matzehuels/kundali/pkg/significator"
	"github.com/matzehuels/kundali/pkg/strength"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Calculate builds the report for in. The only error it returns for data
// problems is an invalid Julian Day; everything else degrades to sentinels
// and warnings.
func Calculate(ctx context.Context, in Input, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	birth, err := ephemeris.TimeFromJulianDay(in.JulianDay)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Birth:       birth,
		JulianDay:   in.JulianDay,
		Ayanamsa:    in.Ayanamsa,
		GeneratedAt: time.Now().UTC(),
	}
	start := time.Now()
	observability.Chart().OnCalculateStart(ctx, rep.ID)

	c := &calc{in: in, opts: opts, logger: logger, rep: rep}
	c.run()

	observability.Chart().OnCalculateComplete(ctx, rep.ID, len(rep.Warnings), time.Since(start), nil)
	logger.Debug("calculated chart",
		"id", rep.ID,
		"planets", len(rep.Planets),
		"warnings", len(rep.Warnings),
		"duration", time.Since(start))
	return rep, nil
}

type calc struct {
	in     Input
	opts   Options
	logger *log.Logger
	rep    *Report
}

// warn logs msg and records it on the report.
func (c *calc) warn(msg string, keyvals ...any) {
	c.logger.Warn(msg, keyvals...)
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	c.rep.Warnings = append(c.rep.Warnings, b.String())
}

func (c *calc) run() {
	bodies := c.in.bodies()
	lons := make(map[graha.Planet]float64, len(bodies))
	speeds := make(map[graha.Planet]float64, len(bodies))
	for _, p := range graha.All {
		pos, ok := bodies[p]
		if !ok {
			c.warn("body missing from input", "planet", p)
			continue
		}
		if err := errors.ValidateLongitude(pos.Longitude); err != nil {
			c.warn("body longitude unusable", "planet", p, "error", errors.UserMessage(err))
		}
		lons[p] = pos.Longitude
		speeds[p] = dignity.NodeSpeed(p, pos.Speed)
	}

	cusps, equal, cuspsOK := c.in.cusps()
	c.rep.EqualHouses = equal
	if !cuspsOK {
		c.warn("house cusps unusable; houses and lordship omitted", "cusps", len(c.in.Cusps))
	}

	if asc, ok := c.in.ascendant(); ok {
		pl := c.placement("Ascendant", asc)
		c.rep.Ascendant = &pl
		if h, ok := house.Badhak(asc); ok {
			c.rep.Badhak = &BadhakReport{House: h, Lord: house.BadhakLord(asc)}
		}
	}

	aspects := aspect.FromLongitudes(lons)
	c.rep.Aspects = aspects
	sigs := significator.Calculate(significator.Input{Longitudes: lons, Cusps: cusps, Aspects: &aspects})
	scores := strength.ScoreChart(strength.Chart{
		Longitudes: lons,
		Speeds:     speeds,
		Cusps:      cusps,
		Shadbala:   c.in.Shadbala,
		Aspects:    &aspects,
	})

	sun, hasSun := lons[graha.Sun]
	if !hasSun {
		sun = nan
	}
	moon, hasMoon := lons[graha.Moon]
	if !hasMoon {
		moon = nan
	}
	waxing, phaseKnown := graha.MoonPhase(moon, sun)

	for _, p := range graha.All {
		lon, ok := lons[p]
		if !ok {
			continue
		}
		state := dignity.Classify(p, lon, sun, speeds[p])
		pr := PlanetReport{
			Planet:        p,
			Placement:     c.placement(p.String(), lon),
			Speed:         Value(speeds[p]),
			Navamsa:       zodiac.RashiName(zodiac.Navamsa(lon)),
			Vargottama:    zodiac.IsVargottama(lon),
			Nature:        natureName(p, waxing, phaseKnown),
			Dignity:       state.Dignity.String(),
			Combust:       state.Combust,
			Retrograde:    state.Retrograde,
			Balaadi:       state.Balaadi.String(),
			Jagradadi:     state.Jagradadi.String(),
			Deeptaadi:     state.Deeptaadi.String(),
			Significators: sigs[p],
			Strength:      newStrengthReport(scores[p]),
		}
		if cuspsOK {
			if h, ok := house.HouseOf(lon, cusps); ok {
				pr.House = h
			} else if !isNaN(lon) {
				c.warn("no house contains longitude; cusps are malformed", "planet", p, "longitude", lon)
			}
		}
		c.rep.Planets = append(c.rep.Planets, pr)
	}

	if cuspsOK {
		occ := house.Occupants(lons, cusps)
		for h := 1; h <= 12; h++ {
			rashi := house.CuspRashi(h, cusps)
			c.rep.Houses = append(c.rep.Houses, HouseReport{
				Number:    h,
				Cusp:      Value(cusps[h-1]),
				Rashi:     zodiac.RashiName(rashi),
				Lord:      zodiac.RashiLord(rashi),
				Occupants: occ[h],
			})
		}
	}

	c.dasha(moon, hasMoon)
}

// placement locates lon and resolves its KP lords. name labels warnings.
func (c *calc) placement(name string, lon float64) Placement {
	pl := newPlacement(lon)
	sub := kp.ResolveSubLord(lon)
	subsub := kp.ResolveSubSubLord(lon)
	pl.SubLord = sub.Lord
	pl.SubSubLord = subsub.Lord
	if sub.Lord.IsError() {
		c.warn("sub-lord lookup gap", "point", name, "reason", sub.Lord.Reason())
	} else if subsub.Lord.IsError() {
		c.warn("sub-sub-lord lookup gap", "point", name, "reason", subsub.Lord.Reason())
	}
	return pl
}

func (c *calc) dasha(moon float64, ok bool) {
	if !ok {
		c.warn("moon missing; dasha omitted")
		return
	}
	tree, err := dasha.Generate(moon, c.rep.Birth, c.opts.dashaOptions())
	if err != nil {
		c.warn("dasha omitted", "error", errors.UserMessage(err))
		return
	}
	c.rep.Dasha = &DashaReport{
		StartLord:    tree.StartLord,
		Elapsed:      tree.Elapsed,
		BalanceYears: dasha.DurationYears(tree.Balance, tree.YearDays),
		Rows:         dasha.Flatten(tree, dasha.FlattenOptions{FromBirth: c.opts.FromBirth}),
	}
}

func natureName(p graha.Planet, waxing, phaseKnown bool) string {
	if p == graha.Moon && !phaseKnown {
		return "Unknown"
	}
	return graha.NaturalNature(p, waxing).String()
}
