package strength

import (
	"math"

	"github.com/matzehuels/kundali/pkg/aspect"
	"github.com/matzehuels/kundali/pkg/dignity"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/house"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Chart is the chart-level data from which per-planet Factors are derived.
type Chart struct {
	// Longitudes are sidereal degrees.
	Longitudes map[graha.Planet]float64
	Speeds     map[graha.Planet]float64
	Cusps      house.Cusps
	// Shadbala maps planets to percentage of required Shadbala.
	Shadbala map[graha.Planet]float64
	// Aspects is computed from Longitudes when nil.
	Aspects *aspect.Result
}

// nodeCoSign is the sign each node co-rules.
var nodeCoSign = map[graha.Planet]int{
	graha.Rahu: 10, // Aquarius
	graha.Ketu: 7,  // Scorpio
}

// RuledHouses returns the houses p rules, including node co-lordship.
func RuledHouses(p graha.Planet, cusps house.Cusps) []int {
	ruled := house.HousesRuledBy(p, cusps)
	if sign, ok := nodeCoSign[p]; ok {
		ruled = append(ruled, house.HousesWithCuspSign(sign, cusps)...)
	}
	return ruled
}

// Factors derives the scoring inputs for p.
func (c Chart) Factors(p graha.Planet) Factors {
	lon, ok := c.Longitudes[p]
	if !ok {
		lon = math.NaN()
	}
	sun, ok := c.Longitudes[graha.Sun]
	if !ok {
		sun = math.NaN()
	}
	moon, ok := c.Longitudes[graha.Moon]
	if !ok {
		moon = math.NaN()
	}
	aspects := c.Aspects
	if aspects == nil {
		r := aspect.FromLongitudes(c.Longitudes)
		aspects = &r
	}

	state := dignity.Classify(p, lon, sun, c.Speeds[p])
	waxing, phaseKnown := graha.MoonPhase(moon, sun)
	f := Factors{
		Planet:           p,
		MoonWaxing:       waxing,
		MoonPhaseUnknown: !phaseKnown,
		CuspsValid:       c.Cusps.Validate() == nil,
		Dignity:          state.Dignity,
		NavamsaDignity:   dignity.Of(p, zodiac.Navamsa(lon)),
		Vargottama:       zodiac.IsVargottama(lon),
		Balaadi:          state.Balaadi,
		Jagradadi:        state.Jagradadi,
		Shadbala:         math.NaN(),
		Combust:          state.Combust,
		Retrograde:       state.Retrograde,
		AspectedBy:       aspects.Reverse[p],
		NakshatraLord:    graha.NakshatraLord(zodiac.NakshatraIndex(lon)),
		Conjunct:         aspects.Conjunctions[p],
	}
	if v, ok := c.Shadbala[p]; ok {
		f.Shadbala = v
	}
	if !f.CuspsValid {
		return f
	}
	f.RuledHouses = RuledHouses(p, c.Cusps)
	if h, ok := house.HouseOf(lon, c.Cusps); ok {
		f.House = h
		occ := house.Occupants(c.Longitudes, c.Cusps)
		f.Hemming = Hemming{
			Before: occ[house.Relative(h, 0)],
			After:  occ[house.Relative(h, 2)],
		}
	}
	return f
}

// ScoreChart scores every planet in c.Longitudes.
func ScoreChart(c Chart) map[graha.Planet]Score {
	if c.Aspects == nil {
		r := aspect.FromLongitudes(c.Longitudes)
		c.Aspects = &r
	}
	out := make(map[graha.Planet]Score, len(c.Longitudes))
	for p := range c.Longitudes {
		out[p] = Compute(c.Factors(p))
	}
	return out
}
