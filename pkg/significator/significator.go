// Package significator computes KP house significators.
//
// For an entity E (a planet, or the lord standing in for it):
//
//   - occupied: the house E occupies
//   - owned: the houses whose cusp sign E rules (empty for nodes)
//   - sign-lord owned (nodes only): houses ruled and occupied by the lord of
//     the sign the node sits in
//   - aspecting owned (nodes only): houses ruled and occupied by every planet
//     conjunct with or aspecting the node
//   - all: the sorted union of the four
//
// A planet's record repeats the procedure for its nakshatra lord and its
// sub-lord, so the planet signifies what its time-lords signify. A missing
// or failed lord contributes empty sets.
package significator

import (
	"maps"
	"slices"

	"github.com/matzehuels/kundali/pkg/aspect"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/house"
	"github.com/matzehuels/kundali/pkg/kp"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Record is the significator set of one planet.
type Record struct {
	Occupied         []int      `json:"occupied_houses"`
	Owned            []int      `json:"owned_houses"`
	SignLordOwned    []int      `json:"sign_lord_owned_houses"`
	AspectingOwned   []int      `json:"aspecting_owned_houses"`
	All              []int      `json:"all_houses"`
	NakshatraLord    graha.Lord `json:"nakshatra_lord"`
	NakshatraLordAll []int      `json:"nakshatra_lord_all_houses"`
	SubLord          graha.Lord `json:"sub_lord"`
	SubLordAll       []int      `json:"sub_lord_all_houses"`
}

// Input is everything the calculator reads.
type Input struct {
	Longitudes map[graha.Planet]float64
	Cusps      house.Cusps
	// Aspects is optional; when nil it is derived from Longitudes.
	Aspects *aspect.Result
}

// Calculate returns a record for every planet in in.Longitudes.
func Calculate(in Input) map[graha.Planet]Record {
	c := newCalculator(in)
	out := make(map[graha.Planet]Record, len(in.Longitudes))
	for _, p := range slices.Sorted(maps.Keys(in.Longitudes)) {
		out[p] = c.record(p)
	}
	return out
}

type calculator struct {
	in      Input
	aspects aspect.Result
	memo    map[graha.Planet]entitySets
}

type entitySets struct {
	occupied, owned, signLordOwned, aspectingOwned, all []int
}

func newCalculator(in Input) *calculator {
	c := &calculator{in: in, memo: make(map[graha.Planet]entitySets)}
	if in.Aspects != nil {
		c.aspects = *in.Aspects
	} else {
		c.aspects = aspect.FromLongitudes(in.Longitudes)
	}
	return c
}

func (c *calculator) record(p graha.Planet) Record {
	own := c.entity(p)
	lon := c.in.Longitudes[p]
	nakLord := zodiac.Locate(lon).NakshatraLord
	subLord := kp.ResolveSubLord(lon).Lord

	return Record{
		Occupied:         own.occupied,
		Owned:            own.owned,
		SignLordOwned:    own.signLordOwned,
		AspectingOwned:   own.aspectingOwned,
		All:              own.all,
		NakshatraLord:    nakLord,
		NakshatraLordAll: c.lordAll(nakLord),
		SubLord:          subLord,
		SubLordAll:       c.lordAll(subLord),
	}
}

// lordAll returns the all-houses set of a time-lord, or an empty set when the
// lord did not resolve or has no position in the chart.
func (c *calculator) lordAll(l graha.Lord) []int {
	p, ok := l.Planet()
	if !ok {
		return []int{}
	}
	if _, ok := c.in.Longitudes[p]; !ok {
		return []int{}
	}
	return c.entity(p).all
}

func (c *calculator) entity(p graha.Planet) entitySets {
	if s, ok := c.memo[p]; ok {
		return s
	}
	s := entitySets{
		occupied:       c.occupied(p),
		owned:          []int{},
		signLordOwned:  []int{},
		aspectingOwned: []int{},
	}
	if p.IsNode() {
		if lord, ok := zodiac.RashiLord(zodiac.RashiIndex(c.in.Longitudes[p])).Planet(); ok {
			s.signLordOwned = c.ruledAndOccupied(lord)
		}
		var acc []int
		for _, other := range c.aspects.Influencers(p) {
			acc = append(acc, c.ruledAndOccupied(other)...)
		}
		s.aspectingOwned = sortedSet(acc)
	} else {
		s.owned = house.HousesRuledBy(p, c.in.Cusps)
	}
	s.all = sortedSet(slices.Concat(s.occupied, s.owned, s.signLordOwned, s.aspectingOwned))
	c.memo[p] = s
	return s
}

func (c *calculator) occupied(p graha.Planet) []int {
	lon, ok := c.in.Longitudes[p]
	if !ok {
		return []int{}
	}
	if h, ok := house.HouseOf(lon, c.in.Cusps); ok {
		return []int{h}
	}
	return []int{}
}

func (c *calculator) ruledAndOccupied(p graha.Planet) []int {
	return sortedSet(slices.Concat(house.HousesRuledBy(p, c.in.Cusps), c.occupied(p)))
}

func sortedSet(v []int) []int {
	out := slices.Clone(v)
	if out == nil {
		return []int{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
