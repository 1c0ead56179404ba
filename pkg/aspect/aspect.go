// Package aspect computes sign-based Vedic aspects (Graha Drishti) and
// same-sign conjunctions.
//
// Every non-node planet aspects the 7th sign from itself. Mars additionally
// aspects the 4th and 8th, Jupiter the 5th and 9th, and Saturn the 3rd and
// 10th. Aspects are sign-to-sign; degrees and orbs play no part. Rahu and
// Ketu cast no aspects but can receive them, and take part in conjunctions.
package aspect

import (
	"maps"
	"slices"

	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// seventh is the sign distance of the universal 7th aspect.
const seventh = 6

// special holds the extra sign distances per planet (distance 3 is the 4th
// sign counting the occupied sign as 1).
var special = map[graha.Planet][]int{
	graha.Mars:    {3, 7},
	graha.Jupiter: {4, 8},
	graha.Saturn:  {2, 9},
}

// Distances returns the sign distances p aspects, in ascending order.
// Nodes return nil.
func Distances(p graha.Planet) []int {
	if p.IsNode() || !p.Valid() {
		return nil
	}
	out := append([]int{seventh}, special[p]...)
	slices.Sort(out)
	return out
}

// AspectedSigns returns the sign indices p aspects from the sign at rashi.
func AspectedSigns(p graha.Planet, rashi int) []int {
	if rashi < 0 || rashi > 11 {
		return nil
	}
	dist := Distances(p)
	out := make([]int, 0, len(dist))
	for _, d := range dist {
		out = append(out, (rashi+d)%12)
	}
	slices.Sort(out)
	return out
}

// Result holds the three relation maps. Slices are sorted and never nil for
// planets present in the input.
type Result struct {
	// Direct maps a planet to the planets it aspects.
	Direct map[graha.Planet][]graha.Planet `json:"direct"`
	// Reverse maps a planet to the planets aspecting it.
	Reverse map[graha.Planet][]graha.Planet `json:"reverse"`
	// Conjunctions maps a planet to the other planets sharing its sign.
	Conjunctions map[graha.Planet][]graha.Planet `json:"conjunctions"`
}

// Compute derives aspects and conjunctions from each planet's sign index.
// Planets with a sign outside 0-11 are left out of every relation.
func Compute(signs map[graha.Planet]int) Result {
	res := Result{
		Direct:       make(map[graha.Planet][]graha.Planet, len(signs)),
		Reverse:      make(map[graha.Planet][]graha.Planet, len(signs)),
		Conjunctions: make(map[graha.Planet][]graha.Planet, len(signs)),
	}

	planets := slices.Sorted(maps.Keys(signs))
	bySign := make(map[int][]graha.Planet)
	for _, p := range planets {
		s := signs[p]
		if s < 0 || s > 11 {
			continue
		}
		bySign[s] = append(bySign[s], p)
		res.Direct[p] = []graha.Planet{}
		res.Reverse[p] = []graha.Planet{}
		res.Conjunctions[p] = []graha.Planet{}
	}

	for _, p := range planets {
		s, ok := validSign(signs, p)
		if !ok {
			continue
		}
		for _, other := range bySign[s] {
			if other != p {
				res.Conjunctions[p] = append(res.Conjunctions[p], other)
			}
		}
		for _, target := range AspectedSigns(p, s) {
			for _, other := range bySign[target] {
				res.Direct[p] = append(res.Direct[p], other)
				res.Reverse[other] = append(res.Reverse[other], p)
			}
		}
	}

	for _, m := range []map[graha.Planet][]graha.Planet{res.Direct, res.Reverse, res.Conjunctions} {
		for p := range m {
			slices.Sort(m[p])
		}
	}
	return res
}

// FromLongitudes is [Compute] on sidereal longitudes.
func FromLongitudes(lons map[graha.Planet]float64) Result {
	signs := make(map[graha.Planet]int, len(lons))
	for p, lon := range lons {
		signs[p] = zodiac.RashiIndex(lon)
	}
	return Compute(signs)
}

// Aspects reports whether a aspects b.
func (r Result) Aspects(a, b graha.Planet) bool {
	return slices.Contains(r.Direct[a], b)
}

// Influencers returns the sorted, de-duplicated union of planets conjunct
// with or aspecting p.
func (r Result) Influencers(p graha.Planet) []graha.Planet {
	out := append(slices.Clone(r.Conjunctions[p]), r.Reverse[p]...)
	slices.Sort(out)
	return slices.Compact(out)
}

func validSign(signs map[graha.Planet]int, p graha.Planet) (int, bool) {
	s, ok := signs[p]
	return s, ok && s >= 0 && s <= 11
}
