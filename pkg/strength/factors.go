package strength

import (
	"math"

	"github.com/matzehuels/kundali/pkg/dignity"
	"github.com/matzehuels/kundali/pkg/graha"
)

// Hemming lists the occupants of the houses either side of a planet.
type Hemming struct {
	Before []graha.Planet `json:"before"`
	After  []graha.Planet `json:"after"`
}

// Factors is everything the scorer reads about one planet.
type Factors struct {
	Planet     graha.Planet
	MoonWaxing bool
	// MoonPhaseUnknown is set when the Sun or Moon longitude is missing;
	// every factor that needs the Moon's polarity is then NaN.
	MoonPhaseUnknown bool

	// CuspsValid is false when house data is unusable; lordship-based
	// factors are then NaN.
	CuspsValid  bool
	RuledHouses []int

	Dignity        dignity.Dignity
	NavamsaDignity dignity.Dignity
	Vargottama     bool
	Balaadi        dignity.Balaadi
	Jagradadi      dignity.Jagradadi

	// Shadbala is the percentage of required Shadbala, NaN if unknown.
	// Nodes carry no Shadbala and ignore it.
	Shadbala float64

	Combust    bool
	Retrograde bool

	// House is 1-12, or 0 when unknown.
	House int

	AspectedBy    []graha.Planet
	NakshatraLord graha.Lord
	Conjunct      []graha.Planet
	Hemming       Hemming
}

// polarity is +1 for benefics, -1 for malefics and +0.5 for Mercury.
// It is NaN for the Moon when the phase is unknown.
func (f Factors) polarity(p graha.Planet) float64 {
	if p == graha.Moon && f.MoonPhaseUnknown {
		return math.NaN()
	}
	switch graha.NaturalNature(p, f.MoonWaxing) {
	case graha.Benefic:
		return 1
	case graha.Malefic:
		return -1
	default:
		return 0.5
	}
}

var naturalScores = map[graha.Planet]float64{
	graha.Sun:     -1,
	graha.Mars:    -2,
	graha.Mercury: 0.5,
	graha.Jupiter: 2,
	graha.Venus:   2,
	graha.Saturn:  -2,
	graha.Rahu:    -2,
	graha.Ketu:    -1.5,
}

// NaturalNature scores natural polarity. The Moon is +1 waxing, -1 waning.
func NaturalNature(f Factors) float64 {
	if f.Planet == graha.Moon {
		if f.MoonPhaseUnknown {
			return math.NaN()
		}
		if f.MoonWaxing {
			return 1
		}
		return -1
	}
	s, ok := naturalScores[f.Planet]
	if !ok {
		return math.NaN()
	}
	return s
}

var lordshipScores = [13]float64{
	1: 2, 2: 0, 3: -1, 4: 1, 5: 2, 6: -2,
	7: 0, 8: -2, 9: 2, 10: 1, 11: -1, 12: -1.5,
}

// FunctionalNature sums the lordship outcome of every ruled house.
func FunctionalNature(f Factors) float64 {
	if !f.CuspsValid {
		return math.NaN()
	}
	var s float64
	for _, h := range f.RuledHouses {
		if h < 1 || h > 12 {
			return math.NaN()
		}
		s += lordshipScores[h]
	}
	return s
}

var dignityScores = map[dignity.Dignity]float64{
	dignity.Exalted:      3,
	dignity.Moolatrikona: 2.5,
	dignity.OwnSign:      2,
	dignity.Friend:       1,
	dignity.Neutral:      0,
	dignity.Enemy:        -1,
	dignity.Debilitated:  -3,
}

// Dignity scores sign dignity.
func Dignity(f Factors) float64 {
	s, ok := dignityScores[f.Dignity]
	if !ok {
		return math.NaN()
	}
	return s
}

func shadbalaBand(pct float64) float64 {
	switch {
	case math.IsNaN(pct):
		return math.NaN()
	case pct >= 150:
		return 2
	case pct >= 120:
		return 1.5
	case pct >= 100:
		return 1
	case pct >= 80:
		return 0
	case pct >= 60:
		return -1
	default:
		return -2
	}
}

var balaadiScores = map[dignity.Balaadi]float64{
	dignity.Bala:    0,
	dignity.Kumara:  0.5,
	dignity.Yuva:    1,
	dignity.Vriddha: -0.5,
	dignity.Mrita:   -1,
}

// CompositeStrength combines the Shadbala band with avastha, navamsa
// dignity and vargottama bonuses.
func CompositeStrength(f Factors) float64 {
	var s float64
	if !f.Planet.IsNode() {
		s = shadbalaBand(f.Shadbala)
	}
	b, ok := balaadiScores[f.Balaadi]
	if !ok {
		return math.NaN()
	}
	s += b
	switch f.Jagradadi {
	case dignity.Jagrat:
		s += 0.5
	case dignity.Sushupti:
		s -= 0.5
	}
	switch f.NavamsaDignity {
	case dignity.Exalted:
		s++
	case dignity.OwnSign, dignity.Moolatrikona:
		s += 0.5
	case dignity.Debilitated:
		s--
	}
	if f.Vargottama {
		s++
	}
	return s
}

// CombustRetro penalizes combustion and adjusts for retrograde motion by
// polarity. Nodes are never scored for their permanent retrogression.
func CombustRetro(f Factors) float64 {
	pol := f.polarity(f.Planet)
	if math.IsNaN(pol) && (f.Combust || (f.Retrograde && !f.Planet.IsNode())) {
		return math.NaN()
	}
	var s float64
	if f.Combust {
		switch {
		case pol > 0.5:
			s -= 2
		case pol < 0:
			s--
		default:
			s -= 1.5
		}
	}
	if f.Retrograde && !f.Planet.IsNode() {
		switch {
		case pol > 0.5:
			s++
		case pol < 0:
			s--
		}
	}
	return s
}

// HousePlacement bands the occupied house.
func HousePlacement(f Factors) float64 {
	switch f.House {
	case 1, 5, 9:
		return 2
	case 4, 7, 10:
		return 1.5
	case 2, 11:
		return 0.5
	case 3:
		return 0
	case 6, 8, 12:
		return -2
	default:
		return math.NaN()
	}
}

var aspectScores = map[graha.Planet]float64{
	graha.Jupiter: 1.5,
	graha.Venus:   1,
	graha.Mercury: 0.5,
	graha.Sun:     -0.5,
	graha.Mars:    -1,
	graha.Saturn:  -1.5,
}

// AspectsReceived sums the contribution of every aspecting planet.
func AspectsReceived(f Factors) float64 {
	var s float64
	for _, p := range f.AspectedBy {
		if p == graha.Moon {
			s += 0.5 * f.polarity(p)
			continue
		}
		s += aspectScores[p]
	}
	return s
}

// NakshatraLord scores the polarity of the nakshatra lord.
func NakshatraLord(f Factors) float64 {
	p, ok := f.NakshatraLord.Planet()
	if !ok {
		return math.NaN()
	}
	return f.polarity(p)
}

// Association scores conjunctions and hemming. The Sun does not count
// against a combust planet, which [CombustRetro] already penalizes. A planet
// hemmed by benefics on one side and malefics on the other scores nothing
// for hemming.
func Association(f Factors) float64 {
	if f.House == 0 {
		return math.NaN()
	}
	var s float64
	for _, p := range f.Conjunct {
		if p == f.Planet || (p == graha.Sun && f.Combust) {
			continue
		}
		pol := f.polarity(p)
		switch {
		case math.IsNaN(pol):
			return math.NaN()
		case pol < 0:
			s--
		default:
			s++
		}
	}
	return s + hemming(f)
}

func hemming(f Factors) float64 {
	before := f.sidePolarity(f.Hemming.Before)
	after := f.sidePolarity(f.Hemming.After)
	switch {
	case before == sideEmpty || after == sideEmpty || before == sideMixed || after == sideMixed:
		return 0
	case before == sideUnknown || after == sideUnknown:
		return math.NaN()
	case before == sideBenefic && after == sideBenefic:
		return 1.5
	case before == sideMalefic && after == sideMalefic:
		return -1.5
	default:
		return 0
	}
}

type side int

const (
	sideEmpty side = iota
	sideBenefic
	sideMalefic
	sideMixed
	// sideUnknown holds the Moon with an unknown phase and nothing that
	// would make the side mixed regardless.
	sideUnknown
)

func (f Factors) sidePolarity(ps []graha.Planet) side {
	s := sideEmpty
	unknown := false
	for _, p := range ps {
		pol := f.polarity(p)
		if math.IsNaN(pol) {
			unknown = true
			continue
		}
		cur := sideBenefic
		if pol < 0 {
			cur = sideMalefic
		}
		if s == sideEmpty {
			s = cur
		} else if s != cur {
			return sideMixed
		}
	}
	if unknown {
		return sideUnknown
	}
	return s
}
