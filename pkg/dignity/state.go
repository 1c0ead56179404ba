package dignity

import (
	"math"

	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Orb is a planet's combustion distance from the Sun in degrees.
type Orb struct {
	Direct     float64
	Retrograde float64
}

var combustOrbs = map[graha.Planet]Orb{
	graha.Moon:    {12, 12},
	graha.Mars:    {17, 17},
	graha.Mercury: {14, 12},
	graha.Jupiter: {11, 11},
	graha.Venus:   {10, 8},
	graha.Saturn:  {15, 15},
}

// CombustOrb returns p's combustion orb. ok is false for the Sun and nodes.
func CombustOrb(p graha.Planet) (Orb, bool) {
	o, ok := combustOrbs[p]
	return o, ok
}

// IsCombust reports whether p at lon is within its orb of the Sun. Non-finite
// input and planets without an orb are never combust.
func IsCombust(p graha.Planet, lon, sunLon float64, retrograde bool) bool {
	orb, ok := combustOrbs[p]
	if !ok {
		return false
	}
	if math.IsNaN(zodiac.Normalize(lon)) || math.IsNaN(zodiac.Normalize(sunLon)) {
		return false
	}
	limit := orb.Direct
	if retrograde {
		limit = orb.Retrograde
	}
	return zodiac.Separation(lon, sunLon) <= limit
}

// IsRetrograde reports retrograde motion. Nodes always are.
func IsRetrograde(p graha.Planet, speed float64) bool {
	if p.IsNode() {
		return true
	}
	return speed < 0
}

// NodeSpeed forces a node's speed negative. Other planets are returned
// unchanged.
func NodeSpeed(p graha.Planet, speed float64) float64 {
	if p.IsNode() {
		return -math.Abs(speed)
	}
	return speed
}

// State is the full dignity and avastha classification of one planet.
type State struct {
	Dignity    Dignity   `json:"dignity"`
	Combust    bool      `json:"combust"`
	Retrograde bool      `json:"retrograde"`
	Balaadi    Balaadi   `json:"balaadi"`
	Jagradadi  Jagradadi `json:"jagradadi"`
	Deeptaadi  Deeptaadi `json:"deeptaadi"`
}

// Classify computes the full state of p at lon given the Sun's longitude and
// p's longitudinal speed.
func Classify(p graha.Planet, lon, sunLon, speed float64) State {
	retro := IsRetrograde(p, speed)
	d := Of(p, zodiac.RashiIndex(lon))
	combust := IsCombust(p, lon, sunLon, retro)
	return State{
		Dignity:    d,
		Combust:    combust,
		Retrograde: retro,
		Balaadi:    BalaadiOf(lon),
		Jagradadi:  JagradadiOf(d),
		Deeptaadi:  DeeptaadiOf(d, combust),
	}
}
