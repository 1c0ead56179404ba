package graha

import "math"

// Nature is a planet's natural (naisargika) benefic/malefic polarity.
type Nature int

const (
	Neutral Nature = iota
	Benefic
	Malefic
)

// String returns the nature name.
func (n Nature) String() string {
	switch n {
	case Benefic:
		return "Benefic"
	case Malefic:
		return "Malefic"
	default:
		return "Neutral"
	}
}

var naturalNature = map[Planet]Nature{
	Sun:     Malefic,
	Moon:    Benefic,
	Mars:    Malefic,
	Mercury: Neutral,
	Jupiter: Benefic,
	Venus:   Benefic,
	Saturn:  Malefic,
	Rahu:    Malefic,
	Ketu:    Malefic,
}

// NaturalNature returns p's polarity. The Moon is benefic when waxing and
// malefic when waning; Mercury stays neutral (its baseline) regardless.
func NaturalNature(p Planet, moonWaxing bool) Nature {
	if p == Moon {
		if moonWaxing {
			return Benefic
		}
		return Malefic
	}
	return naturalNature[p]
}

// MoonPhase reports whether the Moon is waxing, i.e. its elongation from
// the Sun measured forward is below 180 degrees. ok is false when either
// longitude is not finite.
func MoonPhase(moonLon, sunLon float64) (waxing, ok bool) {
	d := moonLon - sunLon
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return false, false
	}
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d < 180, true
}

// MoonWaxing is [MoonPhase] without the validity flag; an unknown phase
// reports false.
func MoonWaxing(moonLon, sunLon float64) bool {
	waxing, _ := MoonPhase(moonLon, sunLon)
	return waxing
}
