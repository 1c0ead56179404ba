package house

import (
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Badhak returns the badhak (obstruction) house for an ascendant longitude:
// the 11th for a movable ascendant sign, the 9th for a fixed sign and the
// 7th for a dual sign. ok is false for a non-finite ascendant.
func Badhak(asc float64) (house int, ok bool) {
	return BadhakWith(asc, zodiac.MovableSigns, zodiac.FixedSigns)
}

// BadhakWith is [Badhak] with explicit movable and fixed sign lists; any
// other sign is treated as dual.
func BadhakWith(asc float64, movable, fixed []int) (int, bool) {
	r := zodiac.RashiIndex(asc)
	if r < 0 {
		return 0, false
	}
	for _, s := range movable {
		if s == r {
			return 11, true
		}
	}
	for _, s := range fixed {
		if s == r {
			return 9, true
		}
	}
	return 7, true
}

// BadhakLord returns the lord of the badhak sign, counted in signs from the
// ascendant sign.
func BadhakLord(asc float64) graha.Lord {
	h, ok := Badhak(asc)
	if !ok {
		return graha.Missing("ascendant not finite")
	}
	sign := (zodiac.RashiIndex(asc) + h - 1) % 12
	return zodiac.RashiLord(sign)
}
