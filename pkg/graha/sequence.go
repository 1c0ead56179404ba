package graha

// Vimshottari is the fixed 9-lord cycle shared by sub-lord, sub-sub-lord and
// dasha subdivision.
var Vimshottari = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// TotalYears is the length of one full Vimshottari cycle.
const TotalYears = 120.0

var vimshottariYears = map[Planet]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// Years returns the Vimshottari period of p in years.
// The second result is false for an invalid planet.
func Years(p Planet) (float64, bool) {
	y, ok := vimshottariYears[p]
	return y, ok
}

// Share returns p's proportion of the full cycle, years/120.
func Share(p Planet) (float64, bool) {
	y, ok := Years(p)
	if !ok {
		return 0, false
	}
	return y / TotalYears, true
}

// SequenceIndex returns p's position in [Vimshottari], or -1.
func SequenceIndex(p Planet) int {
	for i, l := range Vimshottari {
		if l == p {
			return i
		}
	}
	return -1
}

// NextLords returns count lords of the Vimshottari cycle starting at start
// (inclusive), wrapping around as often as needed. It returns nil if start is
// not part of the cycle or count is not positive.
func NextLords(start Planet, count int) []Planet {
	idx := SequenceIndex(start)
	if idx < 0 || count <= 0 {
		return nil
	}
	out := make([]Planet, count)
	for i := range out {
		out[i] = Vimshottari[(idx+i)%len(Vimshottari)]
	}
	return out
}

// NakshatraLord returns the ruling lord of the nakshatra at index 0-26.
func NakshatraLord(nakshatra int) Lord {
	if nakshatra < 0 || nakshatra > 26 {
		return Failed("nakshatra index out of range")
	}
	return Resolved(Vimshottari[nakshatra%len(Vimshottari)])
}
