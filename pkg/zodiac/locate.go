package zodiac

import (
	"math"

	"github.com/matzehuels/kundali/pkg/graha"
)

// UnknownName is the display name for positions that could not be located.
const UnknownName = "Unknown"

// Position is the zodiacal placement of one longitude. It is a pure function
// of the longitude and carries no identity.
type Position struct {
	Longitude      float64    `json:"longitude"`
	RashiIndex     int        `json:"rashi_index"`
	RashiName      string     `json:"rashi"`
	RashiLord      graha.Lord `json:"rashi_lord"`
	NakshatraIndex int        `json:"nakshatra_index"`
	NakshatraName  string     `json:"nakshatra"`
	NakshatraLord  graha.Lord `json:"nakshatra_lord"`
	Pada           int        `json:"pada"`
	PadaAlphabet   string     `json:"pada_alphabet"`
}

// Known reports whether the position was located.
func (p Position) Known() bool { return p.RashiIndex >= 0 && p.NakshatraIndex >= 0 }

// Unknown is returned for longitudes that cannot be placed.
var Unknown = Position{
	Longitude:      math.NaN(),
	RashiIndex:     -1,
	RashiName:      UnknownName,
	RashiLord:      graha.Missing("unknown position"),
	NakshatraIndex: -1,
	NakshatraName:  UnknownName,
	NakshatraLord:  graha.Missing("unknown position"),
}

// Locate maps a sidereal longitude to its rashi, nakshatra and pada.
// Inputs outside [0,360) are normalized first; NaN or infinite input yields
// [Unknown].
func Locate(lon float64) Position {
	lon = Normalize(lon)
	if math.IsNaN(lon) || lon < 0 || lon >= 360 {
		return Unknown
	}

	nak := NakshatraIndex(lon)
	rashi := RashiIndex(lon)
	pada := PadaOf(lon)

	return Position{
		Longitude:      lon,
		RashiIndex:     rashi,
		RashiName:      Rashis[rashi].Name,
		RashiLord:      graha.Resolved(Rashis[rashi].Lord),
		NakshatraIndex: nak,
		NakshatraName:  Nakshatras[nak].Name,
		NakshatraLord:  graha.NakshatraLord(nak),
		Pada:           pada,
		PadaAlphabet:   Nakshatras[nak].Padas[pada-1],
	}
}

// RashiIndex returns floor(lon/30) for a normalized longitude, or -1.
func RashiIndex(lon float64) int {
	lon = Normalize(lon)
	if math.IsNaN(lon) {
		return -1
	}
	return clamp(int(math.Floor(lon/RashiSpan)), 0, 11)
}

// NakshatraIndex returns floor(lon/13°20′) for a normalized longitude, or -1.
func NakshatraIndex(lon float64) int {
	lon = Normalize(lon)
	if math.IsNaN(lon) {
		return -1
	}
	return clamp(int(math.Floor(lon/NakshatraSpan)), 0, 26)
}

// PadaOf returns the pada 1-4 of a longitude, or 0 for NaN.
func PadaOf(lon float64) int {
	lon = Normalize(lon)
	if math.IsNaN(lon) {
		return 0
	}
	within := math.Mod(lon, NakshatraSpan)
	return clamp(int(math.Floor(within/PadaSpan))+1, 1, 4)
}

// OffsetInNakshatra returns how far lon lies past the start of its
// nakshatra, in degrees.
func OffsetInNakshatra(lon float64) float64 {
	lon = Normalize(lon)
	if math.IsNaN(lon) {
		return math.NaN()
	}
	off := lon - float64(NakshatraIndex(lon))*NakshatraSpan
	if off < 0 {
		off = 0
	}
	return off
}

// Navamsa returns the D9 sign index of lon. Each sign is cut into nine
// 3°20′ parts and the parts run continuously around the zodiac from Aries,
// which reproduces the classical fire/earth/air/water starting signs.
func Navamsa(lon float64) int {
	lon = Normalize(lon)
	if math.IsNaN(lon) {
		return -1
	}
	return int(math.Floor(lon/NavamsaSpan)) % 12
}

// IsVargottama reports whether lon occupies the same sign in D1 and D9.
func IsVargottama(lon float64) bool {
	d1 := RashiIndex(lon)
	return d1 >= 0 && d1 == Navamsa(lon)
}

// SignDistance returns how many signs forward to is from from, in 0-11.
func SignDistance(from, to int) int {
	return ((to-from)%12 + 12) % 12
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
