package zodiac

import (
	"fmt"
	"math"
)

// Circle spans.
const (
	RashiSpan     = 30.0
	NakshatraSpan = 360.0 / 27.0
	PadaSpan      = NakshatraSpan / 4.0
	NavamsaSpan   = RashiSpan / 9.0
)

// Normalize reduces a into [0,360). NaN and infinities are returned as NaN.
func Normalize(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN()
	}
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -1e-18 + 360 rounds to 360 in float64.
	if a >= 360 {
		a = 0
	}
	return a
}

// Sidereal converts a tropical longitude into the sidereal frame by
// subtracting the ayanamsa.
func Sidereal(tropical, ayanamsa float64) float64 {
	return Normalize(tropical - ayanamsa)
}

// Separation returns the shortest angular distance between a and b, in
// [0,180].
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// DegreeInSign returns the offset of lon within its 30° sign.
func DegreeInSign(lon float64) float64 {
	return math.Mod(Normalize(lon), RashiSpan)
}

// FormatDMS renders degrees as D°MM′SS″.
func FormatDMS(deg float64) string {
	if math.IsNaN(deg) {
		return "—"
	}
	total := int(math.Round(deg * 3600))
	return fmt.Sprintf("%d°%02d′%02d″", total/3600, (total%3600)/60, total%60)
}
