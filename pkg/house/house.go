// Package house maps longitudes onto the twelve houses defined by cusp
// boundaries and derives house lordship.
//
// Cusps are 12 sidereal start degrees. House i spans [cusps[i], cusps[i+1]),
// with the 12th house closing at the 1st cusp; a house whose start is
// numerically greater than its end wraps through 0°. Every longitude in
// [0,360) belongs to exactly one house when the cusps are well formed.
package house

import (
	"math"
	"slices"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Cusps holds the start degree of houses 1-12.
type Cusps [12]float64

// EqualCusps returns cusps of equal 30° houses starting at asc. Useful for
// whole-degree charts and tests.
func EqualCusps(asc float64) Cusps {
	var c Cusps
	for i := range c {
		c[i] = zodiac.Normalize(asc + float64(i)*30)
	}
	return c
}

// WholeSignCusps returns cusps at the start of each sign counted from the
// sign containing asc.
func WholeSignCusps(asc float64) Cusps {
	return EqualCusps(float64(zodiac.RashiIndex(asc)) * zodiac.RashiSpan)
}

// Validate reports non-finite cusps.
func (c Cusps) Validate() error {
	return errors.ValidateCusps(c[:])
}

// Normalized returns a copy with every cusp reduced into [0,360).
func (c Cusps) Normalized() Cusps {
	var out Cusps
	for i, v := range c {
		out[i] = zodiac.Normalize(v)
	}
	return out
}

// HouseOf returns the house 1-12 containing lon. ok is false when lon or the
// cusps are not finite, or when no house matches, which means the cusp data
// is malformed.
func HouseOf(lon float64, cusps Cusps) (house int, ok bool) {
	lon = zodiac.Normalize(lon)
	if math.IsNaN(lon) || cusps.Validate() != nil {
		return 0, false
	}
	c := cusps.Normalized()
	for i := range c {
		start, end := c[i], c[(i+1)%12]
		if start == end {
			continue
		}
		if start < end {
			if lon >= start && lon < end {
				return i + 1, true
			}
		} else if lon >= start || lon < end {
			return i + 1, true
		}
	}
	return 0, false
}

// CuspRashi returns the sign index at the start of house h (1-12), or -1.
func CuspRashi(h int, cusps Cusps) int {
	if h < 1 || h > 12 {
		return -1
	}
	return zodiac.RashiIndex(cusps[h-1])
}

// HousesRuledBy returns, in ascending order, the houses whose cusp sign is
// ruled by p. Nodes rule no sign and always get an empty result.
func HousesRuledBy(p graha.Planet, cusps Cusps) []int {
	out := []int{}
	if cusps.Validate() != nil {
		return out
	}
	for h := 1; h <= 12; h++ {
		r := CuspRashi(h, cusps)
		if r >= 0 && zodiac.Rashis[r].Lord == p {
			out = append(out, h)
		}
	}
	return out
}

// HousesWithCuspSign returns the houses whose cusp falls in the given sign.
// Several houses can share a cusp sign in unequal house systems.
func HousesWithCuspSign(rashi int, cusps Cusps) []int {
	out := []int{}
	if cusps.Validate() != nil {
		return out
	}
	for h := 1; h <= 12; h++ {
		if CuspRashi(h, cusps) == rashi {
			out = append(out, h)
		}
	}
	return out
}

// Occupants groups planets by the house they occupy. Planets whose house
// cannot be determined are omitted.
func Occupants(longitudes map[graha.Planet]float64, cusps Cusps) map[int][]graha.Planet {
	out := make(map[int][]graha.Planet, 12)
	for p, lon := range longitudes {
		if h, ok := HouseOf(lon, cusps); ok {
			out[h] = append(out[h], p)
		}
	}
	for h := range out {
		slices.Sort(out[h])
	}
	return out
}

// Relative returns the house n places from h, counting h as 1.
func Relative(h, n int) int {
	return ((h-1+n-1)%12+12)%12 + 1
}
