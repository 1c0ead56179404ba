package chart

import (
	"encoding/json"

	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/ephemeris"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/house"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Input is the caller-supplied data for one chart.
type Input struct {
	Name      string                              `json:"name,omitempty"`
	JulianDay float64                             `json:"julian_day"`
	Frame     ephemeris.Frame                     `json:"frame"`
	Ayanamsa  float64                             `json:"ayanamsa"`
	Bodies    map[graha.Planet]ephemeris.Position `json:"bodies"`

	// Ascendant is optional. Without Cusps, equal houses are drawn from it.
	Ascendant *float64  `json:"ascendant,omitempty"`
	Cusps     []float64 `json:"cusps,omitempty"`

	// Shadbala maps planets to their percentage of required Shadbala.
	Shadbala map[graha.Planet]float64 `json:"shadbala,omitempty"`
}

// Hash returns the content hash of in. It fails for inputs that cannot be
// encoded, such as NaN longitudes; such inputs are not cached.
func (in Input) Hash() (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func (in Input) sidereal(lon float64) float64 {
	if in.Frame == ephemeris.Tropical {
		return zodiac.Sidereal(lon, in.Ayanamsa)
	}
	return zodiac.Normalize(lon)
}

// bodies returns the sidereal body positions with Ketu derived from Rahu
// when only Rahu is supplied.
func (in Input) bodies() map[graha.Planet]ephemeris.Position {
	out := make(map[graha.Planet]ephemeris.Position, len(in.Bodies)+1)
	for p, pos := range in.Bodies {
		pos.Longitude = in.sidereal(pos.Longitude)
		out[p] = pos
	}
	if rahu, ok := out[graha.Rahu]; ok {
		if _, ok := out[graha.Ketu]; !ok {
			ketu := rahu
			ketu.Longitude = zodiac.Normalize(rahu.Longitude + 180)
			ketu.Latitude = -rahu.Latitude
			ketu.Declination = -rahu.Declination
			out[graha.Ketu] = ketu
		}
	}
	return out
}

func (in Input) ascendant() (float64, bool) {
	if in.Ascendant == nil {
		return 0, false
	}
	return in.sidereal(*in.Ascendant), true
}

// cusps returns the sidereal cusps. ok is false when no usable cusps could
// be built; the returned cusps are then all NaN.
func (in Input) cusps() (c house.Cusps, equal bool, ok bool) {
	switch {
	case len(in.Cusps) == 12:
		for i, v := range in.Cusps {
			c[i] = in.sidereal(v)
		}
		return c, false, c.Validate() == nil
	case len(in.Cusps) == 0:
		if asc, has := in.ascendant(); has && !isNaN(asc) {
			return house.EqualCusps(asc), true, true
		}
	}
	for i := range c {
		c[i] = nan
	}
	return c, false, false
}
