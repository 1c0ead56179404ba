package graha

import (
	"strings"

	"github.com/matzehuels/kundali/pkg/errors"
)

// Planet identifies one of the nine grahas.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// All lists the nine grahas in natural order.
var All = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// Classical lists the seven visible planets (everything except the nodes).
var Classical = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

var planetNames = [...]string{
	Sun:     "Sun",
	Moon:    "Moon",
	Mars:    "Mars",
	Mercury: "Mercury",
	Jupiter: "Jupiter",
	Venus:   "Venus",
	Saturn:  "Saturn",
	Rahu:    "Rahu",
	Ketu:    "Ketu",
}

// Valid reports whether p is one of the nine grahas.
func (p Planet) Valid() bool { return p >= Sun && p <= Ketu }

// String returns the planet's English name.
func (p Planet) String() string {
	if !p.Valid() {
		return "Unknown"
	}
	return planetNames[p]
}

// IsNode reports whether p is Rahu or Ketu.
func (p Planet) IsNode() bool { return p == Rahu || p == Ketu }

// MarshalText encodes the planet by name so maps keyed by Planet serialize
// with readable keys.
func (p Planet) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidPlanet, "invalid planet %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a planet name.
func (p *Planet) UnmarshalText(b []byte) error {
	v, err := ParsePlanet(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlanet parses a planet name case-insensitively. Common Sanskrit names
// (Surya, Chandra, Mangal, Budh, Guru, Shukra, Shani) are accepted too.
func ParsePlanet(name string) (Planet, error) {
	if err := errors.ValidateBodyName(name); err != nil {
		return 0, err
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sun", "surya":
		return Sun, nil
	case "moon", "chandra":
		return Moon, nil
	case "mars", "mangal", "kuja":
		return Mars, nil
	case "mercury", "budh", "budha":
		return Mercury, nil
	case "jupiter", "guru", "brihaspati":
		return Jupiter, nil
	case "venus", "shukra":
		return Venus, nil
	case "saturn", "shani":
		return Saturn, nil
	case "rahu", "north node":
		return Rahu, nil
	case "ketu", "south node":
		return Ketu, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPlanet, "unknown planet %q", name)
}
