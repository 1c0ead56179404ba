package ephemeris

import (
	"time"

	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// AyanamsaFunc returns the ayanamsa in degrees at t.
type AyanamsaFunc func(t time.Time) float64

// Lahiri approximates the Lahiri (Chitrapaksha) ayanamsa with a linear
// precession rate, good to a few arc-seconds over the 20th and 21st
// centuries.
func Lahiri(t time.Time) float64 {
	centuries := (JulianDay(t) - J2000) / 36525
	return 23.85305 + 1.39697*centuries
}

// Fixed returns an AyanamsaFunc that always yields deg.
func Fixed(deg float64) AyanamsaFunc {
	return func(time.Time) float64 { return deg }
}

// Shifted converts a tropical provider to sidereal positions.
type Shifted struct {
	Provider Provider
	Ayanamsa AyanamsaFunc
}

// NewShifted wraps p, subtracting ayanamsa from every longitude.
func NewShifted(p Provider, ayanamsa AyanamsaFunc) *Shifted {
	if ayanamsa == nil {
		ayanamsa = Lahiri
	}
	return &Shifted{Provider: p, Ayanamsa: ayanamsa}
}

// Name returns the wrapped provider name.
func (s *Shifted) Name() string { return s.Provider.Name() + "+ayanamsa" }

// Available delegates to the wrapped provider.
func (s *Shifted) Available(body graha.Planet) bool { return s.Provider.Available(body) }

// Position returns the sidereal position of body at t.
func (s *Shifted) Position(body graha.Planet, t time.Time) (Position, error) {
	pos, err := s.Provider.Position(body, t)
	if err != nil {
		return Position{}, err
	}
	pos.Longitude = zodiac.Sidereal(pos.Longitude, s.Ayanamsa(t))
	return pos, nil
}
