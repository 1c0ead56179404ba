// Package ephemeris defines the position source consumed by the chart and
// transit packages, plus Julian Day conversions.
//
// Computing planetary positions is out of scope; a [Provider] is supplied by
// the caller. [Table] is a provider backed by sampled positions, which is
// how the CLI reads ephemeris files.
package ephemeris

import (
	"time"

	"github.com/matzehuels/kundali/pkg/graha"
)

// Position is one body's coordinates at an instant. Longitudes and latitudes
// are in degrees, speeds in degrees per day.
type Position struct {
	Longitude     float64 `json:"longitude" toml:"longitude"`
	Latitude      float64 `json:"latitude" toml:"latitude"`
	Distance      float64 `json:"distance" toml:"distance"`
	Speed         float64 `json:"speed" toml:"speed"`
	SpeedLatitude float64 `json:"speed_latitude" toml:"speed_latitude"`
	Declination   float64 `json:"declination" toml:"declination"`
}

// Provider is a source of sidereal body positions.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns body's position at t.
	Position(body graha.Planet, t time.Time) (Position, error)

	// Available reports whether the provider can supply body at all.
	Available(body graha.Planet) bool
}

// Frame selects the zodiac a provider reports in.
type Frame int

const (
	Sidereal Frame = iota
	Tropical
)

// String returns the frame name.
func (f Frame) String() string {
	switch f {
	case Sidereal:
		return "sidereal"
	case Tropical:
		return "tropical"
	default:
		return "unknown"
	}
}

// ParseFrame parses a frame name. Empty input selects Sidereal.
func ParseFrame(s string) (Frame, bool) {
	switch s {
	case "", "sidereal":
		return Sidereal, true
	case "tropical":
		return Tropical, true
	default:
		return Sidereal, false
	}
}
