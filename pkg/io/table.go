package io

import (
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kundali/pkg/ephemeris"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

type tableFile struct {
	Name     string       `toml:"name"`
	Frame    string       `toml:"frame"`
	Ayanamsa *float64     `toml:"ayanamsa"`
	Samples  []sampleLine `toml:"samples"`
}

type sampleLine struct {
	Body        string    `toml:"body"`
	Time        time.Time `toml:"time"`
	Longitude   float64   `toml:"longitude"`
	Latitude    float64   `toml:"latitude"`
	Distance    float64   `toml:"distance"`
	Speed       float64   `toml:"speed"`
	Declination float64   `toml:"declination"`
}

// ReadTable decodes a TOML ephemeris file from r. Tropical samples are
// shifted by the file's ayanamsa, or by Lahiri at each sample's time.
func ReadTable(r io.Reader) (*ephemeris.Table, error) {
	var f tableFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode ephemeris")
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown key %q in ephemeris", und[0].String())
	}
	frame, ok := ephemeris.ParseFrame(strings.ToLower(f.Frame))
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown frame %q", f.Frame)
	}

	samples := make(map[graha.Planet][]ephemeris.Sample)
	for i, s := range f.Samples {
		p, err := graha.ParsePlanet(s.Body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "sample %d", i)
		}
		if s.Time.IsZero() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "sample %d (%s) has no time", i, p)
		}
		lon := s.Longitude
		if frame == ephemeris.Tropical {
			ayan := ephemeris.Lahiri(s.Time)
			if f.Ayanamsa != nil {
				ayan = *f.Ayanamsa
			}
			lon = zodiac.Sidereal(lon, ayan)
		}
		samples[p] = append(samples[p], ephemeris.Sample{
			Time: s.Time.UTC(),
			Position: ephemeris.Position{
				Longitude:   lon,
				Latitude:    s.Latitude,
				Distance:    s.Distance,
				Speed:       s.Speed,
				Declination: s.Declination,
			},
		})
	}
	if len(samples) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "ephemeris has no samples")
	}
	name := f.Name
	if name == "" {
		name = "table"
	}
	return ephemeris.NewTable(name, samples)
}

// ImportTable reads the ephemeris file at path.
func ImportTable(path string) (*ephemeris.Table, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}
