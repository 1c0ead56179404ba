package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/ephemeris"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
)

type chartFile struct {
	Name      string                        `toml:"name,omitempty"`
	JulianDay float64                       `toml:"julian_day,omitempty"`
	Birth     *time.Time                    `toml:"birth,omitempty"`
	Frame     string                        `toml:"frame,omitempty"`
	Ayanamsa  *float64                      `toml:"ayanamsa,omitempty"`
	Ascendant *float64                      `toml:"ascendant,omitempty"`
	Cusps     []float64                     `toml:"cusps,omitempty"`
	Bodies    map[string]ephemeris.Position `toml:"bodies"`
	Shadbala  map[string]float64            `toml:"shadbala,omitempty"`
}

// ReadChart decodes a TOML chart file from r.
//
// The Julian Day comes from julian_day, or from birth when julian_day is
// absent. A tropical chart without an ayanamsa uses Lahiri at that moment.
// ReadChart does not validate the Julian Day; [chart.Calculate] does.
func ReadChart(r io.Reader) (chart.Input, error) {
	var f chartFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return chart.Input{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "decode chart")
	}
	if und := md.Undecoded(); len(und) > 0 {
		return chart.Input{}, errors.New(errors.ErrCodeInvalidChart, "unknown key %q in chart", und[0].String())
	}
	return f.input()
}

func (f chartFile) input() (chart.Input, error) {
	frame, ok := ephemeris.ParseFrame(strings.ToLower(f.Frame))
	if !ok {
		return chart.Input{}, errors.New(errors.ErrCodeInvalidChart, "unknown frame %q", f.Frame)
	}
	in := chart.Input{
		Name:      f.Name,
		JulianDay: f.JulianDay,
		Frame:     frame,
		Ascendant: f.Ascendant,
		Cusps:     f.Cusps,
	}
	if in.JulianDay == 0 && f.Birth != nil {
		in.JulianDay = ephemeris.JulianDay(*f.Birth)
	}
	if frame == ephemeris.Tropical {
		switch {
		case f.Ayanamsa != nil:
			in.Ayanamsa = *f.Ayanamsa
		case in.JulianDay != 0:
			if t, err := ephemeris.TimeFromJulianDay(in.JulianDay); err == nil {
				in.Ayanamsa = ephemeris.Lahiri(t)
			}
		}
	}

	in.Bodies = make(map[graha.Planet]ephemeris.Position, len(f.Bodies))
	for name, pos := range f.Bodies {
		p, err := graha.ParsePlanet(name)
		if err != nil {
			return chart.Input{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "bodies.%s", name)
		}
		if _, dup := in.Bodies[p]; dup {
			return chart.Input{}, errors.New(errors.ErrCodeInvalidChart, "body %s given twice", p)
		}
		in.Bodies[p] = pos
	}
	if len(f.Shadbala) > 0 {
		in.Shadbala = make(map[graha.Planet]float64, len(f.Shadbala))
		for name, v := range f.Shadbala {
			p, err := graha.ParsePlanet(name)
			if err != nil {
				return chart.Input{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "shadbala.%s", name)
			}
			in.Shadbala[p] = v
		}
	}
	return in, nil
}

// WriteChart encodes in as a TOML chart file that [ReadChart] accepts.
func WriteChart(in chart.Input, w io.Writer) error {
	f := chartFile{
		Name:      in.Name,
		JulianDay: in.JulianDay,
		Frame:     in.Frame.String(),
		Ascendant: in.Ascendant,
		Cusps:     in.Cusps,
		Bodies:    make(map[string]ephemeris.Position, len(in.Bodies)),
	}
	if in.Frame == ephemeris.Tropical {
		a := in.Ayanamsa
		f.Ayanamsa = &a
	}
	for p, pos := range in.Bodies {
		f.Bodies[p.String()] = pos
	}
	if len(in.Shadbala) > 0 {
		f.Shadbala = make(map[string]float64, len(in.Shadbala))
		for p, v := range in.Shadbala {
			f.Shadbala[p.String()] = v
		}
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode chart")
	}
	return nil
}

// ImportChart reads the chart file at path. A .json extension selects the
// JSON encoding of [chart.Input]; anything else is read as TOML.
func ImportChart(path string) (chart.Input, error) {
	f, err := open(path)
	if err != nil {
		return chart.Input{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var in chart.Input
		if err := json.NewDecoder(f).Decode(&in); err != nil {
			return chart.Input{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "decode %s", path)
		}
		return in, nil
	}
	in, err := ReadChart(f)
	if err != nil {
		return chart.Input{}, errors.Wrap(errors.ErrCodeInvalidChart, err, "%s", path)
	}
	return in, nil
}

func open(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}
