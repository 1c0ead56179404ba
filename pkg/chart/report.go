package chart

import (
	"time"

	"github.com/matzehuels/kundali/pkg/aspect"
	"github.com/matzehuels/kundali/pkg/dasha"
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/render/aspectgraph"
	"github.com/matzehuels/kundali/pkg/significator"
	"github.com/matzehuels/kundali/pkg/strength"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Report is the assembled result of one calculation. It is designed for
// display and JSON export; enumerations are carried as names.
type Report struct {
	ID          string         `json:"id"`
	Name        string         `json:"name,omitempty"`
	InputHash   string         `json:"input_hash,omitempty"`
	Birth       time.Time      `json:"birth"`
	JulianDay   float64        `json:"julian_day"`
	Ayanamsa    float64        `json:"ayanamsa"`
	Ascendant   *Placement     `json:"ascendant,omitempty"`
	EqualHouses bool           `json:"equal_houses,omitempty"`
	Planets     []PlanetReport `json:"planets"`
	Houses      []HouseReport  `json:"houses,omitempty"`
	Aspects     aspect.Result  `json:"aspects"`
	Dasha       *DashaReport   `json:"dasha,omitempty"`
	Badhak      *BadhakReport  `json:"badhak,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Placement is the zodiacal position of a longitude.
type Placement struct {
	Longitude      Value      `json:"longitude"`
	DMS            string     `json:"dms"`
	RashiIndex     int        `json:"rashi_index"`
	Rashi          string     `json:"rashi"`
	RashiLord      graha.Lord `json:"rashi_lord"`
	NakshatraIndex int        `json:"nakshatra_index"`
	Nakshatra      string     `json:"nakshatra"`
	NakshatraLord  graha.Lord `json:"nakshatra_lord"`
	Pada           int        `json:"pada,omitempty"`
	PadaAlphabet   string     `json:"pada_alphabet,omitempty"`
	SubLord        graha.Lord `json:"sub_lord"`
	SubSubLord     graha.Lord `json:"sub_sub_lord"`
}

// PlanetReport is everything computed for one body.
type PlanetReport struct {
	Planet graha.Planet `json:"planet"`
	Placement
	Speed         Value               `json:"speed"`
	House         int                 `json:"house,omitempty"`
	Navamsa       string              `json:"navamsa"`
	Vargottama    bool                `json:"vargottama"`
	Nature        string              `json:"nature"`
	Dignity       string              `json:"dignity"`
	Combust       bool                `json:"combust"`
	Retrograde    bool                `json:"retrograde"`
	Balaadi       string              `json:"balaadi"`
	Jagradadi     string              `json:"jagradadi"`
	Deeptaadi     string              `json:"deeptaadi"`
	Significators significator.Record `json:"significators"`
	Strength      StrengthReport      `json:"strength"`
}

// StrengthReport is a UPBS score with NaN rendered as null.
type StrengthReport struct {
	Factors map[string]Value `json:"factors"`
	Total   Value            `json:"total"`
	Band    strength.Band    `json:"band"`
}

func newStrengthReport(s strength.Score) StrengthReport {
	r := StrengthReport{
		Factors: make(map[string]Value, len(strength.FactorNames)),
		Total:   Value(s.Total),
		Band:    s.Band,
	}
	for i, v := range s.Breakdown.Values() {
		r.Factors[strength.FactorNames[i]] = Value(v)
	}
	return r
}

// HouseReport describes one house.
type HouseReport struct {
	Number    int            `json:"number"`
	Cusp      Value          `json:"cusp"`
	Rashi     string         `json:"rashi"`
	Lord      graha.Lord     `json:"lord"`
	Occupants []graha.Planet `json:"occupants,omitempty"`
}

// DashaReport is the flattened dasha tree.
type DashaReport struct {
	StartLord    graha.Planet `json:"start_lord"`
	Elapsed      float64      `json:"elapsed_fraction"`
	BalanceYears float64      `json:"balance_years"`
	Rows         []dasha.Row  `json:"rows"`
}

// Current returns the deepest row running at t, or nil.
func (d *DashaReport) Current(t time.Time) []dasha.Row {
	if d == nil {
		return nil
	}
	var chain []dasha.Row
	for _, r := range d.Rows {
		if !t.Before(r.Start) && t.Before(r.End) && int(r.Level) == len(chain)+1 {
			chain = append(chain, r)
		}
	}
	return chain
}

// BadhakReport is the obstruction house of the ascendant.
type BadhakReport struct {
	House int        `json:"house"`
	Lord  graha.Lord `json:"lord"`
}

// Planet returns the report for p.
func (r *Report) Planet(p graha.Planet) (PlanetReport, bool) {
	for _, pr := range r.Planets {
		if pr.Planet == p {
			return pr, true
		}
	}
	return PlanetReport{}, false
}

// AspectGraph converts the report's aspects into diagram input.
func (r *Report) AspectGraph() aspectgraph.Graph {
	var g aspectgraph.Graph
	for _, pr := range r.Planets {
		if pr.RashiIndex < 0 {
			continue
		}
		g.Nodes = append(g.Nodes, aspectgraph.Node{
			Name:   pr.Planet.String(),
			Sign:   pr.Rashi,
			House:  pr.House,
			Nature: pr.Nature,
		})
	}
	for _, pr := range r.Planets {
		for _, to := range r.Aspects.Direct[pr.Planet] {
			g.Edges = append(g.Edges, aspectgraph.Edge{From: pr.Planet.String(), To: to.String(), Kind: aspectgraph.Aspect})
		}
		for _, with := range r.Aspects.Conjunctions[pr.Planet] {
			g.Edges = append(g.Edges, aspectgraph.Edge{From: pr.Planet.String(), To: with.String(), Kind: aspectgraph.Conjunction})
		}
	}
	return g
}

func newPlacement(lon float64) Placement {
	pos := zodiac.Locate(lon)
	p := Placement{
		Longitude:      Value(pos.Longitude),
		DMS:            zodiac.FormatDMS(pos.Longitude),
		RashiIndex:     pos.RashiIndex,
		Rashi:          pos.RashiName,
		RashiLord:      pos.RashiLord,
		NakshatraIndex: pos.NakshatraIndex,
		Nakshatra:      pos.NakshatraName,
		NakshatraLord:  pos.NakshatraLord,
		Pada:           pos.Pada,
		PadaAlphabet:   pos.PadaAlphabet,
	}
	return p
}
