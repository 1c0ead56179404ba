package strength

import "math"

// Weights are the fixed multipliers of each factor in the total.
var Weights = Breakdown{
	NaturalNature:     1.0,
	FunctionalNature:  1.5,
	Dignity:           1.5,
	CompositeStrength: 1.0,
	CombustRetro:      1.0,
	HousePlacement:    1.25,
	AspectsReceived:   1.0,
	NakshatraLord:     0.75,
	Association:       1.0,
}

// Breakdown holds the nine factor scores, unweighted.
type Breakdown struct {
	NaturalNature     float64
	FunctionalNature  float64
	Dignity           float64
	CompositeStrength float64
	CombustRetro      float64
	HousePlacement    float64
	AspectsReceived   float64
	NakshatraLord     float64
	Association       float64
}

// FactorNames lists the factors in Breakdown order.
var FactorNames = [9]string{
	"NaturalNature", "FunctionalNature", "Dignity",
	"CompositeStrength", "CombustRetro", "HousePlacement",
	"AspectsReceived", "NakshatraLord", "Association",
}

// Values returns the factor scores in [FactorNames] order.
func (b Breakdown) Values() [9]float64 {
	return b.values()
}

func (b Breakdown) values() [9]float64 {
	return [9]float64{
		b.NaturalNature, b.FunctionalNature, b.Dignity,
		b.CompositeStrength, b.CombustRetro, b.HousePlacement,
		b.AspectsReceived, b.NakshatraLord, b.Association,
	}
}

// Weighted returns the weighted sum of b under w.
func (b Breakdown) Weighted(w Breakdown) float64 {
	bv, wv := b.values(), w.values()
	var total float64
	for i := range bv {
		total += bv[i] * wv[i]
	}
	return total
}

// Band is the interpretation of a total.
type Band string

const (
	HighlyBeneficial  Band = "Highly Beneficial"
	Beneficial        Band = "Beneficial"
	Mixed             Band = "Mixed"
	Challenging       Band = "Challenging"
	HighlyChallenging Band = "Highly Challenging"
	InsufficientData  Band = "Insufficient Data"
)

// BandOf interprets total.
func BandOf(total float64) Band {
	switch {
	case math.IsNaN(total):
		return InsufficientData
	case total >= 8:
		return HighlyBeneficial
	case total >= 3:
		return Beneficial
	case total > -3:
		return Mixed
	case total > -8:
		return Challenging
	default:
		return HighlyChallenging
	}
}

// Score is the UPBS result for one planet. Total is NaN when any factor
// lacked data.
type Score struct {
	Breakdown Breakdown
	Total     float64
	Band      Band
}

// Compute scores f.
func Compute(f Factors) Score {
	b := Breakdown{
		NaturalNature:     NaturalNature(f),
		FunctionalNature:  FunctionalNature(f),
		Dignity:           Dignity(f),
		CompositeStrength: CompositeStrength(f),
		CombustRetro:      CombustRetro(f),
		HousePlacement:    HousePlacement(f),
		AspectsReceived:   AspectsReceived(f),
		NakshatraLord:     NakshatraLord(f),
		Association:       Association(f),
	}
	total := b.Weighted(Weights)
	return Score{Breakdown: b, Total: total, Band: BandOf(total)}
}
