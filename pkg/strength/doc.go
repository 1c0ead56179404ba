// Package strength computes the UPBS score: a nine-factor weighted measure
// of how beneficial a planet is in a chart.
//
// Each factor is a small pure function of [Factors]:
//
//	NaturalNature      natural benefic/malefic polarity
//	FunctionalNature   sum of outcomes for every house the planet rules
//	Dignity            sign dignity
//	CompositeStrength  Shadbala band plus avastha and navamsa bonuses
//	CombustRetro       combustion and retrograde adjustment
//	HousePlacement     trikona/kendra/dusthana banding
//	AspectsReceived    signed by each aspecting planet
//	NakshatraLord      polarity of the nakshatra lord
//	Association        conjunctions and hemming
//
// The total is the weighted sum over [Weights]. Any factor lacking its
// inputs is NaN, which makes the total NaN; callers must read that as
// insufficient data, never as zero.
package strength
