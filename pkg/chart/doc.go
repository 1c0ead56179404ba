// Package chart assembles a full natal report from caller-supplied body
// positions and house cusps.
//
// # Overview
//
// [Calculate] runs every engine in order and collects the results into a
// [Report]:
//
//  1. Convert tropical input to sidereal and derive Ketu from Rahu
//  2. Locate each body (rashi, nakshatra, pada, sub-lord, sub-sub-lord)
//  3. Classify dignity, combustion, retrogression and avasthas
//  4. Map houses, aspects and conjunctions
//  5. Compute KP significators and UPBS strength
//  6. Generate the Vimshottari dasha tree from the Moon
//
// Only an invalid Julian Day fails the calculation. Every other gap (a NaN
// longitude, malformed cusps, a missing Moon) is logged as a warning,
// recorded in [Report.Warnings] and rendered as a sentinel.
//
// # Caching
//
// A [Runner] wraps Calculate with a [cache.Cache]. Reports are pure
// functions of their input, so they are keyed by the input hash:
//
//	runner := chart.NewRunner(c, nil, logger)
//	report, hit, err := runner.CalculateWithCacheInfo(ctx, in, chart.Options{})
//
// [cache.Cache]: github.com/matzehuels/kundali/pkg/cache.Cache
package chart
