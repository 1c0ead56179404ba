// Package pkg holds the kundali libraries.
//
// # Layout
//
// The calculation packages have no I/O and no shared state. Each one takes
// longitudes and returns plain values:
//
//   - [graha]: planets, the Vimshottari sequence and the Lord sentinel type
//   - [zodiac]: rashi, nakshatra, pada and navamsa placement
//   - [kp]: the 249-way KP sub-lord table
//   - [dignity]: dignity, combustion and the three avastha schemes
//   - [house]: cusp mapping, house rulership and the badhak house
//   - [aspect]: graha drishti and conjunctions
//   - [significator]: KP four-level significators
//   - [dasha]: the Vimshottari period tree
//   - [strength]: UPBS scoring
//   - [transit]: boundary refinement and change scans over an ephemeris
//
// [chart] assembles them into a Report. Around it sit [ephemeris] (Julian
// Day and the position provider port), [io] (TOML chart and ephemeris
// files, JSON reports), [cache], [errors], [observability] and
// [render/aspectgraph].
//
// # Data flow
//
//	chart.toml ──io.ImportChart──▶ chart.Input
//	                                   │
//	                      chart.Runner (cache) ──▶ chart.Calculate
//	                                   │
//	                               chart.Report ──▶ CLI tables / JSON / DOT
//
// [graha]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/graha
// [zodiac]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/zodiac
// [kp]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/kp
// [dignity]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/dignity
// [house]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/house
// [aspect]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/aspect
// [significator]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/significator
// [dasha]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/dasha
// [strength]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/strength
// [transit]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/transit
// [chart]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/chart
// [ephemeris]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/ephemeris
// [io]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/observability
// [render/aspectgraph]: https://pkg.go.dev/github.com/matzehuels/kundali/pkg/render/aspectgraph
package pkg
