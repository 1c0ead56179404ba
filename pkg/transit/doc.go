// Package transit locates the instants at which a body's zodiacal
// classification changes.
//
// [Refine] is a bounded bisection over a coarse window already known to
// contain one change. [Scanner] walks a time range in fixed steps over an
// [ephemeris.Provider], detects steps where the classification differs and
// refines each to an [Event].
//
//	s := transit.NewScanner(provider, logger)
//	events, err := s.Changes(ctx, graha.Moon, transit.Nakshatra, from, to)
package transit
