// Package dasha generates the Vimshottari dasha tree: nested planetary
// periods derived from the Moon's position at birth.
//
// # Maha-Dashas
//
// The Moon's nakshatra lord opens the sequence. The fraction of that
// nakshatra the Moon has already traversed is the fraction of the opening
// Maha-Dasha already elapsed at birth; the remainder is the balance:
//
//	balance = (1 - elapsed) × years(lord)
//
// Maha-Dashas then follow the 9-lord cycle until the requested span
// (120 years by default) past birth is covered.
//
// # Sub-Periods
//
// Each period of level n is split into nine periods of level n+1, cycling
// from the parent's own lord, each lasting years(child)/120 of the parent.
// Children are laid end to end with each start equal to the previous end and
// the final end pinned to the parent's end, so siblings tile their parent
// exactly with no drift.
//
// The opening Maha-Dasha is anchored at its theoretical start, before birth,
// which keeps the tiling law true at every level. [Flatten] with
// FromBirth drops or clips the periods that precede birth for display.
package dasha
