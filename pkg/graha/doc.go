// Package graha defines the nine grahas (planets) used throughout the engine
// and the Vimshottari lord sequence that drives every proportional
// subdivision: sub-lords, sub-sub-lords and the dasha hierarchy.
//
// # Planets
//
// [Planet] is a small enum in Vimshottari-independent order (Sun first).
// Rahu and Ketu are the lunar nodes; [Planet.IsNode] identifies them because
// many rules treat nodes specially (no ownership, no aspects, always
// retrograde, never combust).
//
// # Lord Sequence
//
// The 9-lord Vimshottari cycle is:
//
//	Ketu 7, Venus 20, Sun 6, Moon 10, Mars 7, Rahu 18, Jupiter 16, Saturn 19, Mercury 17
//
// The years sum to 120. [NextLords] returns a cyclic slice of the sequence
// starting at any lord and is the single place where modulo indexing over the
// cycle happens.
//
// # Lords As Tagged Values
//
// A table lookup can succeed, come back empty (data not applicable), or fail
// (the table has a gap). [Lord] carries that three-way distinction without
// string comparison:
//
//	l := graha.Resolved(graha.Jupiter)
//	if p, ok := l.Planet(); ok {
//	    // use p
//	}
//
// [Lord.String] renders the legacy report forms: the planet name, "N/A" or
// "Error: <reason>".
package graha
