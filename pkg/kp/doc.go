// Package kp resolves Krishnamurti Paddhati sub-lords and sub-sub-lords.
//
// # Overview
//
// Each 13°20′ nakshatra is split into nine unequal spans, one per
// Vimshottari lord, each proportional to that lord's years out of 120. The
// cycle inside a nakshatra starts at the nakshatra's own lord, so Ashwini
// (Ketu) runs Ketu, Venus, Sun, ... while Bharani (Venus) runs Venus, Sun,
// Moon, ...
//
// The same proportional rule applied to a sub-lord span yields nine
// sub-sub-lord spans, starting the cycle at the sub-lord itself.
//
// # Table
//
// [SubLordTable] is computed once at package initialisation and never
// mutated. For every nakshatra the nine spans sum to 360/27 degrees.
//
// # Failures
//
// Resolution never panics. If a longitude is not finite, the returned span
// carries a missing lord; if the table has a gap (a lord outside the
// sequence or a zero-width span), the span carries a [graha.Failed] lord.
package kp
