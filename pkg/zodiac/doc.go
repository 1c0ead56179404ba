// Package zodiac maps sidereal longitudes onto the Vedic zodiac.
//
// # Overview
//
// The ecliptic is divided two ways at once:
//
//   - 12 Rashis (signs) of 30° each, each ruled by one of the seven
//     classical planets
//   - 27 Nakshatras (lunar mansions) of 13°20′ each, ruled in Vimshottari
//     order starting with Ketu at Ashwini, and each split into 4 padas
//     of 3°20′ with a traditional naming syllable
//
// [Locate] performs both mappings and returns a [Position]. A NaN input yields
// the [Unknown] position rather than a panic, so reports can render
// "data unavailable".
//
// # Angles
//
// [Normalize] reduces any finite angle into [0,360) and is used by every
// other package before classifying a longitude. [Sidereal] applies an
// ayanamsa correction to a tropical longitude.
//
// # Tables
//
// All tables are immutable package-level data keyed by index; nothing is
// recomputed per call.
package zodiac
