// Package dignity classifies a planet's dignity and avastha (situational
// state) from its sign placement, its distance from the Sun and its motion.
//
// # Dignity
//
// [Of] checks, in order: exaltation, debilitation, moolatrikona and own
// sign. If none applies, the natural friendship of the planet towards the
// occupied sign's lord decides between Friend, Neutral and Enemy. The nodes
// co-own Aquarius (Rahu) and Scorpio (Ketu).
//
// # Avasthas
//
//   - Balaadi: five 6° age stages through a sign, reversed in even signs
//   - Jagradadi: awake, dreaming or sleeping, derived from dignity
//   - Deeptaadi: brightness derived from dignity, forced to Vikala when combust
//
// # Combustion and Retrograde
//
// A planet is combust when it is within its orb of the Sun. The Sun and the
// nodes are never combust. Retrograde motion is a negative longitudinal
// speed; the nodes are always retrograde and [NodeSpeed] forces their speed
// negative so downstream code sees a consistent sign.
package dignity
