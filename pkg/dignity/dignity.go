package dignity

import (
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Dignity is a planet's strength of placement by sign.
type Dignity int

const (
	Unknown Dignity = iota
	Exalted
	Moolatrikona
	OwnSign
	Friend
	Neutral
	Enemy
	Debilitated
)

var dignityNames = [...]string{
	Unknown:      "Unknown",
	Exalted:      "Exalted",
	Moolatrikona: "Moolatrikona",
	OwnSign:      "Own Sign",
	Friend:       "Friend",
	Neutral:      "Neutral",
	Enemy:        "Enemy",
	Debilitated:  "Debilitated",
}

// String returns the dignity name.
func (d Dignity) String() string {
	if d < Unknown || d > Debilitated {
		return dignityNames[Unknown]
	}
	return dignityNames[d]
}

// MarshalText encodes the dignity by name.
func (d Dignity) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

var exaltation = map[graha.Planet]int{
	graha.Sun:     0,  // Aries
	graha.Moon:    1,  // Taurus
	graha.Mars:    9,  // Capricorn
	graha.Mercury: 5,  // Virgo
	graha.Jupiter: 3,  // Cancer
	graha.Venus:   11, // Pisces
	graha.Saturn:  6,  // Libra
	graha.Rahu:    1,  // Taurus
	graha.Ketu:    7,  // Scorpio
}

var debilitation = map[graha.Planet]int{
	graha.Sun:     6,
	graha.Moon:    7,
	graha.Mars:    3,
	graha.Mercury: 11,
	graha.Jupiter: 9,
	graha.Venus:   5,
	graha.Saturn:  0,
	graha.Rahu:    7,
	graha.Ketu:    1,
}

var moolatrikona = map[graha.Planet]int{
	graha.Sun:     4,  // Leo
	graha.Moon:    1,  // Taurus
	graha.Mars:    0,  // Aries
	graha.Mercury: 5,  // Virgo
	graha.Jupiter: 8,  // Sagittarius
	graha.Venus:   6,  // Libra
	graha.Saturn:  10, // Aquarius
}

// ownSigns lists every sign a planet rules, including node co-lordship.
var ownSigns = map[graha.Planet][]int{
	graha.Sun:     {4},
	graha.Moon:    {3},
	graha.Mars:    {0, 7},
	graha.Mercury: {2, 5},
	graha.Jupiter: {8, 11},
	graha.Venus:   {1, 6},
	graha.Saturn:  {9, 10},
	graha.Rahu:    {10},
	graha.Ketu:    {7},
}

// Relation is a natural friendship relation.
type Relation int

const (
	RelNeutral Relation = iota
	RelFriend
	RelEnemy
)

// friendship[a][b] is a's natural attitude towards b. Absent entries are
// neutral.
var friendship = map[graha.Planet]map[graha.Planet]Relation{
	graha.Sun: {
		graha.Moon: RelFriend, graha.Mars: RelFriend, graha.Jupiter: RelFriend,
		graha.Venus: RelEnemy, graha.Saturn: RelEnemy,
	},
	graha.Moon: {
		graha.Sun: RelFriend, graha.Mercury: RelFriend,
	},
	graha.Mars: {
		graha.Sun: RelFriend, graha.Moon: RelFriend, graha.Jupiter: RelFriend,
		graha.Mercury: RelEnemy,
	},
	graha.Mercury: {
		graha.Sun: RelFriend, graha.Venus: RelFriend,
		graha.Moon: RelEnemy,
	},
	graha.Jupiter: {
		graha.Sun: RelFriend, graha.Moon: RelFriend, graha.Mars: RelFriend,
		graha.Mercury: RelEnemy, graha.Venus: RelEnemy,
	},
	graha.Venus: {
		graha.Mercury: RelFriend, graha.Saturn: RelFriend,
		graha.Sun: RelEnemy, graha.Moon: RelEnemy,
	},
	graha.Saturn: {
		graha.Mercury: RelFriend, graha.Venus: RelFriend,
		graha.Sun: RelEnemy, graha.Moon: RelEnemy, graha.Mars: RelEnemy,
	},
	graha.Rahu: {
		graha.Mercury: RelFriend, graha.Venus: RelFriend, graha.Saturn: RelFriend,
		graha.Sun: RelEnemy, graha.Moon: RelEnemy, graha.Mars: RelEnemy,
	},
	graha.Ketu: {
		graha.Mars: RelFriend, graha.Jupiter: RelFriend,
		graha.Sun: RelEnemy, graha.Moon: RelEnemy,
	},
}

// NaturalRelation returns a's natural attitude towards b.
func NaturalRelation(a, b graha.Planet) Relation {
	return friendship[a][b]
}

// OwnSigns returns the signs p rules. The returned slice must not be
// modified.
func OwnSigns(p graha.Planet) []int { return ownSigns[p] }

// ExaltationSign returns p's exaltation sign index.
func ExaltationSign(p graha.Planet) (int, bool) {
	s, ok := exaltation[p]
	return s, ok
}

// DebilitationSign returns p's debilitation sign index.
func DebilitationSign(p graha.Planet) (int, bool) {
	s, ok := debilitation[p]
	return s, ok
}

// Of returns p's dignity in the sign at rashi (0-11). An out-of-range sign
// or invalid planet yields Unknown.
func Of(p graha.Planet, rashi int) Dignity {
	if !p.Valid() || rashi < 0 || rashi > 11 {
		return Unknown
	}
	if s, ok := exaltation[p]; ok && s == rashi {
		return Exalted
	}
	if s, ok := debilitation[p]; ok && s == rashi {
		return Debilitated
	}
	if s, ok := moolatrikona[p]; ok && s == rashi {
		return Moolatrikona
	}
	for _, s := range ownSigns[p] {
		if s == rashi {
			return OwnSign
		}
	}

	lord := zodiac.Rashis[rashi].Lord
	switch NaturalRelation(p, lord) {
	case RelFriend:
		return Friend
	case RelEnemy:
		return Enemy
	default:
		return Neutral
	}
}
