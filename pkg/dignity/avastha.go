package dignity

import (
	"math"

	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Balaadi is the age-based avastha.
type Balaadi int

const (
	BalaadiUnknown Balaadi = iota
	Bala                   // infant
	Kumara                 // youth
	Yuva                   // adult
	Vriddha                // old
	Mrita                  // dead
)

var balaadiNames = [...]string{"Unknown", "Bala", "Kumara", "Yuva", "Vriddha", "Mrita"}

func (b Balaadi) String() string {
	if b < BalaadiUnknown || b > Mrita {
		return balaadiNames[0]
	}
	return balaadiNames[b]
}

// MarshalText encodes the avastha by name.
func (b Balaadi) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// BalaadiOf returns the age state for a longitude. Odd signs run
// Bala→Mrita through the sign, even signs run Mrita→Bala.
func BalaadiOf(lon float64) Balaadi {
	lon = zodiac.Normalize(lon)
	if math.IsNaN(lon) {
		return BalaadiUnknown
	}
	stage := int(math.Floor(zodiac.DegreeInSign(lon) / 6))
	if stage > 4 {
		stage = 4
	}
	if !zodiac.Rashis[zodiac.RashiIndex(lon)].Odd() {
		stage = 4 - stage
	}
	return Bala + Balaadi(stage)
}

// Jagradadi is the wakefulness avastha.
type Jagradadi int

const (
	JagradadiUnknown Jagradadi = iota
	Jagrat                     // awake
	Swapna                     // dreaming
	Sushupti                   // sleeping
)

var jagradadiNames = [...]string{"Unknown", "Jagrat", "Swapna", "Sushupti"}

func (j Jagradadi) String() string {
	if j < JagradadiUnknown || j > Sushupti {
		return jagradadiNames[0]
	}
	return jagradadiNames[j]
}

// MarshalText encodes the avastha by name.
func (j Jagradadi) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

// JagradadiOf derives wakefulness from dignity.
func JagradadiOf(d Dignity) Jagradadi {
	switch d {
	case Unknown:
		return JagradadiUnknown
	case OwnSign, Moolatrikona, Exalted:
		return Jagrat
	case Friend:
		return Swapna
	default:
		return Sushupti
	}
}

// Deeptaadi is the brightness avastha.
type Deeptaadi int

const (
	DeeptaadiUnknown Deeptaadi = iota
	Deepta                     // exalted
	Swastha                    // own sign / moolatrikona
	Mudita                     // friend
	Shanta                     // neutral
	Dukhita                    // enemy
	Khala                      // debilitated
	Vikala                     // combust
)

var deeptaadiNames = [...]string{"Unknown", "Deepta", "Swastha", "Mudita", "Shanta", "Dukhita", "Khala", "Vikala"}

func (d Deeptaadi) String() string {
	if d < DeeptaadiUnknown || d > Vikala {
		return deeptaadiNames[0]
	}
	return deeptaadiNames[d]
}

// MarshalText encodes the avastha by name.
func (d Deeptaadi) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// DeeptaadiOf maps dignity to brightness. Combustion overrides everything.
func DeeptaadiOf(d Dignity, combust bool) Deeptaadi {
	if combust {
		return Vikala
	}
	switch d {
	case Exalted:
		return Deepta
	case Moolatrikona, OwnSign:
		return Swastha
	case Friend:
		return Mudita
	case Neutral:
		return Shanta
	case Enemy:
		return Dukhita
	case Debilitated:
		return Khala
	default:
		return DeeptaadiUnknown
	}
}
