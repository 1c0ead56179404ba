package transit

import (
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/kp"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Classification is the zodiacal division a scan tracks.
type Classification int

const (
	Nakshatra Classification = iota
	Rashi
	SubLord
)

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case Nakshatra:
		return "nakshatra"
	case Rashi:
		return "rashi"
	case SubLord:
		return "sublord"
	default:
		return "unknown"
	}
}

// ParseClassification parses a classification name.
func ParseClassification(s string) (Classification, bool) {
	switch s {
	case "nakshatra", "nak":
		return Nakshatra, true
	case "rashi", "sign":
		return Rashi, true
	case "sublord", "sub":
		return SubLord, true
	}
	return Nakshatra, false
}

// Classify returns the class index of lon, or -1 for a non-finite
// longitude. Sub-lord classes are numbered nakshatra*9 + position, so the
// same lord in adjacent nakshatras is still a change.
func (c Classification) Classify(lon float64) int {
	switch c {
	case Rashi:
		return zodiac.RashiIndex(lon)
	case SubLord:
		span := kp.ResolveSubLord(lon)
		sub, ok := span.Lord.Planet()
		if !ok {
			return -1
		}
		nakLord, ok := graha.NakshatraLord(span.Nakshatra).Planet()
		if !ok {
			return -1
		}
		pos := (graha.SequenceIndex(sub) - graha.SequenceIndex(nakLord) + 9) % 9
		return span.Nakshatra*9 + pos
	default:
		return zodiac.NakshatraIndex(lon)
	}
}

// Label describes class index i for display.
func (c Classification) Label(i int) string {
	if i < 0 {
		return zodiac.UnknownName
	}
	switch c {
	case Rashi:
		return zodiac.RashiName(i)
	case SubLord:
		nak := i / 9
		lord := graha.Vimshottari[(graha.SequenceIndex(mustLord(nak))+i%9)%9]
		return zodiac.NakshatraName(nak) + "/" + lord.String()
	default:
		return zodiac.NakshatraName(i)
	}
}

func mustLord(nak int) graha.Planet {
	p, _ := graha.NakshatraLord(nak).Planet()
	return p
}
