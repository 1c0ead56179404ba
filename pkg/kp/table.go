package kp

import (
	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// Entry is one (lord, span) pair of a subdivision.
type Entry struct {
	Lord graha.Planet
	Span float64 // degrees
}

// SubLordTable holds the nine sub-lord entries of every nakshatra.
// It is built once and treated as read-only.
var SubLordTable = buildSubLordTable()

func buildSubLordTable() [27][9]Entry {
	var table [27][9]Entry
	for nak := range table {
		lord, _ := graha.NakshatraLord(nak).Planet()
		copy(table[nak][:], Subdivide(lord, zodiac.NakshatraSpan))
	}
	return table
}

// Subdivide splits total into nine spans proportional to Vimshottari years,
// starting the cycle at start. It returns nil if start is not a Vimshottari
// lord.
func Subdivide(start graha.Planet, total float64) []Entry {
	lords := graha.NextLords(start, len(graha.Vimshottari))
	if lords == nil {
		return nil
	}
	out := make([]Entry, len(lords))
	for i, l := range lords {
		share, _ := graha.Share(l)
		out[i] = Entry{Lord: l, Span: share * total}
	}
	return out
}
