package kp

import (
	"math"

	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// epsilon admits the exact upper boundary of the final entry, which float
// accumulation can push a hair past the nakshatra end.
const epsilon = 1e-9

// Span is a resolved sub-lord or sub-sub-lord.
type Span struct {
	Lord graha.Lord `json:"lord"`

	// Start and End are offsets in degrees from the start of the nakshatra.
	Start float64 `json:"start_in_nakshatra"`
	End   float64 `json:"end_in_nakshatra"`

	// Nakshatra is the index of the containing nakshatra, or -1.
	Nakshatra int `json:"nakshatra_index"`
}

// Width returns End-Start.
func (s Span) Width() float64 { return s.End - s.Start }

// AbsStart returns the span's start as an ecliptic longitude.
func (s Span) AbsStart() float64 {
	if s.Nakshatra < 0 {
		return math.NaN()
	}
	return float64(s.Nakshatra)*zodiac.NakshatraSpan + s.Start
}

// AbsEnd returns the span's end as an ecliptic longitude.
func (s Span) AbsEnd() float64 {
	if s.Nakshatra < 0 {
		return math.NaN()
	}
	return float64(s.Nakshatra)*zodiac.NakshatraSpan + s.End
}

func unresolved(l graha.Lord, nak int) Span {
	return Span{Lord: l, Start: math.NaN(), End: math.NaN(), Nakshatra: nak}
}

// ResolveSubLord finds the sub-lord span that contains lon.
func ResolveSubLord(lon float64) Span {
	lon = zodiac.Normalize(lon)
	if math.IsNaN(lon) {
		return unresolved(graha.Missing("longitude not finite"), -1)
	}
	nak := zodiac.NakshatraIndex(lon)
	return locate(SubLordTable[nak][:], zodiac.OffsetInNakshatra(lon), 0, nak)
}

// ResolveSubSubLord finds the sub-sub-lord span that contains lon. The
// sub-lord's span is treated as a nakshatra of its own and subdivided with
// the cycle starting at the sub-lord.
func ResolveSubSubLord(lon float64) Span {
	sub := ResolveSubLord(lon)
	lord, ok := sub.Lord.Planet()
	if !ok {
		return sub
	}
	if sub.Width() <= 0 {
		return unresolved(graha.Failed("zero-length sub-lord span"), sub.Nakshatra)
	}
	entries := Subdivide(lord, sub.Width())
	if entries == nil {
		return unresolved(graha.Failed("sub-lord "+lord.String()+" not in sequence"), sub.Nakshatra)
	}
	return locate(entries, zodiac.OffsetInNakshatra(lon), sub.Start, sub.Nakshatra)
}

// locate walks entries from base, accumulating starts, and returns the entry
// whose [start,end) contains offset.
func locate(entries []Entry, offset, base float64, nak int) Span {
	if len(entries) == 0 {
		return unresolved(graha.Failed("no sub-lord table for nakshatra"), nak)
	}
	start := base
	for i, e := range entries {
		if e.Span <= 0 {
			return unresolved(graha.Failed("zero-length span for "+e.Lord.String()), nak)
		}
		end := start + e.Span
		last := i == len(entries)-1
		if offset >= start && (offset < end || (last && offset <= end+epsilon)) {
			return Span{Lord: graha.Resolved(e.Lord), Start: start, End: end, Nakshatra: nak}
		}
		start = end
	}
	return unresolved(graha.Failed("offset outside subdivision"), nak)
}
