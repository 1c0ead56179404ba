package house

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/zodiac"
)

// placidusLike has unequal houses and a cusp sequence that wraps through 0°.
var placidusLike = Cusps{
	123.4, 148.2, 176.9, 210.5, 244.1, 276.8,
	303.4, 328.2, 356.9, 30.5, 64.1, 96.8,
}

func TestHouseOfTotalAndExclusive(t *testing.T) {
	for _, cusps := range []Cusps{placidusLike, EqualCusps(0), EqualCusps(345.5)} {
		counts := make(map[int]int)
		for i := 0; i < 3600; i++ {
			lon := float64(i) / 10
			matches := 0
			for h := 1; h <= 12; h++ {
				start, end := cusps[h-1], cusps[h%12]
				in := false
				if start < end {
					in = lon >= start && lon < end
				} else {
					in = lon >= start || lon < end
				}
				if in {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("lon %v belongs to %d houses", lon, matches)
			}
			h, ok := HouseOf(lon, cusps)
			if !ok || h < 1 || h > 12 {
				t.Fatalf("HouseOf(%v) = %d, %v", lon, h, ok)
			}
			counts[h]++
		}
		if len(counts) != 12 {
			t.Errorf("only %d houses hit, want 12", len(counts))
		}
	}
}

func TestHouseOf(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want int
	}{
		{"on first cusp", 123.4, 1},
		{"inside first", 130, 1},
		{"just before second", 148.19, 1},
		{"ninth wraps through zero", 359, 9},
		{"ninth after zero", 10, 9},
		{"tenth", 30.5, 10},
		{"twelfth", 100, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HouseOf(tt.lon, placidusLike)
			if !ok || got != tt.want {
				t.Errorf("HouseOf(%v) = %d, %v; want %d", tt.lon, got, ok, tt.want)
			}
		})
	}
}

func TestHouseOfMalformed(t *testing.T) {
	if _, ok := HouseOf(math.NaN(), placidusLike); ok {
		t.Error("NaN longitude should not map to a house")
	}
	bad := placidusLike
	bad[3] = math.Inf(1)
	if _, ok := HouseOf(10, bad); ok {
		t.Error("non-finite cusp should not map to a house")
	}
	var degenerate Cusps // all zero
	if _, ok := HouseOf(10, degenerate); ok {
		t.Error("degenerate cusps should not map to a house")
	}
}

func TestHousesRuledByRoundTrip(t *testing.T) {
	for _, cusps := range []Cusps{placidusLike, EqualCusps(7), WholeSignCusps(200)} {
		for _, p := range graha.All {
			for _, h := range HousesRuledBy(p, cusps) {
				pos := zodiac.Locate(cusps[h-1])
				if !pos.RashiLord.Is(p) {
					t.Errorf("house %d cusp lord %v, want %s", h, pos.RashiLord, p)
				}
			}
		}
	}
}

func TestHousesRuledBy(t *testing.T) {
	c := EqualCusps(0) // Aries ascendant
	if got := HousesRuledBy(graha.Mars, c); !slices.Equal(got, []int{1, 8}) {
		t.Errorf("Mars rules %v, want [1 8]", got)
	}
	if got := HousesRuledBy(graha.Sun, c); !slices.Equal(got, []int{5}) {
		t.Errorf("Sun rules %v, want [5]", got)
	}
	if got := HousesRuledBy(graha.Rahu, c); len(got) != 0 {
		t.Errorf("Rahu rules %v, want none", got)
	}
}

func TestOccupants(t *testing.T) {
	occ := Occupants(map[graha.Planet]float64{
		graha.Sun:  5,
		graha.Moon: 10,
		graha.Mars: 95,
	}, EqualCusps(0))
	if !slices.Equal(occ[1], []graha.Planet{graha.Sun, graha.Moon}) {
		t.Errorf("house 1 = %v", occ[1])
	}
	if !slices.Equal(occ[4], []graha.Planet{graha.Mars}) {
		t.Errorf("house 4 = %v", occ[4])
	}
}

func TestRelative(t *testing.T) {
	if Relative(1, 7) != 7 || Relative(10, 4) != 1 || Relative(12, 2) != 1 || Relative(3, 12) != 2 {
		t.Error("Relative mismatch")
	}
}

func TestBadhak(t *testing.T) {
	tests := []struct {
		name string
		asc  float64
		want int
		lord graha.Planet
	}{
		{"leo is fixed", 123.4, 9, graha.Mars},     // 9th from Leo is Aries
		{"aries is movable", 10, 11, graha.Saturn}, // 11th from Aries is Aquarius
		{"gemini is dual", 75, 7, graha.Jupiter},   // 7th from Gemini is Sagittarius
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BadhakWith(tt.asc, []int{0, 3, 6, 9}, zodiac.FixedSigns)
			if !ok || got != tt.want {
				t.Errorf("Badhak(%v) = %d, want %d", tt.asc, got, tt.want)
			}
			if l := BadhakLord(tt.asc); !l.Is(tt.lord) {
				t.Errorf("BadhakLord(%v) = %v, want %s", tt.asc, l, tt.lord)
			}
		})
	}
	if _, ok := Badhak(math.NaN()); ok {
		t.Error("Badhak(NaN) should fail")
	}
}
