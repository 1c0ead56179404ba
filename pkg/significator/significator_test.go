package significator

import (
	"slices"
	"testing"

	"github.com/matzehuels/kundali/pkg/graha"
	"github.com/matzehuels/kundali/pkg/house"
)

// sampleChart uses an Aries ascendant with equal houses, so house n holds
// sign n-1.
func sampleChart() Input {
	return Input{
		Longitudes: map[graha.Planet]float64{
			graha.Sun:     10,  // Aries, 1
			graha.Moon:    40,  // Taurus, 2
			graha.Mars:    160, // Virgo, 6
			graha.Mercury: 20,  // Aries, 1
			graha.Jupiter: 100, // Cancer, 4
			graha.Venus:   255, // Sagittarius, 9
			graha.Saturn:  300, // Aquarius, 11
			graha.Rahu:    250, // Sagittarius, 9 (Mula)
			graha.Ketu:    70,  // Gemini, 3
		},
		Cusps: house.EqualCusps(0),
	}
}

func TestCalculatePlanet(t *testing.T) {
	rec := Calculate(sampleChart())[graha.Jupiter]

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"occupied", rec.Occupied, []int{4}},
		{"owned", rec.Owned, []int{9, 12}},
		{"sign lord owned", rec.SignLordOwned, []int{}},
		{"aspecting owned", rec.AspectingOwned, []int{}},
		{"all", rec.All, []int{4, 9, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCalculateNode(t *testing.T) {
	rec := Calculate(sampleChart())[graha.Rahu]

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"occupied", rec.Occupied, []int{9}},
		{"nodes own nothing", rec.Owned, []int{}},
		// Sagittarius is ruled by Jupiter: owns 9, 12 and sits in 4.
		{"sign lord owned", rec.SignLordOwned, []int{4, 9, 12}},
		// Venus (conjunct) gives 2, 7, 9; Mars (4th-sign aspect from Virgo) gives 1, 6, 8.
		{"aspecting owned", rec.AspectingOwned, []int{1, 2, 6, 7, 8, 9}},
		{"all", rec.All, []int{1, 2, 4, 6, 7, 8, 9, 12}},
		// Mula is ruled by Ketu.
		{"nakshatra lord all", rec.NakshatraLordAll, []int{1, 2, 3, 6, 7, 9}},
		// 10° into Mula falls in the Saturn sub.
		{"sub lord all", rec.SubLordAll, []int{10, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if !rec.NakshatraLord.Is(graha.Ketu) {
		t.Errorf("NakshatraLord = %v, want Ketu", rec.NakshatraLord)
	}
	if !rec.SubLord.Is(graha.Saturn) {
		t.Errorf("SubLord = %v, want Saturn", rec.SubLord)
	}
}

func TestMissingLordGivesEmptySets(t *testing.T) {
	in := sampleChart()
	delete(in.Longitudes, graha.Ketu)

	rec := Calculate(in)[graha.Rahu]
	if rec.NakshatraLordAll == nil || len(rec.NakshatraLordAll) != 0 {
		t.Errorf("NakshatraLordAll = %v, want empty non-nil", rec.NakshatraLordAll)
	}
}

func TestAllIsUnionOfParts(t *testing.T) {
	for p, rec := range Calculate(sampleChart()) {
		union := slices.Concat(rec.Occupied, rec.Owned, rec.SignLordOwned, rec.AspectingOwned)
		for _, h := range union {
			if !slices.Contains(rec.All, h) {
				t.Errorf("%s: house %d missing from All %v", p, h, rec.All)
			}
		}
		if !slices.IsSorted(rec.All) {
			t.Errorf("%s: All not sorted: %v", p, rec.All)
		}
	}
}
