package aspect

import (
	"slices"
	"testing"

	"github.com/matzehuels/kundali/pkg/graha"
)

func TestDistances(t *testing.T) {
	tests := []struct {
		planet graha.Planet
		want   []int
	}{
		{graha.Sun, []int{6}},
		{graha.Mars, []int{3, 6, 7}},
		{graha.Jupiter, []int{4, 6, 8}},
		{graha.Saturn, []int{2, 6, 9}},
		{graha.Rahu, nil},
		{graha.Ketu, nil},
	}
	for _, tt := range tests {
		if got := Distances(tt.planet); !slices.Equal(got, tt.want) {
			t.Errorf("Distances(%s) = %v, want %v", tt.planet, got, tt.want)
		}
	}
}

func TestAspectedSigns(t *testing.T) {
	// Saturn in Capricorn aspects Pisces (3rd), Cancer (7th), Libra (10th).
	if got := AspectedSigns(graha.Saturn, 9); !slices.Equal(got, []int{3, 6, 11}) {
		t.Errorf("AspectedSigns(Saturn, Capricorn) = %v", got)
	}
	for _, p := range graha.All {
		for s := 0; s < 12; s++ {
			if slices.Contains(AspectedSigns(p, s), s) {
				t.Errorf("%s aspects its own sign %d", p, s)
			}
		}
	}
}

func sampleSigns() map[graha.Planet]int {
	return map[graha.Planet]int{
		graha.Sun:     0, // Aries
		graha.Moon:    6, // Libra
		graha.Mars:    9, // Capricorn
		graha.Mercury: 0, // Aries
		graha.Jupiter: 4, // Leo
		graha.Venus:   1, // Taurus
		graha.Saturn:  3, // Cancer
		graha.Rahu:    8, // Sagittarius
		graha.Ketu:    2, // Gemini
	}
}

func TestCompute(t *testing.T) {
	res := Compute(sampleSigns())

	tests := []struct {
		name string
		got  []graha.Planet
		want []graha.Planet
	}{
		{"sun aspects moon", res.Direct[graha.Sun], []graha.Planet{graha.Moon}},
		{"moon aspects sun and mercury", res.Direct[graha.Moon], []graha.Planet{graha.Sun, graha.Mercury}},
		// Mars in Capricorn: 4th Aries, 7th Cancer, 8th Leo.
		{"mars special aspects", res.Direct[graha.Mars], []graha.Planet{graha.Sun, graha.Mercury, graha.Jupiter, graha.Saturn}},
		// Jupiter in Leo: 5th Sagittarius, 7th Aquarius, 9th Aries.
		{"jupiter aspects", res.Direct[graha.Jupiter], []graha.Planet{graha.Sun, graha.Mercury, graha.Rahu}},
		// Saturn in Cancer: 3rd Virgo, 7th Capricorn, 10th Aries.
		{"saturn aspects", res.Direct[graha.Saturn], []graha.Planet{graha.Sun, graha.Mars, graha.Mercury}},
		{"rahu casts none", res.Direct[graha.Rahu], []graha.Planet{}},
		{"rahu receives jupiter", res.Reverse[graha.Rahu], []graha.Planet{graha.Jupiter}},
		{"sun conjunct mercury", res.Conjunctions[graha.Sun], []graha.Planet{graha.Mercury}},
		{"venus alone", res.Conjunctions[graha.Venus], []graha.Planet{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestAspectSymmetry(t *testing.T) {
	res := Compute(sampleSigns())
	for a, targets := range res.Direct {
		for _, b := range targets {
			if !slices.Contains(res.Reverse[b], a) {
				t.Errorf("%s aspects %s but is missing from %s's reverse aspects", a, b, b)
			}
		}
	}
	for b, sources := range res.Reverse {
		for _, a := range sources {
			if !res.Aspects(a, b) {
				t.Errorf("%s in reverse[%s] but %s does not aspect %s", a, b, a, b)
			}
		}
	}
	for a, others := range res.Conjunctions {
		for _, b := range others {
			if !slices.Contains(res.Conjunctions[b], a) {
				t.Errorf("conjunction %s-%s not symmetric", a, b)
			}
		}
	}
}

func TestComputeSkipsUnknownSign(t *testing.T) {
	signs := sampleSigns()
	signs[graha.Moon] = -1
	res := Compute(signs)
	if _, ok := res.Direct[graha.Moon]; ok {
		t.Error("planet with unknown sign should be omitted")
	}
	if slices.Contains(res.Direct[graha.Sun], graha.Moon) {
		t.Error("planet with unknown sign should not be aspected")
	}
}

func TestInfluencers(t *testing.T) {
	res := Compute(sampleSigns())
	got := res.Influencers(graha.Sun)
	want := []graha.Planet{graha.Moon, graha.Mars, graha.Mercury, graha.Jupiter, graha.Saturn}
	if !slices.Equal(got, want) {
		t.Errorf("Influencers(Sun) = %v, want %v", got, want)
	}
}

func TestFromLongitudes(t *testing.T) {
	res := FromLongitudes(map[graha.Planet]float64{graha.Sun: 15, graha.Moon: 195})
	if !res.Aspects(graha.Sun, graha.Moon) || !res.Aspects(graha.Moon, graha.Sun) {
		t.Error("opposite signs should aspect each other")
	}
}
