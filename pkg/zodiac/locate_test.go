package zodiac

import (
	"math"
	"testing"

	"github.com/matzehuels/kundali/pkg/graha"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := Normalize(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Normalize(NaN) = %v, want NaN", got)
	}
	if got := Normalize(math.Inf(1)); !math.IsNaN(got) {
		t.Errorf("Normalize(+Inf) = %v, want NaN", got)
	}
	if got := Normalize(-1e-18); got < 0 || got >= 360 {
		t.Errorf("Normalize(-1e-18) = %v, outside [0,360)", got)
	}
}

func TestLocateMoonInTaurus(t *testing.T) {
	p := Locate(35.5)

	if p.RashiIndex != 1 || p.RashiName != "Taurus" {
		t.Errorf("rashi = %d %s, want 1 Taurus", p.RashiIndex, p.RashiName)
	}
	if !p.RashiLord.Is(graha.Venus) {
		t.Errorf("rashi lord = %v, want Venus", p.RashiLord)
	}
	if p.NakshatraIndex != 2 || p.NakshatraName != "Krittika" {
		t.Errorf("nakshatra = %d %s, want 2 Krittika", p.NakshatraIndex, p.NakshatraName)
	}
	if !p.NakshatraLord.Is(graha.Sun) {
		t.Errorf("nakshatra lord = %v, want Sun", p.NakshatraLord)
	}
	if p.Pada != 3 || p.PadaAlphabet != "U" {
		t.Errorf("pada = %d %s, want 3 U", p.Pada, p.PadaAlphabet)
	}
}

func TestLocateBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		lon       float64
		rashi     int
		nakshatra int
		pada      int
	}{
		{"zero", 0, 0, 0, 1},
		{"end of ashwini", NakshatraSpan - 1e-9, 0, 0, 4},
		{"start of bharani", NakshatraSpan, 0, 1, 1},
		{"just past sign boundary", 31, 1, 2, 2},
		{"last degree", 359.999999, 11, 26, 4},
		{"wrapped negative", -0.5, 11, 26, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Locate(tt.lon)
			if p.RashiIndex != tt.rashi {
				t.Errorf("RashiIndex = %d, want %d", p.RashiIndex, tt.rashi)
			}
			if p.NakshatraIndex != tt.nakshatra {
				t.Errorf("NakshatraIndex = %d, want %d", p.NakshatraIndex, tt.nakshatra)
			}
			if p.Pada != tt.pada {
				t.Errorf("Pada = %d, want %d", p.Pada, tt.pada)
			}
		})
	}
}

func TestLocateNaN(t *testing.T) {
	p := Locate(math.NaN())
	if p.Known() {
		t.Fatal("Locate(NaN) should be unknown")
	}
	if p.RashiName != "Unknown" || p.NakshatraIndex != -1 {
		t.Errorf("Locate(NaN) = %+v", p)
	}
	if p.NakshatraLord.String() != "N/A" {
		t.Errorf("NakshatraLord = %q, want N/A", p.NakshatraLord.String())
	}
}

func TestEveryPadaHasSyllable(t *testing.T) {
	for lon := 0.0; lon < 360; lon += PadaSpan / 2 {
		p := Locate(lon)
		if p.PadaAlphabet == "" {
			t.Errorf("Locate(%v) has no pada syllable", lon)
		}
	}
}

func TestNavamsa(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want int
	}{
		{"aries first", 1, 0},
		{"taurus first is capricorn", 31, 9},
		{"gemini first is libra", 61, 6},
		{"cancer first is cancer", 91, 3},
		{"aries last is sagittarius", 29, 8},
		{"pisces last is pisces", 359, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Navamsa(tt.lon); got != tt.want {
				t.Errorf("Navamsa(%v) = %d, want %d", tt.lon, got, tt.want)
			}
		})
	}
	if Navamsa(math.NaN()) != -1 {
		t.Error("Navamsa(NaN) should be -1")
	}
}

func TestIsVargottama(t *testing.T) {
	if !IsVargottama(1) {
		t.Error("1° Aries should be vargottama")
	}
	if IsVargottama(5) {
		t.Error("5° Aries should not be vargottama")
	}
	// Fixed signs are vargottama in their middle navamsa.
	if !IsVargottama(30 + 14) {
		t.Error("14° Taurus should be vargottama")
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 20, 10},
		{355, 5, 10},
		{0, 180, 180},
		{90, 300, 150},
	}
	for _, tt := range tests {
		if got := Separation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSignDistance(t *testing.T) {
	if SignDistance(0, 6) != 6 || SignDistance(10, 1) != 3 || SignDistance(4, 4) != 0 {
		t.Error("SignDistance mismatch")
	}
}

func TestSidereal(t *testing.T) {
	if got := Sidereal(10, 24); math.Abs(got-346) > 1e-9 {
		t.Errorf("Sidereal(10, 24) = %v, want 346", got)
	}
}

func TestFormatDMS(t *testing.T) {
	if got := FormatDMS(13.5); got != "13°30′00″" {
		t.Errorf("FormatDMS(13.5) = %q", got)
	}
}
