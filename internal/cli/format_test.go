package cli

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/dasha"
	"github.com/matzehuels/kundali/pkg/graha"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    chart.Value
		prec int
		want string
	}{
		{12.25, 2, "12.25"},
		{-3, 1, "-3.0"},
		{chart.Value(math.NaN()), 2, noValue},
		{chart.Value(math.Inf(1)), 2, noValue},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v, tt.prec); got != tt.want {
			t.Errorf("formatValue(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestFormatHouses(t *testing.T) {
	if got := formatHouses([]int{1, 4, 10}); got != "1 4 10" {
		t.Errorf("formatHouses = %q, want %q", got, "1 4 10")
	}
	if got := formatHouses(nil); got != noValue {
		t.Errorf("formatHouses(nil) = %q, want %q", got, noValue)
	}
}

func TestPlanetList(t *testing.T) {
	if got := planetList([]graha.Planet{graha.Sun, graha.Ketu}); got != "Sun, Ketu" {
		t.Errorf("planetList = %q, want %q", got, "Sun, Ketu")
	}
	if got := planetList(nil); got != noValue {
		t.Errorf("planetList(nil) = %q, want %q", got, noValue)
	}
}

func TestPlanetFlags(t *testing.T) {
	pr := chart.PlanetReport{Retrograde: true, Vargottama: true}
	if got := planetFlags(pr); got != "RV" {
		t.Errorf("planetFlags = %q, want RV", got)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-01T06:30:00+05:30", time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC), false},
		{"yesterday", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := parseTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPeriodName(t *testing.T) {
	r := dasha.Row{
		Level:     dasha.Pratyantar,
		Lord:      graha.Moon,
		MahaLord:  graha.Resolved(graha.Venus),
		AntarLord: graha.Resolved(graha.Sun),
	}
	if got := periodName(r); got != "Venus / Sun / Moon" {
		t.Errorf("periodName = %q, want %q", got, "Venus / Sun / Moon")
	}
	maha := dasha.Row{Level: dasha.Maha, Lord: graha.Ketu, MahaLord: graha.Missing(""), AntarLord: graha.Missing("")}
	if got := periodName(maha); got != "Ketu" {
		t.Errorf("periodName(maha) = %q, want Ketu", got)
	}
}

func TestStatsLine(t *testing.T) {
	if got := statsLine(9, 0, true); got == "" {
		t.Error("statsLine returned empty string")
	}
}
