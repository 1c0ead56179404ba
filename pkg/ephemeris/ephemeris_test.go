package ephemeris

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/graha"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		when time.Time
		jd   float64
	}{
		{time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), J2000},
		{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), UnixEpochJD},
		{time.Date(1990, 5, 17, 6, 0, 0, 0, time.UTC), 2448028.75},
	}
	for _, tt := range tests {
		if got := JulianDay(tt.when); math.Abs(got-tt.jd) > 1e-9 {
			t.Errorf("JulianDay(%v) = %v, want %v", tt.when, got, tt.jd)
		}
		back, err := TimeFromJulianDay(tt.jd)
		if err != nil {
			t.Fatalf("TimeFromJulianDay(%v): %v", tt.jd, err)
		}
		if d := back.Sub(tt.when); d > time.Millisecond || d < -time.Millisecond {
			t.Errorf("TimeFromJulianDay(%v) = %v, want %v", tt.jd, back, tt.when)
		}
	}
}

func TestTimeFromJulianDayInvalid(t *testing.T) {
	for _, jd := range []float64{math.NaN(), math.Inf(1), 0, -5, 1e9} {
		_, err := TimeFromJulianDay(jd)
		if !errors.Is(err, errors.ErrCodeInvalidJulianDay) {
			t.Errorf("TimeFromJulianDay(%v) error = %v, want INVALID_JULIAN_DAY", jd, err)
		}
		if !errors.IsFatal(err) {
			t.Errorf("TimeFromJulianDay(%v) error should be fatal", jd)
		}
	}
}

var t0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable("test", map[graha.Planet][]Sample{
		graha.Moon: {
			{Time: t0.Add(24 * time.Hour), Position: Position{Longitude: 5}},
			{Time: t0, Position: Position{Longitude: 353}},
			{Time: t0.Add(48 * time.Hour), Position: Position{Longitude: 17}},
		},
		graha.Rahu: {
			{Time: t0, Position: Position{Longitude: 10, Speed: -0.05}},
			{Time: t0.Add(48 * time.Hour), Position: Position{Longitude: 9.9, Speed: -0.05}},
		},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestTableInterpolatesAcrossZero(t *testing.T) {
	tbl := newTestTable(t)
	tests := []struct {
		at   time.Time
		want float64
	}{
		{t0, 353},
		{t0.Add(6 * time.Hour), 356},
		{t0.Add(18 * time.Hour), 2},
		{t0.Add(24 * time.Hour), 5},
		{t0.Add(36 * time.Hour), 11},
	}
	for _, tt := range tests {
		pos, err := tbl.Position(graha.Moon, tt.at)
		if err != nil {
			t.Fatalf("Position(%v): %v", tt.at, err)
		}
		if math.Abs(pos.Longitude-tt.want) > 1e-9 {
			t.Errorf("Position(%v).Longitude = %v, want %v", tt.at, pos.Longitude, tt.want)
		}
	}
}

func TestTableDerivesSpeed(t *testing.T) {
	tbl := newTestTable(t)
	pos, err := tbl.Position(graha.Moon, t0.Add(24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	// (17 - 353 unwrapped) over two days.
	if math.Abs(pos.Speed-12) > 1e-9 {
		t.Errorf("derived speed = %v, want 12", pos.Speed)
	}
	rahu, _ := tbl.Position(graha.Rahu, t0)
	if rahu.Speed != -0.05 {
		t.Errorf("tabulated speed overwritten: %v", rahu.Speed)
	}
}

func TestTableDerivesKetu(t *testing.T) {
	tbl := newTestTable(t)
	if !tbl.Available(graha.Ketu) {
		t.Fatal("Ketu not derived from Rahu")
	}
	pos, err := tbl.Position(graha.Ketu, t0)
	if err != nil {
		t.Fatal(err)
	}
	if pos.Longitude != 190 {
		t.Errorf("Ketu longitude = %v, want 190", pos.Longitude)
	}
}

func TestTableErrors(t *testing.T) {
	tbl := newTestTable(t)
	if _, err := tbl.Position(graha.Sun, t0); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing body error = %v, want NOT_FOUND", err)
	}
	if _, err := tbl.Position(graha.Moon, t0.Add(-time.Hour)); !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("before range error = %v, want OUT_OF_RANGE", err)
	}
	_, err := NewTable("bad", map[graha.Planet][]Sample{
		graha.Sun: {{Time: t0, Position: Position{Longitude: math.NaN()}}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidLongitude) {
		t.Errorf("NaN sample error = %v, want INVALID_LONGITUDE", err)
	}
}

func TestTableRange(t *testing.T) {
	tbl := newTestTable(t)
	from, to := tbl.Range()
	if !from.Equal(t0) || !to.Equal(t0.Add(48*time.Hour)) {
		t.Errorf("Range = %v..%v", from, to)
	}
	bodies := tbl.Bodies()
	want := []graha.Planet{graha.Moon, graha.Rahu, graha.Ketu}
	if len(bodies) != len(want) {
		t.Fatalf("Bodies = %v, want %v", bodies, want)
	}
	for i := range want {
		if bodies[i] != want[i] {
			t.Errorf("Bodies[%d] = %v, want %v", i, bodies[i], want[i])
		}
	}
}

func TestShifted(t *testing.T) {
	tbl := newTestTable(t)
	s := NewShifted(tbl, Fixed(24))
	pos, err := s.Position(graha.Rahu, t0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos.Longitude-346) > 1e-9 {
		t.Errorf("shifted longitude = %v, want 346", pos.Longitude)
	}
	if got := Lahiri(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)); math.Abs(got-23.85305) > 1e-9 {
		t.Errorf("Lahiri(J2000) = %v", got)
	}
}

func TestParseFrame(t *testing.T) {
	if f, ok := ParseFrame("tropical"); !ok || f != Tropical {
		t.Errorf("ParseFrame(tropical) = %v, %v", f, ok)
	}
	if _, ok := ParseFrame("galactic"); ok {
		t.Error("ParseFrame(galactic) ok = true")
	}
}
