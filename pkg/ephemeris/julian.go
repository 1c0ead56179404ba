package ephemeris

import (
	"math"
	"time"

	"github.com/matzehuels/kundali/pkg/errors"
)

// UnixEpochJD is the Julian Day of 1970-01-01T00:00:00Z.
const UnixEpochJD = 2440587.5

// J2000 is the Julian Day of 2000-01-01T12:00:00Z.
const J2000 = 2451545.0

const nanosPerDay = 86400 * float64(time.Second)

// JulianDay returns the Julian Day (UT) of t.
func JulianDay(t time.Time) float64 {
	return UnixEpochJD + float64(t.UnixNano())/nanosPerDay
}

// TimeFromJulianDay converts a Julian Day (UT) to a UTC time. An unusable
// Julian Day is the one unrecoverable input in a chart calculation, so this
// returns an error coded [errors.ErrCodeInvalidJulianDay].
func TimeFromJulianDay(jd float64) (time.Time, error) {
	if err := errors.ValidateJulianDay(jd); err != nil {
		return time.Time{}, err
	}
	days := jd - UnixEpochJD
	sec, frac := math.Modf(days * 86400)
	nsec := math.Round(frac * float64(time.Second))
	return time.Unix(int64(sec), int64(nsec)).UTC(), nil
}
