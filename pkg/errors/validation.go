package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateLongitude checks that lon is a finite number of degrees.
// Any finite value is accepted; callers normalize into [0,360) afterwards.
func ValidateLongitude(lon float64) error {
	if math.IsNaN(lon) {
		return New(ErrCodeInvalidLongitude, "longitude is NaN")
	}
	if math.IsInf(lon, 0) {
		return New(ErrCodeInvalidLongitude, "longitude is infinite")
	}
	return nil
}

// ValidateJulianDay checks that jd is a usable Julian Day number.
//
// Validation rules:
//   - Must be finite
//   - Must be positive (JD 0 is 4713 BC, far outside any ephemeris)
//   - Must fall inside the span representable by time.Time arithmetic
//     used by the dasha generator (years 1-9999)
func ValidateJulianDay(jd float64) error {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return New(ErrCodeInvalidJulianDay, "julian day is not finite: %v", jd)
	}

	const (
		minJD = 1721425.5 // 0001-01-01
		maxJD = 5373484.5 // 9999-12-31
	)
	if jd < minJD || jd > maxJD {
		return New(ErrCodeInvalidJulianDay, "julian day %.5f outside supported range [%.1f, %.1f]", jd, minJD, maxJD)
	}
	return nil
}

// ValidateCusps checks that every cusp degree is finite.
func ValidateCusps(cusps []float64) error {
	if len(cusps) != 12 {
		return New(ErrCodeInvalidCusps, "expected 12 cusps, got %d", len(cusps))
	}
	for i, c := range cusps {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return New(ErrCodeInvalidCusps, "cusp %d is not finite: %v", i+1, c)
		}
	}
	return nil
}

// ValidateBodyName validates a body name supplied on the command line or in a
// chart file before it is parsed into a planet.
func ValidateBodyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPlanet, "body name cannot be empty")
	}
	if len(name) > 32 {
		return New(ErrCodeInvalidPlanet, "body name too long (max 32 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlanet, "body name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a chart or ephemeris file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
