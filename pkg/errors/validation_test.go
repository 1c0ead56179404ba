package errors

import (
	"math"
	"testing"
)

func TestValidateLongitude(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 123.4, false},
		{"negative", -10, false},
		{"beyond circle", 725, false},

		{"nan", math.NaN(), true},
		{"+inf", math.Inf(1), true},
		{"-inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLongitude(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLongitude(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLongitude) {
				t.Errorf("ValidateLongitude(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLongitude)
			}
		})
	}
}

func TestValidateJulianDay(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"J2000", 2451545.0, false},
		{"unix epoch", 2440587.5, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
		{"far future", 9e6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJulianDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJulianDay(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !IsFatal(err) {
				t.Errorf("ValidateJulianDay(%v) should be fatal", tt.input)
			}
		})
	}
}

func TestValidateCusps(t *testing.T) {
	good := []float64{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}
	if err := ValidateCusps(good); err != nil {
		t.Errorf("ValidateCusps(good) error = %v", err)
	}

	bad := append([]float64(nil), good...)
	bad[4] = math.NaN()
	if err := ValidateCusps(bad); !Is(err, ErrCodeInvalidCusps) {
		t.Errorf("ValidateCusps(NaN) code = %v, want %v", GetCode(err), ErrCodeInvalidCusps)
	}

	if err := ValidateCusps(good[:11]); err == nil {
		t.Error("ValidateCusps(11 cusps) should fail")
	}
}

func TestValidateBodyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"planet", "Jupiter", false},
		{"lower", "rahu", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", string(make([]byte, 40)), true},
		{"control char", "Sun\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBodyName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBodyName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "charts/natal.toml", false},
		{"absolute", "/tmp/natal.toml", false},

		{"empty", "", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
