package tpg

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParsePressure(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1.0E-3", 0.001},
		{"9.9E9", 9.9e9},
		// 5.1 * 10^2 is not exactly representable, so compare within a
		// relative tolerance rather than demanding 510 bit for bit.
		{"5.1E+2", 510},
		{"0.0E0", 0},
	}
	for _, tt := range tests {
		got, err := ParsePressure([]byte(tt.raw))
		if err != nil {
			t.Errorf("ParsePressure(%q) error: %v", tt.raw, err)
			continue
		}
		if !closeTo(got, tt.want) {
			t.Errorf("ParsePressure(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// closeTo compares pressures within a relative tolerance of 1e-12, loose
// enough for the mantissa*10^exponent rounding, far tighter than the
// controller's three significant digits.
func closeTo(got, want float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want) <= 1e-12*math.Abs(want)
}

func TestParsePressureMalformed(t *testing.T) {
	for _, raw := range []string{"abcE1", "1.0E", "1.0", "1.0E-3E4", ""} {
		_, err := ParsePressure([]byte(raw))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParsePressure(%q) error = %v, want *ParseError", raw, err)
		}
	}
}

func TestParseMeasurement(t *testing.T) {
	status, pressure, err := ParseMeasurement([]byte("0,1.0E-3"))
	if err != nil {
		t.Fatalf("ParseMeasurement() error: %v", err)
	}
	if status != StatusOK {
		t.Errorf("status = %v, want %v", status, StatusOK)
	}
	if pressure != 0.001 {
		t.Errorf("pressure = %v, want 0.001", pressure)
	}
}

func TestParseMeasurementErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown status", "9,1.0E-3"},
		{"too few fields", "1.0E-3"},
		{"too many fields", "0,1.0E-3,2.0E-3"},
		{"bad status", "x,1.0E-3"},
		{"bad pressure", "0,abcE1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseMeasurement([]byte(tt.raw))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseMeasurement(%q) error = %v, want *ParseError", tt.raw, err)
			}
		})
	}
}

func TestParseDualMeasurement(t *testing.T) {
	status, p1, p2, err := ParseDualMeasurement([]byte("4,1.0E-3,9.9E9"))
	if err != nil {
		t.Fatalf("ParseDualMeasurement() error: %v", err)
	}
	if status != StatusSensorOff {
		t.Errorf("status = %v, want %v", status, StatusSensorOff)
	}
	if p1 != 0.001 || p2 != 9.9e9 {
		t.Errorf("pressures = %v, %v, want 0.001, 9.9e9", p1, p2)
	}

	if _, _, _, err := ParseDualMeasurement([]byte("0,1.0E-3")); err == nil {
		t.Error("ParseDualMeasurement() with 2 fields: expected error")
	}
}

func TestParseGaugeIDs(t *testing.T) {
	id1, id2, err := ParseGaugeIDs([]byte("TPR,noSEn"))
	if err != nil {
		t.Fatalf("ParseGaugeIDs() error: %v", err)
	}
	if id1 != GaugePirani || id2 != GaugeNoSensor {
		t.Errorf("ids = %v, %v, want %v, %v", id1, id2, GaugePirani, GaugeNoSensor)
	}

	for _, raw := range []string{"XXX,TPR", "TPR,XXX", "TPR", "TPR,PKR,CMR"} {
		if _, _, err := ParseGaugeIDs([]byte(raw)); err == nil {
			t.Errorf("ParseGaugeIDs(%q): expected error", raw)
		}
	}
}

func TestParseErrorStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ErrorStatus
	}{
		{"0000", ErrNone},
		{"0100", ErrNoHardware},
		{"0010", ErrInadmissible},
		{"0001", ErrSyntax},
	}
	for _, tt := range tests {
		got, err := ParseErrorStatus([]byte(tt.raw))
		if err != nil {
			t.Errorf("ParseErrorStatus(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseErrorStatus(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	if _, err := ParseErrorStatus([]byte("1111")); err == nil {
		t.Error("ParseErrorStatus(1111): expected error")
	}
}

func TestParseResetCauses(t *testing.T) {
	causes, err := ParseResetCauses([]byte("0,1,9,12"))
	if err != nil {
		t.Fatalf("ParseResetCauses() error: %v", err)
	}
	want := []ResetCause{ResetNoError, ResetWatchdog, ResetGauge1, ResetGauge2Identity}
	if !reflect.DeepEqual(causes, want) {
		t.Errorf("ParseResetCauses() = %v, want %v", causes, want)
	}

	// Code 8 is unassigned in the controller's cause list.
	if _, err := ParseResetCauses([]byte("0,8")); err == nil {
		t.Error("ParseResetCauses(0,8): expected error")
	}
}

func TestParseResetCausesIdempotent(t *testing.T) {
	raw := []byte("0,4,7,11")
	first, err := ParseResetCauses(raw)
	if err != nil {
		t.Fatalf("ParseResetCauses() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := ParseResetCauses(raw)
		if err != nil {
			t.Fatalf("ParseResetCauses() error on repeat: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ParseResetCauses() not stable: %v vs %v", first, again)
		}
	}
}
