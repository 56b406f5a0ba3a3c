package geometry

import (
	"math"
	"testing"
)

func TestTypeCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"ABC_TYPE1", "TYPE1"},
		{"A_B_C_Z22", "Z22"},
		{"PLAIN", "PLAIN"},
		{"TRAIL_ T7 ", "T7"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TypeCode(c.name); got != c.want {
			t.Errorf("TypeCode(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestCrossSection(t *testing.T) {
	lookup := Lookup{
		"TYPE1": {"F1": 50.0, "F2": 62.5},
	}

	if got := CrossSection("ABC_TYPE1", "F1", lookup); got != 50.0 {
		t.Errorf("CrossSection = %v, want 50.0", got)
	}
	if got := CrossSection("ABC_TYPE1", " F2 ", lookup); got != 62.5 {
		t.Errorf("CrossSection with padded frame ID = %v, want 62.5", got)
	}

	// Misses degrade to zero, never error.
	if got := CrossSection("ABC_TYPE9", "F1", lookup); got != 0 {
		t.Errorf("unknown type code: got %v, want 0", got)
	}
	if got := CrossSection("ABC_TYPE1", "F9", lookup); got != 0 {
		t.Errorf("unknown frame ID: got %v, want 0", got)
	}
	if got := CrossSection("", "F1", lookup); got != 0 {
		t.Errorf("empty name: got %v, want 0", got)
	}
	if got := CrossSection("ABC_TYPE1", "F1", nil); got != 0 {
		t.Errorf("nil lookup: got %v, want 0", got)
	}
}

func TestDuckFeetStripArea(t *testing.T) {
	if got := DuckFeetStripArea(100, 40, 10); got != 600 {
		t.Errorf("strip area = %v, want 600", got)
	}
	// Pitch narrower than the stringer clamps to zero.
	if got := DuckFeetStripArea(30, 40, 10); got != 0 {
		t.Errorf("narrow pitch strip area = %v, want 0", got)
	}
}

func TestDuckFeetCurveAreaConstant(t *testing.T) {
	want := (4 - math.Pi) * 200
	if math.Abs(DuckFeetCurveAreaMM2-want) > 1e-12 {
		t.Errorf("curve area = %v, want %v", DuckFeetCurveAreaMM2, want)
	}
}

func TestDuckFeetMassKg(t *testing.T) {
	// Scenario: strip 600 mm² + curve relief, 2 mm sheet, 2.7 g/cm³.
	area := 600 + DuckFeetCurveAreaMM2
	got := DuckFeetMassKg(area, 2, 2.7)
	want := area * 2 * 2.7 / 1e6
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("duck feet mass = %v, want %v", got, want)
	}
	if math.Abs(got-0.004167) > 1e-5 {
		t.Errorf("duck feet mass = %v, want ≈0.004167", got)
	}
}

func TestStringerMassG(t *testing.T) {
	// 50 mm² section over a 1000 mm frame pitch at 2.7 g/cm³:
	// (50/100) cm² × (1000/10) cm × 2.7 = 135 g.
	if got := StringerMassG(50, 1000, 2.7); got != 135.0 {
		t.Errorf("stringer mass = %v, want 135.0", got)
	}
	if got := StringerMassG(0, 1000, 2.7); got != 0 {
		t.Errorf("zero cross-section mass = %v, want 0", got)
	}
}
