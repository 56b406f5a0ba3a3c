package stringer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fubueng/gostringer/internal/geometry"
	"github.com/fubueng/gostringer/internal/props"
)

func lookupFixture() geometry.Lookup {
	return geometry.Lookup{
		"TYPE1": {"F1": 50.0},
	}
}

func TestDeriveCrossSectionAndWeight(t *testing.T) {
	rows := []Record{
		{Name: "ABC_TYPE1", FrameID: "F1", ZoneName: "Z1", FrameLengthMM: 1000},
	}
	p := props.Properties{StringerDensityGCm3: 2.7}

	out := Derive(rows, p, lookupFixture())

	if out[0].CrossSectionMM2 != 50.0 {
		t.Errorf("cross section = %v, want 50.0", out[0].CrossSectionMM2)
	}
	// (50/100) cm² × (1000/10) cm × 2.7 g/cm³
	if out[0].WeightG != 135.0 {
		t.Errorf("weight = %v, want 135.0", out[0].WeightG)
	}
	if out[0].DensityGCm3 != 2.7 {
		t.Errorf("density = %v, want 2.7", out[0].DensityGCm3)
	}
	if out[0].DuckFeetApplied {
		t.Error("duck feet applied without selection")
	}
}

func TestDeriveDuckFeet(t *testing.T) {
	rows := []Record{
		{Name: "ABC_TYPE1", FrameID: "F1", ZoneName: "Z1", PitchMM: 100},
	}
	p := props.Properties{
		StringerThicknessMM: 2,
		StringerDensityGCm3: 2.7,
		DuckFeetSelection:   props.DuckFeetYes,
		StringerWidthMM:     40,
		StripWidthMM:        10,
	}

	out := Derive(rows, p, lookupFixture())

	// strip = max(100-40,0)*10 = 600; curve ≈ 171.68; total ≈ 771.68 mm²
	// mass = 771.68 × 2 × 2.7 / 1e6 ≈ 0.004167 kg
	if !out[0].DuckFeetApplied {
		t.Fatal("duck feet not applied")
	}
	if math.Abs(out[0].DuckFeetKg-0.004167) > 1e-5 {
		t.Errorf("duck feet = %v, want ≈0.004167", out[0].DuckFeetKg)
	}
}

func TestDeriveDuckFeetOffAlwaysZero(t *testing.T) {
	rows := []Record{
		{Name: "A_TYPE1", FrameID: "F1", PitchMM: 500, DuckFeetKg: 99},
		{Name: "B_TYPE1", FrameID: "F1", PitchMM: 0},
	}
	p := props.Properties{
		StringerThicknessMM: 5,
		StringerDensityGCm3: 8,
		DuckFeetSelection:   props.DuckFeetNo,
		StringerWidthMM:     40,
		StripWidthMM:        10,
	}

	for _, r := range Derive(rows, p, lookupFixture()) {
		if r.DuckFeetKg != 0 {
			t.Errorf("duck feet with selection No = %v, want 0", r.DuckFeetKg)
		}
	}
}

func TestDeriveLookupMissGivesZeroWeight(t *testing.T) {
	rows := []Record{
		{Name: "ABC_UNKNOWN", FrameID: "F1", FrameLengthMM: 1000},
		{Name: "ABC_TYPE1", FrameID: "F99", FrameLengthMM: 1000},
		{Name: "", FrameID: "F1", FrameLengthMM: 1000},
	}
	p := props.Properties{StringerDensityGCm3: 2.7}

	for i, r := range Derive(rows, p, lookupFixture()) {
		if r.CrossSectionMM2 != 0 {
			t.Errorf("row %d: cross section = %v, want 0", i, r.CrossSectionMM2)
		}
		if r.WeightG != 0 {
			t.Errorf("row %d: weight = %v, want 0", i, r.WeightG)
		}
	}
}

func TestDeriveIsPureAndIdempotent(t *testing.T) {
	rows := []Record{
		{Name: "ABC_TYPE1", FrameID: "F1", ZoneName: "Z1", PitchMM: 100, FrameLengthMM: 1000},
		{Name: "bad row"},
	}
	p := props.Properties{
		StringerThicknessMM: 2,
		StringerDensityGCm3: 2.7,
		DuckFeetSelection:   props.DuckFeetYes,
		StringerWidthMM:     40,
		StripWidthMM:        10,
	}

	snapshot := make([]Record, len(rows))
	copy(snapshot, rows)

	first := Derive(rows, p, lookupFixture())
	second := Derive(rows, p, lookupFixture())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("derive not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot, rows); diff != "" {
		t.Errorf("derive mutated its input (-before +after):\n%s", diff)
	}
}

func TestRefreshKeepsCrossSection(t *testing.T) {
	rows := []Record{
		{Name: "ABC_TYPE1", FrameID: "F1", ZoneName: "Z1", FrameLengthMM: 1000, CrossSectionMM2: 50},
	}
	p := props.Properties{StringerDensityGCm3: 3.0}

	out := Refresh(rows, p)

	if out[0].CrossSectionMM2 != 50 {
		t.Errorf("refresh discarded cross section: %v", out[0].CrossSectionMM2)
	}
	if out[0].WeightG != (50.0/100)*(1000.0/10)*3.0 {
		t.Errorf("refresh weight = %v", out[0].WeightG)
	}
}

func TestTotalPitchMM(t *testing.T) {
	rows := []Record{
		{PitchMM: 100},
		{PitchMM: ParseNumber("bad")},
		{PitchMM: 50.5},
	}
	if got := TotalPitchMM(rows); got != 150.5 {
		t.Errorf("total pitch = %v, want 150.5", got)
	}
}
