package stringer

import (
	"encoding/json"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{" 2.5 ", 2.5},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"+Inf", 0},
	}
	for _, c := range cases {
		if got := ParseNumber(c.in).Float(); got != c.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNumberUnmarshalJSON(t *testing.T) {
	var rec struct {
		Pitch Number `json:"stringer_pitch_mm"`
	}

	cases := []struct {
		in   string
		want float64
	}{
		{`{"stringer_pitch_mm": 100}`, 100},
		{`{"stringer_pitch_mm": "42.5"}`, 42.5},
		{`{"stringer_pitch_mm": "garbage"}`, 0},
		{`{"stringer_pitch_mm": null}`, 0},
		{`{"stringer_pitch_mm": [1]}`, 0},
	}
	for _, c := range cases {
		rec.Pitch = -1
		if err := json.Unmarshal([]byte(c.in), &rec); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if got := rec.Pitch.Float(); got != c.want {
			t.Errorf("unmarshal %s: pitch = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFrameIDUnmarshalJSON(t *testing.T) {
	var rec struct {
		FrameID FrameID `json:"frame_id"`
	}

	cases := []struct {
		in   string
		want string
	}{
		{`{"frame_id": "F1"}`, "F1"},
		{`{"frame_id": " F2 "}`, "F2"},
		{`{"frame_id": 17}`, "17"},
		{`{"frame_id": 17.5}`, "17.5"},
		{`{"frame_id": null}`, ""},
	}
	for _, c := range cases {
		rec.FrameID = "stale"
		if err := json.Unmarshal([]byte(c.in), &rec); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if got := rec.FrameID.String(); got != c.want {
			t.Errorf("unmarshal %s: frame ID = %q, want %q", c.in, got, c.want)
		}
	}
}
