package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/chargesim/internal/engine"
	"github.com/san-kum/chargesim/internal/storage"
)

func sampleRecording() *engine.Recording {
	return &engine.Recording{
		Times: []float64{0.005, 0.01, 0.015, 0.02},
		Positions: [][]engine.Vec3{
			{{X: 0, Y: 0}, {X: 4, Y: 4}},
			{{X: 1, Y: 0.5}, {X: 3, Y: 3.5}},
			{{X: 2, Y: 1}, {X: 2, Y: 3}},
			{{X: 3, Y: 1.5}, {X: 1, Y: 2.5}},
		},
		Active: [][]bool{
			{true, true},
			{true, true},
			{true, true},
			{true, false},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := storage.RunMetadata{ID: "dipole_1", Preset: "dipole", Steps: 4}
	if err := WriteJSON(&buf, meta, sampleRecording()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded RunData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Meta.ID != "dipole_1" {
		t.Errorf("meta id = %q", decoded.Meta.ID)
	}
	if len(decoded.Times) != 4 || len(decoded.Positions) != 4 {
		t.Errorf("trajectory length %d/%d, want 4", len(decoded.Times), len(decoded.Positions))
	}
	if decoded.Positions[1][0] != (engine.Vec3{X: 1, Y: 0.5}) {
		t.Errorf("positions not preserved: %v", decoded.Positions[1][0])
	}
	if decoded.Active[3][1] {
		t.Error("active flags not preserved")
	}
}

func TestTrailsToSVGStructure(t *testing.T) {
	svg := TrailsToSVG(sampleRecording(), 640, 480)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML prologue")
	}
	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480"`) {
		t.Error("missing svg element with dimensions")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
	if !strings.Contains(svg, "<path ") {
		t.Error("no trail paths emitted")
	}
	if !strings.Contains(svg, "stroke-opacity") {
		t.Error("trail fade missing")
	}

	// Only particle 0 is active at the final step, so exactly one marker.
	if n := strings.Count(svg, "<circle "); n != 1 {
		t.Errorf("%d final markers, want 1", n)
	}
}

func TestTrailsToSVGTooShort(t *testing.T) {
	rec := &engine.Recording{
		Times:     []float64{0.005},
		Positions: [][]engine.Vec3{{{X: 1}}},
		Active:    [][]bool{{true}},
	}
	if svg := TrailsToSVG(rec, 100, 100); svg != "" {
		t.Errorf("single-step recording should produce no document, got %d bytes", len(svg))
	}
}
