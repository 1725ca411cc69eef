// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drawing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cadolab/oadkit/internal/airframe"
	"github.com/cadolab/oadkit/internal/design"
	"github.com/cadolab/oadkit/internal/model"
	"github.com/cadolab/oadkit/internal/unit"
)

func evalReference(t *testing.T) (*design.Aircraft, *airframe.Airframe) {
	t.Helper()
	ac, err := design.NewAircraft(150., unit.MFromNM(3000.), 0.78)
	if err != nil {
		t.Fatalf("sizing failed: %v", err)
	}
	af, err := airframe.Build(model.DefaultArrangement(), model.DefaultRequirement())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	mzfw := ac.OWE + ac.Payload
	af.Weight = airframe.WeightCG{MTOW: ac.MTOW, MZFW: mzfw, MLW: 1.07 * mzfw, OWE: ac.OWE}
	if err := af.EvalGeometry(); err != nil {
		t.Fatalf("EvalGeometry failed: %v", err)
	}
	if err := af.EvalMass(); err != nil {
		t.Fatalf("EvalMass failed: %v", err)
	}
	return ac, af
}

func TestTopView(t *testing.T) {
	_, af := evalReference(t)

	svg := string(TopView(af, "reference"))
	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("missing svg root element: %q", svg[:40])
	}
	if !strings.Contains(svg, "</svg>") {
		t.Fatal("svg document not closed")
	}
	// Fuselage and nacelles are ellipses, wing and tails polygons.
	if strings.Count(svg, "<ellipse") < 3 {
		t.Fatalf("expected fuselage and nacelle ellipses:\n%s", svg)
	}
	if strings.Count(svg, "<polygon") < 4 {
		t.Fatalf("expected mirrored wing and tail polygons:\n%s", svg)
	}
	if !strings.Contains(svg, "reference") {
		t.Fatal("title missing from the drawing")
	}
}

func TestTopViewQuadri(t *testing.T) {
	_, af := evalReference(t)
	twin := strings.Count(string(TopView(af, "twin")), "<ellipse")

	arr := model.DefaultArrangement()
	arr.NumberOfEngine = "quadri"
	af4, err := airframe.Build(arr, model.DefaultRequirement())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	af4.Weight = af.Weight
	if err := af4.EvalGeometry(); err != nil {
		t.Fatalf("EvalGeometry failed: %v", err)
	}
	if err := af4.EvalMass(); err != nil {
		t.Fatalf("EvalMass failed: %v", err)
	}

	// Two more pods show up at the outboard stations.
	quadri := strings.Count(string(TopView(af4, "quadri")), "<ellipse")
	if quadri != twin+2 {
		t.Fatalf("quadri top view has %d ellipses, twin has %d, want two more", quadri, twin)
	}
}

func TestPayloadRangeDiagram(t *testing.T) {
	ac, _ := evalReference(t)

	svg := string(PayloadRange(ac, "reference"))
	if !strings.Contains(svg, "<polyline") {
		t.Fatal("expected the envelope polyline")
	}
	if !strings.Contains(svg, "payload") || !strings.Contains(svg, "range") {
		t.Fatal("axis labels missing")
	}
}

func TestWriteFile(t *testing.T) {
	ac, _ := evalReference(t)

	path := filepath.Join(t.TempDir(), "envelope.svg")
	if err := WriteFile(path, PayloadRange(ac, "reference")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.HasPrefix(string(raw), "<svg") {
		t.Fatal("written file is not an SVG document")
	}
}
