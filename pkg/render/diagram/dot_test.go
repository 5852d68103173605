package diagram

import (
	"strings"
	"testing"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
)

func testState() plan.State {
	return plan.State{
		Plot: catalog.Size{Length: 50, Width: 30},
		Rooms: []plan.Room{
			{
				ID: "1", Type: catalog.TypeMasterBedroom,
				Size: catalog.Size{Length: 16, Width: 12}, Direction: catalog.Southwest,
				Preferences: catalog.Preferences{AttachedWashroom: true, Inside: true},
			},
			{
				ID: "1-washroom", Type: catalog.TypeBathroom,
				Size: catalog.Size{Length: 8, Width: 6}, Direction: catalog.Northwest,
				Preferences: catalog.DefaultPreferences(),
			},
			{
				ID: "2", Type: catalog.TypeKitchen,
				Size: catalog.Size{Length: 12, Width: 10}, Direction: catalog.Southeast,
				Preferences: catalog.DefaultPreferences(),
			},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testState(), Options{})

	if !strings.HasPrefix(dot, "digraph plan {") {
		t.Fatalf("unexpected prefix: %.40s", dot)
	}
	for _, want := range []string{
		`subgraph "cluster_southwest"`,
		`subgraph "cluster_northwest"`,
		`subgraph "cluster_southeast"`,
		`"1" [label="1 Master Bedroom"`,
		`"2" [label="2 Kitchen"`,
		`"1" -> "1-washroom" [style=dashed];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Empty directions are skipped entirely.
	if strings.Contains(dot, "cluster_north\"") {
		t.Error("emitted cluster for empty direction")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testState(), Options{Detailed: true})
	if !strings.Contains(dot, "16 x 12") {
		t.Errorf("detailed label missing dimensions:\n%s", dot)
	}
}

func TestToDOTEmptyPlan(t *testing.T) {
	dot := ToDOT(plan.State{Plot: catalog.Size{Length: 50, Width: 30}}, Options{})
	if !strings.Contains(dot, "digraph plan {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty plan produced invalid DOT:\n%s", dot)
	}
	if strings.Contains(dot, "subgraph") {
		t.Error("empty plan emitted clusters")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(testState(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, "<svg") {
		t.Fatalf("not an SVG: %.80s", out)
	}
	if !strings.Contains(out, `viewBox="0 0 `) {
		t.Errorf("viewBox not normalized: %.200s", out)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.50 50.25" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.50 50.25"`) {
		t.Errorf("viewBox not rewritten: %s", out)
	}
	if strings.Contains(out, "pt") {
		t.Errorf("point units survived: %s", out)
	}

	// Non-SVG input passes through untouched.
	if got := string(normalizeViewBox([]byte("plain"))); got != "plain" {
		t.Errorf("pass-through broken: %q", got)
	}
}
