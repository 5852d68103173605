package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
	"github.com/plotplan/plotplan/pkg/render"
	"github.com/plotplan/plotplan/pkg/render/canvas/styles"
)

// Options configures diagram generation.
type Options struct {
	// Detailed includes room dimensions in node labels.
	Detailed bool
}

// ToDOT converts a plan snapshot to Graphviz DOT format. Rooms are grouped
// into one cluster per compass direction; an edge links each room to its
// attached washroom. The resulting DOT string can be rendered with
// [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(s plan.State, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph plan {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for _, dir := range catalog.Directions() {
		rooms := roomsIn(s, dir)
		if len(rooms) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\n  subgraph \"cluster_%s\" {\n", dir)
		fmt.Fprintf(&buf, "    label=%q;\n", strings.ToUpper(string(dir)))
		buf.WriteString("    style=dashed;\n")
		buf.WriteString("    color=grey;\n")
		for _, r := range rooms {
			fmt.Fprintf(&buf, "    %q [label=%q, fillcolor=%q];\n",
				r.ID, fmtLabel(r, opts.Detailed), styles.ColorFor(r.Type))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, r := range s.Rooms {
		if !r.IsWashroom() {
			continue
		}
		parent := strings.TrimSuffix(r.ID, plan.WashroomSuffix)
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", parent, r.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func roomsIn(s plan.State, dir catalog.Direction) []plan.Room {
	var out []plan.Room
	for _, r := range s.Rooms {
		if r.Direction == dir {
			out = append(out, r)
		}
	}
	return out
}

func fmtLabel(r plan.Room, detailed bool) string {
	if !detailed {
		return r.Label()
	}
	return fmt.Sprintf("%s\n%g x %g", r.Label(), r.Size.Length, r.Size.Width)
}

// RenderSVG renders a DOT graph to SVG using Graphviz. The result is ready
// for display or conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's point-based svg element so the
// origin is zero and width/height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
