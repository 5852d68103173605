// Package render provides visualization rendering for floor plans.
//
// # Overview
//
// This package contains the rendering pipeline that turns a plan into
// visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - The scaled canvas view (in [canvas] subpackage)
//   - Room adjacency diagrams (in [diagram] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both the canvas and the
// diagram renderer go through them.
//
//	svg := canvas.RenderSVG(c, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Canvas View
//
// The [canvas] subpackage renders the plot as a top-down scaled canvas:
// compass labels fixed at the frame edges and one labeled, colored
// rectangle per room. This is the primary floor-plan view.
//
// Key canvas subpackages:
//   - [canvas/styles]: Visual styles (simple, blueprint) and the fixed
//     room-type color table
//
// # Adjacency Diagrams
//
// The [diagram] subpackage renders rooms as Graphviz nodes grouped by
// compass direction, with edges from parent rooms to their attached
// washrooms.
//
//	dot := diagram.ToDOT(state)
//	svg, err := diagram.RenderSVG(dot)
//
// [canvas]: github.com/plotplan/plotplan/pkg/render/canvas
// [canvas/styles]: github.com/plotplan/plotplan/pkg/render/canvas/styles
// [diagram]: github.com/plotplan/plotplan/pkg/render/diagram
package render
