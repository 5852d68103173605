// Package diagram provides a node-and-edge view of a plan using Graphviz.
//
// Where the canvas view draws rooms to scale at their placed positions, the
// diagram view shows the structure of the plan: rooms grouped by compass
// direction, with edges from rooms to their attached washrooms.
//
//	Canvas:  state → canvas.Build() → Canvas → canvas.RenderSVG() → SVG
//	Diagram: state → ToDOT() → DOT → RenderSVG() → SVG
//
// The DOT format serves as the intermediate representation, so a layout can
// be cached and re-rendered without rebuilding the plan.
package diagram
