// Package canvas renders a plan as a top-down scaled canvas.
//
// # Overview
//
// [Build] converts a plan snapshot into a [Canvas]: a pixel-space frame
// with a margin band for the four compass labels and one rectangle per
// room, scaled by a fixed pixels-per-unit ratio. The canvas is a pure data
// structure; the sinks turn it into output formats:
//
//   - [RenderSVG]: native SVG (primary format)
//   - [RenderPNG], [RenderPDF]: via rsvg-convert
//   - [RenderJSON]: layout exchange format
//
// # Orientation
//
// North is at the top of the canvas and east at the left, matching the
// placement rule's coordinate system where the origin corner is northeast.
//
// # Example
//
//	c := canvas.Build(p.State())
//	svg := canvas.RenderSVG(c, canvas.WithStyle(styles.Blueprint{}))
//	png, err := canvas.RenderPNG(c)
package canvas
