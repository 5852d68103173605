package canvas

import "github.com/plotplan/plotplan/pkg/render"

// DefaultPNGScale is the resolution multiplier for PNG export.
const DefaultPNGScale = 2.0

// RenderPNG renders the canvas to PNG via the SVG path.
func RenderPNG(c Canvas, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(RenderSVG(c, opts...), DefaultPNGScale)
}
