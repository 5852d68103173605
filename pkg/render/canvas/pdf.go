package canvas

import "github.com/plotplan/plotplan/pkg/render"

// RenderPDF renders the canvas to PDF via the SVG path.
func RenderPDF(c Canvas, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(c, opts...))
}
