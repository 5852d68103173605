package canvas

import (
	"bytes"
	"fmt"

	"github.com/plotplan/plotplan/pkg/render/canvas/styles"
)

const roomInteractionCSS = `
    .room { transition: stroke-width 0.2s ease; }
    .room:hover { stroke-width: 3; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	interactive bool
}

// WithStyle selects the visual style. Defaults to [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithInteraction embeds hover CSS for in-browser viewing. Converted
// formats (PNG, PDF) skip it.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// RenderSVG turns a canvas into an SVG document.
func RenderSVG(c Canvas, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.FrameWidth, c.FrameHeight, c.FrameWidth, c.FrameHeight)

	r.style.RenderDefs(&buf)
	r.style.RenderFrame(&buf, c.Plot)

	for _, rect := range c.Rects {
		r.style.RenderRect(&buf, rect)
	}
	for _, rect := range c.Rects {
		r.style.RenderLabel(&buf, rect)
	}
	for _, m := range c.Compass {
		r.style.RenderCompass(&buf, m)
	}

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", roomInteractionCSS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
