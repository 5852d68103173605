package styles

import (
	"bytes"
	"fmt"
)

// Simple renders plain rectangles on a white canvas: the default style.
type Simple struct{}

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderFrame draws the white background and the plot outline.
func (Simple) RenderFrame(buf *bytes.Buffer, f Frame) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n",
		f.Width, f.Height)
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#fafaf7" stroke="#333333" stroke-width="2"/>`+"\n",
		f.PlotX, f.PlotY, f.PlotW, f.PlotH)
}

// RenderRect draws a filled room rectangle with a dark outline.
func (Simple) RenderRect(buf *bytes.Buffer, r Rect) {
	fmt.Fprintf(buf, `  <rect id="room-%s" class="room" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.85" stroke="#333333" stroke-width="1.5"/>`+"\n",
		EscapeXML(r.ID), r.X, r.Y, r.W, r.H, r.Fill)
}

// RenderLabel draws the room name centered in the rectangle with the
// direction/flags line underneath.
func (Simple) RenderLabel(buf *bytes.Buffer, r Rect) {
	size := FontSize(r)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="#1a1a1a">%s</text>`+"\n",
		r.CenterX(), r.CenterY()-size*0.2, size, EscapeXML(r.Label))
	if r.Sublabel != "" {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="#444444">%s</text>`+"\n",
			r.CenterX(), r.CenterY()+SublabelSize(r), SublabelSize(r), EscapeXML(TruncateSublabel(r)))
	}
}

// RenderCompass draws one compass letter at a frame edge.
func (Simple) RenderCompass(buf *bytes.Buffer, m Marker) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14" font-weight="bold" fill="#666666">%s</text>`+"\n",
		m.X, m.Y, EscapeXML(m.Text))
}

// Ensure Simple implements Style.
var _ Style = Simple{}
