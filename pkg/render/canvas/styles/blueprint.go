package styles

import (
	"bytes"
	"fmt"
)

// Blueprint renders white line work on a blueprint-blue canvas with a
// faint drafting grid.
type Blueprint struct{}

// RenderDefs writes the grid pattern used by the frame background.
func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="bp-grid" width="20" height="20" patternUnits="userSpaceOnUse">
      <path d="M 20 0 L 0 0 0 20" fill="none" stroke="#3a6ea5" stroke-width="0.5"/>
    </pattern>
  </defs>
`)
}

// RenderFrame draws the blue background, the drafting grid, and the plot
// outline in white.
func (Blueprint) RenderFrame(buf *bytes.Buffer, f Frame) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#1e3f66"/>`+"\n",
		f.Width, f.Height)
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="url(#bp-grid)"/>`+"\n",
		f.Width, f.Height)
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#ffffff" stroke-width="2"/>`+"\n",
		f.PlotX, f.PlotY, f.PlotW, f.PlotH)
}

// RenderRect draws a room as white line work; the type color survives only
// as a thin accent along the top edge.
func (Blueprint) RenderRect(buf *bytes.Buffer, r Rect) {
	fmt.Fprintf(buf, `  <rect id="room-%s" class="room" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#1e3f66" fill-opacity="0.3" stroke="#ffffff" stroke-width="1.5"/>`+"\n",
		EscapeXML(r.ID), r.X, r.Y, r.W, r.H)
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="3"/>`+"\n",
		r.X, r.Y, r.X+r.W, r.Y, r.Fill)
}

// RenderLabel draws the room name in white.
func (Blueprint) RenderLabel(buf *bytes.Buffer, r Rect) {
	size := FontSize(r)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="monospace" font-size="%.1f" fill="#ffffff">%s</text>`+"\n",
		r.CenterX(), r.CenterY()-size*0.2, size, EscapeXML(r.Label))
	if r.Sublabel != "" {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="monospace" font-size="%.1f" fill="#b8cce4">%s</text>`+"\n",
			r.CenterX(), r.CenterY()+SublabelSize(r), SublabelSize(r), EscapeXML(TruncateSublabel(r)))
	}
}

// RenderCompass draws one compass letter in white.
func (Blueprint) RenderCompass(buf *bytes.Buffer, m Marker) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="monospace" font-size="14" font-weight="bold" fill="#ffffff">%s</text>`+"\n",
		m.X, m.Y, EscapeXML(m.Text))
}

// Ensure Blueprint implements Style.
var _ Style = Blueprint{}
