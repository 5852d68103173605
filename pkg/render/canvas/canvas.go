package canvas

import (
	"strings"

	"github.com/plotplan/plotplan/pkg/plan"
	"github.com/plotplan/plotplan/pkg/render/canvas/styles"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DefaultScale is the fixed pixels-per-plot-unit ratio.
	DefaultScale = 10.0

	// Margin is the pixel band reserved on every frame edge for the
	// compass labels.
	Margin = 30.0
)

// =============================================================================
// Canvas
// =============================================================================

// Canvas is the pixel-space layout of a plan: the frame, one rect per
// room, and the four compass markers. All coordinates are in pixels.
type Canvas struct {
	Scale       float64         `json:"scale"`
	FrameWidth  float64         `json:"frame_width"`
	FrameHeight float64         `json:"frame_height"`
	Plot        styles.Frame    `json:"plot"`
	Rects       []styles.Rect   `json:"rects"`
	Compass     []styles.Marker `json:"compass"`
}

// Option configures canvas building.
type Option func(*builder)

type builder struct {
	scale float64
}

// WithScale overrides the pixels-per-unit ratio.
func WithScale(s float64) Option {
	return func(b *builder) {
		if s > 0 {
			b.scale = s
		}
	}
}

// Build converts a plan snapshot to its canvas layout. Rooms that fall
// outside the plot (oversized rooms place at negative plot coordinates)
// are kept; they simply draw outside the plot outline.
func Build(s plan.State, opts ...Option) Canvas {
	b := builder{scale: DefaultScale}
	for _, opt := range opts {
		opt(&b)
	}

	plotW := s.Plot.Width * b.scale
	plotH := s.Plot.Length * b.scale
	frame := styles.Frame{
		Width:  plotW + 2*Margin,
		Height: plotH + 2*Margin,
		PlotX:  Margin,
		PlotY:  Margin,
		PlotW:  plotW,
		PlotH:  plotH,
	}

	c := Canvas{
		Scale:       b.scale,
		FrameWidth:  frame.Width,
		FrameHeight: frame.Height,
		Plot:        frame,
		Rects:       make([]styles.Rect, 0, len(s.Rooms)),
		Compass:     compassMarkers(frame),
	}

	for _, r := range s.Rooms {
		c.Rects = append(c.Rects, styles.Rect{
			ID:       r.ID,
			Type:     r.Type,
			Label:    r.Label(),
			Sublabel: sublabel(r),
			X:        Margin + r.Position.X*b.scale,
			Y:        Margin + r.Position.Y*b.scale,
			W:        r.Size.Width * b.scale,
			H:        r.Size.Length * b.scale,
			Fill:     styles.ColorFor(r.Type),
		})
	}
	return c
}

// compassMarkers pins the four cardinal labels to the frame edges. East
// sits at the left edge: the placement rule's origin corner is northeast.
func compassMarkers(f styles.Frame) []styles.Marker {
	return []styles.Marker{
		{Text: "N", X: f.Width / 2, Y: Margin * 0.6},
		{Text: "S", X: f.Width / 2, Y: f.Height - Margin*0.3},
		{Text: "E", X: Margin * 0.5, Y: f.Height / 2},
		{Text: "W", X: f.Width - Margin*0.5, Y: f.Height / 2},
	}
}

// sublabel composes the direction plus the active preference flags.
func sublabel(r plan.Room) string {
	parts := []string{string(r.Direction)}
	if r.Preferences.AttachedWashroom {
		parts = append(parts, "washroom")
	}
	if r.Preferences.Open {
		parts = append(parts, "open")
	}
	if !r.Preferences.Inside {
		parts = append(parts, "outer")
	}
	if r.Preferences.Combined {
		parts = append(parts, "combined")
	}
	return strings.Join(parts, ", ")
}
