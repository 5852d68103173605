// Package styles defines the visual styles for canvas rendering and the
// fixed room-type color table.
package styles

import (
	"bytes"

	"github.com/plotplan/plotplan/pkg/catalog"
)

// Style defines the visual appearance for canvas rendering.
// Implementations control how the plot outline, room rectangles, labels,
// and compass markers are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderFrame writes the canvas background and the plot outline.
	RenderFrame(buf *bytes.Buffer, f Frame)
	// RenderRect writes the SVG for a single room rectangle.
	RenderRect(buf *bytes.Buffer, r Rect)
	// RenderLabel writes the SVG for a room's label text.
	RenderLabel(buf *bytes.Buffer, r Rect)
	// RenderCompass writes the SVG for one compass marker.
	RenderCompass(buf *bytes.Buffer, m Marker)
}

// Frame describes the canvas frame and the plot rectangle inside it.
// All coordinates are in pixels.
type Frame struct {
	Width, Height float64 // full canvas size including the margin band
	PlotX, PlotY  float64 // plot top-left
	PlotW, PlotH  float64 // plot extent
}

// Rect contains all data needed to render a single room rectangle.
type Rect struct {
	ID         string           // room identifier
	Type       catalog.RoomType // room type, drives the fill color
	Label      string           // humanized type name
	Sublabel   string           // direction plus active preference flags
	X, Y, W, H float64          // position and dimensions in pixels
	Fill       string           // fill color from the type table
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Marker is one compass label pinned at a canvas edge.
type Marker struct {
	Text string  // single compass letter: N, E, S, W
	X, Y float64 // anchor point in pixels
}

// roomColors is the fixed type-to-color table used by every style.
var roomColors = map[catalog.RoomType]string{
	catalog.TypeMasterBedroom: "#8e7cc3",
	catalog.TypeBedroom:       "#b4a7d6",
	catalog.TypeKitchen:       "#e06666",
	catalog.TypePoojaRoom:     "#ffd966",
	catalog.TypeBathroom:      "#76a5af",
	catalog.TypeLivingRoom:    "#93c47d",
	catalog.TypeDiningRoom:    "#f6b26b",
	catalog.TypeStaircase:     "#a5a5a5",
	catalog.TypeCommonArea:    "#6aa84f",
}

// fallbackColor is used for types outside the table.
const fallbackColor = "#cccccc"

// ColorFor returns the fixed fill color for a room type.
func ColorFor(t catalog.RoomType) string {
	if c, ok := roomColors[t]; ok {
		return c
	}
	return fallbackColor
}
