package plan

import (
	"math"

	"github.com/plotplan/plotplan/pkg/catalog"
)

// Point is a top-left coordinate in plot units. X grows along the plot
// width (the east-west axis, east at the origin), Y along the plot length
// (north at the origin).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Place returns the top-left coordinate for a room of the given size placed
// toward direction on a plot. Corner directions pin the room into the two
// edges they name; cardinal directions sit flush against their edge with a
// floored quarter offset along the perpendicular axis.
//
// No clamping is performed: a room larger than the plot produces negative
// coordinates, and any unrecognized direction falls through to the origin.
// The function is pure and must stay bit-reproducible; callers depend on
// identical inputs giving identical output.
func Place(direction catalog.Direction, plot, room catalog.Size) Point {
	switch direction {
	case catalog.Northeast:
		return Point{X: 0, Y: 0}
	case catalog.North:
		return Point{X: math.Floor(plot.Width / 4), Y: 0}
	case catalog.Northwest:
		return Point{X: plot.Width - room.Width, Y: 0}
	case catalog.East:
		return Point{X: 0, Y: math.Floor(plot.Length / 4)}
	case catalog.Southeast:
		return Point{X: 0, Y: plot.Length - room.Length}
	case catalog.South:
		return Point{X: math.Floor(plot.Width / 4), Y: plot.Length - room.Length}
	case catalog.Southwest:
		return Point{X: plot.Width - room.Width, Y: plot.Length - room.Length}
	case catalog.West:
		return Point{X: plot.Width - room.Width, Y: math.Floor(plot.Length / 4)}
	default:
		return Point{X: 0, Y: 0}
	}
}
