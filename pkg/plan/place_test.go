package plan

import (
	"testing"

	"github.com/plotplan/plotplan/pkg/catalog"
)

func TestPlace(t *testing.T) {
	plot := catalog.Size{Length: 50, Width: 30}
	room := catalog.Size{Length: 15, Width: 12}

	tests := []struct {
		direction catalog.Direction
		want      Point
	}{
		{catalog.Northeast, Point{X: 0, Y: 0}},
		{catalog.North, Point{X: 7, Y: 0}},      // floor(30/4) = 7
		{catalog.Northwest, Point{X: 18, Y: 0}}, // 30 - 12
		{catalog.East, Point{X: 0, Y: 12}},      // floor(50/4) = 12
		{catalog.Southeast, Point{X: 0, Y: 35}}, // 50 - 15
		{catalog.South, Point{X: 7, Y: 35}},
		{catalog.Southwest, Point{X: 18, Y: 35}},
		{catalog.West, Point{X: 18, Y: 12}},
	}

	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			if got := Place(tt.direction, plot, room); got != tt.want {
				t.Errorf("Place(%s) = %+v, want %+v", tt.direction, got, tt.want)
			}
		})
	}
}

func TestPlaceUnknownDirection(t *testing.T) {
	plot := catalog.Size{Length: 50, Width: 30}
	room := catalog.Size{Length: 15, Width: 12}

	for _, dir := range []catalog.Direction{"", "up", "NORTH", "north "} {
		if got := Place(dir, plot, room); got != (Point{}) {
			t.Errorf("Place(%q) = %+v, want origin", dir, got)
		}
	}
}

func TestPlaceSouthwestExample(t *testing.T) {
	// southwest with a 12x15 room on a 50x30 plot: (30-15, 50-12) = (15, 38).
	got := Place(catalog.Southwest, catalog.Size{Length: 50, Width: 30}, catalog.Size{Length: 12, Width: 15})
	if got != (Point{X: 15, Y: 38}) {
		t.Errorf("Place(southwest) = %+v, want (15, 38)", got)
	}
}

func TestPlaceQuarterOffsetFloors(t *testing.T) {
	// 33/4 = 8.25 floors to 8; 51/4 = 12.75 floors to 12.
	plot := catalog.Size{Length: 51, Width: 33}
	room := catalog.Size{Length: 10, Width: 10}

	if got := Place(catalog.North, plot, room); got != (Point{X: 8, Y: 0}) {
		t.Errorf("Place(north) = %+v, want (8, 0)", got)
	}
	if got := Place(catalog.East, plot, room); got != (Point{X: 0, Y: 12}) {
		t.Errorf("Place(east) = %+v, want (0, 12)", got)
	}
}

func TestPlaceOversizedRoomGoesNegative(t *testing.T) {
	// A room larger than the plot yields negative coordinates, not an error
	// and not a clamp.
	plot := catalog.Size{Length: 20, Width: 10}
	room := catalog.Size{Length: 30, Width: 15}

	if got := Place(catalog.Southwest, plot, room); got != (Point{X: -5, Y: -10}) {
		t.Errorf("Place(southwest) = %+v, want (-5, -10)", got)
	}
}

func TestPlaceZeroPlot(t *testing.T) {
	room := catalog.Size{Length: 10, Width: 8}

	if got := Place(catalog.Northwest, catalog.Size{}, room); got != (Point{X: -8, Y: 0}) {
		t.Errorf("Place(northwest) = %+v, want (-8, 0)", got)
	}
}

func TestPlaceIsPure(t *testing.T) {
	plot := catalog.Size{Length: 42, Width: 27}
	room := catalog.Size{Length: 11, Width: 9}

	for _, dir := range catalog.Directions() {
		first := Place(dir, plot, room)
		second := Place(dir, plot, room)
		if first != second {
			t.Errorf("Place(%s) not idempotent: %+v vs %+v", dir, first, second)
		}
	}
}
