package canvas

import (
	"testing"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
)

func testState() plan.State {
	return plan.State{
		Plot: catalog.Size{Length: 50, Width: 30},
		Rooms: []plan.Room{
			{
				ID:          "1",
				Type:        catalog.TypeKitchen,
				Size:        catalog.Size{Length: 12, Width: 10},
				Position:    plan.Point{X: 0, Y: 38},
				Direction:   catalog.Southeast,
				Preferences: catalog.DefaultPreferences(),
			},
			{
				ID:          "2",
				Type:        catalog.TypeMasterBedroom,
				Size:        catalog.Size{Length: 16, Width: 12},
				Position:    plan.Point{X: 18, Y: 34},
				Direction:   catalog.Southwest,
				Preferences: catalog.Preferences{AttachedWashroom: true, Inside: true},
			},
		},
	}
}

func TestBuildFrame(t *testing.T) {
	c := Build(testState())

	if c.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", c.Scale, DefaultScale)
	}
	// 30 units wide * 10 px + 2*30 margin
	if c.FrameWidth != 360 {
		t.Errorf("FrameWidth = %v, want 360", c.FrameWidth)
	}
	if c.FrameHeight != 560 {
		t.Errorf("FrameHeight = %v, want 560", c.FrameHeight)
	}
	if c.Plot.PlotX != Margin || c.Plot.PlotY != Margin {
		t.Errorf("plot origin = (%v, %v), want (%v, %v)", c.Plot.PlotX, c.Plot.PlotY, Margin, Margin)
	}
	if c.Plot.PlotW != 300 || c.Plot.PlotH != 500 {
		t.Errorf("plot size = %vx%v, want 300x500", c.Plot.PlotW, c.Plot.PlotH)
	}
}

func TestBuildRects(t *testing.T) {
	c := Build(testState())

	if len(c.Rects) != 2 {
		t.Fatalf("len(Rects) = %d, want 2", len(c.Rects))
	}

	kitchen := c.Rects[0]
	if kitchen.X != Margin || kitchen.Y != Margin+380 {
		t.Errorf("kitchen at (%v, %v), want (%v, %v)", kitchen.X, kitchen.Y, Margin, Margin+380.0)
	}
	if kitchen.W != 100 || kitchen.H != 120 {
		t.Errorf("kitchen size = %vx%v, want 100x120", kitchen.W, kitchen.H)
	}
	if kitchen.Label != "1 Kitchen" {
		t.Errorf("kitchen label = %q", kitchen.Label)
	}
	if kitchen.Sublabel != "southeast" {
		t.Errorf("kitchen sublabel = %q, want southeast", kitchen.Sublabel)
	}

	master := c.Rects[1]
	if master.X != Margin+180 || master.Y != Margin+340 {
		t.Errorf("master at (%v, %v)", master.X, master.Y)
	}
	if master.Sublabel != "southwest, washroom" {
		t.Errorf("master sublabel = %q, want southwest, washroom", master.Sublabel)
	}
}

func TestBuildWithScale(t *testing.T) {
	c := Build(testState(), WithScale(5))

	if c.Scale != 5 {
		t.Errorf("Scale = %v, want 5", c.Scale)
	}
	if c.Plot.PlotW != 150 {
		t.Errorf("PlotW = %v, want 150", c.Plot.PlotW)
	}

	// Non-positive scales are ignored.
	c = Build(testState(), WithScale(-1))
	if c.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", c.Scale, DefaultScale)
	}
}

func TestBuildCompass(t *testing.T) {
	c := Build(testState())

	if len(c.Compass) != 4 {
		t.Fatalf("len(Compass) = %d, want 4", len(c.Compass))
	}

	byText := map[string][2]float64{}
	for _, m := range c.Compass {
		byText[m.Text] = [2]float64{m.X, m.Y}
	}

	n, s := byText["N"], byText["S"]
	e, w := byText["E"], byText["W"]
	if !(n[1] < s[1]) {
		t.Errorf("N (y=%v) should be above S (y=%v)", n[1], s[1])
	}
	// East sits at the left edge, west at the right.
	if !(e[0] < w[0]) {
		t.Errorf("E (x=%v) should be left of W (x=%v)", e[0], w[0])
	}
}

func TestBuildOversizedRoom(t *testing.T) {
	s := plan.State{
		Plot: catalog.Size{Length: 10, Width: 10},
		Rooms: []plan.Room{{
			ID:        "1",
			Type:      catalog.TypeLivingRoom,
			Size:      catalog.Size{Length: 16, Width: 14},
			Position:  plan.Point{X: -2, Y: 0},
			Direction: catalog.North,
		}},
	}

	c := Build(s)
	// Draws left of the plot outline; the canvas keeps it.
	if got := c.Rects[0].X; got != Margin-20 {
		t.Errorf("X = %v, want %v", got, Margin-20.0)
	}
}

func TestBuildEmptyPlan(t *testing.T) {
	c := Build(plan.State{Plot: catalog.Size{Length: 50, Width: 30}})

	if len(c.Rects) != 0 {
		t.Errorf("len(Rects) = %d, want 0", len(c.Rects))
	}
	if len(c.Compass) != 4 {
		t.Errorf("len(Compass) = %d, want 4", len(c.Compass))
	}
}

func TestSublabelFlags(t *testing.T) {
	r := plan.Room{
		Direction:   catalog.South,
		Preferences: catalog.Preferences{Open: true, Inside: false},
	}
	if got := sublabel(r); got != "south, open, outer" {
		t.Errorf("sublabel = %q, want %q", got, "south, open, outer")
	}
}
