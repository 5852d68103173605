package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// send feeds key messages through Update and returns the final model.
func send(t *testing.T, m DesignModel, msgs ...tea.Msg) DesignModel {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	out, ok := model.(DesignModel)
	if !ok {
		t.Fatalf("model changed type: %T", model)
	}
	return out
}

func TestDesignModelAddRoom(t *testing.T) {
	m := NewDesignModel("plan.toml", catalog.Default(), plan.NewFile())

	// Selectable types are sorted, so bathroom is first. It declares no
	// preference flags, so enter on the size screen commits directly.
	m = send(t, m, keyRunes("a"), keyEnter(), keyEnter())

	if m.screen != screenRooms {
		t.Fatalf("screen = %d, want rooms", m.screen)
	}
	if len(m.File.Rooms) != 1 || m.File.Rooms[0].Type != "bathroom" {
		t.Fatalf("entries = %+v, want one bathroom", m.File.Rooms)
	}
	if !m.Dirty {
		t.Error("adding a room should mark the model dirty")
	}
	if m.built == nil || m.built.Len() != 1 {
		t.Error("built plan should have the new room placed")
	}
}

func TestDesignModelPrefsFlow(t *testing.T) {
	m := NewDesignModel("plan.toml", catalog.Default(), plan.NewFile())

	// Navigate to master_bedroom (index 5 in sorted selectable types),
	// accept the default size, toggle the washroom flag, and commit.
	m = send(t, m, keyRunes("a"),
		keyRunes("j"), keyRunes("j"), keyRunes("j"), keyRunes("j"), keyRunes("j"),
		keyEnter())
	if m.screen != screenSize {
		t.Fatalf("screen = %d, want size entry", m.screen)
	}
	m = send(t, m, keyEnter())
	if m.screen != screenPrefs {
		t.Fatalf("screen = %d, want preference toggles", m.screen)
	}

	m = send(t, m, keyRunes(" "), keyEnter())

	if len(m.File.Rooms) != 1 {
		t.Fatalf("entries = %d, want 1", len(m.File.Rooms))
	}
	e := m.File.Rooms[0]
	if e.Type != "master_bedroom" {
		t.Errorf("type = %s, want master_bedroom", e.Type)
	}
	if e.AttachedWashroom == nil || !*e.AttachedWashroom {
		t.Error("washroom toggle should be recorded on the entry")
	}
	if m.built.Len() != 2 {
		t.Errorf("built plan has %d rooms, want bedroom plus washroom", m.built.Len())
	}
}

func TestDesignModelCustomSize(t *testing.T) {
	m := NewDesignModel("plan.toml", catalog.Default(), plan.NewFile())

	// Bathroom defaults prefill the fields; clear the length and type 9.
	m = send(t, m, keyRunes("a"), keyEnter())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, keyRunes("9"), keyEnter())

	if got := m.File.Rooms[0].Length; got != 9 {
		t.Errorf("length = %g, want 9", got)
	}
}

func TestDesignModelDeleteAndPlot(t *testing.T) {
	f := plan.NewFile()
	f.Rooms = append(f.Rooms, plan.Entry{Type: "kitchen"})
	m := NewDesignModel("plan.toml", catalog.Default(), f)

	m = send(t, m, keyRunes("d"))
	if len(m.File.Rooms) != 0 {
		t.Errorf("entries = %d, want 0 after delete", len(m.File.Rooms))
	}
	if !m.Dirty {
		t.Error("delete should mark the model dirty")
	}

	// Plot screen prefills 50; replace it with 80 and keep the width.
	m = send(t, m, keyRunes("p"))
	if m.screen != screenPlot {
		t.Fatalf("screen = %d, want plot entry", m.screen)
	}
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace},
		keyRunes("8"), keyRunes("0"), keyEnter())

	if m.File.Plot.Length != 80 || m.File.Plot.Width != plan.DefaultPlotWidth {
		t.Errorf("plot = %+v, want 80 x %g", m.File.Plot, float64(plan.DefaultPlotWidth))
	}
}

func TestDesignModelQuitKeys(t *testing.T) {
	m := NewDesignModel("plan.toml", catalog.Default(), plan.NewFile())

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Error("q should quit from the rooms screen")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should always quit")
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"-4", 0},
		{"1.2.3", 0},
	}
	for _, tt := range tests {
		if got := parseDimension(tt.input); got != tt.want {
			t.Errorf("parseDimension(%q) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

func TestEntryFlagSummary(t *testing.T) {
	yes, no := true, false

	if got := entryFlagSummary(plan.Entry{}); got != "—" {
		t.Errorf("empty summary = %q", got)
	}
	got := entryFlagSummary(plan.Entry{AttachedWashroom: &yes, Inside: &no})
	if got != "washroom, no inside" {
		t.Errorf("summary = %q, want %q", got, "washroom, no inside")
	}
}

func TestDesignModelViewSmoke(t *testing.T) {
	f := plan.NewFile()
	f.Rooms = append(f.Rooms, plan.Entry{Type: "kitchen"})
	m := NewDesignModel("plan.toml", catalog.Default(), f)

	for _, screen := range []designScreen{screenRooms, screenType, screenSize, screenPrefs, screenPlot} {
		m.screen = screen
		if m.View() == "" {
			t.Errorf("screen %d renders empty view", screen)
		}
	}
}
