package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DesignModel - Interactive plan editing
// =============================================================================

// designScreen identifies which editor screen is active.
type designScreen int

const (
	screenRooms designScreen = iota // entry list, the home screen
	screenType                      // room type selector
	screenSize                      // length/width entry for the pending room
	screenPrefs                     // preference toggles for the pending room
	screenPlot                      // plot length/width entry
)

// DesignModel is the bubbletea model for the interactive plan editor.
// It edits a plan file's entries; the placed rooms shown below the entry
// list are recomputed by replaying the file after every change.
type DesignModel struct {
	Path  string
	File  plan.File
	Saved bool // a save happened during the session
	Dirty bool // unsaved changes remain

	cat      *catalog.Catalog
	built    *plan.Plan
	buildErr error

	screen designScreen
	cursor int
	status string

	// type selector state
	types      []catalog.RoomType
	typeCursor int

	// size and plot input state
	fields      [2]string // length, width
	fieldCursor int

	// pending entry state
	pending    plan.Entry
	rule       catalog.Rule
	flagCursor int
	flagSet    map[catalog.Flag]bool
}

// NewDesignModel creates an editor model for the given plan file.
func NewDesignModel(path string, cat *catalog.Catalog, f plan.File) DesignModel {
	m := DesignModel{
		Path:  path,
		File:  f,
		cat:   cat,
		types: cat.Selectable(),
	}
	m.rebuild()
	return m
}

// rebuild replays the file so the view reflects current placements.
func (m *DesignModel) rebuild() {
	m.built, m.buildErr = m.File.Build(m.cat)
}

func (m DesignModel) Init() tea.Cmd {
	return nil
}

func (m DesignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenRooms:
		return m.updateRooms(key)
	case screenType:
		return m.updateType(key)
	case screenSize:
		return m.updateSize(key)
	case screenPrefs:
		return m.updatePrefs(key)
	case screenPlot:
		return m.updatePlot(key)
	}
	return m, nil
}

func (m DesignModel) updateRooms(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.File.Rooms)-1 {
			m.cursor++
		}
	case "a":
		m.typeCursor = 0
		m.status = ""
		m.screen = screenType
	case "d":
		if len(m.File.Rooms) == 0 {
			break
		}
		removed := m.File.Rooms[m.cursor]
		m.File.Rooms = append(m.File.Rooms[:m.cursor], m.File.Rooms[m.cursor+1:]...)
		if m.cursor >= len(m.File.Rooms) && m.cursor > 0 {
			m.cursor--
		}
		m.rebuild()
		m.Dirty = true
		m.status = fmt.Sprintf("Removed %s", catalog.RoomType(removed.Type).DisplayName())
	case "p":
		m.fields[0] = formatDimension(m.File.Plot.Length)
		m.fields[1] = formatDimension(m.File.Plot.Width)
		m.fieldCursor = 0
		m.screen = screenPlot
	case "s":
		if err := m.File.Save(m.Path); err != nil {
			m.status = fmt.Sprintf("Save failed: %v", err)
			break
		}
		m.Saved = true
		m.Dirty = false
		m.status = fmt.Sprintf("Saved %s", m.Path)
	}
	return m, nil
}

func (m DesignModel) updateType(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		m.screen = screenRooms
	case "up", "k":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "down", "j":
		if m.typeCursor < len(m.types)-1 {
			m.typeCursor++
		}
	case "enter":
		t := m.types[m.typeCursor]
		rule, err := m.cat.Lookup(t)
		if err != nil {
			m.status = err.Error()
			m.screen = screenRooms
			break
		}
		m.pending = plan.Entry{Type: string(t)}
		m.rule = rule
		m.fields[0] = formatDimension(rule.Size.Length)
		m.fields[1] = formatDimension(rule.Size.Width)
		m.fieldCursor = 0
		m.screen = screenSize
	}
	return m, nil
}

func (m DesignModel) updateSize(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenType
	case "tab", "up", "down", "k", "j":
		m.fieldCursor = (m.fieldCursor + 1) % len(m.fields)
	case "backspace":
		f := m.fields[m.fieldCursor]
		if len(f) > 0 {
			m.fields[m.fieldCursor] = f[:len(f)-1]
		}
	case "enter":
		m.pending.Length = parseDimension(m.fields[0])
		m.pending.Width = parseDimension(m.fields[1])
		if len(m.rule.Flags) == 0 {
			return m.commitPending(), nil
		}
		m.flagCursor = 0
		m.flagSet = make(map[catalog.Flag]bool, len(m.rule.Flags))
		for _, f := range m.rule.Flags {
			m.flagSet[f] = prefValue(m.rule.Defaults, f)
		}
		m.screen = screenPrefs
	default:
		if len(key.Runes) == 1 && isDimensionRune(key.Runes[0]) {
			m.fields[m.fieldCursor] += string(key.Runes)
		}
	}
	return m, nil
}

func (m DesignModel) updatePrefs(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenSize
	case "up", "k":
		if m.flagCursor > 0 {
			m.flagCursor--
		}
	case "down", "j":
		if m.flagCursor < len(m.rule.Flags)-1 {
			m.flagCursor++
		}
	case " ":
		f := m.rule.Flags[m.flagCursor]
		m.flagSet[f] = !m.flagSet[f]
	case "enter":
		for _, f := range m.rule.Flags {
			setEntryFlag(&m.pending, f, m.flagSet[f])
		}
		return m.commitPending(), nil
	}
	return m, nil
}

func (m DesignModel) updatePlot(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenRooms
	case "tab", "up", "down", "k", "j":
		m.fieldCursor = (m.fieldCursor + 1) % len(m.fields)
	case "backspace":
		f := m.fields[m.fieldCursor]
		if len(f) > 0 {
			m.fields[m.fieldCursor] = f[:len(f)-1]
		}
	case "enter":
		m.File.Plot = catalog.Size{
			Length: parseDimension(m.fields[0]),
			Width:  parseDimension(m.fields[1]),
		}
		m.rebuild()
		m.Dirty = true
		m.status = fmt.Sprintf("Plot set to %g x %g", m.File.Plot.Length, m.File.Plot.Width)
		m.screen = screenRooms
	default:
		if len(key.Runes) == 1 && isDimensionRune(key.Runes[0]) {
			m.fields[m.fieldCursor] += string(key.Runes)
		}
	}
	return m, nil
}

// commitPending appends the pending entry and returns to the room list.
func (m DesignModel) commitPending() DesignModel {
	m.File.Rooms = append(m.File.Rooms, m.pending)
	m.cursor = len(m.File.Rooms) - 1
	m.rebuild()
	m.Dirty = true
	m.status = fmt.Sprintf("Added %s", catalog.RoomType(m.pending.Type).DisplayName())
	m.screen = screenRooms
	return m
}

// =============================================================================
// Views
// =============================================================================

func (m DesignModel) View() string {
	switch m.screen {
	case screenType:
		return m.viewType()
	case screenSize:
		return m.viewFields("Room Size", "tab switch field  ⏎ continue  esc back")
	case screenPrefs:
		return m.viewPrefs()
	case screenPlot:
		return m.viewFields("Plot Size", "tab switch field  ⏎ apply  esc back")
	default:
		return m.viewRooms()
	}
}

func (m DesignModel) viewRooms() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Plan: " + m.Path))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("a add  d delete  p plot  s save  q quit"))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("Plot %g x %g", m.File.Plot.Length, m.File.Plot.Width)))
	b.WriteString("\n\n")

	if len(m.File.Rooms) == 0 {
		b.WriteString(listDimStyle.Render("  no rooms yet, press a to add one"))
		b.WriteString("\n")
	} else {
		rows := [][]string{}
		for i, e := range m.File.Rooms {
			cursor := "  "
			if i == m.cursor {
				cursor = "▸ "
			}
			size := "default"
			if e.Length > 0 || e.Width > 0 {
				size = fmt.Sprintf("%g x %g", e.Length, e.Width)
			}
			rows = append(rows, []string{cursor, catalog.RoomType(e.Type).DisplayName(), size, entryFlagSummary(e)})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("", "Room", "Size", "Preferences").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
				}
				if row == m.cursor {
					return listSelectedStyle
				}
				return listNormalStyle
			})
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.buildErr != nil {
		b.WriteString(StyleWarning.Render(m.buildErr.Error()))
		b.WriteString("\n")
	} else if m.built != nil && m.built.Len() > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("Placed %d rooms:", m.built.Len())))
		b.WriteString("\n")
		for _, r := range m.built.Rooms() {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  %-4s %-24s %-10s at (%g, %g)",
				r.ID, r.Label(), r.Direction, r.Position.X, r.Position.Y)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DesignModel) viewType() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Room Type"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc back"))
	b.WriteString("\n\n")

	for i, t := range m.types {
		rule, err := m.cat.Lookup(t)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-16s %-10s %g x %g", t.DisplayName(), rule.Direction, rule.Size.Length, rule.Size.Width)
		if i == m.typeCursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m DesignModel) viewFields(title, help string) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(help))
	b.WriteString("\n\n")

	labels := [2]string{"Length", "Width"}
	for i, label := range labels {
		marker := "  "
		style := listNormalStyle
		if i == m.fieldCursor {
			marker = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s: %s_", marker, label, m.fields[i])))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DesignModel) viewPrefs() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Preferences"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("space toggle  ⏎ add room  esc back"))
	b.WriteString("\n\n")

	for i, f := range m.rule.Flags {
		box := "[ ]"
		if m.flagSet[f] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, flagLabel(f))
		if i == m.flagCursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// parseDimension converts free-typed input to a dimension. Anything that
// does not parse as a positive number coerces to 0, which means "use the
// rule default".
func parseDimension(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// formatDimension renders a dimension for an input field, with 0 as empty.
func formatDimension(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func isDimensionRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// prefValue reads one preference flag off a Preferences value.
func prefValue(p catalog.Preferences, f catalog.Flag) bool {
	switch f {
	case catalog.FlagAttachedWashroom:
		return p.AttachedWashroom
	case catalog.FlagOpen:
		return p.Open
	case catalog.FlagInside:
		return p.Inside
	case catalog.FlagCombined:
		return p.Combined
	}
	return false
}

// setEntryFlag records an explicit preference choice on a file entry.
func setEntryFlag(e *plan.Entry, f catalog.Flag, v bool) {
	val := v
	switch f {
	case catalog.FlagAttachedWashroom:
		e.AttachedWashroom = &val
	case catalog.FlagOpen:
		e.Open = &val
	case catalog.FlagInside:
		e.Inside = &val
	case catalog.FlagCombined:
		e.Combined = &val
	}
}

// flagLabel is the human-readable checkbox label for a preference flag.
func flagLabel(f catalog.Flag) string {
	switch f {
	case catalog.FlagAttachedWashroom:
		return "Attached washroom"
	case catalog.FlagOpen:
		return "Open"
	case catalog.FlagInside:
		return "Inside"
	case catalog.FlagCombined:
		return "Combined with dining"
	}
	return string(f)
}

// entryFlagSummary lists the explicitly set preferences of an entry.
func entryFlagSummary(e plan.Entry) string {
	var parts []string
	add := func(name string, v *bool) {
		if v == nil {
			return
		}
		if *v {
			parts = append(parts, name)
		} else {
			parts = append(parts, "no "+name)
		}
	}
	add("washroom", e.AttachedWashroom)
	add("open", e.Open)
	add("inside", e.Inside)
	add("combined", e.Combined)
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, ", ")
}
