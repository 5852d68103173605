package plan

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/errors"
)

// =============================================================================
// Plan Files
// =============================================================================

// File is the on-disk TOML document the CLI edits: the plot plus one entry
// per user-added room. Derived rooms (auto washrooms, the common_area
// substitution) are not stored; they re-materialize when the file is built
// into a plan.
type File struct {
	Plot  catalog.Size `toml:"plot"`
	Rooms []Entry      `toml:"rooms"`
}

// Entry is a user-added room in a plan file. Zero sizes mean "use the
// rule's default"; nil flags mean "use the rule's declared default".
type Entry struct {
	Type             string   `toml:"type"`
	Length           float64  `toml:"length,omitempty"`
	Width            float64  `toml:"width,omitempty"`
	AttachedWashroom *bool    `toml:"attached_washroom,omitempty"`
	Open             *bool    `toml:"open,omitempty"`
	Inside           *bool    `toml:"inside,omitempty"`
	Combined         *bool    `toml:"combined,omitempty"`
}

// NewFile returns a plan file with the default plot and no rooms.
func NewFile() File {
	return File{Plot: catalog.Size{Length: DefaultPlotLength, Width: DefaultPlotWidth}}
}

// LoadFile reads a plan file from path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
		}
		return File{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read plan file %s", path)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidPlanFile, err, "parse plan file %s", path)
	}
	return f, nil
}

// Save writes the plan file to path.
func (f File) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode plan file")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write plan file %s", path)
	}
	return nil
}

// Build replays the file against a fresh plan: set the plot, then select
// and add each entry in order. Registry semantics apply exactly as they
// would interactively, so entry order determines ids and washroom
// auto-creation happens here, not in the file.
func (f File) Build(cat *catalog.Catalog) (*Plan, error) {
	p := New(cat)
	p.SetPlot(f.Plot)

	for _, e := range f.Rooms {
		if err := p.SelectType(catalog.RoomType(e.Type)); err != nil {
			return nil, err
		}

		size := p.Draft().Size
		if e.Length > 0 {
			size.Length = e.Length
		}
		if e.Width > 0 {
			size.Width = e.Width
		}
		p.SetDraftSize(size)

		prefs := p.Draft().Preferences
		if e.AttachedWashroom != nil {
			prefs.AttachedWashroom = *e.AttachedWashroom
		}
		if e.Open != nil {
			prefs.Open = *e.Open
		}
		if e.Inside != nil {
			prefs.Inside = *e.Inside
		}
		if e.Combined != nil {
			prefs.Combined = *e.Combined
		}
		p.SetDraftPreferences(prefs)

		if _, err := p.AddRoom(); err != nil {
			return nil, err
		}
	}
	return p, nil
}
