package plan

import (
	"strconv"
	"strings"

	"github.com/plotplan/plotplan/pkg/catalog"
)

// =============================================================================
// Constants
// =============================================================================

// Default plot dimensions in plot units, used until the user sets their own.
const (
	DefaultPlotLength = 50.0
	DefaultPlotWidth  = 30.0
)

// WashroomSuffix is appended to a parent room's id for its auto-created
// washroom. Prefix removal relies on this parent/child id relationship.
const WashroomSuffix = "-washroom"

// =============================================================================
// Room
// =============================================================================

// Room is a placed room. Immutable once created: edits happen by
// remove-then-re-add, never by mutation.
type Room struct {
	ID          string              `json:"id"`
	Type        catalog.RoomType    `json:"type"`
	Size        catalog.Size        `json:"size"`
	Position    Point               `json:"position"`
	Direction   catalog.Direction   `json:"direction"`
	Preferences catalog.Preferences `json:"preferences"`
}

// IsWashroom reports whether the room is an auto-created washroom attached
// to a parent room.
func (r Room) IsWashroom() bool {
	return strings.HasSuffix(r.ID, WashroomSuffix)
}

// Label returns the display text for the room's rectangle: the humanized
// type name.
func (r Room) Label() string {
	return r.Type.DisplayName()
}

// =============================================================================
// Draft
// =============================================================================

// Draft is the in-progress room specification configured before AddRoom
// commits it to the registry.
type Draft struct {
	Type        catalog.RoomType    `json:"type"`
	Size        catalog.Size        `json:"size"`
	Preferences catalog.Preferences `json:"preferences"`
}

// =============================================================================
// Plan
// =============================================================================

// Plan is the room registry: the plot, the ordered sequence of placed
// rooms, and the draft for the next add. It is not safe for concurrent use;
// there is exactly one logical thread of control per plan.
type Plan struct {
	cat   *catalog.Catalog
	plot  catalog.Size
	rooms []Room
	draft Draft
}

// New creates an empty plan against the given catalog with the default
// plot dimensions and no draft selected.
func New(cat *catalog.Catalog) *Plan {
	return &Plan{
		cat:  cat,
		plot: catalog.Size{Length: DefaultPlotLength, Width: DefaultPlotWidth},
	}
}

// Plot returns the current plot dimensions.
func (p *Plan) Plot() catalog.Size { return p.plot }

// SetPlot replaces the plot dimensions wholesale. Already-placed rooms keep
// their previously computed positions even if they now fall outside the new
// plot; nothing is recomputed or validated.
func (p *Plan) SetPlot(next catalog.Size) { p.plot = next }

// Draft returns the current draft.
func (p *Plan) Draft() Draft { return p.draft }

// SetDraftSize overrides the draft's size, keeping type and preferences.
func (p *Plan) SetDraftSize(s catalog.Size) { p.draft.Size = s }

// SetDraftPreferences overrides the draft's preference flags.
func (p *Plan) SetDraftPreferences(prefs catalog.Preferences) { p.draft.Preferences = prefs }

// SelectType points the draft at a room type: the draft size resets to the
// rule's default size and every preference flag resets to the rule's
// declared default. Fails with UNKNOWN_ROOM_TYPE for types outside the
// catalog.
func (p *Plan) SelectType(t catalog.RoomType) error {
	rule, err := p.cat.Lookup(t)
	if err != nil {
		return err
	}
	p.draft = Draft{Type: t, Size: rule.Size, Preferences: rule.Defaults}
	return nil
}

// Rooms returns a copy of the ordered room sequence.
func (p *Plan) Rooms() []Room {
	out := make([]Room, len(p.rooms))
	copy(out, p.rooms)
	return out
}

// Len returns the number of placed rooms, auto-created washrooms included.
func (p *Plan) Len() int { return len(p.rooms) }

// Catalog returns the catalog this plan resolves rules against.
func (p *Plan) Catalog() *catalog.Catalog { return p.cat }

// AddRoom commits the draft to the registry and returns the rooms appended
// by this call. The new id is the current room count plus one, stringified;
// ids are not guaranteed unique once rooms have been removed (kept for
// compatibility with the original tool).
//
// Three cases:
//   - a living room drafted with the combined flag is replaced entirely by
//     a single common_area room (forced north, forced default size); the
//     draft's own size and position are discarded
//   - a draft with the attached-washroom flag appends the drafted room plus
//     a washroom with id "<id>-washroom", pinned immediately beside the
//     parent rather than placed independently
//   - otherwise the drafted room is appended alone
func (p *Plan) AddRoom() ([]Room, error) {
	rule, err := p.cat.Lookup(p.draft.Type)
	if err != nil {
		return nil, err
	}
	id := strconv.Itoa(len(p.rooms) + 1)

	if p.draft.Type == catalog.TypeLivingRoom && p.draft.Preferences.Combined {
		caRule, err := p.cat.Lookup(catalog.TypeCommonArea)
		if err != nil {
			return nil, err
		}
		combined := Room{
			ID:          id,
			Type:        catalog.TypeCommonArea,
			Size:        caRule.Size,
			Position:    Place(catalog.North, p.plot, caRule.Size),
			Direction:   catalog.North,
			Preferences: caRule.Defaults,
		}
		p.rooms = append(p.rooms, combined)
		return []Room{combined}, nil
	}

	room := Room{
		ID:          id,
		Type:        p.draft.Type,
		Size:        p.draft.Size,
		Position:    Place(rule.Direction, p.plot, p.draft.Size),
		Direction:   rule.Direction,
		Preferences: p.draft.Preferences,
	}

	if p.draft.Preferences.AttachedWashroom {
		bathRule, err := p.cat.Lookup(catalog.TypeBathroom)
		if err != nil {
			return nil, err
		}
		washroom := Room{
			ID:   id + WashroomSuffix,
			Type: catalog.TypeBathroom,
			Size: bathRule.Size,
			Position: Point{
				X: room.Position.X + room.Size.Width,
				Y: room.Position.Y,
			},
			Direction:   catalog.Northwest,
			Preferences: catalog.DefaultPreferences(),
		}
		p.rooms = append(p.rooms, room, washroom)
		return []Room{room, washroom}, nil
	}

	p.rooms = append(p.rooms, room)
	return []Room{room}, nil
}

// RemoveRoom deletes every room whose id starts with id and returns how
// many were removed. The prefix match is what ties a washroom's fate to its
// parent; it also means "1" takes "1-washroom" and, after enough removals
// and re-adds, could take an unrelated "10". That hazard is inherited from
// the original tool and deliberately not fixed here.
func (p *Plan) RemoveRoom(id string) int {
	if id == "" {
		return 0
	}
	kept := p.rooms[:0]
	removed := 0
	for _, r := range p.rooms {
		if strings.HasPrefix(r.ID, id) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	p.rooms = kept
	return removed
}
