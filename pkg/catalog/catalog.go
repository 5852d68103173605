package catalog

import (
	"slices"
	"strings"

	"github.com/plotplan/plotplan/pkg/errors"
)

// =============================================================================
// Directions
// =============================================================================

// Direction is one of the 8 compass points recognized by the placement rules.
type Direction string

// The 8 compass points. Any other value places at the plot origin.
const (
	North     Direction = "north"
	Northeast Direction = "northeast"
	East      Direction = "east"
	Southeast Direction = "southeast"
	South     Direction = "south"
	Southwest Direction = "southwest"
	West      Direction = "west"
	Northwest Direction = "northwest"
)

// Directions lists all recognized compass points in clockwise order from north.
func Directions() []Direction {
	return []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
}

// Valid reports whether d is one of the 8 recognized compass points.
func (d Direction) Valid() bool {
	return slices.Contains(Directions(), d)
}

// =============================================================================
// Room Types
// =============================================================================

// RoomType identifies an entry in the fixed catalog.
type RoomType string

// The fixed set of room types. TypeCommonArea is synthetic: it is never
// offered in selectors and only materializes when a living room is added
// with the combined flag set.
const (
	TypeMasterBedroom RoomType = "master_bedroom"
	TypeBedroom       RoomType = "bedroom"
	TypeKitchen       RoomType = "kitchen"
	TypePoojaRoom     RoomType = "pooja_room"
	TypeBathroom      RoomType = "bathroom"
	TypeLivingRoom    RoomType = "living_room"
	TypeDiningRoom    RoomType = "dining_room"
	TypeStaircase     RoomType = "staircase"
	TypeCommonArea    RoomType = "common_area"
)

// DisplayName returns the humanized form of the type identifier,
// e.g. "master_bedroom" becomes "Master Bedroom".
func (t RoomType) DisplayName() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// =============================================================================
// Sizes and Preferences
// =============================================================================

// Size is a length/width pair in plot units. Length runs along the
// north-south axis of the plot, width along the east-west axis.
type Size struct {
	Length float64 `json:"length" toml:"length"`
	Width  float64 `json:"width" toml:"width"`
}

// Flag names a preference a room type exposes to the user.
type Flag string

// Preference flags. A selector only shows the checkboxes for the flags a
// rule declares; undeclared flags keep their defaults.
const (
	FlagAttachedWashroom Flag = "attached_washroom"
	FlagOpen             Flag = "open"
	FlagInside           Flag = "inside"
	FlagCombined         Flag = "combined"
)

// Preferences holds all preference flags with explicit values. Rules that
// do not declare a flag fall back to the zero-state defaults from
// [DefaultPreferences].
type Preferences struct {
	AttachedWashroom bool `json:"attached_washroom" toml:"attached_washroom"`
	Open             bool `json:"open" toml:"open"`
	Inside           bool `json:"inside" toml:"inside"`
	Combined         bool `json:"combined" toml:"combined"`
}

// DefaultPreferences returns the defaults applied for flags a rule leaves
// undeclared: rooms are inside, detached, and uncombined.
func DefaultPreferences() Preferences {
	return Preferences{Inside: true}
}

// Active returns the declared flags that are currently set, in declaration
// order. Used for rectangle labels and room listings.
func (p Preferences) Active(declared []Flag) []Flag {
	var out []Flag
	for _, f := range declared {
		switch f {
		case FlagAttachedWashroom:
			if p.AttachedWashroom {
				out = append(out, f)
			}
		case FlagOpen:
			if p.Open {
				out = append(out, f)
			}
		case FlagInside:
			if p.Inside {
				out = append(out, f)
			}
		case FlagCombined:
			if p.Combined {
				out = append(out, f)
			}
		}
	}
	return out
}

// =============================================================================
// Rules
// =============================================================================

// Rule binds a room type to its directional rule: the preferred compass
// direction, the default size, a human-readable rationale, and the
// preference flags the type declares.
type Rule struct {
	Direction   Direction   // preferred compass placement
	Size        Size        // default length/width in plot units
	Description string      // placement rationale shown in the UI
	Defaults    Preferences // preference values applied by SelectType
	Flags       []Flag      // flags the UI exposes for this type
}

// Declares reports whether the rule exposes the given preference flag.
func (r Rule) Declares(f Flag) bool {
	return slices.Contains(r.Flags, f)
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog is an immutable mapping from room type to directional rule.
// Construct with [Default] or [Load]; the zero value knows no types.
type Catalog struct {
	rules map[RoomType]Rule
}

// Lookup returns the rule for t. Unknown types yield an
// errors.ErrCodeUnknownRoomType error: under normal UI use selectors are
// populated from catalog keys, so hitting this is a programming error.
func (c *Catalog) Lookup(t RoomType) (Rule, error) {
	rule, ok := c.rules[t]
	if !ok {
		return Rule{}, errors.New(errors.ErrCodeUnknownRoomType, "unknown room type: %s", t)
	}
	return rule, nil
}

// Types returns all catalog keys sorted lexically, including the synthetic
// common_area type. Use [Selectable] for UI selectors.
func (c *Catalog) Types() []RoomType {
	out := make([]RoomType, 0, len(c.rules))
	for t := range c.rules {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Selectable returns the catalog keys offered in room-type selectors:
// every type except the synthetic common_area.
func (c *Catalog) Selectable() []RoomType {
	out := c.Types()
	return slices.DeleteFunc(out, func(t RoomType) bool { return t == TypeCommonArea })
}

// Len returns the number of room types in the catalog.
func (c *Catalog) Len() int { return len(c.rules) }
