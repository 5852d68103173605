package catalog

// Built-in directional rules. Sizes are in plot units (feet); directions
// follow common vastu placement conventions.
var defaultRules = map[RoomType]Rule{
	TypeMasterBedroom: {
		Direction:   Southwest,
		Size:        Size{Length: 16, Width: 12},
		Description: "The southwest corner carries the most weight; the head of the house sleeps here.",
		Defaults:    Preferences{AttachedWashroom: true, Inside: true},
		Flags:       []Flag{FlagAttachedWashroom},
	},
	TypeBedroom: {
		Direction:   West,
		Size:        Size{Length: 14, Width: 12},
		Description: "Secondary bedrooms sit along the west side, leaving the southwest to the master.",
		Defaults:    Preferences{Inside: true},
		Flags:       []Flag{FlagAttachedWashroom},
	},
	TypeKitchen: {
		Direction:   Southeast,
		Size:        Size{Length: 12, Width: 10},
		Description: "The southeast is the quarter of fire; cooking belongs there.",
		Defaults:    Preferences{Inside: true},
	},
	TypePoojaRoom: {
		Direction:   Northeast,
		Size:        Size{Length: 7, Width: 7},
		Description: "The northeast is the most auspicious corner, kept light and open for prayer.",
		Defaults:    Preferences{Inside: true},
	},
	TypeBathroom: {
		Direction:   Northwest,
		Size:        Size{Length: 8, Width: 6},
		Description: "Washrooms drain to the northwest, the quarter of air and movement.",
		Defaults:    Preferences{Inside: true},
	},
	TypeLivingRoom: {
		Direction:   North,
		Size:        Size{Length: 16, Width: 14},
		Description: "Guests are received in the north, the direction of prosperity.",
		Defaults:    Preferences{Inside: true},
		Flags:       []Flag{FlagCombined},
	},
	TypeDiningRoom: {
		Direction:   East,
		Size:        Size{Length: 12, Width: 10},
		Description: "Meals face the rising sun on the east side.",
		Defaults:    Preferences{Inside: true},
	},
	TypeStaircase: {
		Direction:   South,
		Size:        Size{Length: 10, Width: 6},
		Description: "Heavy vertical mass stays south, away from the light northeast.",
		Defaults:    Preferences{Inside: true},
		Flags:       []Flag{FlagOpen, FlagInside},
	},
	TypeCommonArea: {
		Direction:   North,
		Size:        Size{Length: 20, Width: 16},
		Description: "A combined living and dining hall spanning the northern face.",
		Defaults:    Preferences{Inside: true, Combined: true},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	rules := make(map[RoomType]Rule, len(defaultRules))
	for t, r := range defaultRules {
		rules[t] = r
	}
	return &Catalog{rules: rules}
}
