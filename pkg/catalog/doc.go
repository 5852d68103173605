// Package catalog defines the fixed room-type catalog and its directional rules.
//
// # Overview
//
// Every room type plotplan knows about is bound to a directional rule: a
// preferred compass direction drawn from traditional vastu placement
// conventions, a default size in plot units, a short rationale, and the set
// of preference flags the type exposes (attached washroom, open/inside
// staircase, combined living-dining).
//
// The catalog is a leaf component with no dependencies on the rest of the
// module. It is explicitly constructed and passed in wherever rules are
// needed - there is no package-level mutable state:
//
//	cat := catalog.Default()
//	rule, err := cat.Lookup(catalog.TypeKitchen)
//	if err != nil {
//	    // UNKNOWN_ROOM_TYPE
//	}
//	fmt.Println(rule.Direction, rule.Size)
//
// # Customization
//
// Default sizes and descriptions can be overridden from a TOML file with
// [Load]. Directions and declared flags are part of the placement contract
// and stay fixed.
package catalog
