// Package plan implements the floor-plan core: the placement function and
// the room registry.
//
// # Overview
//
// A [Plan] owns the plot dimensions, the ordered list of placed rooms, and
// the in-progress draft that parameterizes the next add. Rooms are created
// only by [Plan.AddRoom] and removed only by [Plan.RemoveRoom]; a placed
// room is never mutated.
//
//	cat := catalog.Default()
//	p := plan.New(cat)
//	p.SetPlot(catalog.Size{Length: 50, Width: 30})
//	if err := p.SelectType(catalog.TypeMasterBedroom); err != nil {
//	    return err
//	}
//	rooms, err := p.AddRoom()
//
// # Placement
//
// [Place] maps a compass direction plus plot and room dimensions to a
// top-left coordinate: corners pin to the two edges they sit on, cardinal
// directions sit flush against their edge at a quarter offset along the
// perpendicular axis. The function does not validate that a room fits; an
// oversized room yields negative coordinates by design of the rule, and an
// unrecognized direction places at the origin.
//
// # Identifiers
//
// Room ids are the registry count at insertion time plus one, stringified.
// An auto-appended washroom reuses its parent id with a "-washroom" suffix,
// and removal matches by id prefix so a parent takes its washroom with it.
// Ids can recur after removals; this mirrors the behavior of the original
// tool and is kept for compatibility.
package plan
