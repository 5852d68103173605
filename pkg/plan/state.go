package plan

import (
	"encoding/json"

	"github.com/plotplan/plotplan/pkg/catalog"
	"github.com/plotplan/plotplan/pkg/errors"
)

// =============================================================================
// State - Plan Serialization
// =============================================================================

// State is the canonical serialization format for a plan. Used for API
// responses, session storage, and cache keys.
//
// The format is designed for round-trip fidelity: restore → mutate →
// snapshot produces a state whose rooms carry the positions computed when
// they were added, not recomputed ones.
type State struct {
	Plot  catalog.Size `json:"plot"`
	Rooms []Room       `json:"rooms"`
}

// State snapshots the plan's plot and room sequence. The draft is working
// state and is not part of the snapshot.
func (p *Plan) State() State {
	return State{Plot: p.plot, Rooms: p.Rooms()}
}

// Restore builds a plan from a snapshot. Room positions are taken verbatim
// from the state; nothing is re-placed.
func Restore(cat *catalog.Catalog, s State) *Plan {
	p := New(cat)
	p.plot = s.Plot
	p.rooms = make([]Room, len(s.Rooms))
	copy(p.rooms, s.Rooms)
	return p
}

// MarshalState serializes a state to JSON.
func MarshalState(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal plan state")
	}
	return data, nil
}

// UnmarshalState deserializes JSON bytes to a state.
func UnmarshalState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeInvalidPlanFile, err, "unmarshal plan state")
	}
	return s, nil
}
