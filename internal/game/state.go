// Package game provides the interactive dungeon viewer.
package game

// State represents the current viewer state.
type State int

const (
	// StateExplore is the normal mode: the party walks and rooms can be added.
	StateExplore State = iota
	// StateStalled means the last room could not be placed.
	StateStalled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateStalled:
		return "stalled"
	default:
		return "unknown"
	}
}
