// Package state provides the now-playing state machine.
package state

// State represents the playback state.
type State int

const (
	Stopped State = iota // No active video
	Playing              // Active video is playing
	Paused               // Active video is paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
