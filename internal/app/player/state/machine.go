package state

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/domain/video"
)

var (
	ErrNoActiveVideo = errors.New("no video is currently playing")
	ErrNotPaused     = errors.New("video is not paused")
)

// Machine holds the single now-playing slot.
// paused is only ever true while current is set.
type Machine struct {
	current *video.Video
	paused  bool
}

// New creates a machine in the Stopped state.
func New() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	switch {
	case m.current == nil:
		return Stopped
	case m.paused:
		return Paused
	default:
		return Playing
	}
}

// Play starts v from any state. If a video was active it is stopped first
// and returned as previous.
func (m *Machine) Play(v video.Video) (previous *video.Video) {
	previous = m.current
	m.current = &v
	m.paused = false
	return previous
}

// Stop stops the active video and returns it.
func (m *Machine) Stop() (video.Video, error) {
	if m.current == nil {
		return video.Video{}, ErrNoActiveVideo
	}
	v := *m.current
	m.current = nil
	m.paused = false
	return v, nil
}

// Pause pauses the active video. Pausing an already paused video is not an
// error; it reports alreadyPaused and leaves the state unchanged.
func (m *Machine) Pause() (v video.Video, alreadyPaused bool, err error) {
	if m.current == nil {
		return video.Video{}, false, ErrNoActiveVideo
	}
	if m.paused {
		return *m.current, true, nil
	}
	m.paused = true
	return *m.current, false, nil
}

// Resume continues a paused video.
func (m *Machine) Resume() (video.Video, error) {
	if m.current == nil {
		return video.Video{}, ErrNoActiveVideo
	}
	if !m.paused {
		return video.Video{}, ErrNotPaused
	}
	m.paused = false
	return *m.current, nil
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{State: m.State()}
	if m.current != nil {
		s.Video = *m.current
	}
	return s
}

// Snapshot is a point-in-time view of the machine.
type Snapshot struct {
	State State
	Video video.Video // Zero value when Stopped
}

// Active reports whether a video is playing or paused.
func (s Snapshot) Active() bool {
	return s.State != Stopped
}

// String renders the active video, with " - PAUSED" appended when paused.
// It returns an empty string when stopped.
func (s Snapshot) String() string {
	switch s.State {
	case Playing:
		return s.Video.String()
	case Paused:
		return s.Video.String() + " - PAUSED"
	default:
		return ""
	}
}
