package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/vidbox/internal/domain/video"
)

var (
	cats = video.New("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"})
	dogs = video.New("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"})
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestMachine_Play(t *testing.T) {
	m := New()
	assert.Equal(t, Stopped, m.State())

	prev := m.Play(cats)
	assert.Nil(t, prev)
	assert.Equal(t, Playing, m.State())
	assert.Equal(t, cats.ID(), m.Snapshot().Video.ID())

	// Playing another video stops the previous one.
	prev = m.Play(dogs)
	require.NotNil(t, prev)
	assert.Equal(t, cats.ID(), prev.ID())
	assert.Equal(t, dogs.ID(), m.Snapshot().Video.ID())
}

func TestMachine_PlaySameVideoRestarts(t *testing.T) {
	m := New()
	m.Play(cats)

	prev := m.Play(cats)
	require.NotNil(t, prev)
	assert.Equal(t, cats.ID(), prev.ID())
	assert.Equal(t, Playing, m.State())
}

func TestMachine_PlayFromPausedClearsPause(t *testing.T) {
	m := New()
	m.Play(cats)
	_, _, err := m.Pause()
	require.NoError(t, err)

	prev := m.Play(dogs)
	require.NotNil(t, prev)
	assert.Equal(t, Playing, m.State())
}

func TestMachine_Stop(t *testing.T) {
	m := New()

	_, err := m.Stop()
	assert.ErrorIs(t, err, ErrNoActiveVideo)

	m.Play(cats)
	v, err := m.Stop()
	require.NoError(t, err)
	assert.Equal(t, cats.ID(), v.ID())
	assert.Equal(t, Stopped, m.State())

	// Stopping a paused video also works.
	m.Play(dogs)
	_, _, err = m.Pause()
	require.NoError(t, err)
	v, err = m.Stop()
	require.NoError(t, err)
	assert.Equal(t, dogs.ID(), v.ID())
	assert.Equal(t, Stopped, m.State())
}

func TestMachine_Pause(t *testing.T) {
	m := New()

	_, _, err := m.Pause()
	assert.ErrorIs(t, err, ErrNoActiveVideo)

	m.Play(cats)
	v, already, err := m.Pause()
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, cats.ID(), v.ID())
	assert.Equal(t, Paused, m.State())

	// Second pause reports already paused without changing state.
	v, already, err = m.Pause()
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, cats.ID(), v.ID())
	assert.Equal(t, Paused, m.State())
}

func TestMachine_Resume(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *Machine)
		wantErr   error
		wantState State
	}{
		{
			name:      "stopped",
			setup:     func(m *Machine) {},
			wantErr:   ErrNoActiveVideo,
			wantState: Stopped,
		},
		{
			name:      "playing",
			setup:     func(m *Machine) { m.Play(cats) },
			wantErr:   ErrNotPaused,
			wantState: Playing,
		},
		{
			name: "paused",
			setup: func(m *Machine) {
				m.Play(cats)
				_, _, _ = m.Pause()
			},
			wantState: Playing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			tt.setup(m)

			v, err := m.Resume()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, cats.ID(), v.ID())
			}
			assert.Equal(t, tt.wantState, m.State())
		})
	}
}

func TestSnapshot_String(t *testing.T) {
	m := New()
	assert.Equal(t, "", m.Snapshot().String())
	assert.False(t, m.Snapshot().Active())

	m.Play(cats)
	assert.Equal(t, "Amazing Cats (amazing_cats_video_id) [#cat #animal]", m.Snapshot().String())
	assert.True(t, m.Snapshot().Active())

	_, _, _ = m.Pause()
	assert.Equal(t, "Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED", m.Snapshot().String())
}
