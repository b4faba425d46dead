// Package registry provides the playlist registry.
package registry

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/domain/playlist"
)

var (
	ErrPlaylistNotFound = errors.New("playlist does not exist")
	ErrDuplicateName    = errors.New("a playlist with the same name already exists")
)

// PlaylistRegistry holds playlists keyed by their lowercased name.
// It is owned by a single player and is not safe for concurrent use.
type PlaylistRegistry struct {
	playlists map[string]*playlist.Playlist
}

// NewPlaylistRegistry creates an empty registry.
func NewPlaylistRegistry() *PlaylistRegistry {
	return &PlaylistRegistry{
		playlists: make(map[string]*playlist.Playlist),
	}
}

// Create adds an empty playlist. Names collide case-insensitively.
func (r *PlaylistRegistry) Create(name string) (*playlist.Playlist, error) {
	key := playlist.Key(name)
	if _, ok := r.playlists[key]; ok {
		return nil, ErrDuplicateName
	}
	p := playlist.New(name)
	r.playlists[key] = p
	return p, nil
}

// Get looks up a playlist by name, ignoring case.
func (r *PlaylistRegistry) Get(name string) (*playlist.Playlist, error) {
	p, ok := r.playlists[playlist.Key(name)]
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	return p, nil
}

// Delete removes a playlist entirely.
func (r *PlaylistRegistry) Delete(name string) error {
	key := playlist.Key(name)
	if _, ok := r.playlists[key]; !ok {
		return ErrPlaylistNotFound
	}
	delete(r.playlists, key)
	return nil
}

// All returns every playlist ordered by key.
func (r *PlaylistRegistry) All() []*playlist.Playlist {
	keys := make([]string, 0, len(r.playlists))
	for k := range r.playlists {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]*playlist.Playlist, 0, len(keys))
	for _, k := range keys {
		result = append(result, r.playlists[k])
	}
	return result
}

// Names returns display names ordered by key.
func (r *PlaylistRegistry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name()
	}
	return names
}

// Count returns the number of playlists.
func (r *PlaylistRegistry) Count() int {
	return len(r.playlists)
}
