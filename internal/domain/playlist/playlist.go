// Package playlist provides the Playlist domain entity.
package playlist

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrAlreadyInPlaylist = errors.New("video already added")
	ErrNotInPlaylist     = errors.New("video is not in playlist")
)

// Playlist represents a user-defined, ordered list of video IDs.
type Playlist struct {
	name     string   // Name as originally typed
	key      string   // Lowercased name, used for identity
	videoIDs []string // Insertion order, no duplicates
}

// New creates an empty playlist.
func New(name string) *Playlist {
	return &Playlist{
		name:     name,
		key:      Key(name),
		videoIDs: make([]string, 0),
	}
}

// Key returns the registry key for a playlist name.
func Key(name string) string {
	return strings.ToLower(name)
}

// Name returns the display name.
func (p *Playlist) Name() string { return p.name }

// Key returns the lowercased identity of the playlist.
func (p *Playlist) Key() string { return p.key }

// VideoIDs returns a copy of the video IDs in insertion order.
func (p *Playlist) VideoIDs() []string {
	return slices.Clone(p.videoIDs)
}

// Contains reports whether the video ID is in the playlist.
func (p *Playlist) Contains(videoID string) bool {
	return slices.Contains(p.videoIDs, videoID)
}

// Add appends a video ID.
func (p *Playlist) Add(videoID string) error {
	if p.Contains(videoID) {
		return ErrAlreadyInPlaylist
	}
	p.videoIDs = append(p.videoIDs, videoID)
	return nil
}

// Remove removes a video ID, preserving the order of the rest.
func (p *Playlist) Remove(videoID string) error {
	i := slices.Index(p.videoIDs, videoID)
	if i < 0 {
		return ErrNotInPlaylist
	}
	p.videoIDs = slices.Delete(p.videoIDs, i, i+1)
	return nil
}

// Clear removes all videos while keeping the playlist.
func (p *Playlist) Clear() {
	p.videoIDs = make([]string, 0)
}
