package player

import "github.com/osa030/vidbox/internal/domain/video"

// Transition describes a started video and the one it replaced, if any.
type Transition struct {
	Previous *video.Video // Nil when nothing was active
	Started  video.Video
}

// PlaylistListing is the result of listing all playlists.
type PlaylistListing struct {
	Names []string // Display names ordered case-insensitively
}

// Empty reports whether no playlists exist yet.
func (l PlaylistListing) Empty() bool { return len(l.Names) == 0 }

// PlaylistView is the resolved content of one playlist.
type PlaylistView struct {
	Name   string
	Videos []video.Video // Insertion order
}

// Empty reports whether the playlist has no videos yet.
func (v PlaylistView) Empty() bool { return len(v.Videos) == 0 }

// SearchResults holds videos matching a search term, ranked by title.
type SearchResults struct {
	Term   string
	Videos []video.Video
}

// Empty reports whether nothing matched.
func (r SearchResults) Empty() bool { return len(r.Videos) == 0 }

// Pick returns the n-th result, counting from 1.
func (r SearchResults) Pick(n int) (video.Video, bool) {
	if n < 1 || n > len(r.Videos) {
		return video.Video{}, false
	}
	return r.Videos[n-1], true
}
