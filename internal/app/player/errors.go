package player

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/app/library"
	"github.com/osa030/vidbox/internal/app/player/registry"
	"github.com/osa030/vidbox/internal/app/player/state"
	"github.com/osa030/vidbox/internal/domain/playlist"
)

// Errors returned by Service. All of them are expected, user-facing outcomes.
var (
	ErrVideoNotFound     = library.ErrVideoNotFound
	ErrPlaylistNotFound  = registry.ErrPlaylistNotFound
	ErrDuplicateName     = registry.ErrDuplicateName
	ErrAlreadyInPlaylist = playlist.ErrAlreadyInPlaylist
	ErrNotInPlaylist     = playlist.ErrNotInPlaylist
	ErrNoActiveVideo     = state.ErrNoActiveVideo
	ErrNotPaused         = state.ErrNotPaused
	ErrEmptyCatalog      = errors.New("no videos available")
)

// Code returns a stable machine-readable code for err.
func Code(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrVideoNotFound):
		return "video_not_found"
	case errors.Is(err, ErrPlaylistNotFound):
		return "playlist_not_found"
	case errors.Is(err, ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, ErrAlreadyInPlaylist):
		return "already_in_playlist"
	case errors.Is(err, ErrNotInPlaylist):
		return "not_in_playlist"
	case errors.Is(err, ErrNoActiveVideo):
		return "no_active_video"
	case errors.Is(err, ErrNotPaused):
		return "not_paused"
	case errors.Is(err, ErrEmptyCatalog):
		return "empty_catalog"
	default:
		return "internal_error"
	}
}
