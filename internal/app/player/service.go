// Package player provides the player service: the now-playing state and the
// user's playlists, operated against a read-only video catalog.
package player

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/player/registry"
	"github.com/osa030/vidbox/internal/app/player/state"
	"github.com/osa030/vidbox/internal/domain/video"
)

// Catalog is the read-only video lookup the service plays from.
type Catalog interface {
	Get(id string) (video.Video, error)
	All() []video.Video
	IDs() []string // Sorted
	Len() int
}

// Service orchestrates the player state and playlists for one session.
// It is not safe for concurrent use; callers sharing a Service across
// goroutines must serialize calls.
type Service struct {
	catalog   Catalog
	state     *state.Machine
	playlists *registry.PlaylistRegistry

	random    func(n int) int
	sessionID string
	log       zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRandom overrides how PlayRandom picks an index in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(s *Service) {
		s.random = fn
	}
}

// NewService creates a player service over catalog.
func NewService(catalog Catalog, opts ...Option) *Service {
	sessionID := uuid.New().String()
	s := &Service{
		catalog:   catalog,
		state:     state.New(),
		playlists: registry.NewPlaylistRegistry(),
		random:    rand.Intn,
		sessionID: sessionID,
		log:       zlog.With().Str("session", sessionID).Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionID returns the identifier attached to this service's logs.
func (s *Service) SessionID() string {
	return s.sessionID
}

// NumberOfVideos returns the catalog size.
func (s *Service) NumberOfVideos() int {
	return s.catalog.Len()
}

// AllVideos returns the catalog sorted by video ID.
func (s *Service) AllVideos() []video.Video {
	ids := s.catalog.IDs()
	videos := make([]video.Video, 0, len(ids))
	for _, id := range ids {
		v, err := s.catalog.Get(id)
		if err != nil {
			continue
		}
		videos = append(videos, v)
	}
	return videos
}

// Play starts the video with the exact given ID.
func (s *Service) Play(videoID string) (Transition, error) {
	v, err := s.catalog.Get(videoID)
	if err != nil {
		return Transition{}, errors.Wrapf(err, "play %q", videoID)
	}
	return s.start(v), nil
}

// PlayRandom starts a video chosen uniformly from the catalog.
func (s *Service) PlayRandom() (Transition, error) {
	videos := s.catalog.All()
	if len(videos) == 0 {
		return Transition{}, ErrEmptyCatalog
	}
	return s.start(videos[s.random(len(videos))]), nil
}

func (s *Service) start(v video.Video) Transition {
	prev := s.state.Play(v)
	if prev != nil {
		s.log.Debug().Msgf("video stopped: video_id=%s", prev.ID())
	}
	s.log.Debug().Msgf("video started: video_id=%s", v.ID())
	return Transition{Previous: prev, Started: v}
}

// Stop stops the active video.
func (s *Service) Stop() (video.Video, error) {
	v, err := s.state.Stop()
	if err != nil {
		return video.Video{}, err
	}
	s.log.Debug().Msgf("video stopped: video_id=%s", v.ID())
	return v, nil
}

// Pause pauses the active video. alreadyPaused is set when it was paused
// before the call; the state is left unchanged in that case.
func (s *Service) Pause() (v video.Video, alreadyPaused bool, err error) {
	v, alreadyPaused, err = s.state.Pause()
	if err != nil {
		return video.Video{}, false, err
	}
	if !alreadyPaused {
		s.log.Debug().Msgf("video paused: video_id=%s", v.ID())
	}
	return v, alreadyPaused, nil
}

// Resume continues the paused video.
func (s *Service) Resume() (video.Video, error) {
	v, err := s.state.Resume()
	if err != nil {
		return video.Video{}, err
	}
	s.log.Debug().Msgf("video resumed: video_id=%s", v.ID())
	return v, nil
}

// Current returns a snapshot of the now-playing state.
func (s *Service) Current() state.Snapshot {
	return s.state.Snapshot()
}

// CreatePlaylist creates an empty playlist and returns its display name.
func (s *Service) CreatePlaylist(name string) (string, error) {
	p, err := s.playlists.Create(name)
	if err != nil {
		return "", errors.Wrapf(err, "create playlist %q", name)
	}
	s.log.Debug().Msgf("playlist created: key=%s", p.Key())
	return p.Name(), nil
}

// AddToPlaylist appends a video to a playlist and returns the added video.
// Failures are checked in order: playlist, video, membership.
func (s *Service) AddToPlaylist(name, videoID string) (video.Video, error) {
	p, err := s.playlists.Get(name)
	if err != nil {
		return video.Video{}, errors.Wrapf(err, "add to playlist %q", name)
	}
	v, err := s.catalog.Get(videoID)
	if err != nil {
		return video.Video{}, errors.Wrapf(err, "add %q to playlist %q", videoID, name)
	}
	if err := p.Add(v.ID()); err != nil {
		return video.Video{}, errors.Wrapf(err, "add %q to playlist %q", videoID, name)
	}
	s.log.Debug().Msgf("playlist video added: key=%s video_id=%s", p.Key(), v.ID())
	return v, nil
}

// RemoveFromPlaylist removes a video from a playlist and returns it.
// Failures are checked in order: playlist, video, membership.
func (s *Service) RemoveFromPlaylist(name, videoID string) (video.Video, error) {
	p, err := s.playlists.Get(name)
	if err != nil {
		return video.Video{}, errors.Wrapf(err, "remove from playlist %q", name)
	}
	v, err := s.catalog.Get(videoID)
	if err != nil {
		return video.Video{}, errors.Wrapf(err, "remove %q from playlist %q", videoID, name)
	}
	if err := p.Remove(v.ID()); err != nil {
		return video.Video{}, errors.Wrapf(err, "remove %q from playlist %q", videoID, name)
	}
	s.log.Debug().Msgf("playlist video removed: key=%s video_id=%s", p.Key(), v.ID())
	return v, nil
}

// ClearPlaylist removes every video from a playlist but keeps the playlist.
func (s *Service) ClearPlaylist(name string) error {
	p, err := s.playlists.Get(name)
	if err != nil {
		return errors.Wrapf(err, "clear playlist %q", name)
	}
	p.Clear()
	s.log.Debug().Msgf("playlist cleared: key=%s", p.Key())
	return nil
}

// DeletePlaylist removes a playlist.
func (s *Service) DeletePlaylist(name string) error {
	if err := s.playlists.Delete(name); err != nil {
		return errors.Wrapf(err, "delete playlist %q", name)
	}
	s.log.Debug().Msgf("playlist deleted: key=%s", strings.ToLower(name))
	return nil
}

// Playlists lists all playlists ordered by name, ignoring case.
func (s *Service) Playlists() PlaylistListing {
	return PlaylistListing{Names: s.playlists.Names()}
}

// PlaylistCount returns the number of playlists.
func (s *Service) PlaylistCount() int {
	return s.playlists.Count()
}

// ShowPlaylist resolves a playlist's videos through the catalog.
func (s *Service) ShowPlaylist(name string) (PlaylistView, error) {
	p, err := s.playlists.Get(name)
	if err != nil {
		return PlaylistView{}, errors.Wrapf(err, "show playlist %q", name)
	}

	ids := p.VideoIDs()
	videos := make([]video.Video, 0, len(ids))
	for _, id := range ids {
		v, err := s.catalog.Get(id)
		if err != nil {
			return PlaylistView{}, errors.Wrapf(err, "resolve %q in playlist %q", id, name)
		}
		videos = append(videos, v)
	}
	return PlaylistView{Name: p.Name(), Videos: videos}, nil
}

// SearchVideos returns videos whose title contains term, ignoring case,
// sorted by title. Equal titles keep catalog order.
func (s *Service) SearchVideos(term string) SearchResults {
	needle := strings.ToLower(term)
	matches := make([]video.Video, 0)
	for _, v := range s.catalog.All() {
		if strings.Contains(strings.ToLower(v.Title()), needle) {
			matches = append(matches, v)
		}
	}
	slices.SortStableFunc(matches, func(a, b video.Video) int {
		return strings.Compare(a.Title(), b.Title())
	})
	return SearchResults{Term: term, Videos: matches}
}
