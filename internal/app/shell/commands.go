package shell

import (
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/app/player"
)

func (s *Shell) numberOfVideos(_ context.Context, _ []string) error {
	s.printf("%d videos in the library\n", s.svc.NumberOfVideos())
	return nil
}

func (s *Shell) showAllVideos(_ context.Context, _ []string) error {
	s.println("Here's a list of all available videos:")
	for _, v := range s.svc.AllVideos() {
		s.println(v.String())
	}
	return nil
}

func (s *Shell) play(_ context.Context, args []string) error {
	tr, err := s.svc.Play(args[0])
	if err != nil {
		s.println("Cannot play video: Video does not exist")
		return err
	}
	s.printTransition(tr)
	return nil
}

func (s *Shell) playRandom(_ context.Context, _ []string) error {
	tr, err := s.svc.PlayRandom()
	if err != nil {
		s.println("Cannot play random video: No videos available")
		return err
	}
	s.printTransition(tr)
	return nil
}

func (s *Shell) printTransition(tr player.Transition) {
	if tr.Previous != nil {
		s.printf("Stopping video: %s\n", tr.Previous.Title())
	}
	s.printf("Playing video: %s\n", tr.Started.Title())
}

func (s *Shell) stop(_ context.Context, _ []string) error {
	v, err := s.svc.Stop()
	if err != nil {
		s.println("Cannot stop video: No video is currently playing")
		return err
	}
	s.printf("Stopping video: %s\n", v.Title())
	return nil
}

func (s *Shell) pause(_ context.Context, _ []string) error {
	v, already, err := s.svc.Pause()
	switch {
	case err != nil:
		s.println("Cannot pause video: No video is currently playing")
		return err
	case already:
		s.printf("Video already paused: %s\n", v.Title())
	default:
		s.printf("Pausing video: %s\n", v.Title())
	}
	return nil
}

func (s *Shell) resume(_ context.Context, _ []string) error {
	v, err := s.svc.Resume()
	switch {
	case errors.Is(err, player.ErrNotPaused):
		s.println("Cannot continue video: Video is not paused")
		return err
	case err != nil:
		s.println("Cannot continue video: No video is currently playing")
		return err
	}
	s.printf("Continuing video: %s\n", v.Title())
	return nil
}

func (s *Shell) showPlaying(_ context.Context, _ []string) error {
	cur := s.svc.Current()
	if !cur.Active() {
		s.println("No video is currently playing")
		return nil
	}
	s.printf("Currently playing: %s\n", cur)
	return nil
}

func (s *Shell) createPlaylist(_ context.Context, args []string) error {
	name, err := s.svc.CreatePlaylist(strings.Join(args, " "))
	if err != nil {
		s.println("Cannot create playlist: A playlist with the same name already exists")
		return err
	}
	s.printf("Successfully created new playlist: %s\n", name)
	return nil
}

func (s *Shell) addToPlaylist(_ context.Context, args []string) error {
	name, videoID := splitNameAndID(args)
	v, err := s.svc.AddToPlaylist(name, videoID)
	if err != nil {
		s.printf("Cannot add video to %s: %s\n", name, playlistReason(err))
		return err
	}
	s.printf("Added video to %s: %s\n", name, v.Title())
	return nil
}

func (s *Shell) removeFromPlaylist(_ context.Context, args []string) error {
	name, videoID := splitNameAndID(args)
	v, err := s.svc.RemoveFromPlaylist(name, videoID)
	if err != nil {
		s.printf("Cannot remove video from %s: %s\n", name, playlistReason(err))
		return err
	}
	s.printf("Removed video from %s: %s\n", name, v.Title())
	return nil
}

// playlistReason renders the legacy reason text for playlist mutation errors.
func playlistReason(err error) string {
	switch {
	case errors.Is(err, player.ErrPlaylistNotFound):
		return "Playlist does not exist"
	case errors.Is(err, player.ErrVideoNotFound):
		return "Video does not exist"
	case errors.Is(err, player.ErrAlreadyInPlaylist):
		return "Video already added"
	case errors.Is(err, player.ErrNotInPlaylist):
		return "Video is not in playlist"
	default:
		return err.Error()
	}
}

func (s *Shell) clearPlaylist(_ context.Context, args []string) error {
	name := strings.Join(args, " ")
	if err := s.svc.ClearPlaylist(name); err != nil {
		s.printf("Cannot clear playlist %s: Playlist does not exist\n", name)
		return err
	}
	s.printf("Successfully removed all videos from %s\n", name)
	return nil
}

func (s *Shell) deletePlaylist(_ context.Context, args []string) error {
	name := strings.Join(args, " ")
	if err := s.svc.DeletePlaylist(name); err != nil {
		s.printf("Cannot delete playlist %s: Playlist does not exist\n", name)
		return err
	}
	s.printf("Deleted playlist: %s\n", name)
	return nil
}

func (s *Shell) showAllPlaylists(_ context.Context, _ []string) error {
	listing := s.svc.Playlists()
	if listing.Empty() {
		s.println("No playlists exist yet")
		return nil
	}
	s.println("Showing all playlists:")
	for _, name := range listing.Names {
		s.println(name)
	}
	return nil
}

func (s *Shell) showPlaylist(_ context.Context, args []string) error {
	name := strings.Join(args, " ")
	view, err := s.svc.ShowPlaylist(name)
	if err != nil {
		s.printf("Cannot show playlist %s: Playlist does not exist\n", name)
		return err
	}
	s.printf("Showing playlist: %s\n", name)
	if view.Empty() {
		s.println("No videos here yet")
		return nil
	}
	for _, v := range view.Videos {
		s.println(v.String())
	}
	return nil
}

func (s *Shell) searchVideos(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")
	results := s.svc.SearchVideos(term)
	if results.Empty() {
		s.printf("No search results for %s\n", term)
		return nil
	}

	s.printf("Here are the results for %s\n", term)
	for i, v := range results.Videos {
		s.printf("%d %s\n", i+1, v)
	}
	s.println("Would you like to play any of the above? If yes, specify the number of the video.")
	s.println("If your answer is not a valid number, we will assume it's a no.")

	answer, ok := s.readLine(ctx, false)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return nil
	}
	v, ok := results.Pick(n)
	if !ok {
		return nil
	}
	return s.play(ctx, []string{v.ID()})
}
