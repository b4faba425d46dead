// Package shell provides the text-based interaction shell for the player.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/vidbox/internal/app/player"
	"github.com/osa030/vidbox/internal/infra/metrics"
)

// Options configures a Shell.
type Options struct {
	Prompt      string // Printed before each command when Interactive
	Interactive bool   // Input is a terminal
}

// command is a shell command handler. The returned error is a player error
// that has already been reported to the user; it is kept for metrics.
type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

// Shell reads commands line by line and renders results as text.
type Shell struct {
	svc      *player.Service
	scanner  *bufio.Scanner
	out      io.Writer
	opts     Options
	commands map[string]command

	// Lines scanned from input by the reader goroutine. readErr is set
	// before lines is closed.
	startOnce sync.Once
	lines     chan string
	readErr   error
}

// New creates a shell reading from in and writing to out.
func New(svc *player.Service, in io.Reader, out io.Writer, opts Options) *Shell {
	s := &Shell{
		svc:     svc,
		scanner: bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		lines:   make(chan string),
	}
	s.commands = map[string]command{
		"NUMBER_OF_VIDEOS":     {usage: "NUMBER_OF_VIDEOS", run: s.numberOfVideos},
		"SHOW_ALL_VIDEOS":      {usage: "SHOW_ALL_VIDEOS", run: s.showAllVideos},
		"PLAY":                 {usage: "PLAY <video_id>", minArgs: 1, run: s.play},
		"PLAY_RANDOM":          {usage: "PLAY_RANDOM", run: s.playRandom},
		"STOP":                 {usage: "STOP", run: s.stop},
		"PAUSE":                {usage: "PAUSE", run: s.pause},
		"CONTINUE":             {usage: "CONTINUE", run: s.resume},
		"SHOW_PLAYING":         {usage: "SHOW_PLAYING", run: s.showPlaying},
		"CREATE_PLAYLIST":      {usage: "CREATE_PLAYLIST <playlist_name>", minArgs: 1, run: s.createPlaylist},
		"ADD_TO_PLAYLIST":      {usage: "ADD_TO_PLAYLIST <playlist_name> <video_id>", minArgs: 2, run: s.addToPlaylist},
		"REMOVE_FROM_PLAYLIST": {usage: "REMOVE_FROM_PLAYLIST <playlist_name> <video_id>", minArgs: 2, run: s.removeFromPlaylist},
		"CLEAR_PLAYLIST":       {usage: "CLEAR_PLAYLIST <playlist_name>", minArgs: 1, run: s.clearPlaylist},
		"DELETE_PLAYLIST":      {usage: "DELETE_PLAYLIST <playlist_name>", minArgs: 1, run: s.deletePlaylist},
		"SHOW_ALL_PLAYLISTS":   {usage: "SHOW_ALL_PLAYLISTS", run: s.showAllPlaylists},
		"SHOW_PLAYLIST":        {usage: "SHOW_PLAYLIST <playlist_name>", minArgs: 1, run: s.showPlaylist},
		"SEARCH_VIDEOS":        {usage: "SEARCH_VIDEOS <search_term>", minArgs: 1, run: s.searchVideos},
	}
	return s
}

// Run processes commands until EXIT, end of input or ctx is done.
// A blocked read is abandoned as soon as ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.opts.Interactive {
		s.println("Hello and welcome to YouTube, what would you like to do?")
		s.println("Enter HELP for list of available commands or EXIT to terminate.")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := s.readLine(ctx, s.opts.Interactive)
		if !ok {
			break
		}
		if !s.Execute(ctx, line) {
			s.println("YouTube has now terminated its execution. Thank you and goodbye!")
			return nil
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.readErr != nil {
		return errors.Wrap(s.readErr, "failed to read input")
	}
	return nil
}

// Execute runs a single command line. It returns false on EXIT.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	name := strings.ToUpper(fields[0])
	args := fields[1:]

	switch name {
	case "EXIT":
		return false
	case "HELP":
		s.help()
		return true
	}

	cmd, ok := s.commands[name]
	if !ok || len(args) < cmd.minArgs {
		if ok {
			s.printf("Usage: %s\n", cmd.usage)
		} else {
			s.println("Please enter a valid command, type HELP for a list of available commands.")
		}
		metrics.CommandsTotal.WithLabelValues("invalid", "invalid_command").Inc()
		return true
	}

	err := cmd.run(ctx, args)
	code := player.Code(err)
	if code == "internal_error" {
		zlog.Error().Msgf("command failed: command=%s error=%v", name, err)
	}
	metrics.CommandsTotal.WithLabelValues(strings.ToLower(name), code).Inc()
	metrics.Playlists.Set(float64(s.svc.PlaylistCount()))
	metrics.PlaybackState.Set(float64(s.svc.Current().State))
	return true
}

// readLine waits for the next input line. It returns false at end of input
// or when ctx is done.
func (s *Shell) readLine(ctx context.Context, prompt bool) (string, bool) {
	s.startOnce.Do(func() {
		go s.scan(ctx)
	})
	if prompt {
		fmt.Fprint(s.out, s.opts.Prompt)
	}
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

// scan feeds input lines to s.lines until end of input or ctx is done.
func (s *Shell) scan(ctx context.Context) {
	defer close(s.lines)
	for s.scanner.Scan() {
		select {
		case s.lines <- s.scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	s.readErr = s.scanner.Err()
}

func (s *Shell) help() {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	s.println("Available commands:")
	for _, name := range names {
		s.printf("    %s\n", s.commands[name].usage)
	}
	s.println("    HELP")
	s.println("    EXIT")
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// splitNameAndID treats the last argument as a video ID and the rest as a
// playlist name.
func splitNameAndID(args []string) (name, videoID string) {
	return strings.Join(args[:len(args)-1], " "), args[len(args)-1]
}
