// Package main provides the vidbox entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/osa030/vidbox/internal/app/library"
	"github.com/osa030/vidbox/internal/app/player"
	"github.com/osa030/vidbox/internal/app/shell"
	"github.com/osa030/vidbox/internal/infra/config"
	"github.com/osa030/vidbox/internal/infra/logger"
	"github.com/osa030/vidbox/internal/infra/metrics"
	"github.com/osa030/vidbox/internal/infra/videofile"
)

var (
	app         = kingpin.New("vidbox", "vidbox video player shell")
	configPath  = app.Flag("config", "Path to config file (optional)").String()
	catalogPath = app.Flag("catalog", "Path to the video catalog (overrides config)").String()
	verbose     = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile     = app.Flag("logfile", "Path to log file (default: stderr)").String()

	listVideosCmd   = app.Command("list-videos", "Print the catalog and exit")
	checkCatalogCmd = app.Command("check-catalog", "Validate the catalog and exit")
)

func init() {
	// shell command (default)
	app.Command("shell", "Start the interactive shell (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	closer, err := logger.Init(logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closer.Close()

	if err := run(command, cfg); err != nil {
		zlog.Error().Msgf("vidbox error: %v", err)
		closer.Close()
		os.Exit(1)
	}
}

// loadConfig loads the config file if given and applies command-line flags.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}

	// Override with command-line flags if specified
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logfile != "" {
		cfg.Log.Output = *logfile
	}
	return cfg, nil
}

func run(command string, cfg *config.Config) error {
	zlog.Info().Msgf("Loading catalog from %s", cfg.Catalog.Path)
	videos, err := videofile.Load(cfg.Catalog.Path, videofile.Format(cfg.Catalog.Format))
	if err != nil {
		return errors.Wrap(err, "failed to load catalog")
	}
	lib, err := library.New(videos)
	if err != nil {
		return errors.Wrap(err, "invalid catalog")
	}
	metrics.CatalogVideos.Set(float64(lib.Len()))
	zlog.Info().Msgf("catalog loaded: video_count=%d", lib.Len())

	switch command {
	case checkCatalogCmd.FullCommand():
		fmt.Printf("Catalog OK: %d videos\n", lib.Len())
		return nil
	case listVideosCmd.FullCommand():
		return listVideos(os.Stdout, lib)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr)
		go func() {
			zlog.Info().Msgf("Starting metrics server: addr=%s", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zlog.Error().Msgf("metrics server error: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zlog.Error().Msgf("metrics server shutdown error: %v", err)
			}
		}()
	}

	svc := player.NewService(lib)
	zlog.Debug().Msgf("session started: session_id=%s", svc.SessionID())

	sh := shell.New(svc, os.Stdin, os.Stdout, shell.Options{
		Prompt:      cfg.Shell.Prompt,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func listVideos(w io.Writer, lib *library.Library) error {
	for _, id := range lib.IDs() {
		v, err := lib.Get(id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v.String()); err != nil {
			return err
		}
	}
	return nil
}
