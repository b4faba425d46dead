// Package metrics provides Prometheus metrics for the player.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Shell metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidbox_commands_total",
			Help: "Total number of shell commands by result code",
		},
		[]string{"command", "code"},
	)
)

// Player metrics
var (
	Playlists = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidbox_playlists",
			Help: "Number of playlists in the current session",
		},
	)

	PlaybackState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidbox_playback_state",
			Help: "Current playback state (0=stopped, 1=playing, 2=paused)",
		},
	)

	CatalogVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidbox_catalog_videos",
			Help: "Number of videos loaded into the catalog",
		},
	)
)

// NewServer returns an HTTP server exposing /metrics on addr.
// It accepts HTTP/2 cleartext as well as HTTP/1.1.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
