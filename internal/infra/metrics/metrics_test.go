package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsTotal(t *testing.T) {
	before := testutil.ToFloat64(CommandsTotal.WithLabelValues("play", "success"))
	CommandsTotal.WithLabelValues("play", "success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(CommandsTotal.WithLabelValues("play", "success")))
}

func TestNewServer_ExposesMetrics(t *testing.T) {
	CatalogVideos.Set(5)

	srv := NewServer(":0")
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "vidbox_catalog_videos 5")
}
