package evesource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/evesource"
)

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/eve.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"proto":"TCP"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	data, err := evesource.NewHTTPSource(srv.URL+"/eve.json", srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"proto":"TCP"}]`, string(data))

	_, err = evesource.NewHTTPSource(srv.URL+"/missing.json", srv.Client()).Fetch(context.Background())
	assert.ErrorIs(t, err, evesource.ErrBadStatus)
}

func TestHTTPSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := evesource.NewHTTPSource(srv.URL, srv.Client()).Fetch(ctx)
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eve.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	data, err := evesource.NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = evesource.NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Fetch(context.Background())
	assert.Error(t, err)
}

func TestNewAlertSource(t *testing.T) {
	cfg := &config.Config{}
	_, err := evesource.NewAlertSource(cfg)
	assert.Error(t, err)

	cfg.AlertSource.File = "/tmp/eve.json"
	src, err := evesource.NewAlertSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/eve.json", src.Name())

	cfg.AlertSource.URL = "http://localhost/eve.json"
	src, err = evesource.NewAlertSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/eve.json", src.Name())
}
