package favicon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/bnema/webdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

// iconServer serves a 16x24 PNG for every host except "missing.example".
func iconServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	icon := pngBytes(t, 16, 24)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("domain") == "missing.example" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(icon)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestService(t *testing.T, srv *httptest.Server) *Service {
	t.Helper()
	s := NewService(filepath.Join(t.TempDir(), "favicons"), 32)
	s.fetcher.endpoint = srv.URL
	return s
}

func TestService_IconPath_DownloadsAndNormalizes(t *testing.T) {
	ctx := testCtx()
	var hits atomic.Int32
	s := newTestService(t, iconServer(t, &hits))

	path, err := s.IconPath(ctx, "notion.so")
	require.NoError(t, err)
	assert.Equal(t, "notion.so.png", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	w, h := decodeSize(t, data)
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)

	// Second call is served from disk.
	again, err := s.IconPath(ctx, "notion.so")
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), hits.Load())
}

func TestService_IconPath_UnknownHost(t *testing.T) {
	var hits atomic.Int32
	s := newTestService(t, iconServer(t, &hits))

	path, err := s.IconPath(testCtx(), "missing.example")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestService_IconPath_NoDiskCache(t *testing.T) {
	s := NewService("", 32)

	path, err := s.IconPath(testCtx(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestService_Prefetch(t *testing.T) {
	ctx := testCtx()
	var hits atomic.Int32
	s := newTestService(t, iconServer(t, &hits))

	hosts := []string{"a.example", "b.example", "a.example", "", "missing.example", "c.example"}
	s.Prefetch(ctx, hosts)

	assert.Equal(t, int32(4), hits.Load(), "duplicates and blanks are skipped")
	assert.Equal(t, 3, s.Cached())
	for _, h := range []string{"a.example", "b.example", "c.example"} {
		assert.True(t, s.cache.HasOnDisk(h), h)
	}
}

func TestService_Get_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	s := NewService(t.TempDir(), 32)
	s.fetcher.endpoint = srv.URL

	data, err := s.Get(testCtx(), "example.com")
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestNormalizePNG(t *testing.T) {
	t.Run("crops and scales", func(t *testing.T) {
		out, err := NormalizePNG(pngBytes(t, 40, 10), 16)
		require.NoError(t, err)
		w, h := decodeSize(t, out)
		assert.Equal(t, 16, w)
		assert.Equal(t, 16, h)
	})

	t.Run("keeps matching png", func(t *testing.T) {
		in := pngBytes(t, 16, 16)
		out, err := NormalizePNG(in, 16)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("rejects non-image", func(t *testing.T) {
		_, err := NormalizePNG([]byte("<html>"), 16)
		assert.Error(t, err)
	})
}

func TestCache_MemoryAndDisk(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir)

	require.NoError(t, c.Set("example.com", []byte("png")))
	assert.True(t, c.HasOnDisk("example.com"))

	// A fresh cache over the same dir reads from disk.
	fresh := NewCache(dir)
	data, ok := fresh.Get("example.com")
	require.True(t, ok)
	assert.Equal(t, []byte("png"), data)
	assert.Equal(t, 1, fresh.Size())

	_, ok = fresh.Get("other.com")
	assert.False(t, ok)
}
