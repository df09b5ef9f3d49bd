package gateway

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"coffee-insights/internal/domain"
)

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestKaggleFetcher_Fetch(t *testing.T) {
	archive := zipArchive(t, map[string]string{
		"README.md":              "coffee",
		"nested/Coffe_sales.csv": rawSales,
	})

	var gotPath, gotUser, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotKey, _ = r.BasicAuth()
		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	}))
	defer server.Close()

	fetcher := NewKaggleFetcher(KaggleOptions{
		BaseURL:  server.URL + "/api/v1/",
		Username: "barista",
		Key:      "secret",
		Timeout:  5 * time.Second,
	}, zaptest.NewLogger(t))

	dir := t.TempDir()
	path, err := fetcher.Fetch(context.Background(), "sidraaazam/coffee-sales-insights-report", "Coffe_sales.csv", dir)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/datasets/download/sidraaazam/coffee-sales-insights-report", gotPath)
	assert.Equal(t, "barista", gotUser)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, filepath.Join(dir, "Coffe_sales.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rawSales, string(content))

	_, err = os.Stat(filepath.Join(dir, "coffee-sales-insights-report.zip"))
	assert.True(t, os.IsNotExist(err), "archive should be removed after extraction")
}

func TestKaggleFetcher_FetchErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := NewKaggleFetcher(KaggleOptions{BaseURL: server.URL, Timeout: time.Second}, nil)
		_, err := fetcher.Fetch(ctx, "owner/slug", "Coffe_sales.csv", t.TempDir())
		assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	})

	t.Run("unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		fetcher := NewKaggleFetcher(KaggleOptions{BaseURL: url, Timeout: time.Second}, nil)
		_, err := fetcher.Fetch(ctx, "owner/slug", "Coffe_sales.csv", t.TempDir())
		assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	})

	t.Run("file absent from archive", func(t *testing.T) {
		archive := zipArchive(t, map[string]string{"other.csv": "a,b\n1,2\n"})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(archive)
		}))
		defer server.Close()

		fetcher := NewKaggleFetcher(KaggleOptions{BaseURL: server.URL, Timeout: time.Second}, nil)
		_, err := fetcher.Fetch(ctx, "owner/slug", "Coffe_sales.csv", t.TempDir())
		assert.ErrorIs(t, err, domain.ErrMissingFile)
	})

	t.Run("invalid dataset identifier", func(t *testing.T) {
		fetcher := NewKaggleFetcher(KaggleOptions{BaseURL: "http://127.0.0.1:1"}, nil)
		_, err := fetcher.Fetch(ctx, "coffee", "Coffe_sales.csv", t.TempDir())
		assert.Error(t, err)
	})
}
