package gateway

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"coffee-insights/internal/domain"
)

// KaggleFetcher downloads dataset archives from the Kaggle public API.
type KaggleFetcher struct {
	client   *resty.Client
	baseURL  string
	username string
	key      string
	logger   *zap.Logger
}

// KaggleOptions configures a KaggleFetcher.
type KaggleOptions struct {
	BaseURL  string
	Username string
	Key      string
	Timeout  time.Duration
}

// NewKaggleFetcher creates a fetcher. Credentials are optional; public
// datasets can be downloaded anonymously.
func NewKaggleFetcher(opts KaggleOptions, logger *zap.Logger) *KaggleFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)

	return &KaggleFetcher{
		client:   client,
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		username: opts.Username,
		key:      opts.Key,
		logger:   logger,
	}
}

// Fetch downloads the archive of dataset ("owner/slug"), extracts fileName into
// destDir and returns the path of the extracted file.
func (f *KaggleFetcher) Fetch(ctx context.Context, dataset, fileName, destDir string) (string, error) {
	owner, slug, ok := strings.Cut(dataset, "/")
	if !ok || owner == "" || slug == "" {
		return "", fmt.Errorf("invalid dataset identifier %q, expected owner/slug", dataset)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", destDir, err)
	}

	archivePath := filepath.Join(destDir, slug+".zip")
	url := fmt.Sprintf("%s/datasets/download/%s/%s", f.baseURL, owner, slug)

	req := f.client.R().SetContext(ctx).SetOutput(archivePath)
	if f.username != "" && f.key != "" {
		req.SetBasicAuth(f.username, f.key)
	}

	f.logger.Info("downloading dataset", zap.String("dataset", dataset), zap.String("url", url))
	resp, err := req.Get(url)
	if err != nil {
		os.Remove(archivePath)
		return "", fmt.Errorf("%w: downloading %s: %w", domain.ErrNetworkFailure, dataset, err)
	}
	if resp.IsError() {
		os.Remove(archivePath)
		return "", fmt.Errorf("%w: downloading %s: unexpected status %d", domain.ErrNetworkFailure, dataset, resp.StatusCode())
	}
	defer os.Remove(archivePath)

	target := filepath.Join(destDir, fileName)
	if err := extractFile(archivePath, fileName, target); err != nil {
		return "", err
	}

	f.logger.Info("dataset extracted",
		zap.String("dataset", dataset),
		zap.String("path", target),
		zap.Duration("elapsed", resp.Time()),
	)
	return target, nil
}

// extractFile copies the archive member whose base name is fileName to target.
func extractFile(archivePath, fileName, target string) error {
	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open dataset archive %s: %w", archivePath, err)
	}
	defer archive.Close()

	for _, member := range archive.File {
		if member.FileInfo().IsDir() || path.Base(member.Name) != fileName {
			continue
		}

		src, err := member.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s in archive: %w", member.Name, err)
		}
		defer src.Close()

		dst, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", target, err)
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return fmt.Errorf("failed to extract %s: %w", member.Name, err)
		}
		return dst.Close()
	}
	return fmt.Errorf("%w: %s not found in dataset archive", domain.ErrMissingFile, fileName)
}
