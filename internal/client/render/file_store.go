package render

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/marketplace/invoicing/internal/interfaces"
)

// FileArtifactStore writes artifacts below a local directory. Used by the local stage and the CLI.
type FileArtifactStore struct {
	root    string
	baseURL string
}

var _ interfaces.ArtifactStore = (*FileArtifactStore)(nil)

// NewFileArtifactStore stores artifacts under root. When baseURL is empty, file:// URLs are returned.
func NewFileArtifactStore(root, baseURL string) *FileArtifactStore {
	return &FileArtifactStore{root: root, baseURL: baseURL}
}

// Put writes body to root/key and returns its URL.
func (s *FileArtifactStore) Put(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
