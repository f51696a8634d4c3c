package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a key has no file behind it.
var ErrNotFound = errors.New("storage: not found")

// FileStore serves project media from the local filesystem. Media references
// such as "/assets/proj1-1.jpg" map to files below basePath.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath, creating it if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Open returns the file stored under key. Directories are reported as not found.
func (s *FileStore) Open(ctx context.Context, key string) (*os.File, fs.FileInfo, error) {
	if s == nil {
		return nil, nil, errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, cleanKey)
		}
		return nil, nil, fmt.Errorf("storage: open: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("storage: stat: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, cleanKey)
	}
	return f, info, nil
}

// Handler serves files by the request path with prefix stripped.
func (s *FileStore) Handler(prefix string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, prefix)
		f, info, err := s.Open(r.Context(), key)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.ToSlash(filepath.Clean(key))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
