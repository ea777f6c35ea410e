package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local is a filesystem-based storage backend
type Local struct {
	rootPath string
}

// NewLocal creates a local backend rooted at rootPath.
// Paths passed to the backend are joined onto the root.
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// NewLocalFS creates an unrooted local backend.
// Paths are used as given, relative to the working directory.
func NewLocalFS() *Local {
	return &Local{}
}

func (l *Local) resolve(path string) string {
	if l.rootPath == "" {
		return path
	}
	return filepath.Join(l.rootPath, path)
}

// Lstat returns file metadata without following symbolic links
func (l *Local) Lstat(ctx context.Context, path string) (*FileInfo, error) {
	fullPath := l.resolve(path)

	info, err := os.Lstat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return newFileInfo(fullPath, info), nil
}

// Read opens a file for reading
func (l *Local) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
