package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// Billy adapts a go-billy filesystem (osfs, memfs, chroot, ...) to Backend
type Billy struct {
	fs billy.Filesystem
}

// NewBilly wraps the given billy filesystem
func NewBilly(fs billy.Filesystem) *Billy {
	return &Billy{fs: fs}
}

// Lstat returns file metadata without following symbolic links
func (b *Billy) Lstat(ctx context.Context, path string) (*FileInfo, error) {
	info, err := b.fs.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("billy: lstat %q: %w", path, err)
	}
	return newFileInfo(b.fs.Join(b.fs.Root(), path), info), nil
}

// Read opens a file for reading
func (b *Billy) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := b.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", path, err)
	}
	return f, nil
}

// Close is a no-op; the wrapped filesystem owns no handles
func (b *Billy) Close() error {
	return nil
}
