package storage

import (
	"context"
	"io"
	"io/fs"
	"time"
)

// FileInfo represents metadata about a file, as reported without following
// symbolic links
type FileInfo struct {
	Path        string
	Size        int64
	ModTime     time.Time
	IsDir       bool
	IsSymlink   bool
	Permissions uint32
}

// IsRegular reports whether the entry is a plain file
func (fi *FileInfo) IsRegular() bool {
	return !fi.IsDir && !fi.IsSymlink
}

// Backend defines the read-only storage operations needed to compare files
// Implementations include the local filesystem and any go-billy filesystem
type Backend interface {
	// Lstat returns file metadata without following symbolic links.
	// A missing file yields an error matching fs.ErrNotExist.
	Lstat(ctx context.Context, path string) (*FileInfo, error)

	// Read opens a file for sequential reading from offset 0
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Close releases any resources held by the backend
	Close() error
}

func newFileInfo(path string, info fs.FileInfo) *FileInfo {
	return &FileInfo{
		Path:        path,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		IsDir:       info.IsDir(),
		IsSymlink:   info.Mode()&fs.ModeSymlink != 0,
		Permissions: uint32(info.Mode().Perm()),
	}
}
