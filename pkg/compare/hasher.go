package compare

import (
	"context"
	"crypto/md5"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sdejongh/comparefiles/pkg/models"
	"github.com/sdejongh/comparefiles/pkg/storage"
)

const (
	// DefaultPrefixSize is the number of leading bytes hashed by the prefix check
	DefaultPrefixSize = 1024
	// DefaultBlockSize is the read size of the full pass, a multiple of the
	// 64-byte MD5 block
	DefaultBlockSize = 8192
)

// ReaderWrapper wraps every file opened for hashing (progress bars, I/O accounting)
type ReaderWrapper func(path string, rc io.ReadCloser) io.ReadCloser

// ProgressFunc receives the bytes hashed so far during a full pass
type ProgressFunc func(path string, current, total int64)

// Hasher computes MD5 digests of file prefixes and full contents
type Hasher struct {
	backend        storage.Backend
	blockSize      int
	bufferPool     *sync.Pool
	progressReport ProgressFunc
	readerWrapper  ReaderWrapper
}

// NewHasher creates a hasher reading through backend in blocks of blockSize bytes.
// A blockSize below 1 selects DefaultBlockSize.
func NewHasher(backend storage.Backend, blockSize int) *Hasher {
	if blockSize < 1 {
		blockSize = DefaultBlockSize
	}
	return &Hasher{
		backend:   backend,
		blockSize: blockSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, blockSize)
				return &buf
			},
		},
	}
}

// BlockSize returns the read size of the full pass
func (h *Hasher) BlockSize() int {
	return h.blockSize
}

// SetProgressCallback sets a callback for progress reporting during full passes
func (h *Hasher) SetProgressCallback(callback ProgressFunc) {
	h.progressReport = callback
}

// SetReaderWrapper sets a function to wrap readers
func (h *Hasher) SetReaderWrapper(wrapper ReaderWrapper) {
	h.readerWrapper = wrapper
}

func (h *Hasher) open(ctx context.Context, path string) (io.ReadCloser, error) {
	reader, err := h.backend.Read(ctx, path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	if h.readerWrapper != nil {
		reader = h.readerWrapper(path, reader)
	}
	return reader, nil
}

// HashPrefix computes the MD5 of the first numBytes bytes of the file, or of
// the whole file when it is shorter
func (h *Hasher) HashPrefix(ctx context.Context, path string, numBytes int64) (models.Digest, error) {
	reader, err := h.open(ctx, path)
	if err != nil {
		return models.Digest{}, err
	}
	defer reader.Close()

	hash := md5.New()
	bufPtr := h.bufferPool.Get().(*[]byte)
	defer h.bufferPool.Put(bufPtr)
	buf := *bufPtr

	var bytesRead int64
	for bytesRead < numBytes {
		chunk := buf
		if remaining := numBytes - bytesRead; remaining < int64(len(chunk)) {
			chunk = chunk[:remaining]
		}

		n, err := reader.Read(chunk)
		if n > 0 {
			hash.Write(chunk[:n])
			bytesRead += int64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.Digest{}, &FileAccessError{Path: path, Op: "read", Err: err}
		}
	}

	return models.DigestFromSum(hash.Sum(nil)), nil
}

// HashFull computes the MD5 of the entire file, streamed in fixed-size blocks
func (h *Hasher) HashFull(ctx context.Context, path string) (models.Digest, error) {
	var fileSize int64
	if h.progressReport != nil {
		info, err := h.backend.Lstat(ctx, path)
		if err != nil {
			return models.Digest{}, &FileAccessError{Path: path, Op: "stat", Err: err}
		}
		fileSize = info.Size
	}

	reader, err := h.open(ctx, path)
	if err != nil {
		return models.Digest{}, err
	}
	defer reader.Close()

	hash := md5.New()
	bufPtr := h.bufferPool.Get().(*[]byte)
	defer h.bufferPool.Put(bufPtr)
	buf := *bufPtr

	// Progress reporting with throttling
	const (
		progressReportInterval = 50 * time.Millisecond
		progressReportBytes    = 64 * 1024
	)

	var bytesRead int64
	var lastReported int64
	var lastReportTime time.Time

	for {
		n, err := reader.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
			bytesRead += int64(n)

			if h.progressReport != nil &&
				(bytesRead-lastReported >= progressReportBytes || time.Since(lastReportTime) >= progressReportInterval) {
				h.progressReport(path, bytesRead, fileSize)
				lastReported = bytesRead
				lastReportTime = time.Now()
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.Digest{}, &FileAccessError{Path: path, Op: "read", Err: err}
		}
	}

	// Final report so consumers always see completion
	if h.progressReport != nil && (bytesRead > lastReported || bytesRead == 0) {
		h.progressReport(path, bytesRead, fileSize)
	}

	return models.DigestFromSum(hash.Sum(nil)), nil
}
