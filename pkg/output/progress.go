package output

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/cheggaaa/pb/v3"
)

// Progress renders one byte-counting bar per full hashing pass.
// Its Update method fits compare.ProgressFunc.
type Progress struct {
	writer io.Writer

	mu      sync.Mutex
	current *pb.ProgressBar
	path    string
}

// NewProgress creates a progress renderer writing to w
func NewProgress(w io.Writer) *Progress {
	return &Progress{writer: w}
}

// Update advances the bar for path, starting a new bar when path changes
// or a new pass over the same path begins
func (p *Progress) Update(path string, current, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && (p.path != path || current < p.current.Current()) {
		p.current.Finish()
		p.current = nil
	}

	if p.current == nil {
		bar := pb.New64(total)
		bar.Set(pb.Bytes, true)
		bar.Set("prefix", filepath.Base(path)+" ")
		bar.SetWriter(p.writer)
		p.current = bar.Start()
		p.path = path
	}

	p.current.SetCurrent(current)
	if total > 0 && current >= total {
		p.current.Finish()
		p.current = nil
	}
}

// Stop finishes any bar still running
func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Finish()
		p.current = nil
	}
}
