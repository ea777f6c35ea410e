package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/sdejongh/comparefiles/pkg/compare"
	"github.com/sdejongh/comparefiles/pkg/models"
)

func init() {
	color.NoColor = true
}

func helloDigest(t *testing.T) models.Digest {
	t.Helper()
	d, err := models.ParseDigest("5eb63bbbe01eeed093cb22bb8f5acdc3")
	if err != nil {
		t.Fatalf("ParseDigest() error = %v", err)
	}
	return d
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"human", "human", true},
		{"", "human", true},
		{"json", "json", true},
		{"xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := New(tt.name)
			if ok != tt.ok {
				t.Fatalf("New(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && f.Name() != tt.want {
				t.Errorf("Name() = %s, want %s", f.Name(), tt.want)
			}
		})
	}
}

func TestHumanFormatter(t *testing.T) {
	f := NewHumanFormatter()

	t.Run("Match", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Result(&buf, Report{Result: models.Match(helloDigest(t))}); err != nil {
			t.Fatalf("Result() error = %v", err)
		}
		want := "The files are identical, and their shared checksum is: 5eb63bbbe01eeed093cb22bb8f5acdc3\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Result(&buf, Report{Result: models.NoMatch()}); err != nil {
			t.Fatalf("Result() error = %v", err)
		}
		if buf.String() != "The files are not the same.\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("Timing", func(t *testing.T) {
		var buf bytes.Buffer
		report := Report{
			Result:     models.NoMatch(),
			Duration:   time.Hour + 2*time.Minute + 3*time.Second + 400*time.Millisecond,
			ShowTiming: true,
		}
		if err := f.Result(&buf, report); err != nil {
			t.Fatalf("Result() error = %v", err)
		}
		if !strings.HasSuffix(buf.String(), "\nTotal compare time: 1 hours, 02 minutes, 03 seconds\n") {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		var buf bytes.Buffer
		err := &compare.InvalidInputError{Path: "x", Reason: compare.ReasonIsDir}
		if werr := f.InvalidInput(&buf, err); werr != nil {
			t.Fatalf("InvalidInput() error = %v", werr)
		}
		want := "One or more of the files provided either do not exist or are links or are directories\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()

	t.Run("Match", func(t *testing.T) {
		var buf bytes.Buffer
		report := Report{FileA: "a", FileB: "b", Result: models.Match(helloDigest(t))}
		if err := f.Result(&buf, report); err != nil {
			t.Fatalf("Result() error = %v", err)
		}

		var data JSONResultData
		if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if !data.Identical || data.Checksum != "5eb63bbbe01eeed093cb22bb8f5acdc3" {
			t.Errorf("data = %+v", data)
		}
		if data.FileA != "a" || data.FileB != "b" {
			t.Errorf("paths = %s, %s", data.FileA, data.FileB)
		}
		if data.DurationMs != nil {
			t.Error("duration should be omitted without timing")
		}
	})

	t.Run("NoMatchWithTiming", func(t *testing.T) {
		var buf bytes.Buffer
		report := Report{Result: models.NoMatch(), Duration: 1500 * time.Millisecond, ShowTiming: true}
		if err := f.Result(&buf, report); err != nil {
			t.Fatalf("Result() error = %v", err)
		}

		var data JSONResultData
		if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if data.Identical || data.Checksum != "" {
			t.Errorf("data = %+v, want no match", data)
		}
		if data.DurationMs == nil || *data.DurationMs != 1500 {
			t.Errorf("DurationMs = %v, want 1500", data.DurationMs)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		var buf bytes.Buffer
		err := &compare.InvalidInputError{Path: "link", Reason: compare.ReasonIsSymlink}
		if werr := f.InvalidInput(&buf, err); werr != nil {
			t.Fatalf("InvalidInput() error = %v", werr)
		}

		var data JSONErrorData
		if jerr := json.Unmarshal(buf.Bytes(), &data); jerr != nil {
			t.Fatalf("invalid JSON: %v", jerr)
		}
		if data.Path != "link" || data.Reason != "is a symbolic link" {
			t.Errorf("data = %+v", data)
		}
	})

	t.Run("OtherError", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.InvalidInput(&buf, errors.New("boom")); err != nil {
			t.Fatalf("InvalidInput() error = %v", err)
		}
		if !strings.Contains(buf.String(), `"error": "boom"`) {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 hours, 00 minutes, 00 seconds"},
		{59*time.Second + 999*time.Millisecond, "0 hours, 00 minutes, 59 seconds"},
		{61 * time.Second, "0 hours, 01 minutes, 01 seconds"},
		{25 * time.Hour, "25 hours, 00 minutes, 00 seconds"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// syncBuffer guards a bytes.Buffer written by the bar's refresh goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgress(t *testing.T) {
	var out syncBuffer
	p := NewProgress(&out)

	p.Update("/tmp/a.bin", 100, 200)
	p.Update("/tmp/a.bin", 200, 200)
	p.Update("/tmp/b.bin", 50, 200)
	p.Stop()

	s := out.String()
	if !strings.Contains(s, "a.bin") || !strings.Contains(s, "b.bin") {
		t.Errorf("progress output should name both files, got %q", s)
	}
}
