package output

import (
	"io"
	"time"

	"github.com/sdejongh/comparefiles/pkg/models"
)

// Report is what a formatter renders after a completed comparison
type Report struct {
	FileA    string
	FileB    string
	Result   models.ComparisonResult
	Duration time.Duration
	// ShowTiming adds the total compare time to the output
	ShowTiming bool
}

// Formatter defines the interface for output formatting
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Result renders a completed comparison
	Result(w io.Writer, report Report) error

	// InvalidInput renders a rejected input path
	InvalidInput(w io.Writer, err error) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for the given name ("human" or "json")
func New(name string) (Formatter, bool) {
	switch name {
	case "human", "":
		return NewHumanFormatter(), true
	case "json":
		return NewJSONFormatter(), true
	default:
		return nil, false
	}
}
