package output

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/sdejongh/comparefiles/pkg/compare"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct{}

// JSONResultData is the document written for a completed comparison
type JSONResultData struct {
	FileA      string `json:"file_a"`
	FileB      string `json:"file_b"`
	Identical  bool   `json:"identical"`
	Checksum   string `json:"checksum,omitempty"`
	Duration   string `json:"duration,omitempty"`
	DurationMs *int64 `json:"duration_ms,omitempty"`
}

// JSONErrorData is the document written for rejected input
type JSONErrorData struct {
	Error  string `json:"error"`
	Path   string `json:"path,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Result writes the comparison outcome as an indented JSON object
func (f *JSONFormatter) Result(w io.Writer, report Report) error {
	data := JSONResultData{
		FileA: report.FileA,
		FileB: report.FileB,
	}
	if digest, ok := report.Result.Digest(); ok {
		data.Identical = true
		data.Checksum = digest.String()
	}
	if report.ShowTiming {
		ms := report.Duration.Milliseconds()
		data.Duration = report.Duration.Round(time.Millisecond).String()
		data.DurationMs = &ms
	}
	return encode(w, data)
}

// InvalidInput writes the rejected path and failed condition
func (f *JSONFormatter) InvalidInput(w io.Writer, err error) error {
	data := JSONErrorData{Error: err.Error()}
	var invalid *compare.InvalidInputError
	if errors.As(err, &invalid) {
		data.Path = invalid.Path
		data.Reason = string(invalid.Reason)
	}
	return encode(w, data)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
