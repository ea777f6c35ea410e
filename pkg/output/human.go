package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

const (
	identicalMessage    = "The files are identical, and their shared checksum is: "
	notIdenticalMessage = "The files are not the same."
	invalidInputMessage = "One or more of the files provided either do not exist or are links or are directories"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	match   *color.Color
	noMatch *color.Color
	problem *color.Color
}

// NewHumanFormatter creates a new human-readable formatter.
// Colors are dropped automatically when the output is not a terminal.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		match:   color.New(color.FgGreen),
		noMatch: color.New(color.FgYellow),
		problem: color.New(color.FgRed),
	}
}

// Result prints the comparison outcome and, if requested, the elapsed time
func (f *HumanFormatter) Result(w io.Writer, report Report) error {
	var err error
	if digest, ok := report.Result.Digest(); ok {
		_, err = f.match.Fprintln(w, identicalMessage+digest.String())
	} else {
		_, err = f.noMatch.Fprintln(w, notIdenticalMessage)
	}
	if err != nil {
		return err
	}

	if report.ShowTiming {
		_, err = fmt.Fprintf(w, "\nTotal compare time: %s\n", formatDuration(report.Duration))
	}
	return err
}

// InvalidInput prints the fixed diagnostic for rejected paths
func (f *HumanFormatter) InvalidInput(w io.Writer, err error) error {
	_, werr := f.problem.Fprintln(w, invalidInputMessage)
	return werr
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// formatDuration renders d as "H hours, MM minutes, SS seconds"
func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d hours, %02d minutes, %02d seconds", hours, minutes, seconds)
}
