// Package output provides formatters for the run summary printed after a
// report generation.
package output

import (
	"io"
	"time"
)

// Summary describes one completed report generation.
type Summary struct {
	RunID        string        `json:"run_id"`
	SourceFolder string        `json:"source_folder"`
	ReportFolder string        `json:"report_folder"`
	Features     int           `json:"features"`
	Scenarios    int           `json:"scenarios"`
	Steps        int           `json:"steps"`
	Duration     time.Duration `json:"duration_ns"`
}

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns all valid format values.
func ValidFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatPlain}
}

// IsValid checks if the format is a valid output format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatPlain:
		return true
	default:
		return false
	}
}

// Formatter outputs a run summary in a particular format.
type Formatter interface {
	FormatSummary(w io.Writer, s *Summary) error
}

// New creates a formatter for the specified format.
func New(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatPlain:
		return &PlainFormatter{}
	case FormatText:
		fallthrough
	default:
		return &TextFormatter{}
	}
}
