package output

import (
	"fmt"
	"io"
)

// PlainFormatter outputs the run summary without any terminal styling.
type PlainFormatter struct{}

// FormatSummary writes one line per summary field.
func (f *PlainFormatter) FormatSummary(w io.Writer, s *Summary) error {
	_, err := fmt.Fprintf(w, "report: %s\nsource: %s\nfeatures: %d\nscenarios: %d\nsteps: %d\nrun: %s\n",
		s.ReportFolder, s.SourceFolder, s.Features, s.Scenarios, s.Steps, s.RunID)
	return err
}
