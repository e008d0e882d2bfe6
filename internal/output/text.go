package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// TextFormatter renders a styled terminal summary. It is the default.
type TextFormatter struct{}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	countStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// FormatSummary writes the run summary with counts and the report location.
func (f *TextFormatter) FormatSummary(w io.Writer, s *Summary) error {
	_, err := fmt.Fprintf(w, "%s %s\n  %s features, %s scenarios, %s steps\n  %s\n",
		titleStyle.Render("report written to"),
		s.ReportFolder,
		countStyle.Render(fmt.Sprintf("%d", s.Features)),
		countStyle.Render(fmt.Sprintf("%d", s.Scenarios)),
		countStyle.Render(fmt.Sprintf("%d", s.Steps)),
		faintStyle.Render(fmt.Sprintf("run %s in %s", s.RunID, s.Duration)),
	)
	return err
}
