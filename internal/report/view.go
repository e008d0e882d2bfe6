package report

import "github.com/jsfix-ci/gherkin-detailer/internal/gherkin"

// TemplatesView is the transient view-model merged into the report
// templates. Built fresh per report generation; nothing persists.
type TemplatesView struct {
	// Date is the generation date, YYYY/MM/DD with zero-padded month and day.
	Date string

	// Time is the generation time, HH:MM:SS, 24-hour, zero-padded.
	Time string

	// RunID identifies this report generation.
	RunID string

	// List is the Gherkin sequence produced for this run, assigned as-is.
	List []gherkin.Gherkin

	// Meta and Footer carry the raw partial strings merged onto the view;
	// the renderer substitutes them positionally in the page shell.
	Meta   string
	Footer string
}
