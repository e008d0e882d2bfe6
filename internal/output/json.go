package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs the run summary as indented JSON, for scripts and
// agents consuming the tool.
type JSONFormatter struct{}

// FormatSummary writes the summary as a JSON object.
func (f *JSONFormatter) FormatSummary(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
