package gherkin

import "strings"

// parseState is the explicit state of the line analyzer.
type parseState int

const (
	seekingFeature parseState = iota
	inFeature
	inScenario
	inStep
	inDataTable
	inExamples
)

// Keyword prefixes recognized by the analyzer.
const (
	featurePrefix    = "Feature:"
	scenarioPrefix   = "Scenario:"
	outlinePrefix    = "Scenario Outline:"
	backgroundPrefix = "Background:"
	examplesPrefix   = "Examples:"
)

// accumulator carries the parse-in-progress state threaded through the
// line loop.
type accumulator struct {
	state       parseState
	gherkin     Gherkin
	pendingTags []string
	seen        map[string]bool
}

// Parse classifies an ordered sequence of feature-file lines into a
// Gherkin. Parsing is tolerant: unrecognized lines are skipped, and input
// with no Feature: line yields an empty-name Gherkin rather than an error,
// so one malformed file never blocks reporting on the rest of the batch.
func Parse(lines []string) Gherkin {
	acc := accumulator{state: seekingFeature, seen: make(map[string]bool)}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// Blank and comment lines never change state.
		case strings.HasPrefix(line, "@"):
			acc.collectTags(line)
		case strings.HasPrefix(line, featurePrefix):
			acc.startFeature(line)
		case strings.HasPrefix(line, outlinePrefix):
			acc.startScenario(strings.TrimPrefix(line, outlinePrefix), true)
		case strings.HasPrefix(line, scenarioPrefix):
			acc.startScenario(strings.TrimPrefix(line, scenarioPrefix), false)
		case strings.HasPrefix(line, backgroundPrefix):
			acc.startScenario(backgroundName(line), false)
		case strings.HasPrefix(line, examplesPrefix):
			acc.startExamples()
		case strings.HasPrefix(line, "|"):
			acc.appendRow(line)
		default:
			if kw, text, ok := matchStep(line); ok {
				acc.appendStep(kw, text)
			}
			// Anything else is tolerated prose; no state change.
		}
	}
	return acc.gherkin
}

// GetGherkins applies Parse to each file's line sequence, preserving file
// order. This is the batch entry point the reporter calls.
func GetGherkins(rowsPerFile [][]string) []Gherkin {
	gherkins := make([]Gherkin, 0, len(rowsPerFile))
	for _, rows := range rowsPerFile {
		gherkins = append(gherkins, Parse(rows))
	}
	return gherkins
}

// collectTags accumulates @-labels; they attach at the next feature or
// scenario line.
func (a *accumulator) collectTags(line string) {
	for _, field := range strings.Fields(line) {
		if strings.HasPrefix(field, "@") && len(field) > 1 {
			a.pendingTags = append(a.pendingTags, field)
		}
	}
}

// startFeature sets the feature name once; later Feature: lines are
// treated as unrecognized prose (first one wins).
func (a *accumulator) startFeature(line string) {
	if a.state != seekingFeature {
		return
	}
	a.gherkin.Name = strings.TrimSpace(strings.TrimPrefix(line, featurePrefix))
	a.attachPendingTags()
	a.state = inFeature
}

func (a *accumulator) startScenario(name string, outline bool) {
	if a.state == seekingFeature {
		// Scenario before any Feature: line; tolerated, feature stays unnamed.
		a.state = inFeature
	}
	a.gherkin.Scenarios = append(a.gherkin.Scenarios, Scenario{
		Name:    strings.TrimSpace(name),
		Outline: outline,
	})
	a.attachPendingTags()
	a.state = inScenario
}

func (a *accumulator) startExamples() {
	if a.currentScenario() == nil {
		return
	}
	a.state = inExamples
}

func (a *accumulator) appendStep(keyword StepKeyword, text string) {
	sc := a.currentScenario()
	if sc == nil {
		// A step with no scenario to hold it; skip, tolerant parsing.
		return
	}
	sc.Steps = append(sc.Steps, Step{Keyword: keyword, Text: text})
	a.state = inStep
}

// appendRow attaches a pipe-delimited row to the Examples table when the
// analyzer is in an Examples section, otherwise to the most recently
// appended step.
func (a *accumulator) appendRow(line string) {
	sc := a.currentScenario()
	if sc == nil {
		return
	}
	row := splitTableRow(line)
	if a.state == inExamples {
		sc.Examples = append(sc.Examples, row)
		return
	}
	if len(sc.Steps) == 0 {
		return
	}
	step := &sc.Steps[len(sc.Steps)-1]
	step.Table = append(step.Table, row)
	a.state = inDataTable
}

func (a *accumulator) attachPendingTags() {
	for _, tag := range a.pendingTags {
		if !a.seen[tag] {
			a.seen[tag] = true
			a.gherkin.Tags = append(a.gherkin.Tags, tag)
		}
	}
	a.pendingTags = nil
}

func (a *accumulator) currentScenario() *Scenario {
	if len(a.gherkin.Scenarios) == 0 {
		return nil
	}
	return &a.gherkin.Scenarios[len(a.gherkin.Scenarios)-1]
}

// matchStep reports whether the line begins with a step keyword followed
// by step text. The keyword is kept exactly as written.
func matchStep(line string) (StepKeyword, string, bool) {
	for _, kw := range StepKeywords() {
		prefix := string(kw) + " "
		if strings.HasPrefix(line, prefix) {
			return kw, strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
		if line == string(kw) {
			return kw, "", true
		}
	}
	return "", "", false
}

// splitTableRow splits a |cell|cell| line into trimmed cells, dropping the
// empty cells outside the leading and trailing delimiters.
func splitTableRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	row := make([]string, 0, len(parts))
	for _, p := range parts {
		row = append(row, strings.TrimSpace(p))
	}
	return row
}

// backgroundName keeps any name written after "Background:", defaulting to
// the keyword itself so the section still renders with a heading.
func backgroundName(line string) string {
	name := strings.TrimSpace(strings.TrimPrefix(line, backgroundPrefix))
	if name == "" {
		return "Background"
	}
	return name
}
