// Package gherkin defines the parsed feature-file model and the line
// analyzer that produces it.
package gherkin

// StepKeyword is the leading keyword of a scenario step. It is stored
// exactly as written in the source file; And/But are never normalized to
// the keyword they continue.
type StepKeyword string

const (
	KeywordGiven StepKeyword = "Given"
	KeywordWhen  StepKeyword = "When"
	KeywordThen  StepKeyword = "Then"
	KeywordAnd   StepKeyword = "And"
	KeywordBut   StepKeyword = "But"
)

// StepKeywords returns all step keywords in match order.
func StepKeywords() []StepKeyword {
	return []StepKeyword{KeywordGiven, KeywordWhen, KeywordThen, KeywordAnd, KeywordBut}
}

// IsValid checks if the keyword is a recognized step keyword.
func (k StepKeyword) IsValid() bool {
	switch k {
	case KeywordGiven, KeywordWhen, KeywordThen, KeywordAnd, KeywordBut:
		return true
	default:
		return false
	}
}

// Step is one line of a scenario, with an optional pipe-delimited data
// table attached to it.
type Step struct {
	Keyword StepKeyword `json:"keyword"`
	Text    string      `json:"text"`
	Table   [][]string  `json:"table,omitempty"`
}

// Scenario is a named, ordered sequence of steps. Outline marks scenarios
// declared with "Scenario Outline:"; their Examples table holds the rows
// of the trailing "Examples:" section.
type Scenario struct {
	Name     string     `json:"name"`
	Outline  bool       `json:"outline,omitempty"`
	Steps    []Step     `json:"steps"`
	Examples [][]string `json:"examples,omitempty"`
}

// Gherkin is the parsed representation of one feature file. Tags collects
// the labels attached at feature or scenario level, deduplicated, in
// encounter order. Scenarios preserves source order; a feature with zero
// scenarios is valid.
type Gherkin struct {
	Name      string     `json:"name"`
	Tags      []string   `json:"tags,omitempty"`
	Scenarios []Scenario `json:"scenarios"`
}

// StepCount returns the total number of steps across all scenarios.
func (g *Gherkin) StepCount() int {
	n := 0
	for _, s := range g.Scenarios {
		n += len(s.Steps)
	}
	return n
}
