// Package report orchestrates one report generation: discover feature
// files, analyze them, merge the result with the HTML templates, and write
// the report folder.
package report

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jsfix-ci/gherkin-detailer/internal/gherkin"
	"github.com/jsfix-ci/gherkin-detailer/internal/output"
	"github.com/jsfix-ci/gherkin-detailer/internal/reader"
)

// DefaultReportFolder is where the generated report lands unless
// configured otherwise.
const DefaultReportFolder = "report/gherkins"

// reportPage is the generated HTML file name.
const reportPage = "index.html"

// FileReader is the filesystem collaborator the reporter reads feature
// files through.
type FileReader interface {
	ListFeatureFiles(folder string) ([]string, error)
	ReadFileText(path string) (string, error)
	SplitIntoLines(text string) []string
}

// Options configures a Reporter.
type Options struct {
	// ReportFolder is the output folder; DefaultReportFolder when empty.
	ReportFolder string

	// TemplatesFolder overrides the embedded report templates when set.
	TemplatesFolder string
}

// Reporter runs the full report pipeline. Each call to
// CreateGherkinsReport is independent and fully regenerates the report;
// no state outlives the call.
type Reporter struct {
	reportFolder    string
	templatesFolder string

	files   FileReader
	analyze func([][]string) []gherkin.Gherkin
	now     func() time.Time
	runID   func() string

	sourceFolder string
	partials     Partials
	gherkins     []gherkin.Gherkin
	view         TemplatesView
	summary      output.Summary
}

// New creates a Reporter wired to the real filesystem, analyzer, and clock.
func New(opts Options) *Reporter {
	folder := opts.ReportFolder
	if folder == "" {
		folder = DefaultReportFolder
	}
	return &Reporter{
		reportFolder:    folder,
		templatesFolder: opts.TemplatesFolder,
		files:           reader.New(),
		analyze:         gherkin.GetGherkins,
		now:             time.Now,
		runID:           uuid.NewString,
	}
}

// CreateGherkinsReport generates the complete report for the feature files
// under sourceFolder, defaulting to the current directory. Any I/O failure
// aborts the run; no step is retried and no partial report is guaranteed
// consistent afterwards.
func (r *Reporter) CreateGherkinsReport(sourceFolder string) error {
	if sourceFolder == "" {
		sourceFolder = "./"
	}
	r.sourceFolder = sourceFolder
	started := r.now()

	if err := r.setupReportFolder(); err != nil {
		return err
	}
	if err := r.readAllTemplates(partialNames()); err != nil {
		return err
	}
	files, err := r.files.ListFeatureFiles(r.sourceFolder)
	if err != nil {
		return err
	}
	if err := r.readAllGherkins(files); err != nil {
		return err
	}
	r.prepareReports()
	if err := r.writeReport(); err != nil {
		return err
	}

	r.summary = output.Summary{
		RunID:        r.view.RunID,
		SourceFolder: r.sourceFolder,
		ReportFolder: r.reportFolder,
		Features:     len(r.gherkins),
		Duration:     r.now().Sub(started),
	}
	for _, g := range r.gherkins {
		r.summary.Scenarios += len(g.Scenarios)
		r.summary.Steps += g.StepCount()
	}
	return nil
}

// setupReportFolder deletes a pre-existing report folder, recreates it,
// and copies the stylesheet in. Deletion is skipped when the folder does
// not exist yet.
func (r *Reporter) setupReportFolder() error {
	if _, err := os.Stat(r.reportFolder); err == nil {
		if err := os.RemoveAll(r.reportFolder); err != nil {
			return fmt.Errorf("failed to clean report folder: %w", err)
		}
	}
	if err := os.MkdirAll(r.reportFolder, 0755); err != nil {
		return fmt.Errorf("failed to create report folder: %w", err)
	}
	style, err := fs.ReadFile(r.templates(), styleAsset)
	if err != nil {
		return fmt.Errorf("failed to read stylesheet: %w", err)
	}
	dest := filepath.Join(r.reportFolder, styleAsset)
	if err := os.WriteFile(dest, style, 0644); err != nil {
		return fmt.Errorf("failed to copy stylesheet: %w", err)
	}
	return nil
}

// readAllTemplates loads the named partial strings from the templates
// folder. An empty name list performs no reads and leaves the partials
// unset, so templates can be injected directly instead.
func (r *Reporter) readAllTemplates(names []string) error {
	for _, name := range names {
		data, err := fs.ReadFile(r.templates(), name+".html")
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", name, err)
		}
		if err := r.partials.set(name, string(data)); err != nil {
			return err
		}
	}
	return nil
}

// readAllGherkins reads each feature file, splits it into lines, and hands
// the whole batch to the analyzer. An empty file list short-circuits
// before touching the reader or the analyzer.
func (r *Reporter) readAllGherkins(files []string) error {
	r.gherkins = nil
	if len(files) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(files))
	for _, path := range files {
		text, err := r.files.ReadFileText(path)
		if err != nil {
			return err
		}
		rows = append(rows, r.files.SplitIntoLines(text))
	}
	r.gherkins = r.analyze(rows)
	return nil
}

// prepareReports builds the view-model: generation date and time from the
// clock, the Gherkin list as-is, and the meta/footer partials merged on
// unchanged.
func (r *Reporter) prepareReports() {
	now := r.now()
	r.view = TemplatesView{
		Date:   now.Format("2006/01/02"),
		Time:   now.Format("15:04:05"),
		RunID:  r.runID(),
		List:   r.gherkins,
		Meta:   r.partials.Meta,
		Footer: r.partials.Footer,
	}
}

// writeReport renders the page template against the view-model and writes
// it into the report folder.
func (r *Reporter) writeReport() error {
	page, err := renderPage(r.partials, r.view)
	if err != nil {
		return err
	}
	dest := filepath.Join(r.reportFolder, reportPage)
	if err := os.WriteFile(dest, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write report page: %w", err)
	}
	return nil
}

// templates returns the template source: the configured folder when set,
// otherwise the templates shipped with the binary.
func (r *Reporter) templates() fs.FS {
	if r.templatesFolder != "" {
		return os.DirFS(r.templatesFolder)
	}
	return defaultTemplates()
}

// SourceFolder returns the folder the last run read features from.
func (r *Reporter) SourceFolder() string {
	return r.sourceFolder
}

// Summary returns the counts and metadata of the last completed run.
func (r *Reporter) Summary() output.Summary {
	return r.summary
}
