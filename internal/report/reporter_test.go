package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsfix-ci/gherkin-detailer/internal/gherkin"
)

// stubReader counts calls so tests can assert how often the reporter
// touches the filesystem collaborator.
type stubReader struct {
	files      []string
	contents   map[string]string
	listCalls  int
	readCalls  int
	splitCalls int
}

func (s *stubReader) ListFeatureFiles(folder string) ([]string, error) {
	s.listCalls++
	return s.files, nil
}

func (s *stubReader) ReadFileText(path string) (string, error) {
	s.readCalls++
	text, ok := s.contents[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return text, nil
}

func (s *stubReader) SplitIntoLines(text string) []string {
	s.splitCalls++
	return strings.Split(text, "\n")
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// testReporter wires a reporter to a temp report folder, a fixed clock,
// and a fixed run ID.
func testReporter(t *testing.T, files *stubReader) *Reporter {
	t.Helper()
	r := New(Options{ReportFolder: filepath.Join(t.TempDir(), "report", "gherkins")})
	r.now = fixedClock(time.Date(2019, 10, 20, 13, 22, 30, 0, time.UTC))
	r.runID = func() string { return "test-run" }
	if files != nil {
		r.files = files
	}
	return r
}

func TestCreateGherkinsReport_RecordsSourceFolder(t *testing.T) {
	r := testReporter(t, &stubReader{})
	if err := r.CreateGherkinsReport("./features"); err != nil {
		t.Fatalf("CreateGherkinsReport failed: %v", err)
	}
	if r.SourceFolder() != "./features" {
		t.Errorf("expected source folder %q, got %q", "./features", r.SourceFolder())
	}
}

func TestCreateGherkinsReport_DefaultsSourceFolder(t *testing.T) {
	r := testReporter(t, &stubReader{})
	if err := r.CreateGherkinsReport(""); err != nil {
		t.Fatalf("CreateGherkinsReport failed: %v", err)
	}
	if r.SourceFolder() != "./" {
		t.Errorf("expected default source folder %q, got %q", "./", r.SourceFolder())
	}
}

func TestSetupReportFolder_CreatesFolderAndStylesheet(t *testing.T) {
	r := testReporter(t, nil)
	if err := r.setupReportFolder(); err != nil {
		t.Fatalf("setupReportFolder failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(r.reportFolder, "style.css")); err != nil {
		t.Errorf("expected stylesheet to be copied: %v", err)
	}
}

func TestSetupReportFolder_RemovesPreExistingContent(t *testing.T) {
	r := testReporter(t, nil)
	stale := filepath.Join(r.reportFolder, "stale.html")
	if err := os.MkdirAll(r.reportFolder, 0755); err != nil {
		t.Fatalf("failed to pre-create folder: %v", err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatalf("failed to write stale file: %v", err)
	}

	if err := r.setupReportFolder(); err != nil {
		t.Fatalf("setupReportFolder failed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected stale report content to be removed")
	}
}

func TestReadAllTemplates_LoadsEmbeddedPartials(t *testing.T) {
	r := testReporter(t, nil)
	if err := r.readAllTemplates(partialNames()); err != nil {
		t.Fatalf("readAllTemplates failed: %v", err)
	}
	if r.partials.Meta == "" || r.partials.Footer == "" || r.partials.Index == "" {
		t.Errorf("expected partials to be loaded, got %+v", r.partials)
	}
}

func TestReadAllTemplates_EmptyListPerformsNoReads(t *testing.T) {
	r := testReporter(t, nil)
	// A missing templates folder would fail any read attempt.
	r.templatesFolder = filepath.Join(t.TempDir(), "missing")
	if err := r.readAllTemplates(nil); err != nil {
		t.Fatalf("expected no reads and no error, got: %v", err)
	}
	if r.partials != (Partials{}) {
		t.Errorf("expected partials to stay unset, got %+v", r.partials)
	}
}

func TestReadAllGherkins_EmptyListShortCircuits(t *testing.T) {
	files := &stubReader{}
	r := testReporter(t, files)
	analyzeCalls := 0
	r.analyze = func(rows [][]string) []gherkin.Gherkin {
		analyzeCalls++
		return gherkin.GetGherkins(rows)
	}

	if err := r.readAllGherkins(nil); err != nil {
		t.Fatalf("readAllGherkins failed: %v", err)
	}
	if files.readCalls != 0 || files.splitCalls != 0 {
		t.Errorf("expected zero reads, got %d reads and %d splits", files.readCalls, files.splitCalls)
	}
	if analyzeCalls != 0 {
		t.Errorf("expected zero analyzer calls, got %d", analyzeCalls)
	}
	if len(r.gherkins) != 0 {
		t.Errorf("expected empty gherkin sequence, got %d", len(r.gherkins))
	}
}

func TestReadAllGherkins_SingleFileReadOnce(t *testing.T) {
	files := &stubReader{
		contents: map[string]string{"login.feature": "Feature: Login\nScenario: Works\nGiven a user"},
	}
	r := testReporter(t, files)
	var batches [][][]string
	r.analyze = func(rows [][]string) []gherkin.Gherkin {
		batches = append(batches, rows)
		return gherkin.GetGherkins(rows)
	}

	if err := r.readAllGherkins([]string{"login.feature"}); err != nil {
		t.Fatalf("readAllGherkins failed: %v", err)
	}
	if files.readCalls != 1 {
		t.Errorf("expected exactly one read, got %d", files.readCalls)
	}
	if files.splitCalls != 1 {
		t.Errorf("expected exactly one split, got %d", files.splitCalls)
	}
	if len(batches) != 1 {
		t.Fatalf("expected exactly one analyzer call, got %d", len(batches))
	}
	if len(batches[0]) != 1 {
		t.Errorf("expected a single-element batch, got %d elements", len(batches[0]))
	}
	if len(r.gherkins) != 1 || r.gherkins[0].Name != "Login" {
		t.Errorf("unexpected analysis result: %+v", r.gherkins)
	}
}

func TestPrepareReports_FormatsDateAndTime(t *testing.T) {
	r := testReporter(t, nil)
	r.prepareReports()

	if r.view.Date != "2019/10/20" {
		t.Errorf("expected date %q, got %q", "2019/10/20", r.view.Date)
	}
	if r.view.Time != "13:22:30" {
		t.Errorf("expected time %q, got %q", "13:22:30", r.view.Time)
	}
}

func TestPrepareReports_ZeroPadsDateAndTime(t *testing.T) {
	r := testReporter(t, nil)
	r.now = fixedClock(time.Date(2019, 1, 5, 2, 3, 4, 0, time.UTC))
	r.prepareReports()

	if r.view.Date != "2019/01/05" {
		t.Errorf("expected date %q, got %q", "2019/01/05", r.view.Date)
	}
	if r.view.Time != "02:03:04" {
		t.Errorf("expected time %q, got %q", "02:03:04", r.view.Time)
	}
}

func TestPrepareReports_CopiesListAndPartialsUnchanged(t *testing.T) {
	r := testReporter(t, nil)
	r.gherkins = []gherkin.Gherkin{{Name: "Login"}, {Name: "Cart"}}
	r.partials.Meta = "<header>meta</header>"
	r.partials.Footer = "<footer>footer</footer>"

	r.prepareReports()

	if len(r.view.List) != 2 || r.view.List[0].Name != "Login" || r.view.List[1].Name != "Cart" {
		t.Errorf("expected gherkin list copied as-is, got %+v", r.view.List)
	}
	if r.view.Meta != r.partials.Meta {
		t.Errorf("expected meta partial unchanged, got %q", r.view.Meta)
	}
	if r.view.Footer != r.partials.Footer {
		t.Errorf("expected footer partial unchanged, got %q", r.view.Footer)
	}
}

func TestCreateGherkinsReport_EndToEnd(t *testing.T) {
	srcDir := t.TempDir()
	feature := "Feature: User login\n\n@smoke\nScenario: Successful login\n" +
		"Given a registered user\nWhen the user logs in\nThen the dashboard is shown\n"
	if err := os.WriteFile(filepath.Join(srcDir, "login.feature"), []byte(feature), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	r := New(Options{ReportFolder: filepath.Join(t.TempDir(), "out")})
	r.now = fixedClock(time.Date(2019, 10, 20, 13, 22, 30, 0, time.UTC))
	r.runID = func() string { return "test-run" }

	if err := r.CreateGherkinsReport(srcDir); err != nil {
		t.Fatalf("CreateGherkinsReport failed: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(r.reportFolder, "index.html"))
	if err != nil {
		t.Fatalf("failed to read generated page: %v", err)
	}
	html := string(page)
	for _, want := range []string{"User login", "Successful login", "@smoke", "Given", "2019/10/20", "13:22:30"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
	if _, err := os.Stat(filepath.Join(r.reportFolder, "style.css")); err != nil {
		t.Errorf("expected stylesheet in report folder: %v", err)
	}

	s := r.Summary()
	if s.Features != 1 || s.Scenarios != 1 || s.Steps != 3 {
		t.Errorf("unexpected summary counts: %+v", s)
	}
	if s.RunID != "test-run" {
		t.Errorf("unexpected run id: %q", s.RunID)
	}
}

func TestCreateGherkinsReport_UnreadableFileAbortsRun(t *testing.T) {
	files := &stubReader{files: []string{"gone.feature"}, contents: map[string]string{}}
	r := testReporter(t, files)

	if err := r.CreateGherkinsReport("./features"); err == nil {
		t.Fatal("expected read failure to abort the run")
	}
	if _, err := os.Stat(filepath.Join(r.reportFolder, "index.html")); !os.IsNotExist(err) {
		t.Error("expected no report page after an aborted run")
	}
}

func TestRenderPage_AnchorsKeyedByIndex(t *testing.T) {
	r := testReporter(t, nil)
	if err := r.readAllTemplates(partialNames()); err != nil {
		t.Fatalf("readAllTemplates failed: %v", err)
	}
	// Names with spaces and duplicates must not produce broken or
	// colliding anchor ids.
	r.gherkins = []gherkin.Gherkin{{Name: "User login"}, {Name: "User login"}}
	r.prepareReports()

	page, err := renderPage(r.partials, r.view)
	if err != nil {
		t.Fatalf("renderPage failed: %v", err)
	}
	for _, want := range []string{`id="feature-0"`, `id="feature-1"`, `href="#feature-0"`, `href="#feature-1"`} {
		if !strings.Contains(page, want) {
			t.Errorf("expected page to contain %s", want)
		}
	}
	if strings.Contains(page, `id="User login"`) {
		t.Error("expected anchors to be keyed by index, not feature name")
	}
}

func TestRenderPage_EscapesFeatureText(t *testing.T) {
	r := testReporter(t, nil)
	if err := r.readAllTemplates(partialNames()); err != nil {
		t.Fatalf("readAllTemplates failed: %v", err)
	}
	r.gherkins = []gherkin.Gherkin{{
		Name:      "Login <script>alert(1)</script>",
		Scenarios: []gherkin.Scenario{{Name: "x", Steps: []gherkin.Step{{Keyword: gherkin.KeywordGiven, Text: "a <b> user"}}}},
	}}
	r.prepareReports()

	page, err := renderPage(r.partials, r.view)
	if err != nil {
		t.Fatalf("renderPage failed: %v", err)
	}
	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Error("feature text was not HTML-escaped")
	}
}
