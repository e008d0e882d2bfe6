package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// Partial section names, in load order. Each maps to <name>.html in the
// templates folder; index is the page shell.
const (
	partialMeta     = "meta"
	partialFooter   = "footer"
	partialFiles    = "files"
	partialFeatures = "features"
	partialIndex    = "index"
)

// styleAsset is the stylesheet copied verbatim into the report folder.
const styleAsset = "style.css"

// partialNames returns the template sections a full run loads.
func partialNames() []string {
	return []string{partialMeta, partialFooter, partialFiles, partialFeatures, partialIndex}
}

// Partials holds the raw template strings for each report section,
// loaded once per run.
type Partials struct {
	Meta     string
	Footer   string
	Files    string
	Features string
	Index    string
}

// set assigns a raw template string to the named section.
func (p *Partials) set(name, text string) error {
	switch name {
	case partialMeta:
		p.Meta = text
	case partialFooter:
		p.Footer = text
	case partialFiles:
		p.Files = text
	case partialFeatures:
		p.Features = text
	case partialIndex:
		p.Index = text
	default:
		return fmt.Errorf("unknown template section %q", name)
	}
	return nil
}

// defaultTemplates returns the templates shipped with the binary.
func defaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed layout is fixed at build time.
		panic(err)
	}
	return sub
}

// renderPage parses the page shell and the section partials into one
// template set and executes it against the view. Meta and footer come from
// the view, where prepareReports merged them.
func renderPage(partials Partials, view TemplatesView) (string, error) {
	tmpl := template.New(partialIndex)
	sections := map[string]string{
		partialMeta:     view.Meta,
		partialFooter:   view.Footer,
		partialFiles:    partials.Files,
		partialFeatures: partials.Features,
	}
	for name, text := range sections {
		if _, err := tmpl.New(name).Parse(text); err != nil {
			return "", fmt.Errorf("failed to parse %s template: %w", name, err)
		}
	}
	if _, err := tmpl.Parse(partials.Index); err != nil {
		return "", fmt.Errorf("failed to parse page template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, partialIndex, view); err != nil {
		return "", fmt.Errorf("failed to render report page: %w", err)
	}
	return buf.String(), nil
}
