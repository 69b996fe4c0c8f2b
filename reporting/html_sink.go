package reporting

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/compliance-tools/suitegen/templates"
)

//go:embed report.html
var reportTemplate string

// HTMLSink renders report data to a results.html file in the run directory.
type HTMLSink struct {
	tmpl   *template.Template
	runDir string
}

// NewHTMLSink creates an HTML sink writing into the given run directory
func NewHTMLSink(runDir string) (*HTMLSink, error) {
	tmpl, err := template.New("report").Funcs(templates.GetTemplateFunc()).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLSink{tmpl: tmpl, runDir: runDir}, nil
}

// Complete renders the report and writes it to results.html
func (s *HTMLSink) Complete(data *ReportData) error {
	if err := os.MkdirAll(s.runDir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", s.runDir, err)
	}

	var b strings.Builder
	if err := s.tmpl.Execute(&b, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	htmlFile := filepath.Join(s.runDir, "results.html")
	if err := os.WriteFile(htmlFile, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
