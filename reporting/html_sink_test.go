package reporting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLSinkWritesReport(t *testing.T) {
	runDir := filepath.Join(t.TempDir(), "checkrun-abc")

	sink, err := NewHTMLSink(runDir)
	require.NoError(t, err)

	data := NewReportBuilder().BuildFromRunnerResult(sampleRunnerResult())
	require.NoError(t, sink.Complete(data))

	content, err := os.ReadFile(filepath.Join(runDir, "results.html"))
	require.NoError(t, err)

	html := string(content)
	assert.Contains(t, html, "run-123")
	assert.Contains(t, html, "Suite: compliance")
	assert.Contains(t, html, "name_format")
	assert.Contains(t, html, "name does not match pattern")
	assert.Contains(t, html, "Failed Checks")
}

func TestHTMLSinkEscapesContent(t *testing.T) {
	runDir := t.TempDir()

	sink, err := NewHTMLSink(runDir)
	require.NoError(t, err)

	result := sampleRunnerResult()
	result.Suites["compliance"].Checks["name_format"].Messages = []string{"<script>alert(1)</script>"}

	data := NewReportBuilder().BuildFromRunnerResult(result)
	require.NoError(t, sink.Complete(data))

	content, err := os.ReadFile(filepath.Join(runDir, "results.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "<script>alert(1)</script>")
}
