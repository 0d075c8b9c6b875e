package render_test

import (
	"bytes"
	"strings"
	"testing"

	"codeberg.org/mutker/hwtriage/internal/assess"
	"codeberg.org/mutker/hwtriage/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() assess.Report {
	return assess.Report{Sections: []assess.Section{
		{Title: "System", Metrics: []assess.Metric{
			{Label: "Model", Value: "ThinkPad T480", Severity: assess.SeverityNormal},
		}},
		{Title: "Battery", Metrics: []assess.Metric{
			{Label: "Health", Value: "84.0%", Severity: assess.SeverityGood},
			{Label: "Wear level", Value: "16.0%", Severity: assess.SeverityGood},
		}},
	}}
}

func TestRenderPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, true)

	require.NoError(t, r.Render(sampleReport()))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "no-color output must carry no escape sequences")
	assert.Contains(t, out, "System")
	assert.Contains(t, out, "ThinkPad T480")
	assert.Contains(t, out, "84.0%")
}

func TestRenderSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, true)

	require.NoError(t, r.Render(sampleReport()))
	out := buf.String()

	assert.Less(t, strings.Index(out, "System"), strings.Index(out, "Battery"),
		"sections render in assembly order")
	assert.Less(t, strings.Index(out, "Health"), strings.Index(out, "Wear level"))
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, true)

	require.NoError(t, r.Render(assess.Report{}))
	assert.Empty(t, buf.String())
}
