package render

import (
	"io"
	"strings"

	"codeberg.org/mutker/hwtriage/internal/assess"
	"codeberg.org/mutker/hwtriage/internal/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const labelWidth = 24

// Renderer is the stateless presentation boundary: it maps each metric's
// severity to a style and writes the report in section order. Nothing in it
// feeds back into assessment.
type Renderer struct {
	out      io.Writer
	title    lipgloss.Style
	label    lipgloss.Style
	severity map[assess.Severity]lipgloss.Style
}

// New builds a renderer for w. noColor forces a plain profile regardless of
// terminal capabilities.
func New(w io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:   w,
		title: lr.NewStyle().Bold(true).Underline(true),
		label: lr.NewStyle().Width(labelWidth),
		severity: map[assess.Severity]lipgloss.Style{
			assess.SeverityNormal:   lr.NewStyle(),
			assess.SeverityGood:     lr.NewStyle().Foreground(lipgloss.Color("2")),
			assess.SeverityWarning:  lr.NewStyle().Foreground(lipgloss.Color("3")),
			assess.SeverityCritical: lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
	}
}

// Render writes the full report. Sections and metrics are emitted strictly
// in the order the assembler produced them.
func (r *Renderer) Render(report assess.Report) error {
	errFactory := errors.New()

	var b strings.Builder
	for i, section := range report.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.title.Render(section.Title))
		b.WriteString("\n")

		for _, metric := range section.Metrics {
			style, ok := r.severity[metric.Severity]
			if !ok {
				style = r.severity[assess.SeverityNormal]
			}

			b.WriteString("  ")
			b.WriteString(r.label.Render(metric.Label))
			b.WriteString(" ")
			b.WriteString(style.Render(metric.Value))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errFactory.Wrap(errors.ErrRenderReport, err)
	}

	return nil
}
