package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/logocheck/logocheck/internal/domain"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	dim     = lipgloss.Color("#6B7280") // muted gray
	accent  = lipgloss.Color("#D97706") // amber
)

// Styles holds the report styles bound to one output. Writers that are not
// terminals get plain text.
type Styles struct {
	pass  lipgloss.Style
	fail  lipgloss.Style
	file  lipgloss.Style
	title lipgloss.Style
}

// NewStyles creates styles that detect colour support from w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		pass:  r.NewStyle().Foreground(success),
		fail:  r.NewStyle().Foreground(danger),
		file:  r.NewStyle().Foreground(dim),
		title: r.NewStyle().Bold(true).Foreground(accent),
	}
}

// RenderReport renders a RunResult as plain status lines: one confirmation
// per valid file unless quiet, every violation grouped by file, then the
// summary line.
func RenderReport(st Styles, result *domain.RunResult, quiet bool) string {
	var b strings.Builder

	if result.Total == 0 {
		fmt.Fprintf(&b, "No %s files found in %s\n", result.FileName, result.SearchDir)
	}

	if !quiet {
		for _, f := range result.Files {
			if f.Valid {
				fmt.Fprintf(&b, "%s %s\n", st.pass.Render("✓"), f.Path)
			}
		}
	}

	if len(result.Violations) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.title.Render("Errors:") + "\n")
		for _, v := range result.Violations {
			fmt.Fprintf(&b, "%s %s\n", st.fail.Render("✗"), RenderViolation(st, v))
		}
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	summary := fmt.Sprintf("Checked %d files: %d valid, %d invalid", result.Total, result.Valid, result.Invalid)
	if result.Passed() {
		b.WriteString(st.pass.Render(summary))
	} else {
		b.WriteString(st.fail.Render(summary))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderViolation renders one violation on a single line: file, location, message.
func RenderViolation(st Styles, v domain.Violation) string {
	msg := strings.ReplaceAll(v.Message, "\n", " ")
	return fmt.Sprintf("%s: %s: %s", st.file.Render(v.File), v.Path(), msg)
}
