package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette colors, the same in light and dark themes.
var (
	colorSuccess = lipgloss.Color("2") // green
	colorError   = lipgloss.Color("1") // red
	colorPrimary = lipgloss.Color("5") // magenta
	colorInfo    = lipgloss.Color("6") // cyan
	colorMuted   = lipgloss.Color("8") // gray
)

// styles binds the report palette to a writer, so color is only emitted
// when w is a terminal that supports it. Build it once per writer.
type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
		header:  r.NewStyle().Foreground(colorPrimary).Bold(true),
		info:    r.NewStyle().Foreground(colorInfo),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}
