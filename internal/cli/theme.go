package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// -----------------------------------------------------------------------------
// Palette (true-color hex values, degraded by the renderer on poorer terminals)
// -----------------------------------------------------------------------------

const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorRed      lipgloss.Color = "#f38ba8"
	colorLavender lipgloss.Color = "#b4befe"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const (
	colorAccent  = colorTeal
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
	colorBorder  = colorSurface1
)

// labelWidth aligns the values of key/value listings.
const labelWidth = 12

// styles are bound to the renderer of the output writer, so colors are only
// emitted when that writer is a terminal.
type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	ok     lipgloss.Style
	bad    lipgloss.Style
	today  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorAccent),
		label:  r.NewStyle().Foreground(colorMuted).Width(labelWidth),
		value:  r.NewStyle(),
		muted:  r.NewStyle().Foreground(colorMuted),
		ok:     r.NewStyle().Bold(true).Foreground(colorSuccess),
		bad:    r.NewStyle().Bold(true).Foreground(colorError),
		today:  r.NewStyle().Bold(true).Foreground(colorFocus),
		header: r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(colorBorder),
	}
}
