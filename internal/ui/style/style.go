// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Error, Info, etc.) rather than visual.
// When disabled, all helpers return the input string unchanged with no ANSI
// codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// CDP_NO_COLOR environment variables; if either is set, styling stays off
// regardless of enable. Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CDP_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles()
	}
}

// initStyles creates the lipgloss styles. ANSI256 is forced so output is
// stable regardless of lipgloss's own TTY detection.
func initStyles() {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text indicating a completed operation.
func Success(text string) string { return render(successStyle, text) }

// Warning styles advisory text.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles failure text.
func Error(text string) string { return render(errorStyle, text) }

// Info styles command names and other points of interest.
func Info(text string) string { return render(infoStyle, text) }

// Muted styles secondary detail.
func Muted(text string) string { return render(mutedStyle, text) }

// Header styles section and page headers.
func Header(text string) string { return render(headerStyle, text) }
