// Package style provides the colors and glyphs shared by the sonos terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Log level markers.
const (
	Cross   = "✗"
	Warning = "!"
)

// Playback glyphs.
const (
	Speaker   = "🔈"
	Loud      = "🔊"
	Muted     = "🔇"
	Artist    = "🎤"
	Title     = "🎵"
	Album     = "💿"
	Clock     = "⏱️"
	BarFilled = "▇"
	BarEmpty  = "-"
	BarWidth  = 25
	Underline = "="
	Timer     = "⏲️"
)
