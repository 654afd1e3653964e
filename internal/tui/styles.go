// Package tui provides the interactive results browser for pkgscout.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - matches the CLI colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F3F4F6") // Light gray
	ColorBgAlt     = lipgloss.Color("#374151") // Dark gray
)

// Source colors for the package sources
var SourceColors = map[string]lipgloss.Color{
	"pacman":  lipgloss.Color("#1793D1"), // Arch blue
	"apt":     lipgloss.Color("#A80030"), // Debian red
	"dnf":     lipgloss.Color("#294172"), // Fedora blue
	"zypper":  lipgloss.Color("#73BA25"), // openSUSE green
	"aur":     lipgloss.Color("#1793D1"), // Arch blue
	"flatpak": lipgloss.Color("#4A90D9"), // Flatpak blue
	"snap":    lipgloss.Color("#E95420"), // Ubuntu orange
}

// Styles contains all the lipgloss styles used in the browser
type Styles struct {
	// Frame
	Header lipgloss.Style
	Footer lipgloss.Style

	// Content
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Description lipgloss.Style

	// List items
	ListItemSelected lipgloss.Style
	PackageName      lipgloss.Style
	PackageDesc      lipgloss.Style
	Score            lipgloss.Style

	// Status
	Error lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() *Styles {
	s := &Styles{}

	// Frame
	s.Header = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBgAlt).
		Padding(0, 1).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(ColorBgAlt).
		Padding(0, 1)

	// Content
	s.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	s.Description = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// List items
	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	s.PackageName = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	s.PackageDesc = lipgloss.NewStyle().
		Foreground(ColorMuted)

	s.Score = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	// Status
	s.Error = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Input
	s.InputPrompt = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Help
	s.HelpKey = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(ColorMuted)

	s.HelpSep = lipgloss.NewStyle().
		Foreground(ColorMuted).
		SetString(":")

	return s
}

// Badge creates a badge-style label
func Badge(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1).
		Render(text)
}

// SourceBadge creates a badge for a package source
func SourceBadge(source string) string {
	color, ok := SourceColors[source]
	if !ok {
		color = ColorMuted
	}
	return Badge(source, color)
}
