// Package theme holds the design tokens for terminal markdown output.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds all design tokens used by the markdown renderer. The
// math boxes themselves are plain text; only the surrounding document
// is styled.
type Styles struct {
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Strong     lipgloss.Style
	Emph       lipgloss.Style
	Code       lipgloss.Style
	CodeBlock  lipgloss.Style
	Quote      lipgloss.Style
	ListMarker lipgloss.Style
	Link       lipgloss.Style
	Rule       lipgloss.Style
	TableHead  lipgloss.Style
	Math       lipgloss.Style
}

// Plain returns styles that apply no formatting at all, for NO_COLOR
// and non-TTY output.
func Plain() *Styles {
	return &Styles{}
}

// Default creates the default theme.
func Default() *Styles {
	accent := lipgloss.Color("12")  // bright blue
	muted := lipgloss.Color("8")    // gray
	literal := lipgloss.Color("11") // yellow
	quote := lipgloss.Color("10")   // green

	return &Styles{
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subheading: lipgloss.NewStyle().Bold(true),
		Strong:     lipgloss.NewStyle().Bold(true),
		Emph:       lipgloss.NewStyle().Italic(true),
		Code:       lipgloss.NewStyle().Foreground(literal),
		CodeBlock:  lipgloss.NewStyle().Foreground(literal),
		Quote:      lipgloss.NewStyle().Foreground(quote),
		ListMarker: lipgloss.NewStyle().Foreground(accent),
		Link:       lipgloss.NewStyle().Underline(true).Foreground(accent),
		Rule:       lipgloss.NewStyle().Foreground(muted),
		TableHead:  lipgloss.NewStyle().Bold(true),
		Math:       lipgloss.NewStyle(),
	}
}

// Mono creates a monochrome theme: attributes only, no colors.
func Mono() *Styles {
	return &Styles{
		Heading:    lipgloss.NewStyle().Bold(true),
		Subheading: lipgloss.NewStyle().Bold(true),
		Strong:     lipgloss.NewStyle().Bold(true),
		Emph:       lipgloss.NewStyle().Italic(true),
		Code:       lipgloss.NewStyle().Reverse(true),
		CodeBlock:  lipgloss.NewStyle(),
		Quote:      lipgloss.NewStyle().Faint(true),
		ListMarker: lipgloss.NewStyle().Bold(true),
		Link:       lipgloss.NewStyle().Underline(true),
		Rule:       lipgloss.NewStyle().Faint(true),
		TableHead:  lipgloss.NewStyle().Bold(true),
	}
}

// ByName resolves a theme name. Unknown names fall back to the
// default theme.
func ByName(name string) *Styles {
	switch name {
	case "plain", "none":
		return Plain()
	case "mono":
		return Mono()
	default:
		return Default()
	}
}
