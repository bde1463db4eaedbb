package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Tree   TreeTheme
	Footer FooterTheme
}

// HeaderTheme styles the title line.
type HeaderTheme struct {
	Title lipgloss.Style
	Count lipgloss.Style
}

// TreeTheme styles goal rows.
type TreeTheme struct {
	Row      lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Marker   lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and input line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Warn   lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Underline(true),
			Count: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Tree: TreeTheme{
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
