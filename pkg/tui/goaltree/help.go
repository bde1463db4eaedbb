package goaltree

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

//go:embed help.md
var helpText string

// help is the scrollable key reference shown over the tree.
type help struct {
	viewport viewport.Model
	frame    lipgloss.Style
	width    int
	height   int
}

func newHelp() *help {
	h := &help{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	h.setSize(60, 20)
	return h
}

func (h *help) setSize(width, height int) {
	width, height = max(width, 32), max(height, 8)
	if h.width == width && h.height == height {
		return
	}
	h.width, h.height = width, height

	inner := max(width-h.frame.GetHorizontalFrameSize(), 10)
	h.viewport.SetWidth(inner)
	h.viewport.SetHeight(max(height-h.frame.GetVerticalFrameSize(), 1))
	h.viewport.SetContent(wordwrap.String(strings.TrimSpace(helpText), inner))
	h.viewport.SetYOffset(0)
}

func (h *help) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

func (h *help) view() string {
	return h.frame.Render(h.viewport.View())
}
