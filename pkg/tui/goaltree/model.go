// Package goaltree is the interactive goal tree.
package goaltree

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/goal"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/tui/theme"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

type mode int

const (
	modeBrowse mode = iota
	modeAddRoot
	modeAddChild
	modeRename
	modeConfirmDelete
)

// Model renders the goal forest and edits it through the goals controller.
type Model struct {
	ctx     context.Context
	goals   *app.Goals
	watcher store.Watcher
	logger  *zap.Logger
	theme   theme.Theme

	forest   *goal.Forest
	rows     []goal.Row
	cursor   int
	selected string

	mode   mode
	target string
	input  textinput.Model

	help     *help
	showHelp bool

	status string
	warn   bool
	width  int
	height int
	offset int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// Option customises New.
type Option func(*Model)

// WithWatcher reloads the tree whenever the goals key changes on disk.
func WithWatcher(w store.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithLogger sets the logger for background failures.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// New builds the model. The tree is loaded by Init.
func New(ctx context.Context, goals *app.Goals, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Goal title"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := &Model{
		ctx:    ctx,
		goals:  goals,
		logger: zap.NewNop(),
		theme:  theme.Default(),
		forest: goal.New(),
		input:  ti,
		help:   newHelp(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type (
	loadedMsg struct {
		forest *goal.Forest
		// focus selects this id after loading when non-empty.
		focus string
		err   error
	}
	resultMsg struct {
		status string
		focus  string
		err    error
	}
	watchStartedMsg struct {
		ch     <-chan store.Event
		cancel context.CancelFunc
		err    error
	}
	watchEventMsg struct {
		event store.Event
	}
	watchStoppedMsg struct{}
)

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(""), m.startWatch())
}

func (m *Model) load(focus string) tea.Cmd {
	return func() tea.Msg {
		f, err := m.goals.Forest(m.ctx)
		return loadedMsg{forest: f, focus: focus, err: err}
	}
}

func (m *Model) startWatch() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(m.ctx)
		ch, err := m.watcher.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(msg.Width-12, 10))
		m.help.setSize(msg.Width, msg.Height-1)
		m.scroll()
	case loadedMsg:
		if msg.err != nil {
			m.setWarn("ERR: " + msg.err.Error())
			return m, nil
		}
		m.forest = msg.forest
		if msg.focus != "" {
			m.selected = msg.focus
		}
		m.refreshRows()
	case resultMsg:
		if msg.err != nil {
			if validation.IsAdvisory(msg.err) {
				m.setWarn("skipped: " + msg.err.Error())
			} else {
				m.setWarn("ERR: " + msg.err.Error())
			}
			return m, nil
		}
		m.setStatus(msg.status)
		return m, m.load(msg.focus)
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Warn("watch goals", zap.Error(msg.err))
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		wait := m.waitForWatch()
		if msg.event.Key != store.KeyGoals && msg.event.Type != store.EventInvalidated {
			return m, wait
		}
		if wait == nil {
			return m, m.load("")
		}
		return m, tea.Batch(wait, m.load(""))
	case watchStoppedMsg:
		m.watchCh = nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		return m, tea.Quit
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
			return m, nil
		}
		return m, m.help.update(msg)
	}
	switch m.mode {
	case modeAddRoot, modeAddChild, modeRename:
		return m.handleInputKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		m.stopWatch()
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.moveTo(0)
	case "end", "G":
		m.moveTo(len(m.rows) - 1)
	case "space", "x":
		if id := m.current(); id != "" {
			return m, m.apply(func(ctx context.Context) (string, error) {
				ok, err := m.goals.ToggleCompleted(ctx, id)
				return okStatus(ok, "toggled"), err
			})
		}
	case "enter", "right", "l":
		if r, ok := m.currentRow(); ok && r.HasChildren {
			return m, m.apply(func(ctx context.Context) (string, error) {
				ok, err := m.goals.ToggleExpanded(ctx, r.ID)
				return okStatus(ok, ""), err
			})
		}
	case "left", "h":
		return m, m.collapseOrParent()
	case "a":
		m.openInput(modeAddRoot, "", "")
	case "s", "o":
		if id := m.current(); id != "" {
			m.openInput(modeAddChild, id, "")
		}
	case "e", "r":
		if r, ok := m.currentRow(); ok {
			m.openInput(modeRename, r.ID, r.Title)
		}
	case "d", "delete":
		if id := m.current(); id != "" {
			m.mode = modeConfirmDelete
			m.target = id
		}
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		return m, m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	target := m.target
	m.mode = modeBrowse
	m.target = ""
	if msg.String() != "y" {
		m.setStatus("delete cancelled")
		return m, nil
	}
	return m, m.apply(func(ctx context.Context) (string, error) {
		ok, err := m.goals.Delete(ctx, target)
		return okStatus(ok, "deleted"), err
	})
}

func (m *Model) submit() tea.Cmd {
	title := m.input.Value()
	mode, target := m.mode, m.target
	m.closeInput()

	return func() tea.Msg {
		switch mode {
		case modeAddRoot:
			id, err := m.goals.Add(m.ctx, title)
			return resultMsg{status: okStatus(id != "", "added"), focus: id, err: err}
		case modeAddChild:
			id, err := m.goals.AddChild(m.ctx, target, title)
			return resultMsg{status: okStatus(id != "", "added"), focus: id, err: err}
		case modeRename:
			ok, err := m.goals.Rename(m.ctx, target, title)
			return resultMsg{status: okStatus(ok, "renamed"), err: err}
		}
		return nil
	}
}

// apply runs fn off the update loop and reports its result.
func (m *Model) apply(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := fn(m.ctx)
		return resultMsg{status: status, err: err}
	}
}

func okStatus(ok bool, done string) string {
	if !ok {
		return "goal not found, nothing changed"
	}
	return done
}

func (m *Model) collapseOrParent() tea.Cmd {
	r, ok := m.currentRow()
	if !ok {
		return nil
	}
	if r.HasChildren && r.Expanded {
		return m.apply(func(ctx context.Context) (string, error) {
			ok, err := m.goals.ToggleExpanded(ctx, r.ID)
			return okStatus(ok, ""), err
		})
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].Depth < r.Depth {
			m.moveTo(i)
			break
		}
	}
	return nil
}

func (m *Model) openInput(md mode, target, value string) {
	m.mode = md
	m.target = target
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.target = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) refreshRows() {
	m.rows = m.forest.Visible()
	m.cursor = 0
	for i, r := range m.rows {
		if r.ID == m.selected {
			m.cursor = i
			break
		}
	}
	m.moveTo(m.cursor)
}

func (m *Model) move(delta int) {
	m.moveTo(m.cursor + delta)
}

func (m *Model) moveTo(i int) {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.selected = ""
		return
	}
	m.cursor = min(max(i, 0), len(m.rows)-1)
	m.selected = m.rows[m.cursor].ID
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	h := m.treeHeight()
	if h <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// treeHeight is the number of rows available for the tree, 0 when unknown.
func (m *Model) treeHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-4, 1)
}

func (m *Model) current() string {
	r, ok := m.currentRow()
	if !ok {
		return ""
	}
	return r.ID
}

func (m *Model) currentRow() (goal.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return goal.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.warn = false
}

func (m *Model) setWarn(s string) {
	m.status = s
	m.warn = true
}

func (m *Model) View() string {
	if m.showHelp {
		return m.help.view()
	}
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Header.Title.Render("Goals"))
	b.WriteString(th.Header.Count.Render(fmt.Sprintf("  %d/%d done", m.forest.CountCompleted(), m.forest.Len())))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(th.Tree.Empty.Render("No goals yet. Press a to add one."))
		b.WriteString("\n")
	}
	end := len(m.rows)
	if h := m.treeHeight(); h > 0 {
		end = min(m.offset+h, len(m.rows))
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) renderRow(r goal.Row, selected bool) string {
	th := m.theme.Tree
	pointer := "  "
	if selected {
		pointer = "> "
	}
	prefix := pointer + strings.Repeat("  ", r.Depth) +
		th.Marker.Render(printers.Disclosure(r)) + " " + printers.Checkbox(r.Completed) + " "

	style := th.Row
	switch {
	case selected:
		style = th.Selected
	case r.Completed:
		style = th.Done
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, style.Render(r.Title))
}

func (m *Model) footer() string {
	th := m.theme.Footer
	switch m.mode {
	case modeAddRoot:
		return th.Prompt.Render("New goal: ") + m.input.View()
	case modeAddChild:
		return th.Prompt.Render("New sub-goal: ") + m.input.View()
	case modeRename:
		return th.Prompt.Render("Rename: ") + m.input.View()
	case modeConfirmDelete:
		return th.Warn.Render("Delete this goal and its sub-goals? (y/N)")
	}
	line := th.Help.Render("↑/↓ move  space done  enter fold  a add  s sub-goal  e rename  d delete  ? help  q quit")
	if m.status != "" {
		st := th.Status
		if m.warn {
			st = th.Warn
		}
		line = st.Render(m.status) + "\n" + line
	}
	return line
}

// Run launches the interactive goal tree.
func Run(ctx context.Context, goals *app.Goals, opts ...Option) error {
	m := New(ctx, goals, opts...)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
