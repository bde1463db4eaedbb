package goaltree

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

func newModel(t *testing.T) (*Model, *app.Goals, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(nil)
	n := 0
	goals := app.New(mem, app.Options{NewID: func() string {
		n++
		return fmt.Sprintf("g%d", n)
	}}).Goals
	m := New(context.Background(), goals)
	settle(t, m, m.load("")())
	return m, goals, mem
}

// settle feeds msg to the model and runs the resulting commands until the
// model goes quiet.
func settle(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	for i := 0; msg != nil; i++ {
		if i > 20 {
			t.Fatal("model did not settle")
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd != nil {
					settle(t, m, cmd())
				}
			}
			return
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func typeTitle(t *testing.T, m *Model, open, title string) {
	t.Helper()
	settle(t, m, key(open))
	m.input.SetValue(title)
	settle(t, m, key("enter"))
}

func TestAddAndNest(t *testing.T) {
	m, goals, _ := newModel(t)

	typeTitle(t, m, "a", "Read book")
	typeTitle(t, m, "s", "Chapter 1")
	typeTitle(t, m, "s", "Page 1")

	if len(m.rows) != 3 {
		t.Fatalf("rows = %+v", m.rows)
	}
	if m.selected != "g3" || m.rows[m.cursor].Depth != 2 {
		t.Fatalf("new child should be selected, got %q at depth %d", m.selected, m.rows[m.cursor].Depth)
	}
	f, err := goals.Forest(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 3 {
		t.Fatalf("stored %d goals", f.Len())
	}

	view := m.View()
	for _, want := range []string{"Goals", "0/3 done", "Read book", "Chapter 1", "> ", "Page 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestToggleAndFold(t *testing.T) {
	m, _, _ := newModel(t)
	typeTitle(t, m, "a", "parent")
	typeTitle(t, m, "s", "child")

	settle(t, m, key("x"))
	if !m.rows[1].Completed || m.rows[0].Completed {
		t.Fatalf("only the child should be completed: %+v", m.rows)
	}

	settle(t, m, key("up"))
	settle(t, m, key("enter"))
	if len(m.rows) != 1 {
		t.Fatalf("collapsing should hide the child: %+v", m.rows)
	}
	settle(t, m, key("l"))
	if len(m.rows) != 2 {
		t.Fatalf("expanding should show the child: %+v", m.rows)
	}

	// left on a child jumps to its parent, left on the parent collapses it.
	settle(t, m, key("down"))
	settle(t, m, key("left"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want parent", m.cursor)
	}
	settle(t, m, key("left"))
	if len(m.rows) != 1 {
		t.Fatalf("left should collapse: %+v", m.rows)
	}
}

func TestRenameAndDelete(t *testing.T) {
	m, _, mem := newModel(t)
	typeTitle(t, m, "a", "first")
	typeTitle(t, m, "a", "second")

	settle(t, m, key("e"))
	if m.input.Value() != "second" {
		t.Fatalf("rename should start from the title, got %q", m.input.Value())
	}
	m.input.SetValue("renamed")
	settle(t, m, key("enter"))
	if m.rows[1].Title != "renamed" {
		t.Fatalf("rows = %+v", m.rows)
	}

	settle(t, m, key("d"))
	settle(t, m, key("n"))
	if len(m.rows) != 2 || m.status != "delete cancelled" {
		t.Fatalf("delete should be cancelled: %+v %q", m.rows, m.status)
	}

	settle(t, m, key("d"))
	if !strings.Contains(m.View(), "(y/N)") {
		t.Fatal("confirmation prompt missing")
	}
	settle(t, m, key("y"))
	if len(m.rows) != 1 || m.rows[0].Title != "first" {
		t.Fatalf("rows = %+v", m.rows)
	}
	if m.selected != "g1" {
		t.Fatalf("selection should move to a remaining goal, got %q", m.selected)
	}
	if strings.Contains(mem.String(store.KeyGoals), "renamed") {
		t.Fatal("deleted goal still stored")
	}
}

func TestBlankTitleIsSkipped(t *testing.T) {
	m, _, mem := newModel(t)
	typeTitle(t, m, "a", "   ")
	if len(m.rows) != 0 {
		t.Fatalf("rows = %+v", m.rows)
	}
	if !m.warn || !strings.HasPrefix(m.status, "skipped: ") {
		t.Fatalf("status = %q", m.status)
	}
	if mem.Has(store.KeyGoals) {
		t.Fatal("blank title must not be stored")
	}
}

func TestEscCancelsInput(t *testing.T) {
	m, _, _ := newModel(t)
	settle(t, m, key("a"))
	if m.mode != modeAddRoot {
		t.Fatalf("mode = %v", m.mode)
	}
	m.input.SetValue("draft")
	settle(t, m, key("esc"))
	if m.mode != modeBrowse || m.input.Value() != "" || len(m.rows) != 0 {
		t.Fatalf("esc should discard the draft: mode %v value %q", m.mode, m.input.Value())
	}
}

func TestEmptyTreeKeysAreSafe(t *testing.T) {
	m, _, _ := newModel(t)
	for _, k := range []string{"down", "up", "x", "enter", "left", "s", "e", "d"} {
		settle(t, m, key(k))
		if m.mode != modeBrowse {
			t.Fatalf("%s changed mode to %v on an empty tree", k, m.mode)
		}
	}
	if !strings.Contains(m.View(), "No goals yet") {
		t.Fatalf("view:\n%s", m.View())
	}
}

func TestWatchReloads(t *testing.T) {
	m, goals, _ := newModel(t)
	if _, err := goals.Add(context.Background(), "from elsewhere"); err != nil {
		t.Fatal(err)
	}
	settle(t, m, watchEventMsg{event: store.Event{Type: store.EventWritten, Key: store.KeyEnglishGoals}})
	if len(m.rows) != 0 {
		t.Fatal("unrelated keys should not reload")
	}
	settle(t, m, watchEventMsg{event: store.Event{Type: store.EventWritten, Key: store.KeyGoals}})
	if len(m.rows) != 1 {
		t.Fatalf("rows = %+v", m.rows)
	}
}

func TestScroll(t *testing.T) {
	m, _, _ := newModel(t)
	for i := 0; i < 10; i++ {
		typeTitle(t, m, "a", fmt.Sprintf("goal %d", i))
	}
	settle(t, m, tea.WindowSizeMsg{Width: 80, Height: 7})
	settle(t, m, key("g"))
	for i := 0; i < 6; i++ {
		settle(t, m, key("j"))
	}
	if m.cursor != 6 || m.offset != 4 {
		t.Fatalf("cursor/offset = %d/%d", m.cursor, m.offset)
	}
	view := m.View()
	if strings.Contains(view, "goal 3") || !strings.Contains(view, "goal 6") {
		t.Fatalf("view window wrong:\n%s", view)
	}
}

func TestHelpToggles(t *testing.T) {
	m, _, _ := newModel(t)
	settle(t, m, key("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Goal tree") {
		t.Fatalf("help not shown:\n%s", m.View())
	}
	// Keys go to the help screen, not the tree.
	settle(t, m, key("a"))
	if m.mode != modeBrowse {
		t.Fatal("help should swallow editing keys")
	}
	settle(t, m, key("?"))
	if m.showHelp || !strings.Contains(m.View(), "No goals yet") {
		t.Fatalf("help not closed:\n%s", m.View())
	}
}

// slowGoalsKV makes every goals read wait for a second reader or a short
// timeout, widening the window in which two edits could overlap.
type slowGoalsKV struct {
	*store.Memory
	arrived chan struct{}
}

func (k *slowGoalsKV) Read(key string) ([]byte, error) {
	b, err := k.Memory.Read(key)
	if key == store.KeyGoals {
		select {
		case k.arrived <- struct{}{}:
		case <-k.arrived:
		case <-time.After(50 * time.Millisecond):
		}
	}
	return b, err
}

func TestRapidEditsAreNotLost(t *testing.T) {
	kv := &slowGoalsKV{
		Memory: store.NewMemory(map[string]string{
			store.KeyGoals: `[{"id":"a","title":"A"},{"id":"b","title":"B"}]`,
		}),
		arrived: make(chan struct{}),
	}
	goals := app.New(kv, app.Options{}).Goals
	m := New(context.Background(), goals)
	settle(t, m, m.load("")())

	// bubbletea runs each command on its own goroutine.
	_, first := m.Update(key("x"))
	settle(t, m, key("down"))
	_, second := m.Update(key("x"))
	if first == nil || second == nil {
		t.Fatal("toggle should return a command")
	}
	msgs := make([]tea.Msg, 2)
	var wg sync.WaitGroup
	for i, cmd := range []tea.Cmd{first, second} {
		wg.Add(1)
		go func(i int, cmd tea.Cmd) {
			defer wg.Done()
			msgs[i] = cmd()
		}(i, cmd)
	}
	wg.Wait()
	for _, msg := range msgs {
		settle(t, m, msg)
	}

	f, err := goals.Forest(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if f.CountCompleted() != 2 {
		t.Fatalf("expected both goals completed, got %d", f.CountCompleted())
	}
	for _, r := range m.rows {
		if !r.Completed {
			t.Fatalf("view lost an edit: %+v", m.rows)
		}
	}
}

func TestDiskReloadSeesOtherWriters(t *testing.T) {
	dir := t.TempDir()
	mine, err := store.Open(store.PathConfig(dir), nil)
	if err != nil {
		t.Fatal(err)
	}
	other, err := store.Open(store.PathConfig(dir), nil)
	if err != nil {
		t.Fatal(err)
	}
	m := New(context.Background(), app.New(mine, app.Options{}).Goals)
	settle(t, m, m.load("")())
	if len(m.rows) != 0 {
		t.Fatalf("rows = %+v", m.rows)
	}

	if _, err := app.New(other, app.Options{}).Goals.Add(context.Background(), "from the CLI"); err != nil {
		t.Fatal(err)
	}
	settle(t, m, watchEventMsg{event: store.Event{Type: store.EventWritten, Key: store.KeyGoals}})
	if len(m.rows) != 1 || m.rows[0].Title != "from the CLI" {
		t.Fatalf("reload served stale rows: %+v", m.rows)
	}
}
