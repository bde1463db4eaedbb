package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/goal"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// PrettyPrint renders tracker state for a terminal.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("3f9a1c52-7d1e-4b6a-9e0f-5c8d2b7a4e61  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, plural(noun, count))
	_, _ = fmt.Fprintln(pp.out(), "")
}

func plural(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

// ID writes the id column when ShowID is set.
func (pp *PrettyPrint) ID(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	pad := len(spacing) - len(id)
	if pad < 2 {
		pad = 2
	}
	_, _ = y.Fprint(pp.out(), id+strings.Repeat(" ", pad))
}

// None writes the placeholder for an empty list.
func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Advisory reports a skipped operation. The state was not changed.
func (pp *PrettyPrint) Advisory(err error) {
	y := color.New(color.FgYellow)
	_, _ = y.Fprintf(pp.out(), "skipped: %v\n", err)
}

// Missing reports an id that matched nothing.
func (pp *PrettyPrint) Missing(kind, id string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), "no %s with id %q, nothing changed\n", kind, id)
}

// Done confirms a change.
func (pp *PrettyPrint) Done(format string, args ...interface{}) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(pp.out(), format+"\n", args...)
}

// Checkbox is the completion marker used by every checklist.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// Disclosure is the expand marker for a goal row.
func Disclosure(r goal.Row) string {
	switch {
	case !r.HasChildren:
		return " "
	case r.Expanded:
		return "▾"
	default:
		return "▸"
	}
}

// Goals writes goal rows indented by depth.
func (pp *PrettyPrint) Goals(rows []goal.Row) {
	if len(rows) == 0 {
		pp.None()
		return
	}

	t := color.New()
	d := color.New(color.Faint, color.CrossedOut)

	for _, r := range rows {
		pp.ID(r.ID)
		p := t
		if r.Completed {
			p = d
		}
		_, _ = t.Fprintf(pp.out(), "%s%s %s ", strings.Repeat("  ", r.Depth), Disclosure(r), Checkbox(r.Completed))
		_, _ = p.Fprintln(pp.out(), r.Title)
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Result reports the outcome of one change. Advisory errors are printed and
// swallowed, other errors are returned. An unchanged result names the id
// that matched nothing.
func (pp *PrettyPrint) Result(kind, id string, changed bool, err error, done string) error {
	if err != nil {
		if validation.IsAdvisory(err) {
			pp.Advisory(err)
			return nil
		}
		return err
	}
	if !changed {
		pp.Missing(kind, id)
		return nil
	}
	if done != "" {
		pp.Done("%s", done)
	}
	return nil
}
