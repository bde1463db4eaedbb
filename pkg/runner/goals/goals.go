// Package goals provides the runners behind the goals commands.
package goals

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
)

// List prints the goal tree.
type List struct {
	Goals *app.Goals
	// All ignores collapsed goals and prints every level.
	All    bool
	ShowID bool
	JSON   bool
	Out    io.Writer
}

// Do loads and prints the forest.
func (l *List) Do(ctx context.Context) error {
	if l.Goals == nil {
		return errors.New("can not list goals, no service")
	}
	f, err := l.Goals.Forest(ctx)
	if err != nil {
		return err
	}
	if l.JSON {
		return printers.JSON(out(l.Out), f)
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: l.Out}
	rows := f.Visible()
	if l.All {
		rows = f.All()
	}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Goals %d/%d", f.CountCompleted(), f.Len()))
	pp.Goals(rows)
	return nil
}

// Show prints one goal and its whole subtree.
type Show struct {
	Goals  *app.Goals
	ID     string
	ShowID bool
	JSON   bool
	Out    io.Writer
}

// Do looks the goal up and prints it.
func (s *Show) Do(ctx context.Context) error {
	if s.Goals == nil {
		return errors.New("can not show goal, no service")
	}
	n, ok, err := s.Goals.Get(ctx, s.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: s.ShowID, Out: s.Out}
	if !ok {
		pp.Missing("goal", s.ID)
		return nil
	}
	if s.JSON {
		return printers.JSON(out(s.Out), n)
	}

	rows := n.Rows()
	done := 0
	for _, r := range rows {
		if r.Completed {
			done++
		}
	}
	pp.NewLine()
	pp.Title(fmt.Sprintf("%s %d/%d", n.Title, done, len(rows)))
	pp.Goals(rows)
	return nil
}

// Op is a change to the goal tree.
type Op int

const (
	Add Op = iota
	AddChild
	ToggleCompleted
	ToggleExpanded
	Rename
	Delete
)

// Edit applies one change and prints the resulting tree.
type Edit struct {
	Goals  *app.Goals
	Op     Op
	ID     string
	Title  string
	ShowID bool
	Out    io.Writer
}

// Do runs the change.
func (e *Edit) Do(ctx context.Context) error {
	if e.Goals == nil {
		return errors.New("can not edit goals, no service")
	}
	pp := printers.PrettyPrint{ShowID: e.ShowID, Out: e.Out}

	var (
		changed bool
		err     error
		done    string
	)
	switch e.Op {
	case Add:
		var id string
		id, err = e.Goals.Add(ctx, e.Title)
		changed, done = id != "", "added "+id
	case AddChild:
		var id string
		id, err = e.Goals.AddChild(ctx, e.ID, e.Title)
		changed, done = id != "", "added "+id
	case ToggleCompleted:
		changed, err = e.Goals.ToggleCompleted(ctx, e.ID)
		done = "toggled " + e.ID
	case ToggleExpanded:
		changed, err = e.Goals.ToggleExpanded(ctx, e.ID)
		done = "toggled " + e.ID
	case Rename:
		changed, err = e.Goals.Rename(ctx, e.ID, e.Title)
		done = "renamed " + e.ID
	case Delete:
		changed, err = e.Goals.Delete(ctx, e.ID)
		done = "deleted " + e.ID
	default:
		return fmt.Errorf("unknown goal operation %d", e.Op)
	}
	if err := pp.Result("goal", e.ID, changed, err, done); err != nil || !changed {
		return err
	}

	list := List{Goals: e.Goals, ShowID: e.ShowID, Out: e.Out}
	return list.Do(ctx)
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
