// Package lessons provides the runners behind the lessons commands.
package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
)

// List prints the schedule. With Today set only lessons held on the
// current weekday are listed.
type List struct {
	Lessons *app.Lessons
	Today   bool
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

// Do loads and prints the schedule.
func (l *List) Do(ctx context.Context) error {
	if l.Lessons == nil {
		return errors.New("can not list lessons, no service")
	}
	s, err := l.Lessons.List(ctx)
	if err != nil {
		return err
	}
	cur, ok, err := l.Lessons.Current(ctx)
	if err != nil {
		return err
	}
	if l.Today {
		s = today(s, l.Lessons.Now())
	}
	if l.JSON {
		if s == nil {
			s = lesson.Schedule{}
		}
		return printers.JSON(out(l.Out), s)
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: l.Out}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Lessons %d/%d", s.Completed(), len(s)))
	currentID := ""
	if ok {
		currentID = cur.ID
	}
	pp.Lessons(s, currentID)
	return nil
}

func today(s lesson.Schedule, now time.Time) lesson.Schedule {
	out := lesson.Schedule{}
	for _, l := range s {
		if l.On(now.Weekday()) {
			out = append(out, l)
		}
	}
	return out
}

// Now prints the lesson happening now.
type Now struct {
	Lessons *app.Lessons
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

// Do looks up and prints the current lesson.
func (n *Now) Do(ctx context.Context) error {
	if n.Lessons == nil {
		return errors.New("can not find lesson, no service")
	}
	cur, ok, err := n.Lessons.Current(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		if !ok {
			return printers.JSON(out(n.Out), nil)
		}
		return printers.JSON(out(n.Out), cur)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Current(cur, ok)
	return nil
}

// Op is a change to the schedule.
type Op int

const (
	Add Op = iota
	Update
	Toggle
	Delete
)

// Edit applies one change and prints the schedule.
type Edit struct {
	Lessons *app.Lessons
	Op      Op
	ID      string
	Input   lesson.Input
	ShowID  bool
	Out     io.Writer
}

// Do runs the change.
func (e *Edit) Do(ctx context.Context) error {
	if e.Lessons == nil {
		return errors.New("can not edit lessons, no service")
	}
	pp := printers.PrettyPrint{ShowID: e.ShowID, Out: e.Out}

	var (
		changed bool
		err     error
		done    string
	)
	switch e.Op {
	case Add:
		var l lesson.Lesson
		l, err = e.Lessons.Add(ctx, e.Input)
		changed, done = err == nil, "added "+l.ID
	case Update:
		changed, err = e.Lessons.Update(ctx, e.ID, e.Input)
		done = "updated " + e.ID
	case Toggle:
		changed, err = e.Lessons.Toggle(ctx, e.ID)
		done = "toggled " + e.ID
	case Delete:
		changed, err = e.Lessons.Delete(ctx, e.ID)
		done = "deleted " + e.ID
	default:
		return fmt.Errorf("unknown lesson operation %d", e.Op)
	}
	if err := pp.Result("lesson", e.ID, changed, err, done); err != nil || !changed {
		return err
	}
	list := List{Lessons: e.Lessons, ShowID: e.ShowID, Out: e.Out}
	return list.Do(ctx)
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
