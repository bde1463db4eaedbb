// Package prayers provides the runners behind the prayers commands.
package prayers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
)

// List prints today's checklist.
type List struct {
	Prayers *app.Prayers
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

// Do loads and prints the checklist.
func (l *List) Do(ctx context.Context) error {
	if l.Prayers == nil {
		return errors.New("can not list prayers, no service")
	}
	c, err := l.Prayers.List(ctx)
	if err != nil {
		return err
	}
	if l.JSON {
		if c == nil {
			c = prayer.Checklist{}
		}
		w := l.Out
		if w == nil {
			w = color.Output
		}
		return printers.JSON(w, c)
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: l.Out}
	pp.NewLine()
	pp.Prayers(c)
	return nil
}

// Op is a change to the checklist.
type Op int

const (
	Add Op = iota
	Update
	SetTime
	Toggle
	Delete
)

// Edit applies one change and prints the checklist.
type Edit struct {
	Prayers *app.Prayers
	Op      Op
	ID      string
	Input   prayer.Input
	// Time is used by SetTime.
	Time   string
	ShowID bool
	Out    io.Writer
}

// Do runs the change.
func (e *Edit) Do(ctx context.Context) error {
	if e.Prayers == nil {
		return errors.New("can not edit prayers, no service")
	}
	pp := printers.PrettyPrint{ShowID: e.ShowID, Out: e.Out}

	var (
		changed bool
		err     error
		done    string
	)
	switch e.Op {
	case Add:
		var p prayer.Prayer
		p, err = e.Prayers.Add(ctx, e.Input)
		changed, done = err == nil, "added "+p.ID
	case Update:
		changed, err = e.Prayers.Update(ctx, e.ID, e.Input)
		done = "updated " + e.ID
	case SetTime:
		changed, err = e.Prayers.SetTime(ctx, e.ID, e.Time)
		done = fmt.Sprintf("moved %s to %s", e.ID, e.Time)
	case Toggle:
		changed, err = e.Prayers.Toggle(ctx, e.ID)
		done = "toggled " + e.ID
	case Delete:
		changed, err = e.Prayers.Delete(ctx, e.ID)
		done = "deleted " + e.ID
	default:
		return fmt.Errorf("unknown prayer operation %d", e.Op)
	}
	if err := pp.Result("prayer", e.ID, changed, err, done); err != nil || !changed {
		return err
	}
	list := List{Prayers: e.Prayers, ShowID: e.ShowID, Out: e.Out}
	return list.Do(ctx)
}
