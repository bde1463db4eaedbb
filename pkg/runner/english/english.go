// Package english provides the runners behind the english commands.
package english

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
)

// List prints the position text and the goals.
type List struct {
	English *app.English
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

type listing struct {
	Position string        `json:"position"`
	Goals    english.Goals `json:"goals"`
	Average  float64       `json:"averageProgress"`
}

// Do loads and prints the language page.
func (l *List) Do(ctx context.Context) error {
	if l.English == nil {
		return errors.New("can not list english goals, no service")
	}
	pos, err := l.English.Position(ctx)
	if err != nil {
		return err
	}
	goals, err := l.English.List(ctx)
	if err != nil {
		return err
	}
	if l.JSON {
		if goals == nil {
			goals = english.Goals{}
		}
		w := l.Out
		if w == nil {
			w = color.Output
		}
		return printers.JSON(w, listing{Position: pos, Goals: goals, Average: goals.AverageProgress()})
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: l.Out}
	pp.NewLine()
	pp.English(pos, goals)
	return nil
}

// Op is a change to the language page.
type Op int

const (
	Add Op = iota
	Update
	SetProgress
	Delete
	SetPosition
)

// Edit applies one change and prints the page.
type Edit struct {
	English  *app.English
	Op       Op
	ID       string
	Input    english.Input
	Progress int
	Position string
	ShowID   bool
	Out      io.Writer
}

// Do runs the change.
func (e *Edit) Do(ctx context.Context) error {
	if e.English == nil {
		return errors.New("can not edit english goals, no service")
	}
	pp := printers.PrettyPrint{ShowID: e.ShowID, Out: e.Out}

	var (
		changed bool
		err     error
		done    string
	)
	switch e.Op {
	case Add:
		var g english.Goal
		g, err = e.English.Add(ctx, e.Input)
		changed, done = err == nil, "added "+g.ID
	case Update:
		changed, err = e.English.Update(ctx, e.ID, e.Input)
		done = "updated " + e.ID
	case SetProgress:
		changed, err = e.English.SetProgress(ctx, e.ID, e.Progress)
		done = "updated " + e.ID
	case Delete:
		changed, err = e.English.Delete(ctx, e.ID)
		done = "deleted " + e.ID
	case SetPosition:
		err = e.English.SetPosition(ctx, e.Position)
		changed, done = err == nil, "saved current level"
	default:
		return fmt.Errorf("unknown english operation %d", e.Op)
	}
	if err := pp.Result("goal", e.ID, changed, err, done); err != nil || !changed {
		return err
	}
	list := List{English: e.English, ShowID: e.ShowID, Out: e.Out}
	return list.Do(ctx)
}
