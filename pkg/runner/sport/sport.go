// Package sport provides the runners behind the sport commands.
package sport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/timeutil"
)

var errNoService = errors.New("can not run sport command, no service")

// Exercises prints the catalogue.
type Exercises struct {
	Sport  *app.Sport
	ShowID bool
	JSON   bool
	Out    io.Writer
}

// Do loads and prints the catalogue.
func (x *Exercises) Do(ctx context.Context) error {
	if x.Sport == nil {
		return errNoService
	}
	l, err := x.Sport.Log(ctx)
	if err != nil {
		return err
	}
	if x.JSON {
		exercises := l.Exercises
		if exercises == nil {
			exercises = []sport.Exercise{}
		}
		return printers.JSON(out(x.Out), exercises)
	}
	pp := printers.PrettyPrint{ShowID: x.ShowID, Out: x.Out}
	pp.NewLine()
	pp.TitleWithCount("Exercises", len(l.Exercises), "exercise")
	pp.Exercises(l)
	return nil
}

// AddExercise adds an exercise to the catalogue.
type AddExercise struct {
	Sport  *app.Sport
	Name   string
	ShowID bool
	Out    io.Writer
}

// Do adds the exercise and prints the catalogue.
func (a *AddExercise) Do(ctx context.Context) error {
	if a.Sport == nil {
		return errNoService
	}
	pp := printers.PrettyPrint{ShowID: a.ShowID, Out: a.Out}
	e, err := a.Sport.AddExercise(ctx, a.Name)
	if err := pp.Result("exercise", "", err == nil, err, "added "+e.ID); err != nil || e.ID == "" {
		return err
	}
	x := Exercises{Sport: a.Sport, ShowID: a.ShowID, Out: a.Out}
	return x.Do(ctx)
}

// DeleteExercise removes an exercise and its workouts.
type DeleteExercise struct {
	Sport *app.Sport
	ID    string
	Out   io.Writer
}

// Do removes the exercise.
func (d *DeleteExercise) Do(ctx context.Context) error {
	if d.Sport == nil {
		return errNoService
	}
	pp := printers.PrettyPrint{Out: d.Out}
	changed, err := d.Sport.DeleteExercise(ctx, d.ID)
	return pp.Result("exercise", d.ID, changed, err, "deleted "+d.ID+" and its workouts")
}

// LogWorkout records sets for an exercise.
type LogWorkout struct {
	Sport      *app.Sport
	ExerciseID string
	Sets       []sport.Set
	JSON       bool
	Out        io.Writer
}

// Do saves the workout.
func (w *LogWorkout) Do(ctx context.Context) error {
	if w.Sport == nil {
		return errNoService
	}
	pp := printers.PrettyPrint{Out: w.Out}
	saved, err := w.Sport.SaveWorkout(ctx, w.ExerciseID, w.Sets)
	if w.JSON {
		if err != nil {
			return err
		}
		return printers.JSON(out(w.Out), saved)
	}
	return pp.Result("exercise", w.ExerciseID, err == nil, err,
		fmt.Sprintf("logged %s", printers.FormatSets(saved.Sets)))
}

// History prints the workouts of one exercise, or of every exercise when
// ExerciseID is empty.
type History struct {
	Sport      *app.Sport
	ExerciseID string
	ShowID     bool
	JSON       bool
	Out        io.Writer

	// Days limits the history to the last n days; 0 shows everything.
	Days int
}

// Do loads and prints the history.
func (h *History) Do(ctx context.Context) error {
	if h.Sport == nil {
		return errNoService
	}
	pp := printers.PrettyPrint{ShowID: h.ShowID, Out: h.Out}
	l, err := h.Sport.Log(ctx)
	if err != nil {
		return err
	}
	exercises := l.Exercises
	if h.ExerciseID != "" {
		e, ok := l.Exercise(h.ExerciseID)
		if !ok {
			pp.Missing("exercise", h.ExerciseID)
			return nil
		}
		exercises = []sport.Exercise{e}
	}
	if h.JSON {
		history := map[string][]sport.Workout{}
		for _, e := range exercises {
			history[e.ID] = h.recent(l.WorkoutsFor(e.ID))
		}
		return printers.JSON(out(h.Out), history)
	}
	pp.NewLine()
	if len(exercises) == 0 {
		pp.None()
		return nil
	}
	for _, e := range exercises {
		pp.History(e, h.recent(l.WorkoutsFor(e.ID)))
	}
	return nil
}

func (h *History) recent(workouts []sport.Workout) []sport.Workout {
	if h.Days <= 0 {
		return workouts
	}
	now := h.Sport.Now()
	out := make([]sport.Workout, 0, len(workouts))
	for _, w := range workouts {
		if timeutil.Within(w.Date, now, h.Days) {
			out = append(out, w)
		}
	}
	return out
}

// Calendar prints a month grid marking the days with workouts.
type Calendar struct {
	Sport *app.Sport
	// Month is any time within the month to show; zero means this month.
	Month time.Time
	Out   io.Writer
}

// Do prints the month.
func (c *Calendar) Do(ctx context.Context) error {
	if c.Sport == nil {
		return errNoService
	}
	l, err := c.Sport.Log(ctx)
	if err != nil {
		return err
	}
	month := c.Month
	if month.IsZero() {
		month = c.Sport.Now()
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.NewLine()
	pp.WorkoutCalendar(month, l.Workouts)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
