package printers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
)

// Exercises writes the catalogue with the number of logged workouts.
func (pp *PrettyPrint) Exercises(l *sport.Log) {
	if l == nil || len(l.Exercises) == 0 {
		pp.None()
		return
	}
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range l.Exercises {
		n := len(l.WorkoutsFor(e.ID))
		row := []interface{}{e.Name, faint.Sprintf("%d %s", n, plural("workout", n))}
		if pp.ShowID {
			row = append([]interface{}{e.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// History writes the workouts of one exercise, newest first.
func (pp *PrettyPrint) History(e sport.Exercise, workouts []sport.Workout) {
	pp.TitleWithCount(e.Name, len(workouts), "workout")
	if len(workouts) == 0 {
		pp.None()
		return
	}
	faint := color.New(color.Faint)
	for _, w := range workouts {
		pp.ID(w.ID)
		_, _ = faint.Fprint(pp.out(), w.Date.Local().Format("Jan 2 2006 15:04"))
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", FormatSets(w.Sets))
	}
	pp.NewLine()
}

// FormatSets joins sets as reps x weight.
func FormatSets(sets []sport.Set) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		parts = append(parts, fmt.Sprintf("%dx%s", s.Reps, strconv.FormatFloat(s.Weight, 'f', -1, 64)))
	}
	return strings.Join(parts, ", ")
}

// WorkoutCalendar writes one month with the days holding a workout in bold.
func (pp *PrettyPrint) WorkoutCalendar(then time.Time, workouts []sport.Workout) {
	days := DaysIn(then)
	count := make([]int, days)
	for _, w := range workouts {
		d := w.Date.In(then.Location())
		if d.Year() == then.Year() && d.Month() == then.Month() {
			count[d.Day()-1]++
		}
	}
	pp.MonthCount(then, count)
}
