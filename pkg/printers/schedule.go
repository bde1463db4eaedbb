package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
)

// Lessons writes the schedule as a table. The lesson with currentID is
// marked as happening now.
func (pp *PrettyPrint) Lessons(s lesson.Schedule, currentID string) {
	if len(s) == 0 {
		pp.None()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	now := color.New(color.FgHiGreen, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, l := range s {
		name := l.Name
		if l.Completed {
			name = faint.Sprint(name)
		}
		mark := ""
		if l.ID == currentID {
			mark = now.Sprint("now")
			name = bold.Sprint(l.Name)
		}
		row := []interface{}{Checkbox(l.Completed), l.Time, name, l.Topic, faint.Sprint(lesson.FormatDays(l.Days)), mark}
		if pp.ShowID {
			row = append([]interface{}{l.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Current writes the lesson happening now, if any.
func (pp *PrettyPrint) Current(l lesson.Lesson, ok bool) {
	if !ok {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "no lesson right now")
		return
	}
	b := color.New(color.Bold)
	pp.ID(l.ID)
	_, _ = b.Fprintf(pp.out(), "%s %s", l.Time, l.Name)
	if l.Topic != "" {
		_, _ = fmt.Fprintf(pp.out(), " - %s", l.Topic)
	}
	pp.NewLine()
}

// Prayers writes the checklist and today's progress.
func (pp *PrettyPrint) Prayers(c prayer.Checklist) {
	done, total := c.Progress()
	pp.Title(fmt.Sprintf("Prayers %d/%d", done, total))
	if total == 0 {
		pp.None()
		return
	}

	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range c {
		kind := ""
		if !p.IsDefault {
			kind = faint.Sprint("extra")
		}
		row := []interface{}{Checkbox(p.Completed), p.Time, p.Name, kind}
		if pp.ShowID {
			row = append([]interface{}{p.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	if c.AllDone() {
		g := color.New(color.FgGreen, color.Bold)
		_, _ = g.Fprintln(pp.out(), "All prayers done for today.")
	}
	pp.NewLine()
}
