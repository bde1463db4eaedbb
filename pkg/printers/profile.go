package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/stats"
)

const barWidth = 20

// Bar draws a percentage as a fixed width bar.
func Bar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// English writes the position text and the goals with their progress.
func (pp *PrettyPrint) English(position string, goals english.Goals) {
	pp.Title("Current level")
	if strings.TrimSpace(position) == "" {
		pp.None()
	} else {
		_, _ = fmt.Fprintln(pp.out(), position)
		pp.NewLine()
	}

	pp.TitleWithCount("Goals", len(goals), "goal")
	if len(goals) == 0 {
		pp.None()
		return
	}
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, g := range goals {
		row := []interface{}{g.Title, Bar(g.Progress), fmt.Sprintf("%3d%%", g.Progress), faint.Sprint(g.Description)}
		if pp.ShowID {
			row = append([]interface{}{g.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = faint.Fprintf(pp.out(), "average %.0f%%\n", goals.AverageProgress())
	pp.NewLine()
}

// Stats writes the summary table.
func (pp *PrettyPrint) Stats(s stats.Snapshot) {
	pp.Title("Statistics")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Goals"), fmt.Sprintf("%d/%d", s.CompletedGoals, s.TotalGoals), Bar(s.GoalsPercent()), fmt.Sprintf("%d%%", s.GoalsPercent()))
	tbl.AddRow(bold.Sprint("Lessons"), fmt.Sprintf("%d/%d", s.CompletedLessons, s.TotalLessons), Bar(s.LessonsPercent()), fmt.Sprintf("%d%%", s.LessonsPercent()))
	tbl.AddRow(bold.Sprint("Prayers"), fmt.Sprintf("%d/%d", s.CompletedPrayers, s.TotalPrayers), Bar(s.PrayersPercent()), fmt.Sprintf("%d%%", s.PrayersPercent()))
	tbl.AddRow(bold.Sprint("Workouts"), fmt.Sprint(s.TotalWorkouts), "", "")
	tbl.AddRow(bold.Sprint("English goals"), fmt.Sprint(s.EnglishGoals), "", "")
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
