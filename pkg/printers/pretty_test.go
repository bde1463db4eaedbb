package printers

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/goal"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/stats"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

func newPrinter(showID bool) (*PrettyPrint, *bytes.Buffer) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	return &PrettyPrint{ShowID: showID, Out: buf}, buf
}

func TestGoals(t *testing.T) {
	pp, buf := newPrinter(false)
	pp.Goals([]goal.Row{
		{ID: "1", Title: "Read book", Expanded: true, HasChildren: true},
		{ID: "2", Title: "Chapter 1", Completed: true, Depth: 1},
		{ID: "3", Title: "Run", HasChildren: true},
	})
	want := "▾ [ ] Read book\n" +
		"    [x] Chapter 1\n" +
		"▸ [ ] Run\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Fatalf("Goals() =\n%q\nwant\n%q", got, want)
	}
}

func TestGoalsShowID(t *testing.T) {
	pp, buf := newPrinter(true)
	pp.Goals([]goal.Row{{ID: "abc", Title: "x"}})
	line := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.HasPrefix(line, "abc ") || !strings.HasSuffix(line, "  [ ] x") {
		t.Fatalf("unexpected line %q", line)
	}
	if got := strings.Index(line, "["); got != len(spacing)+2 {
		t.Fatalf("checkbox column = %d, want %d", got, len(spacing)+2)
	}
}

func TestGoalsEmpty(t *testing.T) {
	pp, buf := newPrinter(false)
	pp.Goals(nil)
	if got := buf.String(); got != " none\n\n" {
		t.Fatalf("Goals(nil) = %q", got)
	}
}

func TestMessages(t *testing.T) {
	pp, buf := newPrinter(false)
	pp.Advisory(errors.New("title is required"))
	pp.Missing("goal", "g9")
	pp.Done("added %s", "g1")
	want := "skipped: title is required\n" +
		"no goal with id \"g9\", nothing changed\n" +
		"added g1\n"
	if got := buf.String(); got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}

func TestLessons(t *testing.T) {
	pp, buf := newPrinter(false)
	s := lesson.Schedule{
		{ID: "l1", Name: "Math", Time: "09:00", Topic: "Algebra", Days: []int{1, 3}},
		{ID: "l2", Name: "Physics", Time: "14:00", Completed: true},
	}
	pp.Lessons(s, "l1")
	out := buf.String()
	for _, want := range []string{"Math", "Algebra", "Du Ch", "now", "[x]", "Physics"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "l1") {
		t.Errorf("ids should be hidden:\n%s", out)
	}
}

func TestPrayers(t *testing.T) {
	pp, buf := newPrinter(false)
	c := prayer.Defaults()
	for i := range c {
		c[i].Completed = true
	}
	pp.Prayers(c)
	out := buf.String()
	if !strings.Contains(out, "Prayers 5/5") || !strings.Contains(out, "All prayers done") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestFormatSets(t *testing.T) {
	got := FormatSets([]sport.Set{{Reps: 10, Weight: 42.5}, {Reps: 8, Weight: 40}})
	if got != "10x42.5, 8x40" {
		t.Fatalf("FormatSets() = %q", got)
	}
}

func TestHistory(t *testing.T) {
	pp, buf := newPrinter(false)
	e := sport.Exercise{ID: "e1", Name: "Squat"}
	pp.History(e, []sport.Workout{{ID: "w1", ExerciseID: "e1", Date: time.Now(), Sets: []sport.Set{{Reps: 5, Weight: 100}}}})
	out := buf.String()
	if !strings.Contains(out, "Squat - 1 workout\n") || !strings.Contains(out, "5x100") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestMonthCount(t *testing.T) {
	pp, buf := newPrinter(false)
	// March 2024 starts on a Friday.
	then := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	pp.WorkoutCalendar(then, []sport.Workout{{Date: then}})
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "March 2024") {
		t.Fatalf("header = %q", lines[0])
	}
	if want := strings.Repeat("   ", 5) + " 1  2 "; lines[1] != want {
		t.Fatalf("first week = %q, want %q", lines[1], want)
	}
	if DaysIn(then) != 31 || StartDay(then) != time.Friday {
		t.Fatalf("DaysIn/StartDay = %d/%v", DaysIn(then), StartDay(then))
	}
}

func TestBar(t *testing.T) {
	tests := map[int]int{-5: 0, 0: 0, 50: 10, 100: 20, 140: 20}
	for in, filled := range tests {
		got := Bar(in)
		if n := strings.Count(got, "█"); n != filled {
			t.Errorf("Bar(%d) filled = %d, want %d", in, n, filled)
		}
		if n := len([]rune(got)); n != barWidth {
			t.Errorf("Bar(%d) width = %d", in, n)
		}
	}
}

func TestEnglishAndStats(t *testing.T) {
	pp, buf := newPrinter(false)
	pp.English("", english.Goals{{ID: "1", Title: "IELTS", Progress: 40}, {ID: "2", Title: "Read", Progress: 60}})
	pp.Stats(stats.Snapshot{TotalGoals: 4, CompletedGoals: 2})
	out := buf.String()
	for _, want := range []string{"Current level", " none", "Goals - 2 goals", "IELTS", "average 50%", "Statistics", "2/4", "50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := JSON(buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("JSON() = %q", got)
	}
}

func TestResult(t *testing.T) {
	boom := errors.New("disk full")
	tests := []struct {
		name    string
		changed bool
		err     error
		want    string
		wantErr error
	}{
		{name: "done", changed: true, want: "toggled\n"},
		{name: "missing", want: "no goal with id \"x\", nothing changed\n"},
		{name: "advisory", err: validation.Advisory("title is required"), want: "skipped: invalid input: title is required\n"},
		{name: "failure", err: boom, wantErr: boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp, buf := newPrinter(false)
			err := pp.Result("goal", "x", tt.changed, tt.err, "toggled")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Result() err = %v, want %v", err, tt.wantErr)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("Result() printed %q, want %q", got, tt.want)
			}
		})
	}
}
