// Package stats derives the profile summary from stored values. It only
// reads from the store.
package stats

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/goal"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// DefaultInterval is how often Watch re-derives without a change event.
const DefaultInterval = 2 * time.Second

// Snapshot is one derived summary.
type Snapshot struct {
	TotalGoals       int `json:"totalGoals"`
	CompletedGoals   int `json:"completedGoals"`
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	TotalWorkouts    int `json:"totalWorkouts"`
	TotalPrayers     int `json:"totalPrayers"`
	CompletedPrayers int `json:"completedPrayers"`
	EnglishGoals     int `json:"englishGoals"`
}

// GoalsPercent is the rounded share of completed goals, nested ones
// included.
func (s Snapshot) GoalsPercent() int {
	return percent(s.CompletedGoals, s.TotalGoals)
}

// LessonsPercent is the rounded share of completed lessons.
func (s Snapshot) LessonsPercent() int {
	return percent(s.CompletedLessons, s.TotalLessons)
}

// PrayersPercent is the rounded share of completed prayers.
func (s Snapshot) PrayersPercent() int {
	return percent(s.CompletedPrayers, s.TotalPrayers)
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// Derive reads every view's key and counts. Missing and malformed values
// count as empty. Stored values are taken as they are: a checklist that
// was never opened has no prayers yet.
func Derive(ctx context.Context, kv store.KV, logger *zap.Logger) (Snapshot, error) {
	var s Snapshot

	goals, err := store.NewJSON[*goal.Forest](kv, store.KeyGoals, logger).Load(ctx)
	if err != nil {
		return s, err
	}
	if goals != nil {
		s.TotalGoals = goals.Len()
		s.CompletedGoals = goals.CountCompleted()
	}

	lessons, err := store.NewJSON[lesson.Schedule](kv, store.KeyLessons, logger).Load(ctx)
	if err != nil {
		return s, err
	}
	s.TotalLessons = len(lessons)
	s.CompletedLessons = lessons.Completed()

	workouts, err := store.NewJSON[[]sport.Workout](kv, store.KeyWorkouts, logger).Load(ctx)
	if err != nil {
		return s, err
	}
	s.TotalWorkouts = len(workouts)

	prayers, err := store.NewJSON[prayer.Checklist](kv, store.KeyPrayers, logger).Load(ctx)
	if err != nil {
		return s, err
	}
	s.CompletedPrayers, s.TotalPrayers = prayers.Progress()

	eng, err := store.NewJSON[english.Goals](kv, store.KeyEnglishGoals, logger).Load(ctx)
	if err != nil {
		return s, err
	}
	s.EnglishGoals = len(eng)

	return s, nil
}
