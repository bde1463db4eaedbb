// Package sport models the exercise catalogue and the workout history.
package sport

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

var (
	// ErrNoExercise is returned when a workout names an unknown exercise.
	ErrNoExercise = fmt.Errorf("%w: choose an exercise first", validation.ErrInvalid)
	// ErrNoSets is returned when a workout has no set with reps or weight.
	ErrNoSets = fmt.Errorf("%w: enter at least one set", validation.ErrInvalid)
	// ErrEmptyName is returned for a blank exercise name.
	ErrEmptyName = fmt.Errorf("%w: exercise name is required", validation.ErrInvalid)
)

// Exercise is a named movement workouts are logged against.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Set is one round of an exercise.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func (s Set) empty() bool {
	return s.Reps <= 0 && s.Weight <= 0
}

// Workout is a dated list of sets for one exercise.
type Workout struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exerciseId"`
	Date       time.Time `json:"date"`
	Sets       []Set     `json:"sets"`
}

// Log holds the catalogue and the history. Workouts are kept newest first.
type Log struct {
	Exercises []Exercise
	Workouts  []Workout
}

// AddExercise appends a new exercise.
func (l *Log) AddExercise(id, name string) (Exercise, error) {
	if strings.TrimSpace(name) == "" {
		return Exercise{}, ErrEmptyName
	}
	e := Exercise{ID: id, Name: name}
	l.Exercises = append(l.Exercises, e)
	return e, nil
}

// DeleteExercise removes an exercise together with its workouts.
func (l *Log) DeleteExercise(id string) bool {
	if _, ok := l.Exercise(id); !ok {
		return false
	}
	exercises := make([]Exercise, 0, len(l.Exercises))
	for _, e := range l.Exercises {
		if e.ID != id {
			exercises = append(exercises, e)
		}
	}
	workouts := make([]Workout, 0, len(l.Workouts))
	for _, w := range l.Workouts {
		if w.ExerciseID != id {
			workouts = append(workouts, w)
		}
	}
	l.Exercises, l.Workouts = exercises, workouts
	return true
}

// Exercise looks up an exercise by id.
func (l *Log) Exercise(id string) (Exercise, bool) {
	for _, e := range l.Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// SaveWorkout records sets for an exercise at now. Sets with neither reps
// nor weight are dropped.
func (l *Log) SaveWorkout(id, exerciseID string, sets []Set, now time.Time) (Workout, error) {
	if _, ok := l.Exercise(exerciseID); !ok {
		return Workout{}, ErrNoExercise
	}
	kept := make([]Set, 0, len(sets))
	for _, s := range sets {
		if !s.empty() {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return Workout{}, ErrNoSets
	}
	w := Workout{ID: id, ExerciseID: exerciseID, Date: now.UTC(), Sets: kept}
	l.Workouts = append([]Workout{w}, l.Workouts...)
	return w, nil
}

// WorkoutsFor returns an exercise's workouts, newest first.
func (l *Log) WorkoutsFor(exerciseID string) []Workout {
	var out []Workout
	for _, w := range l.Workouts {
		if w.ExerciseID == exerciseID {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
