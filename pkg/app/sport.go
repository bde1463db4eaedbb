package app

import (
	"context"
	"sync"
	"time"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// Sport controls the exercise catalogue and the workout history, stored
// under separate keys.
type Sport struct {
	Exercises store.Repository[[]sport.Exercise]
	Workouts  store.Repository[[]sport.Workout]
	NewID     func() string
	Now       func() time.Time

	mu sync.Mutex
}

// Log loads the catalogue and the history.
func (s *Sport) Log(ctx context.Context) (*sport.Log, error) {
	if s.Exercises == nil || s.Workouts == nil {
		return nil, errNoStore
	}
	exercises, err := s.Exercises.Load(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.Workouts.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &sport.Log{Exercises: exercises, Workouts: workouts}, nil
}

// AddExercise adds an exercise to the catalogue.
func (s *Sport) AddExercise(ctx context.Context, name string) (sport.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.Log(ctx)
	if err != nil {
		return sport.Exercise{}, err
	}
	e, err := l.AddExercise(s.NewID(), name)
	if err != nil {
		return sport.Exercise{}, err
	}
	return e, s.Exercises.Save(ctx, l.Exercises)
}

// DeleteExercise removes an exercise and every workout logged for it.
func (s *Sport) DeleteExercise(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.Log(ctx)
	if err != nil {
		return false, err
	}
	if !l.DeleteExercise(id) {
		return false, nil
	}
	if err := s.Exercises.Save(ctx, l.Exercises); err != nil {
		return false, err
	}
	return true, s.Workouts.Save(ctx, l.Workouts)
}

// SaveWorkout records the given sets for an exercise now.
func (s *Sport) SaveWorkout(ctx context.Context, exerciseID string, sets []sport.Set) (sport.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.Log(ctx)
	if err != nil {
		return sport.Workout{}, err
	}
	w, err := l.SaveWorkout(s.NewID(), exerciseID, sets, s.Now())
	if err != nil {
		return sport.Workout{}, err
	}
	return w, s.Workouts.Save(ctx, l.Workouts)
}

// History returns the workouts for one exercise, newest first.
func (s *Sport) History(ctx context.Context, exerciseID string) (sport.Exercise, []sport.Workout, error) {
	l, err := s.Log(ctx)
	if err != nil {
		return sport.Exercise{}, nil, err
	}
	e, ok := l.Exercise(exerciseID)
	if !ok {
		return sport.Exercise{}, nil, sport.ErrNoExercise
	}
	return e, l.WorkoutsFor(exerciseID), nil
}
