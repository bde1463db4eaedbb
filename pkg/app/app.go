// Package app binds each view's model to its repository. Every mutating call
// loads the whole state, applies one change, and saves it back, so CLIs and
// the TUI share one behaviour.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/goal"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

var errNoStore = errors.New("app: no persistence configured")

// Options customises New.
type Options struct {
	Logger *zap.Logger
	// NewID generates ids for new records. Defaults to random UUIDs.
	NewID func() string
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Service groups the per-view controllers over one store.
type Service struct {
	Goals   *Goals
	Lessons *Lessons
	Prayers *Prayers
	Sport   *Sport
	English *English

	kv     store.KV
	logger *zap.Logger
}

// New wires a repository per entity over kv.
func New(kv store.KV, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := opts.Logger
	return &Service{
		Goals: &Goals{
			Repo:  store.NewJSON[*goal.Forest](kv, store.KeyGoals, log),
			NewID: opts.NewID,
		},
		Lessons: &Lessons{
			Repo:  store.NewJSON[lesson.Schedule](kv, store.KeyLessons, log),
			NewID: opts.NewID,
			Now:   opts.Now,
		},
		Prayers: &Prayers{
			Repo:      store.NewJSON[prayer.Checklist](kv, store.KeyPrayers, log),
			LastReset: store.NewText(kv, store.KeyPrayersLastReset),
			NewID:     opts.NewID,
			Now:       opts.Now,
			Logger:    log,
		},
		Sport: &Sport{
			Exercises: store.NewJSON[[]sport.Exercise](kv, store.KeyExercises, log),
			Workouts:  store.NewJSON[[]sport.Workout](kv, store.KeyWorkouts, log),
			NewID:     opts.NewID,
			Now:       opts.Now,
		},
		English: &English{
			GoalsRepo:    store.NewJSON[english.Goals](kv, store.KeyEnglishGoals, log),
			PositionRepo: store.NewText(kv, store.KeyEnglishPosition),
			NewID:        opts.NewID,
		},
		kv:     kv,
		logger: log,
	}
}

// Store exposes the underlying key-value store.
func (s *Service) Store() store.KV {
	return s.kv
}

// Reset erases every view's state.
func (s *Service) Reset(_ context.Context) error {
	if s.kv == nil {
		return errNoStore
	}
	if err := store.ClearAll(s.kv); err != nil {
		return err
	}
	s.logger.Info("cleared all tracker data")
	return nil
}
