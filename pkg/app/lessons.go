package app

import (
	"context"
	"sync"
	"time"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// Lessons controls the class schedule.
type Lessons struct {
	Repo  store.Repository[lesson.Schedule]
	NewID func() string
	Now   func() time.Time

	mu sync.Mutex
}

// List returns the schedule, sorted by start time.
func (l *Lessons) List(ctx context.Context) (lesson.Schedule, error) {
	if l.Repo == nil {
		return nil, errNoStore
	}
	return l.Repo.Load(ctx)
}

// Add schedules a new lesson. Days default to every day.
func (l *Lessons) Add(ctx context.Context, in lesson.Input) (lesson.Lesson, error) {
	if in.Days == nil {
		in.Days = lesson.EveryDay()
	}
	var added lesson.Lesson
	_, err := l.update(ctx, func(s *lesson.Schedule) (bool, error) {
		var err error
		added, err = s.Add(l.NewID(), in)
		return err == nil, err
	})
	return added, err
}

// Update edits an existing lesson.
func (l *Lessons) Update(ctx context.Context, id string, in lesson.Input) (bool, error) {
	return l.update(ctx, func(s *lesson.Schedule) (bool, error) {
		return s.Update(id, in)
	})
}

// Toggle flips a lesson's completion.
func (l *Lessons) Toggle(ctx context.Context, id string) (bool, error) {
	return l.update(ctx, func(s *lesson.Schedule) (bool, error) {
		return s.Toggle(id), nil
	})
}

// Delete removes a lesson.
func (l *Lessons) Delete(ctx context.Context, id string) (bool, error) {
	return l.update(ctx, func(s *lesson.Schedule) (bool, error) {
		return s.Delete(id), nil
	})
}

// Current returns the open lesson starting within the hour around now.
func (l *Lessons) Current(ctx context.Context) (lesson.Lesson, bool, error) {
	s, err := l.List(ctx)
	if err != nil {
		return lesson.Lesson{}, false, err
	}
	cur, ok := s.Current(l.Now())
	return cur, ok, nil
}

func (l *Lessons) update(ctx context.Context, fn func(*lesson.Schedule) (bool, error)) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, err := l.List(ctx)
	if err != nil {
		return false, err
	}
	changed, err := fn(&s)
	if err != nil || !changed {
		return false, err
	}
	return true, l.Repo.Save(ctx, s)
}
