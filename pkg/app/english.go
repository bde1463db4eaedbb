package app

import (
	"context"
	"sync"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// English controls the language goals and the free-text current position.
type English struct {
	GoalsRepo    store.Repository[english.Goals]
	PositionRepo store.Repository[string]
	NewID        func() string

	mu sync.Mutex
}

// List returns the language goals.
func (e *English) List(ctx context.Context) (english.Goals, error) {
	if e.GoalsRepo == nil {
		return nil, errNoStore
	}
	return e.GoalsRepo.Load(ctx)
}

// Position returns the stored level description.
func (e *English) Position(ctx context.Context) (string, error) {
	if e.PositionRepo == nil {
		return "", errNoStore
	}
	return e.PositionRepo.Load(ctx)
}

// SetPosition replaces the level description.
func (e *English) SetPosition(ctx context.Context, text string) error {
	if e.PositionRepo == nil {
		return errNoStore
	}
	return e.PositionRepo.Save(ctx, text)
}

// Add creates a language goal.
func (e *English) Add(ctx context.Context, in english.Input) (english.Goal, error) {
	var added english.Goal
	_, err := e.update(ctx, func(g *english.Goals) (bool, error) {
		var err error
		added, err = g.Add(e.NewID(), in)
		return err == nil, err
	})
	return added, err
}

// Update edits a language goal.
func (e *English) Update(ctx context.Context, id string, in english.Input) (bool, error) {
	return e.update(ctx, func(g *english.Goals) (bool, error) {
		return g.Update(id, in)
	})
}

// SetProgress sets a goal's progress, clamped to 0..100.
func (e *English) SetProgress(ctx context.Context, id string, progress int) (bool, error) {
	return e.update(ctx, func(g *english.Goals) (bool, error) {
		return g.SetProgress(id, progress), nil
	})
}

// Delete removes a language goal.
func (e *English) Delete(ctx context.Context, id string) (bool, error) {
	return e.update(ctx, func(g *english.Goals) (bool, error) {
		return g.Delete(id), nil
	})
}

func (e *English) update(ctx context.Context, fn func(*english.Goals) (bool, error)) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, err := e.List(ctx)
	if err != nil {
		return false, err
	}
	changed, err := fn(&g)
	if err != nil || !changed {
		return false, err
	}
	return true, e.GoalsRepo.Save(ctx, g)
}
