package app

import (
	"context"
	"sync"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/goal"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// Goals controls the goal tree. Mutations are serialized so concurrent
// callers never interleave a load with another caller's save.
type Goals struct {
	Repo  store.Repository[*goal.Forest]
	NewID goal.IDFunc

	mu sync.Mutex
}

// Forest loads the current goal tree. A missing or unreadable value is an
// empty forest.
func (g *Goals) Forest(ctx context.Context) (*goal.Forest, error) {
	if g.Repo == nil {
		return nil, errNoStore
	}
	f, err := g.Repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = goal.New()
	}
	f.UseIDFunc(g.NewID)
	return f, nil
}

// Get loads one goal and everything below it. ok is false when no goal has
// that id.
func (g *Goals) Get(ctx context.Context, id string) (n *goal.Node, ok bool, err error) {
	f, err := g.Forest(ctx)
	if err != nil {
		return nil, false, err
	}
	n, ok = f.Get(id)
	return n, ok, nil
}

// Add creates a top-level goal and returns its id.
func (g *Goals) Add(ctx context.Context, title string) (string, error) {
	var id string
	_, err := g.update(ctx, func(f *goal.Forest) (bool, error) {
		var err error
		id, err = f.InsertRoot(title)
		return id != "", err
	})
	return id, err
}

// AddChild creates a sub-goal below parentID. The returned id is empty when
// the parent does not exist.
func (g *Goals) AddChild(ctx context.Context, parentID, title string) (string, error) {
	var id string
	_, err := g.update(ctx, func(f *goal.Forest) (bool, error) {
		var err error
		id, err = f.InsertChild(parentID, title)
		return id != "", err
	})
	return id, err
}

// ToggleCompleted flips one goal's completion.
func (g *Goals) ToggleCompleted(ctx context.Context, id string) (bool, error) {
	return g.update(ctx, func(f *goal.Forest) (bool, error) {
		return f.ToggleCompleted(id), nil
	})
}

// ToggleExpanded shows or hides one goal's children.
func (g *Goals) ToggleExpanded(ctx context.Context, id string) (bool, error) {
	return g.update(ctx, func(f *goal.Forest) (bool, error) {
		return f.ToggleExpanded(id), nil
	})
}

// Rename retitles one goal.
func (g *Goals) Rename(ctx context.Context, id, title string) (bool, error) {
	return g.update(ctx, func(f *goal.Forest) (bool, error) {
		return f.Rename(id, title)
	})
}

// Delete removes a goal and its sub-goals.
func (g *Goals) Delete(ctx context.Context, id string) (bool, error) {
	return g.update(ctx, func(f *goal.Forest) (bool, error) {
		return f.Delete(id), nil
	})
}

// update applies fn to the stored forest and saves it when fn reports a
// change. Nothing is written for skipped or unmatched calls.
func (g *Goals) update(ctx context.Context, fn func(*goal.Forest) (bool, error)) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f, err := g.Forest(ctx)
	if err != nil {
		return false, err
	}
	changed, err := fn(f)
	if err != nil || !changed {
		return false, err
	}
	if err := g.Repo.Save(ctx, f); err != nil {
		return false, err
	}
	return true, nil
}
