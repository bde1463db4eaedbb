package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/prayer"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// Prayers controls the daily checklist.
type Prayers struct {
	Repo      store.Repository[prayer.Checklist]
	LastReset store.Repository[string]
	NewID     func() string
	Now       func() time.Time
	Logger    *zap.Logger

	mu sync.Mutex
}

// List returns today's checklist. The first call seeds the five default
// prayers, and the first call on a new day clears every completion.
func (p *Prayers) List(ctx context.Context) (prayer.Checklist, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.list(ctx)
}

func (p *Prayers) list(ctx context.Context) (prayer.Checklist, error) {
	if p.Repo == nil || p.LastReset == nil {
		return nil, errNoStore
	}
	c, err := p.Repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	dirty := false
	if c == nil {
		c = prayer.Defaults()
		dirty = true
	}
	last, err := p.LastReset.Load(ctx)
	if err != nil {
		return nil, err
	}
	stamp, reset := c.ResetIfNewDay(p.Now(), last)
	if reset {
		if err := p.LastReset.Save(ctx, stamp); err != nil {
			return nil, err
		}
		if p.Logger != nil {
			p.Logger.Debug("reset prayer checklist", zap.String("day", stamp))
		}
		dirty = true
	}
	if dirty {
		if err := p.Repo.Save(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a user prayer or dhikr.
func (p *Prayers) Add(ctx context.Context, in prayer.Input) (prayer.Prayer, error) {
	var added prayer.Prayer
	_, err := p.update(ctx, func(c *prayer.Checklist) (bool, error) {
		var err error
		added, err = c.Add(p.NewID(), in)
		return err == nil, err
	})
	return added, err
}

// Update edits a user prayer. Defaults are refused with prayer.ErrDefault.
func (p *Prayers) Update(ctx context.Context, id string, in prayer.Input) (bool, error) {
	return p.update(ctx, func(c *prayer.Checklist) (bool, error) {
		return c.Update(id, in)
	})
}

// SetTime changes the time of any prayer.
func (p *Prayers) SetTime(ctx context.Context, id, clock string) (bool, error) {
	return p.update(ctx, func(c *prayer.Checklist) (bool, error) {
		return c.SetTime(id, clock)
	})
}

// Toggle flips a prayer's completion for today.
func (p *Prayers) Toggle(ctx context.Context, id string) (bool, error) {
	return p.update(ctx, func(c *prayer.Checklist) (bool, error) {
		return c.Toggle(id), nil
	})
}

// Delete removes a user prayer.
func (p *Prayers) Delete(ctx context.Context, id string) (bool, error) {
	return p.update(ctx, func(c *prayer.Checklist) (bool, error) {
		return c.Delete(id)
	})
}

func (p *Prayers) update(ctx context.Context, fn func(*prayer.Checklist) (bool, error)) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, err := p.list(ctx)
	if err != nil {
		return false, err
	}
	changed, err := fn(&c)
	if err != nil || !changed {
		return false, err
	}
	return true, p.Repo.Save(ctx, c)
}
