// Package stats provides the runners behind the stats and reset commands.
package stats

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/stats"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// Stats prints the summary once, or keeps printing it while Watch is set
// until ctx is cancelled.
type Stats struct {
	Store store.KV
	// Watcher feeds change events in watch mode. Nil polls only.
	Watcher  store.Watcher
	Watch    bool
	Interval time.Duration
	JSON     bool
	Logger   *zap.Logger
	Out      io.Writer
}

// Do derives and prints.
func (s *Stats) Do(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("can not derive stats, no store")
	}
	if !s.Watch {
		snap, err := stats.Derive(ctx, s.Store, s.Logger)
		if err != nil {
			return err
		}
		return s.print(snap)
	}

	snaps, err := stats.Watch(ctx, s.Store, s.Watcher, s.Interval, s.Logger)
	if err != nil {
		return err
	}
	var last *stats.Snapshot
	for snap := range snaps {
		if last != nil && *last == snap {
			continue
		}
		snap := snap
		last = &snap
		if err := s.print(snap); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stats) print(snap stats.Snapshot) error {
	if s.JSON {
		w := s.Out
		if w == nil {
			w = color.Output
		}
		return printers.JSON(w, snap)
	}
	pp := printers.PrettyPrint{Out: s.Out}
	pp.NewLine()
	pp.Stats(snap)
	return nil
}

// Reset erases every stored value.
type Reset struct {
	Service *app.Service
	Out     io.Writer
}

// Do clears the store.
func (r *Reset) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not reset, no service")
	}
	if err := r.Service.Reset(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: r.Out}
	pp.Done("all data cleared")
	return nil
}
