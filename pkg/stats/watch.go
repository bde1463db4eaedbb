package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

// Watch emits a snapshot immediately, then again after every store change
// and every interval. A nil watcher leaves only the ticker. The channel is
// closed when ctx is done.
func Watch(ctx context.Context, kv store.KV, w store.Watcher, interval time.Duration, logger *zap.Logger) (<-chan Snapshot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	var events <-chan store.Event
	if w != nil {
		var err error
		events, err = w.Watch(ctx)
		if err != nil {
			return nil, err
		}
	}

	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		emit := func() bool {
			s, err := Derive(ctx, kv, logger)
			if err != nil {
				logger.Warn("derive stats", zap.Error(err))
				return true
			}
			select {
			case out <- s:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					// Watcher ended; keep polling.
					events = nil
					continue
				}
				logger.Debug("store changed", zap.Stringer("event", ev.Type), zap.String("key", ev.Key))
			case <-ticker.C:
			}
			if !emit() {
				return
			}
		}
	}()
	return out, nil
}
