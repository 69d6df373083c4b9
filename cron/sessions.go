package cron

import (
	"context"
	"time"

	"fotoagenda/utils"

	"go.uber.org/zap"
)

// SessionEvicter is the part of the session store the janitor needs.
type SessionEvicter interface {
	EvictExpired(ctx context.Context) (int, error)
}

// StartSessionJanitor evicts idle conversation sessions every interval until ctx ends.
func StartSessionJanitor(ctx context.Context, store SessionEvicter, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweepSessions(ctx, store)
			}
		}
	}()
}

func sweepSessions(ctx context.Context, store SessionEvicter) {
	n, err := store.EvictExpired(ctx)
	if err != nil {
		utils.GetLogger().Warn("[SessionJanitor] Eviction failed", zap.Error(err))
		return
	}
	if n > 0 {
		utils.GetLogger().Debug("[SessionJanitor] Evicted idle sessions", zap.Int("count", n))
	}
}
