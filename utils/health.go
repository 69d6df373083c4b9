package utils

import (
	"context"
	"sync"
	"time"
)

// HealthProbe checks one external dependency.
type HealthProbe func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// Healthy reports whether every probe passed in the latest snapshot.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Checks {
		if !ok {
			return false
		}
	}
	return true
}

// RunHealthChecks runs every probe once and stores the snapshot.
func RunHealthChecks(ctx context.Context, probes map[string]HealthProbe) HealthStatus {
	checks := make(map[string]bool, len(probes))
	for name, probe := range probes {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		checks[name] = probe(pctx) == nil
		cancel()
	}

	status := HealthStatus{Checks: checks, CheckedAt: time.Now()}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(ctx context.Context, probes map[string]HealthProbe, every time.Duration) {
	RunHealthChecks(ctx, probes)
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunHealthChecks(ctx, probes)
			}
		}
	}()
}
