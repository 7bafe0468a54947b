package services

import (
	"context"
	"log/slog"
	"time"
)

// StartSessionCleanup starts a background goroutine that periodically evicts
// sessions idle longer than ttl. Callers should skip it when no TTL is
// configured, which keeps every session resident for the process lifetime.
func StartSessionCleanup(ctx context.Context, store SessionStore, ttl, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Session cleanup stopped")
				return
			case <-ticker.C:
				if count := store.Evict(ttl); count > 0 {
					slog.Info("Evicted idle sessions", "count", count, "remaining", store.Len())
				}
			}
		}
	}()

	slog.Info("Session cleanup started", "ttl", ttl.String(), "interval", interval.String())
}
