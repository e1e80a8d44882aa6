package service

import (
	"context"
	"sync"
	"time"

	"fiberdex/internal/core/lexicon"
	"fiberdex/internal/platform/logger"

	"github.com/jonboulle/clockwork"
)

// Source is the narrow read contract the cache refreshes from.
// Production binds the postgres repo; tests use an in-memory fake
type Source interface {
	ActiveFiberNames(ctx context.Context) ([]string, error)
}

// Cache owns the process-wide lexicon snapshot. It serves a snapshot that is
// at most ttl old, refetching lazily, and supports explicit invalidation so
// operators can converge immediately after bulk fiber edits.
//
// State transitions: empty -> populated (refresh), populated -> empty
// (invalidate), populated -> populated (refresh of an expired snapshot).
// Only Cache mutates the state
type Cache struct {
	source Source
	ttl    time.Duration
	clock  clockwork.Clock
	log    logger.Logger

	mu   sync.RWMutex
	snap *lexicon.Snapshot
}

// NewCache builds a Cache over source. ttl <= 0 disables caching so every
// Snapshot call refreshes. clock may be nil, defaulting to the wall clock
func NewCache(source Source, ttl time.Duration, clock clockwork.Clock, log logger.Logger) *Cache {
	if source == nil {
		panic("intent.Cache requires a non nil Source")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{source: source, ttl: ttl, clock: clock, log: log}
}

// Snapshot returns the current snapshot, refreshing from the source when the
// held one is absent or expired. Refresh failures never surface to the query
// path: the last good snapshot is served when one exists, an empty snapshot
// otherwise, and the failure is logged either way
func (c *Cache) Snapshot(ctx context.Context) *lexicon.Snapshot {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil && c.fresh(snap) {
		return snap
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// another caller may have refreshed while we waited on the lock
	if c.snap != nil && c.fresh(c.snap) {
		return c.snap
	}

	names, err := c.source.ActiveFiberNames(ctx)
	now := c.clock.Now()
	if err != nil {
		if c.snap != nil {
			c.log.Warn().Err(err).
				Int("size", c.snap.Len()).
				Msg("lexicon refresh failed; serving previous snapshot")
			return c.snap
		}
		c.log.Warn().Err(err).Msg("lexicon refresh failed; serving empty snapshot")
		// not stored: the next call retries the source
		return lexicon.Empty(now)
	}

	snap = lexicon.NewSnapshot(names, now)
	c.snap = snap
	c.log.Info().Int("size", snap.Len()).Msg("lexicon refreshed")
	return snap
}

// Invalidate unconditionally drops the held snapshot. Idempotent. The next
// Snapshot call always refetches regardless of TTL; no refresh happens here
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// TTL returns the configured snapshot lifetime
func (c *Cache) TTL() time.Duration { return c.ttl }

// Status reports whether a snapshot is held, its size, age, and creation time
func (c *Cache) Status() (loaded bool, size int, age time.Duration, takenAt time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return false, 0, 0, time.Time{}
	}
	return true, c.snap.Len(), c.clock.Since(c.snap.TakenAt()), c.snap.TakenAt()
}

// fresh reports whether s is still within ttl; elapsed >= ttl means stale
func (c *Cache) fresh(s *lexicon.Snapshot) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.clock.Since(s.TakenAt()) < c.ttl
}
