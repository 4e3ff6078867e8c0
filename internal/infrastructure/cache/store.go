package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is the process-lifetime cache every dashboard read goes through.
// It owns the cached values exclusively: consumers read snapshots and
// request invalidation, they never mutate cached structures in place.
//
// Each entry carries a generation counter. Invalidation bumps it, and a
// completing loader publishes only when the generation it started under is
// still current, so a load that races an invalidation cannot repopulate a
// stale value. Callers of that losing flight still receive the loaded
// value; the entry stays stale and the next read re-runs the loader.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	group   singleflight.Group
	logger  *zap.Logger
	metrics MetricsRecorder

	// Stats for monitoring
	hits   int64
	misses int64
}

// MetricsRecorder receives one event per fetch. The kind label is the
// bounded key class from Key.Kind, never the full key.
type MetricsRecorder interface {
	RecordCacheLookup(ctx context.Context, kind string, hit bool)
}

type entry struct {
	value any
	valid bool
	gen   uint64
}

// StoreOption is a functional option for configuring the store
type StoreOption func(*Store)

// WithLogger sets the logger for the store
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics registers a per-fetch metrics recorder
func WithMetrics(metrics MetricsRecorder) StoreOption {
	return func(s *Store) {
		s.metrics = metrics
	}
}

// NewStore creates an empty store. The instance is meant to be created
// once at startup and passed to the components that need it.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		entries: make(map[Key]*entry),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the cached value for key when the entry is valid, and runs
// loader otherwise. Concurrent fetches of the same invalid key collapse to
// a single loader invocation whose result every caller receives. A loader
// failure is returned to the waiting callers and nothing is cached, so the
// next fetch retries. A fetch that starts after an invalidation always
// re-runs the loader, even while an older flight for the same key is still
// in the air.
func Fetch[T any](ctx context.Context, s *Store, key Key, loader func(context.Context) (T, error)) (T, error) {
	var zero T

	if v, ok := s.lookup(key); ok {
		typed, ok := v.(T)
		if !ok {
			return zero, fmt.Errorf("cache: entry %s holds %T, requested %T", key, v, zero)
		}
		atomic.AddInt64(&s.hits, 1)
		s.record(ctx, key, true)
		s.logger.Debug("cache hit", zap.String("key", key.String()))
		return typed, nil
	}

	atomic.AddInt64(&s.misses, 1)
	s.record(ctx, key, false)
	s.logger.Debug("cache miss", zap.String("key", key.String()))

	gen := s.generation(key)
	// The generation is part of the flight key: a fetch issued after an
	// invalidation must not join a flight started before it.
	flightKey := key.path + "#" + strconv.FormatUint(gen, 10)

	v, err, _ := s.group.Do(flightKey, func() (any, error) {
		// A sibling flight may have published while this caller queued.
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.publish(key, gen, value)
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: entry %s holds %T, requested %T", key, v, zero)
	}
	return typed, nil
}

// Invalidate marks the entry for key stale. The next fetch re-runs the
// loader; an in-flight load started before the call will not repopulate
// the entry.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	s.staleLocked(key)
	s.mu.Unlock()
	s.logger.Debug("cache invalidated", zap.String("key", key.String()))
}

// InvalidatePrefix marks stale every entry whose key equals prefix or
// descends from it. Sibling scopes keep their cached values.
func (s *Store) InvalidatePrefix(prefix Key) {
	var staled int
	s.mu.Lock()
	for key := range s.entries {
		if key.HasPrefix(prefix) {
			s.staleLocked(key)
			staled++
		}
	}
	// Track the generation for descendants loading right now even when no
	// entry exists yet, so their completions cannot publish stale values.
	if _, ok := s.entries[prefix]; !ok {
		s.staleLocked(prefix)
	}
	s.mu.Unlock()
	s.logger.Debug("cache prefix invalidated",
		zap.String("prefix", prefix.String()),
		zap.Int("entries", staled))
}

// InvalidateAll marks every tracked entry stale. Used by the global
// revalidate signal, the host-agnostic stand-in for "window regained
// focus" style refresh events.
func (s *Store) InvalidateAll() {
	var staled int
	s.mu.Lock()
	for key := range s.entries {
		s.staleLocked(key)
		staled++
	}
	s.mu.Unlock()
	s.logger.Debug("cache fully invalidated", zap.Int("entries", staled))
}

// staleLocked bumps the generation and drops the value. Entries are kept,
// not deleted: the generation must survive invalidation to fence loads
// already in flight.
func (s *Store) staleLocked(key Key) {
	e, ok := s.entries[key]
	if !ok {
		s.entries[key] = &entry{valid: false, gen: 1}
		return
	}
	e.valid = false
	e.value = nil
	e.gen++
}

func (s *Store) lookup(key Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || !e.valid {
		return nil, false
	}
	return e.value, true
}

func (s *Store) generation(key Key) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[key]; ok {
		return e.gen
	}
	return 0
}

// publish stores a loaded value unless the entry moved to a newer
// generation while the loader ran.
func (s *Store) publish(key Key, gen uint64, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		if gen != 0 {
			return
		}
		s.entries[key] = &entry{value: value, valid: true}
		return
	}
	if e.gen != gen {
		s.logger.Debug("cache publish discarded, entry invalidated during load",
			zap.String("key", key.String()))
		return
	}
	e.value = value
	e.valid = true
}

func (s *Store) record(ctx context.Context, key Key, hit bool) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordCacheLookup(ctx, key.Kind(), hit)
}

// Stats returns the hit and miss counters
func (s *Store) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&s.hits), atomic.LoadInt64(&s.misses)
}

// Len returns the number of tracked entries, valid or stale
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
