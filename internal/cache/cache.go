// Package cache memoizes remote resource fetches per account. Entries are
// keyed by (account id, resource kind, optional page cursor) and never expire
// on their own: they go stale only through explicit invalidation
// (pull-to-refresh, account switch, related-resource updates).
//
// Concurrent fetches for the same key are coalesced through singleflight, so
// at most one request per key is in flight and every waiter observes the same
// result.
package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Kind identifies a cached resource class.
type Kind string

const (
	KindProfile        Kind = "profile"
	KindCourses        Kind = "courses"
	KindColors         Kind = "colors"
	KindDashboardCards Kind = "dashboard_cards"
	KindFeedPage       Kind = "feed_page"
)

// Status describes the lifecycle of a cache entry.
type Status int

const (
	StatusAbsent Status = iota
	StatusLoading
	StatusFresh
	StatusStale
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusLoading:
		return "loading"
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Key addresses one cache entry. Cursor is empty for unpaginated kinds and
// for the first feed page.
type Key struct {
	AccountID string
	Kind      Kind
	Cursor    string
}

func (k Key) String() string {
	return k.AccountID + "\x00" + string(k.Kind) + "\x00" + k.Cursor
}

type entry struct {
	value    any
	hasValue bool
	status   Status
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	group   singleflight.Group
}

func New() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// GetOrFetch returns the fresh cached value for key, or runs fetch to
// produce one. Calls for the same key while a fetch is in flight attach to
// that fetch instead of issuing their own; they all receive the same value
// or the same error. A failed fetch marks the entry errored, so the next
// access retries instead of replaying the failure.
func (c *Cache) GetOrFetch(ctx context.Context, key Key, fetch func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.status == StatusFresh {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.status = StatusLoading
	c.mu.Unlock()

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		return fetch(ctx)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		e.status = StatusErrored
		return nil, err
	}
	e.value = v
	e.hasValue = true
	e.status = StatusFresh
	return v, nil
}

// Get returns the last successfully fetched value for key, fresh or stale.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return nil, false
	}
	return e.value, true
}

// Status reports the entry state for key.
func (c *Cache) Status(key Key) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return StatusAbsent
	}
	return e.status
}

// Invalidate marks the entry stale; the next GetOrFetch refetches. The old
// value stays readable through Get until then.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.status = StatusStale
	}
}

// InvalidateKind marks every entry of kind for the account stale, across all
// cursors.
func (c *Cache) InvalidateKind(accountID string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if key.AccountID == accountID && key.Kind == kind {
			e.status = StatusStale
		}
	}
}

// InvalidateAccount drops every entry belonging to the account. Used when
// the account is removed.
func (c *Cache) InvalidateAccount(accountID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.AccountID == accountID {
			delete(c.entries, key)
			c.group.Forget(key.String())
		}
	}
}

// Fetch is a typed wrapper around Cache.GetOrFetch.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %v holds %T", key, v)
	}
	return typed, nil
}
