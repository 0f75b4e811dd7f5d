package source

import (
	"context"
	"sync"
	"time"

	"locale-manager/core/tree"

	"golang.org/x/sync/singleflight"
)

type cachedTree struct {
	doc   tree.Node
	built time.Time
}

// Cached memoizes the trees of another Source per locale for TTL.
// Concurrent misses for the same locale share one load.
type Cached struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	trees map[string]cachedTree
	sf    singleflight.Group
}

// NewCached wraps src. A zero TTL disables caching.
func NewCached(src Source, ttl time.Duration) *Cached {
	return &Cached{
		source: src,
		ttl:    ttl,
		now:    time.Now,
		trees:  make(map[string]cachedTree),
	}
}

func (c *Cached) fresh(entry cachedTree) bool {
	return c.ttl > 0 && c.now().Sub(entry.built) <= c.ttl
}

// Tree returns a copy of the cached tree, loading it when missing or expired. The shared
// load is detached from ctx cancellation so waiters do not inherit another caller's cancel.
func (c *Cached) Tree(ctx context.Context, locale string) (tree.Node, error) {
	// Fast path: check if cache exists and is fresh
	c.mu.RLock()
	entry, ok := c.trees[locale]
	c.mu.RUnlock()

	if ok && c.fresh(entry) {
		return tree.Clone(entry.doc), nil
	}

	result, err, _ := c.sf.Do(locale, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry, ok := c.trees[locale]
		c.mu.RUnlock()
		if ok && c.fresh(entry) {
			return entry.doc, nil
		}

		doc, err := c.source.Tree(context.WithoutCancel(ctx), locale)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.trees[locale] = cachedTree{doc: doc, built: c.now()}
			c.mu.Unlock()
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	return tree.Clone(result.(tree.Node)), nil
}

// Invalidate drops the cached trees of the given locales, or of every locale when none
// is given.
func (c *Cached) Invalidate(locales ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(locales) == 0 {
		c.trees = make(map[string]cachedTree)
		return
	}
	for _, l := range locales {
		delete(c.trees, l)
	}
}
