/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lru implements a size-bounded LRU cache on top of linkedlist.
package lru

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/log"

	logutil "sigs.k8s.io/linkedlist/internal/telemetry/logging"
	"sigs.k8s.io/linkedlist/pkg/linkedlist"
	"sigs.k8s.io/linkedlist/pkg/metrics"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache maps keys to values and evicts the least recently used entry once it
// holds Config.Capacity entries. It is safe for concurrent use.
//
// Recency is kept in a linkedlist: the head is the least recently used entry
// and the tail the most recent one. The table holds the node of every key so
// entries can be refreshed and removed without walking the list.
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	name     string
	capacity int
	table    map[K]*linkedlist.Node[entry[K, V]]
	list     *linkedlist.LinkedList[entry[K, V]]
	logger   logr.Logger

	// onEvicted is called, with the lock held, for every entry dropped to
	// make room. It must not call back into the cache.
	onEvicted func(key K, value V)
}

// New creates a cache. The logger is taken from ctx, and the periodic size
// report, if enabled, runs until ctx is done. onEvicted may be nil.
func New[K comparable, V any](ctx context.Context, config Config, onEvicted func(key K, value V)) (*Cache[K, V], error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid LRU cache config: %w", err)
	}

	c := &Cache[K, V]{
		name:      config.Name,
		capacity:  config.Capacity,
		table:     make(map[K]*linkedlist.Node[entry[K, V]]),
		list:      linkedlist.New[entry[K, V]](),
		logger:    log.FromContext(ctx).WithName("lru").WithValues("cache", config.Name),
		onEvicted: onEvicted,
	}
	c.logger.V(logutil.DEBUG).Info("Created LRU cache", "capacity", config.Capacity, "reportInterval", config.ReportInterval.Duration)

	if interval := config.ReportInterval.Duration; interval > 0 {
		go c.reportSize(ctx, interval)
	}
	return c, nil
}

// Add inserts or updates key and marks it as the most recently used entry.
func (c *Cache[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.table[key]; ok {
		n.Value.value = value
		c.touch(n)
		return
	}

	for c.list.Len() >= c.capacity {
		c.evict()
	}
	c.table[key] = c.list.Append(entry[K, V]{key: key, value: value})
}

// Get returns the value of key and marks it as the most recently used entry.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.table[key]
	if !ok {
		return value, false
	}
	c.touch(n)
	return n.Value.value, true
}

// Peek returns the value of key without changing its recency.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, ok := c.table[key]
	if !ok {
		return value, false
	}
	return n.Value.value, true
}

// Remove drops key from the cache. It reports whether the key was present.
// onEvicted is not called for removed entries.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.table[key]
	if !ok {
		return false
	}
	if err := c.list.Remove(n); err != nil {
		c.logger.Error(err, "Failed to unlink LRU entry", "key", key)
		return false
	}
	delete(c.table, key)
	return true
}

// Oldest returns the least recently used entry without changing its recency.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	head := c.list.Head()
	if head == nil {
		return key, value, false
	}
	return head.Value.key, head.Value.value, true
}

// Keys returns the keys from the least to the most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]K, 0, c.list.Len())
	for n := c.list.Head(); n != nil; n = n.Next() {
		keys = append(keys, n.Value.key)
	}
	return keys
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

func (c *Cache[K, V]) touch(n *linkedlist.Node[entry[K, V]]) {
	if err := c.list.MoveToTail(n); err != nil {
		c.logger.Error(err, "Failed to refresh LRU entry", "key", n.Value.key)
	}
}

// evict removes the least recently used entry. Callers hold the lock.
func (c *Cache[K, V]) evict() {
	oldest := c.list.Unshift()
	if oldest == nil {
		return
	}
	delete(c.table, oldest.Value.key)
	metrics.RecordEviction(c.name)
	c.logger.V(logutil.TRACE).Info("Evicted LRU entry", "key", oldest.Value.key)
	if c.onEvicted != nil {
		c.onEvicted(oldest.Value.key, oldest.Value.value)
	}
}

// reportSize periodically records the cache size metric until ctx is done.
func (c *Cache[K, V]) reportSize(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			size := c.Len()
			metrics.RecordCacheSize(c.name, size)
			c.logger.V(logutil.TRACE).Info("LRU", "# entries", size)
		}
	}
}
