// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoizes compiled layouts and other values which are
// expensive to compute but cheap to keep around.
//
// Eviction is random: when the cache grows beyond its maximum size, arbitrary
// entries are dropped until it fits again. This is good enough for the small
// working sets of layout strings typical programs use.
package cache

import (
	"sync"
)

// DefaultSize is the size of a Cache with a zero MaxSize.
const DefaultSize = 1 << 10

// Cache maps keys to memoized values.
//
// Its zero value is an empty cache of DefaultSize. It is safe for concurrent
// use.
type Cache[K comparable, V any] struct {
	// MaxSize bounds the total size of all values. Values implementing
	// Sizer contribute their Size, others contribute 1.
	//
	// MaxSize must not be changed concurrently with calls to Get.
	MaxSize int64

	mu   sync.RWMutex
	m    map[K]V
	size int64
}

// Get returns the value for k, calling fill to compute it if it is not
// cached. fill is called without holding any locks, so it may be called more
// than once for the same key if several goroutines miss at the same time; the
// first value stored wins.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	c.size += sizeOf(nv)
	for ek := range c.m {
		if c.size <= c.limit() {
			break
		}
		if ek == k && len(c.m) > 1 {
			continue
		}
		c.deleteLocked(ek)
	}
	return nv
}

// limit returns the effective maximum size of c.
func (c *Cache[K, V]) limit() int64 {
	if c.MaxSize <= 0 {
		return DefaultSize
	}
	return c.MaxSize
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// deleteLocked drops k. c.mu must be held for writing.
func (c *Cache[K, V]) deleteLocked(k K) {
	if v, ok := c.m[k]; ok {
		delete(c.m, k)
		c.size -= sizeOf(v)
	}
}

// Sizer can be implemented by values to report their size. The size must be
// positive and must not change.
type Sizer interface {
	Size() int64
}

func sizeOf[V any](v V) int64 {
	if s, ok := any(v).(Sizer); ok {
		return s.Size()
	}
	return 1
}
