// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"gonih.org/calendar/core"
	"gonih.org/calendar/schema"
)

var (
	// ErrKeyAlreadyExists is returned when adding a calendar to the catalog
	// under a key which is already taken.
	ErrKeyAlreadyExists = errors.New("calendar: key already exists")
	// ErrUnknownKey is returned when looking up a key which is not in the
	// catalog.
	ErrUnknownKey = errors.New("calendar: unknown key")
)

// catalog is the process-wide registry of calendars, by key.
var catalog = struct {
	mu sync.RWMutex
	m  map[string]*Calendar
}{m: make(map[string]*Calendar)}

// Lookup returns the calendar registered under key.
func Lookup(key string) (*Calendar, error) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	c, ok := catalog.m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return c, nil
}

// MustLookup is like Lookup, but panics if key is not registered.
func MustLookup(key string) *Calendar {
	c, err := Lookup(key)
	if err != nil {
		panic(err)
	}
	return c
}

// Register adds c to the catalog. It fails with ErrKeyAlreadyExists if
// another calendar with the same key is registered. Registering a calendar
// twice is a no-op.
func Register(c *Calendar) error {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	if old, ok := catalog.m[c.key]; ok {
		if old == c {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrKeyAlreadyExists, c.key)
	}
	catalog.m[c.key] = c
	return nil
}

// Add creates a calendar like New and registers it. If key is already taken,
// no calendar is created.
func Add(key string, s *schema.Schema, epoch core.DayNumber, opts ...Option) (*Calendar, error) {
	if _, err := Lookup(key); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrKeyAlreadyExists, key)
	}
	c, err := New(key, s, epoch, opts...)
	if err != nil {
		return nil, err
	}
	if err := Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Keys returns the keys of all registered calendars, in sorted order.
func Keys() []string {
	catalog.mu.RLock()
	keys := make([]string, 0, len(catalog.m))
	for k := range catalog.m {
		keys = append(keys, k)
	}
	catalog.mu.RUnlock()
	slices.Sort(keys)
	return keys
}
