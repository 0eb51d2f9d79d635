// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
)

// Integer is the set of integer types a Range can be built from.
type Integer interface {
	~int | ~int32 | ~int64
}

// Range is a non-empty, closed interval [Min, Max] of integers.
//
// The zero Range is [0, 0]. Use NewRange to construct a Range from arbitrary
// bounds.
type Range[T Integer] struct {
	Min T
	Max T
}

// NewRange returns the range [min, max]. It fails with ErrConfiguration if
// min > max.
func NewRange[T Integer](min, max T) (Range[T], error) {
	if min > max {
		return Range[T]{}, fmt.Errorf("range [%d, %d]: %w: lower bound above upper bound", min, max, ErrConfiguration)
	}
	return Range[T]{Min: min, Max: max}, nil
}

// MustRange is like NewRange, but panics if min > max. It is intended for
// package-level variables.
func MustRange[T Integer](min, max T) Range[T] {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Singleton returns the range [v, v].
func Singleton[T Integer](v T) Range[T] {
	return Range[T]{Min: v, Max: v}
}

// Contains reports whether v lies in r.
func (r Range[T]) Contains(v T) bool {
	return r.Min <= v && v <= r.Max
}

// IsSubsetOf reports whether r lies entirely inside o.
func (r Range[T]) IsSubsetOf(o Range[T]) bool {
	return o.Min <= r.Min && r.Max <= o.Max
}

// Intersect returns the intersection of r and o. ok is false if they are
// disjoint.
func (r Range[T]) Intersect(o Range[T]) (_ Range[T], ok bool) {
	lo, hi := max(r.Min, o.Min), min(r.Max, o.Max)
	if lo > hi {
		return Range[T]{}, false
	}
	return Range[T]{Min: lo, Max: hi}, true
}

// Count returns the number of integers in r. It is computed in 64 bits, so it
// can not overflow for any 32-bit range.
func (r Range[T]) Count() int64 {
	return int64(r.Max) - int64(r.Min) + 1
}

// String formats r as [Min, Max].
func (r Range[T]) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// OrderedPair is a pair of values with Lower <= Upper.
type OrderedPair[T interface{ Compare(T) int }] struct {
	Lower T
	Upper T
}

// NewOrderedPair returns the pair (lower, upper). It fails with
// ErrConfiguration if lower sorts after upper.
func NewOrderedPair[T interface{ Compare(T) int }](lower, upper T) (OrderedPair[T], error) {
	if lower.Compare(upper) > 0 {
		return OrderedPair[T]{}, fmt.Errorf("pair (%v, %v): %w: lower value above upper value", lower, upper, ErrConfiguration)
	}
	return OrderedPair[T]{Lower: lower, Upper: upper}, nil
}

// Contains reports whether Lower <= v <= Upper.
func (p OrderedPair[T]) Contains(v T) bool {
	return p.Lower.Compare(v) <= 0 && v.Compare(p.Upper) <= 0
}

// String formats p as (Lower, Upper).
func (p OrderedPair[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lower, p.Upper)
}
