// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"math"
)

// CheckedAdd returns a+b, failing with ErrOverflow if the sum does not fit
// into an int32.
func CheckedAdd(a, b int32) (int32, error) {
	return Narrow(int64(a) + int64(b))
}

// CheckedSub returns a-b, failing with ErrOverflow if the difference does not
// fit into an int32.
func CheckedSub(a, b int32) (int32, error) {
	return Narrow(int64(a) - int64(b))
}

// CheckedMul returns a*b, failing with ErrOverflow if the product does not fit
// into an int32.
func CheckedMul(a, b int32) (int32, error) {
	return Narrow(int64(a) * int64(b))
}

// Narrow converts v to an int32, failing with ErrOverflow if it does not fit.
func Narrow(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%d does not fit into 32 bits: %w", v, ErrOverflow)
	}
	return int32(v), nil
}

// FloorDiv returns the quotient of a and b rounded towards negative infinity.
// b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod returns the remainder of a and b with the sign of b, that is the
// value in [0, b) that is congruent to a. b must be positive.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
