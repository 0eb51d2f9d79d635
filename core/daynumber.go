// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"time"
)

// A DayNumber is a point on the universal day timeline shared by all
// calendars: the number of days since Monday, January 1st of year 1 in the
// proleptic Gregorian calendar. The zero value of DayNumber is thus the same
// day as the zero value of time.Time.
//
// DayNumbers can be compared using Go's arithmetic operators.
type DayNumber int32

// Weekday returns the day of the week of n.
func (n DayNumber) Weekday() time.Weekday {
	return time.Weekday((FloorMod(int64(n), 7) + int64(time.Monday)) % 7) // 0001-01-01 was a Monday
}

// Add returns n+days, failing with ErrOverflow if the result does not fit
// into a DayNumber.
func (n DayNumber) Add(days int32) (DayNumber, error) {
	v, err := CheckedAdd(int32(n), days)
	return DayNumber(v), err
}

// Next returns the first day strictly after n which falls on wd.
func (n DayNumber) Next(wd time.Weekday) (DayNumber, error) {
	delta := int32(wd - n.Weekday())
	if delta <= 0 {
		delta += 7
	}
	return n.Add(delta)
}

// Previous returns the last day strictly before n which falls on wd.
func (n DayNumber) Previous(wd time.Weekday) (DayNumber, error) {
	delta := int32(n.Weekday() - wd)
	if delta <= 0 {
		delta += 7
	}
	return n.Add(-delta)
}

// GoString implements fmt.GoStringer.
func (n DayNumber) GoString() string {
	return fmt.Sprintf("core.DayNumber(%d)", int32(n))
}
