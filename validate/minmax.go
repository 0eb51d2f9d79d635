// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"fmt"

	"gonih.org/calendar/core"
)

// Days validates counts of days since the epoch of a calendar.
type Days struct {
	r core.Range[int32]
}

// NewDays returns a validator for the days in r.
func NewDays(r core.Range[int32]) Days { return Days{r: r} }

// Range returns the supported days.
func (v Days) Range() core.Range[int32] { return v.r }

// Validate fails with core.ErrOverflow if days is not supported. name, if not
// empty, is used in the error message.
func (v Days) Validate(days int32, name string) error {
	if !v.r.Contains(days) {
		if name == "" {
			name = "daysSinceEpoch"
		}
		return fmt.Errorf("%s = %d outside %v: %w", name, days, v.r, core.ErrOverflow)
	}
	return nil
}

// CheckOverflow fails with core.ErrOverflow if days is not supported. It is
// meant for the results of arithmetic, whose operands were valid.
func (v Days) CheckOverflow(days int64) error {
	if days < int64(v.r.Min) || days > int64(v.r.Max) {
		return fmt.Errorf("day %d outside %v: %w", days, v.r, core.ErrOverflow)
	}
	return nil
}

// Years validates years of a calendar.
type Years struct {
	r core.Range[int32]
}

// NewYears returns a validator for the years in r.
func NewYears(r core.Range[int32]) Years { return Years{r: r} }

// Range returns the supported years.
func (v Years) Range() core.Range[int32] { return v.r }

// Validate fails with core.YearOutOfRange if y is not supported.
func (v Years) Validate(y int32, name string) error {
	if !v.r.Contains(y) {
		return core.YearError(y, name)
	}
	return nil
}

// CheckOverflow fails with core.ErrOverflow if y is not supported. It is meant
// for the results of arithmetic, whose operands were valid.
func (v Years) CheckOverflow(y int64) error {
	if y < int64(v.r.Min) || y > int64(v.r.Max) {
		return fmt.Errorf("year %d outside %v: %w", y, v.r, core.ErrOverflow)
	}
	return nil
}

// DayNumbers validates points of the universal timeline against the domain of
// a calendar.
type DayNumbers struct {
	r core.Range[core.DayNumber]
}

// NewDayNumbers returns a validator for the day numbers in r.
func NewDayNumbers(r core.Range[core.DayNumber]) DayNumbers { return DayNumbers{r: r} }

// Range returns the supported day numbers.
func (v DayNumbers) Range() core.Range[core.DayNumber] { return v.r }

// Validate fails with core.ErrOverflow if n lies outside the domain.
func (v DayNumbers) Validate(n core.DayNumber) error {
	return v.CheckOverflow(int64(n))
}

// CheckOverflow fails with core.ErrOverflow if n lies outside the domain.
func (v DayNumbers) CheckOverflow(n int64) error {
	if n < int64(v.r.Min) || n > int64(v.r.Max) {
		return fmt.Errorf("day number %d outside %v: %w", n, v.r, core.ErrOverflow)
	}
	return nil
}
