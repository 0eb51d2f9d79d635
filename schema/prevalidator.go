// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/core"
)

// A PreValidator checks months, days and days of the year against the
// intrinsic limits of a Schema for a given year. It knows nothing about the
// range a calendar restricts the schema to; the year is assumed to have been
// validated already.
//
// Every method takes a field name, which replaces the default name of the
// field reported in a *core.FieldError, unless it is empty.
type PreValidator struct {
	s *Schema
}

// ValidateMonth fails with core.MonthOutOfRange unless 1 <= m <=
// CountMonthsInYear(y).
func (v PreValidator) ValidateMonth(y, m int32, name string) error {
	if m < 1 || m > v.s.CountMonthsInYear(y) {
		return core.MonthError(m, name)
	}
	return nil
}

// ValidateMonthDay validates m like ValidateMonth and then fails with
// core.DayOutOfRange unless 1 <= d <= CountDaysInMonth(y, m).
func (v PreValidator) ValidateMonthDay(y, m, d int32, name string) error {
	if err := v.ValidateMonth(y, m, name); err != nil {
		return err
	}
	if d < 1 || (d > v.s.info.MinDaysInMonth && d > v.s.CountDaysInMonth(y, m)) {
		return core.DayError(d, name)
	}
	return nil
}

// ValidateDayOfYear fails with core.DayOfYearOutOfRange unless 1 <= doy <=
// CountDaysInYear(y).
func (v PreValidator) ValidateDayOfYear(y, doy int32, name string) error {
	if doy < 1 || (doy > v.s.info.MinDaysInYear && doy > v.s.CountDaysInYear(y)) {
		return core.DayOfYearError(doy, name)
	}
	return nil
}

// ValidateYear fails with core.YearOutOfRange if y lies outside the supported
// years of the schema.
func (v PreValidator) ValidateYear(y int32, name string) error {
	if !v.s.info.SupportedYears.Contains(y) {
		return core.YearError(y, name)
	}
	return nil
}

// ValidateDateParts validates all fields of p in order: year, month, day.
func (v PreValidator) ValidateDateParts(p core.DateParts, name string) error {
	if err := v.ValidateYear(p.Year, name); err != nil {
		return err
	}
	return v.ValidateMonthDay(p.Year, p.Month, p.Day, name)
}

// ValidateOrdinalParts validates all fields of p in order: year, day of year.
func (v PreValidator) ValidateOrdinalParts(p core.OrdinalParts, name string) error {
	if err := v.ValidateYear(p.Year, name); err != nil {
		return err
	}
	return v.ValidateDayOfYear(p.Year, p.DayOfYear, name)
}
